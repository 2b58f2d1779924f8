package chat_controller

import (
	"github.com/RonP3B/medisearch-backend/models"
	"github.com/google/uuid"
)

// counterpart returns the other side of a chat from the caller's point of
// view. Company employees represent their company, so the display name falls
// back to the company name when one is attached.
func counterpart(chat *models.Chat, userID uuid.UUID) *models.User {
	if chat.StarterID == userID {
		return chat.Receiver
	}
	return chat.Starter
}

func displayName(user *models.User) (name, urlImage string) {
	if user == nil {
		return "", ""
	}
	if user.Company != nil {
		return user.Company.Name, user.Company.UrlImage
	}
	return user.FirstName + " " + user.LastName, user.UrlImage
}
