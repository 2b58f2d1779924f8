package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendService sends transactional mail through the Resend HTTP API:
// employee invitations and password recovery codes.
type ResendService struct {
	apiKey string
	from   string
}

var resendService *ResendService

func GetResendService() *ResendService {
	if resendService == nil {
		apiKey := os.Getenv("RESEND_API_KEY")
		if apiKey == "" {
			log.Fatal("RESEND_API_KEY environment variable not set")
		}
		from := os.Getenv("RESEND_FROM_EMAIL")
		if from == "" {
			from = "noreply@medisearch.app"
		}
		resendService = &ResendService{apiKey: apiKey, from: from}
	}
	return resendService
}

// SendEmployeeInvite notifies a newly registered employee about their account.
func (r *ResendService) SendEmployeeInvite(email, firstName, companyName, tempPassword string) error {
	htmlBody := fmt.Sprintf(`
  <div style="max-width: 600px; margin: 0 auto; font-family: sans-serif;">
    <h2>MediSearch</h2>
    <p>Hola %s,</p>
    <p>Has sido registrado como empleado de <strong>%s</strong> en MediSearch.</p>
    <p>Tu contraseña temporal es: <strong>%s</strong></p>
    <p>Inicia sesión y cámbiala lo antes posible.</p>
  </div>`, firstName, companyName, tempPassword)

	return r.send(email, "Has sido invitado a MediSearch", htmlBody)
}

// SendRecoveryCode mails the short-lived password recovery code.
func (r *ResendService) SendRecoveryCode(email, code string) error {
	htmlBody := fmt.Sprintf(`
  <div style="max-width: 600px; margin: 0 auto; font-family: sans-serif;">
    <h2>MediSearch</h2>
    <p>Tu código de recuperación de contraseña es:</p>
    <p style="font-size: 28px; font-weight: 700; letter-spacing: 4px;">%s</p>
    <p>El código expira en 15 minutos. Si no solicitaste este cambio, ignora este correo.</p>
  </div>`, code)

	return r.send(email, "Recuperación de contraseña - MediSearch", htmlBody)
}

func (r *ResendService) send(to, subject, htmlBody string) error {
	payload := map[string]any{
		"from":    r.from,
		"to":      to,
		"subject": subject,
		"html":    htmlBody,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		if _, err := io.ReadAll(resp.Body); err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}
	return nil
}
