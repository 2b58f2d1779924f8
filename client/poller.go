package client

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/RonP3B/medisearch-backend/models"
	"github.com/google/uuid"
)

// DefaultPollInterval is how often an open conversation is refreshed.
const DefaultPollInterval = 10 * time.Second

// ChatPoller keeps one open conversation current by polling the API. The
// local message list only ever grows: a fetch replaces it solely when the
// server returned more messages, so a slow or out-of-order response can never
// roll the view back. Messages sent locally are prepended immediately.
type ChatPoller struct {
	client   *Client
	chatID   uuid.UUID
	interval time.Duration
	onUpdate func([]models.Message)

	mu       sync.Mutex
	messages []models.Message
}

// NewChatPoller builds a poller for one conversation. interval <= 0 falls
// back to DefaultPollInterval. onUpdate runs after every change to the
// message list; it may be nil.
func NewChatPoller(c *Client, chatID uuid.UUID, interval time.Duration, onUpdate func([]models.Message)) *ChatPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &ChatPoller{
		client:   c,
		chatID:   chatID,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// Run polls until ctx is cancelled. It fetches once immediately, then on
// every tick. Fetch errors are logged and skipped; the next tick retries.
func (p *ChatPoller) Run(ctx context.Context) {
	p.poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

// Messages returns a copy of the current message list, newest first.
func (p *ChatPoller) Messages() []models.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.Message(nil), p.messages...)
}

// Send delivers a text message and prepends it locally so the sender sees it
// without waiting for the next poll.
func (p *ChatPoller) Send(ctx context.Context, receiverID uuid.UUID, content string) error {
	message, err := p.client.SendMessage(ctx, receiverID, content)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.messages = append([]models.Message{*message}, p.messages...)
	snapshot := append([]models.Message(nil), p.messages...)
	p.mu.Unlock()

	p.notify(snapshot)
	return nil
}

func (p *ChatPoller) poll(ctx context.Context) {
	chat, err := p.client.GetChat(ctx, p.chatID)
	if err != nil {
		if ctx.Err() == nil {
			log.Printf("[chat.poller] fetch failed chat=%s err=%v", p.chatID, err)
		}
		return
	}

	p.mu.Lock()
	if len(chat.Messages) <= len(p.messages) {
		p.mu.Unlock()
		return
	}
	p.messages = chat.Messages
	snapshot := append([]models.Message(nil), p.messages...)
	p.mu.Unlock()

	p.notify(snapshot)
}

func (p *ChatPoller) notify(messages []models.Message) {
	if p.onUpdate != nil {
		p.onUpdate(messages)
	}
}
