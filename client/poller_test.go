package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/RonP3B/medisearch-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatServer serves a conversation whose message list is swapped between
// polls to exercise the monotonic replacement rule.
type chatServer struct {
	mu       sync.Mutex
	messages []models.Message
}

func (s *chatServer) setMessages(messages []models.Message) {
	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
}

func (s *chatServer) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		messages := append([]models.Message(nil), s.messages...)
		s.mu.Unlock()

		payload := map[string]any{
			"message": "ok",
			"data": models.ChatResponse{
				ID:       uuid.Must(uuid.NewV7()),
				Messages: messages,
			},
		}
		json.NewEncoder(w).Encode(payload)
	}
}

func makeMessages(n int) []models.Message {
	messages := make([]models.Message, n)
	for i := range messages {
		messages[i] = models.Message{
			ID:      uuid.Must(uuid.NewV7()),
			Content: fmt.Sprintf("mensaje %d", n-i),
		}
	}
	return messages
}

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(baseURL)
	require.NoError(t, err)
	c.Session().SetToken("test-token")
	return c
}

func TestPollerAdoptsLongerMessageList(t *testing.T) {
	server := &chatServer{}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	poller := NewChatPoller(newTestClient(t, ts.URL), uuid.Must(uuid.NewV7()), time.Minute, nil)

	server.setMessages(makeMessages(2))
	poller.poll(context.Background())
	assert.Len(t, poller.Messages(), 2)

	server.setMessages(makeMessages(5))
	poller.poll(context.Background())
	assert.Len(t, poller.Messages(), 5)
}

func TestPollerIgnoresShorterMessageList(t *testing.T) {
	server := &chatServer{}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	poller := NewChatPoller(newTestClient(t, ts.URL), uuid.Must(uuid.NewV7()), time.Minute, nil)

	long := makeMessages(4)
	server.setMessages(long)
	poller.poll(context.Background())
	require.Len(t, poller.Messages(), 4)

	// a stale response with fewer messages must not roll the view back
	server.setMessages(makeMessages(3))
	poller.poll(context.Background())

	current := poller.Messages()
	require.Len(t, current, 4)
	assert.Equal(t, long[0].ID, current[0].ID)
}

func TestPollerEqualLengthKeepsCurrentList(t *testing.T) {
	server := &chatServer{}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	poller := NewChatPoller(newTestClient(t, ts.URL), uuid.Must(uuid.NewV7()), time.Minute, nil)

	first := makeMessages(3)
	server.setMessages(first)
	poller.poll(context.Background())

	server.setMessages(makeMessages(3))
	poller.poll(context.Background())

	current := poller.Messages()
	require.Len(t, current, 3)
	assert.Equal(t, first[0].ID, current[0].ID)
}

func TestPollerNotifiesOnGrowth(t *testing.T) {
	server := &chatServer{}
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	var (
		mu      sync.Mutex
		updates [][]models.Message
	)
	onUpdate := func(messages []models.Message) {
		mu.Lock()
		updates = append(updates, messages)
		mu.Unlock()
	}

	poller := NewChatPoller(newTestClient(t, ts.URL), uuid.Must(uuid.NewV7()), time.Minute, onUpdate)

	server.setMessages(makeMessages(1))
	poller.poll(context.Background())
	server.setMessages(makeMessages(1))
	poller.poll(context.Background())
	server.setMessages(makeMessages(2))
	poller.poll(context.Background())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, updates, 2)
	assert.Len(t, updates[0], 1)
	assert.Len(t, updates[1], 2)
}

func TestPollerRunStopsOnCancel(t *testing.T) {
	server := &chatServer{}
	server.setMessages(makeMessages(1))
	ts := httptest.NewServer(server.handler())
	defer ts.Close()

	poller := NewChatPoller(newTestClient(t, ts.URL), uuid.Must(uuid.NewV7()), 10*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		poller.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return len(poller.Messages()) == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("poller did not stop after cancellation")
	}
}

func TestPollerSendPrependsMessage(t *testing.T) {
	server := &chatServer{}
	mux := http.NewServeMux()
	mux.Handle("/chats/", server.handler())
	mux.HandleFunc("/chats/messages", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		payload := map[string]any{
			"message": "Message sent successfully",
			"data": models.Message{
				ID:      uuid.Must(uuid.NewV7()),
				Content: r.FormValue("content"),
			},
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(payload)
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	poller := NewChatPoller(newTestClient(t, ts.URL), uuid.Must(uuid.NewV7()), time.Minute, nil)

	server.setMessages(makeMessages(2))
	poller.poll(context.Background())
	require.Len(t, poller.Messages(), 2)

	err := poller.Send(context.Background(), uuid.Must(uuid.NewV7()), "hola")
	require.NoError(t, err)

	current := poller.Messages()
	require.Len(t, current, 3)
	assert.Equal(t, "hola", current[0].Content)
}
