package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// ErrSessionExpired is returned when the refresh flow fails and the session
// cannot be renewed. Callers should send the user back to login.
var ErrSessionExpired = errors.New("client: session expired")

const expiredTokenCode = "ERR_JWT"

// Session holds the bearer token shared between the transport and its
// refresh flow. Safe for concurrent use.
type Session struct {
	mu    sync.RWMutex
	token string
}

func NewSession(token string) *Session {
	return &Session{token: token}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) SetToken(token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
}

// Clear drops the token. Subsequent requests go out unauthenticated.
func (s *Session) Clear() {
	s.SetToken("")
}

// Transport is an http.RoundTripper that attaches the session's bearer token
// to every request and silently renews it once when the server answers with
// the expired-token code. A request is retried at most one time; concurrent
// expiries share a single refresh.
type Transport struct {
	Base    http.RoundTripper
	Session *Session

	// Refresh exchanges the refresh cookie for a new access token.
	Refresh func() (string, error)

	refreshMu sync.Mutex
}

func (t *Transport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.send(req, t.Session.Token())
	if err != nil {
		return nil, err
	}

	code, body := extractErrorCode(resp)
	if code != expiredTokenCode {
		return resp, nil
	}
	resp.Body.Close()

	token, err := t.renew()
	if err != nil {
		t.Session.Clear()
		return nil, fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}

	retry, err := cloneRequest(req)
	if err != nil {
		// body cannot be replayed; hand back the original expired response
		return restoredResponse(resp, body), nil
	}
	return t.send(retry, token)
}

// renew runs the refresh flow once even under concurrent expiries: the
// first caller refreshes, the rest reuse the token it obtained.
func (t *Transport) renew() (string, error) {
	stale := t.Session.Token()

	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	if current := t.Session.Token(); current != stale && current != "" {
		return current, nil
	}

	token, err := t.Refresh()
	if err != nil {
		return "", err
	}
	t.Session.SetToken(token)
	return token, nil
}

func (t *Transport) send(req *http.Request, token string) (*http.Response, error) {
	authed := req.Clone(req.Context())
	if token != "" {
		authed.Header.Set("Authorization", "Bearer "+token)
	}
	return t.base().RoundTrip(authed)
}

// extractErrorCode peeks at an error response for the machine-readable code.
// The body is restored so non-matching responses pass through untouched.
func extractErrorCode(resp *http.Response) (string, []byte) {
	if resp.StatusCode != http.StatusUnauthorized {
		return "", nil
	}
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	resp.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return "", body
	}

	var envelope struct {
		Code string `json:"Error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", body
	}
	return envelope.Code, body
}

func cloneRequest(req *http.Request) (*http.Request, error) {
	retry := req.Clone(req.Context())
	if req.Body == nil || req.Body == http.NoBody {
		return retry, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("request body cannot be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	retry.Body = body
	return retry, nil
}

func restoredResponse(resp *http.Response, body []byte) *http.Response {
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp
}
