package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/RonP3B/medisearch-backend/models"
	"github.com/google/uuid"
)

// InquiryMessage is the prefilled first message when a user contacts a
// company about one of its products.
const InquiryMessage = "¡Buenas! Estoy interesado en su producto '%s'"

// Client is a typed HTTP client for the MediSearch API. It keeps a cookie
// jar for the refresh cookie and renews the access token transparently
// through its Transport.
type Client struct {
	baseURL string
	http    *http.Client
	session *Session
}

// New builds a client against baseURL (e.g. "http://localhost:8080/api/v1").
func New(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	session := NewSession("")
	c := &Client{
		baseURL: baseURL,
		session: session,
	}
	c.http = &http.Client{
		Jar:     jar,
		Timeout: 30 * time.Second,
		Transport: &Transport{
			Session: session,
			Refresh: c.refreshAccessToken,
		},
	}
	return c, nil
}

// Session exposes the token holder, mainly for tests and manual logout.
func (c *Client) Session() *Session {
	return c.session
}

// Login authenticates and stores the returned access token. The refresh
// cookie lands in the jar.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	var auth models.AuthResponse
	err := c.postJSON(ctx, "/account/login", models.LoginRequest{Email: email, Password: password}, &auth)
	if err != nil {
		return nil, err
	}
	c.session.SetToken(auth.JwToken)
	return &auth, nil
}

// Logout revokes the refresh session server-side and clears the token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.postJSON(ctx, "/account/logout", nil, nil)
	c.session.Clear()
	return err
}

// GetChats returns the caller's conversation list.
func (c *Client) GetChats(ctx context.Context) ([]models.ChatListItem, error) {
	var chats []models.ChatListItem
	if err := c.getJSON(ctx, "/chats", &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

// GetChat returns one conversation, messages newest first.
func (c *Client) GetChat(ctx context.Context, chatID uuid.UUID) (*models.ChatResponse, error) {
	var chat models.ChatResponse
	if err := c.getJSON(ctx, "/chats/"+chatID.String(), &chat); err != nil {
		return nil, err
	}
	return &chat, nil
}

// SendMessage sends a text message to another user.
func (c *Client) SendMessage(ctx context.Context, receiverID uuid.UUID, content string) (*models.Message, error) {
	form := url.Values{}
	form.Set("idReceiver", receiverID.String())
	form.Set("content", content)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chats/messages", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var message models.Message
	if err := c.do(req, &message); err != nil {
		return nil, err
	}
	return &message, nil
}

// SendProductInquiry opens a conversation with the product's company using
// the prefilled inquiry text.
func (c *Client) SendProductInquiry(ctx context.Context, receiverID uuid.UUID, productName string) (*models.Message, error) {
	return c.SendMessage(ctx, receiverID, fmt.Sprintf(InquiryMessage, productName))
}

// SearchProducts runs a catalog search with the given filter parameters.
func (c *Client) SearchProducts(ctx context.Context, params url.Values) ([]models.ProductListItem, error) {
	path := "/home/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var result struct {
		Products []models.ProductListItem `json:"products"`
		MaxPrice float64                  `json:"maxPrice"`
	}
	if err := c.getJSON(ctx, path, &result); err != nil {
		return nil, err
	}
	return result.Products, nil
}

// refreshAccessToken runs the silent renewal flow: validate the refresh
// cookie, then exchange it for a fresh access token.
func (c *Client) refreshAccessToken() (string, error) {
	// bare client so the renewal itself never recurses into the transport
	plain := &http.Client{Jar: c.http.Jar, Timeout: 15 * time.Second}

	resp, err := plain.Get(c.baseURL + "/account/validate-refresh-token")
	if err != nil {
		return "", err
	}
	var valid struct {
		ValidRefreshToken bool `json:"validRefreshToken"`
	}
	if err := decodeEnvelope(resp, &valid); err != nil {
		return "", err
	}
	if !valid.ValidRefreshToken {
		return "", errors.New("refresh token is no longer valid")
	}

	resp, err = plain.Post(c.baseURL+"/account/refresh-token", "application/json", nil)
	if err != nil {
		return "", err
	}
	var renewed struct {
		JwToken string `json:"jwToken"`
	}
	if err := decodeEnvelope(resp, &renewed); err != nil {
		return "", err
	}
	if renewed.JwToken == "" {
		return "", errors.New("refresh response carried no token")
	}
	return renewed.JwToken, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	return decodeEnvelope(resp, out)
}

// decodeEnvelope unwraps the standard {message, data, error} response body.
func decodeEnvelope(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var envelope struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   bool            `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unexpected response (status %d): %w", resp.StatusCode, err)
	}
	if resp.StatusCode >= 400 || envelope.Error {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, envelope.Message)
	}
	if out == nil || len(envelope.Data) == 0 {
		return nil
	}
	return json.Unmarshal(envelope.Data, out)
}
