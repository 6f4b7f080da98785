package inbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/cookiejar"
	"time"

	"smssync/internal/models"
	"smssync/internal/retry"
)

// API is the server surface the sync engine depends on.
type API interface {
	List(ctx context.Context, filter, search, sort string) ([]models.Message, error)
	Update(ctx context.Context, id string, action models.Action) (*models.Message, error)
	Bulk(ctx context.Context, ids []string, action models.Action) ([]models.Message, error)
}

// Client talks to the SMS Sync JSON API. The session cookie lives in the
// client's cookie jar; the CSRF token is captured at login and attached
// to every gated request.
type Client struct {
	baseURL string
	client  *http.Client
	backoff *retry.Backoff
	csrf    string
}

// SessionInfo describes an existing authenticated session.
type SessionInfo struct {
	Email string
}

type clientRequest struct {
	Path      string   `json:"path"`
	Email     string   `json:"email,omitempty"`
	Password  string   `json:"password,omitempty"`
	CSRFToken string   `json:"csrfToken,omitempty"`
	Filter    string   `json:"filter,omitempty"`
	Search    string   `json:"search,omitempty"`
	Sort      string   `json:"sort,omitempty"`
	ID        string   `json:"id,omitempty"`
	IDs       []string `json:"ids,omitempty"`
	Action    string   `json:"action,omitempty"`
}

type clientResponse struct {
	OK        bool             `json:"ok"`
	Error     string           `json:"error,omitempty"`
	CSRFToken string           `json:"csrfToken,omitempty"`
	User      *struct {
		Email string `json:"email"`
	} `json:"user,omitempty"`
	Items   []models.Message `json:"items,omitempty"`
	Item    *models.Message  `json:"item,omitempty"`
	Updated []models.Message `json:"updated,omitempty"`
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Jar:     jar,
			Timeout: 30 * time.Second,
		},
		backoff: retry.NewBackoff(retry.DefaultBackoffConfig()),
	}, nil
}

// Login authenticates and captures the CSRF token for the new session.
func (c *Client) Login(ctx context.Context, email, password string) error {
	resp, err := c.post(ctx, clientRequest{Path: "/login", Email: email, Password: password})
	if err != nil {
		return err
	}

	c.csrf = resp.CSRFToken
	return nil
}

// Session probes for an existing session. It returns nil without error
// when the caller is not authenticated.
func (c *Client) Session(ctx context.Context) (*SessionInfo, error) {
	resp, err := c.post(ctx, clientRequest{Path: "/session"})
	if err != nil {
		return nil, err
	}
	if !resp.OK || resp.User == nil {
		return nil, nil
	}

	c.csrf = resp.CSRFToken
	return &SessionInfo{Email: resp.User.Email}, nil
}

// Logout destroys the session server-side and drops the CSRF token.
func (c *Client) Logout(ctx context.Context) error {
	if _, err := c.post(ctx, clientRequest{Path: "/logout", CSRFToken: c.csrf}); err != nil {
		return err
	}
	c.csrf = ""
	return nil
}

// List fetches the visible items for a view request. As a read-only call
// it retries transient network failures; mutations stay single-shot so a
// lost response cannot replay an action.
func (c *Client) List(ctx context.Context, filter, search, sort string) ([]models.Message, error) {
	var items []models.Message
	err := c.backoff.RetryWithPredicate(ctx, func() error {
		resp, err := c.post(ctx, clientRequest{
			Path:      "/list",
			CSRFToken: c.csrf,
			Filter:    filter,
			Search:    search,
			Sort:      sort,
		})
		if err != nil {
			return err
		}
		items = resp.Items
		return nil
	}, isTransient)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// isTransient reports whether an error looks like a transport failure
// rather than an API rejection.
func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF)
}

// Update applies one action to one record. The returned record is the
// server's canonical state; it is nil for delete_forever.
func (c *Client) Update(ctx context.Context, id string, action models.Action) (*models.Message, error) {
	resp, err := c.post(ctx, clientRequest{
		Path:      "/update",
		CSRFToken: c.csrf,
		ID:        id,
		Action:    string(action),
	})
	if err != nil {
		return nil, err
	}
	return resp.Item, nil
}

// Bulk applies one action to a set of ids. The response lists only the
// records the server actually mutated; for delete_forever it is empty.
func (c *Client) Bulk(ctx context.Context, ids []string, action models.Action) ([]models.Message, error) {
	resp, err := c.post(ctx, clientRequest{
		Path:      "/bulk",
		CSRFToken: c.csrf,
		IDs:       ids,
		Action:    string(action),
	})
	if err != nil {
		return nil, err
	}
	return resp.Updated, nil
}

func (c *Client) post(ctx context.Context, payload clientRequest) (*clientResponse, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result clientResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || (!result.OK && payload.Path != "/session") {
		if result.Error != "" {
			return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, result.Error)
		}
		return nil, fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	return &result, nil
}
