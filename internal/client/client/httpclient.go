package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avdeluna/whispernote/internal/client/models"
	"github.com/avdeluna/whispernote/internal/common"
)

// APIClient talks to the Whisper Note server over HTTP/JSON.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "http://" + baseURL
	}
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// do sends the request and decodes a 2xx JSON body into out (when out is
// non-nil). Non-2xx statuses map onto the package sentinel errors.
func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	var er errorResponse
	body, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(body, &er)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusUnprocessableEntity:
		if er.Error != "" {
			return fmt.Errorf("%w: %s", ErrRejected, er.Error)
		}
		return ErrRejected
	default:
		if er.Error != "" {
			return fmt.Errorf("%w: %s", ErrServer, er.Error)
		}
		return fmt.Errorf("%w: status %d", ErrServer, resp.StatusCode)
	}
}

func (c *APIClient) getJSON(ctx context.Context, path string, header http.Header, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	for k, vals := range header {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	return c.do(req, out)
}

func (c *APIClient) postJSON(ctx context.Context, path string, in any, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// Ping checks server reachability.
func (c *APIClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return err
	}
	return c.do(req, nil)
}

// CreateMessage submits a draft and returns the assigned message id.
func (c *APIClient) CreateMessage(ctx context.Context, draft *models.MessageDraft) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, "/api/messages", draft, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

// GetMessage fetches a message view. A non-empty unlockToken is sent along
// so a previously unlocked message comes back in plaintext.
func (c *APIClient) GetMessage(ctx context.Context, id string, unlockToken string) (*models.MessageView, error) {
	var h http.Header
	if unlockToken != "" {
		h = http.Header{common.UnlockTokenHeaderName: []string{unlockToken}}
	}
	var out models.MessageView
	if err := c.getJSON(ctx, "/api/messages/"+url.PathEscape(id), h, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// VerifyMessage checks a passphrase against a locked message.
func (c *APIClient) VerifyMessage(ctx context.Context, id string, passphrase string) (*models.VerifyResult, error) {
	var out models.VerifyResult
	in := map[string]string{"passphrase": passphrase}
	if err := c.postJSON(ctx, "/api/messages/"+url.PathEscape(id)+"/verify", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LookupMessage resolves a display name to a generated message.
func (c *APIClient) LookupMessage(ctx context.Context, name string) (*models.Resolution, error) {
	var out models.Resolution
	if err := c.getJSON(ctx, "/api/lookup/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CheckNameExists reports whether name belongs to a known person.
func (c *APIClient) CheckNameExists(ctx context.Context, name string) (bool, error) {
	var out struct {
		Exists bool `json:"exists"`
	}
	if err := c.getJSON(ctx, "/api/lookup/"+url.PathEscape(name)+"/exists", nil, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

// Sweep triggers the expired-message cleanup and returns the deleted count.
func (c *APIClient) Sweep(ctx context.Context, secret string) (int64, error) {
	h := http.Header{"Authorization": []string{"Bearer " + secret}}
	var out struct {
		OK      bool  `json:"ok"`
		Deleted int64 `json:"deleted"`
	}
	if err := c.getJSON(ctx, "/api/cleanup", h, &out); err != nil {
		return 0, err
	}
	return out.Deleted, nil
}
