package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"runtime"
	"strings"
	"syscall"
	"time"

	"quill/internal/config"
	"quill/internal/types"
)

// ErrNotFound wraps 404 responses so callers can branch on a missing
// note without picking apart APIError status codes.
var ErrNotFound = errors.New("not found")

type Client struct {
	baseURL   string
	tokenPath string
	token     string
	http      *http.Client
}

func New() (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	tokenPath, err := config.TokenPath()
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL:   cfg.DaemonBaseURL(),
		tokenPath: tokenPath,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	_ = c.loadToken()
	return c, nil
}

func NewWithBaseURL(baseURL, token string) *Client {
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		tokenPath: "",
		token:     token,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/health", nil, false, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]*types.Note, error) {
	var resp NotesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/v1/notes", nil, true, &resp); err != nil {
		return nil, err
	}
	return resp.Notes, nil
}

func (c *Client) CreateNote(ctx context.Context, note *types.Note) (*types.Note, error) {
	if note == nil {
		return nil, errors.New("note is required")
	}
	var resp types.Note
	if err := c.doJSON(ctx, http.MethodPost, "/v1/notes", note, true, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) UpdateNote(ctx context.Context, id string, patch types.NotePatch) (*types.Note, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, errors.New("note id is required")
	}
	var resp types.Note
	if err := c.doJSON(ctx, http.MethodPatch, "/v1/notes/"+id, patch, true, &resp); err != nil {
		return nil, mapNotFound(err)
	}
	return &resp, nil
}

func (c *Client) DeleteNote(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("note id is required")
	}
	if err := c.doJSON(ctx, http.MethodDelete, "/v1/notes/"+id, nil, true, nil); err != nil {
		return mapNotFound(err)
	}
	return nil
}

func (c *Client) ShutdownDaemon(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/v1/shutdown", nil, true, nil)
}

func (c *Client) EnsureDaemon(ctx context.Context) error {
	return c.ensureDaemon(ctx, "", false)
}

func (c *Client) EnsureDaemonVersion(ctx context.Context, expectedVersion string, restart bool) error {
	return c.ensureDaemon(ctx, expectedVersion, restart)
}

func (c *Client) ensureDaemon(ctx context.Context, expectedVersion string, restart bool) error {
	resp, err := c.Health(ctx)
	if err == nil && resp.OK {
		if expectedVersion == "" || resp.Version == expectedVersion {
			return nil
		}
		if !restart {
			return fmt.Errorf("daemon version mismatch: %s (expected %s)", resp.Version, expectedVersion)
		}
		if err := c.ShutdownDaemon(ctx); err != nil {
			apiErr := asAPIError(err)
			if apiErr == nil || apiErr.StatusCode != http.StatusNotFound {
				return err
			}
			if resp.PID <= 0 {
				return err
			}
			if killErr := killProcess(resp.PID); killErr != nil {
				return fmt.Errorf("failed to stop stale daemon (pid %d): %w", resp.PID, killErr)
			}
		}
		shutdownDeadline := time.Now().Add(2 * time.Second)
		for time.Now().Before(shutdownDeadline) {
			if _, err := c.Health(ctx); err != nil {
				break
			}
			time.Sleep(100 * time.Millisecond)
		}
	}

	if err := StartBackgroundDaemon(); err != nil {
		return err
	}

	deadline := time.Now().Add(4 * time.Second)
	var lastErr error
	for time.Now().Before(deadline) {
		resp, err := c.Health(ctx)
		if err == nil && resp.OK {
			if expectedVersion == "" || resp.Version == expectedVersion {
				_ = c.loadToken()
				return nil
			}
			lastErr = fmt.Errorf("daemon version mismatch: %s (expected %s)", resp.Version, expectedVersion)
		} else {
			lastErr = err
		}
		time.Sleep(150 * time.Millisecond)
	}
	if lastErr == nil {
		lastErr = errors.New("daemon not healthy after start")
	}
	return lastErr
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, requireAuth bool, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requireAuth {
		if err := c.ensureToken(); err != nil {
			return err
		}
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) ensureToken() error {
	if strings.TrimSpace(c.token) == "" {
		if err := c.loadToken(); err != nil {
			return err
		}
	}
	if strings.TrimSpace(c.token) == "" {
		return errors.New("token not found; is the daemon running?")
	}
	return nil
}

func (c *Client) loadToken() error {
	if c.tokenPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.tokenPath)
	if err != nil {
		if os.IsNotExist(err) {
			c.token = ""
			return nil
		}
		return err
	}
	c.token = strings.TrimSpace(string(data))
	return nil
}

func decodeAPIError(resp *http.Response) error {
	type errorPayload struct {
		Error string `json:"error"`
	}
	var payload errorPayload
	_ = json.NewDecoder(resp.Body).Decode(&payload)
	if payload.Error != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Error}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: resp.Status}
}

func mapNotFound(err error) error {
	if apiErr := asAPIError(err); apiErr != nil && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s", ErrNotFound, apiErr.Message)
	}
	return err
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
}

func asAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

var killProcess = terminateProcess

func terminateProcess(pid int) error {
	if pid <= 0 {
		return errors.New("invalid pid")
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if runtime.GOOS == "windows" {
		return proc.Kill()
	}
	return proc.Signal(syscall.SIGTERM)
}
