package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/storykeeper/internal/client/models"
	"github.com/dmitrijs2005/storykeeper/internal/common"
)

// TokenProvider supplies the current bearer token, empty when the user is
// not authenticated. The session store satisfies this interface.
type TokenProvider interface {
	Token() string
}

// HTTPClient talks to the story API over its fixed REST contract. It keeps
// no session state of its own; the token comes from the injected provider
// on every request.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
}

// NewHTTPClient returns a client for the API at baseURL (no trailing slash
// required). tokens may not be nil.
func NewHTTPClient(baseURL string, tokens TokenProvider) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
	}
}

func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type loginResult struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

type loginResponse struct {
	apiResponse
	LoginResult loginResult `json:"loginResult"`
}

type storiesResponse struct {
	apiResponse
	ListStory []storyDTO `json:"listStory"`
}

type storyDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PhotoURL    string    `json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
	Lat         *float64  `json:"lat"`
	Lon         *float64  `json:"lon"`
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, http.MethodPost, "/register", body, nil)
}

// Login authenticates and returns the session. It has no side effects on
// stored session state; persisting the result is the caller's explicit
// action.
func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	body := map[string]string{"email": email, "password": password}

	var out loginResponse
	if err := c.doJSON(ctx, http.MethodPost, "/login", body, &out); err != nil {
		return nil, err
	}

	return &models.Session{
		Token: out.LoginResult.Token,
		User: models.User{
			ID:    out.LoginResult.UserID,
			Name:  out.LoginResult.Name,
			Email: email,
		},
	}, nil
}

func (c *HTTPClient) ListStories(ctx context.Context) ([]models.Story, error) {
	var out storiesResponse
	if err := c.doJSON(ctx, http.MethodGet, "/stories?location=1", nil, &out); err != nil {
		return nil, err
	}

	result := make([]models.Story, 0, len(out.ListStory))
	for _, dto := range out.ListStory {
		result = append(result, models.Story{
			ID:          dto.ID,
			Name:        dto.Name,
			Description: dto.Description,
			PhotoURL:    dto.PhotoURL,
			CreatedAt:   dto.CreatedAt,
			Lat:         dto.Lat,
			Lon:         dto.Lon,
		})
	}
	return result, nil
}

// CreateStory uploads a story as multipart form data. lat/lon fields are
// only written when present, matching the contract's optional coordinates.
func (c *HTTPClient) CreateStory(ctx context.Context, story CreateStoryRequest) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("description", story.Description); err != nil {
		return fmt.Errorf("write description: %w", err)
	}

	name := story.PhotoName
	if name == "" {
		name = "photo"
	}
	part, err := w.CreateFormFile("photo", name)
	if err != nil {
		return fmt.Errorf("create photo part: %w", err)
	}
	if _, err := part.Write(story.Photo); err != nil {
		return fmt.Errorf("write photo: %w", err)
	}

	if story.Lat != nil {
		if err := w.WriteField("lat", strconv.FormatFloat(*story.Lat, 'f', -1, 64)); err != nil {
			return fmt.Errorf("write lat: %w", err)
		}
	}
	if story.Lon != nil {
		if err := w.WriteField("lon", strconv.FormatFloat(*story.Lon, 'f', -1, 64)); err != nil {
			return fmt.Errorf("write lon: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/stories", &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	if story.IdempotencyKey != "" {
		req.Header.Set(common.IdempotencyKeyHeaderName, story.IdempotencyKey)
	}
	c.attachToken(req)

	return c.send(req, nil)
}

func (c *HTTPClient) Subscribe(ctx context.Context, sub *models.PushSubscription) error {
	return c.doJSON(ctx, http.MethodPost, "/notifications/subscribe", sub, nil)
}

func (c *HTTPClient) Unsubscribe(ctx context.Context, endpoint string) error {
	body := map[string]string{"endpoint": endpoint}
	return c.doJSON(ctx, http.MethodDelete, "/notifications/subscribe", body, nil)
}

// Ping probes API reachability. Any HTTP response, success or not, means
// online; only transport failures count as offline.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return nil
}

// doJSON issues a JSON request and decodes the envelope (and, when out is
// non-nil, the full payload) from the response.
func (c *HTTPClient) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	c.attachToken(req)

	return c.send(req, out)
}

func (c *HTTPClient) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var envelope apiResponse
		_ = json.Unmarshal(raw, &envelope)
		return mapStatus(resp.StatusCode, envelope.Message)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *HTTPClient) attachToken(req *http.Request) {
	if token := c.tokens.Token(); token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}
}

// mapStatus translates a non-2xx response into a typed failure carrying the
// server's message.
func mapStatus(status int, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("%s: %w", message, ErrUnauthorized)
	case status >= 400 && status < 500:
		return fmt.Errorf("%s: %w", message, ErrValidation)
	default:
		return fmt.Errorf("%s: %w", message, ErrServer)
	}
}
