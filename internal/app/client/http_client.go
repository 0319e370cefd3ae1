package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"cardbox/internal/app/client/config"

	"golang.org/x/exp/slog"
)

// Contact is the wire shape of one card as the server exposes it.
type Contact struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Desc    string `json:"desc"`
	Img     string `json:"img"`
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		token:     cfg.Token(),
		userAgent: "Cardbox-Client/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

func (h *httpClient) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}
	return h.client.Do(req)
}

// HealthCheck verifies the server is reachable.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := h.do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return nil
}

// ListContacts fetches the caller's cards.
func (h *httpClient) ListContacts(ctx context.Context) ([]Contact, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/contacts", nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := h.do(req)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return nil, err
	}

	var contacts []Contact
	if err := json.NewDecoder(resp.Body).Decode(&contacts); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return contacts, nil
}

// CreateContact asks the server for a fresh empty card and returns its id.
// Populating the card is a separate EditContact call.
func (h *httpClient) CreateContact(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/contacts", nil)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	resp, err := h.do(req)
	if err != nil {
		return 0, fmt.Errorf("create contact: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, http.StatusOK); err != nil {
		return 0, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("read response: %w", err)
	}

	id, err := strconv.Atoi(string(bytes.TrimSpace(body)))
	if err != nil {
		return 0, fmt.Errorf("unexpected id %q: %w", body, err)
	}

	return id, nil
}

// EditContact sends a full-replace update for one card.
func (h *httpClient) EditContact(ctx context.Context, c Contact) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, h.baseURL+"/contacts", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.do(req)
	if err != nil {
		return fmt.Errorf("edit contact: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp, http.StatusNoContent)
}

// DeleteContact removes one card by id.
func (h *httpClient) DeleteContact(ctx context.Context, id int) error {
	url := fmt.Sprintf("%s/contacts?id=%d", h.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := h.do(req)
	if err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	defer resp.Body.Close()

	return checkStatus(resp, http.StatusNoContent)
}

func checkStatus(resp *http.Response, want int) error {
	if resp.StatusCode == want {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("unauthorized: run 'cardbox auth login' with a fresh token")
	}
	return fmt.Errorf("server returned status %d", resp.StatusCode)
}
