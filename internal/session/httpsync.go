package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/urban-monkey/storefront/internal/models"
)

// HTTPSyncer mirrors the local cart onto the server's cart endpoints for an
// authenticated user. The mirror is rebuilt as clear-then-add: crude, but it
// keeps the server copy a faithful snapshot of the local one.
type HTTPSyncer struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewHTTPSyncer(baseURL, bearerToken string) *HTTPSyncer {
	return &HTTPSyncer{
		baseURL: baseURL,
		token:   bearerToken,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (s *HTTPSyncer) SyncCart(ctx context.Context, items []models.CartItem) error {
	if err := s.do(ctx, http.MethodDelete, "/api/users/cart", nil); err != nil {
		return fmt.Errorf("clear remote cart: %w", err)
	}

	for _, it := range items {
		body := map[string]any{"productId": it.ProductID, "quantity": it.Quantity}
		if err := s.do(ctx, http.MethodPost, "/api/users/cart", body); err != nil {
			return fmt.Errorf("push cart item %s: %w", it.ProductID, err)
		}
	}
	return nil
}

func (s *HTTPSyncer) do(ctx context.Context, method, path string, body any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return fmt.Errorf("encode body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s failed with status %d", method, path, resp.StatusCode)
	}
	return nil
}
