package netclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// NetworkError объединяет сетевые отказы: таймаут, не-200, битый JSON.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// Client выполняет одиночные GET-запросы к JSON API. Без повторов.
type Client struct {
	http      *http.Client
	userAgent string
}

// NewClient создает клиент с общим таймаутом на запрос.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: "upb/1.0",
	}
}

// Fetch выполняет GET и декодирует тело в out.
func (c *Client) Fetch(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &NetworkError{URL: url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Тело вычитывается, чтобы соединение вернулось в пул.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return &NetworkError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{URL: url, Err: fmt.Errorf("decode json: %w", err)}
	}
	return nil
}

// FetchRecord выполняет GET и возвращает тело как Record.
func (c *Client) FetchRecord(ctx context.Context, url string) (Record, error) {
	var rec Record
	if err := c.Fetch(ctx, url, &rec); err != nil {
		return nil, err
	}
	return rec, nil
}
