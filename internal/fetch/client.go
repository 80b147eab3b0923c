// Package fetch pulls raw league JSON over HTTP and writes it through to
// the raw store, so every downstream read works from files on disk.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"lineup-advisor-mcp/internal/store"
)

type Client struct {
	HTTP         *http.Client
	Store        *store.JSONStore
	BaseURL      string
	UserAgent    string
	Sleep        time.Duration
	PrettyWrite  bool
	UseCache     bool
	DisableWrite bool
	Log          zerolog.Logger
}

func NewClient(st *store.JSONStore, baseURL string, log zerolog.Logger) *Client {
	return &Client{
		HTTP:        &http.Client{Timeout: 20 * time.Second},
		Store:       st,
		BaseURL:     baseURL,
		UserAgent:   "lineup-advisor-raw/1.0",
		Sleep:       250 * time.Millisecond,
		PrettyWrite: true,
		UseCache:    true,
		Log:         log,
	}
}

// FetchRaw downloads urlPath (like "/roster") and writes it to relPath.
// Returns raw bytes (from cache or network).
func (c *Client) FetchRaw(ctx context.Context, urlPath, relPath string, force bool) ([]byte, error) {
	if !force && c.UseCache && c.Store.Exists(relPath) {
		c.Log.Debug().Str("path", relPath).Msg("cache hit")
		return c.Store.ReadRaw(relPath)
	}

	if c.Sleep > 0 {
		time.Sleep(c.Sleep)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+urlPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	c.Log.Debug().
		Str("url", urlPath).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("fetched")
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("GET %s failed: %d body=%s", urlPath, resp.StatusCode, string(body))
	}

	if !c.DisableWrite {
		if err := c.Store.WriteRaw(relPath, body, c.PrettyWrite); err != nil {
			return nil, err
		}
	}
	return body, nil
}
