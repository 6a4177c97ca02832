// Package analyzer implements the HTTP client for the external resume
// analysis service. The service is treated as an opaque, unreliable
// dependency: any transport error, non-2xx status or success=false body
// surfaces as a plain error and the caller substitutes fallback data.
package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-careercoach-backend/internal/domain"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) ParseResume(ctx context.Context, fileName string, file io.Reader) (*domain.ParseResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("resume", fileName)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/parse-resume", &body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var result domain.ParseResult
	if err := c.do(req, &result); err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("analyzer: parse-resume not successful: %s", result.Message)
	}
	return &result, nil
}

func (c *Client) FetchJobs(ctx context.Context, skills []string) (*domain.JobFeed, error) {
	req, err := c.newGet(ctx, "/jobs", skills)
	if err != nil {
		return nil, err
	}

	var feed domain.JobFeed
	if err := c.do(req, &feed); err != nil {
		return nil, err
	}
	if !feed.Success {
		return nil, fmt.Errorf("analyzer: jobs feed not successful: %s", feed.Message)
	}
	return &feed, nil
}

func (c *Client) FetchCareerPaths(ctx context.Context, skills []string) (*domain.PathFeed, error) {
	req, err := c.newGet(ctx, "/career-paths", skills)
	if err != nil {
		return nil, err
	}

	var feed domain.PathFeed
	if err := c.do(req, &feed); err != nil {
		return nil, err
	}
	if !feed.Success {
		return nil, fmt.Errorf("analyzer: career-paths feed not successful: %s", feed.Message)
	}
	return &feed, nil
}

// newGet builds a GET request with skills passed as a single csv query
// parameter, the format the analysis service expects.
func (c *Client) newGet(ctx context.Context, path string, skills []string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	if len(skills) > 0 {
		q := url.Values{}
		q.Set("skills", strings.Join(skills, ","))
		req.URL.RawQuery = q.Encode()
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("analyzer: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("analyzer response",
		"method", req.Method,
		"path", req.URL.Path,
		"status", resp.StatusCode,
		"elapsed", time.Since(start).String(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little of the body for the error message; the rest is
		// irrelevant since any non-2xx is treated as plain failure.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("analyzer: %s %s: unexpected status %d: %s", req.Method, req.URL.Path, resp.StatusCode, string(snippet))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("analyzer: decoding %s response: %w", req.URL.Path, err)
	}
	return nil
}
