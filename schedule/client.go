package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/m3rciful/schedulebot/core/logger"
	"github.com/m3rciful/schedulebot/core/netutil"
)

const maxBodyBytes = 4 << 20

// Client fetches schedules from the provider. Every call is a fresh request:
// there is no caching and no retry.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for cfg. A nil httpClient gets one bounded by
// cfg's timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout()
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = netutil.NewHTTPClient(timeout)
	}
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{baseURL: base, http: httpClient}
}

// URL returns the full-schedule endpoint for group.
func (c *Client) URL(group string) string {
	return c.baseURL + "/schedule/" + url.PathEscape(group) + "/full_schedule"
}

// FetchSchedule returns the weekly schedule of group. Any failure, including a
// non-200 status or an undecodable body, is returned as ErrNotFound after the
// cause has been logged.
func (c *Client) FetchSchedule(ctx context.Context, group string) (*Schedule, error) {
	start := time.Now()
	s, code, cause, err := c.fetch(ctx, group)

	attrs := []slog.Attr{
		slog.String("group", group),
		slog.String("status", logger.Status(err)),
		slog.Duration("duration", logger.Took(start)),
	}
	if code != 0 {
		attrs = append(attrs, slog.Int("http_code", code))
	}
	if err != nil {
		attrs = append(attrs,
			slog.String("cause", cause),
			slog.String("err", logger.SanitizeLimit(err.Error(), 256)),
		)
		logger.LogEvent(ctx, logger.SVCSchedule, slog.LevelWarn, "schedule.fetch", attrs...)
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, group, err)
	}
	logger.LogEvent(ctx, logger.SVCSchedule, slog.LevelDebug, "schedule.fetch", attrs...)
	return s, nil
}

func (c *Client) fetch(ctx context.Context, group string) (*Schedule, int, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(group), nil)
	if err != nil {
		return nil, 0, "request", err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, netutil.ClassifyError(err), err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		cause := netutil.ClassifyStatus(resp.StatusCode)
		if cause == "" {
			cause = "http_status"
		}
		return nil, resp.StatusCode, cause, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var s Schedule
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&s); err != nil {
		return nil, resp.StatusCode, "decode", fmt.Errorf("decode body: %w", err)
	}
	if s.Days == nil {
		return nil, resp.StatusCode, "decode", errors.New("body has no days")
	}
	return &s, resp.StatusCode, "", nil
}
