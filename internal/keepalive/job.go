package keepalive

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Start runs the scheduler in its own goroutine.
func (j *Job) Start(ctx context.Context) {
	target := j.url
	if target == "" {
		target = "heartbeat only"
	}
	j.l.Infof(ctx, "Keep-alive job started (%s)", target)
	j.cron.Start()
}

// Stop halts the scheduler and waits for a running tick, bounded by ctx.
func (j *Job) Stop(ctx context.Context) {
	done := j.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		j.l.Warnf(ctx, "Keep-alive job did not stop in time: %v", ctx.Err())
	}
}

func (j *Job) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if err := j.ping(ctx); err != nil {
		j.l.Warnf(ctx, "keep-alive: %v", err)
	}
}

// ping issues one GET against the configured URL, or just logs when none is set.
func (j *Job) ping(ctx context.Context) error {
	if j.url == "" {
		j.l.Debug(ctx, "keep-alive: heartbeat")
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, j.url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	resp, err := j.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("ping %s: %w", j.url, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("ping %s: status %d", j.url, resp.StatusCode)
	}
	j.l.Debugf(ctx, "keep-alive: %s answered %d", j.url, resp.StatusCode)
	return nil
}
