package keepalive

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	pkgLog "guild-planning/pkg/log"
)

const defaultTimeout = 10 * time.Second

// Config configures the keep-alive job.
type Config struct {
	Spec string // cron spec, e.g. "@every 5m"
	URL  string // pinged on every tick; empty only logs a heartbeat
}

// Job periodically pings a URL so free hosting tiers do not idle the process.
// It never touches schedule state.
type Job struct {
	l          pkgLog.Logger
	cron       *cron.Cron
	url        string
	httpClient *http.Client
}

// New validates the cron expression and registers the tick. Call Start to begin.
func New(l pkgLog.Logger, cfg Config) (*Job, error) {
	if l == nil {
		return nil, errors.New("logger is required")
	}
	if cfg.Spec == "" {
		return nil, errors.New("cron spec is required")
	}

	j := &Job{
		l:          l,
		cron:       cron.New(),
		url:        cfg.URL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	if _, err := j.cron.AddFunc(cfg.Spec, j.tick); err != nil {
		return nil, fmt.Errorf("invalid keep-alive spec %q: %w", cfg.Spec, err)
	}
	return j, nil
}
