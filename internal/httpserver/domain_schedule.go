package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	scheduleHTTP "guild-planning/internal/schedule/delivery/http"
)

// setupScheduleDomain registers the read-only schedule routes.
// The use case is shared with the Telegram handler so both see the same cache.
func (srv HTTPServer) setupScheduleDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := scheduleHTTP.New(srv.l, srv.scheduleUC, srv.title, srv.location)

	// Routes: /api/v1/schedule/:community/week and /week.ics
	scheduleHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Schedule domain registered")
	return nil
}
