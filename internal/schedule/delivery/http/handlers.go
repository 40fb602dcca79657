package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"guild-planning/pkg/response"
)

// Week godoc
// @Summary     Current week of a community
// @Description Returns the Monday to Sunday view with each day's events in insertion order.
// @Tags        Schedule
// @Produce     json
// @Param       community path int true "Chat id"
// @Success     200 {object} weekResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/{community}/week [GET]
func (h *handler) Week(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeekReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	output, err := h.uc.View(ctx, req.toScope())
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, h.newWeekResp(req.Community, output))
}

// WeekICS godoc
// @Summary     Current week as iCalendar
// @Description Exports the community's current week as all-day events.
// @Tags        Schedule
// @Produce     text/calendar
// @Param       community path int true "Chat id"
// @Success     200 {string} string "text/calendar body"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedule/{community}/week.ics [GET]
func (h *handler) WeekICS(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processWeekReq(c)
	if err != nil {
		h.mapError(c, err)
		return
	}

	output, err := h.uc.View(ctx, req.toScope())
	if err != nil {
		h.mapError(c, err)
		return
	}

	cal := h.newWeekCalendar(req.Community, output, time.Now())
	c.Header("Content-Disposition", `attachment; filename="planning.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal.Serialize()))
}
