package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"guild-planning/internal/model"
)

type weekReq struct {
	Community int64
}

func (r weekReq) toScope() model.Scope {
	return model.Scope{Community: r.Community}
}

// processWeekReq reads the community id from the URI.
func (h *handler) processWeekReq(c *gin.Context) (weekReq, error) {
	id, err := strconv.ParseInt(c.Param("community"), 10, 64)
	if err != nil {
		return weekReq{}, errInvalidCommunity
	}
	return weekReq{Community: id}, nil
}
