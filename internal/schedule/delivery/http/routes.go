package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the schedule read routes under rg.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	sch := rg.Group("/schedule/:community")
	{
		sch.GET("/week", h.Week)
		sch.GET("/week.ics", h.WeekICS)
	}
}
