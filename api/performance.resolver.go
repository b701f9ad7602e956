package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) performance(c *gin.Context) {
	asOf, err := parseAsOf(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.PerformanceService.Performance(c.Request.Context(), c.Param("symbol"), asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
