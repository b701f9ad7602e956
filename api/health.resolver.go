package api

import (
	"github.com/gin-gonic/gin"
)

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (m ApiHandler) health(c *gin.Context) {
	out := healthResponse{
		Status:   "ok",
		Database: "not configured",
	}
	if m.Db != nil {
		out.Database = "ok"
		if err := m.Db.PingContext(c.Request.Context()); err != nil {
			out.Status = "degraded"
			out.Database = err.Error()
			c.JSON(503, out)
			return
		}
	}

	c.JSON(200, out)
}
