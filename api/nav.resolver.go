package api

import (
	"btctreasury/internal/domain"
	"btctreasury/internal/util"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) summary(c *gin.Context) {
	asOf, err := parseAsOf(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.NavService.Summary(c.Request.Context(), asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

func (m ApiHandler) nav(c *gin.Context) {
	asOf, err := parseAsOf(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.NavService.NAV(c.Request.Context(), asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

type navHistoryResponse struct {
	Snapshots []domain.DailySnapshot `json:"snapshots"`
}

// navHistory lists recorded daily snapshots between start and end, both
// inclusive. end defaults to today and start to 30 days before end.
func (m ApiHandler) navHistory(c *gin.Context) {
	end, err := util.ParseDateOrToday(c.Query("end"))
	if err != nil {
		returnErrorJson(domain.InvalidInputError{Field: "end", Reason: "expected YYYY-MM-DD"}, c)
		return
	}
	start := end.AddDate(0, 0, -30)
	if s := c.Query("start"); s != "" {
		start, err = util.ParseDate(s)
		if err != nil {
			returnErrorJson(domain.InvalidInputError{Field: "start", Reason: "expected YYYY-MM-DD"}, c)
			return
		}
	}

	snapshots, err := m.NavService.History(c.Request.Context(), start, end)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	if snapshots == nil {
		snapshots = []domain.DailySnapshot{}
	}

	c.JSON(200, navHistoryResponse{Snapshots: snapshots})
}

func (m ApiHandler) tranches(c *gin.Context) {
	asOf, err := parseAsOf(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.NavService.Tranches(c.Request.Context(), asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}
