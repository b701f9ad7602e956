package api

import (
	"btctreasury/internal/domain"
	"fmt"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPosition(c *gin.Context) {
	asOf, err := parseAsOf(c)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out, err := m.PositionService.Show(c.Request.Context(), asOf)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, out)
}

type setPositionRequest struct {
	Label         string  `json:"label"`
	Quantity      float64 `json:"quantity"`
	AvgEntryPrice float64 `json:"avgEntryPrice"`
}

func (m ApiHandler) setPosition(c *gin.Context) {
	var requestBody setPositionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(domain.InvalidInputError{Field: "body", Reason: err.Error()}, c)
		return
	}
	if requestBody.Label == "" {
		requestBody.Label = "default"
	}

	position, err := m.PositionService.Set(
		c.Request.Context(),
		requestBody.Label,
		requestBody.Quantity,
		requestBody.AvgEntryPrice,
	)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to set position: %w", err), c)
		return
	}

	c.JSON(200, position)
}
