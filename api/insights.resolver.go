package api

import (
	"github.com/gin-gonic/gin"
)

type GenerateInsightRequest struct {
	Currency string `json:"currency"`
}

type GenerateInsightResponse struct {
	Insight string `json:"insight"`
}

func (m ApiHandler) generateInsight(c *gin.Context) {
	var requestBody GenerateInsightRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil && c.Request.ContentLength > 0 {
		returnErrorJsonCode(err, c, 400)
		return
	}

	displayCurrency, err := parseDisplayCurrency(requestBody.Currency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	insight, err := m.InsightService.GetPortfolioInsight(c.Request.Context(), displayCurrency)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, GenerateInsightResponse{Insight: insight})
}
