package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getExchangeRate(c *gin.Context) {
	rate := m.ExchangeRateRepository.GetExchangeRate(c.Request.Context())
	c.JSON(200, toExchangeRateResponse(rate))
}
