package api

import (
	"encoding/json"
	"fmt"

	"cartera/internal/domain"

	"github.com/gin-gonic/gin"
)

type SaveConnectionRequest struct {
	Provider    string          `json:"provider" binding:"required"`
	Credentials json.RawMessage `json:"credentials" binding:"required"`
}

type ConnectionResponse struct {
	Provider  string `json:"provider"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func parseProvider(raw string) (domain.Provider, error) {
	switch domain.Provider(raw) {
	case domain.Provider_IOL, domain.Provider_PPI, domain.Provider_Binance:
		return domain.Provider(raw), nil
	}
	return "", fmt.Errorf("unknown provider %q", raw)
}

// saveConnection stores broker credentials. The payload is encrypted
// by the repository before it reaches the database; the response never
// echoes it back.
func (m ApiHandler) saveConnection(c *gin.Context) {
	var requestBody SaveConnectionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	provider, err := parseProvider(requestBody.Provider)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	connection, err := m.BrokerConnectionRepository.Upsert(provider, requestBody.Credentials)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := ConnectionResponse{Provider: connection.Provider}
	if connection.UpdatedAt != nil {
		out.UpdatedAt = connection.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
	}
	c.JSON(200, out)
}

func (m ApiHandler) listConnections(c *gin.Context) {
	connections, err := m.BrokerConnectionRepository.List()
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := make([]ConnectionResponse, 0, len(connections))
	for _, connection := range connections {
		resp := ConnectionResponse{Provider: connection.Provider}
		if connection.UpdatedAt != nil {
			resp.UpdatedAt = connection.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		out = append(out, resp)
	}

	c.JSON(200, out)
}
