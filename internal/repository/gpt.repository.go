package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cartera/internal/domain"
	"cartera/internal/util"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GeneratePortfolioInsight(ctx context.Context, portfolioSummary string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const insightPrompt = `
You are a portfolio analyst reviewing a retail investor's aggregated holdings
across Argentine brokers and a crypto exchange. You will receive a plain-text
summary of the portfolio: positions with allocations, currency exposure, and
concentration by sector, country and correlation cluster.

Write a short narrative (3-5 paragraphs) covering:
- overall composition and what dominates the portfolio
- concentration risks (any group above 30%% deserves a mention)
- currency exposure between pesos and dollars
- one or two concrete observations, not generic advice

Do not invent positions that are not in the summary. Do not give buy/sell
recommendations. Keep the tone factual.
`

const gptMaxAttempts = 3
const gptBaseDelay = time.Second

func (h gptRepositoryHandler) GeneratePortfolioInsight(ctx context.Context, portfolioSummary string) (string, error) {
	var content string

	err := util.Retry(ctx, gptMaxAttempts, gptBaseDelay, func() error {
		res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
			Model: chatgpt.GPT35Turbo,
			Messages: []chatgpt.ChatMessage{
				{
					Role:    chatgpt.ChatGPTModelRoleSystem,
					Content: insightPrompt,
				},
				{
					Role:    chatgpt.ChatGPTModelRoleUser,
					Content: portfolioSummary,
				},
			},
		})
		if err != nil {
			return classifyGptError(err)
		}
		if len(res.Choices) == 0 {
			return fmt.Errorf("gpt returned no choices")
		}
		content = res.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate portfolio insight: %w", err)
	}

	return content, nil
}

// classifyGptError marks rate limits and upstream outages as
// retryable. Auth and request errors fail immediately.
func classifyGptError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "429") ||
		strings.Contains(msg, "500") ||
		strings.Contains(msg, "502") ||
		strings.Contains(msg, "503") {
		return domain.TransientError{Err: err}
	}
	return err
}
