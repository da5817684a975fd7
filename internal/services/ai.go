package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/synergysphere/synergysphere-api/internal/models"
)

type AIService struct {
	client *openai.Client
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// ScoreSimilarity asks the model to rate how related two tasks are on a 0.0
// to 1.0 scale.
func (s *AIService) ScoreSimilarity(ctx context.Context, source, target *models.Task) (float64, error) {
	if s.client == nil {
		return 0, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You rate how related two tasks are.

Task A:
Title: %s
Description: %s

Task B:
Title: %s
Description: %s

Respond with a single number between 0.0 and 1.0, where 1.0 means the tasks
are about the same work and 0.0 means they are unrelated. Return only the
number, no explanation.`,
		source.Title, source.Description, target.Title, target.Description)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.0,
		},
	)

	if err != nil {
		return 0, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return 0, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	score, err := strconv.ParseFloat(content, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse AI response: %w (response: %s)", err, content)
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return score, nil
}
