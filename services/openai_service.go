package services

import (
	"MenuPlus/config/environment"
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

const analysisMaxTokens = 4096

const analysisSystemPrompt = "You are MenuPlus AI, an expert food safety assistant. " +
	"You analyze restaurant menus against dietary profiles and respond with a single JSON object only."

// OpenAIService is the generative-AI collaborator backed by the OpenAI chat
// completions API. It satisfies GenerativeClient.
type OpenAIService struct {
	Client *openai.Client
	Model  string
}

// NewOpenAIService creates a client from the environment configuration.
func NewOpenAIService() *OpenAIService {
	return &OpenAIService{
		Client: openai.NewClient(environment.GetOpenAIKey()),
		Model:  environment.GetOpenAIModel(),
	}
}

// Generate sends the prompt as a single chat completion and returns the raw
// response text. One request, no retry at this layer; retries belong to the
// transport, and callers bound the call with their context.
func (s *OpenAIService) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     s.Model,
		MaxTokens: analysisMaxTokens,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("no valid response received")
	}
	return resp.Choices[0].Message.Content, nil
}
