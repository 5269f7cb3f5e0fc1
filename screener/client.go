package screener

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the pre-screen model client using the OpenAI-compatible interface
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new pre-screen client.
// baseURL may point at any OpenAI-compatible endpoint; empty keeps the default.
func NewClient(apiKey, model, baseURL string) *Client {
	if model == "" {
		model = openai.GPT4oMini
	}

	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}

	return &Client{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// screenStrategy is the system prompt for the acceptability verdict
const screenStrategy = `You pre-screen media submissions for a public chat channel.
You see the media type and the submitter's caption.

Decision rules:
1. Caption contains advertising, spam links or solicitation -> NO
2. Caption contains slurs or harassment -> NO
3. Anything else, including an empty caption -> YES
4. If uncertain -> YES (a human reviewer makes the final call)

Reply only "YES" or "NO", optionally followed by a short reason.`

// Chat sends a message and returns the response
func (c *Client) Chat(systemPrompt, userMessage string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		Temperature: 0.1, // Low temperature for deterministic verdicts
		MaxTokens:   50,  // Short response needed for YES/NO
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return resp.Choices[0].Message.Content, nil
}

// Assess asks for an acceptability verdict on one submission.
// On error the verdict defaults to acceptable (the human reviewer decides).
func (c *Client) Assess(mediaKind, caption string) (bool, string) {
	userMsg := fmt.Sprintf("Media type: %s\nCaption: %s", mediaKind, caption)
	if caption == "" {
		userMsg = fmt.Sprintf("Media type: %s\nCaption: (none)", mediaKind)
	}

	resp, err := c.Chat(screenStrategy, userMsg)
	if err != nil {
		fmt.Printf("[Screener] Error assessing submission: %v\n", err)
		return true, ""
	}

	resp = strings.TrimSpace(resp)
	acceptable := strings.HasPrefix(strings.ToUpper(resp), "YES")
	fmt.Printf("[Screener] Verdict: %q -> acceptable=%v\n", resp, acceptable)
	return acceptable, resp
}
