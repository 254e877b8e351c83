// Package gemini implements secmda analysis services on top of Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/secmda"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used for analysis and token counting.
const DefaultModel = "gemini-2.5-flash"

// Ensure Analyst implements secmda.Analyst at compile time.
var _ secmda.Analyst = (*Analyst)(nil)

// Analyst implements secmda.Analyst using Google Gemini.
type Analyst struct {
	client *genai.Client
	model  string
}

// NewAnalyst creates a new Analyst. An empty model selects DefaultModel.
func NewAnalyst(client *genai.Client, model string) *Analyst {
	if model == "" {
		model = DefaultModel
	}
	return &Analyst{client: client, model: model}
}

// Reply sends the conversation to Gemini and appends the answer to it.
func (a *Analyst) Reply(ctx context.Context, conv *secmda.Conversation) (string, error) {
	if conv == nil || len(conv.Messages) == 0 {
		return "", secmda.Errorf(secmda.EINVALID, "conversation is empty")
	}
	if last, _ := conv.Last(); last.Role != secmda.RoleUser {
		return "", secmda.Errorf(secmda.EINVALID, "conversation must end with a user message")
	}

	system, contents := BuildContents(conv)
	result, err := a.client.Models.GenerateContent(ctx, a.model, contents, BuildConfig(system))
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", secmda.Errorf(secmda.EINTERNAL, "gemini returned nil result")
	}

	reply := result.Text()
	conv.Append(secmda.RoleAssistant, reply)
	return reply, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// A non-empty system string becomes the system instruction.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.4)
	config := &genai.GenerateContentConfig{Temperature: &temp}
	if system != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return config
}

// BuildContents splits a conversation into the system instruction and the
// chat turns Gemini expects. System messages are joined in order; assistant
// messages are sent with the model role.
func BuildContents(conv *secmda.Conversation) (string, []*genai.Content) {
	var system []string
	contents := make([]*genai.Content, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		switch m.Role {
		case secmda.RoleSystem:
			system = append(system, m.Content)
		case secmda.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}
	return strings.Join(system, "\n\n"), contents
}
