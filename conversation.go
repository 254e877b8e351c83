package secmda

import (
	"context"
	"fmt"
)

// Role identifies the author of a conversation message.
type Role string

// Message roles.
const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is a single turn in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation holds the message history of one analysis session.
// It is owned by the caller and passed explicitly to an Analyst.
type Conversation struct {
	Messages []Message `json:"messages"`
}

// Append adds a message to the end of the conversation.
func (c *Conversation) Append(role Role, content string) {
	c.Messages = append(c.Messages, Message{Role: role, Content: content})
}

// Last returns the most recent message.
func (c *Conversation) Last() (Message, bool) {
	if len(c.Messages) == 0 {
		return Message{}, false
	}
	return c.Messages[len(c.Messages)-1], true
}

const analystPersona = "You are a financial investment expert with years of experience in equity research. " +
	"Only answer questions when explicitly asked. Give structured, comprehensive answers that weigh both profits and risks."

// NewConversation starts a conversation about the company and report of ext.
func NewConversation(ext *Extraction) *Conversation {
	c := &Conversation{}
	c.Append(RoleSystem, analystPersona)
	c.Append(RoleUser, fmt.Sprintf(
		"I will ask questions related to %s. If I refer to financials without specification, I mean the financial statements as of %s.",
		ext.Ticker, ext.ReportName(),
	))
	return c
}

// AnalysisRequest builds the prompt asking for an evaluation of the MD&A text of ext.
func AnalysisRequest(ext *Extraction) string {
	return fmt.Sprintf("You will evaluate the Management Discussion and Analysis section of a public company's financial statements. "+
		"Based on the report and your financial expertise, provide 1) a summary of the MD&A, 2) a sentiment analysis of the report, "+
		"3) key highlights and lowlights of the report.\n"+
		"This MD&A is from %s - %s. Here is the report:\n\n%s",
		ext.Ticker, ext.ReportName(), ext.Content)
}

// NewAnalysisConversation starts a conversation that ends with the MD&A analysis request.
func NewAnalysisConversation(ext *Extraction) *Conversation {
	c := NewConversation(ext)
	c.Append(RoleUser, AnalysisRequest(ext))
	return c
}

// Analyst answers the latest message of a conversation.
type Analyst interface {
	// Reply generates the assistant's answer, appends it to conv and returns it.
	// Returns EINVALID if the conversation has nothing to answer.
	Reply(ctx context.Context, conv *Conversation) (string, error)
}
