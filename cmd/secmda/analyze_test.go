package main_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/fwojciec/secmda"
	main "github.com/fwojciec/secmda/cmd/secmda"
	"github.com/fwojciec/secmda/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeWithExtraction() *mock.ExtractionService {
	return &mock.ExtractionService{
		FindExtractionByIDFn: func(context.Context, string) (*secmda.Extraction, error) {
			return testExtraction(), nil
		},
	}
}

// echoAnalyst answers with the number of messages it has seen.
func echoAnalyst() *mock.Analyst {
	return &mock.Analyst{
		ReplyFn: func(_ context.Context, conv *secmda.Conversation) (string, error) {
			reply := fmt.Sprintf("reply to %d messages", len(conv.Messages))
			conv.Append(secmda.RoleAssistant, reply)
			return reply, nil
		},
	}
}

func TestAnalyzeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("sends analysis request", func(t *testing.T) {
		t.Parallel()

		var last secmda.Message
		analyst := &mock.Analyst{
			ReplyFn: func(_ context.Context, conv *secmda.Conversation) (string, error) {
				last, _ = conv.Last()
				return "Sentiment: positive.", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: storeWithExtraction(),
			Analyst:     analyst,
		}

		err := (&main.AnalyzeCmd{ID: "ext-123"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, secmda.RoleUser, last.Role)
		assert.Contains(t, last.Content, "Net sales rose.")
		assert.Equal(t, "Sentiment: positive.\n", stdout.String())
	})

	t.Run("reports analyst errors", func(t *testing.T) {
		t.Parallel()

		analyst := &mock.Analyst{
			ReplyFn: func(context.Context, *secmda.Conversation) (string, error) {
				return "", secmda.Errorf(secmda.EINTERNAL, "gemini returned nil result")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdout:      &bytes.Buffer{},
			Stderr:      stderr,
			Extractions: storeWithExtraction(),
			Analyst:     analyst,
		}

		err := (&main.AnalyzeCmd{ID: "ext-123"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "nil result")
	})
}

func TestChatCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("keeps one conversation across questions", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdin:       strings.NewReader("What about margins?\n\nAny risks?\nexit\nignored\n"),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: storeWithExtraction(),
			Analyst:     echoAnalyst(),
		}

		err := (&main.ChatCmd{ID: "ext-123"}).Run(deps)

		require.NoError(t, err)
		// system, context, analysis request; then each question adds a
		// user message on top of the previous reply.
		assert.Equal(t, "reply to 3 messages\nreply to 5 messages\nreply to 7 messages\n", stdout.String())
	})

	t.Run("skips initial analysis", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdin:       strings.NewReader("What about margins?\n"),
			Stdout:      stdout,
			Stderr:      &bytes.Buffer{},
			Extractions: storeWithExtraction(),
			Analyst:     echoAnalyst(),
		}

		err := (&main.ChatCmd{ID: "ext-123", NoAnalysis: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "reply to 3 messages\n", stdout.String())
	})

	t.Run("reports missing extraction", func(t *testing.T) {
		t.Parallel()

		extractions := &mock.ExtractionService{
			FindExtractionByIDFn: func(context.Context, string) (*secmda.Extraction, error) {
				return nil, secmda.Errorf(secmda.ENOTFOUND, "extraction not found")
			},
		}

		deps := &main.Dependencies{
			Ctx:         context.Background(),
			Stdin:       strings.NewReader(""),
			Stdout:      &bytes.Buffer{},
			Stderr:      &bytes.Buffer{},
			Extractions: extractions,
		}

		err := (&main.ChatCmd{ID: "nope"}).Run(deps)

		assert.Equal(t, secmda.ENOTFOUND, secmda.ErrorCode(err))
	})
}
