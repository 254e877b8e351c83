package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/secmda"
	"github.com/fwojciec/secmda/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestAnalyst_Reply_ReturnsErrorWhenConversationEmpty(t *testing.T) {
	t.Parallel()

	analyst := gemini.NewAnalyst(nil, "") // nil client ok for this test

	_, err := analyst.Reply(context.Background(), &secmda.Conversation{})

	require.Error(t, err)
	assert.Equal(t, secmda.EINVALID, secmda.ErrorCode(err))
	assert.Contains(t, secmda.ErrorMessage(err), "empty")
}

func TestAnalyst_Reply_ReturnsErrorWhenLastMessageIsNotFromUser(t *testing.T) {
	t.Parallel()

	analyst := gemini.NewAnalyst(nil, "")
	conv := &secmda.Conversation{}
	conv.Append(secmda.RoleSystem, "persona")

	_, err := analyst.Reply(context.Background(), conv)

	require.Error(t, err)
	assert.Equal(t, secmda.EINVALID, secmda.ErrorCode(err))
	assert.Len(t, conv.Messages, 1)
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("You are an analyst.")

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Equal(t, "You are an analyst.", config.SystemInstruction.Parts[0].Text)
}

func TestBuildConfig_OmitsEmptySystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	assert.Nil(t, config.SystemInstruction)
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig("")

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildContents_MapsRoles(t *testing.T) {
	t.Parallel()

	ext := &secmda.Extraction{Ticker: "AAPL", Form: secmda.Form10Q, ReportDate: "2024-06-29", Content: "Revenue grew."}
	conv := secmda.NewAnalysisConversation(ext)
	conv.Append(secmda.RoleAssistant, "Summary: revenue grew.")
	conv.Append(secmda.RoleUser, "Any risks?")

	system, contents := gemini.BuildContents(conv)

	assert.Contains(t, system, "equity research")
	require.Len(t, contents, 4)
	assert.Equal(t, string(genai.RoleUser), contents[0].Role)
	assert.Contains(t, contents[0].Parts[0].Text, "2024-06-29 10-Q")
	assert.Equal(t, string(genai.RoleUser), contents[1].Role)
	assert.Contains(t, contents[1].Parts[0].Text, "Revenue grew.")
	assert.Equal(t, string(genai.RoleModel), contents[2].Role)
	assert.Equal(t, "Any risks?", contents[3].Parts[0].Text)
}
