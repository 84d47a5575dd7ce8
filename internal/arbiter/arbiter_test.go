package arbiter_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"codedoc/internal/arbiter"
	"codedoc/internal/port"
	"codedoc/mocks"
)

func TestArbiter_Arbitrate_Success(t *testing.T) {
	llm := new(mocks.MockChatCompleter)
	a := arbiter.New(llm)

	llm.On("Complete", mock.Anything, mock.MatchedBy(func(req port.ChatRequest) bool {
		return req.Temperature == 0 &&
			req.MaxTokens == 800 &&
			len(req.Messages) == 1 &&
			req.Messages[0].Role == port.RoleUser &&
			req.Messages[0].Content == arbiter.BuildPrompt("Tech A", "Plain B")
	})).Return(`{"technical":"Final T","professional":"Final P"}`, nil)

	out, err := a.Arbitrate(context.Background(), "Tech A", "Plain B")

	require.NoError(t, err)
	assert.Equal(t, "Final T", out.Result.Technical)
	assert.Equal(t, "Final P", out.Result.Professional)
	assert.False(t, out.ReplyMalformed)
	llm.AssertExpectations(t)
}

func TestArbiter_Arbitrate_FencedReply(t *testing.T) {
	llm := new(mocks.MockChatCompleter)
	a := arbiter.New(llm)

	llm.On("Complete", mock.Anything, mock.Anything).
		Return("\n```json\n{\"technical\":\"T\",\"professional\":\"P\"}\n```\n", nil)

	out, err := a.Arbitrate(context.Background(), "", "plain")

	require.NoError(t, err)
	assert.Equal(t, "T", out.Result.Technical)
	assert.Equal(t, "P", out.Result.Professional)
}

func TestArbiter_Arbitrate_UnparsableReplyDegrades(t *testing.T) {
	llm := new(mocks.MockChatCompleter)
	a := arbiter.New(llm)

	llm.On("Complete", mock.Anything, mock.Anything).Return("not json at all", nil)

	out, err := a.Arbitrate(context.Background(), "tech", "plain")

	require.NoError(t, err)
	assert.Equal(t, "", out.Result.Technical)
	assert.Equal(t, "", out.Result.Professional)
	assert.True(t, out.ReplyMalformed)
}

func TestArbiter_Arbitrate_EmptyReplyDegrades(t *testing.T) {
	llm := new(mocks.MockChatCompleter)
	a := arbiter.New(llm)

	llm.On("Complete", mock.Anything, mock.Anything).Return("", nil)

	out, err := a.Arbitrate(context.Background(), "tech", "plain")

	require.NoError(t, err)
	assert.True(t, out.ReplyMalformed)
}

func TestArbiter_Arbitrate_UpstreamErrorPropagates(t *testing.T) {
	llm := new(mocks.MockChatCompleter)
	a := arbiter.New(llm)

	upstream := errors.New("rate limit exceeded")
	llm.On("Complete", mock.Anything, mock.Anything).Return("", upstream)

	out, err := a.Arbitrate(context.Background(), "tech", "plain")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, upstream)
	assert.Contains(t, err.Error(), "rate limit exceeded")
}

func TestBuildPrompt_EmbedsBothDrafts(t *testing.T) {
	prompt := arbiter.BuildPrompt("TECHNICAL-DRAFT", "PLAIN-DRAFT")

	assert.Contains(t, prompt, "[Draft A - PolyCoder+]\nTECHNICAL-DRAFT")
	assert.Contains(t, prompt, "[Draft B - OpenAI]\nPLAIN-DRAFT")
	assert.Contains(t, prompt, `Return JSON with keys: "technical", "professional".`)
}
