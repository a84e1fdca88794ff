package llm_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"docstyle/internal/config"
	"docstyle/internal/llm"
	"docstyle/internal/llm/mocks"
)

const pointSchema = `{
  "type": "object",
  "required": ["x", "label"],
  "properties": {
    "x": {"type": "integer"},
    "label": {"type": "string", "enum": ["a", "b"]}
  }
}`

type point struct {
	X     int    `json:"x"`
	Label string `json:"label"`
}

func TestGenerateJSON(t *testing.T) {
	ctx := context.Background()
	s := llm.MustCompileSchema(pointSchema)
	req := llm.Request{System: "sys", Prompt: "user", Temperature: 0.3, MaxTokens: 500}

	tests := []struct {
		name       string
		reply      *schema.Message
		replyErr   error
		want       point
		wantErr    error
		wantErrMsg string
	}{
		{name: "valid object", reply: mocks.Reply(`{"x": 3, "label": "a"}`), want: point{X: 3, Label: "a"}},
		{name: "provider error", replyErr: errors.New("status 500"), wantErrMsg: "generate: status 500"},
		{name: "nil message", wantErr: llm.ErrEmptyResponse},
		{name: "empty content", reply: mocks.Reply(""), wantErr: llm.ErrEmptyResponse},
		{name: "prose wrapped", reply: mocks.Reply("Sure! Here it is: {\"x\": 3, \"label\": \"a\"}"), wantErrMsg: "invalid json"},
		{name: "markdown fence", reply: mocks.Reply("```json\n{\"x\": 3, \"label\": \"a\"}\n```"), wantErrMsg: "invalid json"},
		{name: "enum violation", reply: mocks.Reply(`{"x": 3, "label": "c"}`), wantErr: llm.ErrSchemaViolation},
		{name: "missing field", reply: mocks.Reply(`{"x": 3}`), wantErr: llm.ErrSchemaViolation},
		{name: "not an object", reply: mocks.Reply(`[1, 2]`), wantErr: llm.ErrSchemaViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cm := new(mocks.MockChatModel)
			if tt.reply != nil {
				cm.On("Generate", ctx, mock.Anything, mock.Anything).Return(tt.reply, tt.replyErr).Once()
			} else {
				cm.On("Generate", ctx, mock.Anything, mock.Anything).Return(nil, tt.replyErr).Once()
			}

			var got point
			err := llm.GenerateJSON(ctx, cm, req, s, &got)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			cm.AssertExpectations(t)
		})
	}
}

func TestGenerateJSON_SendsRoleTaggedMessages(t *testing.T) {
	ctx := context.Background()
	cm := new(mocks.MockChatModel)
	cm.On("Generate", ctx, mock.MatchedBy(func(msgs []*schema.Message) bool {
		return len(msgs) == 2 &&
			msgs[0].Role == schema.System && msgs[0].Content == "be terse" &&
			msgs[1].Role == schema.User && msgs[1].Content == "classify this"
	}), mock.MatchedBy(func(opts []model.Option) bool {
		o := model.GetCommonOptions(nil, opts...)
		return o.Temperature != nil && *o.Temperature == 0.4 &&
			o.MaxTokens != nil && *o.MaxTokens == 600
	})).Return(mocks.Reply(`{"x": 1, "label": "b"}`), nil).Once()

	var got point
	err := llm.GenerateJSON(ctx, cm, llm.Request{System: "be terse", Prompt: "classify this", Temperature: 0.4, MaxTokens: 600}, llm.MustCompileSchema(pointSchema), &got)

	require.NoError(t, err)
	assert.Equal(t, point{X: 1, Label: "b"}, got)
	cm.AssertExpectations(t)
}

func TestMustCompileSchema_Panics(t *testing.T) {
	assert.Panics(t, func() { llm.MustCompileSchema(`{"type": 12}`) })
}

func TestQuota(t *testing.T) {
	t.Run("nil quota allows everything", func(t *testing.T) {
		var q *llm.Quota
		for i := 0; i < 10; i++ {
			assert.NoError(t, q.Take())
		}
	})

	t.Run("disabled when rate is zero", func(t *testing.T) {
		assert.Nil(t, llm.NewQuota(0, 5))
	})

	t.Run("burst is spent then rejected", func(t *testing.T) {
		q := llm.NewQuota(1, 2)
		assert.NoError(t, q.Take())
		assert.NoError(t, q.Take())
		assert.ErrorIs(t, q.Take(), llm.ErrQuotaExceeded)
	})
}

func TestNewChatModel_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := llm.NewChatModel(ctx, config.AIConfig{})
	assert.ErrorIs(t, err, llm.ErrMissingAPIKey)

	_, err = llm.NewChatModel(ctx, config.AIConfig{APIKey: "k", Provider: "mistral"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid ai provider: mistral")
}

func TestNewChatModel_OpenAI(t *testing.T) {
	cm, err := llm.NewChatModel(context.Background(), config.AIConfig{APIKey: "sk-test", BaseURL: "http://127.0.0.1:1/v1"})

	require.NoError(t, err)
	assert.NotNil(t, cm)
}

func TestOneOf(t *testing.T) {
	assert.Equal(t, `one of ["solid", "gradient", "pattern"]`, llm.OneOf([]string{"solid", "gradient", "pattern"}))
	assert.Equal(t, "one of []", llm.OneOf(nil))
}

func TestNewChatModel_Claude(t *testing.T) {
	cm, err := llm.NewChatModel(context.Background(), config.AIConfig{APIKey: "sk-ant-test", Provider: llm.ProviderClaude})

	require.NoError(t, err)
	assert.NotNil(t, cm)
}
