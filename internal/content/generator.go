package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/myrjola/morningapp/internal/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const generatorPrompt = `Generate 10 short motivational quotes and 10 short clean jokes suitable to be read aloud during a morning workout.

Respond with JSON only, no prose, in exactly this shape:
{"quotes": [{"text": "...", "author": "..."}], "jokes": [{"text": "..."}]}

Keep every item under 25 words. Omit the author field for quotes without a known author.`

// Generator produces fresh content batches with an LLM.
type Generator struct {
	client openai.Client
	model  openai.ChatModel
	logger *slog.Logger
}

// NewGenerator wires a generator against the OpenAI API.
func NewGenerator(apiKey string, logger *slog.Logger) *Generator {
	return &Generator{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4o,
		logger: logger,
	}
}

// GenerateBatch asks the model for a batch of quotes and jokes. The response
// is parsed forgivingly: code fences are stripped and entries may be bare
// strings or objects. Entries without text are dropped.
func (g *Generator) GenerateBatch(ctx context.Context) (Library, error) {
	completion, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: g.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(generatorPrompt),
		},
	})
	if err != nil {
		return Library{}, errors.Wrap(err, "request content batch")
	}
	if len(completion.Choices) == 0 {
		return Library{}, errors.New("content batch response has no choices")
	}
	raw := completion.Choices[0].Message.Content
	library, err := parseBatch(raw)
	if err != nil {
		return Library{}, errors.Wrap(err, "parse content batch", slog.String("response", raw))
	}
	g.logger.LogAttrs(ctx, slog.LevelInfo, "generated content batch",
		slog.Int("quotes", len(library.Quotes)),
		slog.Int("jokes", len(library.Jokes)))
	return library, nil
}

func parseBatch(raw string) (Library, error) {
	var library Library
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &library); err != nil {
		return Library{}, err
	}
	return library.Normalize(), nil
}

// stripCodeFences unwraps a ```json ... ``` fenced response, which models
// emit even when asked for bare JSON.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
