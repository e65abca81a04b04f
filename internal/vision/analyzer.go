// Package vision extracts workout stats from photos of exercise machine
// displays and fitness app screenshots.
package vision

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/myrjola/morningapp/internal/errors"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const analyzePrompt = `This image shows a workout summary, for example a rowing machine display or a fitness app screenshot.

Extract the workout stats and respond with JSON only, no prose, in exactly this shape:
{"type": "Rowing", "duration": 30, "calories": 250, "distance": "5.2 km"}

Rules:
- "type" is the kind of workout, capitalised.
- "duration" is in whole minutes.
- "calories" is a whole number.
- "distance" is a string with its unit, or null when the display shows none.
- Use 0 for numbers you cannot read.`

// Stats is what the model reads off a workout summary image.
type Stats struct {
	Type            string
	DurationMinutes int
	Calories        int
	Distance        *string
	// Raw is the verbatim model response the stats were parsed from.
	Raw string
}

// Analyzer asks a vision model to read workout summary images.
type Analyzer struct {
	client openai.Client
	model  openai.ChatModel
	logger *slog.Logger
}

// NewAnalyzer wires an analyzer against the OpenAI API.
func NewAnalyzer(apiKey string, logger *slog.Logger) *Analyzer {
	return &Analyzer{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  openai.ChatModelGPT4o,
		logger: logger,
	}
}

// Analyze reads the workout stats from an image provided as a data URI.
func (a *Analyzer) Analyze(ctx context.Context, imageDataURI string) (Stats, error) {
	completion, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: a.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage([]openai.ChatCompletionContentPartUnionParam{
				openai.TextContentPart(analyzePrompt),
				openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
					URL: imageDataURI,
				}),
			}),
		},
		MaxTokens: openai.Int(300),
	})
	if err != nil {
		return Stats{}, errors.Wrap(err, "request image analysis")
	}
	if len(completion.Choices) == 0 {
		return Stats{}, errors.New("image analysis response has no choices")
	}
	raw := completion.Choices[0].Message.Content
	stats, err := parseStats(raw)
	if err != nil {
		return Stats{}, errors.Wrap(err, "parse image analysis", slog.String("response", raw))
	}
	stats.Raw = raw
	a.logger.LogAttrs(ctx, slog.LevelInfo, "analysed workout image",
		slog.String("type", stats.Type),
		slog.Int("duration_minutes", stats.DurationMinutes),
		slog.Int("calories", stats.Calories))
	return stats, nil
}

// parseStats decodes the model response. Numbers may arrive as floats and
// the whole object may be wrapped in a code fence.
func parseStats(raw string) (Stats, error) {
	var loose struct {
		Type     string  `json:"type"`
		Duration float64 `json:"duration"`
		Calories float64 `json:"calories"`
		Distance *string `json:"distance"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &loose); err != nil {
		return Stats{}, err
	}
	if loose.Type == "" {
		return Stats{}, errors.New("analysis has no workout type")
	}
	stats := Stats{
		Type:            loose.Type,
		DurationMinutes: int(loose.Duration),
		Calories:        int(loose.Calories),
		Distance:        loose.Distance,
	}
	if stats.Distance != nil && strings.TrimSpace(*stats.Distance) == "" {
		stats.Distance = nil
	}
	return stats, nil
}

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
