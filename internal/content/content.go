// Package content supplies the motivational quotes and jokes spoken during
// exercises. Content comes from a persistent vault, topped up by an AI
// generator, with a built-in fallback set so a session never goes silent.
package content

import (
	"context"
	"encoding/json"
	"strings"
)

// Quote is a motivational quote with an optional author.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// Joke is a short one-liner.
type Joke struct {
	Text string `json:"text"`
}

// UnmarshalJSON accepts both a bare string and an object with text and
// author fields, since generated batches are not reliably shaped.
func (q *Quote) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*q = Quote{Text: strings.TrimSpace(text)}
		return nil
	}
	var obj struct {
		Text   string `json:"text"`
		Quote  string `json:"quote"`
		Author string `json:"author"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	text = obj.Text
	if text == "" {
		text = obj.Quote
	}
	*q = Quote{Text: strings.TrimSpace(text), Author: strings.TrimSpace(obj.Author)}
	return nil
}

// UnmarshalJSON accepts both a bare string and an object with a text or joke
// field.
func (j *Joke) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*j = Joke{Text: strings.TrimSpace(text)}
		return nil
	}
	var obj struct {
		Text string `json:"text"`
		Joke string `json:"joke"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	text = obj.Text
	if text == "" {
		text = obj.Joke
	}
	*j = Joke{Text: strings.TrimSpace(text)}
	return nil
}

// Library is a batch of speakable content.
type Library struct {
	Quotes []Quote `json:"quotes"`
	Jokes  []Joke  `json:"jokes"`
}

// Empty reports whether the library has nothing to speak.
func (l Library) Empty() bool {
	return len(l.Quotes) == 0 && len(l.Jokes) == 0
}

// Normalize drops entries without text so a sparse generated batch cannot
// put empty items into the rotation.
func (l Library) Normalize() Library {
	out := Library{}
	for _, q := range l.Quotes {
		if q.Text != "" {
			out.Quotes = append(out.Quotes, q)
		}
	}
	for _, j := range l.Jokes {
		if j.Text != "" {
			out.Jokes = append(out.Jokes, j)
		}
	}
	return out
}

// Merge appends other's entries to l.
func (l Library) Merge(other Library) Library {
	return Library{
		Quotes: append(append([]Quote(nil), l.Quotes...), other.Quotes...),
		Jokes:  append(append([]Joke(nil), l.Jokes...), other.Jokes...),
	}
}

// Vault persists the content library between sessions.
type Vault interface {
	Load(ctx context.Context) (Library, error)
	SaveBatch(ctx context.Context, batch Library) error
}
