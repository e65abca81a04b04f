package content

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"
)

// Speaker reads text aloud. Speak blocks until the utterance has finished or
// ctx is cancelled.
type Speaker interface {
	Speak(ctx context.Context, text string, rate float64) error
}

// Item is one spoken piece of content.
type Item struct {
	Kind   string
	Text   string
	Author string
}

const (
	ItemKindQuote = "quote"
	ItemKindJoke  = "joke"
)

// SpokenText is the full utterance including attribution.
func (i Item) SpokenText() string {
	if i.Author == "" {
		return i.Text
	}
	return i.Text + ", by " + i.Author
}

const (
	speechRate     = 0.8
	pauseAfterItem = 5 * time.Second
)

// Cycler speaks quotes and jokes on a loop while an exercise runs. Each
// activation starts with a quote and then alternates, with a pause after
// every item. Deactivation interrupts mid-utterance; a later activation
// starts a fresh loop from a quote again.
type Cycler struct {
	vault   Vault
	speaker Speaker
	logger  *slog.Logger
	rate    float64
	pause   time.Duration

	mu     sync.Mutex
	gen    int
	active bool
	cancel context.CancelFunc
	played []Item
}

// NewCycler wires a cycler. The vault may return an empty library; the
// built-in fallback then takes over.
func NewCycler(vault Vault, speaker Speaker, logger *slog.Logger) *Cycler {
	return &Cycler{
		vault:   vault,
		speaker: speaker,
		logger:  logger,
		rate:    speechRate,
		pause:   pauseAfterItem,
	}
}

// Reset stops any running loop and clears the played log for a new session.
func (c *Cycler) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deactivateLocked()
	c.played = nil
}

// Activate starts the speaking loop. Activating an already active cycler is
// a no-op.
func (c *Cycler) Activate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		return
	}
	c.gen++
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.active = true
	go c.run(ctx, c.gen)
}

// Deactivate stops the loop, interrupting a running utterance.
func (c *Cycler) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deactivateLocked()
}

func (c *Cycler) deactivateLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.active = false
}

// Played returns the items spoken so far this session, in order.
func (c *Cycler) Played() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item(nil), c.played...)
}

func (c *Cycler) run(ctx context.Context, gen int) {
	library := c.library(ctx)
	kind := ItemKindQuote
	for {
		if ctx.Err() != nil || !c.alive(gen) {
			return
		}
		item := pickItem(library, kind)
		c.notePlayed(gen, item)
		if err := c.speaker.Speak(ctx, item.SpokenText(), c.rate); err != nil {
			if ctx.Err() != nil {
				return
			}
			c.logger.LogAttrs(ctx, slog.LevelWarn, "speech failed",
				slog.String("kind", item.Kind), slog.Any("error", err))
		}
		// A superseded loop must not advance past its utterance even if
		// the speaker returned late.
		if !c.alive(gen) {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(c.pause):
		}
		if kind == ItemKindQuote {
			kind = ItemKindJoke
		} else {
			kind = ItemKindQuote
		}
	}
}

// library loads the vault, falling back to the built-in set when the vault
// errors or is empty.
func (c *Cycler) library(ctx context.Context) Library {
	loaded, err := c.vault.Load(ctx)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "load content vault", slog.Any("error", err))
		return Fallback()
	}
	loaded = loaded.Normalize()
	if loaded.Empty() {
		return Fallback()
	}
	return loaded
}

func (c *Cycler) alive(gen int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active && c.gen == gen
}

func (c *Cycler) notePlayed(gen int, item Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return
	}
	// Short sessions cycle through a small library; log each item once.
	for _, played := range c.played {
		if played.Text == item.Text {
			return
		}
	}
	c.played = append(c.played, item)
}

func pickItem(library Library, kind string) Item {
	if kind == ItemKindQuote && len(library.Quotes) == 0 {
		kind = ItemKindJoke
	}
	if kind == ItemKindJoke && len(library.Jokes) == 0 {
		kind = ItemKindQuote
	}
	if kind == ItemKindQuote {
		quote := library.Quotes[rand.IntN(len(library.Quotes))]
		return Item{Kind: ItemKindQuote, Text: quote.Text, Author: quote.Author}
	}
	joke := library.Jokes[rand.IntN(len(library.Jokes))]
	return Item{Kind: ItemKindJoke, Text: joke.Text}
}
