// Package speech turns text into audio through an external text-to-speech
// command. The NullSpeaker stands in when no command is configured, pacing
// itself like real speech so content cycling behaves the same.
package speech

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/myrjola/morningapp/internal/errors"
)

// baseWordsPerMinute matches the default pace of common TTS engines. The
// rate passed to Speak scales it.
const baseWordsPerMinute = 175

// NullSpeaker consumes text without producing audio. Speak blocks roughly
// as long as speaking the text would, honouring cancellation.
type NullSpeaker struct{}

// Speak waits out the estimated duration of the utterance.
func (NullSpeaker) Speak(ctx context.Context, text string, rate float64) error {
	words := len(strings.Fields(text))
	if words == 0 {
		return nil
	}
	if rate <= 0 {
		rate = 1
	}
	perWord := time.Duration(float64(time.Minute) / (baseWordsPerMinute * rate))
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(time.Duration(words) * perWord):
		return nil
	}
}

// CommandSpeaker shells out to a text-to-speech binary such as espeak or
// say. The rate is converted to a words-per-minute -s flag.
type CommandSpeaker struct {
	command string
}

// NewCommandSpeaker wires a speaker around the given binary name or path.
func NewCommandSpeaker(command string) *CommandSpeaker {
	return &CommandSpeaker{command: command}
}

// Speak runs the command and blocks until the utterance finishes. Cancelling
// ctx kills the process mid-utterance.
func (s *CommandSpeaker) Speak(ctx context.Context, text string, rate float64) error {
	if rate <= 0 {
		rate = 1
	}
	wpm := strconv.Itoa(int(baseWordsPerMinute * rate))
	cmd := exec.CommandContext(ctx, s.command, "-s", wpm, text)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrap(err, "run speech command")
	}
	return nil
}
