package speech

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNullSpeakerPacesItself(t *testing.T) {
	t.Parallel()

	start := time.Now()
	// Ten words at quadruple the base rate: roughly 850ms.
	err := (NullSpeaker{}).Speak(context.Background(), "one two three four five six seven eight nine ten", 4)
	if err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 500*time.Millisecond {
		t.Errorf("Speak returned after %v, want it to pace like speech", elapsed)
	}
}

func TestNullSpeakerEmptyTextReturnsImmediately(t *testing.T) {
	t.Parallel()

	start := time.Now()
	if err := (NullSpeaker{}).Speak(context.Background(), "   ", 1); err != nil {
		t.Fatalf("Speak: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 50*time.Millisecond {
		t.Errorf("Speak of empty text took %v", elapsed)
	}
}

func TestNullSpeakerHonoursCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- (NullSpeaker{}).Speak(ctx, "a very long sentence that would take many seconds to finish speaking aloud", 0.1)
	}()
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Speak = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Speak did not return after cancellation")
	}
}
