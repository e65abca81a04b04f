package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/morningapp/internal/e2etest"
	"github.com/myrjola/morningapp/internal/testhelpers"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "MORNINGAPP_SQLITE_URL":
		return ":memory:", true
	case "MORNINGAPP_ADDR":
		return "localhost:0", true
	default:
		return "", false
	}
}

func checkButtonPresence(t *testing.T, doc *goquery.Document, buttonText string, expectedCount int) {
	t.Helper()
	count := doc.Find("button:contains('" + buttonText + "')").Length()
	if count != expectedCount {
		t.Errorf("Expected %d '%s' button(s), but found %d", expectedCount, buttonText, count)
	}
}

func checkTextPresence(t *testing.T, doc *goquery.Document, text string) {
	t.Helper()
	if !strings.Contains(doc.Text(), text) {
		t.Errorf("Expected page to contain %q", text)
	}
}

func Test_application_home(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	checkButtonPresence(t, doc, "Start workout", 1)
	checkButtonPresence(t, doc, "Log external workout", 1)
	checkTextPresence(t, doc, "Start a new streak today.")
	checkTextPresence(t, doc, "Novice")
	checkTextPresence(t, doc, "Bar Hang: 60 s")
	checkTextPresence(t, doc, "Plank: 60 s")
	checkTextPresence(t, doc, "Push-ups: 20 reps")
}

func Test_application_fullSession(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	doc, err := client.GetDoc(ctx, "/")
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}

	t.Run("Begin session shows first exercise", func(t *testing.T) {
		if doc, err = client.SubmitForm(ctx, doc, "/session/begin", nil); err != nil {
			t.Fatalf("Failed to begin session: %v", err)
		}
		checkTextPresence(t, doc, "Bar Hang (1/3)")
		checkTextPresence(t, doc, "Personal best: no record")
		checkButtonPresence(t, doc, "Start timer", 1)
		checkButtonPresence(t, doc, "Skip", 1)
	})

	t.Run("Start and stop the timer", func(t *testing.T) {
		if doc, err = client.SubmitForm(ctx, doc, "/session/start", nil); err != nil {
			t.Fatalf("Failed to start timer: %v", err)
		}
		checkButtonPresence(t, doc, "Stop", 1)

		if doc, err = client.SubmitForm(ctx, doc, "/session/stop", nil); err != nil {
			t.Fatalf("Failed to stop timer: %v", err)
		}
		checkTextPresence(t, doc, "How hard was that?")
	})

	t.Run("Rate first exercise", func(t *testing.T) {
		if doc, err = client.SubmitForm(ctx, doc, "/session/rating", map[string]string{"Rating": "3"}); err != nil {
			t.Fatalf("Failed to submit rating: %v", err)
		}
		checkTextPresence(t, doc, "Plank (2/3)")
	})

	t.Run("Skip second exercise", func(t *testing.T) {
		if doc, err = client.SubmitForm(ctx, doc, "/session/skip", nil); err != nil {
			t.Fatalf("Failed to skip exercise: %v", err)
		}
		checkTextPresence(t, doc, "How hard was that?")

		if doc, err = client.SubmitForm(ctx, doc, "/session/rating", map[string]string{"Rating": "5"}); err != nil {
			t.Fatalf("Failed to submit rating: %v", err)
		}
		checkTextPresence(t, doc, "Push-ups (3/3)")
	})

	t.Run("Submit push-up count", func(t *testing.T) {
		if doc, err = client.SubmitForm(ctx, doc, "/session/count", map[string]string{"Count": "15"}); err != nil {
			t.Fatalf("Failed to submit count: %v", err)
		}
		checkTextPresence(t, doc, "How hard was that?")

		if doc, err = client.SubmitForm(ctx, doc, "/session/rating", map[string]string{"Rating": "2"}); err != nil {
			t.Fatalf("Failed to submit rating: %v", err)
		}
		checkTextPresence(t, doc, "Workout complete")
		checkTextPresence(t, doc, "15 reps")
	})

	t.Run("Acknowledge returns to welcome with streak", func(t *testing.T) {
		if doc, err = client.SubmitForm(ctx, doc, "/session/acknowledge", nil); err != nil {
			t.Fatalf("Failed to acknowledge: %v", err)
		}
		checkButtonPresence(t, doc, "Start workout", 1)
		checkTextPresence(t, doc, "1 day streak")
	})
}

func Test_application_notFound(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	resp, err := server.Client().Get(ctx, "/no-such-page")
	if err != nil {
		t.Fatalf("Failed to get page: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
}
