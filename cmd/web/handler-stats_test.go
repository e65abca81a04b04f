package main

import (
	"testing"

	"github.com/myrjola/morningapp/internal/e2etest"
	"github.com/myrjola/morningapp/internal/testhelpers"
)

func Test_application_stats(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	doc, err := client.GetDoc(ctx, "/stats")
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}

	checkTextPresence(t, doc, "Novice")
	checkTextPresence(t, doc, "10 workouts to Apprentice")
	checkTextPresence(t, doc, "Personal bests")
	checkTextPresence(t, doc, "Last 30 days")
	checkTextPresence(t, doc, "Current streak: 0 days")

	// A fresh log has no skipped days, every report row is neutral.
	if got := doc.Find("td:contains('Skipped')").Length(); got != 0 {
		t.Errorf("Expected no skipped days on a fresh log, found %d", got)
	}
}
