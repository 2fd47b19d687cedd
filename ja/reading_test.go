package ja

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestReadingForTerm(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	reading, err := ReadingForTerm("読む")
	if err != nil {
		t.Fatal(err)
	}
	if reading != "よむ" {
		t.Errorf("expected よむ, got %q", reading)
	}
}

func TestReadings(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	readings, err := Readings("本を読む")
	if err != nil {
		t.Fatal(err)
	}
	if len(readings) < 3 {
		t.Fatalf("expected at least 3 tokens, got %+v", readings)
	}
	if readings[0].Term != "本" || readings[0].Reading != "ほん" {
		t.Errorf("unexpected first token: %+v", readings[0])
	}
}
