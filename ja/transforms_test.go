package ja_test

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/deinflect/ja"
	"github.com/npillmayer/deinflect/transformer"
)

func newJapaneseTransformer(t *testing.T) *transformer.Transformer {
	t.Helper()
	lt := transformer.NewTransformer()
	if err := lt.Install(ja.Descriptor()); err != nil {
		t.Fatal(err)
	}
	return lt
}

// requireCandidate asserts that deinflecting source yields want, carrying
// at least one flag of rule, derived by exactly the given transforms
// (newest first).
func requireCandidate(t *testing.T, lt *transformer.Transformer, source, want, rule string, reasons []string) {
	t.Helper()
	mask := lt.ConditionFlagsFromSingleConditionType(rule)
	if mask == 0 {
		t.Fatalf("condition %q has no flag", rule)
	}
	var closest []string
	for _, r := range lt.Transform(source) {
		if r.Text != want || r.Conditions&mask == 0 {
			continue
		}
		ids := make([]string, len(r.Trace))
		for i, frame := range r.Trace {
			ids[i] = frame.Transform
		}
		if len(ids) == len(reasons) {
			match := true
			for i := range ids {
				if ids[i] != reasons[i] {
					match = false
					break
				}
			}
			if match {
				return
			}
		}
		closest = ids
	}
	t.Errorf("%q: no candidate %q with rule %q and reasons %v (closest trace: %v)",
		source, want, rule, reasons, closest)
}

func TestIchidanPast(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newJapaneseTransformer(t)
	requireCandidate(t, lt, "食べた", "食べる", "v1", []string{"-た"})
	requireCandidate(t, lt, "食べて", "食べる", "v1", []string{"-て"})
	requireCandidate(t, lt, "食べられる", "食べる", "v1", []string{"potential or passive"})
}

func TestGodanPast(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newJapaneseTransformer(t)
	requireCandidate(t, lt, "歩いた", "歩く", "v5", []string{"-た"})
	// 行く and friends keep the euphonic った instead of いた.
	requireCandidate(t, lt, "行った", "行く", "v5", []string{"-た"})
	requireCandidate(t, lt, "買った", "買う", "v5", []string{"-た"})
}

func TestNegative(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newJapaneseTransformer(t)
	requireCandidate(t, lt, "歩かない", "歩く", "v5", []string{"negative"})
	requireCandidate(t, lt, "高くない", "高い", "adj-i", []string{"negative"})
}

func TestAdjectivePast(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newJapaneseTransformer(t)
	requireCandidate(t, lt, "高かった", "高い", "adj-i", []string{"-た"})
}

func TestChainedDeinflections(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newJapaneseTransformer(t)
	// Traces are newest-first: the frame that produced the dictionary form
	// comes first, the one applied to the original input last.
	requireCandidate(t, lt, "食べさせない", "食べる", "v1", []string{"causative", "negative"})
	requireCandidate(t, lt, "読みました", "読む", "v5", []string{"-ます", "-た"})
}

func TestPoliteNegative(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newJapaneseTransformer(t)
	requireCandidate(t, lt, "食べません", "食べる", "v1", []string{"-ます", "negative"})
}

func TestVerbatimNodeComesFirst(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newJapaneseTransformer(t)
	results := lt.Transform("食べた")
	if len(results) == 0 || results[0].Text != "食べた" || results[0].Conditions != 0 {
		t.Fatalf("expected the verbatim node first, got %+v", results[:1])
	}
}
