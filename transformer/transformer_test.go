package transformer_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/deinflect"
	"github.com/npillmayer/deinflect/transformer"
)

func toyDescriptor() *deinflect.LanguageDescriptor {
	return &deinflect.LanguageDescriptor{
		Language: "toy",
		Conditions: deinflect.NewConditionMap(
			deinflect.ConditionEntry{ID: "v", Condition: deinflect.Condition{
				Name:             "Verb",
				IsDictionaryForm: true,
				SubConditions:    []string{"vw", "vs"},
			}},
			deinflect.ConditionEntry{ID: "vw", Condition: deinflect.Condition{Name: "Weak verb"}},
			deinflect.ConditionEntry{ID: "vs", Condition: deinflect.Condition{Name: "Strong verb"}},
		),
		Transforms: deinflect.NewTransformMap(
			deinflect.TransformEntry{ID: "past", Transform: deinflect.Transform{
				Name:        "past",
				Description: "past tense",
				Rules: []deinflect.Rule{
					deinflect.SuffixInflection("ed", "", nil, []string{"vw"}),
				},
			}},
			deinflect.TransformEntry{ID: "plural", Transform: deinflect.Transform{
				Name: "plural",
				Rules: []deinflect.Rule{
					deinflect.SuffixInflection("s", "", []string{"v"}, []string{"vs"}),
				},
			}},
		),
	}
}

func TestBuildConditionFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	entries := []deinflect.ConditionEntry{
		{ID: "any", Condition: deinflect.Condition{SubConditions: []string{"a", "b"}}},
		{ID: "a", Condition: deinflect.Condition{}},
		{ID: "b", Condition: deinflect.Condition{}},
		{ID: "c", Condition: deinflect.Condition{}},
	}
	flags, next, err := transformer.BuildConditionFlags(entries, 1)
	if err != nil {
		t.Fatalf("expected flags to resolve, got %v", err)
	}
	if flags["a"] != 2 || flags["b"] != 4 || flags["c"] != 8 {
		t.Errorf("expected leaves 2/4/8, have a=%d b=%d c=%d", flags["a"], flags["b"], flags["c"])
	}
	if flags["any"] != 6 {
		t.Errorf("expected composite to union its children to 6, is %d", flags["any"])
	}
	if next != 4 {
		t.Errorf("expected next flag index to be 4, is %d", next)
	}
}

func TestSubConditionCycle(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	entries := []deinflect.ConditionEntry{
		{ID: "x", Condition: deinflect.Condition{SubConditions: []string{"y"}}},
		{ID: "y", Condition: deinflect.Condition{SubConditions: []string{"x"}}},
	}
	_, _, err := transformer.BuildConditionFlags(entries, 0)
	var cerr *deinflect.SubConditionCycleError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected a sub-condition cycle error, got %v", err)
	}
	if len(cerr.Identifiers) != 2 {
		t.Errorf("expected both identifiers reported, got %v", cerr.Identifiers)
	}
}

func TestTooManyConditions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	entries := make([]deinflect.ConditionEntry, transformer.MaxConditionFlags+1)
	for i := range entries {
		entries[i] = deinflect.ConditionEntry{ID: fmt.Sprintf("c%d", i)}
	}
	_, _, err := transformer.BuildConditionFlags(entries, 0)
	var terr *deinflect.TooManyConditionsError
	if !errors.As(err, &terr) {
		t.Fatalf("expected a too-many-conditions error, got %v", err)
	}
}

func TestConditionsMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		current, next uint32
		want          bool
	}{
		{0, 0, true},  // unconstrained candidate
		{0, 5, true},  //
		{3, 1, true},  // overlapping masks
		{4, 3, false}, // disjoint masks
		{8, 0, false}, // constrained candidate, unrestricted rule mask
	}
	for _, c := range cases {
		if got := transformer.ConditionsMatch(c.current, c.next); got != c.want {
			t.Errorf("ConditionsMatch(%d, %d) = %v, want %v", c.current, c.next, got, c.want)
		}
	}
}

func TestInstallUnknownCondition(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := &deinflect.LanguageDescriptor{
		Language:   "broken",
		Conditions: deinflect.NewConditionMap(deinflect.ConditionEntry{ID: "v"}),
		Transforms: deinflect.NewTransformMap(deinflect.TransformEntry{
			ID: "past",
			Transform: deinflect.Transform{
				Rules: []deinflect.Rule{
					deinflect.SuffixInflection("ed", "", []string{"nope"}, []string{"v"}),
				},
			},
		}),
	}
	lt := transformer.NewTransformer()
	err := lt.Install(d)
	var uerr *deinflect.UnknownConditionError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected an unknown-condition error, got %v", err)
	}
	if uerr.Name != "nope" {
		t.Errorf("expected the offending identifier to be reported, got %q", uerr.Name)
	}
}

func TestTransformBasic(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	lt := transformer.NewTransformer()
	if err := lt.Install(toyDescriptor()); err != nil {
		t.Fatal(err)
	}
	results := lt.Transform("walked")
	if len(results) < 2 {
		t.Fatalf("expected the verbatim node plus a candidate, got %d nodes", len(results))
	}
	if results[0].Text != "walked" || results[0].Conditions != 0 || len(results[0].Trace) != 0 {
		t.Errorf("expected the first node to be the verbatim input, got %+v", results[0])
	}
	weak := lt.ConditionFlagsFromSingleConditionType("vw")
	found := false
	for _, r := range results[1:] {
		if r.Text != "walk" {
			continue
		}
		found = true
		if r.Conditions != weak {
			t.Errorf("expected candidate to carry the vw flag %d, has %d", weak, r.Conditions)
		}
		if len(r.Trace) != 1 || r.Trace[0].Transform != "past" || r.Trace[0].Text != "walked" {
			t.Errorf("unexpected trace %+v", r.Trace)
		}
	}
	if !found {
		t.Errorf("expected a 'walk' candidate in %+v", results)
	}
}

// A candidate produced by one transform must respect the condition guard of
// the next: "walkeds" deinflects past-then-plural only if the masks chain.
func TestTransformChaining(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	lt := transformer.NewTransformer()
	if err := lt.Install(toyDescriptor()); err != nil {
		t.Fatal(err)
	}
	// "walksed": past strips "ed" leaving the vw flag; the plural rule
	// requires v = vw|vs, which intersects, so "walk" is reachable.
	results := lt.Transform("walksed")
	var texts []string
	for _, r := range results {
		texts = append(texts, r.Text)
	}
	want := map[string]bool{"walksed": false, "walks": false, "walk": false}
	for _, s := range texts {
		if _, ok := want[s]; ok {
			want[s] = true
		}
	}
	for s, seen := range want {
		if !seen {
			t.Errorf("expected candidate %q, have %v", s, texts)
		}
	}
	// The chained candidate's trace is newest-first.
	for _, r := range results {
		if r.Text == "walk" && len(r.Trace) == 2 {
			if r.Trace[0].Transform != "plural" || r.Trace[1].Transform != "past" {
				t.Errorf("expected trace [plural past], got %+v", r.Trace)
			}
		}
	}
}

func TestTransformNodeCap(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	lt := transformer.NewTransformer()
	if err := lt.Install(toyDescriptor()); err != nil {
		t.Fatal(err)
	}
	lt.MaxNodes = 2
	results := lt.Transform("walksed")
	if len(results) > 2 {
		t.Errorf("expected the node cap to truncate the search at 2, got %d", len(results))
	}
}

func TestUserFacingInflectionRules(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	lt := transformer.NewTransformer()
	if err := lt.Install(toyDescriptor()); err != nil {
		t.Fatal(err)
	}
	rules := lt.UserFacingInflectionRules([]string{"past", "bogus"})
	if len(rules) != 2 {
		t.Fatalf("expected 2 display records, got %d", len(rules))
	}
	if rules[0].Name != "past" || rules[0].Description != "past tense" {
		t.Errorf("unexpected display record %+v", rules[0])
	}
	if rules[1].Name != "bogus" {
		t.Errorf("expected unknown identifiers to fall back to themselves, got %+v", rules[1])
	}
}
