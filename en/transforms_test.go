package en_test

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/deinflect/en"
	"github.com/npillmayer/deinflect/transformer"
)

func newEnglishTransformer(t *testing.T) *transformer.Transformer {
	t.Helper()
	lt := transformer.NewTransformer()
	if err := lt.Install(en.Descriptor()); err != nil {
		t.Fatal(err)
	}
	return lt
}

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

func TestSimplePast(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newEnglishTransformer(t)
	requireCandidate(t, lt, "walked", "walk", "v", []string{"past"})
	requireCandidate(t, lt, "hoped", "hope", "v", []string{"past"})
	requireCandidate(t, lt, "tried", "try", "v", []string{"past"})
	requireCandidate(t, lt, "stopped", "stop", "v", []string{"past"})
}

func TestPresentParticiple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newEnglishTransformer(t)
	requireCandidate(t, lt, "walking", "walk", "v", []string{"ing"})
	requireCandidate(t, lt, "running", "run", "v", []string{"ing"})
	requireCandidate(t, lt, "driving", "drive", "v", []string{"ing"})
}

func TestThirdPersonSingular(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newEnglishTransformer(t)
	requireCandidate(t, lt, "tries", "try", "v", []string{"3rd pers. sing. pres"})
	requireCandidate(t, lt, "teaches", "teach", "v", []string{"3rd pers. sing. pres"})
}

func TestNounForms(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newEnglishTransformer(t)
	requireCandidate(t, lt, "dogs", "dog", "ns", []string{"plural"})
	requireCandidate(t, lt, "dog's", "dog", "n", []string{"possessive"})
}

func TestPhrasalVerbs(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newEnglishTransformer(t)
	// The inflected verb of a phrasal construction is deinflected in place.
	requireCandidate(t, lt, "looked up", "look up", "v_phr", []string{"past"})
	requireCandidate(t, lt, "looking up", "look up", "v_phr", []string{"ing"})
	// An object interposed between verb and particle is removed.
	requireCandidate(t, lt, "look it up", "look up", "v_phr", []string{"interposed object"})
}

func TestAdjectiveComparison(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newEnglishTransformer(t)
	requireCandidate(t, lt, "faster", "fast", "adj", []string{"comparative"})
	requireCandidate(t, lt, "happiest", "happy", "adj", []string{"superlative"})
	requireCandidate(t, lt, "unhappy", "happy", "adj", []string{"un-"})
}
