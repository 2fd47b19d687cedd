package es_test

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/deinflect/es"
	"github.com/npillmayer/deinflect/transformer"
)

func newSpanishTransformer(t *testing.T) *transformer.Transformer {
	t.Helper()
	lt := transformer.NewTransformer()
	if err := lt.Install(es.Descriptor()); err != nil {
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

func TestPresentIndicative(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newSpanishTransformer(t)
	requireCandidate(t, lt, "hablo", "hablar", "v_ar", []string{"present indicative"})
	requireCandidate(t, lt, "come", "comer", "v_er", []string{"present indicative"})
	requireCandidate(t, lt, "vivimos", "vivir", "v_ir", []string{"present indicative"})
}

func TestStemChangingVerbs(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newSpanishTransformer(t)
	// e→ie and o→ue changes are undone in the stem before the ending
	// is rewritten.
	requireCandidate(t, lt, "pienso", "pensar", "v_ar", []string{"present indicative"})
	requireCandidate(t, lt, "cuento", "contar", "v_ar", []string{"present indicative"})
	// jugar is the lone u→ue verb and gets its own carve-out.
	requireCandidate(t, lt, "juega", "jugar", "v_ar", []string{"present indicative"})
}

func TestNounPlural(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newSpanishTransformer(t)
	requireCandidate(t, lt, "gatos", "gato", "ns", []string{"plural"})
	requireCandidate(t, lt, "luces", "luz", "ns", []string{"plural"})
	requireCandidate(t, lt, "canciones", "canción", "ns", []string{"plural"})
	requireCandidate(t, lt, "autobuses", "autobús", "ns", []string{"plural"})
}

func TestFeminineAdjective(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newSpanishTransformer(t)
	requireCandidate(t, lt, "roja", "rojo", "adj", []string{"feminine adjective"})
	requireCandidate(t, lt, "española", "español", "adj", []string{"feminine adjective"})
	requireCandidate(t, lt, "francesa", "francés", "adj", []string{"feminine adjective"})
}

func TestParticiple(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newSpanishTransformer(t)
	requireCandidate(t, lt, "escuchado", "escuchar", "v_ar", []string{"participle"})
	requireCandidate(t, lt, "comido", "comer", "v_er", []string{"participle"})
	requireCandidate(t, lt, "dicho", "decir", "v", []string{"participle"})
	requireCandidate(t, lt, "roto", "romper", "v", []string{"participle"})
}

func TestReflexiveForms(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	lt := newSpanishTransformer(t)
	requireCandidate(t, lt, "lavarse", "lavar", "v_ar", []string{"reflexive"})
	requireCandidate(t, lt, "lavarte", "lavarse", "v_ar", []string{"pronoun substitution"})
	// A free clitic before the infinitive folds back into the -se form.
	requireCandidate(t, lt, "me despertar", "despertarse", "v", []string{"pronominal"})
	// Only the clitic group is rewritten; surrounding words survive.
	requireCandidate(t, lt, "no me despertar", "no despertarse", "v", []string{"pronominal"})
}
