package transformer_test

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/deinflect/transformer"
)

func ExampleMultiTransformer_Languages() {
	m, err := transformer.NewMultiTransformer()
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range m.Languages() {
		fmt.Println(s.Language, s.ISO639_3)
	}
	// Output:
	// ja jpn
	// en eng
	// es spa
}

func TestMultiTransformerLanguages(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m, err := transformer.NewMultiTransformer()
	if err != nil {
		t.Fatal(err)
	}
	summaries := m.Languages()
	if len(summaries) != 3 {
		t.Fatalf("expected 3 installed languages, got %d", len(summaries))
	}
	want := []struct{ lang, iso3 string }{
		{"ja", "jpn"}, {"en", "eng"}, {"es", "spa"},
	}
	for i, w := range want {
		if summaries[i].Language != w.lang || summaries[i].ISO639_3 != w.iso3 {
			t.Errorf("expected language %d to be %s/%s, is %+v", i, w.lang, w.iso3, summaries[i])
		}
	}
}

func TestMultiTransformerDispatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m, err := transformer.NewMultiTransformer()
	if err != nil {
		t.Fatal(err)
	}
	results := m.Transform("en", "walked")
	found := false
	for _, r := range results {
		if r.Text == "walk" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'walked' to deinflect to 'walk' for language en")
	}
	// Unknown languages fall through to the verbatim node.
	results = m.Transform("xx", "walked")
	if len(results) != 1 || results[0].Text != "walked" {
		t.Errorf("expected a single verbatim node for an unknown language, got %+v", results)
	}
	if m.Transformer("xx") != nil {
		t.Errorf("expected no transformer for an unknown language")
	}
}

func TestMultiTransformerLookupWorthiness(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m, err := transformer.NewMultiTransformer()
	if err != nil {
		t.Fatal(err)
	}
	if !m.IsTextLookupWorthy("ja", "読め") {
		t.Errorf("expected Japanese text to be lookup-worthy for ja")
	}
	if m.IsTextLookupWorthy("ja", "only latin") {
		t.Errorf("expected pure Latin text not to be lookup-worthy for ja")
	}
	// English declares no predicate, unknown languages do not exist.
	if m.IsTextLookupWorthy("en", "read") {
		t.Errorf("expected languages without a predicate to report false")
	}
	if m.IsTextLookupWorthy("xx", "read") {
		t.Errorf("expected unknown languages to report false")
	}
}

func TestMultiTransformerConditionFlags(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m, err := transformer.NewMultiTransformer()
	if err != nil {
		t.Fatal(err)
	}
	v := m.ConditionFlagsFromSingleConditionType("es", "v")
	if v == 0 {
		t.Errorf("expected the Spanish verb condition to have a flag")
	}
	ar := m.ConditionFlagsFromSingleConditionType("es", "v_ar")
	if ar == 0 || v&ar == 0 {
		t.Errorf("expected v_ar (%d) to be a subset of v (%d)", ar, v)
	}
	// Parts of speech are restricted to dictionary-form conditions.
	if m.ConditionFlagsFromPartsOfSpeech("es", []string{"v_ar"}) != 0 {
		t.Errorf("expected v_ar not to count as a part of speech")
	}
	if m.ConditionFlagsFromPartsOfSpeech("es", []string{"v"}) != v {
		t.Errorf("expected v to count as a part of speech")
	}
	if m.ConditionFlagsFromSingleConditionType("xx", "v") != 0 {
		t.Errorf("expected unknown languages to yield no flags")
	}
}
