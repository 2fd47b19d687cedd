package deinflect

import (
	"testing"
)

func TestDecapitalize(t *testing.T) {
	if got := Decapitalize.Process("HELLO World", On); got != "hello world" {
		t.Errorf("got %q", got)
	}
	if got := Decapitalize.Process("HELLO", Off); got != "HELLO" {
		t.Errorf("Off must leave the text untouched, got %q", got)
	}
}

func TestCapitalizeFirstLetter(t *testing.T) {
	if got := CapitalizeFirstLetter.Process("london", On); got != "London" {
		t.Errorf("got %q", got)
	}
	if got := CapitalizeFirstLetter.Process("", On); got != "" {
		t.Errorf("empty input, got %q", got)
	}
	if got := CapitalizeFirstLetter.Process("águila", On); got != "Águila" {
		t.Errorf("got %q", got)
	}
}

func TestRemoveAlphabeticDiacritics(t *testing.T) {
	if got := RemoveAlphabeticDiacritics.Process("café", On); got != "cafe" {
		t.Errorf("got %q", got)
	}
	if got := RemoveAlphabeticDiacritics.Process("naïve", On); got != "naive" {
		t.Errorf("got %q", got)
	}
	if got := RemoveAlphabeticDiacritics.Process("plain", On); got != "plain" {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeRadicalCharacters(t *testing.T) {
	// U+2F00 KANGXI RADICAL ONE decomposes to U+4E00.
	if got := NormalizeRadicalCharacters.Process("⼀", On); got != "一" {
		t.Errorf("got %q", got)
	}
	// Regular ideographs outside the radical blocks stay as they are.
	if got := NormalizeRadicalCharacters.Process("一二三", On); got != "一二三" {
		t.Errorf("got %q", got)
	}
}

func TestTracePrepend(t *testing.T) {
	var tr Trace
	tr1 := tr.Prepend(TraceFrame{Transform: "past", Text: "walked"})
	tr2 := tr1.Prepend(TraceFrame{Transform: "plural", Text: "walkeds"})
	if len(tr2) != 2 || tr2[0].Transform != "plural" || tr2[1].Transform != "past" {
		t.Errorf("expected newest frame first, got %+v", tr2)
	}
	// The receiver must not be mutated.
	if len(tr1) != 1 || tr1[0].Transform != "past" {
		t.Errorf("Prepend mutated the receiver: %+v", tr1)
	}
}

func TestTraceContains(t *testing.T) {
	frame := TraceFrame{Transform: "past", RuleIndex: 3, Text: "walked"}
	tr := Trace{}.Prepend(frame)
	if !tr.Contains(frame) {
		t.Error("expected the frame to be found")
	}
	if tr.Contains(TraceFrame{Transform: "past", RuleIndex: 4, Text: "walked"}) {
		t.Error("a frame differing in rule index must not be found")
	}
}
