package cjk_test

import (
	"testing"
	"unicode"

	"github.com/npillmayer/deinflect/cjk"
)

func TestIsCodePointCJK(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'中', true},
		{'漢', true},
		{'一', true},
		{0x3400, true},  // extension A, declared after the base block
		{0x4dbf, true},  // last code point of extension A
		{0x20000, true}, // extension B
		{0xf900, true},  // compatibility ideograph
		{0x2f800, true}, // compatibility supplement
		{'あ', false},
		{'ア', false},
		{'a', false},
		{'。', false}, // punctuation, not an ideograph
	}
	for _, tc := range cases {
		if got := cjk.IsCodePointCJK(tc.r); got != tc.want {
			t.Errorf("IsCodePointCJK(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestIsCodePointChinese(t *testing.T) {
	cases := []struct {
		r    rune
		want bool
	}{
		{'中', true},
		{'。', true},    // CJK punctuation counts as Chinese
		{0xff21, true}, // fullwidth A
		{0x3105, true}, // bopomofo
		{'あ', false},   // hiragana does not
		{'a', false},
	}
	for _, tc := range cases {
		if got := cjk.IsCodePointChinese(tc.r); got != tc.want {
			t.Errorf("IsCodePointChinese(%q) = %v, want %v", tc.r, got, tc.want)
		}
	}
}

func TestIsStringPartiallyChinese(t *testing.T) {
	if !cjk.IsStringPartiallyChinese("hello 中 world") {
		t.Error("expected a lone ideograph to mark the string as Chinese")
	}
	if cjk.IsStringPartiallyChinese("こんにちは") {
		t.Error("kana-only text must not count as Chinese")
	}
	if cjk.IsStringPartiallyChinese("") {
		t.Error("empty string must not count as Chinese")
	}
}

func TestRangeTables(t *testing.T) {
	if !unicode.Is(cjk.Ideographs, '中') {
		t.Error("Ideographs table misses 中")
	}
	if !unicode.Is(cjk.Radicals, 0x2f00) {
		t.Error("Radicals table misses the first Kangxi radical")
	}
	if !unicode.Is(cjk.Fullwidth, 0xff21) {
		t.Error("Fullwidth table misses fullwidth A")
	}
	if unicode.Is(cjk.Fullwidth, 'A') {
		t.Error("Fullwidth table must not contain ASCII")
	}
}

// unicode.Is performs a binary search, so the tables must be sorted even
// though the block lists are declared in frequency order.
func TestRangeTablesAreSorted(t *testing.T) {
	for name, table := range map[string]*unicode.RangeTable{
		"Ideographs": cjk.Ideographs,
		"Radicals":   cjk.Radicals,
		"Fullwidth":  cjk.Fullwidth,
	} {
		for i := 1; i < len(table.R16); i++ {
			if table.R16[i].Lo <= table.R16[i-1].Hi {
				t.Errorf("%s: R16 entry %d out of order", name, i)
			}
		}
		for i := 1; i < len(table.R32); i++ {
			if table.R32[i].Lo <= table.R32[i-1].Hi {
				t.Errorf("%s: R32 entry %d out of order", name, i)
			}
		}
	}
}

func TestIsCodePointInRange(t *testing.T) {
	rg := cjk.Range{Lo: 0x3000, Hi: 0x303f}
	if !cjk.IsCodePointInRange(0x3000, rg) || !cjk.IsCodePointInRange(0x303f, rg) {
		t.Error("range bounds are inclusive")
	}
	if cjk.IsCodePointInRange(0x3040, rg) {
		t.Error("code point past Hi must not match")
	}
}
