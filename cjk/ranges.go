package cjk

import (
	"sort"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// A Range is an inclusive range of Unicode code points.
type Range struct {
	Lo, Hi rune
}

// CJK ideograph blocks.
var (
	UnifiedIdeographsRange          = Range{0x4e00, 0x9fff}
	UnifiedIdeographsExtARange      = Range{0x3400, 0x4dbf}
	UnifiedIdeographsExtBRange      = Range{0x20000, 0x2a6df}
	UnifiedIdeographsExtCRange      = Range{0x2a700, 0x2b73f}
	UnifiedIdeographsExtDRange      = Range{0x2b740, 0x2b81f}
	UnifiedIdeographsExtERange      = Range{0x2b820, 0x2ceaf}
	UnifiedIdeographsExtFRange      = Range{0x2ceb0, 0x2ebef}
	UnifiedIdeographsExtGRange      = Range{0x30000, 0x3134f}
	UnifiedIdeographsExtHRange      = Range{0x31350, 0x323af}
	UnifiedIdeographsExtIRange      = Range{0x2ebf0, 0x2ee5f}
	CompatibilityIdeographsRange    = Range{0xf900, 0xfaff}
	CompatibilityIdeographsSupRange = Range{0x2f800, 0x2fa1f}
)

// IdeographRanges lists every CJK ideograph block, base plane first.
var IdeographRanges = []Range{
	UnifiedIdeographsRange,
	UnifiedIdeographsExtARange,
	UnifiedIdeographsExtBRange,
	UnifiedIdeographsExtCRange,
	UnifiedIdeographsExtDRange,
	UnifiedIdeographsExtERange,
	UnifiedIdeographsExtFRange,
	UnifiedIdeographsExtGRange,
	UnifiedIdeographsExtHRange,
	UnifiedIdeographsExtIRange,
	CompatibilityIdeographsRange,
	CompatibilityIdeographsSupRange,
}

// FullwidthCharacterRanges lists the fullwidth forms of ASCII characters
// and currency markers.
var FullwidthCharacterRanges = []Range{
	{0xff10, 0xff19}, // Fullwidth numbers
	{0xff21, 0xff3a}, // Fullwidth upper case Latin letters
	{0xff41, 0xff5a}, // Fullwidth lower case Latin letters
	{0xff01, 0xff0f}, // Fullwidth punctuation 1
	{0xff1a, 0xff1f}, // Fullwidth punctuation 2
	{0xff3b, 0xff3f}, // Fullwidth punctuation 3
	{0xff5b, 0xff60}, // Fullwidth punctuation 4
	{0xffe0, 0xffee}, // Currency markers
}

// PunctuationRange is the CJK Symbols and Punctuation block.
var PunctuationRange = Range{0x3000, 0x303f}

// CompatibilityRange is the CJK Compatibility block (squared katakana
// words, unit abbreviations).
var CompatibilityRange = Range{0x3300, 0x33ff}

// Radical and stroke blocks.
var (
	KangxiRadicalsRange     = Range{0x2f00, 0x2fdf}
	RadicalsSupplementRange = Range{0x2e80, 0x2eff}
	StrokesRange            = Range{0x31c0, 0x31ef}
)

// RadicalRanges lists the blocks whose characters NFKD-decompose to
// unified ideographs.
var RadicalRanges = []Range{
	KangxiRadicalsRange,
	RadicalsSupplementRange,
	StrokesRange,
}

// Blocks specific to Chinese text.
var (
	BopomofoRange                         = Range{0x3100, 0x312f}
	BopomofoExtendedRange                 = Range{0x31a0, 0x31bf}
	IdeographicSymbolsAndPunctuationRange = Range{0x16fe0, 0x16fff}
	SmallFormVariantsRange                = Range{0xfe50, 0xfe6f}
	VerticalFormsRange                    = Range{0xfe10, 0xfe1f}
)

// ChineseRanges lists every block considered Chinese, ordered roughly by
// expected frequency.
var ChineseRanges = func() []Range {
	ranges := make([]Range, 0, len(IdeographRanges)+len(FullwidthCharacterRanges)+6)
	ranges = append(ranges, IdeographRanges...)
	ranges = append(ranges, PunctuationRange)
	ranges = append(ranges, FullwidthCharacterRanges...)
	ranges = append(ranges,
		BopomofoRange,
		BopomofoExtendedRange,
		IdeographicSymbolsAndPunctuationRange,
		SmallFormVariantsRange,
		VerticalFormsRange,
	)
	return ranges
}()

// IsCodePointInRange reports whether r lies within rg (inclusive).
func IsCodePointInRange(r rune, rg Range) bool {
	return r >= rg.Lo && r <= rg.Hi
}

// IsCodePointInRanges reports whether r lies within any of ranges.
func IsCodePointInRanges(r rune, ranges []Range) bool {
	for _, rg := range ranges {
		if r >= rg.Lo && r <= rg.Hi {
			return true
		}
	}
	return false
}

// IsCodePointCJK reports whether r is a CJK ideograph (unified,
// extension, or compatibility).
func IsCodePointCJK(r rune) bool {
	return unicode.Is(Ideographs, r)
}

// IsCodePointChinese reports whether r belongs to a block considered
// Chinese.
func IsCodePointChinese(r rune) bool {
	return IsCodePointInRanges(r, ChineseRanges)
}

// IsStringPartiallyChinese reports whether s contains at least one
// Chinese character.
func IsStringPartiallyChinese(s string) bool {
	for _, r := range s {
		if IsCodePointChinese(r) {
			return true
		}
	}
	return false
}

// tableOf builds a range table from blocks in arbitrary declaration
// order. unicode.RangeTable requires its entries sorted, so the blocks
// are ordered by code point first.
func tableOf(ranges ...Range) *unicode.RangeTable {
	sorted := make([]Range, len(ranges))
	copy(sorted, ranges)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })
	var r16 []unicode.Range16
	var r32 []unicode.Range32
	for _, rg := range sorted {
		if rg.Hi <= 0xffff {
			r16 = append(r16, unicode.Range16{Lo: uint16(rg.Lo), Hi: uint16(rg.Hi), Stride: 1})
		} else {
			r32 = append(r32, unicode.Range32{Lo: uint32(rg.Lo), Hi: uint32(rg.Hi), Stride: 1})
		}
	}
	return &unicode.RangeTable{R16: r16, R32: r32}
}

// Ideographs is the union of all CJK ideograph blocks, as a range table
// for use with unicode.Is.
var Ideographs = rangetable.Merge(tableOf(IdeographRanges...))

// Radicals is the union of the radical and stroke blocks.
var Radicals = rangetable.Merge(tableOf(RadicalRanges...))

// Fullwidth is the union of the fullwidth forms blocks.
var Fullwidth = rangetable.Merge(tableOf(FullwidthCharacterRanges...))
