package deinflect

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/deinflect/cjk"
)

// ProcessorOption is an enumerated setting of a text processor. Every
// processor declares which subset of options it understands; the zero
// value Off always leaves the text untouched.
type ProcessorOption int8

// Processor options.
const (
	Off     ProcessorOption = iota
	On                      // boolean processors
	Direct                  // bidirectional processors, forward direction
	Inverse                 // bidirectional processors, reverse direction
	Partial                 // emphatic collapse, keep one emphatic character per run
	Full                    // emphatic collapse, drop emphatic characters entirely
)

// Option sets shared by the processors of all languages.
var (
	BasicOptions    = []ProcessorOption{Off, On}
	BidiOptions     = []ProcessorOption{Off, Direct, Inverse}
	EmphaticOptions = []ProcessorOption{Off, Partial, Full}
)

// A TextProcessor is a deterministic, total string→string function
// parameterized by an option value. Processors normalize input before a
// deinflection search (case folding, width conversion, kana conversion…)
// and are composed externally by the caller.
type TextProcessor struct {
	Name        string
	Description string
	Options     []ProcessorOption
	Process     func(text string, opt ProcessorOption) string
}

// Decapitalize lowercases the complete text.
var Decapitalize = TextProcessor{
	Name:        "Decapitalize Text",
	Description: "CAPITALIZED TEXT → capitalized text",
	Options:     BasicOptions,
	Process: func(text string, opt ProcessorOption) string {
		if opt != On {
			return text
		}
		return strings.ToLower(text)
	},
}

// CapitalizeFirstLetter uppercases the first letter of the text.
var CapitalizeFirstLetter = TextProcessor{
	Name:        "Capitalize First Letter",
	Description: "lowercase text → Lowercase text",
	Options:     BasicOptions,
	Process: func(text string, opt ProcessorOption) string {
		if opt != On || text == "" {
			return text
		}
		r, size := utf8.DecodeRuneInString(text)
		if r == utf8.RuneError {
			return text
		}
		return string(unicode.ToUpper(r)) + text[size:]
	},
}

var combiningDiacriticalMarks = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

var diacriticsStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacriticalMarks)))

// RemoveAlphabeticDiacritics decomposes the text (NFD) and strips the
// combining diacritical marks block. The text is left decomposed, matching
// how accent-insensitive lookups expect it.
var RemoveAlphabeticDiacritics = TextProcessor{
	Name:        "Remove Alphabetic Diacritics",
	Description: "ἄήé → αηe",
	Options:     BasicOptions,
	Process: func(text string, opt ProcessorOption) string {
		if opt != On {
			return text
		}
		stripped, _, err := transform.String(diacriticsStripper, text)
		if err != nil {
			return text
		}
		return stripped
	},
}

// NormalizeRadicalCharacters maps Kangxi radical codepoints to their
// unified-ideograph equivalents by NFKD-decomposing exactly the runes in
// the radical blocks.
var NormalizeRadicalCharacters = TextProcessor{
	Name:        "Normalize radical characters",
	Description: "⼀ → 一 (U+2F00 → U+4E00)",
	Options:     BasicOptions,
	Process: func(text string, opt ProcessorOption) string {
		if opt != On {
			return text
		}
		var sb strings.Builder
		sb.Grow(len(text))
		for _, r := range text {
			if cjk.IsCodePointInRanges(r, cjk.RadicalRanges) {
				sb.WriteString(norm.NFKD.String(string(r)))
			} else {
				sb.WriteRune(r)
			}
		}
		return sb.String()
	},
}
