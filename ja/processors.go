package ja

import (
	"github.com/npillmayer/deinflect"
)

// ConvertHalfWidthCharacters widens halfwidth katakana, merging stray
// dakuten/handakuten marks into their base character.
var ConvertHalfWidthCharacters = deinflect.TextProcessor{
	Name:        "Convert Half Width Characters to Full Width",
	Description: "ｱｶﾁｬﾝ → アカチャン",
	Options:     deinflect.BasicOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		if opt != deinflect.On {
			return text
		}
		return ConvertHalfwidthKanaToFullwidth(text)
	},
}

// AlphabeticToHiragana converts romaji input to hiragana.
var AlphabeticToHiragana = deinflect.TextProcessor{
	Name:        "Convert Alphabetic Characters to Hiragana",
	Description: "akachan → あかちゃん",
	Options:     deinflect.BasicOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		if opt != deinflect.On {
			return text
		}
		return ConvertAlphabeticToKana(text)
	},
}

// NormalizeCombiningCharactersProcessor composes kana followed by a
// combining voiced/semi-voiced sound mark into the precomposed codepoint.
var NormalizeCombiningCharactersProcessor = deinflect.TextProcessor{
	Name:        "Normalize Combining Characters",
	Description: "ド → ド (U+30C8 U+3099 → U+30C9)",
	Options:     deinflect.BasicOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		if opt != deinflect.On {
			return text
		}
		return NormalizeCombiningCharacters(text)
	},
}

// NormalizeCJKCompatibilityCharactersProcessor decomposes squared and other
// compatibility ideographs into their spelled-out forms.
var NormalizeCJKCompatibilityCharactersProcessor = deinflect.TextProcessor{
	Name:        "Normalize CJK Compatibility Characters",
	Description: "㌀ → アパート",
	Options:     deinflect.BasicOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		if opt != deinflect.On {
			return text
		}
		return NormalizeCJKCompatibilityCharacters(text)
	},
}

// StandardizeKanji maps traditional kanji variants onto the modern standard
// form.
var StandardizeKanji = deinflect.TextProcessor{
	Name:        "Convert kanji variants to their modern standard form",
	Description: "萬 → 万",
	Options:     deinflect.BasicOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		if opt != deinflect.On {
			return text
		}
		return StandardizeKanjiVariants(text)
	},
}

// AlphanumericWidthVariants converts between fullwidth and halfwidth
// alphanumeric characters, direction depending on the option.
var AlphanumericWidthVariants = deinflect.TextProcessor{
	Name:        "Convert Between Alphabetic Width Variants",
	Description: "ｎｉｈｏｎｇｏ → nihongo and vice versa",
	Options:     deinflect.BidiOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		switch opt {
		case deinflect.Direct:
			return ConvertFullwidthAlphanumericToNormal(text)
		case deinflect.Inverse:
			return ConvertAlphanumericToFullwidth(text)
		}
		return text
	},
}

// HiraganaToKatakana converts between the two kana syllabaries, direction
// depending on the option.
var HiraganaToKatakana = deinflect.TextProcessor{
	Name:        "Convert Hiragana to Katakana",
	Description: "あかちゃん → アカチャン and vice versa",
	Options:     deinflect.BidiOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		switch opt {
		case deinflect.Direct:
			return ConvertHiraganaToKatakana(text)
		case deinflect.Inverse:
			return ConvertKatakanaToHiragana(text, false)
		}
		return text
	},
}

// CollapseEmphaticSequencesProcessor shortens runs of emphatic characters
// (small tsu, prolonged sound mark) inside a word.
var CollapseEmphaticSequencesProcessor = deinflect.TextProcessor{
	Name:        "Collapse Emphatic Character Sequences",
	Description: "すっっごーーい → すっごーい / すごい",
	Options:     deinflect.EmphaticOptions,
	Process: func(text string, opt deinflect.ProcessorOption) string {
		switch opt {
		case deinflect.Partial:
			return CollapseEmphaticSequences(text, false)
		case deinflect.Full:
			return CollapseEmphaticSequences(text, true)
		}
		return text
	},
}
