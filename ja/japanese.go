package ja

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/npillmayer/deinflect/cjk"
)

// Code points with special roles in kana text.
const (
	HiraganaSmallTsu       rune = 0x3063
	KatakanaSmallTsu       rune = 0x30c3
	KatakanaSmallKa        rune = 0x30f5
	KatakanaSmallKe        rune = 0x30f6
	KanaProlongedSoundMark rune = 0x30fc
)

// Kana blocks and the sub-ranges that participate in hiragana↔katakana
// conversion.
var (
	HiraganaConversionRange = cjk.Range{Lo: 0x3041, Hi: 0x3096}
	KatakanaConversionRange = cjk.Range{Lo: 0x30a1, Hi: 0x30f6}
	HiraganaRange           = cjk.Range{Lo: 0x3040, Hi: 0x309f}
	KatakanaRange           = cjk.Range{Lo: 0x30a0, Hi: 0x30ff}
)

// KanaRanges covers the hiragana and katakana blocks.
var KanaRanges = []cjk.Range{HiraganaRange, KatakanaRange}

// JapaneseRanges lists every block considered Japanese, ordered roughly
// by expected frequency.
var JapaneseRanges = func() []cjk.Range {
	ranges := make([]cjk.Range, 0, 26)
	ranges = append(ranges, HiraganaRange, KatakanaRange)
	ranges = append(ranges, cjk.IdeographRanges[:10]...)
	ranges = append(ranges,
		cjk.Range{Lo: 0xff66, Hi: 0xff9f}, // Halfwidth katakana
		cjk.Range{Lo: 0x30fb, Hi: 0x30fc}, // Katakana punctuation
		cjk.Range{Lo: 0xff61, Hi: 0xff65}, // Kana punctuation
		cjk.PunctuationRange,
	)
	ranges = append(ranges, cjk.FullwidthCharacterRanges...)
	ranges = append(ranges, cjk.CompatibilityIdeographsRange, cjk.CompatibilityIdeographsSupRange)
	return ranges
}()

var smallKanaSet = map[rune]bool{
	'ぁ': true, 'ぃ': true, 'ぅ': true, 'ぇ': true, 'ぉ': true,
	'ゃ': true, 'ゅ': true, 'ょ': true, 'ゎ': true,
	'ァ': true, 'ィ': true, 'ゥ': true, 'ェ': true, 'ォ': true,
	'ャ': true, 'ュ': true, 'ョ': true, 'ヮ': true,
}

// halfwidthKatakanaMap maps each halfwidth katakana to a three-rune
// string: plain, dakuten and handakuten variant, '-' marking a variant
// that does not exist.
var halfwidthKatakanaMap = map[rune]string{
	'･': "・--", 'ｦ': "ヲヺ-", 'ｧ': "ァ--", 'ｨ': "ィ--", 'ｩ': "ゥ--",
	'ｪ': "ェ--", 'ｫ': "ォ--", 'ｬ': "ャ--", 'ｭ': "ュ--", 'ｮ': "ョ--",
	'ｯ': "ッ--", 'ｰ': "ー--", 'ｱ': "ア--", 'ｲ': "イ--", 'ｳ': "ウヴ-",
	'ｴ': "エ--", 'ｵ': "オ--", 'ｶ': "カガ-", 'ｷ': "キギ-", 'ｸ': "クグ-",
	'ｹ': "ケゲ-", 'ｺ': "コゴ-", 'ｻ': "サザ-", 'ｼ': "シジ-", 'ｽ': "スズ-",
	'ｾ': "セゼ-", 'ｿ': "ソゾ-", 'ﾀ': "タダ-", 'ﾁ': "チヂ-", 'ﾂ': "ツヅ-",
	'ﾃ': "テデ-", 'ﾄ': "トド-", 'ﾅ': "ナ--", 'ﾆ': "ニ--", 'ﾇ': "ヌ--",
	'ﾈ': "ネ--", 'ﾉ': "ノ--", 'ﾊ': "ハバパ", 'ﾋ': "ヒビピ", 'ﾌ': "フブプ",
	'ﾍ': "ヘベペ", 'ﾎ': "ホボポ", 'ﾏ': "マ--", 'ﾐ': "ミ--", 'ﾑ': "ム--",
	'ﾒ': "メ--", 'ﾓ': "モ--", 'ﾔ': "ヤ--", 'ﾕ': "ユ--", 'ﾖ': "ヨ--",
	'ﾗ': "ラ--", 'ﾘ': "リ--", 'ﾙ': "ル--", 'ﾚ': "レ--", 'ﾛ': "ロ--",
	'ﾜ': "ワ--", 'ﾝ': "ン--",
}

var vowelToKanaMapping = map[rune]string{
	'a': "ぁあかがさざただなはばぱまゃやらゎわヵァアカガサザタダナハバパマャヤラヮワヵヷ",
	'i': "ぃいきぎしじちぢにひびぴみりゐィイキギシジチヂニヒビピミリヰヸ",
	'u': "ぅうくぐすずっつづぬふぶぷむゅゆるゥウクグスズッツヅヌフブプムュユルヴ",
	'e': "ぇえけげせぜてでねへべぺめれゑヶェエケゲセゼテデネヘベペメレヱヶヹ",
	'o': "ぉおこごそぞとどのほぼぽもょよろをォオコゴソゾトドノホボポモョヨロヲヺ",
	'_': "のノ",
}

var kanaToVowelMapping = func() map[rune]rune {
	m := make(map[rune]rune)
	for vowel, characters := range vowelToKanaMapping {
		for _, c := range characters {
			m[c] = vowel
		}
	}
	return m
}()

// DiacriticKind distinguishes the two kana voicing marks.
type DiacriticKind int8

// Kana voicing marks.
const (
	Dakuten DiacriticKind = iota
	Handakuten
)

// DiacriticInfo describes a voiced kana: its unvoiced base character and
// the mark that voices it.
type DiacriticInfo struct {
	Character rune
	Kind      DiacriticKind
}

// diacriticMapping is built from triples (plain, dakuten, handakuten),
// '-' marking a variant that does not exist.
var diacriticMapping = func() map[rune]DiacriticInfo {
	const kana = "うゔ-かが-きぎ-くぐ-けげ-こご-さざ-しじ-すず-せぜ-そぞ-ただ-ちぢ-つづ-てで-とど-はばぱひびぴふぶぷへべぺほぼぽワヷ-ヰヸ-ウヴ-ヱヹ-ヲヺ-カガ-キギ-クグ-ケゲ-コゴ-サザ-シジ-スズ-セゼ-ソゾ-タダ-チヂ-ツヅ-テデ-トド-ハバパヒビピフブプヘベペホボポ"
	m := make(map[rune]DiacriticInfo)
	runes := []rune(kana)
	for i := 0; i+2 < len(runes); i += 3 {
		base, dakuten, handakuten := runes[i], runes[i+1], runes[i+2]
		m[dakuten] = DiacriticInfo{Character: base, Kind: Dakuten}
		if handakuten != '-' {
			m[handakuten] = DiacriticInfo{Character: base, Kind: Handakuten}
		}
	}
	return m
}()

// KanaDiacriticInfo returns the base character and mark for a voiced
// kana, or ok=false for anything else.
func KanaDiacriticInfo(c rune) (DiacriticInfo, bool) {
	info, ok := diacriticMapping[c]
	return info, ok
}

func prolongedHiragana(prev rune) (rune, bool) {
	switch kanaToVowelMapping[prev] {
	case 'a':
		return 'あ', true
	case 'i':
		return 'い', true
	case 'u', 'o':
		return 'う', true
	case 'e':
		return 'え', true
	}
	return 0, false
}

// StemLength returns the byte length of the common prefix of two
// strings, counted in whole runes.
func StemLength(text1, text2 string) int {
	r1 := []rune(text1)
	r2 := []rune(text2)
	length := 0
	for i := 0; i < len(r1) && i < len(r2); i++ {
		if r1[i] != r2[i] {
			break
		}
		length += len(string(r1[i]))
	}
	return length
}

// IsCodePointKanji reports whether r is a CJK ideograph.
func IsCodePointKanji(r rune) bool {
	return cjk.IsCodePointInRanges(r, cjk.IdeographRanges)
}

// IsCodePointKana reports whether r is hiragana or katakana.
func IsCodePointKana(r rune) bool {
	return cjk.IsCodePointInRanges(r, KanaRanges)
}

// IsCodePointJapanese reports whether r belongs to a block considered
// Japanese.
func IsCodePointJapanese(r rune) bool {
	return cjk.IsCodePointInRanges(r, JapaneseRanges)
}

// IsStringEntirelyKana reports whether s is non-empty and consists of
// kana only.
func IsStringEntirelyKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !IsCodePointKana(r) {
			return false
		}
	}
	return true
}

// IsStringPartiallyJapanese reports whether s contains at least one
// Japanese character.
func IsStringPartiallyJapanese(s string) bool {
	for _, r := range s {
		if IsCodePointJapanese(r) {
			return true
		}
	}
	return false
}

// IsMoraPitchHigh reports whether the mora at moraIndex is high-pitched
// under the given downstep position (0 = heiban).
func IsMoraPitchHigh(moraIndex, downstepPosition int) bool {
	switch downstepPosition {
	case 0:
		return moraIndex > 0
	case 1:
		return moraIndex < 1
	}
	return moraIndex > 0 && moraIndex < downstepPosition
}

// PitchCategory classifies a word's pitch accent pattern.
type PitchCategory int8

// Pitch accent categories.
const (
	Heiban PitchCategory = iota
	Kifuku
	Atamadaka
	Odaka
	Nakadaka
)

// GetPitchCategory classifies the pitch pattern of text with the given
// downstep position; ok=false means no category applies.
func GetPitchCategory(text string, downstepPosition int, isVerbOrAdjective bool) (PitchCategory, bool) {
	if downstepPosition == 0 {
		return Heiban, true
	}
	if isVerbOrAdjective {
		return Kifuku, downstepPosition > 0
	}
	if downstepPosition == 1 {
		return Atamadaka, true
	}
	if downstepPosition > 1 {
		if downstepPosition >= KanaMoraCount(text) {
			return Odaka, true
		}
		return Nakadaka, true
	}
	return Heiban, false
}

// KanaMorae splits kana text into morae: a small kana attaches to the
// preceding character.
func KanaMorae(text string) []string {
	var morae []string
	for _, c := range text {
		if smallKanaSet[c] && len(morae) > 0 {
			morae[len(morae)-1] += string(c)
		} else {
			morae = append(morae, string(c))
		}
	}
	return morae
}

// KanaMoraCount counts the morae of kana text.
func KanaMoraCount(text string) int {
	count := 0
	for _, c := range text {
		if !(smallKanaSet[c] && count > 0) {
			count++
		}
	}
	return count
}

// ConvertKatakanaToHiragana converts katakana to hiragana. Unless
// keepProlongedSoundMarks is set, a prolonged sound mark is resolved to
// the vowel of the preceding kana (ラーメン → らあめん).
func ConvertKatakanaToHiragana(text string, keepProlongedSoundMarks bool) string {
	var sb strings.Builder
	sb.Grow(len(text))
	offset := HiraganaConversionRange.Lo - KatakanaConversionRange.Lo
	var last rune
	for _, c := range text {
		processed := c
		switch c {
		case KatakanaSmallKa, KatakanaSmallKe:
			// no hiragana counterpart in the conversion range
		case KanaProlongedSoundMark:
			if !keepProlongedSoundMarks && last != 0 {
				if prolonged, ok := prolongedHiragana(last); ok {
					processed = prolonged
				}
			}
		default:
			if cjk.IsCodePointInRange(c, KatakanaConversionRange) {
				processed = c + offset
			}
		}
		sb.WriteRune(processed)
		last = processed
	}
	return sb.String()
}

// ConvertHiraganaToKatakana converts hiragana to katakana.
func ConvertHiraganaToKatakana(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	offset := KatakanaConversionRange.Lo - HiraganaConversionRange.Lo
	for _, c := range text {
		if cjk.IsCodePointInRange(c, HiraganaConversionRange) {
			c += offset
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// ConvertAlphanumericToFullwidth maps ASCII digits and letters to their
// fullwidth forms.
func ConvertAlphanumericToFullwidth(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) * 3)
	for _, c := range text {
		switch {
		case c >= '0' && c <= '9':
			c += 0xff10 - '0'
		case c >= 'A' && c <= 'Z':
			c += 0xff21 - 'A'
		case c >= 'a' && c <= 'z':
			c += 0xff41 - 'a'
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// ConvertFullwidthAlphanumericToNormal maps fullwidth digits and letters
// back to ASCII.
func ConvertFullwidthAlphanumericToNormal(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		switch {
		case c >= 0xff10 && c <= 0xff19:
			c -= 0xff10 - '0'
		case c >= 0xff21 && c <= 0xff3a:
			c -= 0xff21 - 'A'
		case c >= 0xff41 && c <= 0xff5a:
			c -= 0xff41 - 'a'
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// ConvertHalfwidthKanaToFullwidth converts halfwidth katakana to their
// fullwidth forms, merging a following halfwidth dakuten or handakuten
// into the voiced character where one exists.
func ConvertHalfwidthKanaToFullwidth(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		mapping, ok := halfwidthKatakanaMap[c]
		if !ok {
			sb.WriteRune(c)
			continue
		}
		variants := []rune(mapping)
		index := 0
		if i+1 < len(runes) {
			switch runes[i+1] {
			case 0xff9e: // halfwidth dakuten
				index = 1
			case 0xff9f: // halfwidth handakuten
				index = 2
			}
		}
		mapped := variants[0]
		if index > 0 && variants[index] != '-' {
			mapped = variants[index]
			i++ // consume the diacritic
		}
		if mapped == '-' {
			mapped = c
		}
		sb.WriteRune(mapped)
	}
	return sb.String()
}

// DakutenAllowed reports whether a dakuten may attach to r.
func DakutenAllowed(r rune) bool {
	return (r >= 0x304b && r <= 0x3068) ||
		(r >= 0x306f && r <= 0x307b) ||
		(r >= 0x30ab && r <= 0x30c8) ||
		(r >= 0x30cf && r <= 0x30db)
}

// HandakutenAllowed reports whether a handakuten may attach to r.
func HandakutenAllowed(r rune) bool {
	return (r >= 0x306f && r <= 0x307b) || (r >= 0x30cf && r <= 0x30db)
}

// NormalizeCombiningCharacters merges combining voicing marks (U+3099,
// U+309A) into the preceding kana where the combination exists as a
// precomposed character.
func NormalizeCombiningCharacters(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if i+1 < len(runes) {
			switch runes[i+1] {
			case 0x3099:
				if DakutenAllowed(c) {
					sb.WriteRune(c + 1)
					i++
					continue
				}
			case 0x309a:
				if HandakutenAllowed(c) {
					sb.WriteRune(c + 2)
					i++
					continue
				}
			}
		}
		sb.WriteRune(c)
	}
	return sb.String()
}

// NormalizeCJKCompatibilityCharacters NFKD-decomposes exactly the runes
// in the CJK compatibility ideographs block.
func NormalizeCJKCompatibilityCharacters(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, c := range text {
		if cjk.IsCodePointInRange(c, cjk.CompatibilityIdeographsRange) {
			sb.WriteString(norm.NFKD.String(string(c)))
		} else {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

// IsEmphaticCodePoint reports whether r is used for emphasis: a small
// tsu or a prolonged sound mark.
func IsEmphaticCodePoint(r rune) bool {
	return r == HiraganaSmallTsu || r == KatakanaSmallTsu || r == KanaProlongedSoundMark
}

// CollapseEmphaticSequences collapses runs of emphatic characters inside
// a word to a single character (すっっごーーい → すっごーい), or removes
// them entirely with fullCollapse (→ すごい). Leading and trailing
// emphatic runs are kept as they are.
func CollapseEmphaticSequences(text string, fullCollapse bool) string {
	runes := []rune(text)
	left := 0
	for left < len(runes) && IsEmphaticCodePoint(runes[left]) {
		left++
	}
	right := len(runes)
	for right > left && IsEmphaticCodePoint(runes[right-1]) {
		right--
	}
	if left >= right {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text))
	sb.WriteString(string(runes[:left]))
	var current rune = -1
	for _, c := range runes[left:right] {
		if IsEmphaticCodePoint(c) {
			if current != c {
				current = c
				if !fullCollapse {
					sb.WriteRune(c)
				}
			}
		} else {
			current = -1
			sb.WriteRune(c)
		}
	}
	sb.WriteString(string(runes[right:]))
	return sb.String()
}
