package ja

import "strings"

// romajiToHiragana maps Hepburn (and common Kunrei variants) syllables to
// hiragana. Longest-match lookup, so compound syllables come first in
// matching order, not in map order.
var romajiToHiragana = map[string]string{
	"a": "あ", "i": "い", "u": "う", "e": "え", "o": "お",
	"ka": "か", "ki": "き", "ku": "く", "ke": "け", "ko": "こ",
	"sa": "さ", "shi": "し", "si": "し", "su": "す", "se": "せ", "so": "そ",
	"ta": "た", "chi": "ち", "ti": "ち", "tsu": "つ", "tu": "つ", "te": "て", "to": "と",
	"na": "な", "ni": "に", "nu": "ぬ", "ne": "ね", "no": "の",
	"ha": "は", "hi": "ひ", "fu": "ふ", "hu": "ふ", "he": "へ", "ho": "ほ",
	"ma": "ま", "mi": "み", "mu": "む", "me": "め", "mo": "も",
	"ya": "や", "yu": "ゆ", "yo": "よ",
	"ra": "ら", "ri": "り", "ru": "る", "re": "れ", "ro": "ろ",
	"wa": "わ", "wi": "ゐ", "we": "ゑ", "wo": "を",
	"ga": "が", "gi": "ぎ", "gu": "ぐ", "ge": "げ", "go": "ご",
	"za": "ざ", "ji": "じ", "zi": "じ", "zu": "ず", "ze": "ぜ", "zo": "ぞ",
	"da": "だ", "di": "ぢ", "du": "づ", "de": "で", "do": "ど",
	"ba": "ば", "bi": "び", "bu": "ぶ", "be": "べ", "bo": "ぼ",
	"pa": "ぱ", "pi": "ぴ", "pu": "ぷ", "pe": "ぺ", "po": "ぽ",
	"kya": "きゃ", "kyu": "きゅ", "kyo": "きょ",
	"sha": "しゃ", "shu": "しゅ", "sho": "しょ",
	"sya": "しゃ", "syu": "しゅ", "syo": "しょ",
	"cha": "ちゃ", "chu": "ちゅ", "cho": "ちょ",
	"tya": "ちゃ", "tyu": "ちゅ", "tyo": "ちょ",
	"nya": "にゃ", "nyu": "にゅ", "nyo": "にょ",
	"hya": "ひゃ", "hyu": "ひゅ", "hyo": "ひょ",
	"mya": "みゃ", "myu": "みゅ", "myo": "みょ",
	"rya": "りゃ", "ryu": "りゅ", "ryo": "りょ",
	"gya": "ぎゃ", "gyu": "ぎゅ", "gyo": "ぎょ",
	"ja": "じゃ", "ju": "じゅ", "jo": "じょ",
	"jya": "じゃ", "jyu": "じゅ", "jyo": "じょ",
	"bya": "びゃ", "byu": "びゅ", "byo": "びょ",
	"pya": "ぴゃ", "pyu": "ぴゅ", "pyo": "ぴょ",
	"fa": "ふぁ", "fi": "ふぃ", "fe": "ふぇ", "fo": "ふぉ",
	"va": "ゔぁ", "vi": "ゔぃ", "vu": "ゔ", "ve": "ゔぇ", "vo": "ゔぉ",
	"n": "ん", "nn": "ん", "-": "ー",
}

func isRomajiConsonant(c byte) bool {
	return c >= 'a' && c <= 'z' && !strings.ContainsRune("aeiou", rune(c))
}

// ConvertAlphabeticToKana converts Latin romaji input to hiragana
// (akachan → あかちゃん). A doubled consonant becomes a small tsu, a
// syllabic n before a consonant becomes ん; characters that do not form a
// syllable are passed through unchanged.
func ConvertAlphabeticToKana(text string) string {
	lower := strings.ToLower(text)
	var sb strings.Builder
	sb.Grow(len(lower) * 3)
	i := 0
	for i < len(lower) {
		c := lower[i]
		// doubled consonant → small tsu
		if i+1 < len(lower) && c == lower[i+1] && c != 'n' && isRomajiConsonant(c) {
			sb.WriteRune(HiraganaSmallTsu)
			i++
			continue
		}
		// syllabic n before a consonant or at the end
		if c == 'n' && (i+1 >= len(lower) || isRomajiConsonant(lower[i+1])) {
			if i+1 < len(lower) && lower[i+1] == 'n' {
				i++ // "nn" spells a single ん
			}
			sb.WriteString("ん")
			i++
			continue
		}
		matched := false
		for l := 3; l >= 1; l-- {
			if i+l > len(lower) {
				continue
			}
			if kana, ok := romajiToHiragana[lower[i:i+l]]; ok {
				sb.WriteString(kana)
				i += l
				matched = true
				break
			}
		}
		if !matched {
			sb.WriteByte(lower[i])
			i++
		}
	}
	return sb.String()
}
