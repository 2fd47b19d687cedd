package ja

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func TestKanaConversion(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	if got := ConvertHiraganaToKatakana("あかちゃん"); got != "アカチャン" {
		t.Errorf("expected アカチャン, got %q", got)
	}
	if got := ConvertKatakanaToHiragana("アカチャン", false); got != "あかちゃん" {
		t.Errorf("expected あかちゃん, got %q", got)
	}
	// The prolonged sound mark resolves by the previous kana's vowel
	// row; the o-row prolongs to う.
	if got := ConvertKatakanaToHiragana("コーヒー", false); got != "こうひい" {
		t.Errorf("expected こうひい, got %q", got)
	}
	// ...unless asked to keep it.
	if got := ConvertKatakanaToHiragana("コーヒー", true); got != "こーひー" {
		t.Errorf("expected こーひー, got %q", got)
	}
}

func TestKanaClassification(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if !IsStringEntirelyKana("あかちゃん") {
		t.Errorf("expected あかちゃん to be entirely kana")
	}
	if IsStringEntirelyKana("読め") || IsStringEntirelyKana("") {
		t.Errorf("expected kanji text and empty text not to be entirely kana")
	}
	if !IsStringPartiallyJapanese("x読y") {
		t.Errorf("expected mixed text to count as partially Japanese")
	}
	if IsStringPartiallyJapanese("latin only") {
		t.Errorf("expected pure Latin text not to count as Japanese")
	}
	if !IsCodePointKanji('読') || IsCodePointKanji('あ') {
		t.Errorf("kanji classification broken")
	}
}

func TestKanaMorae(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	morae := KanaMorae("アカチャン")
	want := []string{"ア", "カ", "チャ", "ン"}
	if !reflect.DeepEqual(morae, want) {
		t.Errorf("expected morae %v, got %v", want, morae)
	}
	if n := KanaMoraCount("とうきょう"); n != 4 {
		t.Errorf("expected 4 morae in とうきょう, got %d", n)
	}
}

func TestRomajiToKana(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	cases := []struct{ in, want string }{
		{"akachan", "あかちゃん"},
		{"kippu", "きっぷ"},    // doubled consonant
		{"shinbun", "しんぶん"}, // n before a consonant
		{"kantan", "かんたん"},
		{"ka-ki", "かーき"},
	}
	for _, c := range cases {
		if got := ConvertAlphabeticToKana(c.in); got != c.want {
			t.Errorf("ConvertAlphabeticToKana(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStandardizeKanjiVariants(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if got := StandardizeKanjiVariants("萬"); got != "万" {
		t.Errorf("expected 萬 → 万, got %q", got)
	}
	if got := StandardizeKanjiVariants("學校"); got != "学校" {
		t.Errorf("expected 學校 → 学校, got %q", got)
	}
}

func TestNormalizeCombiningCharacters(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if got := NormalizeCombiningCharacters("が"); got != "が" {
		t.Errorf("expected か+dakuten → が, got %q", got)
	}
	if got := NormalizeCombiningCharacters("ぱ"); got != "ぱ" {
		t.Errorf("expected は+handakuten → ぱ, got %q", got)
	}
	// A mark with no precomposed form stays untouched.
	if got := NormalizeCombiningCharacters("あ゙"); got != "あ゙" {
		t.Errorf("expected あ+dakuten to stay, got %q", got)
	}
}

func TestCollapseEmphaticSequences(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if got := CollapseEmphaticSequences("すっっごーーい", false); got != "すっごーい" {
		t.Errorf("partial collapse: got %q", got)
	}
	if got := CollapseEmphaticSequences("すっっごーーい", true); got != "すごい" {
		t.Errorf("full collapse: got %q", got)
	}
	// Leading and trailing emphatics are not part of a word and stay.
	if got := CollapseEmphaticSequences("っすごい", true); got != "っすごい" {
		t.Errorf("leading emphatic: got %q", got)
	}
}

func TestStemLength(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	if n := StemLength("食べる", "食べた"); n != len("食べ") {
		t.Errorf("expected the stem of 食べる/食べた to be 食べ, got %d bytes", n)
	}
	if n := StemLength("abc", "xyz"); n != 0 {
		t.Errorf("expected no common stem, got %d", n)
	}
}

func TestDistributeFurigana(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	segments := DistributeFurigana("読む", "よむ")
	want := []FuriganaSegment{{Text: "読", Reading: "よ"}, {Text: "む", Reading: ""}}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("expected %v, got %v", want, segments)
	}
	// A pure kana term reads as itself.
	segments = DistributeFurigana("よむ", "よむ")
	want = []FuriganaSegment{{Text: "よむ", Reading: ""}}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("expected %v, got %v", want, segments)
	}
	// No unique partition: annotate the whole term.
	segments = DistributeFurigana("山河", "さんが")
	if len(segments) != 1 || segments[0].Text != "山河" || segments[0].Reading != "さんが" {
		t.Errorf("expected a single whole-term segment, got %v", segments)
	}
}

func TestDistributeFuriganaInflected(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	segments := DistributeFuriganaInflected("食べる", "たべる", "食べた")
	want := []FuriganaSegment{{Text: "食", Reading: "た"}, {Text: "べた", Reading: ""}}
	if !reflect.DeepEqual(segments, want) {
		t.Errorf("expected %v, got %v", want, segments)
	}
}
