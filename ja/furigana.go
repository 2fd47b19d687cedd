package ja

import "strings"

// A FuriganaSegment annotates a span of a term with the reading covering
// it. Segments with an empty reading are kana spans that read as
// themselves.
type FuriganaSegment struct {
	Text    string
	Reading string
}

func furiganaSegment(text, reading string) FuriganaSegment {
	return FuriganaSegment{Text: text, Reading: reading}
}

// furiganaGroup is a run of the term that is either entirely kana or
// entirely non-kana.
type furiganaGroup struct {
	isKana         bool
	text           string
	textNormalized string // hiragana-normalized, kana groups only
}

// furiganaKanaSegments aligns a kana run against its reading character by
// character, splitting at every position where they diverge (voicing
// differences and similar).
func furiganaKanaSegments(text, reading string) []FuriganaSegment {
	var segments []FuriganaSegment
	if text == "" {
		return segments
	}
	tr := []rune(text)
	rr := []rune(reading)
	state := len(rr) > 0 && tr[0] == rr[0]
	start, readingStart := 0, 0
	for i := 0; i < len(tr) && i < len(rr); i++ {
		newState := tr[i] == rr[i]
		if state != newState {
			seg := furiganaSegment(string(tr[start:i]), "")
			if !state {
				seg.Reading = string(rr[readingStart:i])
			}
			segments = append(segments, seg)
			state = newState
			start, readingStart = i, i
		}
	}
	seg := furiganaSegment(string(tr[start:]), "")
	if !state {
		seg.Reading = string(rr[readingStart:])
	}
	segments = append(segments, seg)
	return segments
}

// segmentize recursively partitions the reading over the term's groups.
// Kana groups must match a prefix of the normalized reading; for a
// non-kana group every reading prefix from longest to shortest is tried,
// and the partition is accepted only when it is unique.
func segmentize(reading, readingNormalized string, groups []furiganaGroup) ([]FuriganaSegment, bool) {
	if len(groups) == 0 {
		if reading == "" {
			return []FuriganaSegment{}, true
		}
		return nil, false
	}
	group := groups[0]
	if group.isKana {
		if group.textNormalized == "" || !strings.HasPrefix(readingNormalized, group.textNormalized) {
			return nil, false
		}
		n := len([]rune(group.textNormalized))
		readingIdx := runeIndex(reading, n)
		normIdx := runeIndex(readingNormalized, n)
		segments, ok := segmentize(reading[readingIdx:], readingNormalized[normIdx:], groups[1:])
		if !ok {
			return nil, false
		}
		readingPrefix := reading[:readingIdx]
		if readingPrefix == group.text {
			return append([]FuriganaSegment{furiganaSegment(group.text, "")}, segments...), true
		}
		kanaSegments := furiganaKanaSegments(group.text, readingPrefix)
		return append(kanaSegments, segments...), true
	}
	var result []FuriganaSegment
	found := false
	readingRunes := len([]rune(reading))
	textRunes := len([]rune(group.text))
	for n := readingRunes; n >= textRunes; n-- {
		readingIdx := runeIndex(reading, n)
		normIdx := runeIndex(readingNormalized, n)
		segments, ok := segmentize(reading[readingIdx:], readingNormalized[normIdx:], groups[1:])
		if !ok {
			continue
		}
		if found {
			// ambiguous partition
			return nil, false
		}
		found = true
		result = append([]FuriganaSegment{furiganaSegment(group.text, reading[:readingIdx])}, segments...)
		if len(groups) == 1 {
			break
		}
	}
	return result, found
}

// runeIndex returns the byte index of the n-th rune of s, or len(s) when
// s is shorter.
func runeIndex(s string, n int) int {
	count := 0
	for i := range s {
		if count == n {
			return i
		}
		count++
	}
	return len(s)
}

// DistributeFurigana partitions term into an ordered sequence of
// furigana segments such that concatenating the segment texts yields the
// term, and every non-kana run carries the reading substring covering
// it. When no unique partition exists the whole term is annotated with
// the whole reading.
func DistributeFurigana(term, reading string) []FuriganaSegment {
	if reading == term {
		return []FuriganaSegment{furiganaSegment(term, "")}
	}
	var groups []furiganaGroup
	if term != "" {
		runes := []rune(term)
		currentIsKana := IsCodePointKana(runes[0])
		currentText := string(runes[0])
		for _, c := range runes[1:] {
			isKana := IsCodePointKana(c)
			if isKana == currentIsKana {
				currentText += string(c)
			} else {
				groups = append(groups, furiganaGroup{isKana: currentIsKana, text: currentText})
				currentText = string(c)
				currentIsKana = isKana
			}
		}
		groups = append(groups, furiganaGroup{isKana: currentIsKana, text: currentText})
	}
	for i := range groups {
		if groups[i].isKana {
			groups[i].textNormalized = ConvertKatakanaToHiragana(groups[i].text, false)
		}
	}
	readingNormalized := ConvertKatakanaToHiragana(reading, false)
	if segments, ok := segmentize(reading, readingNormalized, groups); ok {
		return segments
	}
	return []FuriganaSegment{furiganaSegment(term, reading)}
}

// DistributeFuriganaInflected distributes furigana over an inflected
// surface form: term and reading describe the dictionary form, source is
// the surface form found in the text. The common stem keeps its furigana
// from the dictionary form, the inflected remainder is carried over
// unannotated.
func DistributeFuriganaInflected(term, reading, source string) []FuriganaSegment {
	termNormalized := ConvertKatakanaToHiragana(term, false)
	readingNormalized := ConvertKatakanaToHiragana(reading, false)
	sourceNormalized := ConvertKatakanaToHiragana(source, false)

	mainText := term
	stemLength := StemLength(termNormalized, sourceNormalized)

	readingStemLength := StemLength(readingNormalized, sourceNormalized)
	if readingStemLength > 0 && readingStemLength >= stemLength {
		mainText = reading
		stemLength = readingStemLength
		reading = source[:stemLength] + reading[stemLength:]
	}

	var segments []FuriganaSegment
	if stemLength > 0 {
		mainText = source[:stemLength] + mainText[stemLength:]
		consumed := 0
		for _, segment := range DistributeFurigana(mainText, reading) {
			start := consumed
			consumed += len(segment.Text)
			if consumed < stemLength {
				segments = append(segments, segment)
			} else if consumed == stemLength {
				segments = append(segments, segment)
				break
			} else {
				if start < stemLength {
					segments = append(segments, furiganaSegment(mainText[start:stemLength], ""))
				}
				break
			}
		}
	}

	if stemLength < len(source) {
		remainder := source[stemLength:]
		if len(segments) > 0 && segments[len(segments)-1].Reading == "" {
			segments[len(segments)-1].Text += remainder
			return segments
		}
		segments = append(segments, furiganaSegment(remainder, ""))
	}
	return segments
}
