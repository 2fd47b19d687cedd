package ja

import (
	"context"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

type tokenizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalTokenizerPool *tokenizerPool

func init() {
	globalTokenizerPool = &tokenizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
		})
	globalTokenizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalTokenizerPool.opool = pool.NewObjectPool(globalTokenizerPool.ctx, factory, config)
}

func borrowTokenizer() (*tokenizer.Tokenizer, error) {
	o, err := globalTokenizerPool.opool.BorrowObject(globalTokenizerPool.ctx)
	if err != nil {
		return nil, err
	}
	return o.(*tokenizer.Tokenizer), nil
}

func returnTokenizer(t *tokenizer.Tokenizer) {
	_ = globalTokenizerPool.opool.ReturnObject(globalTokenizerPool.ctx, t)
}

// A TermReading pairs a surface form with its kana reading.
type TermReading struct {
	Term    string
	Reading string
}

// Readings segments Japanese text with a morphological analyzer and returns
// the surface form and hiragana reading of every token. Tokens the analyzer
// has no reading for (unknown words, punctuation) carry an empty Reading.
// Analyzers are pooled for efficiency.
func Readings(text string) ([]TermReading, error) {
	tok, err := borrowTokenizer()
	if err != nil {
		CT().Errorf("japanese reading analysis: %v", err)
		return nil, err
	}
	defer returnTokenizer(tok)
	tokens := tok.Tokenize(text)
	readings := make([]TermReading, 0, len(tokens))
	for _, t := range tokens {
		tr := TermReading{Term: t.Surface}
		if r, ok := t.Reading(); ok && r != "*" {
			tr.Reading = ConvertKatakanaToHiragana(r, false)
		}
		if IsStringEntirelyKana(tr.Term) && tr.Reading == "" {
			tr.Reading = ConvertKatakanaToHiragana(tr.Term, false)
		}
		readings = append(readings, tr)
	}
	return readings, nil
}

// ReadingForTerm returns the hiragana reading of a single term, obtained by
// concatenating the per-token readings. Tokens without a reading contribute
// their surface form unchanged.
func ReadingForTerm(term string) (string, error) {
	readings, err := Readings(term)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, tr := range readings {
		if tr.Reading != "" {
			sb.WriteString(tr.Reading)
		} else {
			sb.WriteString(tr.Term)
		}
	}
	return sb.String(), nil
}
