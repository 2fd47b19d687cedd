package transformer

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/npillmayer/deinflect"
	"github.com/npillmayer/deinflect/en"
	"github.com/npillmayer/deinflect/es"
	"github.com/npillmayer/deinflect/ja"
)

// A LanguageSummary describes one language known to a MultiTransformer.
type LanguageSummary struct {
	Language    string // registry key, e.g. "ja"
	ISO639_3    string // three-letter code, e.g. "jpn"
	ExampleText string
}

// A MultiTransformer is a registry of per-language Transformers, keyed by
// language identifier. Operations mirror those of Transformer with the
// language as their first argument; an unknown language falls through to
// a trivial result instead of failing.
type MultiTransformer struct {
	inner       map[string]*Transformer
	descriptors map[string]*deinflect.LanguageDescriptor
	order       []string
}

// NewMultiTransformer creates a registry holding one transformer per
// known language descriptor (currently Japanese, English and Spanish),
// each compiled eagerly.
func NewMultiTransformer() (*MultiTransformer, error) {
	return NewMultiTransformerFor(ja.Descriptor(), en.Descriptor(), es.Descriptor())
}

// NewMultiTransformerFor creates a registry for an explicit descriptor
// list.
func NewMultiTransformerFor(descriptors ...*deinflect.LanguageDescriptor) (*MultiTransformer, error) {
	m := &MultiTransformer{
		inner:       make(map[string]*Transformer, len(descriptors)),
		descriptors: make(map[string]*deinflect.LanguageDescriptor, len(descriptors)),
	}
	for _, d := range descriptors {
		lt := NewTransformer()
		if err := lt.Install(d); err != nil {
			return nil, err
		}
		m.inner[d.Language] = lt
		m.descriptors[d.Language] = d
		m.order = append(m.order, d.Language)
	}
	return m, nil
}

// Transformer returns the per-language transformer, or nil for an
// unknown language.
func (m *MultiTransformer) Transformer(lang string) *Transformer {
	return m.inner[lang]
}

// Languages lists the installed languages in registration order.
func (m *MultiTransformer) Languages() []LanguageSummary {
	summaries := make([]LanguageSummary, 0, len(m.order))
	for _, lang := range m.order {
		d := m.descriptors[lang]
		summaries = append(summaries, LanguageSummary{
			Language:    d.Language,
			ISO639_3:    d.ISO639_3,
			ExampleText: d.ExampleText,
		})
	}
	return summaries
}

// IsTextLookupWorthy reports whether looking text up in lang makes sense
// at all (for Japanese: does the text contain any Japanese characters?).
// Unknown languages report false.
func (m *MultiTransformer) IsTextLookupWorthy(lang string, text string) bool {
	d, ok := m.descriptors[lang]
	if !ok || d.IsTextLookupWorthy == nil {
		return false
	}
	return d.IsTextLookupWorthy(text)
}

// Transform enumerates deinflection candidates of text for the given
// language. For an unknown language the result is the single verbatim
// node.
func (m *MultiTransformer) Transform(lang string, text string) []deinflect.TransformedText {
	if lt, ok := m.inner[lang]; ok {
		return lt.Transform(text)
	}
	return []deinflect.TransformedText{{Text: text, Conditions: 0, Trace: nil}}
}

// ConditionFlagsFromPartsOfSpeech returns the union of flags of the named
// dictionary-form conditions, or 0 for an unknown language.
func (m *MultiTransformer) ConditionFlagsFromPartsOfSpeech(lang string, ids []string) uint32 {
	if lt, ok := m.inner[lang]; ok {
		return lt.ConditionFlagsFromPartsOfSpeech(ids)
	}
	return 0
}

// ConditionFlagsFromConditionTypes returns the union of flags of the
// named conditions, or 0 for an unknown language.
func (m *MultiTransformer) ConditionFlagsFromConditionTypes(lang string, ids []string) uint32 {
	if lt, ok := m.inner[lang]; ok {
		return lt.ConditionFlagsFromConditionTypes(ids)
	}
	return 0
}

// ConditionFlagsFromSingleConditionType returns the flag of one named
// condition, or 0 for an unknown language.
func (m *MultiTransformer) ConditionFlagsFromSingleConditionType(lang string, id string) uint32 {
	if lt, ok := m.inner[lang]; ok {
		return lt.ConditionFlagsFromSingleConditionType(id)
	}
	return 0
}

// UserFacingInflectionRules maps transform identifiers to display
// records. For an unknown language every identifier maps to itself.
func (m *MultiTransformer) UserFacingInflectionRules(lang string, ids []string) []deinflect.InflectionRule {
	if lt, ok := m.inner[lang]; ok {
		return lt.UserFacingInflectionRules(ids)
	}
	rules := make([]deinflect.InflectionRule, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, deinflect.InflectionRule{Name: id})
	}
	return rules
}

// TransformCurrent deinflects text in the language selected by
// DefaultLanguage.
func (m *MultiTransformer) TransformCurrent(text string) []deinflect.TransformedText {
	return m.Transform(m.DefaultLanguage(), text)
}

// DefaultLanguage picks the installed language closest to the user's
// locale. Detection failures fall back to "en-US" before matching; with
// no installed languages the empty string is returned.
func (m *MultiTransformer) DefaultLanguage() string {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		CT().Errorf(err.Error())
		userLocale = "en-US"
		CT().Infof("transformer sets default user locale %v", userLocale)
	} else {
		CT().Infof("transformer detected user locale %v", userLocale)
	}
	if len(m.order) == 0 {
		return ""
	}
	tags := make([]language.Tag, 0, len(m.order))
	for _, lang := range m.order {
		tags = append(tags, language.Make(lang))
	}
	matcher := language.NewMatcher(tags) // first language is the fallback
	_, index, confidence := matcher.Match(language.Make(userLocale))
	if confidence == language.No {
		return m.order[0]
	}
	return m.order[index]
}
