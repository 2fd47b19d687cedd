package deinflect

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// A Condition is a grammatical category a word form may carry: a verb
// class, an adjective class, or an intermediate form such as the Japanese
// -te form. Conditions are declared per language and encoded as bitmask
// flags by the transformer; a condition with sub-conditions receives the
// union of its sub-conditions' flags.
type Condition struct {
	Name             string          // display name
	IsDictionaryForm bool            // a deinflection ending here is a dictionary-form candidate
	SubConditions    []string        // identifiers of conditions whose flags are unioned
	I18n             []ConditionI18n // optional localized display names
}

// ConditionI18n localizes a condition's display name.
type ConditionI18n struct {
	Language string // BCP 47 language code of the localization
	Name     string
}

// TransformI18n localizes a transform's display name and description.
type TransformI18n struct {
	Language    string
	Name        string
	Description string
}

// RuleKind tells the transformer how to anchor a rule's pattern and how to
// derive the deinflected text.
type RuleKind int8

// Rule kinds.
const (
	SuffixRule    RuleKind = iota // pattern matches at the end of the text
	PrefixRule                    // pattern matches at the start of the text
	WholeWordRule                 // pattern must cover the whole text
	OtherRule                     // pattern is used verbatim; Deinflect does the rewrite
)

// A Rule rewrites an inflected surface form to a less inflected one. It is
// guarded by condition masks on both sides: the rule applies only to
// candidates whose current conditions intersect ConditionsIn (or are still
// unconstrained), and a candidate produced by the rule carries
// ConditionsOut. Rules are plain data; all regex compilation happens when a
// descriptor is installed into a transformer.
type Rule struct {
	Kind          RuleKind
	Inflected     string      // literal inflected affix, empty for OtherRule
	Pattern       string      // regular expression over the inflected side (unanchored)
	Replacement   string      // substitutes the matched portion, may be empty
	Deinflect     Deinflector // strategy used to derive the deinflected text
	ConditionsIn  []string
	ConditionsOut []string
}

// A Transform is a named, ordered group of rules sharing one grammatical
// interpretation ("past", "causative", "-te form"). The transformer
// precompiles a heuristic regex over all rule patterns of a transform, so
// that transforms which cannot possibly apply are skipped cheaply.
type Transform struct {
	Name        string
	Description string
	I18n        []TransformI18n
	Rules       []Rule
}

// ConditionMap is an insertion-ordered map from condition identifier to
// Condition. Declaration order is significant: it determines flag
// assignment order and thereby the bit layout of condition masks.
type ConditionMap struct {
	m *linkedhashmap.Map
}

// ConditionEntry pairs a condition identifier with its declaration, for
// literal condition tables.
type ConditionEntry struct {
	ID        string
	Condition Condition
}

// NewConditionMap creates a ConditionMap from entries, preserving their
// order.
func NewConditionMap(entries ...ConditionEntry) *ConditionMap {
	cm := &ConditionMap{m: linkedhashmap.New()}
	for _, e := range entries {
		cm.m.Put(e.ID, e.Condition)
	}
	return cm
}

// Get returns the condition declared under id.
func (cm *ConditionMap) Get(id string) (Condition, bool) {
	v, ok := cm.m.Get(id)
	if !ok {
		return Condition{}, false
	}
	return v.(Condition), true
}

// Size returns the number of declared conditions.
func (cm *ConditionMap) Size() int {
	return cm.m.Size()
}

// Each walks the conditions in declaration order.
func (cm *ConditionMap) Each(f func(id string, c Condition)) {
	cm.m.Each(func(key interface{}, value interface{}) {
		f(key.(string), value.(Condition))
	})
}

// IDs returns the condition identifiers in declaration order.
func (cm *ConditionMap) IDs() []string {
	ids := make([]string, 0, cm.m.Size())
	cm.m.Each(func(key interface{}, _ interface{}) {
		ids = append(ids, key.(string))
	})
	return ids
}

// TransformMap is an insertion-ordered map from transform identifier to
// Transform. Declaration order is significant: the breadth-first search
// visits transforms in this order, which makes result order deterministic.
type TransformMap struct {
	m *linkedhashmap.Map
}

// TransformEntry pairs a transform identifier with its declaration.
type TransformEntry struct {
	ID        string
	Transform Transform
}

// NewTransformMap creates a TransformMap from entries, preserving their
// order.
func NewTransformMap(entries ...TransformEntry) *TransformMap {
	tm := &TransformMap{m: linkedhashmap.New()}
	for _, e := range entries {
		tm.m.Put(e.ID, e.Transform)
	}
	return tm
}

// Get returns the transform declared under id.
func (tm *TransformMap) Get(id string) (Transform, bool) {
	v, ok := tm.m.Get(id)
	if !ok {
		return Transform{}, false
	}
	return v.(Transform), true
}

// Size returns the number of declared transforms.
func (tm *TransformMap) Size() int {
	return tm.m.Size()
}

// Each walks the transforms in declaration order.
func (tm *TransformMap) Each(f func(id string, t Transform)) {
	tm.m.Each(func(key interface{}, value interface{}) {
		f(key.(string), value.(Transform))
	})
}

// A LanguageDescriptor bundles everything the transformer needs to know
// about one language: its condition declarations, its transforms, and the
// text processors suggested for normalizing input before a search.
type LanguageDescriptor struct {
	Language           string            // key used by the multi-language transformer, e.g. "ja"
	ISO639_3           string            // three-letter language code, e.g. "jpn"
	ExampleText        string            // a short example word in this language
	IsTextLookupWorthy func(string) bool // reports whether a lookup in this language makes sense at all
	Conditions         *ConditionMap
	Transforms         *TransformMap
	PreProcessors      []TextProcessor
	PostProcessors     []TextProcessor
}
