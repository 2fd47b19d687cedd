package deinflect

import "regexp"

// DeinflectorKind selects one of a fixed, closed set of deinflection
// strategies. The set is small and stable, so rules carry a tag plus
// parameters instead of a function value; rule tables stay plain,
// printable data and the transformer resolves the tag with a switch at
// deinflection time.
type DeinflectorKind int8

// Deinflection strategies.
const (
	GenericSuffix                 DeinflectorKind = iota // replace the inflected suffix
	GenericPrefix                                        // replace the inflected prefix
	GenericWholeWord                                     // replace the entire text
	EnPhrasalVerbInflection                              // replace the verb, keep the particle
	EnPhrasalVerbInterposedObject                        // collapse "<verb> <object…> <particle>"
	EsPronominal                                         // drop the clitic pronoun, append reflexive "se"
	GenericStemChange                                    // undo a vowel stem change, then the ending
	SpecialCasedStemChange                               // stem change with a prefix-dependent special case
)

// A Deinflector tags a rule with its deinflection strategy. The stem-change
// variants carry their parameters here; everything else reads the rule's
// Inflected and Replacement fields.
type Deinflector struct {
	Kind DeinflectorKind

	// GenericStemChange and SpecialCasedStemChange.
	StemFrom      string // inflected stem, e.g. "ie"
	StemTo        string // dictionary stem, e.g. "e"
	EndingPattern string // alternation of inflected endings, e.g. "(o|as|a|an)"
	EndingTo      string // dictionary ending, e.g. "ar"

	// SpecialCasedStemChange only. When the text starts with SpecialPrefix
	// the special stem pair applies instead of the default pair
	// (e.g. "jugar": "jue…" undoes ue→u, everything else ue→o).
	SpecialPrefix   string
	SpecialStemFrom string
	SpecialStemTo   string

	// EnPhrasalVerbInflection and EnPhrasalVerbInterposedObject.
	// Unanchored alternations over the phrasal-verb lexicon, e.g.
	// "aback|about|…" for particles.
	WordAlternation     string // particles and prepositions
	ParticleAlternation string // particles only
}

// SuffixInflection builds a rule replacing the suffix inflected by
// deinflected. The rule applies only to candidates whose conditions
// intersect conditionsIn and produces candidates carrying conditionsOut.
func SuffixInflection(inflected, deinflected string, conditionsIn, conditionsOut []string) Rule {
	return Rule{
		Kind:          SuffixRule,
		Inflected:     inflected,
		Pattern:       regexp.QuoteMeta(inflected),
		Replacement:   deinflected,
		Deinflect:     Deinflector{Kind: GenericSuffix},
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}

// PrefixInflection builds a rule replacing the prefix inflected by
// deinflected.
func PrefixInflection(inflected, deinflected string, conditionsIn, conditionsOut []string) Rule {
	return Rule{
		Kind:          PrefixRule,
		Inflected:     inflected,
		Pattern:       regexp.QuoteMeta(inflected),
		Replacement:   deinflected,
		Deinflect:     Deinflector{Kind: GenericPrefix},
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}

// WholeWordInflection builds a rule replacing the complete word inflected
// by deinflected.
func WholeWordInflection(inflected, deinflected string, conditionsIn, conditionsOut []string) Rule {
	return Rule{
		Kind:          WholeWordRule,
		Inflected:     inflected,
		Pattern:       regexp.QuoteMeta(inflected),
		Replacement:   deinflected,
		Deinflect:     Deinflector{Kind: GenericWholeWord},
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}
