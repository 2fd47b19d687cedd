package en

import (
	"strings"

	"github.com/npillmayer/deinflect"
)

// Particles that can close a phrasal verb ("look up", "give in").
var phrasalVerbParticles = []string{
	"aboard", "about", "above", "across", "ahead", "alongside", "apart", "around",
	"aside", "astray", "away", "back", "before", "behind", "below", "beneath",
	"besides", "between", "beyond", "by", "close", "down", "east", "west", "north",
	"south", "eastward", "westward", "northward", "southward", "forward", "backward",
	"backwards", "forwards", "home", "in", "inside", "instead", "near", "off", "on",
	"opposite", "out", "outside", "over", "overhead", "past", "round", "since",
	"through", "throughout", "together", "under", "underneath", "up", "within",
	"without",
}

// Prepositions that can follow a phrasal verb ("come up with").
var phrasalVerbPrepositions = []string{
	"aback", "about", "above", "across", "after", "against", "ahead", "along",
	"among", "apart", "around", "as", "aside", "at", "away", "back", "before",
	"behind", "below", "between", "beyond", "by", "down", "even", "for", "forth",
	"forward", "from", "in", "into", "of", "off", "on", "onto", "open", "out",
	"over", "past", "round", "through", "to", "together", "toward", "towards",
	"under", "up", "upon", "way", "with", "without",
}

var (
	particlesDisjunction       = strings.Join(phrasalVerbParticles, "|")
	phrasalVerbWordDisjunction = joinUnique(phrasalVerbParticles, phrasalVerbPrepositions)
)

// joinUnique joins the union of both word lists into a regex alternation,
// keeping first-occurrence order so the pattern is deterministic.
func joinUnique(lists ...[]string) string {
	seen := make(map[string]bool)
	var words []string
	for _, list := range lists {
		for _, w := range list {
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}
	return strings.Join(words, "|")
}

// phrasalVerbInflection builds a rule that deinflects the verb of a phrasal
// verb while keeping the particle: "looked up" → "look up".
func phrasalVerbInflection(inflected, deinflected string) deinflect.Rule {
	return deinflect.Rule{
		Kind:        deinflect.OtherRule,
		Inflected:   inflected,
		Pattern:     `^\w*` + inflected + ` (?:` + phrasalVerbWordDisjunction + `)`,
		Replacement: deinflected,
		Deinflect: deinflect.Deinflector{
			Kind:            deinflect.EnPhrasalVerbInflection,
			WordAlternation: phrasalVerbWordDisjunction,
		},
		ConditionsIn:  []string{"v"},
		ConditionsOut: []string{"v_phr"},
	}
}

// phrasalVerbInflectionsFromSuffixRules derives a phrasal-verb variant from
// each plain suffix rule: the suffix now has to appear before a particle
// instead of at the end of the text.
func phrasalVerbInflectionsFromSuffixRules(rules []deinflect.Rule) []deinflect.Rule {
	out := make([]deinflect.Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, phrasalVerbInflection(r.Inflected, r.Replacement))
	}
	return out
}

// phrasalVerbInterposedObjectRule collapses the object interposed between a
// verb and its particle: "look something up" → "look up". The object must
// not itself be a particle or preposition.
func phrasalVerbInterposedObjectRule() deinflect.Rule {
	return deinflect.Rule{
		Kind:    deinflect.OtherRule,
		Pattern: `^\w* (?:(?!\b(` + phrasalVerbWordDisjunction + `)\b).)+ (?:` + particlesDisjunction + `)`,
		Deinflect: deinflect.Deinflector{
			Kind:                deinflect.EnPhrasalVerbInterposedObject,
			WordAlternation:     phrasalVerbWordDisjunction,
			ParticleAlternation: particlesDisjunction,
		},
		ConditionsOut: []string{"v_phr"},
	}
}
