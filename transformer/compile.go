package transformer

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/npillmayer/deinflect"
)

// internalTransform is the compiled form of a deinflect.Transform. The
// heuristic regex is the untrimmed alternation of all rule patterns and
// is used to skip transforms that cannot possibly apply to a text.
type internalTransform struct {
	id          string
	name        string
	description string
	rules       []*internalRule
	heuristic   *regexp2.Regexp
}

// internalRule is the compiled form of a deinflect.Rule: patterns are
// compiled and anchored, condition identifier lists are resolved to flag
// masks.
type internalRule struct {
	kind          deinflect.RuleKind
	inflected     string // literal affix for the generic kinds
	replacement   string
	deinflector   deinflect.Deinflector
	isInflected   *regexp2.Regexp // anchored rule pattern
	deinflectRe   *regexp2.Regexp // replace pattern for the phrasal kinds
	endingRe      *regexp2.Regexp // ending pattern for the stem-change kinds
	conditionsIn  uint32
	conditionsOut uint32
}

func (it *internalTransform) maybeApplies(text string) bool {
	m, err := it.heuristic.MatchString(text)
	return err == nil && m
}

func (r *internalRule) matches(text string) bool {
	m, err := r.isInflected.MatchString(text)
	return err == nil && m
}

// anchor decorates a rule's pattern according to its kind. Suffix
// patterns are tied to the end of the text, prefix patterns to the start,
// whole-word patterns to both; OtherRule patterns are taken verbatim.
func anchor(kind deinflect.RuleKind, pattern string) string {
	switch kind {
	case deinflect.SuffixRule:
		return pattern + "$"
	case deinflect.PrefixRule:
		return "^" + pattern
	case deinflect.WholeWordRule:
		return "^" + pattern + "$"
	}
	return pattern
}

// compileTransforms compiles every transform of a descriptor against the
// resolved condition flag map. Nothing is retained on failure.
func compileTransforms(tm *deinflect.TransformMap, flags map[string]uint32) ([]*internalTransform, error) {
	if tm == nil {
		return nil, nil
	}
	compiled := make([]*internalTransform, 0, tm.Size())
	var firstErr error
	tm.Each(func(id string, transform deinflect.Transform) {
		if firstErr != nil {
			return
		}
		it := &internalTransform{
			id:          id,
			name:        transform.Name,
			description: transform.Description,
			rules:       make([]*internalRule, 0, len(transform.Rules)),
		}
		patterns := make([]string, 0, len(transform.Rules))
		for j, rule := range transform.Rules {
			ir, err := compileRule(id, j, rule, flags)
			if err != nil {
				firstErr = err
				return
			}
			it.rules = append(it.rules, ir)
			patterns = append(patterns, anchor(rule.Kind, rule.Pattern))
		}
		heuristic, err := regexp2.Compile(strings.Join(patterns, "|"), regexp2.None)
		if err != nil {
			firstErr = &deinflect.InvalidPatternError{Transform: id, RuleIndex: -1, Cause: err}
			return
		}
		it.heuristic = heuristic
		compiled = append(compiled, it)
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return compiled, nil
}

func compileRule(transformID string, j int, rule deinflect.Rule, flags map[string]uint32) (*internalRule, error) {
	conditionsIn, err := ResolveMask(flags, rule.ConditionsIn)
	if err != nil {
		return nil, err
	}
	conditionsOut, err := ResolveMask(flags, rule.ConditionsOut)
	if err != nil {
		return nil, err
	}
	isInflected, err := regexp2.Compile(anchor(rule.Kind, rule.Pattern), regexp2.None)
	if err != nil {
		return nil, &deinflect.InvalidPatternError{Transform: transformID, RuleIndex: j, Cause: err}
	}
	ir := &internalRule{
		kind:          rule.Kind,
		inflected:     rule.Inflected,
		replacement:   rule.Replacement,
		deinflector:   rule.Deinflect,
		isInflected:   isInflected,
		conditionsIn:  conditionsIn,
		conditionsOut: conditionsOut,
	}
	d := rule.Deinflect
	switch d.Kind {
	case deinflect.EnPhrasalVerbInflection:
		pattern := regexp.QuoteMeta(rule.Inflected) + "(?= (?:" + d.WordAlternation + "))"
		ir.deinflectRe, err = regexp2.Compile(pattern, regexp2.None)
	case deinflect.EnPhrasalVerbInterposedObject:
		pattern := `(?<=\w) (?:(?!\b(` + d.WordAlternation + `)\b).)+ (?=(?:` + d.ParticleAlternation + `))`
		ir.deinflectRe, err = regexp2.Compile(pattern, regexp2.None)
	case deinflect.GenericStemChange, deinflect.SpecialCasedStemChange:
		ir.endingRe, err = regexp2.Compile(d.EndingPattern+"$", regexp2.None)
	}
	if err != nil {
		return nil, &deinflect.InvalidPatternError{Transform: transformID, RuleIndex: j, Cause: err}
	}
	return ir, nil
}

// deinflect derives the deinflected text for a rule the engine has
// already matched against text.
func (r *internalRule) deinflect(text string) string {
	d := r.deinflector
	switch d.Kind {
	case deinflect.GenericSuffix:
		if out, err := r.isInflected.Replace(text, r.replacement, -1, 1); err == nil {
			return out
		}
		return text
	case deinflect.GenericPrefix:
		if rest, ok := cutPrefix(text, r.inflected); ok {
			return r.replacement + rest
		}
		return text
	case deinflect.GenericWholeWord:
		return r.replacement
	case deinflect.EnPhrasalVerbInflection:
		if out, err := r.deinflectRe.Replace(text, r.replacement, -1, 1); err == nil {
			return out
		}
		return text
	case deinflect.EnPhrasalVerbInterposedObject:
		if out, err := r.deinflectRe.Replace(text, " ", -1, 1); err == nil {
			return out
		}
		return text
	case deinflect.EsPronominal:
		// Groups: 1 pronoun, 2 verb stem, 3 infinitive ending. The match
		// is replaced in place; text around the clitic group survives.
		if out, err := r.isInflected.Replace(text, "${2}${3}se", -1, 1); err == nil {
			return out
		}
		return text
	case deinflect.GenericStemChange:
		return r.stemChange(text, d.StemFrom, d.StemTo, d.EndingTo)
	case deinflect.SpecialCasedStemChange:
		if strings.HasPrefix(text, d.SpecialPrefix) {
			return r.stemChange(text, d.SpecialStemFrom, d.SpecialStemTo, d.EndingTo)
		}
		return r.stemChange(text, d.StemFrom, d.StemTo, d.EndingTo)
	}
	return text
}

// stemChange undoes a vowel stem change (first occurrence only), then
// rewrites the inflected ending to the dictionary ending.
func (r *internalRule) stemChange(text, stemFrom, stemTo, endingTo string) string {
	out := strings.Replace(text, stemFrom, stemTo, 1)
	if replaced, err := r.endingRe.Replace(out, endingTo, -1, 1); err == nil {
		return replaced
	}
	return out
}

func cutPrefix(s, prefix string) (string, bool) {
	if !strings.HasPrefix(s, prefix) {
		return s, false
	}
	return s[len(prefix):], true
}
