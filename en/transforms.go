package en

import (
	"github.com/npillmayer/deinflect"
)

func suffix(inflected, deinflected string, conditionsIn, conditionsOut []string) deinflect.Rule {
	return deinflect.SuffixInflection(inflected, deinflected, conditionsIn, conditionsOut)
}

func prefix(inflected, deinflected string, conditionsIn, conditionsOut []string) deinflect.Rule {
	return deinflect.PrefixInflection(inflected, deinflected, conditionsIn, conditionsOut)
}

func c(ids ...string) []string { return ids }

// doubledConsonantInflection builds one suffix rule per consonant, undoing
// the doubling before the suffix: "stopped" → "stop".
func doubledConsonantInflection(consonants, ending string, conditionsIn, conditionsOut []string) []deinflect.Rule {
	rules := make([]deinflect.Rule, 0, len(consonants))
	for _, csn := range consonants {
		rules = append(rules, suffix(string(csn)+string(csn)+ending, string(csn), conditionsIn, conditionsOut))
	}
	return rules
}

func pastSuffixInflections() []deinflect.Rule {
	return append([]deinflect.Rule{
		suffix("ed", "", c("v"), c("v")),    // "walked"
		suffix("ed", "e", c("v"), c("v")),   // "hoped"
		suffix("ied", "y", c("v"), c("v")),  // "tried"
		suffix("cked", "c", c("v"), c("v")), // "frolicked"
		suffix("laid", "lay", c("v"), c("v")),
		suffix("paid", "pay", c("v"), c("v")),
		suffix("said", "say", c("v"), c("v")),
	}, doubledConsonantInflection("bdgklmnprstz", "ed", c("v"), c("v"))...)
}

func ingSuffixInflections() []deinflect.Rule {
	return append([]deinflect.Rule{
		suffix("ing", "", c("v"), c("v")),    // "walking"
		suffix("ing", "e", c("v"), c("v")),   // "driving"
		suffix("ying", "ie", c("v"), c("v")), // "lying"
		suffix("cking", "c", c("v"), c("v")), // "panicking"
	}, doubledConsonantInflection("bdgklmnprstz", "ing", c("v"), c("v"))...)
}

func thirdPersonSgPresentSuffixInflections() []deinflect.Rule {
	return []deinflect.Rule{
		suffix("s", "", c("v"), c("v")),    // "walks"
		suffix("es", "", c("v"), c("v")),   // "teaches"
		suffix("ies", "y", c("v"), c("v")), // "tries"
	}
}

func conditions() []deinflect.ConditionEntry {
	return []deinflect.ConditionEntry{
		{ID: "v", Condition: deinflect.Condition{
			Name:             "Verb",
			IsDictionaryForm: true,
			SubConditions:    []string{"v_phr"},
		}},
		{ID: "v_phr", Condition: deinflect.Condition{
			Name:             "Phrasal verb",
			IsDictionaryForm: true,
		}},
		{ID: "n", Condition: deinflect.Condition{
			Name:             "Noun",
			IsDictionaryForm: true,
			SubConditions:    []string{"np", "ns"},
		}},
		{ID: "np", Condition: deinflect.Condition{
			Name:             "Noun plural",
			IsDictionaryForm: true,
		}},
		{ID: "ns", Condition: deinflect.Condition{
			Name:             "Noun singular",
			IsDictionaryForm: true,
		}},
		{ID: "adj", Condition: deinflect.Condition{
			Name:             "Adjective",
			IsDictionaryForm: true,
		}},
		{ID: "adv", Condition: deinflect.Condition{
			Name:             "Adverb",
			IsDictionaryForm: true,
		}},
	}
}

func transforms() []deinflect.TransformEntry {
	return []deinflect.TransformEntry{
		{ID: "plural", Transform: deinflect.Transform{
			Name:        "plural",
			Description: "Plural form of a noun",
			Rules: []deinflect.Rule{
				suffix("s", "", c("np"), c("ns")),
			},
		}},
		{ID: "possessive", Transform: deinflect.Transform{
			Name:        "possessive",
			Description: "Possessive form of a noun",
			Rules: []deinflect.Rule{
				suffix("'s", "", c("n"), c("n")),
				suffix("s'", "s", c("n"), c("n")),
			},
		}},
		{ID: "past", Transform: deinflect.Transform{
			Name:        "past",
			Description: "Simple past tense of a verb",
			Rules: append(pastSuffixInflections(),
				phrasalVerbInflectionsFromSuffixRules(pastSuffixInflections())...),
		}},
		{ID: "ing", Transform: deinflect.Transform{
			Name:        "ing",
			Description: "Present participle of a verb",
			Rules: append(ingSuffixInflections(),
				phrasalVerbInflectionsFromSuffixRules(ingSuffixInflections())...),
		}},
		{ID: "3rd pers. sing. pres", Transform: deinflect.Transform{
			Name:        "3rd pers. sing. pres",
			Description: "Third person singular present tense of a verb",
			Rules: append(thirdPersonSgPresentSuffixInflections(),
				phrasalVerbInflectionsFromSuffixRules(thirdPersonSgPresentSuffixInflections())...),
		}},
		{ID: "interposed object", Transform: deinflect.Transform{
			Name:        "interposed object",
			Description: "Phrasal verb with interposed object",
			Rules: []deinflect.Rule{
				phrasalVerbInterposedObjectRule(),
			},
		}},
		{ID: "archaic", Transform: deinflect.Transform{
			Name:        "archaic",
			Description: "Archaic form of a word",
			Rules: []deinflect.Rule{
				suffix("'d", "ed", c("v"), c("v")),
			},
		}},
		{ID: "adverb", Transform: deinflect.Transform{
			Name:        "adverb",
			Description: "Adverb form of an adjective",
			Rules: []deinflect.Rule{
				suffix("ly", "", c("adv"), c("adj")),   // "quickly"
				suffix("ily", "y", c("adv"), c("adj")), // "happily"
				suffix("ly", "le", c("adv"), c("adj")), // "humbly"
			},
		}},
		{ID: "comparative", Transform: deinflect.Transform{
			Name:        "comparative",
			Description: "Comparative form of an adjective",
			Rules: append([]deinflect.Rule{
				suffix("er", "", c("adj"), c("adj")),   // "faster"
				suffix("er", "e", c("adj"), c("adj")),  // "nicer"
				suffix("ier", "y", c("adj"), c("adj")), // "happier"
			}, doubledConsonantInflection("bdgmnt", "er", c("adj"), c("adj"))...),
		}},
		{ID: "superlative", Transform: deinflect.Transform{
			Name:        "superlative",
			Description: "Superlative form of an adjective",
			Rules: append([]deinflect.Rule{
				suffix("est", "", c("adj"), c("adj")),   // "fastest"
				suffix("est", "e", c("adj"), c("adj")),  // "nicest"
				suffix("iest", "y", c("adj"), c("adj")), // "happiest"
			}, doubledConsonantInflection("bdgmnt", "est", c("adj"), c("adj"))...),
		}},
		{ID: "dropped g", Transform: deinflect.Transform{
			Name:        "dropped g",
			Description: "Dropped g in -ing form of a verb",
			Rules: []deinflect.Rule{
				suffix("in'", "ing", c("v"), c("v")),
			},
		}},
		{ID: "-y", Transform: deinflect.Transform{
			Name:        "-y",
			Description: "Adjective formed from a verb or noun",
			Rules: append([]deinflect.Rule{
				suffix("y", "", c("adj"), c("n", "v")),  // "dirty", "pushy"
				suffix("y", "e", c("adj"), c("n", "v")), // "hazy"
			}, doubledConsonantInflection("glmnprst", "y", nil, c("n", "v"))...),
		}},
		{ID: "un-", Transform: deinflect.Transform{
			Name:        "un-",
			Description: "Negative form of an adjective, adverb, or verb",
			Rules: []deinflect.Rule{
				prefix("un", "", c("adj", "adv", "v"), c("adj", "adv", "v")),
			},
		}},
		{ID: "going-to future", Transform: deinflect.Transform{
			Name:        "going-to future",
			Description: "Going-to future tense of a verb",
			Rules: []deinflect.Rule{
				prefix("going to ", "", c("v"), c("v")),
			},
		}},
		{ID: "will future", Transform: deinflect.Transform{
			Name:        "will future",
			Description: "Will-future tense of a verb",
			Rules: []deinflect.Rule{
				prefix("will ", "", c("v"), c("v")),
			},
		}},
		{ID: "imperative negative", Transform: deinflect.Transform{
			Name:        "imperative negative",
			Description: "Negative imperative form of a verb",
			Rules: []deinflect.Rule{
				prefix("don't ", "", c("v"), c("v")),
				prefix("do not ", "", c("v"), c("v")),
			},
		}},
		{ID: "-able", Transform: deinflect.Transform{
			Name:        "-able",
			Description: "Adjective formed from a verb",
			Rules: append([]deinflect.Rule{
				suffix("able", "", c("v"), c("adj")),
				suffix("able", "e", c("v"), c("adj")),
				suffix("iable", "y", c("v"), c("adj")),
			}, doubledConsonantInflection("bdgklmnprstz", "able", c("v"), c("adj"))...),
		}},
	}
}
