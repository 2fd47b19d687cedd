package es

import (
	"github.com/npillmayer/deinflect"
)

// reflexivePattern matches a clitic pronoun followed by an infinitive,
// e.g. "me despertar". Groups: 1 pronoun, 2 verb stem, 3 ending.
const reflexivePattern = `\b(me|te|se|nos|os)\s+(\w+)(ar|er|ir)\b`

var accents = map[string]string{
	"a": "á",
	"e": "é",
	"i": "í",
	"o": "ó",
	"u": "ú",
}

func addAccent(v string) string {
	if a, ok := accents[v]; ok {
		return a
	}
	return v
}

func suffix(inflected, deinflected string, conditionsIn, conditionsOut []string) deinflect.Rule {
	return deinflect.SuffixInflection(inflected, deinflected, conditionsIn, conditionsOut)
}

func wholeWord(inflected, deinflected string, conditionsIn, conditionsOut []string) deinflect.Rule {
	return deinflect.WholeWordInflection(inflected, deinflected, conditionsIn, conditionsOut)
}

func c(ids ...string) []string { return ids }

// stemChange builds a rule undoing a vowel stem change before rewriting
// the inflected ending: "pienso" → "pensar" via ie→e and o→ar.
func stemChange(stemFrom, stemTo, endingPattern, endingTo string, conditionsIn, conditionsOut []string) deinflect.Rule {
	return deinflect.Rule{
		Kind:    deinflect.OtherRule,
		Pattern: stemFrom + `\w*` + endingPattern + "$",
		Deinflect: deinflect.Deinflector{
			Kind:          deinflect.GenericStemChange,
			StemFrom:      stemFrom,
			StemTo:        stemTo,
			EndingPattern: endingPattern,
			EndingTo:      endingTo,
		},
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}

// specialStemChange is stemChange with a prefix-dependent special case.
// Texts starting with specialPrefix undo specialStemFrom→specialStemTo,
// everything else stemFrom→stemTo; "juega" → "jugar" but "cuenta" →
// "contar" from the same o→ue rule.
func specialStemChange(stemMatch, specialPrefix, specialStemFrom, specialStemTo, stemFrom, stemTo, endingPattern, endingTo string, conditionsIn, conditionsOut []string) deinflect.Rule {
	return deinflect.Rule{
		Kind:    deinflect.OtherRule,
		Pattern: stemMatch + `\w*` + endingPattern + "$",
		Deinflect: deinflect.Deinflector{
			Kind:            deinflect.SpecialCasedStemChange,
			StemFrom:        stemFrom,
			StemTo:          stemTo,
			EndingPattern:   endingPattern,
			EndingTo:        endingTo,
			SpecialPrefix:   specialPrefix,
			SpecialStemFrom: specialStemFrom,
			SpecialStemTo:   specialStemTo,
		},
		ConditionsIn:  conditionsIn,
		ConditionsOut: conditionsOut,
	}
}

// pronominalRule deinflects "me despertar" to "despertarse" by dropping
// the clitic pronoun and appending the reflexive marker.
func pronominalRule() deinflect.Rule {
	return deinflect.Rule{
		Kind:          deinflect.OtherRule,
		Pattern:       reflexivePattern,
		Deinflect:     deinflect.Deinflector{Kind: deinflect.EsPronominal},
		ConditionsIn:  c("v"),
		ConditionsOut: c("v"),
	}
}

func pluralSuffixInflections() []deinflect.Rule {
	rules := []deinflect.Rule{
		suffix("s", "", c("np"), c("ns")),
		suffix("es", "", c("np"), c("ns")),
		suffix("ces", "z", c("np"), c("ns")), // luces → luz
	}
	for _, v := range []string{"a", "e", "i", "o", "u"} {
		// autobuses → autobús
		rules = append(rules, suffix(v+"ses", addAccent(v)+"s", c("np"), c("ns")))
	}
	for _, v := range []string{"a", "e", "i", "o", "u"} {
		// canciones → canción
		rules = append(rules, suffix(v+"nes", addAccent(v)+"n", c("np"), c("ns")))
	}
	return rules
}

func feminineAdjectiveInflections() []deinflect.Rule {
	rules := []deinflect.Rule{
		suffix("a", "o", c("adj"), c("adj")), // roja → rojo
		suffix("a", "", c("adj"), c("adj")),  // española → español
	}
	for _, v := range []string{"a", "e", "i", "o"} {
		// dormilona → dormilón
		rules = append(rules, suffix(v+"na", addAccent(v)+"n", c("adj"), c("adj")))
	}
	for _, v := range []string{"a", "e", "i", "o"} {
		// francesa → francés
		rules = append(rules, suffix(v+"sa", addAccent(v)+"s", c("adj"), c("adj")))
	}
	return rules
}

func conditions() []deinflect.ConditionEntry {
	return []deinflect.ConditionEntry{
		{ID: "n", Condition: deinflect.Condition{
			Name:             "Noun",
			IsDictionaryForm: true,
			SubConditions:    []string{"ns", "np"},
		}},
		{ID: "np", Condition: deinflect.Condition{
			Name: "Noun plural",
		}},
		{ID: "ns", Condition: deinflect.Condition{
			Name: "Noun singular",
		}},
		{ID: "v", Condition: deinflect.Condition{
			Name:             "Verb",
			IsDictionaryForm: true,
			SubConditions:    []string{"v_ar", "v_er", "v_ir"},
		}},
		{ID: "v_ar", Condition: deinflect.Condition{
			Name: "-ar verb",
		}},
		{ID: "v_er", Condition: deinflect.Condition{
			Name: "-er verb",
		}},
		{ID: "v_ir", Condition: deinflect.Condition{
			Name: "-ir verb",
		}},
		{ID: "adj", Condition: deinflect.Condition{
			Name:             "Adjective",
			IsDictionaryForm: true,
		}},
	}
}

func transforms() []deinflect.TransformEntry {
	return []deinflect.TransformEntry{
		{ID: "plural", Transform: deinflect.Transform{
			Name:        "plural",
			Description: "Plural form of a noun",
			Rules:       pluralSuffixInflections(),
		}},
		{ID: "feminine adjective", Transform: deinflect.Transform{
			Name:        "feminine adjective",
			Description: "feminine form of an adjective",
			Rules:       feminineAdjectiveInflections(),
		}},
		{ID: "present indicative", Transform: deinflect.Transform{
			Name:        "present indicative",
			Description: "Present indicative form of a verb",
			Rules: []deinflect.Rule{
				// stem-changing verbs
				stemChange("ie", "e", "(o|as|a|an)", "ar", c("v_ar"), c("v_ar")),
				stemChange("ie", "e", "(o|es|e|en)", "er", c("v_er"), c("v_er")),
				stemChange("ie", "e", "(o|es|e|en)", "ir", c("v_ir"), c("v_ir")),
				specialStemChange("ue", "jue", "ue", "u", "ue", "o", "(o|as|a|an)", "ar", c("v_ar"), c("v_ar")),
				specialStemChange("ue", "hue", "hue", "o", "ue", "o", "(o|es|e|en)", "er", c("v_er"), c("v_er")),
				stemChange("ue", "o", "(o|es|e|en)", "ir", c("v_ir"), c("v_ir")),
				stemChange("i", "e", "(o|es|e|en)", "ir", c("v_ir"), c("v_ir")),
				// -ar verbs
				suffix("o", "ar", c("v_ar"), c("v_ar")),
				suffix("as", "ar", c("v_ar"), c("v_ar")),
				suffix("a", "ar", c("v_ar"), c("v_ar")),
				suffix("amos", "ar", c("v_ar"), c("v_ar")),
				suffix("áis", "ar", c("v_ar"), c("v_ar")),
				suffix("an", "ar", c("v_ar"), c("v_ar")),
				// -er verbs
				suffix("o", "er", c("v_er"), c("v_er")),
				suffix("es", "er", c("v_er"), c("v_er")),
				suffix("e", "er", c("v_er"), c("v_er")),
				suffix("emos", "er", c("v_er"), c("v_er")),
				suffix("éis", "er", c("v_er"), c("v_er")),
				suffix("en", "er", c("v_er"), c("v_er")),
				// -ir verbs
				suffix("o", "ir", c("v_ir"), c("v_ir")),
				suffix("es", "ir", c("v_ir"), c("v_ir")),
				suffix("e", "ir", c("v_ir"), c("v_ir")),
				suffix("imos", "ir", c("v_ir"), c("v_ir")),
				suffix("ís", "ir", c("v_ir"), c("v_ir")),
				suffix("en", "ir", c("v_ir"), c("v_ir")),
				// i→y verbs (incluir, huir, construir)
				suffix("uyo", "uir", c("v_ir"), c("v_ir")),
				suffix("uyes", "uir", c("v_ir"), c("v_ir")),
				suffix("uye", "uir", c("v_ir"), c("v_ir")),
				suffix("uyen", "uir", c("v_ir"), c("v_ir")),
				// -tener verbs
				suffix("tengo", "tener", c("v"), c("v")),
				suffix("tienes", "tener", c("v"), c("v")),
				suffix("tiene", "tener", c("v"), c("v")),
				suffix("tenemos", "tener", c("v"), c("v")),
				suffix("tenéis", "tener", c("v"), c("v")),
				suffix("tienen", "tener", c("v"), c("v")),
				// -oír verbs
				suffix("oigo", "oír", c("v"), c("v")),
				suffix("oyes", "oír", c("v"), c("v")),
				suffix("oye", "oír", c("v"), c("v")),
				suffix("oímos", "oír", c("v"), c("v")),
				suffix("oís", "oír", c("v"), c("v")),
				suffix("oyen", "oír", c("v"), c("v")),
				// -venir verbs
				suffix("vengo", "venir", c("v"), c("v")),
				suffix("vienes", "venir", c("v"), c("v")),
				suffix("viene", "venir", c("v"), c("v")),
				suffix("venimos", "venir", c("v"), c("v")),
				suffix("venís", "venir", c("v"), c("v")),
				suffix("vienen", "venir", c("v"), c("v")),
				// irregular yo forms
				suffix("go", "guir", c("v"), c("v")),
				suffix("jo", "ger", c("v"), c("v")),
				suffix("jo", "gir", c("v"), c("v")),
				suffix("aigo", "aer", c("v"), c("v")),
				suffix("zco", "cer", c("v"), c("v")),
				suffix("zco", "cir", c("v"), c("v")),
				suffix("hago", "hacer", c("v"), c("v")),
				suffix("pongo", "poner", c("v"), c("v")),
				suffix("lgo", "lir", c("v"), c("v")),
				suffix("lgo", "ler", c("v"), c("v")),
				wholeWord("doy", "dar", c("v"), c("v")),
				wholeWord("sé", "saber", c("v"), c("v")),
				wholeWord("veo", "ver", c("v"), c("v")),
				// ser
				wholeWord("soy", "ser", c("v"), c("v")),
				wholeWord("eres", "ser", c("v"), c("v")),
				wholeWord("es", "ser", c("v"), c("v")),
				wholeWord("somos", "ser", c("v"), c("v")),
				wholeWord("sois", "ser", c("v"), c("v")),
				wholeWord("son", "ser", c("v"), c("v")),
				// estar
				wholeWord("estoy", "estar", c("v"), c("v")),
				wholeWord("estás", "estar", c("v"), c("v")),
				wholeWord("está", "estar", c("v"), c("v")),
				wholeWord("estamos", "estar", c("v"), c("v")),
				wholeWord("estáis", "estar", c("v"), c("v")),
				wholeWord("están", "estar", c("v"), c("v")),
				// ir
				wholeWord("voy", "ir", c("v"), c("v")),
				wholeWord("vas", "ir", c("v"), c("v")),
				wholeWord("va", "ir", c("v"), c("v")),
				wholeWord("vamos", "ir", c("v"), c("v")),
				wholeWord("vais", "ir", c("v"), c("v")),
				wholeWord("van", "ir", c("v"), c("v")),
				// haber
				wholeWord("he", "haber", c("v"), c("v")),
				wholeWord("has", "haber", c("v"), c("v")),
				wholeWord("ha", "haber", c("v"), c("v")),
				wholeWord("hemos", "haber", c("v"), c("v")),
				wholeWord("habéis", "haber", c("v"), c("v")),
				wholeWord("han", "haber", c("v"), c("v")),
			},
		}},
		{ID: "preterite", Transform: deinflect.Transform{
			Name:        "preterite",
			Description: "Preterite (past) form of a verb",
			Rules: []deinflect.Rule{
				// stem changes in the third person
				stemChange("i", "e", "(ió|ieron)", "ir", c("v_ir"), c("v_ir")),
				stemChange("u", "o", "(ió|ieron)", "ir", c("v_ir"), c("v_ir")),
				// -ar verbs
				suffix("é", "ar", c("v_ar"), c("v_ar")),
				suffix("aste", "ar", c("v_ar"), c("v_ar")),
				suffix("ó", "ar", c("v_ar"), c("v_ar")),
				suffix("amos", "ar", c("v_ar"), c("v_ar")),
				suffix("asteis", "ar", c("v_ar"), c("v_ar")),
				suffix("aron", "ar", c("v_ar"), c("v_ar")),
				// -er verbs
				suffix("í", "er", c("v_er"), c("v_er")),
				suffix("iste", "er", c("v_er"), c("v_er")),
				suffix("ió", "er", c("v_er"), c("v_er")),
				suffix("imos", "er", c("v_er"), c("v_er")),
				suffix("isteis", "er", c("v_er"), c("v_er")),
				suffix("ieron", "er", c("v_er"), c("v_er")),
				// -ir verbs
				suffix("í", "ir", c("v_ir"), c("v_ir")),
				suffix("iste", "ir", c("v_ir"), c("v_ir")),
				suffix("ió", "ir", c("v_ir"), c("v_ir")),
				suffix("imos", "ir", c("v_ir"), c("v_ir")),
				suffix("isteis", "ir", c("v_ir"), c("v_ir")),
				suffix("ieron", "ir", c("v_ir"), c("v_ir")),
				// orthographic -car, -gar, -zar
				suffix("qué", "car", c("v"), c("v")),
				suffix("gué", "gar", c("v"), c("v")),
				suffix("cé", "zar", c("v"), c("v")),
				// -uir verbs
				suffix("í", "uir", c("v"), c("v")),
				// ser
				wholeWord("fui", "ser", c("v"), c("v")),
				wholeWord("fuiste", "ser", c("v"), c("v")),
				wholeWord("fue", "ser", c("v"), c("v")),
				wholeWord("fuimos", "ser", c("v"), c("v")),
				wholeWord("fuisteis", "ser", c("v"), c("v")),
				wholeWord("fueron", "ser", c("v"), c("v")),
				// ir
				wholeWord("fui", "ir", c("v"), c("v")),
				wholeWord("fuiste", "ir", c("v"), c("v")),
				wholeWord("fue", "ir", c("v"), c("v")),
				wholeWord("fuimos", "ir", c("v"), c("v")),
				wholeWord("fuisteis", "ir", c("v"), c("v")),
				wholeWord("fueron", "ir", c("v"), c("v")),
				// dar
				wholeWord("di", "dar", c("v"), c("v")),
				wholeWord("diste", "dar", c("v"), c("v")),
				wholeWord("dio", "dar", c("v"), c("v")),
				wholeWord("dimos", "dar", c("v"), c("v")),
				wholeWord("disteis", "dar", c("v"), c("v")),
				wholeWord("dieron", "dar", c("v"), c("v")),
				// hacer
				suffix("hice", "hacer", c("v"), c("v")),
				suffix("hiciste", "hacer", c("v"), c("v")),
				suffix("hizo", "hacer", c("v"), c("v")),
				suffix("hicimos", "hacer", c("v"), c("v")),
				suffix("hicisteis", "hacer", c("v"), c("v")),
				suffix("hicieron", "hacer", c("v"), c("v")),
				// poner
				suffix("puse", "poner", c("v"), c("v")),
				suffix("pusiste", "poner", c("v"), c("v")),
				suffix("puso", "poner", c("v"), c("v")),
				suffix("pusimos", "poner", c("v"), c("v")),
				suffix("pusisteis", "poner", c("v"), c("v")),
				suffix("pusieron", "poner", c("v"), c("v")),
				// decir
				suffix("dije", "decir", c("v"), c("v")),
				suffix("dijiste", "decir", c("v"), c("v")),
				suffix("dijo", "decir", c("v"), c("v")),
				suffix("dijimos", "decir", c("v"), c("v")),
				suffix("dijisteis", "decir", c("v"), c("v")),
				suffix("dijeron", "decir", c("v"), c("v")),
				// venir
				suffix("vine", "venir", c("v"), c("v")),
				suffix("viniste", "venir", c("v"), c("v")),
				suffix("vino", "venir", c("v"), c("v")),
				suffix("vinimos", "venir", c("v"), c("v")),
				suffix("vinisteis", "venir", c("v"), c("v")),
				suffix("vinieron", "venir", c("v"), c("v")),
				// querer
				wholeWord("quise", "querer", c("v"), c("v")),
				wholeWord("quisiste", "querer", c("v"), c("v")),
				wholeWord("quiso", "querer", c("v"), c("v")),
				wholeWord("quisimos", "querer", c("v"), c("v")),
				wholeWord("quisisteis", "querer", c("v"), c("v")),
				wholeWord("quisieron", "querer", c("v"), c("v")),
				// tener
				suffix("tuve", "tener", c("v"), c("v")),
				suffix("tuviste", "tener", c("v"), c("v")),
				suffix("tuvo", "tener", c("v"), c("v")),
				suffix("tuvimos", "tener", c("v"), c("v")),
				suffix("tuvisteis", "tener", c("v"), c("v")),
				suffix("tuvieron", "tener", c("v"), c("v")),
				// poder
				wholeWord("pude", "poder", c("v"), c("v")),
				wholeWord("pudiste", "poder", c("v"), c("v")),
				wholeWord("pudo", "poder", c("v"), c("v")),
				wholeWord("pudimos", "poder", c("v"), c("v")),
				wholeWord("pudisteis", "poder", c("v"), c("v")),
				wholeWord("pudieron", "poder", c("v"), c("v")),
				// saber
				wholeWord("supe", "saber", c("v"), c("v")),
				wholeWord("supiste", "saber", c("v"), c("v")),
				wholeWord("supo", "saber", c("v"), c("v")),
				wholeWord("supimos", "saber", c("v"), c("v")),
				wholeWord("supisteis", "saber", c("v"), c("v")),
				wholeWord("supieron", "saber", c("v"), c("v")),
				// estar
				wholeWord("estuve", "estar", c("v"), c("v")),
				wholeWord("estuviste", "estar", c("v"), c("v")),
				wholeWord("estuvo", "estar", c("v"), c("v")),
				wholeWord("estuvimos", "estar", c("v"), c("v")),
				wholeWord("estuvisteis", "estar", c("v"), c("v")),
				wholeWord("estuvieron", "estar", c("v"), c("v")),
				// andar
				wholeWord("anduve", "andar", c("v"), c("v")),
				wholeWord("anduviste", "andar", c("v"), c("v")),
				wholeWord("anduvo", "andar", c("v"), c("v")),
				wholeWord("anduvimos", "andar", c("v"), c("v")),
				wholeWord("anduvisteis", "andar", c("v"), c("v")),
				wholeWord("anduvieron", "andar", c("v"), c("v")),
			},
		}},
		{ID: "imperfect", Transform: deinflect.Transform{
			Name:        "imperfect",
			Description: "Imperfect form of a verb",
			Rules: []deinflect.Rule{
				// -ar verbs
				suffix("aba", "ar", c("v_ar"), c("v_ar")),
				suffix("abas", "ar", c("v_ar"), c("v_ar")),
				suffix("ábamos", "ar", c("v_ar"), c("v_ar")),
				suffix("abais", "ar", c("v_ar"), c("v_ar")),
				suffix("aban", "ar", c("v_ar"), c("v_ar")),
				// -er verbs
				suffix("ía", "er", c("v_er"), c("v_er")),
				suffix("ías", "er", c("v_er"), c("v_er")),
				suffix("íamos", "er", c("v_er"), c("v_er")),
				suffix("íais", "er", c("v_er"), c("v_er")),
				suffix("ían", "er", c("v_er"), c("v_er")),
				// -ir verbs
				suffix("ía", "ir", c("v_ir"), c("v_ir")),
				suffix("ías", "ir", c("v_ir"), c("v_ir")),
				suffix("íamos", "ir", c("v_ir"), c("v_ir")),
				suffix("íais", "ir", c("v_ir"), c("v_ir")),
				suffix("ían", "ir", c("v_ir"), c("v_ir")),
				// -eír verbs (reír → reía)
				suffix("eía", "ir", c("v_ir"), c("v_ir")),
				suffix("eías", "ir", c("v_ir"), c("v_ir")),
				suffix("eíamos", "ir", c("v_ir"), c("v_ir")),
				suffix("eíais", "ir", c("v_ir"), c("v_ir")),
				suffix("eían", "ir", c("v_ir"), c("v_ir")),
				// ser
				wholeWord("era", "ser", c("v"), c("v")),
				wholeWord("eras", "ser", c("v"), c("v")),
				wholeWord("éramos", "ser", c("v"), c("v")),
				wholeWord("erais", "ser", c("v"), c("v")),
				wholeWord("eran", "ser", c("v"), c("v")),
				// ir
				wholeWord("iba", "ir", c("v"), c("v")),
				wholeWord("ibas", "ir", c("v"), c("v")),
				wholeWord("íbamos", "ir", c("v"), c("v")),
				wholeWord("ibais", "ir", c("v"), c("v")),
				wholeWord("iban", "ir", c("v"), c("v")),
				// ver
				wholeWord("veía", "ver", c("v"), c("v")),
				wholeWord("veías", "ver", c("v"), c("v")),
				wholeWord("veíamos", "ver", c("v"), c("v")),
				wholeWord("veíais", "ver", c("v"), c("v")),
				wholeWord("veían", "ver", c("v"), c("v")),
			},
		}},
		{ID: "progressive", Transform: deinflect.Transform{
			Name:        "progressive",
			Description: "Progressive form of a verb",
			Rules: []deinflect.Rule{
				stemChange("i", "e", "(iendo)", "ir", c("v_ir"), c("v_ir")),
				stemChange("u", "o", "(iendo)", "er", c("v_er"), c("v_er")),
				stemChange("u", "o", "(iendo)", "ir", c("v_ir"), c("v_ir")),
				// regular
				suffix("ando", "ar", c("v_ar"), c("v_ar")),
				suffix("iendo", "er", c("v_er"), c("v_er")),
				suffix("iendo", "ir", c("v_ir"), c("v_ir")),
				// vowel before the ending (-yendo)
				suffix("ayendo", "aer", c("v_er"), c("v_er")),
				suffix("eyendo", "eer", c("v_er"), c("v_er")),
				suffix("uyendo", "uir", c("v_ir"), c("v_ir")),
				// irregular
				wholeWord("oyendo", "oír", c("v"), c("v")),
				wholeWord("yendo", "ir", c("v"), c("v")),
			},
		}},
		{ID: "imperative", Transform: deinflect.Transform{
			Name:        "imperative",
			Description: "Imperative form of a verb",
			Rules: []deinflect.Rule{
				// stem-changing verbs
				stemChange("ie", "e", "(a|e|en)", "ar", c("v_ar"), c("v_ar")),
				stemChange("ie", "e", "(e|a|an)", "er", c("v_er"), c("v_er")),
				stemChange("ie", "e", "(e|a|an)", "ir", c("v_ir"), c("v_ir")),
				specialStemChange("ue", "jue", "ue", "u", "ue", "o", "(a|ue|uen)", "ar", c("v_ar"), c("v_ar")),
				specialStemChange("ue", "hue", "hue", "o", "ue", "o", "(e|a|an)", "er", c("v_er"), c("v_er")),
				stemChange("ue", "o", "(e|a|an)", "ir", c("v_ir"), c("v_ir")),
				stemChange("i", "e", "(e|a|an)", "ir", c("v_ir"), c("v_ir")),
				// affirmative commands, -ar verbs
				suffix("a", "ar", c("v_ar"), c("v_ar")),
				suffix("emos", "ar", c("v_ar"), c("v_ar")),
				suffix("ad", "ar", c("v_ar"), c("v_ar")),
				// -er verbs
				suffix("e", "er", c("v_er"), c("v_er")),
				suffix("amos", "ar", c("v_er"), c("v_er")),
				suffix("ed", "er", c("v_er"), c("v_er")),
				// -ir verbs
				suffix("e", "ir", c("v_ir"), c("v_ir")),
				suffix("amos", "ar", c("v_ir"), c("v_ir")),
				suffix("id", "ir", c("v_ir"), c("v_ir")),
				// irregular affirmative commands
				wholeWord("diga", "decir", c("v"), c("v")),
				wholeWord("sé", "ser", c("v"), c("v")),
				wholeWord("ve", "ir", c("v"), c("v")),
				wholeWord("ten", "tener", c("v"), c("v")),
				wholeWord("ven", "venir", c("v"), c("v")),
				wholeWord("haz", "hacer", c("v"), c("v")),
				wholeWord("di", "decir", c("v"), c("v")),
				wholeWord("pon", "poner", c("v"), c("v")),
				wholeWord("sal", "salir", c("v"), c("v")),
				// negative commands, -ar verbs
				suffix("es", "ar", c("v_ar"), c("v_ar")),
				suffix("emos", "ar", c("v_ar"), c("v_ar")),
				suffix("éis", "ar", c("v_ar"), c("v_ar")),
				// -er verbs
				suffix("as", "er", c("v_er"), c("v_er")),
				suffix("amos", "er", c("v_er"), c("v_er")),
				suffix("áis", "er", c("v_er"), c("v_er")),
				// -ir verbs
				suffix("as", "ir", c("v_ir"), c("v_ir")),
				suffix("amos", "ir", c("v_ir"), c("v_ir")),
				suffix("áis", "ir", c("v_ir"), c("v_ir")),
			},
		}},
		{ID: "conditional", Transform: deinflect.Transform{
			Name:        "conditional",
			Description: "Conditional form of a verb",
			Rules: []deinflect.Rule{
				// regular endings
				suffix("ía", "", c("v"), c("v")),
				suffix("ías", "", c("v"), c("v")),
				suffix("íamos", "", c("v"), c("v")),
				suffix("íais", "", c("v"), c("v")),
				suffix("ían", "", c("v"), c("v")),
				// decir
				wholeWord("diría", "decir", c("v"), c("v")),
				wholeWord("dirías", "decir", c("v"), c("v")),
				wholeWord("diríamos", "decir", c("v"), c("v")),
				wholeWord("diríais", "decir", c("v"), c("v")),
				wholeWord("dirían", "decir", c("v"), c("v")),
				// hacer
				wholeWord("haría", "hacer", c("v"), c("v")),
				wholeWord("harías", "hacer", c("v"), c("v")),
				wholeWord("haríamos", "hacer", c("v"), c("v")),
				wholeWord("haríais", "hacer", c("v"), c("v")),
				wholeWord("harían", "hacer", c("v"), c("v")),
				// poner
				wholeWord("pondría", "poner", c("v"), c("v")),
				wholeWord("pondrías", "poner", c("v"), c("v")),
				wholeWord("pondríamos", "poner", c("v"), c("v")),
				wholeWord("pondríais", "poner", c("v"), c("v")),
				wholeWord("pondrían", "poner", c("v"), c("v")),
				// salir
				wholeWord("saldría", "salir", c("v"), c("v")),
				wholeWord("saldrías", "salir", c("v"), c("v")),
				wholeWord("saldríamos", "salir", c("v"), c("v")),
				wholeWord("saldríais", "salir", c("v"), c("v")),
				wholeWord("saldrían", "salir", c("v"), c("v")),
				// tener
				wholeWord("tendría", "tener", c("v"), c("v")),
				wholeWord("tendrías", "tener", c("v"), c("v")),
				wholeWord("tendríamos", "tener", c("v"), c("v")),
				wholeWord("tendríais", "tener", c("v"), c("v")),
				wholeWord("tendrían", "tener", c("v"), c("v")),
				// venir
				wholeWord("vendría", "venir", c("v"), c("v")),
				wholeWord("vendrías", "venir", c("v"), c("v")),
				wholeWord("vendríamos", "venir", c("v"), c("v")),
				wholeWord("vendríais", "venir", c("v"), c("v")),
				wholeWord("vendrían", "venir", c("v"), c("v")),
				// querer
				wholeWord("querría", "querer", c("v"), c("v")),
				wholeWord("querrías", "querer", c("v"), c("v")),
				wholeWord("querríamos", "querer", c("v"), c("v")),
				wholeWord("querríais", "querer", c("v"), c("v")),
				wholeWord("querrían", "querer", c("v"), c("v")),
				// poder
				wholeWord("podría", "poder", c("v"), c("v")),
				wholeWord("podrías", "poder", c("v"), c("v")),
				wholeWord("podríamos", "poder", c("v"), c("v")),
				wholeWord("podríais", "poder", c("v"), c("v")),
				wholeWord("podrían", "poder", c("v"), c("v")),
				// saber
				wholeWord("sabría", "saber", c("v"), c("v")),
				wholeWord("sabrías", "saber", c("v"), c("v")),
				wholeWord("sabríamos", "saber", c("v"), c("v")),
				wholeWord("sabríais", "saber", c("v"), c("v")),
				wholeWord("sabrían", "saber", c("v"), c("v")),
			},
		}},
		{ID: "future", Transform: deinflect.Transform{
			Name:        "future",
			Description: "Future form of a verb",
			Rules: []deinflect.Rule{
				// regular endings
				suffix("é", "", c("v"), c("v")),
				suffix("ás", "", c("v"), c("v")),
				suffix("á", "", c("v"), c("v")),
				suffix("emos", "", c("v"), c("v")),
				suffix("éis", "", c("v"), c("v")),
				suffix("án", "", c("v"), c("v")),
				// decir
				suffix("diré", "decir", c("v"), c("v")),
				suffix("dirás", "decir", c("v"), c("v")),
				suffix("dirá", "decir", c("v"), c("v")),
				suffix("diremos", "decir", c("v"), c("v")),
				suffix("diréis", "decir", c("v"), c("v")),
				suffix("dirán", "decir", c("v"), c("v")),
				// hacer
				wholeWord("haré", "hacer", c("v"), c("v")),
				wholeWord("harás", "hacer", c("v"), c("v")),
				wholeWord("hará", "hacer", c("v"), c("v")),
				wholeWord("haremos", "hacer", c("v"), c("v")),
				wholeWord("haréis", "hacer", c("v"), c("v")),
				wholeWord("harán", "hacer", c("v"), c("v")),
				// poner
				suffix("pondré", "poner", c("v"), c("v")),
				suffix("pondrás", "poner", c("v"), c("v")),
				suffix("pondrá", "poner", c("v"), c("v")),
				suffix("pondremos", "poner", c("v"), c("v")),
				suffix("pondréis", "poner", c("v"), c("v")),
				suffix("pondrán", "poner", c("v"), c("v")),
				// salir
				wholeWord("saldré", "salir", c("v"), c("v")),
				wholeWord("saldrás", "salir", c("v"), c("v")),
				wholeWord("saldrá", "salir", c("v"), c("v")),
				wholeWord("saldremos", "salir", c("v"), c("v")),
				wholeWord("saldréis", "salir", c("v"), c("v")),
				wholeWord("saldrán", "salir", c("v"), c("v")),
				// tener
				suffix("tendré", "tener", c("v"), c("v")),
				suffix("tendrás", "tener", c("v"), c("v")),
				suffix("tendrá", "tener", c("v"), c("v")),
				suffix("tendremos", "tener", c("v"), c("v")),
				suffix("tendréis", "tener", c("v"), c("v")),
				suffix("tendrán", "tener", c("v"), c("v")),
				// venir
				suffix("vendré", "venir", c("v"), c("v")),
				suffix("vendrás", "venir", c("v"), c("v")),
				suffix("vendrá", "venir", c("v"), c("v")),
				suffix("vendremos", "venir", c("v"), c("v")),
				suffix("vendréis", "venir", c("v"), c("v")),
				suffix("vendrán", "venir", c("v"), c("v")),
			},
		}},
		{ID: "present subjunctive", Transform: deinflect.Transform{
			Name:        "present subjunctive",
			Description: "Present subjunctive form of a verb",
			Rules: []deinflect.Rule{
				// stem-changing verbs
				stemChange("ie", "e", "(e|es|en)", "ar", c("v_ar"), c("v_ar")),
				stemChange("ie", "e", "(a|as|an)", "er", c("v_er"), c("v_er")),
				stemChange("ie", "e", "(a|as|an)", "ir", c("v_ir"), c("v_ir")),
				specialStemChange("ue", "jue", "ue", "u", "ue", "o", "(ue|ues|uen)", "ar", c("v_ar"), c("v_ar")),
				specialStemChange("ue", "hue", "hue", "o", "ue", "o", "(a|as|an)", "er", c("v_er"), c("v_er")),
				stemChange("ue", "o", "(a|as|an)", "ir", c("v_ir"), c("v_ir")),
				stemChange("i", "e", "(a|as|an)", "ir", c("v_ir"), c("v_ir")),
				// -ar verbs
				suffix("e", "ar", c("v_ar"), c("v_ar")),
				suffix("es", "ar", c("v_ar"), c("v_ar")),
				suffix("emos", "ar", c("v_ar"), c("v_ar")),
				suffix("éis", "ar", c("v_ar"), c("v_ar")),
				suffix("en", "ar", c("v_ar"), c("v_ar")),
				// -er verbs
				suffix("a", "er", c("v_er"), c("v_er")),
				suffix("as", "er", c("v_er"), c("v_er")),
				suffix("amos", "er", c("v_er"), c("v_er")),
				suffix("áis", "er", c("v_er"), c("v_er")),
				suffix("an", "er", c("v_er"), c("v_er")),
				// -ir verbs
				suffix("a", "ir", c("v_ir"), c("v_ir")),
				suffix("as", "ir", c("v_ir"), c("v_ir")),
				suffix("amos", "ir", c("v_ir"), c("v_ir")),
				suffix("áis", "ir", c("v_ir"), c("v_ir")),
				suffix("an", "ir", c("v_ir"), c("v_ir")),
				// dar
				wholeWord("dé", "dar", c("v"), c("v")),
				wholeWord("des", "dar", c("v"), c("v")),
				wholeWord("demos", "dar", c("v"), c("v")),
				wholeWord("deis", "dar", c("v"), c("v")),
				wholeWord("den", "dar", c("v"), c("v")),
				// estar
				wholeWord("esté", "estar", c("v"), c("v")),
				wholeWord("estés", "estar", c("v"), c("v")),
				wholeWord("estemos", "estar", c("v"), c("v")),
				wholeWord("estéis", "estar", c("v"), c("v")),
				wholeWord("estén", "estar", c("v"), c("v")),
				// ser
				wholeWord("sea", "ser", c("v"), c("v")),
				wholeWord("seas", "ser", c("v"), c("v")),
				wholeWord("seamos", "ser", c("v"), c("v")),
				wholeWord("seáis", "ser", c("v"), c("v")),
				wholeWord("sean", "ser", c("v"), c("v")),
				// ir
				wholeWord("vaya", "ir", c("v"), c("v")),
				wholeWord("vayas", "ir", c("v"), c("v")),
				wholeWord("vayamos", "ir", c("v"), c("v")),
				wholeWord("vayáis", "ir", c("v"), c("v")),
				wholeWord("vayan", "ir", c("v"), c("v")),
				// haber
				wholeWord("haya", "haber", c("v"), c("v")),
				wholeWord("hayas", "haber", c("v"), c("v")),
				wholeWord("hayamos", "haber", c("v"), c("v")),
				wholeWord("hayáis", "haber", c("v"), c("v")),
				wholeWord("hayan", "haber", c("v"), c("v")),
				// saber
				wholeWord("sepa", "saber", c("v"), c("v")),
				wholeWord("sepas", "saber", c("v"), c("v")),
				wholeWord("sepamos", "saber", c("v"), c("v")),
				wholeWord("sepáis", "saber", c("v"), c("v")),
				wholeWord("sepan", "saber", c("v"), c("v")),
			},
		}},
		{ID: "imperfect subjunctive", Transform: deinflect.Transform{
			Name:        "imperfect subjunctive",
			Description: "Imperfect subjunctive form of a verb",
			Rules: []deinflect.Rule{
				// -ar verbs
				suffix("ara", "ar", c("v_ar"), c("v_ar")),
				suffix("ase", "ar", c("v_ar"), c("v_ar")),
				suffix("aras", "ar", c("v_ar"), c("v_ar")),
				suffix("ases", "ar", c("v_ar"), c("v_ar")),
				suffix("áramos", "ar", c("v_ar"), c("v_ar")),
				suffix("ásemos", "ar", c("v_ar"), c("v_ar")),
				suffix("arais", "ar", c("v_ar"), c("v_ar")),
				suffix("aseis", "ar", c("v_ar"), c("v_ar")),
				suffix("aran", "ar", c("v_ar"), c("v_ar")),
				suffix("asen", "ar", c("v_ar"), c("v_ar")),
				// -er verbs
				suffix("iera", "er", c("v_er"), c("v_er")),
				suffix("iese", "er", c("v_er"), c("v_er")),
				suffix("ieras", "er", c("v_er"), c("v_er")),
				suffix("ieses", "er", c("v_er"), c("v_er")),
				suffix("iéramos", "er", c("v_er"), c("v_er")),
				suffix("iésemos", "er", c("v_er"), c("v_er")),
				suffix("ierais", "er", c("v_er"), c("v_er")),
				suffix("ieseis", "er", c("v_er"), c("v_er")),
				suffix("ieran", "er", c("v_er"), c("v_er")),
				suffix("iesen", "er", c("v_er"), c("v_er")),
				// -ir verbs
				suffix("iera", "ir", c("v_ir"), c("v_ir")),
				suffix("iese", "ir", c("v_ir"), c("v_ir")),
				suffix("ieras", "ir", c("v_ir"), c("v_ir")),
				suffix("ieses", "ir", c("v_ir"), c("v_ir")),
				suffix("iéramos", "ir", c("v_ir"), c("v_ir")),
				suffix("iésemos", "ir", c("v_ir"), c("v_ir")),
				suffix("ierais", "ir", c("v_ir"), c("v_ir")),
				suffix("ieseis", "ir", c("v_ir"), c("v_ir")),
				suffix("ieran", "ir", c("v_ir"), c("v_ir")),
				suffix("iesen", "ir", c("v_ir"), c("v_ir")),
				// ser
				wholeWord("fuera", "ser", c("v"), c("v")),
				wholeWord("fuese", "ser", c("v"), c("v")),
				wholeWord("fueras", "ser", c("v"), c("v")),
				wholeWord("fueses", "ser", c("v"), c("v")),
				wholeWord("fuéramos", "ser", c("v"), c("v")),
				wholeWord("fuésemos", "ser", c("v"), c("v")),
				wholeWord("fuerais", "ser", c("v"), c("v")),
				wholeWord("fueseis", "ser", c("v"), c("v")),
				wholeWord("fueran", "ser", c("v"), c("v")),
				wholeWord("fuesen", "ser", c("v"), c("v")),
				// ir
				wholeWord("fuera", "ir", c("v"), c("v")),
				wholeWord("fuese", "ir", c("v"), c("v")),
				wholeWord("fueras", "ir", c("v"), c("v")),
				wholeWord("fueses", "ir", c("v"), c("v")),
				wholeWord("fuéramos", "ir", c("v"), c("v")),
				wholeWord("fuésemos", "ir", c("v"), c("v")),
				wholeWord("fuerais", "ir", c("v"), c("v")),
				wholeWord("fueseis", "ir", c("v"), c("v")),
				wholeWord("fueran", "ir", c("v"), c("v")),
				wholeWord("fuesen", "ir", c("v"), c("v")),
			},
		}},
		{ID: "participle", Transform: deinflect.Transform{
			Name:        "participle",
			Description: "Participle form of a verb",
			Rules: []deinflect.Rule{
				suffix("ado", "ar", c("adj"), c("v_ar")),
				suffix("ido", "er", c("adj"), c("v_er")),
				suffix("ido", "ir", c("adj"), c("v_ir")),
				// irregular past participles
				suffix("oído", "oír", c("adj"), c("v")),
				wholeWord("dicho", "decir", c("adj"), c("v")),
				wholeWord("escrito", "escribir", c("adj"), c("v")),
				wholeWord("hecho", "hacer", c("adj"), c("v")),
				wholeWord("muerto", "morir", c("adj"), c("v")),
				wholeWord("puesto", "poner", c("adj"), c("v")),
				wholeWord("roto", "romper", c("adj"), c("v")),
				wholeWord("visto", "ver", c("adj"), c("v")),
				wholeWord("vuelto", "volver", c("adj"), c("v")),
			},
		}},
		{ID: "reflexive", Transform: deinflect.Transform{
			Name:        "reflexive",
			Description: "Reflexive form of a verb",
			Rules: []deinflect.Rule{
				suffix("arse", "ar", c("v_ar"), c("v_ar")), // lavarse → lavar
				suffix("erse", "er", c("v_er"), c("v_er")), // ponerse → poner
				suffix("irse", "ir", c("v_ir"), c("v_ir")), // vestirse → vestir
			},
		}},
		{ID: "pronoun substitution", Transform: deinflect.Transform{
			Name:        "pronoun substitution",
			Description: "Substituted pronoun of a reflexive verb",
			Rules: []deinflect.Rule{
				suffix("arme", "arse", c("v_ar"), c("v_ar")), // lavarme → lavarse
				suffix("arte", "arse", c("v_ar"), c("v_ar")),
				suffix("arnos", "arse", c("v_ar"), c("v_ar")),
				suffix("erme", "erse", c("v_er"), c("v_er")),
				suffix("erte", "erse", c("v_er"), c("v_er")),
				suffix("ernos", "erse", c("v_er"), c("v_er")),
				suffix("irme", "irse", c("v_ir"), c("v_ir")),
				suffix("irte", "irse", c("v_ir"), c("v_ir")),
				suffix("irnos", "irse", c("v_ir"), c("v_ir")),
			},
		}},
		{ID: "pronominal", Transform: deinflect.Transform{
			Name:        "pronominal",
			Description: "Pronominal form of a verb",
			Rules: []deinflect.Rule{
				pronominalRule(),
			},
		}},
	}
}
