package ja

import (
	"unicode/utf8"

	"github.com/npillmayer/deinflect"
)

// Verbs with irregular euphonic stems for the -て/-た group of endings.
var ikuVerbs = []string{"いく", "行く", "逝く", "往く"}

var godanUSpecialVerbs = []string{
	"こう", "とう", "請う", "乞う", "恋う", "問う", "訪う",
	"宣う", "曰う", "給う", "賜う", "揺蕩う",
}

var fuVerbTeConjugations = [][2]string{
	{"のたまう", "のたもう"},
	{"たまう", "たもう"},
	{"たゆたう", "たゆとう"},
}

// irregularVerbInflections builds the rules for verbs whose euphonic
// -て/-た stems are irregular: the 行く verbs use a っ stem, the archaic
// -う verbs keep the う, and the 給う group shifts to -もう.
func irregularVerbInflections(ending string, conditionsIn, conditionsOut []string) []deinflect.Rule {
	var rules []deinflect.Rule
	for _, verb := range ikuVerbs {
		first, _ := utf8.DecodeRuneInString(verb)
		rules = append(rules, deinflect.SuffixInflection(string(first)+"っ"+ending, verb, conditionsIn, conditionsOut))
	}
	for _, verb := range godanUSpecialVerbs {
		rules = append(rules, deinflect.SuffixInflection(verb+ending, verb, conditionsIn, conditionsOut))
	}
	for _, pair := range fuVerbTeConjugations {
		rules = append(rules, deinflect.SuffixInflection(pair[1]+ending, pair[0], conditionsIn, conditionsOut))
	}
	return rules
}

func suffix(inflected, deinflected string, conditionsIn, conditionsOut []string) deinflect.Rule {
	return deinflect.SuffixInflection(inflected, deinflected, conditionsIn, conditionsOut)
}

func c(ids ...string) []string { return ids }

func jaI18n(name, description string) []deinflect.TransformI18n {
	return []deinflect.TransformI18n{{Language: "ja", Name: name, Description: description}}
}

func transforms() []deinflect.TransformEntry {
	return []deinflect.TransformEntry{
		{ID: "-ば", Transform: deinflect.Transform{
			Name:        "-ば",
			Description: "1. Conditional form; shows that the previous stated condition's establishment is the condition for the latter stated condition to occur.\n2. Shows a trigger for a latter stated perception or judgment.\nUsage: Attach ば to the hypothetical form (仮定形) of verbs and i-adjectives.",
			I18n:        jaI18n("～ば", ""),
			Rules: []deinflect.Rule{
				suffix("ければ", "い", c("-ば"), c("adj-i")),
				suffix("えば", "う", c("-ば"), c("v5")),
				suffix("けば", "く", c("-ば"), c("v5")),
				suffix("げば", "ぐ", c("-ば"), c("v5")),
				suffix("せば", "す", c("-ば"), c("v5")),
				suffix("てば", "つ", c("-ば"), c("v5")),
				suffix("ねば", "ぬ", c("-ば"), c("v5")),
				suffix("べば", "ぶ", c("-ば"), c("v5")),
				suffix("めば", "む", c("-ば"), c("v5")),
				suffix("れば", "る", c("-ば"), c("v1", "v5", "vk", "vs", "vz")),
				suffix("れば", "", c("-ば"), c("-ます")),
			},
		}},
		{ID: "-ゃ", Transform: deinflect.Transform{
			Name:        "-ゃ",
			Description: "Contraction of -ば.",
			I18n:        jaI18n("～ゃ", "「～ば」の短縮"),
			Rules: []deinflect.Rule{
				suffix("けりゃ", "ければ", c("-ゃ"), c("-ば")),
				suffix("きゃ", "ければ", c("-ゃ"), c("-ば")),
				suffix("や", "えば", c("-ゃ"), c("-ば")),
				suffix("きゃ", "けば", c("-ゃ"), c("-ば")),
				suffix("ぎゃ", "げば", c("-ゃ"), c("-ば")),
				suffix("しゃ", "せば", c("-ゃ"), c("-ば")),
				suffix("ちゃ", "てば", c("-ゃ"), c("-ば")),
				suffix("にゃ", "ねば", c("-ゃ"), c("-ば")),
				suffix("びゃ", "べば", c("-ゃ"), c("-ば")),
				suffix("みゃ", "めば", c("-ゃ"), c("-ば")),
				suffix("りゃ", "れば", c("-ゃ"), c("-ば")),
			},
		}},
		{ID: "-ちゃ", Transform: deinflect.Transform{
			Name:        "-ちゃ",
			Description: "Contraction of ～ては.\n1. Explains how something always happens under the condition that it marks.\n2. Expresses the repetition (of a series of) actions.\n3. Indicates a hypothetical situation in which the speaker gives a (negative) evaluation about the other party's intentions.\n4. Used in \"Must Not\" patterns like ～てはいけない.\nUsage: Attach は after the て-form of verbs, contract ては into ちゃ.",
			I18n:        jaI18n("～ちゃ", "「～ては」の短縮"),
			Rules: []deinflect.Rule{
				suffix("ちゃ", "る", c("v5"), c("v1")),
				suffix("いじゃ", "ぐ", c("v5"), c("v5")),
				suffix("いちゃ", "く", c("v5"), c("v5")),
				suffix("しちゃ", "す", c("v5"), c("v5")),
				suffix("っちゃ", "う", c("v5"), c("v5")),
				suffix("っちゃ", "く", c("v5"), c("v5")),
				suffix("っちゃ", "つ", c("v5"), c("v5")),
				suffix("っちゃ", "る", c("v5"), c("v5")),
				suffix("んじゃ", "ぬ", c("v5"), c("v5")),
				suffix("んじゃ", "ぶ", c("v5"), c("v5")),
				suffix("んじゃ", "む", c("v5"), c("v5")),
				suffix("じちゃ", "ずる", c("v5"), c("vz")),
				suffix("しちゃ", "する", c("v5"), c("vs")),
				suffix("為ちゃ", "為る", c("v5"), c("vs")),
				suffix("きちゃ", "くる", c("v5"), c("vk")),
				suffix("来ちゃ", "来る", c("v5"), c("vk")),
				suffix("來ちゃ", "來る", c("v5"), c("vk")),
			},
		}},
		{ID: "-ちゃう", Transform: deinflect.Transform{
			Name:        "-ちゃう",
			Description: "Contraction of -しまう.\nShows completion of an action with regret or accidental completion.\nUsage: Attach しまう after the て-form of verbs, contract てしまう into ちゃう.",
			I18n:        jaI18n("～ちゃう", "「～てしまう」のややくだけた口頭語的表現"),
			Rules: []deinflect.Rule{
				suffix("ちゃう", "る", c("v5"), c("v1")),
				suffix("いじゃう", "ぐ", c("v5"), c("v5")),
				suffix("いちゃう", "く", c("v5"), c("v5")),
				suffix("しちゃう", "す", c("v5"), c("v5")),
				suffix("っちゃう", "う", c("v5"), c("v5")),
				suffix("っちゃう", "く", c("v5"), c("v5")),
				suffix("っちゃう", "つ", c("v5"), c("v5")),
				suffix("っちゃう", "る", c("v5"), c("v5")),
				suffix("んじゃう", "ぬ", c("v5"), c("v5")),
				suffix("んじゃう", "ぶ", c("v5"), c("v5")),
				suffix("んじゃう", "む", c("v5"), c("v5")),
				suffix("じちゃう", "ずる", c("v5"), c("vz")),
				suffix("しちゃう", "する", c("v5"), c("vs")),
				suffix("為ちゃう", "為る", c("v5"), c("vs")),
				suffix("きちゃう", "くる", c("v5"), c("vk")),
				suffix("来ちゃう", "来る", c("v5"), c("vk")),
				suffix("來ちゃう", "來る", c("v5"), c("vk")),
			},
		}},
		{ID: "-ちまう", Transform: deinflect.Transform{
			Name:        "-ちまう",
			Description: "Contraction of -しまう.\nShows completion of an action with regret or accidental completion.\nUsage: Attach しまう after the て-form of verbs, contract てしまう into ちまう.",
			I18n:        jaI18n("～ちまう", "「～てしまう」の音変化"),
			Rules: []deinflect.Rule{
				suffix("ちまう", "る", c("v5"), c("v1")),
				suffix("いじまう", "ぐ", c("v5"), c("v5")),
				suffix("いちまう", "く", c("v5"), c("v5")),
				suffix("しちまう", "す", c("v5"), c("v5")),
				suffix("っちまう", "う", c("v5"), c("v5")),
				suffix("っちまう", "く", c("v5"), c("v5")),
				suffix("っちまう", "つ", c("v5"), c("v5")),
				suffix("っちまう", "る", c("v5"), c("v5")),
				suffix("んじまう", "ぬ", c("v5"), c("v5")),
				suffix("んじまう", "ぶ", c("v5"), c("v5")),
				suffix("んじまう", "む", c("v5"), c("v5")),
				suffix("じちまう", "ずる", c("v5"), c("vz")),
				suffix("しちまう", "する", c("v5"), c("vs")),
				suffix("為ちまう", "為る", c("v5"), c("vs")),
				suffix("きちまう", "くる", c("v5"), c("vk")),
				suffix("来ちまう", "来る", c("v5"), c("vk")),
				suffix("來ちまう", "來る", c("v5"), c("vk")),
			},
		}},
		{ID: "-しまう", Transform: deinflect.Transform{
			Name:        "-しまう",
			Description: "Shows completion of an action with regret or accidental completion.\nUsage: Attach しまう after the て-form of verbs.",
			I18n:        jaI18n("～しまう", "その動作がすっかり終わる、その状態が完成することを表す。終わったことを強調したり、不本意である、困ったことになった、などの気持ちを添えたりすることもある。"),
			Rules: []deinflect.Rule{
				suffix("てしまう", "て", c("v5"), c("-て")),
				suffix("でしまう", "で", c("v5"), c("-て")),
			},
		}},
		{ID: "-なさい", Transform: deinflect.Transform{
			Name:        "-なさい",
			Description: "Polite imperative suffix.\nUsage: Attach なさい after the continuative form (連用形) of verbs.",
			I18n:        jaI18n("～なさい", "動詞「なさる」の命令形"),
			Rules: []deinflect.Rule{
				suffix("なさい", "る", c("-なさい"), c("v1")),
				suffix("いなさい", "う", c("-なさい"), c("v5")),
				suffix("きなさい", "く", c("-なさい"), c("v5")),
				suffix("ぎなさい", "ぐ", c("-なさい"), c("v5")),
				suffix("しなさい", "す", c("-なさい"), c("v5")),
				suffix("ちなさい", "つ", c("-なさい"), c("v5")),
				suffix("になさい", "ぬ", c("-なさい"), c("v5")),
				suffix("びなさい", "ぶ", c("-なさい"), c("v5")),
				suffix("みなさい", "む", c("-なさい"), c("v5")),
				suffix("りなさい", "る", c("-なさい"), c("v5")),
				suffix("じなさい", "ずる", c("-なさい"), c("vz")),
				suffix("しなさい", "する", c("-なさい"), c("vs")),
				suffix("為なさい", "為る", c("-なさい"), c("vs")),
				suffix("きなさい", "くる", c("-なさい"), c("vk")),
				suffix("来なさい", "来る", c("-なさい"), c("vk")),
				suffix("來なさい", "來る", c("-なさい"), c("vk")),
			},
		}},
		{ID: "-そう", Transform: deinflect.Transform{
			Name:        "-そう",
			Description: "Appearing that; looking like.\nUsage: Attach そう to the continuative form (連用形) of verbs, or to the stem of adjectives.",
			I18n:        jaI18n("～そう", "そういう様子だ、そうなる様子だということ、すなわち様態を表す助動詞。"),
			Rules: []deinflect.Rule{
				suffix("そう", "い", nil, c("adj-i")),
				suffix("そう", "る", nil, c("v1")),
				suffix("いそう", "う", nil, c("v5")),
				suffix("きそう", "く", nil, c("v5")),
				suffix("ぎそう", "ぐ", nil, c("v5")),
				suffix("しそう", "す", nil, c("v5")),
				suffix("ちそう", "つ", nil, c("v5")),
				suffix("にそう", "ぬ", nil, c("v5")),
				suffix("びそう", "ぶ", nil, c("v5")),
				suffix("みそう", "む", nil, c("v5")),
				suffix("りそう", "る", nil, c("v5")),
				suffix("じそう", "ずる", nil, c("vz")),
				suffix("しそう", "する", nil, c("vs")),
				suffix("為そう", "為る", nil, c("vs")),
				suffix("きそう", "くる", nil, c("vk")),
				suffix("来そう", "来る", nil, c("vk")),
				suffix("來そう", "來る", nil, c("vk")),
			},
		}},
		{ID: "-すぎる", Transform: deinflect.Transform{
			Name:        "-すぎる",
			Description: "Shows something \"is too...\" or someone is doing something \"too much\".\nUsage: Attach すぎる to the continuative form (連用形) of verbs, or to the stem of adjectives.",
			I18n:        jaI18n("～すぎる", "程度や限度を超える"),
			Rules: []deinflect.Rule{
				suffix("すぎる", "い", c("v1"), c("adj-i")),
				suffix("すぎる", "る", c("v1"), c("v1")),
				suffix("いすぎる", "う", c("v1"), c("v5")),
				suffix("きすぎる", "く", c("v1"), c("v5")),
				suffix("ぎすぎる", "ぐ", c("v1"), c("v5")),
				suffix("しすぎる", "す", c("v1"), c("v5")),
				suffix("ちすぎる", "つ", c("v1"), c("v5")),
				suffix("にすぎる", "ぬ", c("v1"), c("v5")),
				suffix("びすぎる", "ぶ", c("v1"), c("v5")),
				suffix("みすぎる", "む", c("v1"), c("v5")),
				suffix("りすぎる", "る", c("v1"), c("v5")),
				suffix("じすぎる", "ずる", c("v1"), c("vz")),
				suffix("しすぎる", "する", c("v1"), c("vs")),
				suffix("為すぎる", "為る", c("v1"), c("vs")),
				suffix("きすぎる", "くる", c("v1"), c("vk")),
				suffix("来すぎる", "来る", c("v1"), c("vk")),
				suffix("來すぎる", "來る", c("v1"), c("vk")),
			},
		}},
		{ID: "-過ぎる", Transform: deinflect.Transform{
			Name:        "-過ぎる",
			Description: "Shows something \"is too...\" or someone is doing something \"too much\".\nUsage: Attach 過ぎる to the continuative form (連用形) of verbs, or to the stem of adjectives.",
			I18n:        jaI18n("～過ぎる", "程度や限度を超える"),
			Rules: []deinflect.Rule{
				suffix("過ぎる", "い", c("v1"), c("adj-i")),
				suffix("過ぎる", "る", c("v1"), c("v1")),
				suffix("い過ぎる", "う", c("v1"), c("v5")),
				suffix("き過ぎる", "く", c("v1"), c("v5")),
				suffix("ぎ過ぎる", "ぐ", c("v1"), c("v5")),
				suffix("し過ぎる", "す", c("v1"), c("v5")),
				suffix("ち過ぎる", "つ", c("v1"), c("v5")),
				suffix("に過ぎる", "ぬ", c("v1"), c("v5")),
				suffix("び過ぎる", "ぶ", c("v1"), c("v5")),
				suffix("み過ぎる", "む", c("v1"), c("v5")),
				suffix("り過ぎる", "る", c("v1"), c("v5")),
				suffix("じ過ぎる", "ずる", c("v1"), c("vz")),
				suffix("し過ぎる", "する", c("v1"), c("vs")),
				suffix("為過ぎる", "為る", c("v1"), c("vs")),
				suffix("き過ぎる", "くる", c("v1"), c("vk")),
				suffix("来過ぎる", "来る", c("v1"), c("vk")),
				suffix("來過ぎる", "來る", c("v1"), c("vk")),
			},
		}},
		{ID: "-たい", Transform: deinflect.Transform{
			Name:        "-たい",
			Description: "1. Expresses the feeling of desire or hope.\n2. Used in ...たいと思います, an indirect way of saying what the speaker intends to do.\nUsage: Attach たい to the continuative form (連用形) of verbs. たい itself conjugates as i-adjective.",
			I18n:        jaI18n("～たい", "することをのぞんでいる、という、希望や願望の気持ちをあらわす。"),
			Rules: []deinflect.Rule{
				suffix("たい", "る", c("adj-i"), c("v1")),
				suffix("いたい", "う", c("adj-i"), c("v5")),
				suffix("きたい", "く", c("adj-i"), c("v5")),
				suffix("ぎたい", "ぐ", c("adj-i"), c("v5")),
				suffix("したい", "す", c("adj-i"), c("v5")),
				suffix("ちたい", "つ", c("adj-i"), c("v5")),
				suffix("にたい", "ぬ", c("adj-i"), c("v5")),
				suffix("びたい", "ぶ", c("adj-i"), c("v5")),
				suffix("みたい", "む", c("adj-i"), c("v5")),
				suffix("りたい", "る", c("adj-i"), c("v5")),
				suffix("じたい", "ずる", c("adj-i"), c("vz")),
				suffix("したい", "する", c("adj-i"), c("vs")),
				suffix("為たい", "為る", c("adj-i"), c("vs")),
				suffix("きたい", "くる", c("adj-i"), c("vk")),
				suffix("来たい", "来る", c("adj-i"), c("vk")),
				suffix("來たい", "來る", c("adj-i"), c("vk")),
			},
		}},
		{ID: "-たら", Transform: deinflect.Transform{
			Name:        "-たら",
			Description: "1. Denotes the latter stated event is a continuation of the previous stated event.\n2. Assumes that a matter has been completed or concluded.\nUsage: Attach たら to the continuative form (連用形) of verbs after euphonic change form, かったら to the stem of i-adjectives.",
			I18n:        jaI18n("～たら", "仮定をあらわす・…すると・したあとに"),
			Rules: append(append([]deinflect.Rule{
				suffix("かったら", "い", nil, c("adj-i")),
				suffix("たら", "る", nil, c("v1")),
				suffix("いたら", "く", nil, c("v5")),
				suffix("いだら", "ぐ", nil, c("v5")),
				suffix("したら", "す", nil, c("v5")),
				suffix("ったら", "う", nil, c("v5")),
				suffix("ったら", "つ", nil, c("v5")),
				suffix("ったら", "る", nil, c("v5")),
				suffix("んだら", "ぬ", nil, c("v5")),
				suffix("んだら", "ぶ", nil, c("v5")),
				suffix("んだら", "む", nil, c("v5")),
				suffix("じたら", "ずる", nil, c("vz")),
				suffix("したら", "する", nil, c("vs")),
				suffix("為たら", "為る", nil, c("vs")),
				suffix("きたら", "くる", nil, c("vk")),
				suffix("来たら", "来る", nil, c("vk")),
				suffix("來たら", "來る", nil, c("vk")),
			}, irregularVerbInflections("たら", nil, c("v5"))...),
				suffix("ましたら", "ます", nil, c("-ます"))),
		}},
		{ID: "-たり", Transform: deinflect.Transform{
			Name:        "-たり",
			Description: "1. Shows two actions occurring back and forth (when used with two verbs).\n2. Shows examples of actions and states (when used with multiple verbs and adjectives).\nUsage: Attach たり to the continuative form (連用形) of verbs after euphonic change form, かったり to the stem of i-adjectives.",
			I18n:        jaI18n("～たり", "ある動作を例示的にあげることを表わす。"),
			Rules: append([]deinflect.Rule{
				suffix("かったり", "い", nil, c("adj-i")),
				suffix("たり", "る", nil, c("v1")),
				suffix("いたり", "く", nil, c("v5")),
				suffix("いだり", "ぐ", nil, c("v5")),
				suffix("したり", "す", nil, c("v5")),
				suffix("ったり", "う", nil, c("v5")),
				suffix("ったり", "つ", nil, c("v5")),
				suffix("ったり", "る", nil, c("v5")),
				suffix("んだり", "ぬ", nil, c("v5")),
				suffix("んだり", "ぶ", nil, c("v5")),
				suffix("んだり", "む", nil, c("v5")),
				suffix("じたり", "ずる", nil, c("vz")),
				suffix("したり", "する", nil, c("vs")),
				suffix("為たり", "為る", nil, c("vs")),
				suffix("きたり", "くる", nil, c("vk")),
				suffix("来たり", "来る", nil, c("vk")),
				suffix("來たり", "來る", nil, c("vk")),
			}, irregularVerbInflections("たり", nil, c("v5"))...),
		}},
		{ID: "-て", Transform: deinflect.Transform{
			Name:        "-て",
			Description: "て-form.\nIt has a myriad of meanings. Primarily, it is a conjunctive particle that connects two clauses together.\nUsage: Attach て to the continuative form (連用形) of verbs after euphonic change form, くて to the stem of i-adjectives.",
			I18n:        jaI18n("～て", ""),
			Rules: append(append([]deinflect.Rule{
				suffix("くて", "い", c("-て"), c("adj-i")),
				suffix("て", "る", c("-て"), c("v1")),
				suffix("いて", "く", c("-て"), c("v5")),
				suffix("いで", "ぐ", c("-て"), c("v5")),
				suffix("して", "す", c("-て"), c("v5")),
				suffix("って", "う", c("-て"), c("v5")),
				suffix("って", "つ", c("-て"), c("v5")),
				suffix("って", "る", c("-て"), c("v5")),
				suffix("んで", "ぬ", c("-て"), c("v5")),
				suffix("んで", "ぶ", c("-て"), c("v5")),
				suffix("んで", "む", c("-て"), c("v5")),
				suffix("じて", "ずる", c("-て"), c("vz")),
				suffix("して", "する", c("-て"), c("vs")),
				suffix("為て", "為る", c("-て"), c("vs")),
				suffix("きて", "くる", c("-て"), c("vk")),
				suffix("来て", "来る", c("-て"), c("vk")),
				suffix("來て", "來る", c("-て"), c("vk")),
			}, irregularVerbInflections("て", c("-て"), c("v5"))...),
				suffix("まして", "ます", nil, c("-ます"))),
		}},
		{ID: "-ず", Transform: deinflect.Transform{
			Name:        "-ず",
			Description: "1. Negative form of verbs.\n2. Continuative form (連用形) of the particle ぬ (nu).\nUsage: Attach ず to the irrealis form (未然形) of verbs.",
			I18n:        jaI18n("～ず", "～ない"),
			Rules: []deinflect.Rule{
				suffix("ず", "る", nil, c("v1")),
				suffix("かず", "く", nil, c("v5")),
				suffix("がず", "ぐ", nil, c("v5")),
				suffix("さず", "す", nil, c("v5")),
				suffix("たず", "つ", nil, c("v5")),
				suffix("なず", "ぬ", nil, c("v5")),
				suffix("ばず", "ぶ", nil, c("v5")),
				suffix("まず", "む", nil, c("v5")),
				suffix("らず", "る", nil, c("v5")),
				suffix("わず", "う", nil, c("v5")),
				suffix("ぜず", "ずる", nil, c("vz")),
				suffix("せず", "する", nil, c("vs")),
				suffix("為ず", "為る", nil, c("vs")),
				suffix("こず", "くる", nil, c("vk")),
				suffix("来ず", "来る", nil, c("vk")),
				suffix("來ず", "來る", nil, c("vk")),
			},
		}},
		{ID: "-ぬ", Transform: deinflect.Transform{
			Name:        "-ぬ",
			Description: "Negative form of verbs.\nUsage: Attach ぬ to the irrealis form (未然形) of verbs.\nする becomes せぬ",
			I18n:        jaI18n("～ぬ", "～ない"),
			Rules: []deinflect.Rule{
				suffix("ぬ", "る", nil, c("v1")),
				suffix("かぬ", "く", nil, c("v5")),
				suffix("がぬ", "ぐ", nil, c("v5")),
				suffix("さぬ", "す", nil, c("v5")),
				suffix("たぬ", "つ", nil, c("v5")),
				suffix("なぬ", "ぬ", nil, c("v5")),
				suffix("ばぬ", "ぶ", nil, c("v5")),
				suffix("まぬ", "む", nil, c("v5")),
				suffix("らぬ", "る", nil, c("v5")),
				suffix("わぬ", "う", nil, c("v5")),
				suffix("ぜぬ", "ずる", nil, c("vz")),
				suffix("せぬ", "する", nil, c("vs")),
				suffix("為ぬ", "為る", nil, c("vs")),
				suffix("こぬ", "くる", nil, c("vk")),
				suffix("来ぬ", "来る", nil, c("vk")),
				suffix("來ぬ", "來る", nil, c("vk")),
			},
		}},
		{ID: "-ん", Transform: deinflect.Transform{
			Name:        "-ん",
			Description: "Negative form of verbs; a sound change of ぬ.\nUsage: Attach ん to the irrealis form (未然形) of verbs.\nする becomes せん",
			I18n:        jaI18n("～ん", "～ない"),
			Rules: []deinflect.Rule{
				suffix("ん", "る", c("-ん"), c("v1")),
				suffix("かん", "く", c("-ん"), c("v5")),
				suffix("がん", "ぐ", c("-ん"), c("v5")),
				suffix("さん", "す", c("-ん"), c("v5")),
				suffix("たん", "つ", c("-ん"), c("v5")),
				suffix("なん", "ぬ", c("-ん"), c("v5")),
				suffix("ばん", "ぶ", c("-ん"), c("v5")),
				suffix("まん", "む", c("-ん"), c("v5")),
				suffix("らん", "る", c("-ん"), c("v5")),
				suffix("わん", "う", c("-ん"), c("v5")),
				suffix("ぜん", "ずる", c("-ん"), c("vz")),
				suffix("せん", "する", c("-ん"), c("vs")),
				suffix("為ん", "為る", c("-ん"), c("vs")),
				suffix("こん", "くる", c("-ん"), c("vk")),
				suffix("来ん", "来る", c("-ん"), c("vk")),
				suffix("來ん", "來る", c("-ん"), c("vk")),
			},
		}},
		{ID: "-んばかり", Transform: deinflect.Transform{
			Name:        "-んばかり",
			Description: "Shows an action or condition is on the verge of occurring, or an excessive/extreme degree.\nUsage: Attach んばかり to the irrealis form (未然形) of verbs.\nする becomes せんばかり",
			I18n:        jaI18n("～んばかり", "今にもそうなりそうな、しかし辛うじてそうなっていないようなさまを指す表現"),
			Rules: []deinflect.Rule{
				suffix("んばかり", "る", nil, c("v1")),
				suffix("かんばかり", "く", nil, c("v5")),
				suffix("がんばかり", "ぐ", nil, c("v5")),
				suffix("さんばかり", "す", nil, c("v5")),
				suffix("たんばかり", "つ", nil, c("v5")),
				suffix("なんばかり", "ぬ", nil, c("v5")),
				suffix("ばんばかり", "ぶ", nil, c("v5")),
				suffix("まんばかり", "む", nil, c("v5")),
				suffix("らんばかり", "る", nil, c("v5")),
				suffix("わんばかり", "う", nil, c("v5")),
				suffix("ぜんばかり", "ずる", nil, c("vz")),
				suffix("せんばかり", "する", nil, c("vs")),
				suffix("為んばかり", "為る", nil, c("vs")),
				suffix("こんばかり", "くる", nil, c("vk")),
				suffix("来んばかり", "来る", nil, c("vk")),
				suffix("來んばかり", "來る", nil, c("vk")),
			},
		}},
		{ID: "-んとする", Transform: deinflect.Transform{
			Name:        "-んとする",
			Description: "1. Shows the speaker's will or intention.\n2. Shows an action or condition is on the verge of occurring.\nUsage: Attach んとする to the irrealis form (未然形) of verbs.\nする becomes せんとする",
			I18n:        jaI18n("～んとする", "…しようとする、…しようとしている"),
			Rules: []deinflect.Rule{
				suffix("んとする", "る", c("vs"), c("v1")),
				suffix("かんとする", "く", c("vs"), c("v5")),
				suffix("がんとする", "ぐ", c("vs"), c("v5")),
				suffix("さんとする", "す", c("vs"), c("v5")),
				suffix("たんとする", "つ", c("vs"), c("v5")),
				suffix("なんとする", "ぬ", c("vs"), c("v5")),
				suffix("ばんとする", "ぶ", c("vs"), c("v5")),
				suffix("まんとする", "む", c("vs"), c("v5")),
				suffix("らんとする", "る", c("vs"), c("v5")),
				suffix("わんとする", "う", c("vs"), c("v5")),
				suffix("ぜんとする", "ずる", c("vs"), c("vz")),
				suffix("せんとする", "する", c("vs"), c("vs")),
				suffix("為んとする", "為る", c("vs"), c("vs")),
				suffix("こんとする", "くる", c("vs"), c("vk")),
				suffix("来んとする", "来る", c("vs"), c("vk")),
				suffix("來んとする", "來る", c("vs"), c("vk")),
			},
		}},
		{ID: "-む", Transform: deinflect.Transform{
			Name:        "-む",
			Description: "Archaic.\n1. Shows an inference of a certain matter.\n2. Shows speaker's intention.\nUsage: Attach む to the irrealis form (未然形) of verbs.\nする becomes せむ",
			I18n:        jaI18n("～む", "…だろう"),
			Rules: []deinflect.Rule{
				suffix("む", "る", nil, c("v1")),
				suffix("かむ", "く", nil, c("v5")),
				suffix("がむ", "ぐ", nil, c("v5")),
				suffix("さむ", "す", nil, c("v5")),
				suffix("たむ", "つ", nil, c("v5")),
				suffix("なむ", "ぬ", nil, c("v5")),
				suffix("ばむ", "ぶ", nil, c("v5")),
				suffix("まむ", "む", nil, c("v5")),
				suffix("らむ", "る", nil, c("v5")),
				suffix("わむ", "う", nil, c("v5")),
				suffix("ぜむ", "ずる", nil, c("vz")),
				suffix("せむ", "する", nil, c("vs")),
				suffix("為む", "為る", nil, c("vs")),
				suffix("こむ", "くる", nil, c("vk")),
				suffix("来む", "来る", nil, c("vk")),
				suffix("來む", "來る", nil, c("vk")),
			},
		}},
		{ID: "-ざる", Transform: deinflect.Transform{
			Name:        "-ざる",
			Description: "Negative form of verbs.\nUsage: Attach ざる to the irrealis form (未然形) of verbs.\nする becomes せざる",
			I18n:        jaI18n("～ざる", "…ない…"),
			Rules: []deinflect.Rule{
				suffix("ざる", "る", nil, c("v1")),
				suffix("かざる", "く", nil, c("v5")),
				suffix("がざる", "ぐ", nil, c("v5")),
				suffix("さざる", "す", nil, c("v5")),
				suffix("たざる", "つ", nil, c("v5")),
				suffix("なざる", "ぬ", nil, c("v5")),
				suffix("ばざる", "ぶ", nil, c("v5")),
				suffix("まざる", "む", nil, c("v5")),
				suffix("らざる", "る", nil, c("v5")),
				suffix("わざる", "う", nil, c("v5")),
				suffix("ぜざる", "ずる", nil, c("vz")),
				suffix("せざる", "する", nil, c("vs")),
				suffix("為ざる", "為る", nil, c("vs")),
				suffix("こざる", "くる", nil, c("vk")),
				suffix("来ざる", "来る", nil, c("vk")),
				suffix("來ざる", "來る", nil, c("vk")),
			},
		}},
		{ID: "-ねば", Transform: deinflect.Transform{
			Name:        "-ねば",
			Description: "1. Shows a hypothetical negation; if not ...\n2. Shows a must. Used with or without ならぬ.\nUsage: Attach ねば to the irrealis form (未然形) of verbs.\nする becomes せねば",
			I18n:        jaI18n("～ねば", "もし…ないなら。…なければならない。"),
			Rules: []deinflect.Rule{
				suffix("ねば", "る", c("-ば"), c("v1")),
				suffix("かねば", "く", c("-ば"), c("v5")),
				suffix("がねば", "ぐ", c("-ば"), c("v5")),
				suffix("さねば", "す", c("-ば"), c("v5")),
				suffix("たねば", "つ", c("-ば"), c("v5")),
				suffix("なねば", "ぬ", c("-ば"), c("v5")),
				suffix("ばねば", "ぶ", c("-ば"), c("v5")),
				suffix("まねば", "む", c("-ば"), c("v5")),
				suffix("らねば", "る", c("-ば"), c("v5")),
				suffix("わねば", "う", c("-ば"), c("v5")),
				suffix("ぜねば", "ずる", c("-ば"), c("vz")),
				suffix("せねば", "する", c("-ば"), c("vs")),
				suffix("為ねば", "為る", c("-ば"), c("vs")),
				suffix("こねば", "くる", c("-ば"), c("vk")),
				suffix("来ねば", "来る", c("-ば"), c("vk")),
				suffix("來ねば", "來る", c("-ば"), c("vk")),
			},
		}},
		{ID: "-く", Transform: deinflect.Transform{
			Name:        "-く",
			Description: "Adverbial form of i-adjectives.\n",
			I18n:        jaI18n("～く", "〔形容詞で〕用言へ続く。例、「大きく育つ」の「大きく」。"),
			Rules: []deinflect.Rule{
				suffix("く", "い", c("-く"), c("adj-i")),
			},
		}},
		{ID: "causative", Transform: deinflect.Transform{
			Name:        "causative",
			Description: "Describes the intention to make someone do something.\nUsage: Attach させる to the irrealis form (未然形) of ichidan verbs and くる.\nAttach せる to the irrealis form (未然形) of godan verbs and する.\nIt itself conjugates as an ichidan verb.",
			I18n:        jaI18n("～せる・させる", "だれかにある行為をさせる意を表わす時の言い方。例、「行かせる」の「せる」。"),
			Rules: []deinflect.Rule{
				suffix("させる", "る", c("v1"), c("v1")),
				suffix("かせる", "く", c("v1"), c("v5")),
				suffix("がせる", "ぐ", c("v1"), c("v5")),
				suffix("させる", "す", c("v1"), c("v5")),
				suffix("たせる", "つ", c("v1"), c("v5")),
				suffix("なせる", "ぬ", c("v1"), c("v5")),
				suffix("ばせる", "ぶ", c("v1"), c("v5")),
				suffix("ませる", "む", c("v1"), c("v5")),
				suffix("らせる", "る", c("v1"), c("v5")),
				suffix("わせる", "う", c("v1"), c("v5")),
				suffix("じさせる", "ずる", c("v1"), c("vz")),
				suffix("ぜさせる", "ずる", c("v1"), c("vz")),
				suffix("させる", "する", c("v1"), c("vs")),
				suffix("為せる", "為る", c("v1"), c("vs")),
				suffix("せさせる", "する", c("v1"), c("vs")),
				suffix("為させる", "為る", c("v1"), c("vs")),
				suffix("こさせる", "くる", c("v1"), c("vk")),
				suffix("来させる", "来る", c("v1"), c("vk")),
				suffix("來させる", "來る", c("v1"), c("vk")),
			},
		}},
		{ID: "short causative", Transform: deinflect.Transform{
			Name:        "short causative",
			Description: "Contraction of the causative form.\nDescribes the intention to make someone do something.\nUsage: Attach す to the irrealis form (未然形) of godan verbs.\nAttach さす to the dictionary form (終止形) of ichidan verbs.\nする becomes さす, くる becomes こさす.\nIt itself conjugates as an godan verb.",
			I18n:        jaI18n("～す・さす", "だれかにある行為をさせる意を表わす時の言い方。例、「食べさす」の「さす」。"),
			Rules: []deinflect.Rule{
				suffix("さす", "る", c("v5ss"), c("v1")),
				suffix("かす", "く", c("v5sp"), c("v5")),
				suffix("がす", "ぐ", c("v5sp"), c("v5")),
				suffix("さす", "す", c("v5ss"), c("v5")),
				suffix("たす", "つ", c("v5sp"), c("v5")),
				suffix("なす", "ぬ", c("v5sp"), c("v5")),
				suffix("ばす", "ぶ", c("v5sp"), c("v5")),
				suffix("ます", "む", c("v5sp"), c("v5")),
				suffix("らす", "る", c("v5sp"), c("v5")),
				suffix("わす", "う", c("v5sp"), c("v5")),
				suffix("じさす", "ずる", c("v5ss"), c("vz")),
				suffix("ぜさす", "ずる", c("v5ss"), c("vz")),
				suffix("さす", "する", c("v5ss"), c("vs")),
				suffix("為す", "為る", c("v5ss"), c("vs")),
				suffix("こさす", "くる", c("v5ss"), c("vk")),
				suffix("来さす", "来る", c("v5ss"), c("vk")),
				suffix("來さす", "來る", c("v5ss"), c("vk")),
			},
		}},
		{ID: "imperative", Transform: deinflect.Transform{
			Name:        "imperative",
			Description: "1. To give orders.\n2. (As あれ) Represents the fact that it will never change no matter the circumstances.\n3. Express a feeling of hope.",
			I18n:        jaI18n("命令形", "命令の意味を表わすときの形。例、「行け」。"),
			Rules: []deinflect.Rule{
				suffix("ろ", "る", nil, c("v1")),
				suffix("よ", "る", nil, c("v1")),
				suffix("え", "う", nil, c("v5")),
				suffix("け", "く", nil, c("v5")),
				suffix("げ", "ぐ", nil, c("v5")),
				suffix("せ", "す", nil, c("v5")),
				suffix("て", "つ", nil, c("v5")),
				suffix("ね", "ぬ", nil, c("v5")),
				suffix("べ", "ぶ", nil, c("v5")),
				suffix("め", "む", nil, c("v5")),
				suffix("れ", "る", nil, c("v5")),
				suffix("じろ", "ずる", nil, c("vz")),
				suffix("ぜよ", "ずる", nil, c("vz")),
				suffix("しろ", "する", nil, c("vs")),
				suffix("せよ", "する", nil, c("vs")),
				suffix("為ろ", "為る", nil, c("vs")),
				suffix("為よ", "為る", nil, c("vs")),
				suffix("こい", "くる", nil, c("vk")),
				suffix("来い", "来る", nil, c("vk")),
				suffix("來い", "來る", nil, c("vk")),
			},
		}},
		{ID: "continuative", Transform: deinflect.Transform{
			Name:        "continuative",
			Description: "Used to indicate actions that are (being) carried out.\nRefers to 連用形, the part of the verb after conjugating with -ます and dropping ます.",
			I18n:        jaI18n("連用形", "〔動詞などで〕「ます」などに続く。例、「バスを降りて歩きます」の「降り」「歩き」。"),
			Rules: []deinflect.Rule{
				suffix("い", "いる", nil, c("v1d")),
				suffix("え", "える", nil, c("v1d")),
				suffix("き", "きる", nil, c("v1d")),
				suffix("ぎ", "ぎる", nil, c("v1d")),
				suffix("け", "ける", nil, c("v1d")),
				suffix("げ", "げる", nil, c("v1d")),
				suffix("じ", "じる", nil, c("v1d")),
				suffix("せ", "せる", nil, c("v1d")),
				suffix("ぜ", "ぜる", nil, c("v1d")),
				suffix("ち", "ちる", nil, c("v1d")),
				suffix("て", "てる", nil, c("v1d")),
				suffix("で", "でる", nil, c("v1d")),
				suffix("に", "にる", nil, c("v1d")),
				suffix("ね", "ねる", nil, c("v1d")),
				suffix("ひ", "ひる", nil, c("v1d")),
				suffix("び", "びる", nil, c("v1d")),
				suffix("へ", "へる", nil, c("v1d")),
				suffix("べ", "べる", nil, c("v1d")),
				suffix("み", "みる", nil, c("v1d")),
				suffix("め", "める", nil, c("v1d")),
				suffix("り", "りる", nil, c("v1d")),
				suffix("れ", "れる", nil, c("v1d")),
				suffix("い", "う", nil, c("v5")),
				suffix("き", "く", nil, c("v5")),
				suffix("ぎ", "ぐ", nil, c("v5")),
				suffix("し", "す", nil, c("v5")),
				suffix("ち", "つ", nil, c("v5")),
				suffix("に", "ぬ", nil, c("v5")),
				suffix("び", "ぶ", nil, c("v5")),
				suffix("み", "む", nil, c("v5")),
				suffix("り", "る", nil, c("v5")),
				suffix("き", "くる", nil, c("vk")),
				suffix("し", "する", nil, c("vs")),
				suffix("来", "来る", nil, c("vk")),
				suffix("來", "來る", nil, c("vk")),
			},
		}},
		{ID: "negative", Transform: deinflect.Transform{
			Name:        "negative",
			Description: "1. Negative form of verbs.\n2. Expresses a feeling of solicitation to the other party.\nUsage: Attach ない to the irrealis form (未然形) of verbs, くない to the stem of i-adjectives. ない itself conjugates as i-adjective. ます becomes ません.",
			I18n:        jaI18n("～ない", "その動作・作用・状態の成立を否定することを表わす。"),
			Rules: []deinflect.Rule{
				suffix("くない", "い", c("adj-i"), c("adj-i")),
				suffix("ない", "る", c("adj-i"), c("v1")),
				suffix("かない", "く", c("adj-i"), c("v5")),
				suffix("がない", "ぐ", c("adj-i"), c("v5")),
				suffix("さない", "す", c("adj-i"), c("v5")),
				suffix("たない", "つ", c("adj-i"), c("v5")),
				suffix("なない", "ぬ", c("adj-i"), c("v5")),
				suffix("ばない", "ぶ", c("adj-i"), c("v5")),
				suffix("まない", "む", c("adj-i"), c("v5")),
				suffix("らない", "る", c("adj-i"), c("v5")),
				suffix("わない", "う", c("adj-i"), c("v5")),
				suffix("じない", "ずる", c("adj-i"), c("vz")),
				suffix("しない", "する", c("adj-i"), c("vs")),
				suffix("為ない", "為る", c("adj-i"), c("vs")),
				suffix("こない", "くる", c("adj-i"), c("vk")),
				suffix("来ない", "来る", c("adj-i"), c("vk")),
				suffix("來ない", "來る", c("adj-i"), c("vk")),
				suffix("ません", "ます", c("-ません"), c("-ます")),
			},
		}},
		{ID: "-さ", Transform: deinflect.Transform{
			Name:        "-さ",
			Description: "Nominalizing suffix of i-adjectives indicating nature, state, mind or degree.\nUsage: Attach さ to the stem of i-adjectives.",
			I18n:        jaI18n("～さ", "こと。程度。"),
			Rules: []deinflect.Rule{
				suffix("さ", "い", nil, c("adj-i")),
			},
		}},
		{ID: "passive", Transform: deinflect.Transform{
			Name:        "passive",
			Description: "Indicates that the subject is affected by the action of the verb.\nUsage: Attach れる to the irrealis form (未然形) of godan verbs.",
			I18n:        jaI18n("～れる", ""),
			Rules: []deinflect.Rule{
				suffix("かれる", "く", c("v1"), c("v5")),
				suffix("がれる", "ぐ", c("v1"), c("v5")),
				suffix("される", "す", c("v1"), c("v5d", "v5sp")),
				suffix("たれる", "つ", c("v1"), c("v5")),
				suffix("なれる", "ぬ", c("v1"), c("v5")),
				suffix("ばれる", "ぶ", c("v1"), c("v5")),
				suffix("まれる", "む", c("v1"), c("v5")),
				suffix("われる", "う", c("v1"), c("v5")),
				suffix("られる", "る", c("v1"), c("v5")),
				suffix("じされる", "ずる", c("v1"), c("vz")),
				suffix("ぜされる", "ずる", c("v1"), c("vz")),
				suffix("される", "する", c("v1"), c("vs")),
				suffix("為れる", "為る", c("v1"), c("vs")),
				suffix("こられる", "くる", c("v1"), c("vk")),
				suffix("来られる", "来る", c("v1"), c("vk")),
				suffix("來られる", "來る", c("v1"), c("vk")),
			},
		}},
		{ID: "-た", Transform: deinflect.Transform{
			Name:        "-た",
			Description: "1. Indicates a reality that has happened in the past.\n2. Indicates the completion of an action.\n3. Indicates the confirmation of a matter.\n4. Indicates the speaker's confidence that the action will definitely be fulfilled.\n5. Indicates the events that occur before the main clause are represented as relative past.\n6. Indicates a mild imperative/command.\nUsage: Attach た to the continuative form (連用形) of verbs after euphonic change form, かった to the stem of i-adjectives.",
			I18n:        jaI18n("～た", ""),
			Rules: append(append([]deinflect.Rule{
				suffix("かった", "い", c("-た"), c("adj-i")),
				suffix("た", "る", c("-た"), c("v1")),
				suffix("いた", "く", c("-た"), c("v5")),
				suffix("いだ", "ぐ", c("-た"), c("v5")),
				suffix("した", "す", c("-た"), c("v5")),
				suffix("った", "う", c("-た"), c("v5")),
				suffix("った", "つ", c("-た"), c("v5")),
				suffix("った", "る", c("-た"), c("v5")),
				suffix("んだ", "ぬ", c("-た"), c("v5")),
				suffix("んだ", "ぶ", c("-た"), c("v5")),
				suffix("んだ", "む", c("-た"), c("v5")),
				suffix("じた", "ずる", c("-た"), c("vz")),
				suffix("した", "する", c("-た"), c("vs")),
				suffix("為た", "為る", c("-た"), c("vs")),
				suffix("きた", "くる", c("-た"), c("vk")),
				suffix("来た", "来る", c("-た"), c("vk")),
				suffix("來た", "來る", c("-た"), c("vk")),
			}, irregularVerbInflections("た", c("-た"), c("v5"))...),
				suffix("ました", "ます", c("-た"), c("-ます")),
				suffix("でした", "", c("-た"), c("-ません")),
				suffix("かった", "", c("-た"), c("-ません", "-ん"))),
		}},
		{ID: "-ます", Transform: deinflect.Transform{
			Name:        "-ます",
			Description: "Polite conjugation of verbs and adjectives.\nUsage: Attach ます to the continuative form (連用形) of verbs.",
			I18n:        jaI18n("～ます", ""),
			Rules: []deinflect.Rule{
				suffix("ます", "る", c("-ます"), c("v1")),
				suffix("います", "う", c("-ます"), c("v5d")),
				suffix("きます", "く", c("-ます"), c("v5d")),
				suffix("ぎます", "ぐ", c("-ます"), c("v5d")),
				suffix("します", "す", c("-ます"), c("v5d", "v5s")),
				suffix("ちます", "つ", c("-ます"), c("v5d")),
				suffix("にます", "ぬ", c("-ます"), c("v5d")),
				suffix("びます", "ぶ", c("-ます"), c("v5d")),
				suffix("みます", "む", c("-ます"), c("v5d")),
				suffix("ります", "る", c("-ます"), c("v5d")),
				suffix("じます", "ずる", c("-ます"), c("vz")),
				suffix("します", "する", c("-ます"), c("vs")),
				suffix("為ます", "為る", c("-ます"), c("vs")),
				suffix("きます", "くる", c("-ます"), c("vk")),
				suffix("来ます", "来る", c("-ます"), c("vk")),
				suffix("來ます", "來る", c("-ます"), c("vk")),
				suffix("くあります", "い", c("-ます"), c("adj-i")),
			},
		}},
		{ID: "potential", Transform: deinflect.Transform{
			Name:        "potential",
			Description: "Indicates a state of being (naturally) capable of doing an action.\nUsage: Attach (ら)れる to the irrealis form (未然形) of ichidan verbs.\nAttach る to the imperative form (命令形) of godan verbs.\nする becomes できる, くる becomes こ(ら)れる.",
			I18n:        jaI18n("～(ら)れる", ""),
			Rules: []deinflect.Rule{
				suffix("れる", "る", c("v1"), c("v1", "v5d")),
				suffix("える", "う", c("v1"), c("v5d")),
				suffix("ける", "く", c("v1"), c("v5d")),
				suffix("げる", "ぐ", c("v1"), c("v5d")),
				suffix("せる", "す", c("v1"), c("v5d")),
				suffix("てる", "つ", c("v1"), c("v5d")),
				suffix("ねる", "ぬ", c("v1"), c("v5d")),
				suffix("べる", "ぶ", c("v1"), c("v5d")),
				suffix("める", "む", c("v1"), c("v5d")),
				suffix("できる", "する", c("v1"), c("vs")),
				suffix("出来る", "する", c("v1"), c("vs")),
				suffix("これる", "くる", c("v1"), c("vk")),
				suffix("来れる", "来る", c("v1"), c("vk")),
				suffix("來れる", "來る", c("v1"), c("vk")),
			},
		}},
		{ID: "potential or passive", Transform: deinflect.Transform{
			Name:        "potential or passive",
			Description: "Indicates that the subject is affected by the action of the verb.\n3. Indicates a state of being (naturally) capable of doing an action.\nUsage: Attach られる to the irrealis form (未然形) of ichidan verbs.\nする becomes せられる, くる becomes こられる.",
			I18n:        jaI18n("～られる", ""),
			Rules: []deinflect.Rule{
				suffix("られる", "る", c("v1"), c("v1")),
				suffix("ざれる", "ずる", c("v1"), c("vz")),
				suffix("ぜられる", "ずる", c("v1"), c("vz")),
				suffix("せられる", "する", c("v1"), c("vs")),
				suffix("為られる", "為る", c("v1"), c("vs")),
				suffix("こられる", "くる", c("v1"), c("vk")),
				suffix("来られる", "来る", c("v1"), c("vk")),
				suffix("來られる", "來る", c("v1"), c("vk")),
			},
		}},
		{ID: "volitional", Transform: deinflect.Transform{
			Name:        "volitional",
			Description: "1. Expresses speaker's will or intention.\n2. Expresses an invitation to the other party.\n3. (Used in …ようとする) Indicates being on the verge of initiating an action or transforming a state.\n4. Indicates an inference of a matter.\nUsage: Attach よう to the irrealis form (未然形) of ichidan verbs.\nAttach う to the irrealis form (未然形) of godan verbs after -o euphonic change form.\nAttach かろう to the stem of i-adjectives (4th meaning only).",
			I18n:        jaI18n("～う・よう", "主体の意志を表わす"),
			Rules: []deinflect.Rule{
				suffix("よう", "る", nil, c("v1")),
				suffix("おう", "う", nil, c("v5")),
				suffix("こう", "く", nil, c("v5")),
				suffix("ごう", "ぐ", nil, c("v5")),
				suffix("そう", "す", nil, c("v5")),
				suffix("とう", "つ", nil, c("v5")),
				suffix("のう", "ぬ", nil, c("v5")),
				suffix("ぼう", "ぶ", nil, c("v5")),
				suffix("もう", "む", nil, c("v5")),
				suffix("ろう", "る", nil, c("v5")),
				suffix("じよう", "ずる", nil, c("vz")),
				suffix("しよう", "する", nil, c("vs")),
				suffix("為よう", "為る", nil, c("vs")),
				suffix("こよう", "くる", nil, c("vk")),
				suffix("来よう", "来る", nil, c("vk")),
				suffix("來よう", "來る", nil, c("vk")),
				suffix("ましょう", "ます", nil, c("-ます")),
				suffix("かろう", "い", nil, c("adj-i")),
			},
		}},
		{ID: "volitional slang", Transform: deinflect.Transform{
			Name:        "volitional slang",
			Description: "Contraction of volitional form + か\n1. Expresses speaker's will or intention.\n2. Expresses an invitation to the other party.\nUsage: Replace final う with っ of volitional form then add か.\nFor example: 行こうか -> 行こっか.",
			I18n:        jaI18n("～っか・よっか", "「うか・ようか」の短縮"),
			Rules: []deinflect.Rule{
				suffix("よっか", "る", nil, c("v1")),
				suffix("おっか", "う", nil, c("v5")),
				suffix("こっか", "く", nil, c("v5")),
				suffix("ごっか", "ぐ", nil, c("v5")),
				suffix("そっか", "す", nil, c("v5")),
				suffix("とっか", "つ", nil, c("v5")),
				suffix("のっか", "ぬ", nil, c("v5")),
				suffix("ぼっか", "ぶ", nil, c("v5")),
				suffix("もっか", "む", nil, c("v5")),
				suffix("ろっか", "る", nil, c("v5")),
				suffix("じよっか", "ずる", nil, c("vz")),
				suffix("しよっか", "する", nil, c("vs")),
				suffix("為よっか", "為る", nil, c("vs")),
				suffix("こよっか", "くる", nil, c("vk")),
				suffix("来よっか", "来る", nil, c("vk")),
				suffix("來よっか", "來る", nil, c("vk")),
				suffix("ましょっか", "ます", nil, c("-ます")),
			},
		}},
		{ID: "-まい", Transform: deinflect.Transform{
			Name:        "-まい",
			Description: "Negative volitional form of verbs.\n1. Expresses speaker's assumption that something is likely not true.\n2. Expresses speaker's will or intention not to do something.\nUsage: Attach まい to the dictionary form (終止形) of verbs.\nAttach まい to the irrealis form (未然形) of ichidan verbs.\nする becomes しまい, くる becomes こまい.",
			I18n:        jaI18n("～まい", "1. 打うち消けしの推量すいりょう 「～ないだろう」と想像する\n2. 打うち消けしの意志いし「～ないつもりだ」という気持ち"),
			Rules: []deinflect.Rule{
				suffix("まい", "", nil, c("v")),
				suffix("まい", "る", nil, c("v1")),
				suffix("じまい", "ずる", nil, c("vz")),
				suffix("しまい", "する", nil, c("vs")),
				suffix("為まい", "為る", nil, c("vs")),
				suffix("こまい", "くる", nil, c("vk")),
				suffix("来まい", "来る", nil, c("vk")),
				suffix("來まい", "來る", nil, c("vk")),
				suffix("まい", "", nil, c("-ます")),
			},
		}},
		{ID: "-おく", Transform: deinflect.Transform{
			Name:        "-おく",
			Description: "To do certain things in advance in preparation (or in anticipation) of latter needs.\nUsage: Attach おく to the て-form of verbs.\nAttach でおく after ない negative form of verbs.\nContracts to とく・どく in speech.",
			I18n:        jaI18n("～おく", ""),
			Rules: []deinflect.Rule{
				suffix("ておく", "て", c("v5"), c("-て")),
				suffix("でおく", "で", c("v5"), c("-て")),
				suffix("とく", "て", c("v5"), c("-て")),
				suffix("どく", "で", c("v5"), c("-て")),
				suffix("ないでおく", "ない", c("v5"), c("adj-i")),
				suffix("ないどく", "ない", c("v5"), c("adj-i")),
			},
		}},
		{ID: "-いる", Transform: deinflect.Transform{
			Name:        "-いる",
			Description: "1. Indicates an action continues or progresses to a point in time.\n2. Indicates an action is completed and remains as is.\n3. Indicates a state or condition that can be taken to be the result of undergoing some change.\nUsage: Attach いる to the て-form of verbs. い can be dropped in speech.\nAttach でいる after ない negative form of verbs.\n(Slang) Attach おる to the て-form of verbs. Contracts to とる・でる in speech.",
			I18n:        jaI18n("～いる", ""),
			Rules: []deinflect.Rule{
				suffix("ている", "て", c("v1"), c("-て")),
				suffix("ておる", "て", c("v5"), c("-て")),
				suffix("てる", "て", c("v1p"), c("-て")),
				suffix("でいる", "で", c("v1"), c("-て")),
				suffix("でおる", "で", c("v5"), c("-て")),
				suffix("でる", "で", c("v1p"), c("-て")),
				suffix("とる", "て", c("v5"), c("-て")),
				suffix("ないでいる", "ない", c("v1"), c("adj-i")),
			},
		}},
		{ID: "-き", Transform: deinflect.Transform{
			Name:        "-き",
			Description: "Attributive form (連体形) of i-adjectives. An archaic form that remains in modern Japanese.",
			I18n:        jaI18n("～き", "連体形"),
			Rules: []deinflect.Rule{
				suffix("き", "い", nil, c("adj-i")),
			},
		}},
		{ID: "-げ", Transform: deinflect.Transform{
			Name:        "-げ",
			Description: "Describes a person's appearance. Shows feelings of the person.\nUsage: Attach げ or 気 to the stem of i-adjectives.",
			I18n:        jaI18n("～げ", "…でありそうな様子。いかにも…らしいさま。"),
			Rules: []deinflect.Rule{
				suffix("げ", "い", nil, c("adj-i")),
				suffix("気", "い", nil, c("adj-i")),
			},
		}},
		{ID: "-がる", Transform: deinflect.Transform{
			Name:        "-がる",
			Description: "1. Shows subject’s feelings contrast with what is thought/known about them.\n2. Indicates subject's behavior (stands out).\nUsage: Attach がる to the stem of i-adjectives. It itself conjugates as a godan verb.",
			I18n:        jaI18n("～がる", "いかにもその状態にあるという印象を相手に与えるような言動をする。"),
			Rules: []deinflect.Rule{
				suffix("がる", "い", c("v5"), c("adj-i")),
			},
		}},
		{ID: "-え", Transform: deinflect.Transform{
			Name:        "-え",
			Description: "Slang. A sound change of i-adjectives.\nai：やばい → やべぇ\nui：さむい → さみぃ/さめぇ\noi：すごい → すげぇ",
			I18n:        jaI18n("～え", ""),
			Rules: []deinflect.Rule{
				suffix("ねえ", "ない", nil, c("adj-i")),
				suffix("めえ", "むい", nil, c("adj-i")),
				suffix("みい", "むい", nil, c("adj-i")),
				suffix("ちぇえ", "つい", nil, c("adj-i")),
				suffix("ちい", "つい", nil, c("adj-i")),
				suffix("せえ", "すい", nil, c("adj-i")),
				suffix("ええ", "いい", nil, c("adj-i")),
				suffix("ええ", "わい", nil, c("adj-i")),
				suffix("ええ", "よい", nil, c("adj-i")),
				suffix("いぇえ", "よい", nil, c("adj-i")),
				suffix("うぇえ", "わい", nil, c("adj-i")),
				suffix("けえ", "かい", nil, c("adj-i")),
				suffix("げえ", "がい", nil, c("adj-i")),
				suffix("げえ", "ごい", nil, c("adj-i")),
				suffix("せえ", "さい", nil, c("adj-i")),
				suffix("めえ", "まい", nil, c("adj-i")),
				suffix("ぜえ", "ずい", nil, c("adj-i")),
				suffix("っぜえ", "ずい", nil, c("adj-i")),
				suffix("れえ", "らい", nil, c("adj-i")),
				suffix("れえ", "らい", nil, c("adj-i")),
				suffix("ちぇえ", "ちゃい", nil, c("adj-i")),
				suffix("でえ", "どい", nil, c("adj-i")),
				suffix("れえ", "れい", nil, c("adj-i")),
				suffix("べえ", "ばい", nil, c("adj-i")),
				suffix("てえ", "たい", nil, c("adj-i")),
				suffix("ねぇ", "ない", nil, c("adj-i")),
				suffix("めぇ", "むい", nil, c("adj-i")),
				suffix("みぃ", "むい", nil, c("adj-i")),
				suffix("ちぃ", "つい", nil, c("adj-i")),
				suffix("せぇ", "すい", nil, c("adj-i")),
				suffix("けぇ", "かい", nil, c("adj-i")),
				suffix("げぇ", "がい", nil, c("adj-i")),
				suffix("げぇ", "ごい", nil, c("adj-i")),
				suffix("せぇ", "さい", nil, c("adj-i")),
				suffix("めぇ", "まい", nil, c("adj-i")),
				suffix("ぜぇ", "ずい", nil, c("adj-i")),
				suffix("っぜぇ", "ずい", nil, c("adj-i")),
				suffix("れぇ", "らい", nil, c("adj-i")),
				suffix("でぇ", "どい", nil, c("adj-i")),
				suffix("れぇ", "れい", nil, c("adj-i")),
				suffix("べぇ", "ばい", nil, c("adj-i")),
				suffix("てぇ", "たい", nil, c("adj-i")),
			},
		}},
		{ID: "n-slang", Transform: deinflect.Transform{
			Name:        "n-slang",
			Description: "Slang sound change of r-column syllables to n (when before an n-sound, usually の or な)",
			I18n:        jaI18n("～んな", ""),
			Rules: []deinflect.Rule{
				suffix("んなさい", "りなさい", nil, c("-なさい")),
				suffix("らんない", "られない", c("adj-i"), c("adj-i")),
				suffix("んない", "らない", c("adj-i"), c("adj-i")),
				suffix("んなきゃ", "らなきゃ", nil, c("-ゃ")),
				suffix("んなきゃ", "れなきゃ", nil, c("-ゃ")),
			},
		}},
		{ID: "imperative negative slang", Transform: deinflect.Transform{
			Name: "imperative negative slang",
			I18n: jaI18n("～んな", ""),
			Rules: []deinflect.Rule{
				suffix("んな", "る", nil, c("v")),
			},
		}},
		{ID: "kansai-ben negative", Transform: deinflect.Transform{
			Name:        "kansai-ben negative",
			Description: "Negative form of kansai-ben verbs",
			I18n:        jaI18n("関西弁", "～ない (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("へん", "ない", nil, c("adj-i")),
				suffix("ひん", "ない", nil, c("adj-i")),
				suffix("せえへん", "しない", nil, c("adj-i")),
				suffix("へんかった", "なかった", c("-た"), c("-た")),
				suffix("ひんかった", "なかった", c("-た"), c("-た")),
				suffix("うてへん", "ってない", nil, c("adj-i")),
			},
		}},
		{ID: "kansai-ben -て", Transform: deinflect.Transform{
			Name:        "kansai-ben -て",
			Description: "-て form of kansai-ben verbs",
			I18n:        jaI18n("関西弁", "～て (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("うて", "って", c("-て"), c("-て")),
				suffix("おうて", "あって", c("-て"), c("-て")),
				suffix("こうて", "かって", c("-て"), c("-て")),
				suffix("ごうて", "がって", c("-て"), c("-て")),
				suffix("そうて", "さって", c("-て"), c("-て")),
				suffix("ぞうて", "ざって", c("-て"), c("-て")),
				suffix("とうて", "たって", c("-て"), c("-て")),
				suffix("どうて", "だって", c("-て"), c("-て")),
				suffix("のうて", "なって", c("-て"), c("-て")),
				suffix("ほうて", "はって", c("-て"), c("-て")),
				suffix("ぼうて", "ばって", c("-て"), c("-て")),
				suffix("もうて", "まって", c("-て"), c("-て")),
				suffix("ろうて", "らって", c("-て"), c("-て")),
				suffix("ようて", "やって", c("-て"), c("-て")),
				suffix("ゆうて", "いって", c("-て"), c("-て")),
			},
		}},
		{ID: "kansai-ben -た", Transform: deinflect.Transform{
			Name:        "kansai-ben -た",
			Description: "-た form of kansai-ben terms",
			I18n:        jaI18n("関西弁", "～た (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("うた", "った", c("-た"), c("-た")),
				suffix("おうた", "あった", c("-た"), c("-た")),
				suffix("こうた", "かった", c("-た"), c("-た")),
				suffix("ごうた", "がった", c("-た"), c("-た")),
				suffix("そうた", "さった", c("-た"), c("-た")),
				suffix("ぞうた", "ざった", c("-た"), c("-た")),
				suffix("とうた", "たった", c("-た"), c("-た")),
				suffix("どうた", "だった", c("-た"), c("-た")),
				suffix("のうた", "なった", c("-た"), c("-た")),
				suffix("ほうた", "はった", c("-た"), c("-た")),
				suffix("ぼうた", "ばった", c("-た"), c("-た")),
				suffix("もうた", "まった", c("-た"), c("-た")),
				suffix("ろうた", "らった", c("-た"), c("-た")),
				suffix("ようた", "やった", c("-た"), c("-た")),
				suffix("ゆうた", "いった", c("-た"), c("-た")),
			},
		}},
		{ID: "kansai-ben -たら", Transform: deinflect.Transform{
			Name:        "kansai-ben -たら",
			Description: "-たら form of kansai-ben terms",
			I18n:        jaI18n("関西弁", "～たら (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("うたら", "ったら", nil, nil),
				suffix("おうたら", "あったら", nil, nil),
				suffix("こうたら", "かったら", nil, nil),
				suffix("ごうたら", "がったら", nil, nil),
				suffix("そうたら", "さったら", nil, nil),
				suffix("ぞうたら", "ざったら", nil, nil),
				suffix("とうたら", "たったら", nil, nil),
				suffix("どうたら", "だったら", nil, nil),
				suffix("のうたら", "なったら", nil, nil),
				suffix("ほうたら", "はったら", nil, nil),
				suffix("ぼうたら", "ばったら", nil, nil),
				suffix("もうたら", "まったら", nil, nil),
				suffix("ろうたら", "らったら", nil, nil),
				suffix("ようたら", "やったら", nil, nil),
				suffix("ゆうたら", "いったら", nil, nil),
			},
		}},
		{ID: "kansai-ben -たり", Transform: deinflect.Transform{
			Name:        "kansai-ben -たり",
			Description: "-たり form of kansai-ben terms",
			I18n:        jaI18n("関西弁", "～たり (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("うたり", "ったり", nil, nil),
				suffix("おうたり", "あったり", nil, nil),
				suffix("こうたり", "かったり", nil, nil),
				suffix("ごうたり", "がったり", nil, nil),
				suffix("そうたり", "さったり", nil, nil),
				suffix("ぞうたり", "ざったり", nil, nil),
				suffix("とうたり", "たったり", nil, nil),
				suffix("どうたり", "だったり", nil, nil),
				suffix("のうたり", "なったり", nil, nil),
				suffix("ほうたり", "はったり", nil, nil),
				suffix("ぼうたり", "ばったり", nil, nil),
				suffix("もうたり", "まったり", nil, nil),
				suffix("ろうたり", "らったり", nil, nil),
				suffix("ようたり", "やったり", nil, nil),
				suffix("ゆうたり", "いったり", nil, nil),
			},
		}},
		{ID: "kansai-ben -く", Transform: deinflect.Transform{
			Name:        "kansai-ben -く",
			Description: "-く stem of kansai-ben adjectives",
			I18n:        jaI18n("関西弁", "連用形 (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("う", "く", nil, c("-く")),
				suffix("こう", "かく", nil, c("-く")),
				suffix("ごう", "がく", nil, c("-く")),
				suffix("そう", "さく", nil, c("-く")),
				suffix("とう", "たく", nil, c("-く")),
				suffix("のう", "なく", nil, c("-く")),
				suffix("ぼう", "ばく", nil, c("-く")),
				suffix("もう", "まく", nil, c("-く")),
				suffix("ろう", "らく", nil, c("-く")),
				suffix("よう", "よく", nil, c("-く")),
				suffix("しゅう", "しく", nil, c("-く")),
			},
		}},
		{ID: "kansai-ben adjective -て", Transform: deinflect.Transform{
			Name:        "kansai-ben adjective -て",
			Description: "-て form of kansai-ben adjectives",
			I18n:        jaI18n("関西弁", "～て (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("うて", "くて", c("-て"), c("-て")),
				suffix("こうて", "かくて", c("-て"), c("-て")),
				suffix("ごうて", "がくて", c("-て"), c("-て")),
				suffix("そうて", "さくて", c("-て"), c("-て")),
				suffix("とうて", "たくて", c("-て"), c("-て")),
				suffix("のうて", "なくて", c("-て"), c("-て")),
				suffix("ぼうて", "ばくて", c("-て"), c("-て")),
				suffix("もうて", "まくて", c("-て"), c("-て")),
				suffix("ろうて", "らくて", c("-て"), c("-て")),
				suffix("ようて", "よくて", c("-て"), c("-て")),
				suffix("しゅうて", "しくて", c("-て"), c("-て")),
			},
		}},
		{ID: "kansai-ben adjective negative", Transform: deinflect.Transform{
			Name:        "kansai-ben adjective negative",
			Description: "Negative form of kansai-ben adjectives",
			I18n:        jaI18n("関西弁", "～ない (関西弁)"),
			Rules: []deinflect.Rule{
				suffix("うない", "くない", c("adj-i"), c("adj-i")),
				suffix("こうない", "かくない", c("adj-i"), c("adj-i")),
				suffix("ごうない", "がくない", c("adj-i"), c("adj-i")),
				suffix("そうない", "さくない", c("adj-i"), c("adj-i")),
				suffix("とうない", "たくない", c("adj-i"), c("adj-i")),
				suffix("のうない", "なくない", c("adj-i"), c("adj-i")),
				suffix("ぼうない", "ばくない", c("adj-i"), c("adj-i")),
				suffix("もうない", "まくない", c("adj-i"), c("adj-i")),
				suffix("ろうない", "らくない", c("adj-i"), c("adj-i")),
				suffix("ようない", "よくない", c("adj-i"), c("adj-i")),
				suffix("しゅうない", "しくない", c("adj-i"), c("adj-i")),
			},
		}}}
}
