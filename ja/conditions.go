package ja

import (
	"github.com/npillmayer/deinflect"
)

// Grammatical conditions for Japanese deinflection. Declaration order is
// significant: it fixes the bit assigned to each leaf condition.
func conditions() []deinflect.ConditionEntry {
	jp := func(name string) []deinflect.ConditionI18n {
		return []deinflect.ConditionI18n{{Language: "ja", Name: name}}
	}
	return []deinflect.ConditionEntry{
		{ID: "v", Condition: deinflect.Condition{
			Name:          "Verb",
			I18n:          jp("動詞"),
			SubConditions: []string{"v1", "v5", "vk", "vs", "vz"},
		}},
		{ID: "v1", Condition: deinflect.Condition{
			Name:             "Ichidan verb",
			IsDictionaryForm: true,
			I18n:             jp("一段動詞"),
			SubConditions:    []string{"v1d", "v1p"},
		}},
		{ID: "v1d", Condition: deinflect.Condition{
			Name: "Ichidan verb, dictionary form",
			I18n: jp("一段動詞、辞書形"),
		}},
		{ID: "v1p", Condition: deinflect.Condition{
			Name: "Ichidan verb, progressive or perfect form",
			I18n: jp("一段動詞、～てる・でる"),
		}},
		{ID: "v5", Condition: deinflect.Condition{
			Name:             "Godan verb",
			IsDictionaryForm: true,
			I18n:             jp("五段動詞"),
			SubConditions:    []string{"v5d", "v5s"},
		}},
		{ID: "v5d", Condition: deinflect.Condition{
			Name: "Godan verb, dictionary form",
			I18n: jp("五段動詞、終止形"),
		}},
		{ID: "v5s", Condition: deinflect.Condition{
			Name:          "Godan verb, short causative form",
			I18n:          jp("五段動詞、～す・さす"),
			SubConditions: []string{"v5ss", "v5sp"},
		}},
		{ID: "v5ss", Condition: deinflect.Condition{
			Name: "Godan verb, short causative form having さす ending (cannot conjugate with passive form)",
			I18n: jp("五段動詞、～さす"),
		}},
		{ID: "v5sp", Condition: deinflect.Condition{
			Name: "Godan verb, short causative form not having さす ending (can conjugate with passive form)",
			I18n: jp("五段動詞、～す"),
		}},
		{ID: "vk", Condition: deinflect.Condition{
			Name:             "Kuru verb",
			IsDictionaryForm: true,
			I18n:             jp("来る動詞"),
		}},
		{ID: "vs", Condition: deinflect.Condition{
			Name:             "Suru verb",
			IsDictionaryForm: true,
			I18n:             jp("する動詞"),
		}},
		{ID: "vz", Condition: deinflect.Condition{
			Name:             "Zuru verb",
			IsDictionaryForm: true,
			I18n:             jp("ずる動詞"),
		}},
		{ID: "adj-i", Condition: deinflect.Condition{
			Name:             "Adjective with i ending",
			IsDictionaryForm: true,
			I18n:             jp("形容詞"),
		}},
		{ID: "-ます", Condition: deinflect.Condition{
			Name: "Polite -ます ending",
		}},
		{ID: "-ません", Condition: deinflect.Condition{
			Name: "Polite negative -ません ending",
		}},
		{ID: "-て", Condition: deinflect.Condition{
			Name: "Intermediate -て endings for progressive or perfect tense",
		}},
		{ID: "-ば", Condition: deinflect.Condition{
			Name: "Intermediate -ば endings for conditional contraction",
		}},
		{ID: "-く", Condition: deinflect.Condition{
			Name: "Intermediate -く endings for adverbs",
		}},
		{ID: "-た", Condition: deinflect.Condition{
			Name: "-た form ending",
		}},
		{ID: "-ん", Condition: deinflect.Condition{
			Name: "-ん negative ending",
		}},
		{ID: "-なさい", Condition: deinflect.Condition{
			Name: "Intermediate -なさい ending (polite imperative)",
		}},
		{ID: "-ゃ", Condition: deinflect.Condition{
			Name: "Intermediate -や ending (conditional contraction)",
		}},
	}
}
