package ja

import (
	"sync"

	"github.com/npillmayer/deinflect"
)

var (
	descriptorOnce sync.Once
	descriptor     *deinflect.LanguageDescriptor
)

// Descriptor returns the Japanese language descriptor: the condition and
// transform tables plus the text processors run before a deinflection
// search. The descriptor is built once and shared.
func Descriptor() *deinflect.LanguageDescriptor {
	descriptorOnce.Do(func() {
		descriptor = &deinflect.LanguageDescriptor{
			Language:           "ja",
			ISO639_3:           "jpn",
			ExampleText:        "読め",
			IsTextLookupWorthy: IsStringPartiallyJapanese,
			Conditions:         deinflect.NewConditionMap(conditions()...),
			Transforms:         deinflect.NewTransformMap(transforms()...),
			PreProcessors: []deinflect.TextProcessor{
				ConvertHalfWidthCharacters,
				AlphabeticToHiragana,
				NormalizeCombiningCharactersProcessor,
				NormalizeCJKCompatibilityCharactersProcessor,
				deinflect.NormalizeRadicalCharacters,
				StandardizeKanji,
				AlphanumericWidthVariants,
				HiraganaToKatakana,
				CollapseEmphaticSequencesProcessor,
			},
		}
	})
	return descriptor
}
