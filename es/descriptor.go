package es

import (
	"sync"

	"github.com/npillmayer/deinflect"
)

var (
	descriptorOnce sync.Once
	descriptor     *deinflect.LanguageDescriptor
)

// Descriptor returns the Spanish language descriptor. The descriptor is
// built once and shared.
func Descriptor() *deinflect.LanguageDescriptor {
	descriptorOnce.Do(func() {
		descriptor = &deinflect.LanguageDescriptor{
			Language:    "es",
			ISO639_3:    "spa",
			ExampleText: "leer",
			Conditions:  deinflect.NewConditionMap(conditions()...),
			Transforms:  deinflect.NewTransformMap(transforms()...),
			PreProcessors: []deinflect.TextProcessor{
				deinflect.Decapitalize,
				deinflect.CapitalizeFirstLetter,
			},
		}
	})
	return descriptor
}
