/*
Package transformer implements the deinflection engine: a breadth-first
search over declarative rewrite rules, constrained by a condition bitset
algebra.

Under active development; use at your own risk

# Description

A Transformer owns the compiled rule set of one or more languages.
Descriptors (see package deinflect) are installed with Install, which
assigns every declared condition a bit flag, resolves hierarchical
sub-conditions to unions of flags, compiles every rule pattern, and
precomputes per-transform heuristic regexes. Transform then enumerates
deinflection candidates: starting from the verbatim input, every
applicable rule spawns a new candidate, and candidates are expanded in
insertion order until no rule fires anymore. A trace of (transform, rule,
text) frames records how each candidate was derived; the same triple is
never applied twice to the same text, which bounds the search.

Installed tables are immutable; Transform is a pure read and may be called
concurrently from any number of goroutines.

# BSD License

# Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package transformer

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/deinflect"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// DefaultMaxNodes bounds the number of search nodes a single Transform
// call may produce. The shipped rule tables peak at a few hundred nodes
// per surface form; the bound only matters for adversarial rule sets.
const DefaultMaxNodes = 4096

// A Transformer owns compiled deinflection tables for one or more
// languages and performs the deinflection search on them. The zero value
// is ready for use; install descriptors with Install.
//
// After Install, a Transformer is read-only: Transform and the flag
// lookup helpers may be called concurrently.
type Transformer struct {
	nextFlagIndex  int
	languages      []string
	transforms     []*internalTransform
	conditionFlags map[string]uint32 // condition identifier → flag mask
	posFlags       map[string]uint32 // restricted to dictionary-form conditions
	MaxNodes       int               // safety cap for Transform; 0 means DefaultMaxNodes
}

// NewTransformer creates an empty Transformer.
func NewTransformer() *Transformer {
	return &Transformer{
		conditionFlags: make(map[string]uint32),
		posFlags:       make(map[string]uint32),
		MaxNodes:       DefaultMaxNodes,
	}
}

// Install extends the transformer's tables with a language descriptor:
// condition flags are assigned (continuing after previously installed
// descriptors), every rule is compiled, and the descriptor's transforms
// are appended in declaration order.
//
// Install fails with *deinflect.SubConditionCycleError,
// *deinflect.TooManyConditionsError, *deinflect.UnknownConditionError or
// *deinflect.InvalidPatternError. On failure nothing is retained: a
// partially compiled descriptor is discarded completely.
func (t *Transformer) Install(d *deinflect.LanguageDescriptor) error {
	if t.conditionFlags == nil {
		t.conditionFlags = make(map[string]uint32)
		t.posFlags = make(map[string]uint32)
		t.MaxNodes = DefaultMaxNodes
	}
	entries := conditionEntries(d.Conditions)
	flags, nextIndex, err := BuildConditionFlags(entries, t.nextFlagIndex)
	if err != nil {
		CT().Errorf("installing descriptor %q: %v", d.Language, err)
		return err
	}
	compiled, err := compileTransforms(d.Transforms, flags)
	if err != nil {
		CT().Errorf("installing descriptor %q: %v", d.Language, err)
		return err
	}
	// All fallible work is done; now mutate.
	t.nextFlagIndex = nextIndex
	t.transforms = append(t.transforms, compiled...)
	t.languages = append(t.languages, d.Language)
	for _, e := range entries {
		f, ok := flags[e.ID]
		if !ok {
			continue
		}
		t.conditionFlags[e.ID] = f
		if e.Condition.IsDictionaryForm {
			t.posFlags[e.ID] = f
		}
	}
	CT().Infof("installed descriptor %q: %d transforms, next flag index %d",
		d.Language, len(compiled), t.nextFlagIndex)
	return nil
}

// NextFlagIndex returns the index the next leaf condition flag would be
// assigned.
func (t *Transformer) NextFlagIndex() int {
	return t.nextFlagIndex
}

// Transform enumerates deinflection candidates for text. It never fails:
// when no rule fires, the result is the single verbatim node with zero
// conditions and an empty trace. The result always starts with that node,
// and candidates appear in breadth-first order: transforms in
// installation order, rules in declaration order within a transform.
func (t *Transformer) Transform(text string) []deinflect.TransformedText {
	results := []deinflect.TransformedText{{Text: text, Conditions: 0, Trace: nil}}
	maxNodes := t.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	for i := 0; i < len(results); i++ {
		entry := results[i]
		for _, transform := range t.transforms {
			if !transform.maybeApplies(entry.Text) {
				continue
			}
			for j, rule := range transform.rules {
				if !ConditionsMatch(entry.Conditions, rule.conditionsIn) {
					continue
				}
				if !rule.matches(entry.Text) {
					continue
				}
				frame := deinflect.TraceFrame{
					Transform: transform.id,
					RuleIndex: j,
					Text:      entry.Text,
				}
				if entry.Trace.Contains(frame) {
					CT().Infof("cycle guard: transform %q rule %d already fired on %q",
						transform.id, j, entry.Text)
					continue
				}
				if len(results) >= maxNodes {
					CT().Errorf("node cap of %d reached, truncating search", maxNodes)
					return results
				}
				results = append(results, deinflect.TransformedText{
					Text:       rule.deinflect(entry.Text),
					Conditions: rule.conditionsOut,
					Trace:      entry.Trace.Prepend(frame),
				})
			}
		}
	}
	return results
}

// ConditionFlagsFromPartsOfSpeech returns the union of the flags of the
// named conditions, considering only dictionary-form conditions. Missing
// identifiers contribute 0.
func (t *Transformer) ConditionFlagsFromPartsOfSpeech(ids []string) uint32 {
	return lenientFlags(t.posFlags, ids)
}

// ConditionFlagsFromConditionTypes returns the union of the flags of the
// named conditions. Missing identifiers contribute 0.
func (t *Transformer) ConditionFlagsFromConditionTypes(ids []string) uint32 {
	return lenientFlags(t.conditionFlags, ids)
}

// ConditionFlagsFromSingleConditionType returns the flag of one named
// condition, or 0 when unknown.
func (t *Transformer) ConditionFlagsFromSingleConditionType(id string) uint32 {
	return lenientFlags(t.conditionFlags, []string{id})
}

// UserFacingInflectionRules maps transform identifiers (usually taken
// from a trace) to their display records. Unknown identifiers fall back
// to the identifier string itself.
func (t *Transformer) UserFacingInflectionRules(ids []string) []deinflect.InflectionRule {
	rules := make([]deinflect.InflectionRule, 0, len(ids))
	for _, id := range ids {
		found := false
		for _, transform := range t.transforms {
			if transform.id == id {
				rules = append(rules, deinflect.InflectionRule{
					Name:        transform.name,
					Description: transform.description,
				})
				found = true
				break
			}
		}
		if !found {
			rules = append(rules, deinflect.InflectionRule{Name: id})
		}
	}
	return rules
}

func lenientFlags(m map[string]uint32, ids []string) uint32 {
	var flags uint32
	for _, id := range ids {
		flags |= m[id]
	}
	return flags
}

func conditionEntries(cm *deinflect.ConditionMap) []deinflect.ConditionEntry {
	if cm == nil {
		return nil
	}
	entries := make([]deinflect.ConditionEntry, 0, cm.Size())
	cm.Each(func(id string, c deinflect.Condition) {
		entries = append(entries, deinflect.ConditionEntry{ID: id, Condition: c})
	})
	return entries
}
