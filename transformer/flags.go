package transformer

import "github.com/npillmayer/deinflect"

// MaxConditionFlags is the number of leaf condition flags a single
// transformer can hold.
const MaxConditionFlags = 32

// BuildConditionFlags assigns flags to condition declarations, starting
// at bit position startingIndex. A leaf condition (no sub-conditions)
// receives a fresh single-bit flag; a composite condition receives the
// bitwise OR of its sub-conditions' flags, resolved by fixed-point
// iteration over the declaration list. It returns the resolved flag map
// and the next free bit position.
//
// A pass over the remaining declarations that resolves nothing means the
// remainder forms a dependency cycle; that fails with
// *deinflect.SubConditionCycleError. Exhausting the 32 available bit
// positions fails with *deinflect.TooManyConditionsError.
func BuildConditionFlags(entries []deinflect.ConditionEntry, startingIndex int) (map[string]uint32, int, error) {
	flags := make(map[string]uint32, len(entries))
	nextIndex := startingIndex
	targets := entries
	for len(targets) > 0 {
		unresolved := make([]deinflect.ConditionEntry, 0, len(targets))
		for _, target := range targets {
			if len(target.Condition.SubConditions) > 0 {
				mask, err := ResolveMask(flags, target.Condition.SubConditions)
				if err != nil {
					// Some sub-condition has no flag yet; retry next pass.
					unresolved = append(unresolved, target)
					continue
				}
				flags[target.ID] = mask
				continue
			}
			if nextIndex >= MaxConditionFlags {
				return nil, 0, &deinflect.TooManyConditionsError{Limit: MaxConditionFlags}
			}
			flags[target.ID] = 1 << uint(nextIndex)
			nextIndex++
		}
		if len(unresolved) == len(targets) {
			ids := make([]string, len(unresolved))
			for i, e := range unresolved {
				ids[i] = e.ID
			}
			return nil, 0, &deinflect.SubConditionCycleError{Identifiers: ids}
		}
		targets = unresolved
	}
	return flags, nextIndex, nil
}

// ResolveMask returns the bitwise OR of the flags of the named
// conditions. An empty identifier list yields 0, meaning "unrestricted".
// A name without a flag fails with *deinflect.UnknownConditionError.
func ResolveMask(flags map[string]uint32, ids []string) (uint32, error) {
	var mask uint32
	for i, id := range ids {
		f, ok := flags[id]
		if !ok {
			return 0, &deinflect.UnknownConditionError{Name: id, Index: i}
		}
		mask |= f
	}
	return mask, nil
}

// ConditionsMatch reports whether a candidate carrying current may take a
// rule guarded by next. A candidate with no conditions imposed yet
// (current == 0) matches everything; otherwise the masks must share at
// least one bit.
func ConditionsMatch(current, next uint32) bool {
	return current == 0 || current&next != 0
}
