package dlx

import (
	"fmt"

	"github.com/nicolas-bolle/puzzlesolver/internal/set"
)

// SchemaError reports an invalid problem description: duplicate names,
// overlapping primary/secondary columns, or entries that reference unknown
// rows or columns.  It is always the caller's fault.
type SchemaError struct {
	Message string
}

func (e *SchemaError) Error() string {
	return e.Message
}

func schemaErrorf(format string, args ...any) *SchemaError {
	return &SchemaError{Message: fmt.Sprintf(format, args...)}
}

// CheckDistinct verifies the names are pairwise distinct.  The reported
// offender is the first repeated name in input order.
func CheckDistinct(names []string) error {
	counts := make(map[string]int, len(names))
	for _, name := range names {
		counts[name]++
	}
	for _, name := range names {
		if counts[name] > 1 {
			return schemaErrorf("Expected 1 count for '%s', found %d", name, counts[name])
		}
	}
	return nil
}

// CheckDisjoint verifies the two name lists share no elements.
func CheckDisjoint(a, b []string) error {
	overlap := set.Intersect(set.NewSet(a...), set.NewSet(b...))
	if overlap.Size() > 0 {
		return schemaErrorf("Overlapping elements found such as '%s'", overlap.Values()[0])
	}
	return nil
}

// CheckSubset verifies every element of sub appears in super.
func CheckSubset(sub, super []string) error {
	extra := set.Difference(set.NewSet(sub...), set.NewSet(super...))
	if extra.Size() > 0 {
		return schemaErrorf("Extra elements found such as '%s'", extra.Values()[0])
	}
	return nil
}
