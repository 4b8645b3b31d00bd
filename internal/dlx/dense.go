package dlx

import (
	"strconv"
)

// FromDense builds a Matrix from dense 0/1 blocks: primary holds the
// exactly-once constraints, secondary (which may be nil) the at-most-once
// constraints, row for row.  Any nil name slice is auto-generated: row names
// "0", "1", ... and column names "primary_j" / "secondary_j".  Dimension
// mismatches are reported as a *SchemaError.
func FromDense(primary, secondary [][]int, rowNames, primaryNames, secondaryNames []string) (*Matrix, error) {
	n := len(primary)
	if secondary == nil {
		secondary = make([][]int, n)
	}
	if len(secondary) != n {
		return nil, schemaErrorf("primary has %d rows while secondary has %d rows", n, len(secondary))
	}

	var m int
	if n > 0 {
		m = len(primary[0])
	}
	for i, row := range primary {
		if len(row) != m {
			return nil, schemaErrorf("primary row %d has %d columns, expected %d", i, len(row), m)
		}
	}

	var mSec int
	if n > 0 {
		mSec = len(secondary[0])
	}
	for i, row := range secondary {
		if len(row) != mSec {
			return nil, schemaErrorf("secondary row %d has %d columns, expected %d", i, len(row), mSec)
		}
	}

	if rowNames == nil {
		rowNames = make([]string, n)
		for i := range rowNames {
			rowNames[i] = strconv.Itoa(i)
		}
	}
	if len(rowNames) != n {
		return nil, schemaErrorf("%d rows specified, expected %d", len(rowNames), n)
	}

	if primaryNames == nil {
		primaryNames = make([]string, m)
		for j := range primaryNames {
			primaryNames[j] = "primary_" + strconv.Itoa(j)
		}
	}
	if len(primaryNames) != m {
		return nil, schemaErrorf("%d columns specified, expected %d", len(primaryNames), m)
	}

	if secondaryNames == nil {
		secondaryNames = make([]string, mSec)
		for j := range secondaryNames {
			secondaryNames[j] = "secondary_" + strconv.Itoa(j)
		}
	}
	if len(secondaryNames) != mSec {
		return nil, schemaErrorf("%d secondary columns specified, expected %d", len(secondaryNames), mSec)
	}

	entries := make(map[string][]string, n)
	for i, name := range rowNames {
		var cols []string
		for j, v := range primary[i] {
			if v != 0 {
				cols = append(cols, primaryNames[j])
			}
		}
		for j, v := range secondary[i] {
			if v != 0 {
				cols = append(cols, secondaryNames[j])
			}
		}
		entries[name] = cols
	}

	return New(rowNames, primaryNames, secondaryNames, entries)
}
