package model

import (
	"fmt"

	"github.com/habeanf/yap-ccg/util/conf"
)

// LoadRelationLabels reads a newline-delimited, '#'-comment relation label
// file via util/conf (the teacher's shared config-reading idiom), one
// relation name per line; a label's position in the returned slice is its
// RelID.
func LoadRelationLabels(filename string) ([]string, error) {
	c, err := conf.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("model: reading relation labels: %w", err)
	}
	return c.Values, nil
}

// ResolveIgnoredRelIDs maps a manifest's ignoredRelations names onto their
// RelIDs in labels, in preparation for NewRelationIgnorePolicy. Names not
// found in labels are silently skipped: an ignore policy for a relation the
// grammar doesn't define is a no-op, not an error.
func ResolveIgnoredRelIDs(labels []string, ignoredNames []string) []int16 {
	index := make(map[string]int16, len(labels))
	for i, name := range labels {
		index[name] = int16(i)
	}
	ids := make([]int16, 0, len(ignoredNames))
	for _, name := range ignoredNames {
		if id, ok := index[name]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
