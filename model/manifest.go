package model

import (
	"fmt"
	"os"

	"github.com/habeanf/yap-ccg/catcombination"
	"gopkg.in/yaml.v3"
)

// Manifest describes where to load a model's weights and feature
// dimensions from, the optional path to a neural dependency scorer, the
// names of relations to ignore, and parser parameters. It replaces the original's bespoke
// per-file flags with a single declarative document; launchpad.net/goyaml
// is unreachable from this module's repository, so gopkg.in/yaml.v3 is
// used in its place for the same YAML-unmarshal idiom.
type Manifest struct {
	WeightsFile     string   `yaml:"weightsFile"`
	NumFeatures     int      `yaml:"numFeatures"`
	DepNNModelDir   string   `yaml:"depNNModelDir,omitempty"`
	IgnoredRelNames []string `yaml:"ignoredRelations,omitempty"`
	CubePruning     bool     `yaml:"cubePruning"`
	BeamSize        int      `yaml:"beamSize"`
	Beta            float64  `yaml:"beta"`
	MaxWords        int      `yaml:"maxWords"`
	MaxSuperCats    int      `yaml:"maxSuperCats"`
}

// LoadManifest reads and parses a Manifest from filename.
func LoadManifest(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("model: reading manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("model: parsing manifest: %w", err)
	}
	return &m, nil
}

// RelationIgnorePolicy ignores dependencies whose relation ID is in a fixed
// set, typically populated from Manifest.IgnoredRelNames resolved through a
// grammar's relation-name table.
type RelationIgnorePolicy struct {
	ignored map[int16]bool
}

// NewRelationIgnorePolicy builds a policy that ignores exactly the given
// relation IDs.
func NewRelationIgnorePolicy(relIDs []int16) *RelationIgnorePolicy {
	ignored := make(map[int16]bool, len(relIDs))
	for _, id := range relIDs {
		ignored[id] = true
	}
	return &RelationIgnorePolicy{ignored: ignored}
}

// Ignore reports whether dep's relation is in the ignored set.
func (p *RelationIgnorePolicy) Ignore(dep catcombination.FilledDependency) bool {
	return p.ignored[dep.RelID]
}
