package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/habeanf/yap-ccg/catcombination"
	"github.com/stretchr/testify/assert"
)

func TestLoadManifestParsesYAML(t *testing.T) {
	content := `
weightsFile: weights.txt
numFeatures: 10
depNNModelDir: /models/dep
ignoredRelations: ["conj", "punct"]
cubePruning: true
beamSize: 64
beta: -2.5
maxWords: 100
maxSuperCats: 5000
`
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	m, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	assert.Equal(t, "weights.txt", m.WeightsFile)
	assert.Equal(t, 10, m.NumFeatures)
	assert.Equal(t, "/models/dep", m.DepNNModelDir)
	assert.Equal(t, []string{"conj", "punct"}, m.IgnoredRelNames)
	assert.True(t, m.CubePruning)
	assert.Equal(t, 64, m.BeamSize)
	assert.InDelta(t, -2.5, m.Beta, 1e-9)
	assert.Equal(t, 100, m.MaxWords)
	assert.Equal(t, 5000, m.MaxSuperCats)
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestRelationIgnorePolicyIgnoresOnlyConfiguredIDs(t *testing.T) {
	policy := NewRelationIgnorePolicy([]int16{3, 7})

	ignored := catcombination.NewDependency(3, 1, 0, 0).Fill(2)
	kept := catcombination.NewDependency(4, 1, 0, 0).Fill(2)

	assert.True(t, policy.Ignore(ignored))
	assert.False(t, policy.Ignore(kept))
}
