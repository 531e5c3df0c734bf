package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathYieldsDefaults(t *testing.T) {
	rules, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Defaults(), rules)
}

func TestLoadOverridesFromYAML(t *testing.T) {
	r := require.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	r.NoError(os.WriteFile(path, []byte("useRedFives: false\nsanchahoIsDraw: true\ninitialScore: 30000\n"), 0o644))

	rules, err := Load(path)
	r.NoError(err)
	r.False(rules.UseRedFives)
	r.True(rules.SanchahoIsDraw)
	r.Equal(30000, rules.InitialScore)
	// untouched fields keep their defaults
	r.True(rules.KuitanAllowed)
	r.Equal(1000, rules.KyotakuValue)
}
