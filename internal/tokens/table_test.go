package tokens

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CaseInsensitive(t *testing.T) {
	table := New(map[string][]string{
		"DeFi": {"mintA", "mintB"},
	})

	assert.Equal(t, []string{"mintA", "mintB"}, table.Lookup("defi"))
	assert.Equal(t, []string{"mintA", "mintB"}, table.Lookup("DEFI"))
	assert.Equal(t, []string{"mintA", "mintB"}, table.Lookup("DeFi"))
}

func TestLookup_UnknownNarrative(t *testing.T) {
	table := New(map[string][]string{"defi": {"mintA"}})
	assert.Empty(t, table.Lookup("quantum"))
}

func TestLookup_ReturnsCopy(t *testing.T) {
	table := New(map[string][]string{"defi": {"mintA", "mintB"}})

	got := table.Lookup("defi")
	got[0] = "tampered"

	assert.Equal(t, []string{"mintA", "mintB"}, table.Lookup("defi"))
}

func TestAllMints_SortedUnion(t *testing.T) {
	table := New(map[string][]string{
		"defi":  {"c", "a"},
		"depin": {"b", "a"}, // "a" shared across categories
	})

	assert.Equal(t, []string{"a", "b", "c"}, table.AllMints())
}

func TestDefault_EmbeddedTableParses(t *testing.T) {
	table := Default()

	require.NotEmpty(t, table.Categories())
	assert.Len(t, table.Lookup("defi"), 2)
	assert.NotEmpty(t, table.AllMints())
}

func TestLoad_FileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rwa:\n  - mintX\n"), 0o644))

	table, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"mintX"}, table.Lookup("RWA"))
	assert.Empty(t, table.Lookup("defi"))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid\n"), 0o644))
	_, err = Load(path)
	assert.Error(t, err)
}
