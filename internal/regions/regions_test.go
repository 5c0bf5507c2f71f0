package regions

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeRegionFile writes src to a temporary .hcl file and returns its path.
func writeRegionFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "regions.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestLoad_SumsSubPopulations(t *testing.T) {
	t.Parallel()

	path := writeRegionFile(t, `
region "delaware_valley" {
  bucks    = 628341
  chester  = 519293
  delaware = 564696
}
`)

	r, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 628341+519293+564696, r.Population)
	require.Equal(t, 628341, r.Counts["bucks"])
}

func TestLoad_MergesMultipleBlocks(t *testing.T) {
	t.Parallel()

	path := writeRegionFile(t, `
region "pa" {
  bucks = 628341
}

region "nj" {
  camden = 506471
}
`)

	r, err := Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, 628341+506471, r.Population)
	require.Len(t, r.Counts, 2)
}

func TestLoad_DuplicateSubPopulation(t *testing.T) {
	t.Parallel()

	path := writeRegionFile(t, `
region "pa" {
  bucks = 628341
}

region "pa_again" {
  bucks = 1
}
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "duplicate sub-population 'bucks'")
}

func TestLoad_RejectsNonNumericCounts(t *testing.T) {
	t.Parallel()

	path := writeRegionFile(t, `
region "pa" {
  bucks = "lots"
}
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be a number")
}

func TestLoad_RejectsNegativeCounts(t *testing.T) {
	t.Parallel()

	path := writeRegionFile(t, `
region "pa" {
  bucks = -5
}
`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "bucks")
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Parallel()

	path := writeRegionFile(t, `region "pa" {`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse region file")
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "absent.hcl"))
	require.Error(t, err)
}

func TestLoad_NoRegionBlocks(t *testing.T) {
	t.Parallel()

	path := writeRegionFile(t, "\n")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "defines no region blocks")
}
