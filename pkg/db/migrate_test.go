package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectMigrationFilenames(t *testing.T) {
	filenames, err := collectMigrationFilenames()
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0001_init.up.sql",
		"0002_hypertables.up.sql",
		"0003_continuous_aggregates.up.sql",
		"0004_seed_metric_definitions.up.sql",
	}, filenames)
}

func TestEmbeddedMigrationsSplitCleanly(t *testing.T) {
	filenames, err := collectMigrationFilenames()
	require.NoError(t, err)

	for _, name := range filenames {
		content, err := migrationsFS.ReadFile("migrations/" + name)
		require.NoError(t, err, name)

		statements := splitSQLStatements(string(content))
		require.NotEmpty(t, statements, name)

		for _, stmt := range statements {
			assert.NotContains(t, stmt, "--", "comment text must not leak into %s", name)
		}
	}
}
