package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"date_groups", "diagnosis_records", "action_records", "record_sequences", "vuln_checks"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM vuln_checks`).Scan(&count))
	assert.Equal(t, 3, count, "check seeds must not duplicate on re-run")
}

func TestMigrate_SeedsCheckItems(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	rows, err := database.Query(`SELECT code, status FROM vuln_checks ORDER BY order_index`)
	require.NoError(t, err)
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code, status string
		require.NoError(t, rows.Scan(&code, &status))
		assert.Equal(t, "대기", status)
		codes = append(codes, code)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"V-001", "V-002", "V-003"}, codes)
}
