package database

import (
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	tables := []string{
		"footballers",
		"personal_stats",
		"player_records",
		"gentleman_coefficients",
		"clubs",
		"trophies",
		"awards",
		"golden_ball",
		"audit_logs",
		"bot_sessions",
		"bot_players",
		"bot_clubs",
	}
	for _, table := range tables {
		var name string
		err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "Querying for %s table should not produce an error", table)
		assert.Equal(t, table, name)
	}
}

func TestInitDB_IsIdempotent(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	// Running the migrations a second time against the same handle is a no-op.
	require.NoError(t, migrate(db, "sqlite3"))
}

func TestInitDB_RejectsOutOfRangeCoefficient(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err)
	defer teardown()

	res, err := db.Exec(`INSERT INTO footballers (first_name, last_name, created_at) VALUES ('A', 'B', 0)`)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO gentleman_coefficients (footballer_id, footballer, coefficient) VALUES (?, 'A B', 7.5)`, id)
	assert.Error(t, err)
}

func TestMigrationDialects_AreKnownToGoose(t *testing.T) {
	for _, d := range []goose.Dialect{goose.DialectSQLite3, dialectTurso} {
		assert.NoError(t, goose.SetDialect(string(d)), string(d))
	}
}
