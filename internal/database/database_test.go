package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDSN(t *testing.T) {
	assert.Equal(t, "postgresql://u:p@host:5432/db", NormalizeDSN("postgres://u:p@host:5432/db"))
	assert.Equal(t, "postgresql://u:p@host/db", NormalizeDSN("postgresql://u:p@host/db"))
	assert.Equal(t, "/tmp/test.db", NormalizeDSN(" /tmp/test.db "))
}

func TestIsPostgres(t *testing.T) {
	assert.True(t, IsPostgres("postgres://x"))
	assert.True(t, IsPostgres("postgresql://x"))
	assert.False(t, IsPostgres("file:test.db"))
	assert.False(t, IsPostgres(":memory:"))
}

func TestConnectSQLiteMemory(t *testing.T) {
	db, err := Connect(":memory:")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}
