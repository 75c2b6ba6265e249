// internal/database/connection_test.go
package database

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		t.Skip("TEST_DATABASE_DSN not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// Temporary tables are session-scoped, so pin the pool to one connection.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return db
}

func TestWithTransactionCommitsOnSuccess(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Exec("CREATE TEMPORARY TABLE tx_probe_rows (id serial PRIMARY KEY, label text)").Error)

	err := WithTransaction(db, func(tx *gorm.DB) error {
		return tx.Exec("INSERT INTO tx_probe_rows (label) VALUES ('kept')").Error
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM tx_probe_rows").Scan(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWithTransactionRollsBackOnError(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Exec("CREATE TEMPORARY TABLE tx_rollback_rows (id serial PRIMARY KEY, label text)").Error)

	boom := errors.New("boom")
	err := WithTransaction(db, func(tx *gorm.DB) error {
		if err := tx.Exec("INSERT INTO tx_rollback_rows (label) VALUES ('dropped')").Error; err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Raw("SELECT COUNT(*) FROM tx_rollback_rows").Scan(&count).Error)
	assert.Equal(t, int64(0), count)
}
