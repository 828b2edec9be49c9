package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type counter struct {
	ID    uint `gorm:"primaryKey"`
	Value int
}

func setupTestDB(t *testing.T) *gorm.DB {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&counter{}))
	return gdb
}

func countRows(t *testing.T, gdb *gorm.DB) int64 {
	var n int64
	require.NoError(t, gdb.Model(&counter{}).Count(&n).Error)
	return n
}

func TestRunInTransaction_Commit(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		return GetTxFromContext(ctx, gdb).Create(&counter{Value: 1}).Error
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, gdb))
}

func TestRunInTransaction_Rollback(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)
	boom := errors.New("boom")

	err := tm.RunInTransaction(context.Background(), func(ctx context.Context) error {
		if err := GetTxFromContext(ctx, gdb).Create(&counter{Value: 1}).Error; err != nil {
			return err
		}
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), countRows(t, gdb))
}

func TestRunInTransaction_NestedJoinsOuter(t *testing.T) {
	gdb := setupTestDB(t)
	tm := NewTransactionManager(gdb)

	err := tm.RunInTransaction(context.Background(), func(outer context.Context) error {
		outerTx := GetTxFromContext(outer, gdb)
		return tm.RunInTransaction(outer, func(inner context.Context) error {
			assert.Same(t, outerTx, GetTxFromContext(inner, gdb))
			return nil
		})
	})

	require.NoError(t, err)
}
