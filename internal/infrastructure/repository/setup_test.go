package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/biztime"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// Every connection to ":memory:" is a separate database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, gdb.AutoMigrate(&models.UserModel{}, &models.TicketModel{}, &models.CommentModel{}))
	return gdb
}

// steppingClock returns times one second apart starting at start.
func steppingClock(t *testing.T, start time.Time) {
	t.Helper()
	next := start
	restore := biztime.SetClock(func() time.Time {
		now := next
		next = next.Add(time.Second)
		return now
	})
	t.Cleanup(restore)
}

func uintPtr(v uint) *uint {
	return &v
}

func setFixedClock(at time.Time) func() {
	return biztime.SetClock(func() time.Time { return at })
}
