package scheduler

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookclubhq/bookclub/internal/database"
	"github.com/bookclubhq/bookclub/internal/entities"
)

func setupTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	dbPath := "./test_scheduler_" + t.Name() + ".db"

	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func TestScheduler_StartStop(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewMaintenanceScheduler(db, "0 3 * * *")
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRunTime())

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())

	next := s.NextRunTime()
	require.NotNil(t, next)
	assert.False(t, next.IsZero())

	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestScheduler_StartTwice(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewMaintenanceScheduler(db, "0 3 * * *")
	require.NoError(t, s.Start())
	defer s.Stop()

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	s := NewMaintenanceScheduler(db, "not a cron expression")
	err := s.Start()
	require.Error(t, err)
	assert.False(t, s.IsRunning())
}

func TestScheduler_RunNow(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	author := entities.Author{Name: "Author"}
	require.NoError(t, db.DB.Create(&author).Error)

	s := NewMaintenanceScheduler(db, "0 3 * * *")
	s.RunNow()

	// Data survives a maintenance pass.
	var count int64
	require.NoError(t, db.DB.Model(&entities.Author{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
