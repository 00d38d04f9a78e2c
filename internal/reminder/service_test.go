package reminder

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&Reminder{}))
	return gdb
}

func TestCreateRejectsEmptyText(t *testing.T) {
	svc := &Service{DB: testDB(t)}

	_, err := svc.Create(context.Background(), 1, "  \n", time.Now())
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestDueBoundary(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	past, err := svc.Create(ctx, 1, "past", now.Add(-time.Second))
	require.NoError(t, err)
	exact, err := svc.Create(ctx, 2, "exact", now)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 3, "future", now.Add(time.Second))
	require.NoError(t, err)

	due, err := svc.Due(ctx, now)
	require.NoError(t, err)
	require.Len(t, due, 2)

	ids := []uint64{due[0].ID, due[1].ID}
	assert.Contains(t, ids, past.ID)
	assert.Contains(t, ids, exact.ID)
}

func TestDueSkipsDelivered(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()
	now := time.Now()

	r, err := svc.Create(ctx, 1, "done already", now.Add(-time.Minute))
	require.NoError(t, err)
	require.NoError(t, svc.MarkDelivered(ctx, r.ID))

	due, err := svc.Due(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, due)
}

func TestMarkDeliveredIdempotent(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	r, err := svc.Create(ctx, 1, "ping", time.Now())
	require.NoError(t, err)

	require.NoError(t, svc.MarkDelivered(ctx, r.ID))
	require.NoError(t, svc.MarkDelivered(ctx, r.ID))

	var got Reminder
	require.NoError(t, svc.DB.First(&got, r.ID).Error)
	assert.True(t, got.IsCompleted)
}

func TestListActiveSoonestFirst(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	later, err := svc.Create(ctx, 1, "later", now.Add(2*time.Hour))
	require.NoError(t, err)
	sooner, err := svc.Create(ctx, 1, "sooner", now.Add(time.Hour))
	require.NoError(t, err)
	delivered, err := svc.Create(ctx, 1, "delivered", now.Add(3*time.Hour))
	require.NoError(t, err)
	require.NoError(t, svc.MarkDelivered(ctx, delivered.ID))
	_, err = svc.Create(ctx, 2, "someone else", now)
	require.NoError(t, err)

	got, err := svc.ListActive(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, sooner.ID, got[0].ID)
	assert.Equal(t, later.ID, got[1].ID)
}

func TestDeleteOwnerScoped(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	r, err := svc.Create(ctx, 1, "mine", time.Now())
	require.NoError(t, err)

	ok, err := svc.Delete(ctx, r.ID, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.Delete(ctx, r.ID, 1)
	require.NoError(t, err)
	assert.True(t, ok)
}
