package notification

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/dbmetrics"
	"github.com/m04kA/chargemate-booking/pkg/ptr"
)

const schema = `
CREATE TABLE notifications (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    user_email  TEXT      NOT NULL,
    type        TEXT      NOT NULL,
    title       TEXT      NOT NULL,
    message     TEXT      NOT NULL,
    timestamp   TIMESTAMP NOT NULL,
    read        BOOLEAN   NOT NULL DEFAULT 0,
    action_url  TEXT,
    action_text TEXT
);`

func setupRepo(t *testing.T) *Repository {
	t.Helper()
	raw, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	raw.SetMaxOpenConns(1)
	t.Cleanup(func() { raw.Close() })

	_, err = raw.Exec(schema)
	require.NoError(t, err)

	return NewRepository(dbmetrics.Wrap(raw, nil))
}

func TestCreateAndList(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)

	confirmed := time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)
	reminder := time.Date(2025, 6, 1, 9, 50, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &domain.Notification{
		UserEmail:  "asha@example.com",
		Type:       domain.NotificationBooking,
		Title:      "Booking Confirmed",
		Message:    "Your booking for MG Road Hub on 2025-06-01 at 10:00 is confirmed.",
		Timestamp:  confirmed,
		ActionURL:  ptr.Ptr("/mybookings"),
		ActionText: ptr.Ptr("View Booking"),
	}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{
		UserEmail: "asha@example.com",
		Type:      domain.NotificationReminder,
		Title:     "Booking Reminder",
		Message:   "Your charging session at MG Road Hub is in 10 minutes on 2025-06-01 at 10:00.",
		Timestamp: reminder,
	}))
	require.NoError(t, repo.Create(ctx, &domain.Notification{
		UserEmail: "ravi@example.com",
		Type:      domain.NotificationBooking,
		Title:     "Booking Confirmed",
		Message:   "other",
		Timestamp: confirmed,
	}))

	list, err := repo.ListByUser(ctx, "Asha@Example.com", false)
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, domain.NotificationReminder, list[0].Type)
	assert.True(t, reminder.Equal(list[0].Timestamp))
	assert.Nil(t, list[0].ActionURL)

	assert.Equal(t, domain.NotificationBooking, list[1].Type)
	assert.Equal(t, "/mybookings", *list[1].ActionURL)
	assert.False(t, list[1].Read)
}

func seed(t *testing.T, repo *Repository, email string, at time.Time) {
	t.Helper()
	require.NoError(t, repo.Create(context.Background(), &domain.Notification{
		UserEmail: email,
		Type:      domain.NotificationBooking,
		Title:     "Booking Confirmed",
		Message:   "Your booking is confirmed.",
		Timestamp: at,
	}))
}

func TestMarkReadAndUnreadFilter(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	at := time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

	seed(t, repo, "asha@example.com", at)
	seed(t, repo, "asha@example.com", at.Add(time.Minute))

	all, err := repo.ListByUser(ctx, "asha@example.com", false)
	require.NoError(t, err)
	require.Len(t, all, 2)

	marked, err := repo.MarkRead(ctx, all[0].ID, "ASHA@example.com")
	require.NoError(t, err)
	assert.True(t, marked.Read)
	assert.Equal(t, all[0].ID, marked.ID)

	unread, err := repo.ListByUser(ctx, "asha@example.com", true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, all[1].ID, unread[0].ID)
}

func TestMarkReadForeignNotification(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	seed(t, repo, "asha@example.com", time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC))

	list, err := repo.ListByUser(ctx, "asha@example.com", false)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = repo.MarkRead(ctx, list[0].ID, "ravi@example.com")
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	_, err = repo.MarkRead(ctx, 999, "asha@example.com")
	assert.ErrorIs(t, err, ErrNotificationNotFound)

	list, err = repo.ListByUser(ctx, "asha@example.com", true)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestMarkAllRead(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	at := time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC)

	seed(t, repo, "asha@example.com", at)
	seed(t, repo, "asha@example.com", at.Add(time.Minute))
	seed(t, repo, "ravi@example.com", at)

	modified, err := repo.MarkAllRead(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), modified)

	modified, err = repo.MarkAllRead(ctx, "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, int64(0), modified)

	unread, err := repo.ListByUser(ctx, "ravi@example.com", true)
	require.NoError(t, err)
	assert.Len(t, unread, 1)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := setupRepo(t)
	seed(t, repo, "asha@example.com", time.Date(2025, 5, 30, 9, 0, 0, 0, time.UTC))

	list, err := repo.ListByUser(ctx, "asha@example.com", false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].ID

	assert.ErrorIs(t, repo.Delete(ctx, id, "ravi@example.com"), ErrNotificationNotFound)
	require.NoError(t, repo.Delete(ctx, id, "asha@example.com"))
	assert.ErrorIs(t, repo.Delete(ctx, id, "asha@example.com"), ErrNotificationNotFound)

	list, err = repo.ListByUser(ctx, "asha@example.com", false)
	require.NoError(t, err)
	assert.Empty(t, list)
}
