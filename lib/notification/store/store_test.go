package notificationstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campus-outpass-backend/memstore"
	storemodels "campus-outpass-backend/models/store"
)

func record(userID, message string, at time.Time) storemodels.Notification {
	rec := storemodels.Notification{
		BaseModel: storemodels.NewBaseModel(),
		UserID:    userID,
		Message:   message,
	}
	rec.CreatedAt = at
	return rec
}

func TestNotificationStore(t *testing.T) {
	t.Run(`list is newest first and scoped to the user`, func(t *testing.T) {
		store := NewInstance(memstore.New())
		base := time.Now()
		store.Create(record("STU001", "older", base.Add(-time.Minute)))
		store.Create(record("STU001", "newer", base))
		store.Create(record("WAR001", "someone else's", base))

		list := store.List("STU001")
		require.Len(t, list, 2)
		require.Equal(t, "newer", list[0].Message)
		require.Equal(t, "older", list[1].Message)
	})

	t.Run(`mark read keeps the record and survives repeats`, func(t *testing.T) {
		store := NewInstance(memstore.New())
		rec := record("STU001", "hello", time.Now())
		store.Create(rec)

		store.MarkRead(rec.ID)
		store.MarkRead(rec.ID)
		store.MarkRead("unknown-id")

		require.Len(t, store.List("STU001"), 1)
		require.Empty(t, store.ListUnread("STU001"))
	})
}
