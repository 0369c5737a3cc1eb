package notificationstore

import (
	"sort"

	"campus-outpass-backend/memstore"
	storemodels "campus-outpass-backend/models/store"
)

type Provider interface {
	Create(rec storemodels.Notification)
	List(userID string) []storemodels.Notification
	ListUnread(userID string) []storemodels.Notification
	MarkRead(id string)
}

func NewInstance(db *memstore.Database) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *memstore.Database
}

func (i impl) Create(rec storemodels.Notification) {
	i.db.AppendNotification(rec)
}

// List returns the user's notifications newest first.
func (i impl) List(userID string) []storemodels.Notification {
	list := []storemodels.Notification{}
	for _, rec := range i.db.SnapshotNotifications() {
		if rec.UserID == userID {
			list = append(list, rec)
		}
	}
	sort.SliceStable(list, func(a, b int) bool {
		return list[a].CreatedAt.After(list[b].CreatedAt)
	})
	return list
}

func (i impl) ListUnread(userID string) []storemodels.Notification {
	list := []storemodels.Notification{}
	for _, rec := range i.List(userID) {
		if !rec.Read {
			list = append(list, rec)
		}
	}
	return list
}

// MarkRead is idempotent, repeated calls and unknown ids are no-ops.
func (i impl) MarkRead(id string) {
	i.db.UpdateNotification(id, func(rec *storemodels.Notification) {
		rec.Read = true
	})
}
