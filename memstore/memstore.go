package memstore

import (
	"sync"

	log "github.com/sirupsen/logrus"

	storemodels "campus-outpass-backend/models/store"
)

var DB *Database

// Database is the volatile state handle: the seeded identity roster, the
// request ledger and the notification list. Nothing here survives a
// restart; that is the contract, not a limitation. All access goes
// through the snapshot/mutate primitives below so callers never hold an
// aliased slice.
type Database struct {
	mu            sync.RWMutex
	users         []storemodels.Identity
	requests      []storemodels.LeaveRequest
	notifications []storemodels.Notification
}

func Connect() {
	if DB == nil {
		DB = New()
		log.Info("in-memory store initialized")
	}
}

// New returns a fresh store seeded with the demo roster. Tests use it to
// get isolated state.
func New() *Database {
	return &Database{
		users: seedIdentities(),
	}
}

func (d *Database) SnapshotUsers() []storemodels.Identity {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]storemodels.Identity, len(d.users))
	copy(out, d.users)
	return out
}

// PrependRequest puts a new record at the head of the ledger, newest
// submissions list first.
func (d *Database) PrependRequest(rec storemodels.LeaveRequest) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requests = append([]storemodels.LeaveRequest{rec}, d.requests...)
}

func (d *Database) SnapshotRequests() []storemodels.LeaveRequest {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]storemodels.LeaveRequest, len(d.requests))
	copy(out, d.requests)
	return out
}

func (d *Database) FindRequest(id string) (*storemodels.LeaveRequest, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for idx := range d.requests {
		if d.requests[idx].ID == id {
			rec := d.requests[idx]
			return &rec, true
		}
	}
	return nil, false
}

// UpdateRequest applies fn to the record in place under the write lock.
func (d *Database) UpdateRequest(id string, fn func(rec *storemodels.LeaveRequest)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for idx := range d.requests {
		if d.requests[idx].ID == id {
			fn(&d.requests[idx])
			return true
		}
	}
	return false
}

func (d *Database) AppendNotification(rec storemodels.Notification) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notifications = append(d.notifications, rec)
}

func (d *Database) SnapshotNotifications() []storemodels.Notification {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]storemodels.Notification, len(d.notifications))
	copy(out, d.notifications)
	return out
}

func (d *Database) UpdateNotification(id string, fn func(rec *storemodels.Notification)) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	for idx := range d.notifications {
		if d.notifications[idx].ID == id {
			fn(&d.notifications[idx])
			return true
		}
	}
	return false
}
