package leavereqstore

import (
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
)

type Provider interface {
	Create(rec storemodels.LeaveRequest) (id string)
	GetByID(id string) *storemodels.LeaveRequest
	Update(id string, fn func(rec *storemodels.LeaveRequest)) bool
	List(filter Filter) []storemodels.LeaveRequest
}

// Filter narrows the ledger listing. StudentID wins over Status: a
// student always sees exactly their own history, whatever the status
// filter says.
type Filter struct {
	StudentID string
	Status    models.LeaveStatus
}

func NewInstance(db *memstore.Database) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *memstore.Database
}

func (i impl) Create(rec storemodels.LeaveRequest) string {
	i.db.PrependRequest(rec)
	return rec.ID
}

func (i impl) GetByID(id string) *storemodels.LeaveRequest {
	rec, ok := i.db.FindRequest(id)
	if !ok {
		return nil
	}
	return rec
}

func (i impl) Update(id string, fn func(rec *storemodels.LeaveRequest)) bool {
	return i.db.UpdateRequest(id, fn)
}

// List preserves ledger order, newest submission first.
func (i impl) List(filter Filter) []storemodels.LeaveRequest {
	list := []storemodels.LeaveRequest{}
	for _, rec := range i.db.SnapshotRequests() {
		if filter.StudentID != "" {
			if rec.StudentID == filter.StudentID {
				list = append(list, rec)
			}
			continue
		}
		if filter.Status != "" && rec.Status != filter.Status {
			continue
		}
		list = append(list, rec)
	}
	return list
}
