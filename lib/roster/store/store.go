package rosterstore

import (
	authhelpers "campus-outpass-backend/lib/utils/auth-helpers"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
)

type Provider interface {
	ValidateCredentials(identifier, password string) *storemodels.Identity
	GetByID(id string) *storemodels.Identity
	FirstByRole(role models.UserRole) *storemodels.Identity
	ListByRole(role models.UserRole) []storemodels.Identity
}

func NewInstance(db *memstore.Database) Provider {
	return &impl{
		db: db,
	}
}

type impl struct {
	db *memstore.Database
}

// ValidateCredentials matches students on id and every other role on
// e-mail, both exact and case-sensitive, then compares password hashes.
// The first roster match wins. A miss is a plain nil with no hint of
// which check failed.
func (i impl) ValidateCredentials(identifier, password string) *storemodels.Identity {
	hashed := authhelpers.GetMD5Hash(password)
	for _, user := range i.db.SnapshotUsers() {
		loginField := user.Email
		if user.Role.IsStudent() {
			loginField = user.ID
		}
		if loginField == identifier && user.Password == hashed {
			rec := user
			return &rec
		}
	}
	return nil
}

func (i impl) GetByID(id string) *storemodels.Identity {
	for _, user := range i.db.SnapshotUsers() {
		if user.ID == id {
			rec := user
			return &rec
		}
	}
	return nil
}

func (i impl) FirstByRole(role models.UserRole) *storemodels.Identity {
	for _, user := range i.db.SnapshotUsers() {
		if user.Role == role {
			rec := user
			return &rec
		}
	}
	return nil
}

func (i impl) ListByRole(role models.UserRole) []storemodels.Identity {
	list := []storemodels.Identity{}
	for _, user := range i.db.SnapshotUsers() {
		if user.Role == role {
			list = append(list, user)
		}
	}
	return list
}
