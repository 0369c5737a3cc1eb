package outpass

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	leavereqstore "campus-outpass-backend/lib/leave-req/store"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
)

func seedRequest(db *memstore.Database, status models.LeaveStatus) string {
	store := leavereqstore.NewInstance(db)
	rec := storemodels.LeaveRequest{
		BaseModel:     storemodels.NewBaseModel(),
		StudentID:     "STU001",
		StudentName:   "John Smith",
		StudentBranch: "Computer Science",
		StudentYear:   "3rd Year",
		StudentPhone:  "+1234567890",
		Kind:          models.RequestKindLeave,
		StartDate:     "2026-09-10",
		EndDate:       "2026-09-12",
		Reason:        "family function",
		Status:        status,
	}
	if status == models.LeaveStatusApproved {
		rec.ApprovedBy = "Dr. James Carter"
		rec.UpdatedAt = time.Now()
	}
	return store.Create(rec)
}

func TestGenerate(t *testing.T) {
	t.Run(`an approved request renders a PDF`, func(t *testing.T) {
		db := memstore.New()
		id := seedRequest(db, models.LeaveStatusApproved)
		pdfFile, err := NewInstance(db).Generate(context.Background(), id)
		require.Nil(t, err)
		require.NotEmpty(t, pdfFile)
		require.Equal(t, "%PDF", string(pdfFile[:4]))
	})

	t.Run(`a pending request has no outpass`, func(t *testing.T) {
		db := memstore.New()
		id := seedRequest(db, models.LeaveStatusPending)
		_, err := NewInstance(db).Generate(context.Background(), id)
		require.ErrorIs(t, err, ErrNotApproved)
	})

	t.Run(`unknown request`, func(t *testing.T) {
		_, err := NewInstance(memstore.New()).Generate(context.Background(), "nope")
		require.NotNil(t, err)
	})
}
