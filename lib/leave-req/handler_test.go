package leavereqhandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	notificationhandler "campus-outpass-backend/lib/notification"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	leaveapimodels "campus-outpass-backend/models/api/leave"
)

func newTestHandler() (Provider, notificationhandler.Provider) {
	db := memstore.New()
	notifier := notificationhandler.NewInstance(db, "")
	return NewInstance(db, notifier), notifier
}

func leavePayload() leaveapimodels.LeaveRequestData {
	return leaveapimodels.LeaveRequestData{
		Kind:      models.RequestKindLeave,
		StartDate: "2026-09-10",
		EndDate:   "2026-09-12",
		Reason:    "family function",
	}
}

func TestCreate(t *testing.T) {
	t.Run(`submit creates a pending record and notifies every warden once`, func(t *testing.T) {
		handler, notifier := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		require.NotEmpty(t, view.ID)
		require.Equal(t, models.LeaveStatusPending, view.Status)
		require.Equal(t, "John Smith", view.StudentName)
		require.Equal(t, "Computer Science", view.StudentBranch)
		require.Equal(t, "3rd Year", view.StudentYear)

		wardenInbox := notifier.List("WAR001")
		require.Len(t, wardenInbox, 1)
		require.Equal(t, "New leave request from John Smith", wardenInbox[0].Message)
		require.Empty(t, notifier.List("CW001"))
		require.Empty(t, notifier.List("DEAN001"))
	})

	t.Run(`only a student may submit`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.Create("WAR001", leavePayload())
		require.ErrorIs(t, err, ErrNotStudent)
	})

	t.Run(`an outing requires out and in time`, func(t *testing.T) {
		handler, _ := newTestHandler()
		payload := leavePayload()
		payload.Kind = models.RequestKindOuting
		_, err := handler.Create("STU001", payload)
		require.NotNil(t, err)

		payload.OutTime = "10:00"
		payload.InTime = "18:00"
		view, err := handler.Create("STU001", payload)
		require.Nil(t, err)
		require.Equal(t, "10:00", view.OutTime)
	})

	t.Run(`out/in time are rejected on a leave request`, func(t *testing.T) {
		handler, _ := newTestHandler()
		payload := leavePayload()
		payload.OutTime = "10:00"
		_, err := handler.Create("STU001", payload)
		require.NotNil(t, err)
	})

	t.Run(`a reason is mandatory`, func(t *testing.T) {
		handler, _ := newTestHandler()
		payload := leavePayload()
		payload.Reason = ""
		_, err := handler.Create("STU001", payload)
		require.NotNil(t, err)
	})
}

func TestApprove(t *testing.T) {
	t.Run(`approval stamps the approver and notifies the student`, func(t *testing.T) {
		handler, notifier := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)

		require.Nil(t, handler.Approve(view.ID, "WAR001"))
		got, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusApproved, got.Status)
		require.Equal(t, "Dr. James Carter", got.ApprovedBy)
		require.Equal(t, "signatures/WAR001.png", got.ApproverSignature)

		inbox := notifier.List("STU001")
		require.Len(t, inbox, 1)
		require.Equal(t, "Your leave request has been approved", inbox[0].Message)
	})

	t.Run(`a student cannot approve`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		require.ErrorIs(t, handler.Approve(view.ID, "STU001"), ErrNotApprover)
	})

	t.Run(`unknown record`, func(t *testing.T) {
		handler, _ := newTestHandler()
		require.ErrorIs(t, handler.Approve("nope", "WAR001"), ErrRequestNotFound)
	})
}

func TestReject(t *testing.T) {
	t.Run(`rejection records who and why`, func(t *testing.T) {
		handler, notifier := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)

		require.Nil(t, handler.Reject(view.ID, "WAR001", "dates clash with exams"))
		got, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusRejected, got.Status)
		require.Equal(t, "Dr. James Carter", got.RejectedBy)
		require.Equal(t, "dates clash with exams", got.RejectionReason)

		inbox := notifier.List("STU001")
		require.Len(t, inbox, 1)
		require.Equal(t, "Your leave request has been rejected", inbox[0].Message)
	})

	t.Run(`a rejection without a reason leaves the record pending`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)

		require.ErrorIs(t, handler.Reject(view.ID, "WAR001", ""), ErrEmptyRejectionReason)
		got, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusPending, got.Status)
		require.Empty(t, got.RejectedBy)
	})
}

func TestForward(t *testing.T) {
	t.Run(`forward marks the record and notifies the target and the student`, func(t *testing.T) {
		handler, notifier := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)

		require.Nil(t, handler.Forward(view.ID, "WAR001", models.ForwardToChiefWarden))
		got, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusForwarded, got.Status)
		require.Equal(t, models.ForwardToChiefWarden, got.ForwardedTo)

		cwInbox := notifier.List("CW001")
		require.Len(t, cwInbox, 1)
		require.Equal(t, "A leave request has been forwarded to you by Dr. James Carter", cwInbox[0].Message)

		studentInbox := notifier.List("STU001")
		require.Len(t, studentInbox, 1)
		require.Equal(t, "Your leave request has been forwarded", studentInbox[0].Message)
	})

	t.Run(`the dean cannot forward`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)

		require.ErrorIs(t, handler.Forward(view.ID, "DEAN001", models.ForwardToChiefWarden), ErrDeanForward)
		got, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusPending, got.Status)
	})

	t.Run(`unknown forward target`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		require.ErrorIs(t, handler.Forward(view.ID, "WAR001", "registrar"), ErrUnknownForwardTarget)
	})
}

func TestDecisionIsTerminal(t *testing.T) {
	t.Run(`a decided record refuses further decisions unchanged`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		require.Nil(t, handler.Approve(view.ID, "WAR001"))

		require.ErrorIs(t, handler.Reject(view.ID, "CW001", "late"), ErrNotPending)
		require.ErrorIs(t, handler.Approve(view.ID, "CW001"), ErrNotPending)
		require.ErrorIs(t, handler.Forward(view.ID, "CW001", models.ForwardToDean), ErrNotPending)

		got, err := handler.GetByID(view.ID)
		require.Nil(t, err)
		require.Equal(t, models.LeaveStatusApproved, got.Status)
		require.Equal(t, "Dr. James Carter", got.ApprovedBy)
	})
}

func TestList(t *testing.T) {
	t.Run(`newest submission lists first`, func(t *testing.T) {
		handler, _ := newTestHandler()
		first, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		second, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)

		list, err := handler.List("STU001", "")
		require.Nil(t, err)
		require.Len(t, list, 2)
		require.Equal(t, second.ID, list[0].ID)
		require.Equal(t, first.ID, list[1].ID)
	})

	t.Run(`approver filters by status`, func(t *testing.T) {
		handler, _ := newTestHandler()
		approved, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		pending, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		require.Nil(t, handler.Approve(approved.ID, "WAR001"))

		list, err := handler.List("WAR001", "pending")
		require.Nil(t, err)
		require.Len(t, list, 1)
		require.Equal(t, pending.ID, list[0].ID)

		list, err = handler.List("WAR001", "all")
		require.Nil(t, err)
		require.Len(t, list, 2)
	})

	t.Run(`unknown status filter`, func(t *testing.T) {
		handler, _ := newTestHandler()
		_, err := handler.List("WAR001", "archived")
		require.ErrorIs(t, err, ErrUnknownStatusFilter)
	})

	t.Run(`the status filter does not hide a student's own history`, func(t *testing.T) {
		handler, _ := newTestHandler()
		view, err := handler.Create("STU001", leavePayload())
		require.Nil(t, err)
		require.Nil(t, handler.Approve(view.ID, "WAR001"))

		list, err := handler.List("STU001", "pending")
		require.Nil(t, err)
		require.Len(t, list, 1)
	})
}
