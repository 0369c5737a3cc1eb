package leavereqhandler

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	leavereqstore "campus-outpass-backend/lib/leave-req/store"
	notificationhandler "campus-outpass-backend/lib/notification"
	rosterstore "campus-outpass-backend/lib/roster/store"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	leaveapimodels "campus-outpass-backend/models/api/leave"
	storemodels "campus-outpass-backend/models/store"
)

// Guard violations are typed so callers can tell a refusal from a
// failure; none of them mutates the ledger.
var (
	ErrRequestNotFound      = errors.New("leave request not found")
	ErrNotStudent           = errors.New("only a student may submit a request")
	ErrNotApprover          = errors.New("only an approver may decide on a request")
	ErrNotPending           = errors.New("request is no longer pending")
	ErrDeanForward          = errors.New("the dean is the terminal approver and cannot forward")
	ErrEmptyRejectionReason = errors.New("a rejection requires a reason")
	ErrUnknownForwardTarget = errors.New("unknown forward target")
	ErrUnknownStatusFilter  = errors.New("unknown status filter")
)

type Provider interface {
	Create(userID string, data leaveapimodels.LeaveRequestData) (view leaveapimodels.LeaveRequestView, err error)
	GetByID(id string) (leaveapimodels.LeaveRequestView, error)
	Approve(id, userID string) error
	Reject(id, userID, reason string) error
	Forward(id, userID string, target models.ForwardTarget) error
	List(userID, statusFilter string) ([]leaveapimodels.LeaveRequestView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(memstore.DB, notificationhandler.Instance)
}

func NewInstance(db *memstore.Database, notifier notificationhandler.Provider) Provider {
	return impl{
		store:       leavereqstore.NewInstance(db),
		rosterStore: rosterstore.NewInstance(db),
		notifier:    notifier,
	}
}

type impl struct {
	store       leavereqstore.Provider
	rosterStore rosterstore.Provider
	notifier    notificationhandler.Provider
}

func (i impl) Create(userID string, data leaveapimodels.LeaveRequestData) (leaveapimodels.LeaveRequestView, error) {
	logger := log.WithField("user_id", userID)
	requester := i.rosterStore.GetByID(userID)
	if requester == nil || !requester.Role.IsStudent() {
		return leaveapimodels.LeaveRequestView{}, ErrNotStudent
	}
	// Mandatory fields are enforced here, not only at the HTTP boundary,
	// so a non-interactive caller gets the same contract.
	if err := data.Validate(); err != nil {
		return leaveapimodels.LeaveRequestView{}, err
	}

	docs := make([]storemodels.Document, 0, len(data.Documents))
	for _, doc := range data.Documents {
		docs = append(docs, storemodels.Document{Name: doc.Name, URL: doc.URL})
	}
	rec := storemodels.LeaveRequest{
		BaseModel:     storemodels.NewBaseModel(),
		StudentID:     requester.ID,
		StudentName:   requester.Name,
		StudentBranch: requester.Student.Branch,
		StudentYear:   requester.Student.Year,
		StudentPhone:  requester.Student.PhoneNumber,
		Kind:          data.Kind,
		StartDate:     data.StartDate,
		EndDate:       data.EndDate,
		OutTime:       data.OutTime,
		InTime:        data.InTime,
		Reason:        data.Reason,
		Documents:     docs,
		Status:        models.LeaveStatusPending,
	}
	id := i.store.Create(rec)
	logger.
		WithField("rec_id", id).
		WithField("type", string(rec.Kind)).
		Info("leave request submitted")

	// Only wardens are notified at submission time; the chief warden and
	// the dean hear about a request when it is forwarded to them.
	for _, warden := range i.rosterStore.ListByRole(models.WardenRole) {
		i.notifier.Notify(warden.ID, models.NotifyCodeNewRequest,
			fmt.Sprintf("New leave request from %s", rec.StudentName))
	}
	return leaveapimodels.LeaveRequestConvert(rec), nil
}

func (i impl) GetByID(id string) (leaveapimodels.LeaveRequestView, error) {
	rec := i.store.GetByID(id)
	if rec == nil {
		return leaveapimodels.LeaveRequestView{}, ErrRequestNotFound
	}
	return leaveapimodels.LeaveRequestConvert(*rec), nil
}

func (i impl) Approve(id, userID string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	_, caller, err := i.getDecidable(id, userID)
	if err != nil {
		return err
	}
	i.store.Update(id, func(rec *storemodels.LeaveRequest) {
		rec.Status = models.LeaveStatusApproved
		rec.ApprovedBy = caller.Name
		rec.ApproverSignature = caller.Approver.DigitalSignature
		rec.UpdatedAt = time.Now()
	})
	logger.WithField("approved_by", caller.Name).Info("leave request approved")
	i.notifyStudent(id, "Your leave request has been approved")
	return nil
}

func (i impl) Reject(id, userID, reason string) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID)
	if reason == "" {
		return ErrEmptyRejectionReason
	}
	_, caller, err := i.getDecidable(id, userID)
	if err != nil {
		return err
	}
	i.store.Update(id, func(rec *storemodels.LeaveRequest) {
		rec.Status = models.LeaveStatusRejected
		rec.RejectedBy = caller.Name
		rec.RejectionReason = reason
		rec.UpdatedAt = time.Now()
	})
	logger.WithField("rejected_by", caller.Name).Info("leave request rejected")
	i.notifyStudent(id, "Your leave request has been rejected")
	return nil
}

func (i impl) Forward(id, userID string, target models.ForwardTarget) error {
	logger := log.
		WithField("rec_id", id).
		WithField("user_id", userID).
		WithField("forward_to", string(target))
	if !target.IsKnown() {
		return ErrUnknownForwardTarget
	}
	_, caller, err := i.getDecidable(id, userID)
	if err != nil {
		return err
	}
	if !caller.Role.CanForward() {
		return ErrDeanForward
	}
	// The selector is a role token; the recipient is resolved to an
	// actual roster identity so the notification cannot be misrouted.
	holder := i.rosterStore.FirstByRole(target.Role())
	if holder == nil {
		return errors.Wrapf(ErrUnknownForwardTarget, "no roster holder for role %v", target)
	}
	i.store.Update(id, func(rec *storemodels.LeaveRequest) {
		rec.Status = models.LeaveStatusForwarded
		rec.ForwardedTo = target
		rec.UpdatedAt = time.Now()
	})
	logger.WithField("forwarded_to_user", holder.ID).Info("leave request forwarded")
	i.notifier.Notify(holder.ID, models.NotifyCodeForwarded,
		fmt.Sprintf("A leave request has been forwarded to you by %s", caller.Name))
	i.notifyStudent(id, "Your leave request has been forwarded")
	return nil
}

func (i impl) List(userID, statusFilter string) ([]leaveapimodels.LeaveRequestView, error) {
	caller := i.rosterStore.GetByID(userID)
	if caller == nil {
		return nil, errors.New("user not found")
	}
	filter := leavereqstore.Filter{}
	if caller.Role.IsStudent() {
		// Students always see their full personal history, the status
		// filter does not apply to them.
		filter.StudentID = caller.ID
	} else if statusFilter != "" && statusFilter != "all" {
		status := models.LeaveStatus(statusFilter)
		if !status.IsKnown() {
			return nil, ErrUnknownStatusFilter
		}
		filter.Status = status
	}
	recList := i.store.List(filter)
	result := make([]leaveapimodels.LeaveRequestView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, leaveapimodels.LeaveRequestConvert(rec))
	}
	return result, nil
}

// getDecidable loads the record and the caller and checks the shared
// decision guards: approver role and pending status.
func (i impl) getDecidable(id, userID string) (*storemodels.LeaveRequest, *storemodels.Identity, error) {
	rec := i.store.GetByID(id)
	if rec == nil {
		return nil, nil, ErrRequestNotFound
	}
	caller := i.rosterStore.GetByID(userID)
	if caller == nil || !caller.Role.IsApprover() {
		return nil, nil, ErrNotApprover
	}
	if !rec.Status.IsDecidable() {
		return nil, nil, ErrNotPending
	}
	return rec, caller, nil
}

func (i impl) notifyStudent(id, message string) {
	rec := i.store.GetByID(id)
	if rec == nil {
		return
	}
	i.notifier.Notify(rec.StudentID, models.NotifyCodeStatusChanged, message)
}
