package leaveapimodels

import (
	"time"

	"github.com/pkg/errors"

	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
)

type LeaveRequestData struct {
	Kind      models.RequestKind `json:"type"`       // leave | outing
	StartDate string             `json:"start_date"` // YYYY-MM-DD
	EndDate   string             `json:"end_date"`   // YYYY-MM-DD
	OutTime   string             `json:"out_time"`   // HH:MM, outing only
	InTime    string             `json:"in_time"`    // HH:MM, outing only
	Reason    string             `json:"reason"`
	Documents []DocumentData     `json:"documents"`
}

type DocumentData struct {
	Name string `json:"name"`
	URL  string `json:"url"` // transient reference, lives only for the session
}

func (d LeaveRequestData) Validate() error {
	if !d.Kind.IsKnown() {
		return errors.Errorf("unknown request type: %v", d.Kind)
	}
	if d.StartDate == "" {
		return errors.New("start date is required")
	}
	if d.EndDate == "" {
		return errors.New("end date is required")
	}
	if d.Reason == "" {
		return errors.New("reason is required")
	}
	if d.Kind == models.RequestKindOuting {
		if d.OutTime == "" {
			return errors.New("out time is required for an outing request")
		}
		if d.InTime == "" {
			return errors.New("in time is required for an outing request")
		}
	} else if d.OutTime != "" || d.InTime != "" {
		return errors.New("out/in time are only allowed on an outing request")
	}
	return nil
}

type RejectData struct {
	Reason string `json:"reason"`
}

type ForwardData struct {
	ForwardTo models.ForwardTarget `json:"forward_to"` // chief_warden | dean
}

type ListFilter struct {
	Status string `json:"status"` // all | pending | approved | rejected | forwarded
}

type LeaveRequestView struct {
	ID            string             `json:"id"`
	StudentID     string             `json:"student_id"`
	StudentName   string             `json:"student_name"`
	StudentBranch string             `json:"student_branch"`
	StudentYear   string             `json:"student_year"`
	StudentPhone  string             `json:"student_phone"`
	Kind          models.RequestKind `json:"type"`
	StartDate     string             `json:"start_date"`
	EndDate       string             `json:"end_date"`
	OutTime       string             `json:"out_time,omitempty"`
	InTime        string             `json:"in_time,omitempty"`
	Reason        string             `json:"reason"`
	Documents     []DocumentData     `json:"documents"`
	Status        models.LeaveStatus `json:"status"`
	StatusName    string             `json:"status_name"`

	ForwardedTo       models.ForwardTarget `json:"forwarded_to,omitempty"`
	ApprovedBy        string               `json:"approved_by,omitempty"`
	ApproverSignature string               `json:"approver_signature,omitempty"`
	RejectedBy        string               `json:"rejected_by,omitempty"`
	RejectionReason   string               `json:"rejection_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func LeaveRequestConvert(rec storemodels.LeaveRequest) LeaveRequestView {
	docs := make([]DocumentData, 0, len(rec.Documents))
	for _, doc := range rec.Documents {
		docs = append(docs, DocumentData{Name: doc.Name, URL: doc.URL})
	}
	return LeaveRequestView{
		ID:                rec.ID,
		StudentID:         rec.StudentID,
		StudentName:       rec.StudentName,
		StudentBranch:     rec.StudentBranch,
		StudentYear:       rec.StudentYear,
		StudentPhone:      rec.StudentPhone,
		Kind:              rec.Kind,
		StartDate:         rec.StartDate,
		EndDate:           rec.EndDate,
		OutTime:           rec.OutTime,
		InTime:            rec.InTime,
		Reason:            rec.Reason,
		Documents:         docs,
		Status:            rec.Status,
		StatusName:        rec.Status.ToHuman(),
		ForwardedTo:       rec.ForwardedTo,
		ApprovedBy:        rec.ApprovedBy,
		ApproverSignature: rec.ApproverSignature,
		RejectedBy:        rec.RejectedBy,
		RejectionReason:   rec.RejectionReason,
		CreatedAt:         rec.CreatedAt,
	}
}
