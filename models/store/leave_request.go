package storemodels

import "campus-outpass-backend/models"

// LeaveRequest is a ledger record. The student fields are a snapshot of
// the requester at submission time, kept even if the roster record were
// to change later. Decision fields are set once; a record that left
// pending never mutates again.
type LeaveRequest struct {
	BaseModel

	StudentID     string `json:"student_id"`
	StudentName   string `json:"student_name"`
	StudentBranch string `json:"student_branch"`
	StudentYear   string `json:"student_year"`
	StudentPhone  string `json:"student_phone"`

	Kind      models.RequestKind `json:"type"`
	StartDate string             `json:"start_date"` // YYYY-MM-DD
	EndDate   string             `json:"end_date"`   // YYYY-MM-DD
	OutTime   string             `json:"out_time,omitempty"` // set iff kind = outing
	InTime    string             `json:"in_time,omitempty"`  // set iff kind = outing
	Reason    string             `json:"reason"`

	Documents []Document `json:"documents"`

	Status models.LeaveStatus `json:"status"`

	ForwardedTo       models.ForwardTarget `json:"forwarded_to,omitempty"`
	ApprovedBy        string               `json:"approved_by,omitempty"`
	ApproverSignature string               `json:"approver_signature,omitempty"`
	RejectedBy        string               `json:"rejected_by,omitempty"`
	RejectionReason   string               `json:"rejection_reason,omitempty"`
}

// Document is a transient reference to an uploaded file. The URL points
// at session-local data and is never persisted anywhere.
type Document struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
