package models

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "pending"
	LeaveStatusApproved  LeaveStatus = "approved"
	LeaveStatusRejected  LeaveStatus = "rejected"
	LeaveStatusForwarded LeaveStatus = "forwarded"
)

var leaveStatusHumanName = map[LeaveStatus]string{
	LeaveStatusPending:   "Pending",
	LeaveStatusApproved:  "Approved",
	LeaveStatusRejected:  "Rejected",
	LeaveStatusForwarded: "Forwarded",
}

func (s LeaveStatus) ToHuman() string {
	if human, exist := leaveStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsDecidable reports whether a decision action may still be applied.
// Every other status is terminal, no second decision cycle is modeled.
func (s LeaveStatus) IsDecidable() bool {
	return s == LeaveStatusPending
}

func (s LeaveStatus) IsKnown() bool {
	_, exist := leaveStatusHumanName[s]
	return exist
}

type RequestKind string

const (
	RequestKindLeave  RequestKind = "leave"
	RequestKindOuting RequestKind = "outing"
)

func (k RequestKind) IsKnown() bool {
	return k == RequestKindLeave || k == RequestKindOuting
}

func (k RequestKind) ToHuman() string {
	switch k {
	case RequestKindLeave:
		return "Leave"
	case RequestKindOuting:
		return "Outing"
	}
	return string(k)
}

// ForwardTarget is the role selector an approver picks when routing a
// pending request upward. It is a role token, not an identity id; the
// notification recipient is resolved against the roster.
type ForwardTarget string

const (
	ForwardToChiefWarden ForwardTarget = "chief_warden"
	ForwardToDean        ForwardTarget = "dean"
)

func (t ForwardTarget) IsKnown() bool {
	return t == ForwardToChiefWarden || t == ForwardToDean
}

func (t ForwardTarget) Role() UserRole {
	return UserRole(t)
}
