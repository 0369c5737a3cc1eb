package storemodels

import "campus-outpass-backend/models"

// Identity is a roster account. The roster is seeded once at startup and
// never changes at runtime; records are reference data shared read-only.
//
// Role-conditional attributes live on the profile structs keyed by role,
// so a student carrying a digital signature is not representable.
type Identity struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"`
	Email    string          `json:"email,omitempty"`
	Password string          `json:"-"` // MD5 hash

	Student  *StudentProfile  `json:"student,omitempty"`
	Approver *ApproverProfile `json:"approver,omitempty"`
}

type StudentProfile struct {
	Branch      string `json:"branch"`
	Year        string `json:"year"`
	PhoneNumber string `json:"phone_number"`
}

type ApproverProfile struct {
	// DigitalSignature is an object key in the signature bucket.
	DigitalSignature string `json:"digital_signature"`
}
