package models

type UserRole string

const (
	StudentRole     UserRole = "student"
	WardenRole      UserRole = "warden"
	ChiefWardenRole UserRole = "chief_warden"
	DeanRole        UserRole = "dean"
)

var roleHumanName = map[UserRole]string{
	StudentRole:     "Student",
	WardenRole:      "Warden",
	ChiefWardenRole: "Chief Warden",
	DeanRole:        "Dean",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsStudent() bool {
	return r == StudentRole
}

// IsApprover reports whether the role may decide on pending requests.
func (r UserRole) IsApprover() bool {
	return r == WardenRole || r == ChiefWardenRole || r == DeanRole
}

// CanForward reports whether the role may route a request upward.
// The dean is the terminal approver, nothing stands above it.
func (r UserRole) CanForward() bool {
	return r.IsApprover() && r != DeanRole
}
