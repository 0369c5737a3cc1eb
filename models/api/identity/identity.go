package identityapimodels

import (
	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
)

type IdentityView struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Role     models.UserRole `json:"role"`
	RoleName string          `json:"role_name"`
	Email    string          `json:"email,omitempty"`

	// students only
	Branch      string `json:"branch,omitempty"`
	Year        string `json:"year,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

func IdentityConvert(rec storemodels.Identity) IdentityView {
	view := IdentityView{
		ID:       rec.ID,
		Name:     rec.Name,
		Role:     rec.Role,
		RoleName: rec.Role.ToHuman(),
		Email:    rec.Email,
	}
	if rec.Student != nil {
		view.Branch = rec.Student.Branch
		view.Year = rec.Student.Year
		view.PhoneNumber = rec.Student.PhoneNumber
	}
	return view
}
