package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

// LoginRequest carries the sign-in form. Students authenticate with
// their student id, staff with their e-mail; both arrive as Identifier.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if len(strings.TrimSpace(r.Identifier)) == 0 {
		return errors.New("identifier must not be empty")
	}
	if r.Password == "" {
		return errors.New("password must not be empty")
	}
	return nil
}
