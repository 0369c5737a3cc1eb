package rosterstore

import (
	"testing"

	"github.com/stretchr/testify/require"

	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
)

func TestValidateCredentials(t *testing.T) {
	store := NewInstance(memstore.New())

	t.Run(`a student signs in with the student id`, func(t *testing.T) {
		user := store.ValidateCredentials("STU001", "student123")
		require.NotNil(t, user)
		require.Equal(t, "John Smith", user.Name)
		require.True(t, user.Role.IsStudent())
	})

	t.Run(`staff sign in with the e-mail, not the id`, func(t *testing.T) {
		user := store.ValidateCredentials("james.carter@university.edu", "warden123")
		require.NotNil(t, user)
		require.Equal(t, models.WardenRole, user.Role)

		require.Nil(t, store.ValidateCredentials("WAR001", "warden123"))
	})

	t.Run(`a student id does not match on e-mail`, func(t *testing.T) {
		require.Nil(t, store.ValidateCredentials("john.smith@university.edu", "student123"))
	})

	t.Run(`a wrong password is a plain miss`, func(t *testing.T) {
		require.Nil(t, store.ValidateCredentials("STU001", "warden123"))
		require.Nil(t, store.ValidateCredentials("STU001", ""))
	})

	t.Run(`matching is case-sensitive`, func(t *testing.T) {
		require.Nil(t, store.ValidateCredentials("stu001", "student123"))
	})
}

func TestRosterLookups(t *testing.T) {
	store := NewInstance(memstore.New())

	t.Run(`every role has exactly one seeded holder`, func(t *testing.T) {
		for _, role := range []models.UserRole{
			models.StudentRole, models.WardenRole, models.ChiefWardenRole, models.DeanRole,
		} {
			require.Len(t, store.ListByRole(role), 1, string(role))
			require.NotNil(t, store.FirstByRole(role), string(role))
		}
	})

	t.Run(`approver profiles carry a signature key`, func(t *testing.T) {
		warden := store.GetByID("WAR001")
		require.NotNil(t, warden)
		require.NotNil(t, warden.Approver)
		require.Equal(t, "signatures/WAR001.png", warden.Approver.DigitalSignature)
	})

	t.Run(`unknown id`, func(t *testing.T) {
		require.Nil(t, store.GetByID("STU999"))
	})
}
