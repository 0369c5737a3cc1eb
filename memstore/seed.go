package memstore

import (
	authhelpers "campus-outpass-backend/lib/utils/auth-helpers"
	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
)

// seedIdentities is the fixed demo roster. Passwords are stored hashed;
// the originals are student123/warden123/chief123/dean123.
func seedIdentities() []storemodels.Identity {
	return []storemodels.Identity{
		{
			ID:       "STU001",
			Name:     "John Smith",
			Role:     models.StudentRole,
			Email:    "john.smith@university.edu",
			Password: authhelpers.GetMD5Hash("student123"),
			Student: &storemodels.StudentProfile{
				Branch:      "Computer Science",
				Year:        "3rd Year",
				PhoneNumber: "+1234567890",
			},
		},
		{
			ID:       "WAR001",
			Name:     "Dr. James Carter",
			Role:     models.WardenRole,
			Email:    "james.carter@university.edu",
			Password: authhelpers.GetMD5Hash("warden123"),
			Approver: &storemodels.ApproverProfile{
				DigitalSignature: "signatures/WAR001.png",
			},
		},
		{
			ID:       "CW001",
			Name:     "Dr. Emily Brown",
			Role:     models.ChiefWardenRole,
			Email:    "emily.brown@university.edu",
			Password: authhelpers.GetMD5Hash("chief123"),
			Approver: &storemodels.ApproverProfile{
				DigitalSignature: "signatures/CW001.png",
			},
		},
		{
			ID:       "DEAN001",
			Name:     "Prof. Michael Wilson",
			Role:     models.DeanRole,
			Email:    "michael.wilson@university.edu",
			Password: authhelpers.GetMD5Hash("dean123"),
			Approver: &storemodels.ApproverProfile{
				DigitalSignature: "signatures/DEAN001.png",
			},
		},
	}
}
