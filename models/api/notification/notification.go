package notificationapimodels

import (
	"time"

	storemodels "campus-outpass-backend/models/store"
)

type NotificationView struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

func NotificationConvert(rec storemodels.Notification) NotificationView {
	return NotificationView{
		ID:        rec.ID,
		Message:   rec.Message,
		Read:      rec.Read,
		CreatedAt: rec.CreatedAt,
	}
}
