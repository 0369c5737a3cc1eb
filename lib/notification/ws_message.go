package notificationhandler

import (
	"campus-outpass-backend/models"
	storemodels "campus-outpass-backend/models/store"
	wsmodels "campus-outpass-backend/models/ws"
)

func wsMessage(rec storemodels.Notification, code models.NotifyCode) wsmodels.ServerMessage {
	return wsmodels.ServerMessage{
		ToUserID: rec.UserID,
		Time:     rec.CreatedAt.Format("02.01.2006 15:04:05"),
		Code:     string(code),
		Msg:      rec.Message,
	}
}
