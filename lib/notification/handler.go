package notificationhandler

import (
	log "github.com/sirupsen/logrus"

	rosterstore "campus-outpass-backend/lib/roster/store"
	notificationstore "campus-outpass-backend/lib/notification/store"
	"campus-outpass-backend/lib/smtp"
	connectionhub "campus-outpass-backend/lib/ws/hub/connection-hub"
	"campus-outpass-backend/config"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	notificationapimodels "campus-outpass-backend/models/api/notification"
	storemodels "campus-outpass-backend/models/store"
)

type Provider interface {
	Notify(userID string, code models.NotifyCode, message string)
	List(userID string) []notificationapimodels.NotificationView
	MarkRead(id string)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(memstore.DB, config.Conf.Smtp.From)
}

func NewInstance(db *memstore.Database, mailFrom string) Provider {
	return impl{
		store:       notificationstore.NewInstance(db),
		rosterStore: rosterstore.NewInstance(db),
		mailFrom:    mailFrom,
	}
}

type impl struct {
	store       notificationstore.Provider
	rosterStore rosterstore.Provider
	mailFrom    string
}

// Notify appends the record synchronously, then mirrors it to the
// websocket hub and, for users with an e-mail, to the mail sender. Both
// mirrors are best effort, the record itself is the source of truth.
func (i impl) Notify(userID string, code models.NotifyCode, message string) {
	rec := storemodels.Notification{
		BaseModel: storemodels.NewBaseModel(),
		UserID:    userID,
		Message:   message,
	}
	i.store.Create(rec)
	log.WithField("user_id", userID).
		WithField("event_code", string(code)).
		Info("notification created")

	if connectionhub.Instance != nil {
		connectionhub.Instance.SendMessage(wsMessage(rec, code))
	}
	i.sendMail(userID, message)
}

func (i impl) sendMail(userID, message string) {
	if smtp.Instance == nil {
		return
	}
	user := i.rosterStore.GetByID(userID)
	if user == nil || user.Email == "" {
		return
	}
	err := smtp.Instance.SendEMail(i.mailFrom, user.Email, message, "Leave request update")
	if err != nil {
		log.WithField("user_id", userID).
			WithError(err).
			Error("notification mail failed")
	}
}

func (i impl) List(userID string) []notificationapimodels.NotificationView {
	recList := i.store.List(userID)
	result := make([]notificationapimodels.NotificationView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result
}

func (i impl) MarkRead(id string) {
	i.store.MarkRead(id)
}
