package connectionhub

import (
	"sync"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"

	notificationstore "campus-outpass-backend/lib/notification/store"
	"campus-outpass-backend/memstore"
	"campus-outpass-backend/models"
	wsmodels "campus-outpass-backend/models/ws"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string, conn *websocket.Conn)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = NewInstance(memstore.DB)
}

func NewInstance(db *memstore.Database) Provider {
	return &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db),
	}
}

type impl struct {
	mu      sync.Mutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

// DeleteClient removes the session the given connection belongs to. The
// connection match protects a reconnecting user: the deferred teardown
// of the old connection must not tear down the fresh session. The send
// channel is never closed, cancellation alone terminates the send loop.
func (i *impl) DeleteClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	if conn != nil && sess.conn != conn {
		return
	}
	delete(i.clients, userID)
	sess.stop()
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mu.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mu.Unlock()
	log.WithField("user_id", userID).Debug("websocket client connected")
	go i.replayUnread(userID)
}

// SendMessage is a best-effort push. A full buffer or a session torn
// down mid-send drops the message; the notification record stays unread
// and is replayed on the next connect.
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mu.Lock()
	sess, ok := i.clients[msg.ToUserID]
	i.mu.Unlock()
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
	}
}

func (i *impl) SendClose(userID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// replayUnread pushes the notifications that arrived while the user was
// offline. Records stay in the ledger, the read flag is authoritative;
// nothing is deleted here.
func (i *impl) replayUnread(userID string) {
	list := i.store.ListUnread(userID)
	for _, item := range list {
		if !i.IsConnected(userID) {
			return
		}
		msg := wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
			Code:     string(models.NotifyCodeStatusChanged),
			Msg:      item.Message,
		}
		i.SendMessage(msg)
	}
}
