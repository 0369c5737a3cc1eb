package connectionhub

import (
	"sync"
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	"campus-outpass-backend/memstore"
	wsmodels "campus-outpass-backend/models/ws"
)

func TestHubTeardown(t *testing.T) {
	t.Run(`a disconnect racing a push does not panic`, func(t *testing.T) {
		hub := NewInstance(memstore.New())
		wg := sync.WaitGroup{}
		for n := 0; n < 500; n++ {
			conn := &websocket.Conn{}
			wg.Add(3)
			go func() {
				defer wg.Done()
				hub.AddClient("STU001", conn)
			}()
			go func() {
				defer wg.Done()
				hub.SendMessage(wsmodels.ServerMessage{ToUserID: "STU001", Msg: "ping"})
			}()
			go func() {
				defer wg.Done()
				hub.DeleteClient("STU001", nil)
			}()
			wg.Wait()
		}
	})

	t.Run(`a push to a deleted session is dropped, not a panic`, func(t *testing.T) {
		hub := NewInstance(memstore.New())
		conn := &websocket.Conn{}
		hub.AddClient("STU001", conn)
		hub.DeleteClient("STU001", conn)
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "STU001", Msg: "late"})
		require.False(t, hub.IsConnected("STU001"))
	})
}

func TestReconnect(t *testing.T) {
	t.Run(`the old connection's teardown keeps the fresh session`, func(t *testing.T) {
		hub := NewInstance(memstore.New()).(*impl)
		oldConn := &websocket.Conn{}
		freshConn := &websocket.Conn{}

		hub.AddClient("STU001", oldConn)
		hub.AddClient("STU001", freshConn)
		// The old read loop unwinds after the session was replaced.
		hub.DeleteClient("STU001", oldConn)

		hub.mu.Lock()
		sess, exist := hub.clients["STU001"]
		hub.mu.Unlock()
		require.True(t, exist)
		require.Same(t, freshConn, sess.conn)

		hub.DeleteClient("STU001", freshConn)
		hub.mu.Lock()
		_, exist = hub.clients["STU001"]
		hub.mu.Unlock()
		require.False(t, exist)
	})
}
