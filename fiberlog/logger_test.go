package fiberlog

import (
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestApp() (*fiber.App, *test.Hook) {
	logger, hook := test.NewNullLogger()
	app := fiber.New()
	app.Use(New(Config{
		Logger: logger,
		Tags:   []string{TagStatus, TagLatency, TagMethod, TagPath},
	}))
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})
	app.Get("/slow", func(c *fiber.Ctx) error {
		time.Sleep(20 * time.Millisecond)
		return c.SendString("pong")
	})
	return app, hook
}

func TestAccessLog(t *testing.T) {
	t.Run(`a request is logged with the configured tags`, func(t *testing.T) {
		app, hook := newTestApp()
		resp, err := app.Test(httptest.NewRequest("GET", "/ping", nil))
		require.Nil(t, err)
		defer resp.Body.Close()
		_, _ = io.ReadAll(resp.Body)

		require.Len(t, hook.AllEntries(), 1)
		entry := hook.LastEntry()
		require.Equal(t, "api request", entry.Message)
		require.Equal(t, logrus.InfoLevel, entry.Level)
		require.Equal(t, 200, entry.Data[TagStatus])
		require.Equal(t, "GET", entry.Data[TagMethod])
		require.Equal(t, "/ping", entry.Data[TagPath])
		require.Contains(t, entry.Data, TagLatency)
	})

	t.Run(`concurrent requests each carry their own latency`, func(t *testing.T) {
		app, hook := newTestApp()
		wg := sync.WaitGroup{}
		for n := 0; n < 8; n++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				resp, err := app.Test(httptest.NewRequest("GET", "/slow", nil), 5000)
				require.Nil(t, err)
				resp.Body.Close()
			}()
		}
		wg.Wait()

		require.Len(t, hook.AllEntries(), 8)
		for _, entry := range hook.AllEntries() {
			latency, err := time.ParseDuration(entry.Data[TagLatency].(string))
			require.Nil(t, err)
			require.GreaterOrEqual(t, latency, 20*time.Millisecond)
		}
	})
}
