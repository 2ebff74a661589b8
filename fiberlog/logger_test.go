package fiberlog

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	newApp := func() (*fiber.App, *logtest.Hook) {
		logger, hook := logtest.NewNullLogger()
		logger.SetLevel(log.DebugLevel)
		app := fiber.New()
		app.Use(New(Config{Logger: logger}))
		app.Get("/ok", func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusOK)
		})
		app.Get("/missing", func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusNotFound)
		})
		app.Get("/boom", func(ctx *fiber.Ctx) error {
			return ctx.SendStatus(fiber.StatusInternalServerError)
		})
		return app, hook
	}

	t.Run(`log level follows response status`, func(t *testing.T) {
		cases := []struct {
			path  string
			level log.Level
		}{
			{"/ok", log.InfoLevel},
			{"/missing", log.WarnLevel},
			{"/boom", log.ErrorLevel},
		}
		for _, c := range cases {
			app, hook := newApp()
			_, err := app.Test(httptest.NewRequest(fiber.MethodGet, c.path, nil))
			require.Nil(t, err)
			require.NotNil(t, hook.LastEntry(), c.path)
			require.Equal(t, c.level, hook.LastEntry().Level, c.path)
		}
	})

	t.Run(`default tags include status and method`, func(t *testing.T) {
		app, hook := newApp()
		_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/ok", nil))
		require.Nil(t, err)
		entry := hook.LastEntry()
		require.NotNil(t, entry)
		require.Equal(t, fiber.StatusOK, entry.Data[TagStatus])
		require.Equal(t, fiber.MethodGet, entry.Data[TagMethod])
	})

	t.Run(`options requests are not logged`, func(t *testing.T) {
		app, hook := newApp()
		_, err := app.Test(httptest.NewRequest(fiber.MethodOptions, "/ok", nil))
		require.Nil(t, err)
		require.Nil(t, hook.LastEntry())
	})
}
