package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

const requestMessage = "запрос api"

// New возвращает middleware логирования запросов. OPTIONS не логируются,
// уровень записи зависит от статуса ответа: 5xx — error, 4xx — warn.
func New(config ...Config) fiber.Handler {
	cfg := withDefaults(config...)
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		entry := requestEntry(cfg, ftm, c, d)
		switch status := c.Response().StatusCode(); {
		case status >= fiber.StatusInternalServerError:
			entry.Error(requestMessage)
		case status >= fiber.StatusBadRequest:
			entry.Warn(requestMessage)
		default:
			entry.Info(requestMessage)
		}
		return err
	}
}

func requestEntry(cfg Config, ftm map[string]FuncTag, c *fiber.Ctx, d *data) *log.Entry {
	fields := make(log.Fields, len(ftm))
	for tag, fn := range ftm {
		value := fn(c, d)
		// пустые строковые поля не пишутся
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[tag] = strValue
			}
			continue
		}
		fields[tag] = value
	}
	if cfg.Logger != nil {
		return cfg.Logger.WithFields(fields)
	}
	return log.WithFields(fields)
}
