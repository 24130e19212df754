package fiberlog

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// New - middleware логирования запросов api в structured формате
func New(config ...Config) fiber.Handler {
	cfg := ConfigDefault
	if len(config) > 0 {
		cfg = config[0]
	}
	d := new(data)
	d.pid = os.Getpid()
	ftm := getFuncTagMap(cfg, d)
	return func(c *fiber.Ctx) error {
		d.start = time.Now()
		err := c.Next()
		d.end = time.Now()
		// preflight запросы не логируем
		if c.Method() == fiber.MethodOptions {
			return err
		}

		entry := logEntry(cfg, ftm, c, d)
		statusCode := c.Response().StatusCode()
		switch {
		case statusCode >= fiber.StatusInternalServerError:
			entry.Error("запрос api")
		case statusCode >= fiber.StatusMultipleChoices:
			entry.Warn("запрос api")
		default:
			entry.Info("запрос api")
		}
		return err
	}
}

func logEntry(cfg Config, ftm map[string]FuncTag, c *fiber.Ctx, d *data) *log.Entry {
	fields := make(log.Fields, len(ftm))
	for tag, fn := range ftm {
		value := fn(c, d)
		if strValue, ok := value.(string); ok {
			if strValue == "" {
				continue
			}
			fields[tag] = strValue
			continue
		}
		fields[tag] = value
	}
	if cfg.Logger == nil {
		return log.WithFields(fields)
	}
	return cfg.Logger.WithFields(fields)
}
