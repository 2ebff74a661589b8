package fiberlog

import "github.com/sirupsen/logrus"

// Config настраивает логирование запросов. Пустой набор Tags заменяется
// набором по умолчанию.
type Config struct {
	// Logger пишет записи о запросах; nil — глобальный logrus
	Logger *logrus.Logger
	Tags   []string
}

var defaultTags = []string{
	TagStatus,
	TagLatency,
	TagMethod,
	TagPath,
	RequestID,
}

func withDefaults(config ...Config) Config {
	if len(config) == 0 {
		return Config{Tags: defaultTags}
	}
	cfg := config[0]
	if len(cfg.Tags) == 0 {
		cfg.Tags = defaultTags
	}
	return cfg
}
