package fiberlog

import "github.com/sirupsen/logrus"

// Config - настройки middleware логирования запросов
type Config struct {
	Logger *logrus.Logger // nil - используется глобальный логгер
	Tags   []string       // набор полей, попадающих в каждую запись
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}
