package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func newLogger(env *Env) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	switch env.LogFormat {
	case "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(env.LogLevel)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", env.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	return logger
}
