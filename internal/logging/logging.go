package logging

import "github.com/sirupsen/logrus"

// NewLogger returns the application logger: info level, full-timestamp
// text output.
func NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return logger
}
