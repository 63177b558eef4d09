package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger: readable text in dev, JSON in prod.
func Setup(out io.Writer, env, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	logrus.SetOutput(out)
	logrus.SetLevel(lvl)

	if env == "prod" {
		logrus.SetFormatter(new(logrus.JSONFormatter))
		return nil
	}

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
	})
	return nil
}
