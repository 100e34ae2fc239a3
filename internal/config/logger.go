package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

func Init() {
	Log.SetOutput(os.Stdout)
	Log.SetLevel(logrus.InfoLevel)

	if os.Getenv("APP_ENV") == "production" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// WithContext returns a log entry carrying the chi request ID, when present.
func WithContext(ctx context.Context) *logrus.Entry {
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return Log.WithField("request_id", reqID)
	}
	return logrus.NewEntry(Log)
}
