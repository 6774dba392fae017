// Package log adds logging utilities.
package log

import (
	"strings"
	"time"

	adspb "github.com/raymonelina/grpc-playground/api/proto/gen/pb-go"

	"github.com/sirupsen/logrus"
)

// SetLogger sets the default logger's level.
func SetLogger(level string) {
	logrus.SetLevel(logrus.ErrorLevel)
	customFormatter := new(logrus.TextFormatter)
	customFormatter.TimestampFormat = time.RFC3339
	logrus.SetFormatter(customFormatter)
	customFormatter.FullTimestamp = true
	switch strings.ToLower(level) {
	case "trace":
		logrus.SetLevel(logrus.TraceLevel)
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.ErrorLevel)
	}
}

// ContextToFields converts a Context message into structured log fields.
func ContextToFields(msg *adspb.Context) logrus.Fields {
	return logrus.Fields{
		"query":                msg.Query,
		"asin_id":              msg.AsinId,
		"understanding_length": len(msg.Understanding),
		"understanding_empty":  msg.Understanding == "",
	}
}

// AdsListToFields converts an AdsList message into structured log fields.
func AdsListToFields(msg *adspb.AdsList) logrus.Fields {
	return logrus.Fields{
		"version":   msg.Version,
		"ads_count": len(msg.Ads),
	}
}
