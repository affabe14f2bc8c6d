package config

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// RequestLogFormatter plugs logrus into chi's RequestLogger so access lines
// share the JSON format and request_id field of the rest of the service.
type RequestLogFormatter struct {
	Logger *logrus.Logger
}

func NewRequestLogFormatter(logger *logrus.Logger) *RequestLogFormatter {
	return &RequestLogFormatter{Logger: logger}
}

func (f *RequestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	fields := logrus.Fields{
		"method":      r.Method,
		"path":        r.URL.Path,
		"remote_addr": r.RemoteAddr,
	}
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		fields["request_id"] = reqID
	}
	return &requestLogEntry{entry: f.Logger.WithFields(fields)}
}

type requestLogEntry struct {
	entry *logrus.Entry
}

func (e *requestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	log := e.entry.WithFields(logrus.Fields{
		"status":     status,
		"bytes":      bytes,
		"elapsed_ms": elapsed.Milliseconds(),
	})
	switch {
	case status >= http.StatusInternalServerError:
		log.Error("Requisição concluída com erro")
	case status >= http.StatusBadRequest:
		log.Warn("Requisição rejeitada")
	default:
		log.Info("Requisição concluída")
	}
}

func (e *requestLogEntry) Panic(v interface{}, stack []byte) {
	e.entry.WithFields(logrus.Fields{
		"panic": v,
		"stack": string(stack),
	}).Error("Pânico ao processar requisição")
}
