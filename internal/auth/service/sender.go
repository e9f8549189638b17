package service

import (
	"context"
	"time"

	"github.com/jiangnanwaw/csfh-backend/internal/logging"
)

// LogSender is the development SMS sender: it only logs the code.
type LogSender struct {
	logger logging.Logger
}

func NewLogSender(logger logging.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (l *LogSender) Send(ctx context.Context, phone, code string) error {
	l.logger.Info(ctx, "sms code (dev delivery)", "phone", phone, "code", code)
	return nil
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
