package migration

import (
	"fmt"
	"os"
	"strings"

	"ticketdesk/internal/shared/logger"
)

// gooseLogger adapts logger.Interface to goose.Logger.
type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Printf(format string, v ...interface{}) {
	l.log.Infow(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (l *gooseLogger) Fatalf(format string, v ...interface{}) {
	l.log.Errorw(strings.TrimSpace(fmt.Sprintf(format, v...)))
	os.Exit(1)
}
