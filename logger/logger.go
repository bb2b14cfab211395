/*
Package logger provides a leveled logger that tags every line with a colored
component prefix, e.g. "[MAZE] [INFO] generated 10x10 maze".
*/
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/vinom-maze/config"
)

var (
	ErrEmptyPrefix = errors.New("logger prefix must not be empty")
)

// Logger writes leveled messages through a standard library logger.
type Logger struct {
	logger *log.Logger
	prefix string
}

// New creates a logger for the component named prefix, colored with color.
// A nil writer discards every message.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, ErrEmptyPrefix
	}
	if w == nil {
		w = io.Discard
	}

	return &Logger{
		logger: log.New(w, "", log.LstdFlags),
		prefix: fmt.Sprintf("%s[%s]%s", color, prefix, config.ColorReset),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Printf("%s %s[INFO]%s %s", l.prefix, config.LogInfoColor, config.LogColorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.logger.Printf("%s %s[WARN]%s %s", l.prefix, config.LogWarnColor, config.LogColorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.logger.Printf("%s %s[ERROR]%s %s", l.prefix, config.LogErrorColor, config.LogColorReset, msg)
}
