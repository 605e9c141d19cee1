package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	out    io.Writer
	mu     sync.Mutex
	level  int
	format string
}

// New creates a text Logger writing to stdout.
func New(level string) Logger {
	return NewWithOutput(os.Stdout, level, FormatText)
}

// NewWithOutput creates a Logger writing to w in the given format.
// Unknown levels default to info, unknown formats to text.
func NewWithOutput(w io.Writer, level, format string) Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = levels["info"]
	}
	format = strings.ToLower(format)
	if format != FormatJSON {
		format = FormatText
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		out:    w,
		level:  lvl,
		format: format,
	}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return NewWithOutput(io.Discard, "error", FormatText)
}

func (l *implLogger) shouldLog(level string) bool {
	target, ok := levels[level]
	if !ok {
		return true
	}
	return target >= l.level
}

func (l *implLogger) write(level, msg string, args []interface{}) {
	if !l.shouldLog(level) {
		return
	}

	text := msg
	if len(args) > 0 {
		text = fmt.Sprintf(msg, args...)
	}

	if l.format == FormatText {
		l.logger.Printf("[%s] %s", strings.ToUpper(level), text)
		return
	}

	line, err := json.Marshal(struct {
		Time  string `json:"time"`
		Level string `json:"level"`
		Msg   string `json:"msg"`
	}{time.Now().Format(time.RFC3339Nano), level, text})
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Write(append(line, '\n'))
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.write("debug", msg, args)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.write("info", msg, args)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.write("warn", msg, args)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.write("error", msg, args)
}
