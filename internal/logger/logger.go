// Package logger provides a small logging interface so packages can emit
// debug and diagnostic messages without being tied to one implementation.
package logger

import (
	"fmt"
	"log"
	"os"
)

// Logger defines the logging operations used across gcssh.
// All methods take a format string and arguments, like fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// envLogger writes to the standard logger. Debug messages are only printed
// when GCSSH_DEBUG is set in the environment.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger gated on the GCSSH_DEBUG environment
// variable. The prefix is prepended to every message (e.g. "[gcloud]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if os.Getenv("GCSSH_DEBUG") != "" {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

// noopLogger discards everything.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// Message is one captured log entry.
type Message struct {
	Level string
	Text  string
}

// Buffer captures log messages for test assertions.
type Buffer struct {
	Messages []Message
}

// NewBuffer creates a logger that records messages instead of printing them.
func NewBuffer() *Buffer {
	return &Buffer{Messages: make([]Message, 0)}
}

func (l *Buffer) Debug(format string, args ...interface{}) { l.append("debug", format, args...) }
func (l *Buffer) Info(format string, args ...interface{})  { l.append("info", format, args...) }
func (l *Buffer) Warn(format string, args ...interface{})  { l.append("warn", format, args...) }
func (l *Buffer) Error(format string, args ...interface{}) { l.append("error", format, args...) }

func (l *Buffer) append(level, format string, args ...interface{}) {
	l.Messages = append(l.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...)})
}

// HasLevel reports whether any message was logged at the given level.
func (l *Buffer) HasLevel(level string) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}
