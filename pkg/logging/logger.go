package logging

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"

	"github.com/boardmirror/boardmirror/pkg/boardmirror"
)

// Logger is the module's logger type. It has the novel property that it
// still functions if nil, but doesn't log anything, so call sites never
// have to nil-check a logger before using it. It wraps the standard log
// package, so it respects any flags set for that logger, and it supports
// hierarchical sub-loggers whose output is prefixed with their full name.
type Logger struct {
	// prefix is the logger's full dotted name, e.g. "daemon.connection".
	prefix string
}

// RootLogger is the root logger from which all other loggers derive.
var RootLogger = &Logger{}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	if l == nil {
		return nil
	}
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}
	return &Logger{prefix: prefix}
}

// output is the internal logging method.
func (l *Logger) output(calldepth int, line string) {
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}
	log.Output(calldepth, line)
}

// Info logs information with semantics equivalent to fmt.Println.
func (l *Logger) Info(v ...interface{}) {
	if l != nil {
		l.output(3, fmt.Sprintln(v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l != nil {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Debug logs information with semantics equivalent to fmt.Println, but only
// if debugging is enabled (otherwise it's a no-op).
func (l *Logger) Debug(v ...interface{}) {
	if l != nil && boardmirror.DebugEnabled {
		l.output(3, fmt.Sprintln(v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only
// if debugging is enabled (otherwise it's a no-op).
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l != nil && boardmirror.DebugEnabled {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Warn logs a warning in yellow.
func (l *Logger) Warn(v ...interface{}) {
	if l != nil {
		l.output(3, color.YellowString("Warning: %s", fmt.Sprintln(v...)))
	}
}

// Warnf logs a formatted warning in yellow.
func (l *Logger) Warnf(format string, v ...interface{}) {
	if l != nil {
		l.output(3, color.YellowString("Warning: "+format, v...))
	}
}

// Error logs an error in red.
func (l *Logger) Error(v ...interface{}) {
	if l != nil {
		l.output(3, color.RedString("Error: %s", fmt.Sprintln(v...)))
	}
}

// Errorf logs a formatted error in red.
func (l *Logger) Errorf(format string, v ...interface{}) {
	if l != nil {
		l.output(3, color.RedString("Error: "+format, v...))
	}
}

// Writer returns an io.Writer that logs each line written to it via Info.
// This is useful for redirecting the output of other components (such as an
// http.Server's ErrorLog) into the logging hierarchy.
func (l *Logger) Writer() io.Writer {
	return &lineWriter{logger: l}
}

// lineWriter adapts a Logger to io.Writer, splitting input into lines.
type lineWriter struct {
	logger *Logger
	buffer []byte
}

// Write implements io.Writer.Write.
func (w *lineWriter) Write(data []byte) (int, error) {
	w.buffer = append(w.buffer, data...)
	for {
		index := -1
		for i, b := range w.buffer {
			if b == '\n' {
				index = i
				break
			}
		}
		if index == -1 {
			break
		}
		w.logger.Info(string(w.buffer[:index]))
		w.buffer = w.buffer[index+1:]
	}
	return len(data), nil
}
