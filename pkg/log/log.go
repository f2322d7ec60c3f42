// Package log is a small levelled logger. Every line is prefixed with its level, and optionally a timestamp, the
// calling file, and a prefix naming the subsystem that wrote it
package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Flags that change what is added to each line
const (
	FTimestamp = 1 << iota
	FShowFile
)

// Level is the severity of a log line
type Level int

// Levels, in increasing severity
const (
	TRACE Level = 10 * iota
	DEBUG
	INFO
	WARN
	ERROR
	CRIT
	PANIC
)

var levelNames = map[Level]string{
	TRACE: "TRACE",
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	CRIT:  "CRIT ",
	PANIC: "PANIC",
}

func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}

	return "?????"
}

// ParseLevel converts a level name such as "info" or "DEBUG" to a Level
func ParseLevel(s string) (Level, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for level, name := range levelNames {
		if strings.TrimSpace(name) == want {
			return level, nil
		}
	}

	return 0, fmt.Errorf("unknown log level %q", s)
}

// Logger is a level based logging engine. Clones share the writer lock of the Logger they came from
type Logger struct {
	flags    int
	output   io.Writer
	prefix   string
	wMutex   *sync.Mutex
	minLevel Level
}

// New creates a new logger with the set options
func New(flags int, output io.Writer, prefix string, minLevel Level) *Logger {
	return &Logger{flags: flags, output: output, prefix: prefix, minLevel: minLevel, wMutex: new(sync.Mutex)}
}

// Prefix returns the prefix added to lines written by this Logger
func (l *Logger) Prefix() string { return l.prefix }

// SetPrefix sets the prefix on this Logger, it returns the Logger for chaining
func (l *Logger) SetPrefix(prefix string) *Logger {
	l.prefix = prefix
	return l
}

// MinLevel returns the lowest level this Logger will write
func (l *Logger) MinLevel() Level { return l.minLevel }

// SetMinLevel sets the lowest level this Logger will write, it returns the Logger for chaining
func (l *Logger) SetMinLevel(level Level) *Logger {
	l.minLevel = level
	return l
}

// Clone returns a copy of the Logger that writes to the same output
func (l *Logger) Clone() *Logger {
	out := *l
	return &out
}

func shortenFilename(filename string) string {
	if i := strings.LastIndexByte(filename, '/'); i != -1 {
		return filename[i+1:]
	}

	return filename
}

func writeBracketed(out *strings.Builder, s string) {
	out.WriteRune('[')
	out.WriteString(s)
	out.WriteString("] ")
}

func (l *Logger) writeOut(msg string, level Level) {
	if level < l.minLevel {
		return
	}

	out := strings.Builder{}
	if l.flags&FTimestamp != 0 {
		writeBracketed(&out, time.Now().Format("15:04:05.000"))
	}

	writeBracketed(&out, level.String())

	if l.flags&FShowFile != 0 {
		location := "???"
		if _, file, line, ok := runtime.Caller(2); ok {
			location = shortenFilename(file) + ":" + strconv.Itoa(line)
		}

		writeBracketed(&out, location)
	}

	if l.prefix != "" {
		writeBracketed(&out, l.prefix)
	}

	out.WriteString(strings.TrimRight(msg, "\r\n"))
	out.WriteRune('\n')

	l.wMutex.Lock()
	defer l.wMutex.Unlock()
	_, _ = io.WriteString(l.output, out.String())
}

// Trace logs the passed data at the Trace level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Trace(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), TRACE)
}

// Tracef logs at the Trace level using the given format string
func (l *Logger) Tracef(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), TRACE)
}

// Debug logs the passed data at the Debug level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Debug(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), DEBUG)
}

// Debugf logs at the Debug level using the given format string
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), DEBUG)
}

// Info logs the passed data at the Info level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Info(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), INFO)
}

// Infof logs at the Info level using the given format string
func (l *Logger) Infof(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), INFO)
}

// Warn logs the passed data at the Warn level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Warn(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), WARN)
}

// Warnf logs at the Warn level using the given format string
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), WARN)
}

// Error logs the passed data at the Error level. The passed arguments are run through fmt.Sprint before logging
func (l *Logger) Error(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), ERROR)
}

// Errorf logs at the Error level using the given format string
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), ERROR)
}

// Crit logs the passed data at the Crit level and then exits the program
func (l *Logger) Crit(args ...interface{}) {
	l.writeOut(fmt.Sprint(args...), CRIT)
	os.Exit(1)
}

// Critf is Crit with a format string
func (l *Logger) Critf(format string, args ...interface{}) {
	l.writeOut(fmt.Sprintf(format, args...), CRIT)
	os.Exit(1)
}

// Panicf logs at the Panic level and then panics with the formatted message
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.writeOut(msg, PANIC)
	panic(msg)
}
