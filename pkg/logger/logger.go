package logger

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

const (
	White = iota
	Black = iota + 30
	Red
	Green
	Yellow
	Blue
	Purple
	Cyan
	Grey
)

// Level orders log messages. Messages below the logger's level are dropped.
type Level int

const (
	LevelDefault Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
)

const (
	color = iota
	prefix
)

var colors = map[int]string{
	White:  "\033[0m",  // \033[0m
	Black:  "\033[30m", // \033[30m
	Red:    "\033[31m", // \033[31m
	Green:  "\033[32m", // \033[32m
	Yellow: "\033[33m", // \033[33m
	Blue:   "\033[34m", // \033[34m
	Purple: "\033[35m", // \033[35m
	Cyan:   "\033[36m", // \033[36m
	Grey:   "\033[37m", // \033[37m
}

var levels = map[Level][2]string{
	LevelTrace:   {colors[Grey], "TRCE"},
	LevelDebug:   {colors[Grey], "DBUG"},
	LevelInfo:    {colors[Blue], "INFO"},
	LevelWarn:    {colors[Yellow], "WARN"},
	LevelError:   {colors[Red], "EROR"},
	LevelFatal:   {colors[Red], "FATL"},
	LevelPanic:   {colors[Red], "PANC"},
	LevelDefault: {colors[White], "NORM"},
}

// ParseLevel maps a level name ("debug", "INFO", "warn", ...) to a Level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace, true
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	}
	return LevelDefault, false
}

var DefaultLogger = NewLogger(os.Stderr)

type Logger struct {
	lock      sync.Mutex    // sync
	log       *log.Logger   // actual logger
	buf       *bytes.Buffer // buffer
	level     Level         // minimum level written
	noColor   bool
	printFunc bool
	printFile bool
	dep       int // call depth
}

func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	l := &Logger{
		log: log.New(out, "", log.LstdFlags),
		buf: new(bytes.Buffer),
		dep: 4,
	}
	return l
}

func (l *Logger) logInternal(level Level, depth int, format string, args ...interface{}) {
	l.lock.Lock()
	defer l.lock.Unlock()
	if level != LevelDefault && level < l.level {
		return
	}
	levelInfo, ok := levels[level]
	if !ok {
		levelInfo = levels[LevelDefault]
	}
	l.buf.Reset()
	l.buf.WriteString("| ")
	if !l.noColor {
		l.buf.WriteString(levelInfo[color])
	}
	l.buf.WriteString(levelInfo[prefix])
	if !l.noColor {
		l.buf.WriteString(colors[White])
	}
	l.buf.WriteString(" | ")
	if l.printFunc || l.printFile {
		if level != LevelPanic {
			fn, file := trace(depth)
			if l.printFunc {
				l.buf.WriteByte('[')
				l.buf.WriteString(funcName(fn))
				l.buf.WriteByte(']')
			}
			if l.printFunc && l.printFile {
				l.buf.WriteByte(' ')
			}
			if l.printFile {
				l.buf.WriteString(file)
			}
			l.buf.WriteString(" - ")
		}
	}
	if len(args) == 0 {
		l.buf.WriteString(format)
		l.log.Print(l.buf.String())
		return
	}
	l.buf.WriteString(fmt.Sprintf(format, args...))
	l.log.Print(l.buf.String())
}

func (l *Logger) SetPrefix(prefix string) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetPrefix(prefix)
}

func (l *Logger) SetLevel(level Level) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.level = level
}

// SetColor turns the ANSI level colors on or off. Turn them off when the
// output is not a terminal.
func (l *Logger) SetColor(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.noColor = !ok
}

func (l *Logger) SetFlags(flags int) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.log.SetFlags(flags)
}

func (l *Logger) SetPrintFunc(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFunc = ok
}

func (l *Logger) SetPrintFile(ok bool) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.printFile = ok
}

func (l *Logger) Trace(message string) {
	l.logInternal(LevelTrace, l.dep, message)
}

func (l *Logger) Tracef(format string, args ...interface{}) {
	l.logInternal(LevelTrace, l.dep, format, args...)
}

func (l *Logger) Debug(message string) {
	l.logInternal(LevelDebug, l.dep, message)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.logInternal(LevelDebug, l.dep, format, args...)
}

func (l *Logger) Info(message string) {
	l.logInternal(LevelInfo, l.dep, message)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logInternal(LevelInfo, l.dep, format, args...)
}

func (l *Logger) Warn(message string) {
	l.logInternal(LevelWarn, l.dep, message)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.logInternal(LevelWarn, l.dep, format, args...)
}

func (l *Logger) Error(message string) {
	l.logInternal(LevelError, l.dep, message)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logInternal(LevelError, l.dep, format, args...)
}

func (l *Logger) Fatal(message string) {
	l.logInternal(LevelFatal, l.dep, message)
	os.Exit(1)
}

func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.logInternal(LevelFatal, l.dep, format, args...)
	os.Exit(1)
}

func (l *Logger) Panic(message string) {
	l.logInternal(LevelPanic, l.dep, message)
	panic(message)
}

func (l *Logger) Panicf(format string, args ...interface{}) {
	l.logInternal(LevelPanic, l.dep, format, args...)
	panic(fmt.Sprintf(format, args...))
}

func (l *Logger) Print(message string) {
	l.logInternal(LevelDefault, l.dep, message)
}

func (l *Logger) Printf(format string, args ...interface{}) {
	l.logInternal(LevelDefault, l.dep, format, args...)
}

func funcName(fn string) string {
	if i := strings.LastIndexByte(fn, '.'); i >= 0 {
		return fn[i+1:]
	}
	return fn
}

func trace(calldepth int) (string, string) {
	pc := make([]uintptr, 10) // at least 1 entry needed
	runtime.Callers(calldepth, pc)
	fn := runtime.FuncForPC(pc[0])
	if fn == nil {
		return "?", "?"
	}
	file, line := fn.FileLine(pc[0])
	return filepath.Base(fn.Name()), fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
