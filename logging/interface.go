package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/runningwild/glop/glog"
)

type stdLogInterceptor interface {
	Printf(format string, v ...interface{})
}

type Logger interface {
	glog.Logger
	stdLogInterceptor
}

type gridLogger struct {
	glog.Logger
}

func (log *gridLogger) Printf(msg string, args ...interface{}) {
	log.Logger.Log(context.Background(), slog.LevelInfo, msg, args...)
}

var _ Logger = (*gridLogger)(nil)

var debugLogger *gridLogger
var infoLogger *gridLogger
var warnLogger *gridLogger
var errorLogger *gridLogger

func init() {
	debugLogger = &gridLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelDebug,
		}),
	}
	infoLogger = &gridLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelInfo,
		}),
	}
	warnLogger = &gridLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelWarn,
		}),
	}
	errorLogger = &gridLogger{
		Logger: glog.New(&glog.Opts{
			Level: slog.LevelError,
		}),
	}
}

func DefaultLogger() Logger {
	return InfoLogger()
}

func DebugLogger() Logger {
	return debugLogger
}

func InfoLogger() Logger {
	return infoLogger
}

func WarnLogger() Logger {
	return warnLogger
}

func ErrorLogger() Logger {
	return errorLogger
}

// doLog emits through infoLogger so that level gating and redirection share a
// single source of truth. The caller-skip of 3 keeps the source attribute
// pointed at client code instead of this package.
func doLog(lvl slog.Level, msg string, args ...interface{}) {
	if !infoLogger.Enabled(context.Background(), lvl) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // skip [Callers, <free func>, doLog]
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	infoLogger.Handler().Handle(context.Background(), r)
}

func Log(msg string, args ...interface{}) {
	doLog(slog.LevelInfo, msg, args...)
}

func Trace(msg string, args ...interface{}) {
	doLog(glog.LevelTrace, msg, args...)
}

func Debug(msg string, args ...interface{}) {
	doLog(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...interface{}) {
	doLog(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...interface{}) {
	doLog(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...interface{}) {
	doLog(slog.LevelError, msg, args...)
}

// Call this to redirect all logging output to the given io.Writer. A cleanup
// function that undoes the redirect is returned.
func Redirect(newOut io.Writer) func() {
	oldDebugLogger := debugLogger
	debugLogger = &gridLogger{
		Logger: glog.WithRedirect(oldDebugLogger, newOut),
	}

	oldInfoLogger := infoLogger
	infoLogger = &gridLogger{
		Logger: glog.WithRedirect(oldInfoLogger, newOut),
	}

	oldWarnLogger := warnLogger
	warnLogger = &gridLogger{
		Logger: glog.WithRedirect(oldWarnLogger, newOut),
	}

	oldErrorLogger := errorLogger
	errorLogger = &gridLogger{
		Logger: glog.WithRedirect(oldErrorLogger, newOut),
	}
	return func() {
		debugLogger = oldDebugLogger
		infoLogger = oldInfoLogger
		warnLogger = oldWarnLogger
		errorLogger = oldErrorLogger
	}
}

// Like Redirect but also captures a copy of everything logged; useful for
// asserting against log output in tests. The redirect is left in place.
func RedirectOutput(newOut io.Writer) *bytes.Buffer {
	captured := &bytes.Buffer{}
	Redirect(io.MultiWriter(captured, newOut))
	return captured
}

func SetupLogger(logSink io.Writer) *bytes.Buffer {
	logConsole := &bytes.Buffer{}
	logWriter := io.MultiWriter(logConsole, logSink)

	debugLogger.Logger = glog.WithRedirect(debugLogger.Logger, logWriter)
	infoLogger.Logger = glog.WithRedirect(infoLogger.Logger, logWriter)
	warnLogger.Logger = glog.WithRedirect(warnLogger.Logger, logWriter)
	errorLogger.Logger = glog.WithRedirect(errorLogger.Logger, logWriter)

	return logConsole
}

// Tells the 'Default Logger' to changes its verbosity.
func SetLogLevel(lvl slog.Level) {
	infoLogger.Logger = glog.Relevel(infoLogger.Logger, lvl)
}

// Like SetLogLevel but returns a func that restores the previous verbosity.
func SetLoggingLevel(lvl slog.Level) func() {
	oldLogger := infoLogger.Logger
	infoLogger.Logger = glog.Relevel(oldLogger, lvl)
	return func() {
		infoLogger.Logger = oldLogger
	}
}
