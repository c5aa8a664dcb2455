package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

type LogLevel int

var LogFile bool
var LogFunc bool

const (
	LogLevelError = LogLevel(1 << iota)
	LogLevelInfo
	LogLevelNotice
	LogLevelDebug
)

var GlobalLogLevel = LogLevelError | LogLevelInfo

var logOutput atomic.Pointer[io.Writer]

var logBufPool sync.Pool

//nolint:gochecknoinits
func init() {
	logBufPool.New = func() any {
		return make([]byte, 0, 512)
	}
	SetLogOutput(os.Stdout)
}

// SetLogOutput Redirects all log lines to w
func SetLogOutput(w io.Writer) {
	logOutput.Store(&w)
}

// ParseLogLevel Accepts a level name. Each level includes the ones above it.
func ParseLogLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return LogLevelError, nil
	case "info", "":
		return LogLevelError | LogLevelInfo, nil
	case "notice":
		return LogLevelError | LogLevelInfo | LogLevelNotice, nil
	case "debug":
		return LogLevelError | LogLevelInfo | LogLevelNotice | LogLevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", s)
	}
}

func getLogBuf() []byte {
	//nolint:forcetypeassert
	return logBufPool.Get().([]byte)[:0]
}

func returnLogBuf(buf []byte) {
	//nolint:staticcheck
	logBufPool.Put(buf)
}

func Panic(v ...any) {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	buf = fmt.Append(innerPrint(buf, "", "PANIC"), v...)
	_println(buf)
	panic(string(buf))
}

func Panicf(prefix, format string, v ...any) {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	buf = fmt.Appendf(innerPrint(buf, prefix, "PANIC"), format, v...)
	_println(buf)
	panic(string(buf))
}

func Fatalf(format string, v ...any) {
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, "", "FATAL"), format, v...))
	//nolint:revive,gocritic
	os.Exit(1)
}

func Error(v ...any) {
	if GlobalLogLevel&LogLevelError == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Append(innerPrint(buf, "", "ERROR"), v...))
}

func Errorf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelError == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "ERROR"), format, v...))
}

func Print(v ...any) {
	if GlobalLogLevel&LogLevelInfo == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Append(innerPrint(buf, "", "INFO"), v...))
}

func Logf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelInfo == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "INFO"), format, v...))
}

func Noticef(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelNotice == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "NOTICE"), format, v...))
}

func IsLogLevelDebug() bool {
	return GlobalLogLevel&LogLevelDebug > 0
}

func Debugf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelDebug == 0 {
		return
	}
	buf := getLogBuf()
	defer returnLogBuf(buf)
	_println(fmt.Appendf(innerPrint(buf, prefix, "DEBUG"), format, v...))
}

func _println(buf []byte) {
	buf = bytes.TrimSpace(buf)
	buf = append(buf, '\n')

	_, _ = (*logOutput.Load()).Write(buf)
}

func innerPrint(buf []byte, prefix, class string) []byte {
	buf = time.Now().UTC().AppendFormat(buf, "2006-01-02 15:04:05.000")
	if !LogFile {
		return fmt.Appendf(buf, " [%s] %s ", prefix, class)
	}

	pc, file, line, ok := runtime.Caller(2)
	if !ok {
		file = "???"
		line = 0
		pc = 0
	}
	short := file[strings.LastIndexByte(file, '/')+1:]

	if !LogFunc {
		return fmt.Appendf(buf, " %s:%d [%s] %s ", short, line, prefix, class)
	}

	var function string
	if pc != 0 {
		if details := runtime.FuncForPC(pc); details != nil {
			function = details.Name()
		}
	}
	function = function[strings.LastIndexByte(function, '.')+1:]
	return fmt.Appendf(buf, " %s:%d:%s [%s] %s ", short, line, function, prefix, class)
}
