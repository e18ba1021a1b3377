// Package logging builds the shell's zap logger, adapted from the
// console/file dual-sink setup the teacher CLI uses for its own
// diagnostics, reconfigured for arbsh's log file and level source.
package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger. A zero Options gives a reasonable
// interactive-shell default: info level, console encoding, writing to
// both stderr and a rotating log file.
type Options struct {
	Level    string // debug, info, warn, error
	LogFile  string // defaults to "arbsh.log"
	JSON     bool   // structured JSON encoding instead of console
	ToStderr bool   // also write to stderr (always on when LogFile is empty)
}

// New builds a *zap.Logger per Options.
func New(opts Options) (*zap.Logger, error) {
	level := parseLevel(opts.Level)

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	logFile := opts.LogFile
	if logFile == "" {
		logFile = "arbsh.log"
	}
	rotator := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	sinks := []zapcore.WriteSyncer{zapcore.AddSync(rotator)}
	if opts.ToStderr || opts.LogFile == "" {
		sinks = append(sinks, zapcore.AddSync(os.Stderr))
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(sinks...), level)
	return zap.New(core, zap.AddCaller()), nil
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "":
		return zap.InfoLevel
	default:
		return zap.InfoLevel
	}
}
