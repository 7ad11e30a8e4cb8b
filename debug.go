package textbind

import (
	"fmt"

	"go.uber.org/zap"
)

// logger receives every warning the package emits. It discards output until
// SetLogger or Scene.SetDebugMode installs a real one.
var logger = zap.NewNop()

// SetLogger installs l as the package logger. A nil l restores the no-op
// logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger {
	return logger
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which may lack a Scene pointer) can check it cheaply.
var globalDebug bool

// debugLogger is the logger installed by debug mode, and savedLogger the one
// it replaced.
var debugLogger, savedLogger *zap.Logger

// setDebug swaps a development logger in while debug mode is on. Turning
// debug mode off restores the previous logger unless SetLogger replaced the
// development one in the meantime.
func setDebug(enabled bool) {
	globalDebug = enabled
	if !enabled {
		if debugLogger != nil && logger == debugLogger {
			SetLogger(savedLogger)
		}
		debugLogger, savedLogger = nil, nil
		return
	}
	if debugLogger != nil && logger == debugLogger {
		return
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return
	}
	savedLogger = logger
	debugLogger = l.Named("textbind")
	logger = debugLogger
}

func warnMissingInput(binding string, index int) {
	logger.Warn("missing input", zap.String("binding", binding), zap.Int("index", index))
}

func warnMissingSink(binding string) {
	logger.Warn("missing sink", zap.String("binding", binding))
}

func debugTrace(msg string, binding string, frame uint64) {
	if globalDebug {
		logger.Debug(msg, zap.String("binding", binding), zap.Uint64("frame", frame))
	}
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Only called in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("textbind debug: %s on disposed node %q", op, n.Name))
	}
}
