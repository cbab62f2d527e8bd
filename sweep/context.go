package sweep

import (
	"fmt"
	"time"
)

// LogCategory is a Context log entry's category.
//
// @see Context
type LogCategory int

const (
	LogProgress LogCategory = 1 + iota // A progress log entry.
	LogWarning                         // A warning log entry.
	LogError                           // An error log entry.
)

const maxMessages = 1000

// Context provides optional logging and performance tracking for a single
// Contour call: recorded log messages are read back with LogCount, LogText
// and DumpLog, and passing nil wherever a *Context is accepted
// is equivalent to passing one built with logging and timers disabled.
type Context struct {
	logEnabled   bool
	timerEnabled bool

	startTime [numTimers]time.Time
	accTime   [numTimers]time.Duration

	messages    [maxMessages]string
	numMessages int
}

// NewContext returns a Context with logging and timers enabled according
// to state.
func NewContext(state bool) *Context {
	return &Context{logEnabled: state, timerEnabled: state}
}

// EnableLog enables or disables logging.
func (ctx *Context) EnableLog(state bool) {
	if ctx == nil {
		return
	}
	ctx.logEnabled = state
}

// EnableTimers enables or disables the performance timers.
func (ctx *Context) EnableTimers(state bool) {
	if ctx == nil {
		return
	}
	ctx.timerEnabled = state
}

// Log records a message under category, if logging is enabled.
func (ctx *Context) Log(category LogCategory, format string, v ...interface{}) {
	if ctx == nil || !ctx.logEnabled || ctx.numMessages >= maxMessages {
		return
	}
	var prefix string
	switch category {
	case LogProgress:
		prefix = "PROG "
	case LogWarning:
		prefix = "WARN "
	case LogError:
		prefix = "ERR "
	}
	ctx.messages[ctx.numMessages] = prefix + fmt.Sprintf(format, v...)
	ctx.numMessages++
}

// Progressf logs a progress message.
func (ctx *Context) Progressf(format string, v ...interface{}) { ctx.Log(LogProgress, format, v...) }

// Warningf logs a warning message.
func (ctx *Context) Warningf(format string, v ...interface{}) { ctx.Log(LogWarning, format, v...) }

// Errorf logs an error message.
func (ctx *Context) Errorf(format string, v ...interface{}) { ctx.Log(LogError, format, v...) }

// LogCount returns the number of recorded log messages.
func (ctx *Context) LogCount() int {
	if ctx == nil {
		return 0
	}
	return ctx.numMessages
}

// LogText returns the i-th recorded log message.
func (ctx *Context) LogText(i int) string {
	if ctx == nil {
		return ""
	}
	return ctx.messages[i]
}

// DumpLog prints format followed by every recorded message to stdout.
func (ctx *Context) DumpLog(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	if ctx == nil {
		return
	}
	for i := 0; i < ctx.numMessages; i++ {
		fmt.Println(ctx.messages[i])
	}
}

func (ctx *Context) startTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.startTime[label] = time.Now()
}

func (ctx *Context) stopTimer(label TimerLabel) {
	if ctx == nil || !ctx.timerEnabled {
		return
	}
	ctx.accTime[label] += time.Since(ctx.startTime[label])
}

// AccumulatedTime returns the total accumulated duration of label, or zero
// if timers are disabled or the timer was never started.
func (ctx *Context) AccumulatedTime(label TimerLabel) time.Duration {
	if ctx == nil || !ctx.timerEnabled {
		return 0
	}
	return ctx.accTime[label]
}
