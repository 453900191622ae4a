package flexkit

import (
	"sync"

	"github.com/hashicorp/go-hclog"
)

// defaultLogger is a shared no-op logger, used by every Node that hasn't
// had SetLogger called on it or an ancestor. Matches the teacher's
// "silent unless enabled" debugLog behavior, but through a real structured
// logger instead of a package-level bool.
var (
	defaultLoggerOnce sync.Once
	defaultLoggerVal  hclog.Logger
)

func defaultLogger() hclog.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLoggerVal = hclog.NewNullLogger()
	})
	return defaultLoggerVal
}

// NewLogger builds a standard flexkit logger writing to the given name,
// for callers who want to see trace output. Library code otherwise
// defaults to a no-op logger.
func NewLogger(name string, level hclog.Level) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  name,
		Level: level,
	})
}

// logger returns the effective logger for n: its own if set, else the
// nearest ancestor's, else the package default no-op logger.
func (n *Node) logger() hclog.Logger {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.log != nil {
			return cur.log
		}
	}
	return defaultLogger()
}

// SetLogger attaches a structured logger to n; descendants that don't have
// their own logger inherit it. Passing nil reverts to inheritance/default.
// This does not mark n dirty — logging is purely a diagnostic side channel.
func (n *Node) SetLogger(l hclog.Logger) *Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.log = l
	return n
}
