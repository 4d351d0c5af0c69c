// Package logadapter wires github.com/sirupsen/logrus into the narrow
// recondump.Logger capability the reconstruction engine expects.
package logadapter

import (
	"github.com/sirupsen/logrus"

	"github.com/fnv360/semrecon/recondump"
)

// Logrus adapts a *logrus.Logger (or logrus.FieldLogger) to
// recondump.Logger.
type Logrus struct {
	entry logrus.FieldLogger
}

// NewLogrus wraps l. If l is nil, logrus.StandardLogger() is used.
func NewLogrus(l *logrus.Logger) Logrus {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return Logrus{entry: l}
}

// WithFields returns a Logrus adapter that attaches fields to every
// Debugf call, useful for tagging a pass ("pass", "npc") across a merge.
func (lg Logrus) WithFields(fields logrus.Fields) Logrus {
	return Logrus{entry: lg.entry.WithFields(fields)}
}

// Debugf implements recondump.Logger.
func (lg Logrus) Debugf(format string, args ...any) {
	lg.entry.Debugf(format, args...)
}

var _ recondump.Logger = Logrus{}
