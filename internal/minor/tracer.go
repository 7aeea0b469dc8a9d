package minor

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Stage identifies a point in a Checker's lifecycle a Tracer may be
// notified about.
type Stage int

const (
	StageEncoded Stage = iota
	StageSolved
	StageIndeterminate
)

// Event carries the detail a Tracer receives at a Stage.
type Event struct {
	Stage       Stage
	Vertices    int
	K           int
	Satisfiable bool
	Runtime     time.Duration
}

// Tracer receives notifications as a Checker progresses from encoding
// through solving. It exists purely for diagnostics: no Checker
// behavior depends on what a Tracer does with an Event.
type Tracer interface {
	Trace(Event)
}

// DefaultTracer discards every event.
type DefaultTracer struct{}

func (DefaultTracer) Trace(Event) {}

// LoggingTracer reports every event through an embedded logrus
// logger. A nil Logger falls back to logrus's standard logger.
type LoggingTracer struct {
	Logger *logrus.Logger
}

func (t LoggingTracer) Trace(e Event) {
	logger := t.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	switch e.Stage {
	case StageEncoded:
		logger.WithFields(logrus.Fields{
			"vertices": e.Vertices,
			"k":        e.K,
		}).Debug("encoded K_k-minor formula")
	case StageSolved:
		logger.WithFields(logrus.Fields{
			"vertices":    e.Vertices,
			"k":           e.K,
			"satisfiable": e.Satisfiable,
			"runtime":     e.Runtime,
		}).Debug("solver reached a verdict")
	case StageIndeterminate:
		logger.WithFields(logrus.Fields{
			"vertices": e.Vertices,
			"k":        e.K,
		}).Warn("solver did not reach a verdict before the deadline")
	}
}
