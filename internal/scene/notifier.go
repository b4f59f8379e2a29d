package scene

import (
	"Fletch3D/internal/logger"

	"go.uber.org/zap"
)

// Notifier receives the outcome of the most recent shot
type Notifier interface {
	Scored(score int)
	Failed()
	Missed()
}

// LogNotifier writes outcomes to the process logger
type LogNotifier struct{}

func (LogNotifier) Scored(score int) {
	logger.Log.Info("Target hit", zap.Int("score", score))
}

func (LogNotifier) Failed() {
	logger.Log.Info("Target hit on the rim", zap.Int("score", 0))
}

func (LogNotifier) Missed() {
	logger.Log.Info("Target missed")
}

// MultiNotifier fans an outcome out to several notifiers, in order
type MultiNotifier []Notifier

func (m MultiNotifier) Scored(score int) {
	for _, n := range m {
		n.Scored(score)
	}
}

func (m MultiNotifier) Failed() {
	for _, n := range m {
		n.Failed()
	}
}

func (m MultiNotifier) Missed() {
	for _, n := range m {
		n.Missed()
	}
}
