package punch

import (
	"log/slog"

	hook "github.com/robotn/gohook"
)

// Watcher delivers a callback whenever user activity is observed.
type Watcher interface {
	Name() string
	Watch(onEvent func()) error
}

func NewAllWatchers(logger *slog.Logger) []Watcher {
	return []Watcher{
		&InputWatcher{logger: logger},
	}
}

// InputWatcher reports keyboard and mouse activity through one global hook
// pipeline; gohook only supports a single Start per process.
type InputWatcher struct {
	logger *slog.Logger
}

func (w *InputWatcher) Name() string {
	return "InputWatcher"
}

func (w *InputWatcher) Watch(onEvent func()) error {
	hook.Register(hook.KeyDown, hook.AnyKeyCmd, func(e hook.Event) {
		onEvent()
	})
	hook.Register(hook.MouseDown, []string{}, func(e hook.Event) {
		w.logger.Debug("mouse activity", slog.Int("x", int(e.X)), slog.Int("y", int(e.Y)))
		onEvent()
	})

	s := hook.Start()
	<-hook.Process(s)
	return nil
}
