package punch

import (
	"fmt"
	"log/slog"
	"time"
)

// Manager runs the activity watchers and the estimated-exit polling loop.
type Manager struct {
	puncher         *Puncher
	watchers        []Watcher
	logger          *slog.Logger
	exitCh          chan error
	pollingInterval time.Duration
}

func NewManager(puncher *Puncher, watchers []Watcher, logger *slog.Logger, pollingInterval time.Duration) *Manager {
	return &Manager{
		puncher:         puncher,
		watchers:        watchers,
		logger:          logger,
		exitCh:          make(chan error),
		pollingInterval: pollingInterval,
	}
}

func (m *Manager) Watch() error {
	for _, watcher := range m.watchers {
		watcher := watcher
		go func() {
			m.logger.Debug("start watching", slog.String("watcher", watcher.Name()))
			if err := watcher.Watch(func() {
				if err := m.puncher.HandleActivity(); err != nil {
					m.logger.Error("handle activity", slog.String("watcher", watcher.Name()), slog.String("err", err.Error()))
				}
			}); err != nil {
				m.exitCh <- fmt.Errorf("failed to watch %s: %w", watcher.Name(), err)
			}
		}()
	}
	m.logger.Debug("start polling")
	for {
		select {
		case <-time.After(m.pollingInterval):
			if err := m.puncher.CheckEstimatedExit(); err != nil {
				return err
			}
		case err := <-m.exitCh:
			return err
		}
	}
}
