package numcaps

import (
	"fmt"

	"go.uber.org/multierr"
)

// Poller reconciles the cached lock-key states with what the OS reports.
// The OS does not reliably push lock-key changes, so the cache is compared
// against a fresh reading on every tick.
type Poller struct {
	reader    KeyStateReader
	presenter Presenter
	keys      map[Key]LockKey
}

func NewPoller(reader KeyStateReader, presenter Presenter) *Poller {
	keys := make(map[Key]LockKey, len(Keys))
	for _, k := range Keys {
		keys[k] = LockKey{Key: k}
	}

	return &Poller{
		reader:    reader,
		presenter: presenter,
		keys:      keys,
	}
}

// Init reads every key and presents it regardless of the cached state.
func (p *Poller) Init() error {
	var err error
	for _, k := range Keys {
		key := LockKey{Key: k, On: p.reader.IsToggled(k)}
		p.keys[k] = key
		if showErr := p.presenter.ShowState(key); showErr != nil {
			err = multierr.Append(err, fmt.Errorf("show %s: %w", key.Title(), showErr))
		}
	}
	return err
}

// Sync presents the keys whose state changed since the last call and
// reports how many did.
func (p *Poller) Sync() (int, error) {
	var (
		changed int
		err     error
	)

	for _, k := range Keys {
		key, ok := p.keys[k].Reconcile(p.reader.IsToggled(k))
		if !ok {
			continue
		}

		p.keys[k] = key
		changed++
		if showErr := p.presenter.ShowState(key); showErr != nil {
			err = multierr.Append(err, fmt.Errorf("show %s: %w", key.Title(), showErr))
		}
	}

	return changed, err
}

func (p *Poller) State(k Key) LockKey {
	return p.keys[k]
}
