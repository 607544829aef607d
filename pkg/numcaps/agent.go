package numcaps

import (
	"context"
	"fmt"
	"strings"
	"time"

	"codeberg.org/miketth/numcaps/pkg/relayout"
	"go.uber.org/zap"
)

const DefaultPollInterval = 100 * time.Millisecond

type Options struct {
	Pairs      []relayout.Pair
	WidthLimit int
}

// Agent owns all mutable tray state. Its methods are meant to be called
// from a single goroutine; Run hands every tick to a dispatcher so that it
// lands on that goroutine too.
type Agent struct {
	poller     *Poller
	indication Indication

	presenter Presenter
	store     SettingsStore
	clipboard Clipboard
	locales   LocaleSource

	pairs      []relayout.Pair
	widthLimit int

	log *zap.SugaredLogger
}

func NewAgent(
	reader KeyStateReader,
	presenter Presenter,
	store SettingsStore,
	clipboard Clipboard,
	locales LocaleSource,
	opts Options,
	log *zap.SugaredLogger,
) *Agent {
	if opts.WidthLimit <= 0 {
		opts.WidthLimit = DefaultWidthLimit
	}

	return &Agent{
		poller:     NewPoller(reader, presenter),
		indication: IndicateBoth,
		presenter:  presenter,
		store:      store,
		clipboard:  clipboard,
		locales:    locales,
		pairs:      opts.Pairs,
		widthLimit: opts.WidthLimit,
		log:        log,
	}
}

// Start loads the persisted indication and presents the initial key states.
func (a *Agent) Start() error {
	flags, err := a.store.GetIndicatorFlags()
	if err != nil {
		a.log.Warnw("could not load indicator flags, showing both", "error", err)
		flags = int(IndicateBoth)
	}
	a.indication = ParseIndication(flags)
	a.log.Debugw("loaded indication", "stored", flags, "indication", a.indication)

	if err := a.poller.Init(); err != nil {
		return fmt.Errorf("present initial state: %w", err)
	}

	if err := a.applyVisibility(); err != nil {
		return fmt.Errorf("apply visibility: %w", err)
	}

	return nil
}

// Sync runs one poll tick.
func (a *Agent) Sync() {
	changed, err := a.poller.Sync()
	if err != nil {
		a.log.Errorw("update lock key indicator", "error", err)
	}
	if changed > 0 {
		a.log.Debugw("lock keys changed",
			"num", a.poller.State(KeyNum).On,
			"caps", a.poller.State(KeyCaps).On,
		)
	}
}

// Run polls every interval until ctx is done. dispatch must run the given
// function on the goroutine owning the agent.
func (a *Agent) Run(ctx context.Context, interval time.Duration, dispatch func(func())) error {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			dispatch(a.Sync)
		}
	}
}

func (a *Agent) State(k Key) LockKey {
	return a.poller.State(k)
}

func (a *Agent) Indication() Indication {
	return a.indication
}

// SetIndication switches the visible icons and persists the choice right
// away.
func (a *Agent) SetIndication(i Indication) error {
	i = ParseIndication(int(i))
	if i == a.indication {
		return nil
	}

	a.indication = i
	if err := a.applyVisibility(); err != nil {
		return fmt.Errorf("apply visibility: %w", err)
	}

	if err := a.store.SetIndicatorFlags(int(i)); err != nil {
		return fmt.Errorf("store indicator flags: %w", err)
	}

	a.log.Infow("indication changed", "indication", i)
	return nil
}

func (a *Agent) applyVisibility() error {
	for _, k := range Keys {
		if err := a.presenter.SetVisible(k, a.indication.Shows(k)); err != nil {
			return fmt.Errorf("set %s visibility: %w", k.Title(), err)
		}
	}
	return nil
}

// Menus builds the recap and relayout submenus from the current clipboard
// text.
func (a *Agent) Menus() (recapMenu, relayoutMenu Submenu) {
	raw, ok := a.clipboard.ReadText()
	if !ok {
		return Unavailable(), Unavailable()
	}

	locales, err := a.locales.InstalledLocales()
	if err != nil {
		a.log.Warnw("list installed locales", "error", err)
	}

	recapMenu = BuildRecapMenu(raw, locales, a.widthLimit)
	relayoutMenu = BuildRelayoutMenu(raw, a.pairs, a.widthLimit)
	a.log.Debugw("menus built",
		"locales", len(locales),
		"recap", len(recapMenu.Entries),
		"relayout", len(relayoutMenu.Entries),
	)

	return recapMenu, relayoutMenu
}

// Copy replaces the clipboard content with the full value of a menu entry.
func (a *Agent) Copy(value string) error {
	if err := a.clipboard.WriteText(value); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Status summarizes both keys for the balloon shown on a left click.
func (a *Agent) Status() string {
	lines := make([]string, 0, len(Keys))
	for _, k := range Keys {
		lines = append(lines, a.poller.State(k).Tooltip())
	}
	return strings.Join(lines, "\n") + "\n\nFor more features use the context menu."
}
