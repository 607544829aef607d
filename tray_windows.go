//go:build windows

package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"

	"codeberg.org/miketth/numcaps/pkg/icons"
	"codeberg.org/miketth/numcaps/pkg/numcaps"
	"github.com/lxn/walk"
	"go.uber.org/zap"
)

const (
	productName = "NumCaps"
	aboutText   = "Shows the state of Numlock and Capslock in the notification area.\n\n" +
		"Use the context menu to flip the case of the text in the clipboard " +
		"or to retype it in another keyboard layout."

	recapTitle    = "cAPSLOCK => Capslock"
	relayoutTitle = "Дфнщге => Layout"
	statusTitle   = "Current status"
)

func init() {
	// the window and the notify icons must live on one OS thread
	runtime.LockOSThread()
}

// trayIcon is one notification area icon with its own context menu.
type trayIcon struct {
	ni *walk.NotifyIcon

	indicate map[numcaps.Indication]*walk.Action

	recapAction    *walk.Action
	recapMenu      *walk.Menu
	relayoutAction *walk.Action
	relayoutMenu   *walk.Menu
}

type tray struct {
	mw     *walk.MainWindow
	icons  map[numcaps.Key]*trayIcon
	images map[numcaps.IconID]*walk.Icon
	agent  *numcaps.Agent
	log    *zap.SugaredLogger
}

func runTray(ctx context.Context, deps agentDeps, log *zap.SugaredLogger) error {
	mw, err := walk.NewMainWindow()
	if err != nil {
		return fmt.Errorf("create main window: %w", err)
	}
	defer mw.Dispose()

	t := &tray{
		mw:     mw,
		icons:  make(map[numcaps.Key]*trayIcon),
		images: make(map[numcaps.IconID]*walk.Icon),
		log:    log,
	}
	defer t.dispose()

	if err := t.loadImages(); err != nil {
		return fmt.Errorf("load icons: %w", err)
	}

	t.agent = numcaps.NewAgent(deps.reader, t, deps.store, deps.clipboard, deps.locales, deps.options, log)

	for _, k := range numcaps.Keys {
		icon, err := t.newIcon()
		if err != nil {
			return fmt.Errorf("create %s icon: %w", k.Title(), err)
		}
		t.icons[k] = icon
	}

	if err := t.agent.Start(); err != nil {
		return fmt.Errorf("start agent: %w", err)
	}
	t.updateChecks()

	pollCtx, stopPolling := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		err := t.agent.Run(pollCtx, deps.interval, mw.Synchronize)
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Errorw("poll lock keys", "error", err)
		}
	}()

	go func() {
		select {
		case <-ctx.Done():
			log.Debug("interrupted, closing tray")
			mw.Synchronize(func() { walk.App().Exit(0) })
		case <-pollCtx.Done():
		}
	}()

	mw.Run()

	stopPolling()
	wg.Wait()

	return nil
}

func (t *tray) loadImages() error {
	for _, id := range numcaps.IconIDs {
		img, err := icons.Render(id)
		if err != nil {
			return err
		}
		icon, err := walk.NewIconFromImageForDPI(img, 96)
		if err != nil {
			return fmt.Errorf("convert icon %d: %w", id, err)
		}
		t.images[id] = icon
	}
	return nil
}

func (t *tray) newIcon() (*trayIcon, error) {
	ni, err := walk.NewNotifyIcon(t.mw)
	if err != nil {
		return nil, fmt.Errorf("create notify icon: %w", err)
	}

	icon := &trayIcon{ni: ni, indicate: make(map[numcaps.Indication]*walk.Action)}
	if err := t.buildMenu(icon); err != nil {
		_ = ni.Dispose()
		return nil, fmt.Errorf("build menu: %w", err)
	}

	ni.MouseDown().Attach(func(x, y int, button walk.MouseButton) {
		switch button {
		case walk.LeftButton:
			if err := ni.ShowInfo(statusTitle, t.agent.Status()); err != nil {
				t.log.Warnw("show status balloon", "error", err)
			}
		case walk.RightButton:
			// runs before the context menu pops up
			t.refreshMenus(icon)
		}
	})

	return icon, nil
}

func (t *tray) buildMenu(icon *trayIcon) error {
	actions := icon.ni.ContextMenu().Actions()

	about := walk.NewAction()
	if err := about.SetText("About"); err != nil {
		return err
	}
	about.Triggered().Attach(func() {
		walk.MsgBox(t.mw, productName, aboutText, walk.MsgBoxOK|walk.MsgBoxIconInformation)
	})

	indicateMenu, err := walk.NewMenu()
	if err != nil {
		return fmt.Errorf("create indicate menu: %w", err)
	}
	for _, i := range numcaps.Indications {
		i := i
		a := walk.NewAction()
		if err := a.SetText(escapeMenuText(i.String())); err != nil {
			return err
		}
		if err := a.SetCheckable(true); err != nil {
			return err
		}
		a.Triggered().Attach(func() { t.setIndication(i) })
		if err := indicateMenu.Actions().Add(a); err != nil {
			return err
		}
		icon.indicate[i] = a
	}
	indicate := walk.NewMenuAction(indicateMenu)
	if err := indicate.SetText("Indicate"); err != nil {
		return err
	}

	if icon.recapMenu, err = walk.NewMenu(); err != nil {
		return fmt.Errorf("create recap menu: %w", err)
	}
	icon.recapAction = walk.NewMenuAction(icon.recapMenu)
	if err := icon.recapAction.SetText(escapeMenuText(recapTitle)); err != nil {
		return err
	}

	if icon.relayoutMenu, err = walk.NewMenu(); err != nil {
		return fmt.Errorf("create relayout menu: %w", err)
	}
	icon.relayoutAction = walk.NewMenuAction(icon.relayoutMenu)
	if err := icon.relayoutAction.SetText(escapeMenuText(relayoutTitle)); err != nil {
		return err
	}

	exit := walk.NewAction()
	if err := exit.SetText("Exit"); err != nil {
		return err
	}
	exit.Triggered().Attach(func() { walk.App().Exit(0) })

	for _, a := range []*walk.Action{
		about,
		indicate,
		walk.NewSeparatorAction(),
		icon.recapAction,
		icon.relayoutAction,
		walk.NewSeparatorAction(),
		exit,
	} {
		if err := actions.Add(a); err != nil {
			return err
		}
	}

	return nil
}

func (t *tray) setIndication(i numcaps.Indication) {
	if err := t.agent.SetIndication(i); err != nil {
		t.log.Errorw("set indication", "indication", i, "error", err)
	}
	t.updateChecks()
}

func (t *tray) updateChecks() {
	current := t.agent.Indication()
	for _, icon := range t.icons {
		for i, a := range icon.indicate {
			_ = a.SetChecked(i == current)
		}
	}
}

func (t *tray) refreshMenus(icon *trayIcon) {
	recapMenu, relayoutMenu := t.agent.Menus()

	if err := t.fillSubmenu(icon.recapAction, icon.recapMenu, recapMenu); err != nil {
		t.log.Errorw("fill recap menu", "error", err)
	}
	if err := t.fillSubmenu(icon.relayoutAction, icon.relayoutMenu, relayoutMenu); err != nil {
		t.log.Errorw("fill relayout menu", "error", err)
	}
}

func (t *tray) fillSubmenu(action *walk.Action, menu *walk.Menu, sub numcaps.Submenu) error {
	actions := menu.Actions()
	if err := actions.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}

	if err := action.SetEnabled(sub.Enabled); err != nil {
		return err
	}
	if err := action.SetToolTip(sub.ToolTip); err != nil {
		return err
	}
	if !sub.Enabled {
		return nil
	}

	header := walk.NewAction()
	if err := header.SetText(escapeMenuText(sub.Header)); err != nil {
		return err
	}
	if err := header.SetEnabled(false); err != nil {
		return err
	}
	if err := actions.Add(header); err != nil {
		return err
	}
	if err := actions.Add(walk.NewSeparatorAction()); err != nil {
		return err
	}

	for _, e := range sub.Entries {
		value := e.Value
		a := walk.NewAction()
		if err := a.SetText(escapeMenuText(e.Text)); err != nil {
			return err
		}
		a.Triggered().Attach(func() {
			if err := t.agent.Copy(value); err != nil {
				t.log.Errorw("copy transformed text", "error", err)
			}
		})
		if err := actions.Add(a); err != nil {
			return err
		}
	}

	return nil
}

func (t *tray) ShowState(key numcaps.LockKey) error {
	icon, ok := t.icons[key.Key]
	if !ok {
		return fmt.Errorf("no icon for %s", key.Title())
	}
	if err := icon.ni.SetIcon(t.images[key.Icon()]); err != nil {
		return fmt.Errorf("set icon: %w", err)
	}
	if err := icon.ni.SetToolTip(key.Tooltip()); err != nil {
		return fmt.Errorf("set tooltip: %w", err)
	}
	return nil
}

func (t *tray) SetVisible(key numcaps.Key, visible bool) error {
	icon, ok := t.icons[key]
	if !ok {
		return fmt.Errorf("no icon for %s", key.Title())
	}
	return icon.ni.SetVisible(visible)
}

func (t *tray) dispose() {
	for _, icon := range t.icons {
		_ = icon.ni.SetVisible(false)
	}
	for _, icon := range t.icons {
		if err := icon.ni.Dispose(); err != nil {
			t.log.Warnw("dispose notify icon", "error", err)
		}
	}
	for _, img := range t.images {
		img.Dispose()
	}
}

// escapeMenuText keeps "&" from turning the next letter into a mnemonic.
func escapeMenuText(s string) string {
	return strings.ReplaceAll(s, "&", "&&")
}
