package numcaps

import "testing"

func TestPollerInitPresentsEveryKey(t *testing.T) {
	keys := &fakeKeys{toggled: map[Key]bool{KeyNum: true}}
	presenter := newRecordingPresenter()
	p := NewPoller(keys, presenter)

	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	want := []LockKey{{Key: KeyNum, On: true}, {Key: KeyCaps, On: false}}
	if len(presenter.shown) != len(want) {
		t.Fatalf("shown = %+v, want %+v", presenter.shown, want)
	}
	for i := range want {
		if presenter.shown[i] != want[i] {
			t.Errorf("shown[%d] = %+v, want %+v", i, presenter.shown[i], want[i])
		}
	}
}

func TestPollerSyncOnlyPresentsChanges(t *testing.T) {
	keys := &fakeKeys{toggled: map[Key]bool{}}
	presenter := newRecordingPresenter()
	p := NewPoller(keys, presenter)
	if err := p.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	presenter.shown = nil

	if n, err := p.Sync(); n != 0 || err != nil {
		t.Fatalf("Sync() = (%d, %v) with nothing toggled", n, err)
	}
	if len(presenter.shown) != 0 {
		t.Fatalf("presented %+v without a change", presenter.shown)
	}

	keys.toggled[KeyCaps] = true
	if n, err := p.Sync(); n != 1 || err != nil {
		t.Fatalf("Sync() = (%d, %v), want one change", n, err)
	}
	if len(presenter.shown) != 1 || presenter.shown[0] != (LockKey{Key: KeyCaps, On: true}) {
		t.Fatalf("shown = %+v", presenter.shown)
	}
	if !p.State(KeyCaps).On {
		t.Fatalf("cached caps state not updated")
	}

	if n, _ := p.Sync(); n != 0 {
		t.Fatalf("second Sync() reported %d changes", n)
	}

	keys.toggled[KeyCaps] = false
	keys.toggled[KeyNum] = true
	if n, _ := p.Sync(); n != 2 {
		t.Fatalf("Sync() reported %d changes, want 2", n)
	}
}

func TestPollerSyncReportsPresenterErrors(t *testing.T) {
	keys := &fakeKeys{toggled: map[Key]bool{}}
	presenter := newRecordingPresenter()
	p := NewPoller(keys, presenter)

	keys.toggled[KeyNum] = true
	presenter.failOn = true
	n, err := p.Sync()
	if err == nil {
		t.Fatalf("Sync() error = nil, want presenter failure")
	}
	if n != 1 || !p.State(KeyNum).On {
		t.Fatalf("state not cached after failed presentation: n=%d state=%+v", n, p.State(KeyNum))
	}
}
