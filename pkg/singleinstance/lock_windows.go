//go:build windows

package singleinstance

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
)

var ErrAlreadyRunning = errors.New("another instance is already running")

// Lock holds a named mutex. Windows releases it when the process exits.
type Lock struct {
	handle windows.Handle
}

func TryLock(name string) (*Lock, error) {
	if name == "" {
		return nil, errors.New("mutex name is required")
	}

	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, fmt.Errorf("encode mutex name %q: %w", name, err)
	}

	h, err := windows.CreateMutex(nil, true, namePtr)
	if errors.Is(err, windows.ERROR_ALREADY_EXISTS) {
		if h != 0 {
			_ = windows.CloseHandle(h)
		}
		return nil, ErrAlreadyRunning
	}
	if err != nil {
		if h != 0 {
			_ = windows.CloseHandle(h)
		}
		return nil, fmt.Errorf("create mutex %q: %w", name, err)
	}

	return &Lock{handle: h}, nil
}

// Release is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.handle == 0 {
		return nil
	}
	err := windows.CloseHandle(l.handle)
	l.handle = 0
	return err
}

// MutexName is scoped to the login session.
func MutexName(app string) string {
	return `Local\` + app
}
