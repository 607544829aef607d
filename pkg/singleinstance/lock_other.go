//go:build !windows

package singleinstance

import "errors"

var ErrAlreadyRunning = errors.New("another instance is already running")

// Lock is a no-op outside windows.
type Lock struct{}

func TryLock(string) (*Lock, error) { return &Lock{}, nil }

func (l *Lock) Release() error { return nil }

func MutexName(app string) string { return app }
