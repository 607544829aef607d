//go:build !windows

package main

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

var errUnsupported = errors.New("the tray is only available on windows")

func runTray(context.Context, agentDeps, *zap.SugaredLogger) error {
	return errUnsupported
}
