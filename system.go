// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kodi

import "context"

// System controls power and hardware.
type System struct {
	invoke InvokeFunc
}

// EjectOpticalDrive ejects or closes the optical drive tray.
func (s *System) EjectOpticalDrive(ctx context.Context) error {
	return invokeOK(ctx, s.invoke, "System.EjectOpticalDrive", nil)
}

// GetProperties returns the named capabilities, e.g. "canshutdown" and
// "cansuspend".
func (s *System) GetProperties(ctx context.Context, properties ...string) (map[string]bool, error) {
	return invokeInto[map[string]bool](ctx, s.invoke, "System.GetProperties", propertiesParams{nonNil(properties)})
}

func (s *System) Hibernate(ctx context.Context) error {
	return invokeOK(ctx, s.invoke, "System.Hibernate", nil)
}

func (s *System) Reboot(ctx context.Context) error {
	return invokeOK(ctx, s.invoke, "System.Reboot", nil)
}

func (s *System) Shutdown(ctx context.Context) error {
	return invokeOK(ctx, s.invoke, "System.Shutdown", nil)
}

func (s *System) Suspend(ctx context.Context) error {
	return invokeOK(ctx, s.invoke, "System.Suspend", nil)
}
