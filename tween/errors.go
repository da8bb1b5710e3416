package tween

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingAddon is returned by Run when a colour property has no addon.
	ErrMissingAddon = errors.New("tween: color addon missed")
	// ErrNoTargetStyle is returned by Run when To was never called.
	ErrNoTargetStyle = errors.New("tween: no target style set")
)

// MissingAddonError names the property that required the missing addon.
type MissingAddonError struct {
	Property string
	Addon    string
}

func (e *MissingAddonError) Error() string {
	return fmt.Sprintf("%v: property %q requires %s", ErrMissingAddon, e.Property, e.Addon)
}

// Is makes MissingAddonError match ErrMissingAddon.
func (e *MissingAddonError) Is(target error) bool {
	return target == ErrMissingAddon
}
