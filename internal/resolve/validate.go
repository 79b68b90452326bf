package resolve

import (
	"fmt"

	"go.uber.org/multierr"
)

// Descriptor and transfer-unit sizes used by the adequacy checks.
const (
	// deviceDescriptorLen is the fixed length of a USB device descriptor.
	deviceDescriptorLen = 18
	// configDescriptorLen is the length of a configuration descriptor header.
	configDescriptorLen = 9
	// hidInterfaceSetLen is the descriptor footprint of one HID interface:
	// interface (9) + HID (9) + interrupt endpoint (7).
	hidInterfaceSetLen = 25
	// minHIDTransferLen is the smallest useful HID transfer: a report ID
	// byte plus an 8-byte boot report.
	minHIDTransferLen = 9
)

// Validate checks the resolved constant set for latent misconfigurations
// the resolver itself cannot reject. Every diagnostic is collected; callers
// see all problems at once rather than the first one found. Any error is
// fatal for the build producing this configuration.
func Validate(cfg Config) error {
	var result error

	if !validEndpoint0Size(cfg.DeviceEndpoint0Size) {
		result = multierr.Append(result, fmt.Errorf("endpoint 0 size %d: %w", cfg.DeviceEndpoint0Size, ErrEndpoint0Size))
	}

	if cfg.MemAlign < 1 || cfg.MemAlign&(cfg.MemAlign-1) != 0 {
		result = multierr.Append(result, fmt.Errorf("alignment %d: %w", cfg.MemAlign, ErrMemAlign))
	}

	if cfg.DeviceHID > 0 && cfg.DeviceHIDBufferSize < minHIDTransferLen {
		result = multierr.Append(result, fmt.Errorf("HID buffer %d bytes, need at least %d: %w",
			cfg.DeviceHIDBufferSize, minHIDTransferLen, ErrHIDBufferTooSmall))
	}

	if cfg.HostEnabled {
		if need := enumerationSetLen(cfg.HostHID); cfg.HostEnumerationBufferSize < need {
			result = multierr.Append(result, fmt.Errorf("enumeration buffer %d bytes, need at least %d: %w",
				cfg.HostEnumerationBufferSize, need, ErrEnumerationBufferTooSmall))
		}
	}

	if cfg.HostDeviceMax != HostDeviceCapacity(cfg.HostHub) {
		result = multierr.Append(result, fmt.Errorf("capacity %d with %d hubs: %w",
			cfg.HostDeviceMax, cfg.HostHub, ErrDeviceCapacityMismatch))
	}

	return result
}

// validEndpoint0Size reports whether control hardware accepts the size.
// USB 2.0 limits endpoint 0 to 8, 16, 32 or 64 bytes.
func validEndpoint0Size(size int) bool {
	switch size {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// enumerationSetLen is the worst-case descriptor blob read while enumerating
// a composite device exposing hidInterfaces HID interfaces.
func enumerationSetLen(hidInterfaces int) int {
	need := deviceDescriptorLen
	if hidInterfaces > 0 {
		need += configDescriptorLen + hidInterfaces*hidInterfaceSetLen
	}
	return need
}
