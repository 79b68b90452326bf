package resolve

import "errors"

var (
	// ErrAmbiguousHints is returned when more than one platform hint is active in the build environment.
	ErrAmbiguousHints = errors.New("multiple platform hints are active; at most one may be set")
	// ErrEndpoint0Size indicates an endpoint 0 size the control hardware cannot accept.
	ErrEndpoint0Size = errors.New("endpoint 0 size must be 8, 16, 32 or 64")
	// ErrMemAlign indicates an alignment DMA engines cannot honour.
	ErrMemAlign = errors.New("memory alignment must be a power of two")
	// ErrHIDBufferTooSmall indicates the device HID buffer cannot hold a report ID plus the minimum payload.
	ErrHIDBufferTooSmall = errors.New("device HID buffer is too small for the smallest report")
	// ErrEnumerationBufferTooSmall indicates the host enumeration buffer cannot hold the descriptors read during enumeration.
	ErrEnumerationBufferTooSmall = errors.New("host enumeration buffer is too small for the descriptor set")
	// ErrDeviceCapacityMismatch indicates a host device capacity inconsistent with the value derived from the hub count.
	ErrDeviceCapacityMismatch = errors.New("host device capacity does not match the hub-derived value")
)
