package resolve

import "github.com/eugenenazirov/usbconf/internal/profile"

// Overrides carries externally supplied configuration values. A nil field
// means "not supplied"; the resolver falls back to hints or defaults.
// Role flags and the class capacity table deliberately have no override
// fields: a build wanting a different role split or class mix is a different
// configuration, not an override of this one.
type Overrides struct {
	MCU           *profile.MCU
	OS            *profile.OS
	Debug         *int
	MemSection    *string
	MemAlign      *int
	Endpoint0Size *int
	MaxSpeed      *profile.Speed
}

// Hints is the set of platform hints observed in the build environment.
// At most one recognised hint is expected to be present; more than one is
// an ambiguity the resolver rejects.
type Hints map[profile.Hint]bool

// Config is the complete resolved constant set consumed by the stack
// engines and class drivers. It is constructed once by Resolve and never
// mutated afterwards.
type Config struct {
	MCU   profile.MCU
	OS    profile.OS
	Debug int

	// Role flags are fixed for this configuration.
	DeviceEnabled bool
	HostEnabled   bool

	// MemSection names the linker section transfer buffers are placed in;
	// empty means ordinary memory. MemAlign is the buffer alignment in bytes.
	MemSection string
	MemAlign   int

	DeviceMaxSpeed      profile.Speed
	DeviceEndpoint0Size int

	// Device-role class capacity table. A zero count compiles the class out.
	DeviceHID           int
	DeviceCDC           int
	DeviceMSC           int
	DeviceMIDI          int
	DeviceVendor        int
	DeviceHIDBufferSize int

	// Host-role class capacity table.
	HostEnumerationBufferSize int
	HostHub                   int
	HostCDC                   int
	HostHID                   int
	HostMSC                   int
	HostVendor                int

	// HostDeviceMax is derived from HostHub, never supplied directly.
	HostDeviceMax int
}
