package resolve

import "github.com/eugenenazirov/usbconf/internal/profile"

const (
	defaultDebug         = 0
	defaultMemAlign      = 4
	defaultEndpoint0Size = 64
)

// Resolve produces the complete constant set from partial external input.
// Resolution is a single pass in two phases: first every override-or-default
// option and the fixed capacity table are established, then the derived host
// device capacity is computed from the already-resolved hub count. The
// returned Config is immutable by convention; nothing in this package
// mutates it after return.
func Resolve(ov Overrides, hints Hints) (Config, error) {
	mcu, err := resolvePlatform(ov.MCU, hints)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		MCU:   mcu,
		OS:    resolveOS(ov.OS),
		Debug: resolveDebug(ov.Debug),

		DeviceEnabled: true,
		HostEnabled:   true,

		MemSection: resolveMemSection(ov.MemSection),
		MemAlign:   resolveMemAlign(ov.MemAlign),

		DeviceMaxSpeed:      resolveMaxSpeed(ov.MaxSpeed),
		DeviceEndpoint0Size: resolveEndpoint0(ov.Endpoint0Size),
	}

	applyCapacityTable(&cfg)
	cfg.HostDeviceMax = HostDeviceCapacity(cfg.HostHub)

	return cfg, nil
}

// resolvePlatform selects the MCU family. An explicit override wins and the
// hint set is not consulted at all; otherwise the hints are checked in
// priority order, falling through to MCUNone when none matches. More than
// one active recognised hint is rejected rather than resolved by list order.
func resolvePlatform(override *profile.MCU, hints Hints) (profile.MCU, error) {
	if override != nil {
		return *override, nil
	}

	active := 0
	for _, h := range profile.HintOrder() {
		if hints[h] {
			active++
		}
	}
	if active > 1 {
		return profile.MCUNone, ErrAmbiguousHints
	}

	for _, h := range profile.HintOrder() {
		if !hints[h] {
			continue
		}
		if mcu, ok := profile.MCUForHint(h); ok {
			return mcu, nil
		}
	}

	return profile.MCUNone, nil
}

func resolveOS(override *profile.OS) profile.OS {
	if override != nil {
		return *override
	}
	return profile.OSNone
}

func resolveDebug(override *int) int {
	if override != nil {
		return *override
	}
	return defaultDebug
}

func resolveMemSection(override *string) string {
	if override != nil {
		return *override
	}
	return ""
}

func resolveMemAlign(override *int) int {
	if override != nil {
		return *override
	}
	return defaultMemAlign
}

func resolveMaxSpeed(override *profile.Speed) profile.Speed {
	if override != nil {
		return *override
	}
	return profile.SpeedDefault
}

func resolveEndpoint0(override *int) int {
	if override != nil {
		return *override
	}
	return defaultEndpoint0Size
}

// applyCapacityTable assigns the fixed class counts and buffer sizes for
// this configuration: three device HID interfaces (mouse, keyboard, vendor)
// and a host side driving up to four HID interfaces on attached devices.
// These are direct values with no override mechanism.
func applyCapacityTable(cfg *Config) {
	cfg.DeviceHID = 3
	cfg.DeviceCDC = 0
	cfg.DeviceMSC = 0
	cfg.DeviceMIDI = 0
	cfg.DeviceVendor = 0
	cfg.DeviceHIDBufferSize = 64

	cfg.HostEnumerationBufferSize = 256
	cfg.HostHub = 0
	cfg.HostCDC = 0
	cfg.HostHID = 4
	cfg.HostMSC = 0
	cfg.HostVendor = 0
}

// HostDeviceCapacity derives the maximum number of concurrently attached
// non-hub devices from the hub count. A hub fans out to four downstream
// ports; without hub support only one directly attached device is possible.
func HostDeviceCapacity(hubCount int) int {
	if hubCount > 0 {
		return 4
	}
	return 1
}
