package profile

import (
	"fmt"
	"strings"
)

// MCU selects which microcontroller family's USB controller driver the
// stack compiles against. MCUNone means no family-specific driver is pulled
// in; a port must supply its own controller glue.
type MCU uint8

const (
	MCUNone MCU = iota
	MCUSAMD51
	MCURP2040
	MCUESP32S2
)

// String returns the canonical lowercase name used in overrides and output.
func (m MCU) String() string {
	switch m {
	case MCUNone:
		return "none"
	case MCUSAMD51:
		return "samd51"
	case MCURP2040:
		return "rp2040"
	case MCUESP32S2:
		return "esp32s2"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(m))
	}
}

// OS selects the operating-system abstraction layer the stack binds to.
// OSNone runs the stack bare-metal with no threading primitives.
type OS uint8

const (
	OSNone OS = iota
	OSFreeRTOS
	OSPico
	OSZephyr
)

func (o OS) String() string {
	switch o {
	case OSNone:
		return "none"
	case OSFreeRTOS:
		return "freertos"
	case OSPico:
		return "pico"
	case OSZephyr:
		return "zephyr"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(o))
	}
}

// Speed caps the device-role link speed. SpeedDefault means the maximum the
// hardware controller supports with its on-chip PHY.
type Speed uint8

const (
	SpeedDefault Speed = iota
	SpeedLow
	SpeedFull
	SpeedHigh
)

func (s Speed) String() string {
	switch s {
	case SpeedDefault:
		return "default"
	case SpeedLow:
		return "low"
	case SpeedFull:
		return "full"
	case SpeedHigh:
		return "high"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(s))
	}
}

// Hint is a build-environment define implying an MCU family. Hints come from
// toolchain core defines; a given build environment is expected to set at
// most one of them.
type Hint string

const (
	HintArduinoSAMD   Hint = "ARDUINO_ARCH_SAMD"
	HintArduinoRP2040 Hint = "ARDUINO_ARCH_RP2040"
	HintArduinoESP32  Hint = "ARDUINO_ARCH_ESP32"
)

// hintOrder is the priority order hints are consulted in when no explicit
// MCU override is present.
var hintOrder = []Hint{HintArduinoSAMD, HintArduinoRP2040, HintArduinoESP32}

var hintMCU = map[Hint]MCU{
	HintArduinoSAMD:   MCUSAMD51,
	HintArduinoRP2040: MCURP2040,
	HintArduinoESP32:  MCUESP32S2,
}

// archHint maps board-manifest architecture names to hints.
var archHint = map[string]Hint{
	"samd":   HintArduinoSAMD,
	"rp2040": HintArduinoRP2040,
	"esp32":  HintArduinoESP32,
}

// HintOrder returns a copy of the hint priority list.
func HintOrder() []Hint {
	out := make([]Hint, len(hintOrder))
	copy(out, hintOrder)
	return out
}

// MCUForHint maps a recognised hint to its MCU family.
func MCUForHint(h Hint) (MCU, bool) {
	m, ok := hintMCU[h]
	return m, ok
}

// HintForArch maps a board-manifest architecture name ("samd", "rp2040",
// "esp32") to the corresponding hint.
func HintForArch(arch string) (Hint, bool) {
	h, ok := archHint[strings.ToLower(strings.TrimSpace(arch))]
	return h, ok
}

// ParseMCU converts an override string into an MCU family.
func ParseMCU(raw string) (MCU, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return MCUNone, nil
	case "samd51":
		return MCUSAMD51, nil
	case "rp2040":
		return MCURP2040, nil
	case "esp32s2":
		return MCUESP32S2, nil
	default:
		return MCUNone, fmt.Errorf("unknown MCU family %q", raw)
	}
}

// ParseOS converts an override string into an OS abstraction.
func ParseOS(raw string) (OS, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none":
		return OSNone, nil
	case "freertos":
		return OSFreeRTOS, nil
	case "pico":
		return OSPico, nil
	case "zephyr":
		return OSZephyr, nil
	default:
		return OSNone, fmt.Errorf("unknown OS abstraction %q", raw)
	}
}

// ParseSpeed converts an override string into a device link speed cap.
func ParseSpeed(raw string) (Speed, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "default":
		return SpeedDefault, nil
	case "low":
		return SpeedLow, nil
	case "full":
		return SpeedFull, nil
	case "high":
		return SpeedHigh, nil
	default:
		return SpeedDefault, fmt.Errorf("unknown speed %q", raw)
	}
}
