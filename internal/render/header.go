package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/eugenenazirov/usbconf/internal/profile"
	"github.com/eugenenazirov/usbconf/internal/resolve"
)

// renderHeader emits the constant set as a C header in the layout the stack
// engines expect. Every value is fully resolved, so the output carries plain
// defines rather than the override-or-default conditionals of a hand-written
// configuration header.
func (r *renderer) renderHeader(w io.Writer, cfg resolve.Config) error {
	var b strings.Builder

	fmt.Fprintf(&b, "#ifndef %s\n", r.headerGuard)
	fmt.Fprintf(&b, "#define %s\n\n", r.headerGuard)
	b.WriteString("#ifdef __cplusplus\n extern \"C\" {\n#endif\n\n")

	b.WriteString("//--------------------------------------------------------------------\n")
	b.WriteString("// COMMON CONFIGURATION\n")
	b.WriteString("//--------------------------------------------------------------------\n\n")

	fmt.Fprintf(&b, "#define CFG_TUSB_MCU          %s\n", mcuSymbol(cfg.MCU))
	fmt.Fprintf(&b, "#define CFG_TUSB_OS           %s\n", osSymbol(cfg.OS))
	fmt.Fprintf(&b, "#define CFG_TUSB_DEBUG        %d\n\n", cfg.Debug)

	fmt.Fprintf(&b, "#define CFG_TUD_ENABLED       %d\n", boolFlag(cfg.DeviceEnabled))
	fmt.Fprintf(&b, "#define CFG_TUH_ENABLED       %d\n\n", boolFlag(cfg.HostEnabled))

	fmt.Fprintf(&b, "#define CFG_TUD_MAX_SPEED     %s\n\n", speedSymbol(cfg.DeviceMaxSpeed))

	fmt.Fprintf(&b, "#define CFG_TUSB_MEM_SECTION  %s\n", sectionAttribute(cfg.MemSection))
	fmt.Fprintf(&b, "#define CFG_TUSB_MEM_ALIGN    __attribute__ ((aligned(%d)))\n\n", cfg.MemAlign)

	b.WriteString("//--------------------------------------------------------------------\n")
	b.WriteString("// DEVICE CONFIGURATION\n")
	b.WriteString("//--------------------------------------------------------------------\n\n")

	fmt.Fprintf(&b, "#define CFG_TUD_ENDPOINT0_SIZE    %d\n\n", cfg.DeviceEndpoint0Size)

	fmt.Fprintf(&b, "#define CFG_TUD_HID               %d\n", cfg.DeviceHID)
	fmt.Fprintf(&b, "#define CFG_TUD_CDC               %d\n", cfg.DeviceCDC)
	fmt.Fprintf(&b, "#define CFG_TUD_MSC               %d\n", cfg.DeviceMSC)
	fmt.Fprintf(&b, "#define CFG_TUD_MIDI              %d\n", cfg.DeviceMIDI)
	fmt.Fprintf(&b, "#define CFG_TUD_VENDOR            %d\n\n", cfg.DeviceVendor)

	fmt.Fprintf(&b, "#define CFG_TUD_HID_EP_BUFSIZE    %d\n\n", cfg.DeviceHIDBufferSize)

	b.WriteString("//--------------------------------------------------------------------\n")
	b.WriteString("// HOST CONFIGURATION\n")
	b.WriteString("//--------------------------------------------------------------------\n\n")

	fmt.Fprintf(&b, "#define CFG_TUH_ENUMERATION_BUFSIZE %d\n\n", cfg.HostEnumerationBufferSize)

	fmt.Fprintf(&b, "#define CFG_TUH_HUB                 %d\n", cfg.HostHub)
	fmt.Fprintf(&b, "#define CFG_TUH_CDC                 %d\n", cfg.HostCDC)
	fmt.Fprintf(&b, "#define CFG_TUH_HID                 %d\n", cfg.HostHID)
	fmt.Fprintf(&b, "#define CFG_TUH_MSC                 %d\n", cfg.HostMSC)
	fmt.Fprintf(&b, "#define CFG_TUH_VENDOR              %d\n\n", cfg.HostVendor)

	fmt.Fprintf(&b, "#define CFG_TUH_DEVICE_MAX          %d\n\n", cfg.HostDeviceMax)

	b.WriteString("#ifdef __cplusplus\n }\n#endif\n\n")
	fmt.Fprintf(&b, "#endif /* %s */\n", r.headerGuard)

	_, err := io.WriteString(w, b.String())
	return err
}

func boolFlag(enabled bool) int {
	if enabled {
		return 1
	}
	return 0
}

// sectionAttribute renders the linker placement attribute; an empty section
// name resolves to an empty define, placing buffers in ordinary memory.
func sectionAttribute(section string) string {
	if section == "" {
		return ""
	}
	return fmt.Sprintf("__attribute__ (( section(%q) ))", section)
}

func mcuSymbol(m profile.MCU) string {
	switch m {
	case profile.MCUSAMD51:
		return "OPT_MCU_SAMD51"
	case profile.MCURP2040:
		return "OPT_MCU_RP2040"
	case profile.MCUESP32S2:
		return "OPT_MCU_ESP32S2"
	default:
		return "OPT_MCU_NONE"
	}
}

func osSymbol(o profile.OS) string {
	switch o {
	case profile.OSFreeRTOS:
		return "OPT_OS_FREERTOS"
	case profile.OSPico:
		return "OPT_OS_PICO"
	case profile.OSZephyr:
		return "OPT_OS_ZEPHYR"
	default:
		return "OPT_OS_NONE"
	}
}

func speedSymbol(s profile.Speed) string {
	switch s {
	case profile.SpeedLow:
		return "OPT_MODE_LOW_SPEED"
	case profile.SpeedFull:
		return "OPT_MODE_FULL_SPEED"
	case profile.SpeedHigh:
		return "OPT_MODE_HIGH_SPEED"
	default:
		return "OPT_MODE_DEFAULT_SPEED"
	}
}
