package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/eugenenazirov/usbconf/internal/resolve"
)

// Format selects the output the resolved constant set is rendered as.
type Format string

const (
	// FormatHeader emits a C header consumable by the stack's build.
	FormatHeader Format = "header"
	// FormatGo emits a Go constants file.
	FormatGo Format = "go"
	// FormatJSON emits a machine-readable summary.
	FormatJSON Format = "json"
)

// ParseFormat converts a CLI flag value into a Format.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatHeader:
		return FormatHeader, nil
	case FormatGo:
		return FormatGo, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", raw)
	}
}

// Option configures rendering behaviour.
type Option func(*renderer)

// WithHeaderGuard overrides the include guard used by the header format.
func WithHeaderGuard(guard string) Option {
	return func(r *renderer) {
		if guard != "" {
			r.headerGuard = guard
		}
	}
}

// WithPackage overrides the package name used by the Go format.
func WithPackage(name string) Option {
	return func(r *renderer) {
		if name != "" {
			r.packageName = name
		}
	}
}

type renderer struct {
	headerGuard string
	packageName string
}

// Render writes the resolved constant set to w in the requested format.
// Rendering only reads cfg; the configuration is never modified.
func Render(w io.Writer, cfg resolve.Config, format Format, opts ...Option) error {
	r := renderer{
		headerGuard: "_TUSB_CONFIG_H_",
		packageName: "usbcfg",
	}
	for _, opt := range opts {
		opt(&r)
	}

	switch format {
	case FormatHeader:
		return r.renderHeader(w, cfg)
	case FormatGo:
		return r.renderGo(w, cfg)
	case FormatJSON:
		return r.renderJSON(w, cfg)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// jsonConfig mirrors resolve.Config with stable snake_case field names.
type jsonConfig struct {
	MCU   string `json:"mcu"`
	OS    string `json:"os"`
	Debug int    `json:"debug"`

	DeviceEnabled bool `json:"device_enabled"`
	HostEnabled   bool `json:"host_enabled"`

	MemSection string `json:"mem_section"`
	MemAlign   int    `json:"mem_align"`

	DeviceMaxSpeed      string `json:"device_max_speed"`
	DeviceEndpoint0Size int    `json:"device_endpoint0_size"`
	DeviceHID           int    `json:"device_hid"`
	DeviceCDC           int    `json:"device_cdc"`
	DeviceMSC           int    `json:"device_msc"`
	DeviceMIDI          int    `json:"device_midi"`
	DeviceVendor        int    `json:"device_vendor"`
	DeviceHIDBufferSize int    `json:"device_hid_buffer_size"`

	HostEnumerationBufferSize int `json:"host_enumeration_buffer_size"`
	HostHub                   int `json:"host_hub"`
	HostCDC                   int `json:"host_cdc"`
	HostHID                   int `json:"host_hid"`
	HostMSC                   int `json:"host_msc"`
	HostVendor                int `json:"host_vendor"`
	HostDeviceMax             int `json:"host_device_max"`
}

func (r *renderer) renderJSON(w io.Writer, cfg resolve.Config) error {
	out := jsonConfig{
		MCU:                       cfg.MCU.String(),
		OS:                        cfg.OS.String(),
		Debug:                     cfg.Debug,
		DeviceEnabled:             cfg.DeviceEnabled,
		HostEnabled:               cfg.HostEnabled,
		MemSection:                cfg.MemSection,
		MemAlign:                  cfg.MemAlign,
		DeviceMaxSpeed:            cfg.DeviceMaxSpeed.String(),
		DeviceEndpoint0Size:       cfg.DeviceEndpoint0Size,
		DeviceHID:                 cfg.DeviceHID,
		DeviceCDC:                 cfg.DeviceCDC,
		DeviceMSC:                 cfg.DeviceMSC,
		DeviceMIDI:                cfg.DeviceMIDI,
		DeviceVendor:              cfg.DeviceVendor,
		DeviceHIDBufferSize:       cfg.DeviceHIDBufferSize,
		HostEnumerationBufferSize: cfg.HostEnumerationBufferSize,
		HostHub:                   cfg.HostHub,
		HostCDC:                   cfg.HostCDC,
		HostHID:                   cfg.HostHID,
		HostMSC:                   cfg.HostMSC,
		HostVendor:                cfg.HostVendor,
		HostDeviceMax:             cfg.HostDeviceMax,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func (r *renderer) renderGo(w io.Writer, cfg resolve.Config) error {
	var b strings.Builder

	b.WriteString("// Code generated by usbconf. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", r.packageName)
	b.WriteString("const (\n")
	fmt.Fprintf(&b, "\tMCU        = %q\n", cfg.MCU.String())
	fmt.Fprintf(&b, "\tOS         = %q\n", cfg.OS.String())
	fmt.Fprintf(&b, "\tDebugLevel = %d\n\n", cfg.Debug)
	fmt.Fprintf(&b, "\tDeviceEnabled = %t\n", cfg.DeviceEnabled)
	fmt.Fprintf(&b, "\tHostEnabled   = %t\n\n", cfg.HostEnabled)
	fmt.Fprintf(&b, "\tMemSection = %q\n", cfg.MemSection)
	fmt.Fprintf(&b, "\tMemAlign   = %d\n\n", cfg.MemAlign)
	fmt.Fprintf(&b, "\tDeviceMaxSpeed      = %q\n", cfg.DeviceMaxSpeed.String())
	fmt.Fprintf(&b, "\tDeviceEndpoint0Size = %d\n", cfg.DeviceEndpoint0Size)
	fmt.Fprintf(&b, "\tDeviceHID           = %d\n", cfg.DeviceHID)
	fmt.Fprintf(&b, "\tDeviceCDC           = %d\n", cfg.DeviceCDC)
	fmt.Fprintf(&b, "\tDeviceMSC           = %d\n", cfg.DeviceMSC)
	fmt.Fprintf(&b, "\tDeviceMIDI          = %d\n", cfg.DeviceMIDI)
	fmt.Fprintf(&b, "\tDeviceVendor        = %d\n", cfg.DeviceVendor)
	fmt.Fprintf(&b, "\tDeviceHIDBufferSize = %d\n\n", cfg.DeviceHIDBufferSize)
	fmt.Fprintf(&b, "\tHostEnumerationBufferSize = %d\n", cfg.HostEnumerationBufferSize)
	fmt.Fprintf(&b, "\tHostHub       = %d\n", cfg.HostHub)
	fmt.Fprintf(&b, "\tHostCDC       = %d\n", cfg.HostCDC)
	fmt.Fprintf(&b, "\tHostHID       = %d\n", cfg.HostHID)
	fmt.Fprintf(&b, "\tHostMSC       = %d\n", cfg.HostMSC)
	fmt.Fprintf(&b, "\tHostVendor    = %d\n", cfg.HostVendor)
	fmt.Fprintf(&b, "\tHostDeviceMax = %d\n", cfg.HostDeviceMax)
	b.WriteString(")\n")

	_, err := io.WriteString(w, b.String())
	return err
}
