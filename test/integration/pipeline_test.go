package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/usbconf/internal/application"
	"github.com/eugenenazirov/usbconf/internal/config"
	"github.com/eugenenazirov/usbconf/internal/render"
	"github.com/eugenenazirov/usbconf/internal/resolve"
)

func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"USBCONF_MCU", "USBCONF_OS", "USBCONF_DEBUG",
		"ARDUINO_ARCH_SAMD", "ARDUINO_ARCH_RP2040", "ARDUINO_ARCH_ESP32",
	} {
		t.Setenv(name, "")
	}
}

func runPipeline(t *testing.T, cli *config.CLIOverrides, format render.Format) string {
	t.Helper()

	var buf bytes.Buffer
	app := application.New(cli, application.Output{Format: format}, zaptest.NewLogger(t), application.WithStdout(&buf))
	if err := app.Run(); err != nil {
		t.Fatalf("pipeline returned error: %v", err)
	}
	return buf.String()
}

func decodeJSON(t *testing.T, out string) map[string]any {
	t.Helper()

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode pipeline output: %v", err)
	}
	return decoded
}

// No overrides at all: every option lands on its default and the hub-less
// capacity table derives a single attachable device.
func TestPipelineDefaults(t *testing.T) {
	clearEnv(t)

	out := decodeJSON(t, runPipeline(t, nil, render.FormatJSON))
	if out["mcu"] != "none" {
		t.Fatalf("expected sentinel MCU, got %v", out["mcu"])
	}
	if out["os"] != "none" || out["debug"] != float64(0) {
		t.Fatalf("expected OS/debug defaults, got %v / %v", out["os"], out["debug"])
	}
	if out["mem_align"] != float64(4) {
		t.Fatalf("expected default alignment 4, got %v", out["mem_align"])
	}
	if out["host_hub"] != float64(0) || out["host_device_max"] != float64(1) {
		t.Fatalf("expected hub-less capacity 1, got hub=%v max=%v", out["host_hub"], out["host_device_max"])
	}
}

// An endpoint 0 override flows through every stage and shows up in the
// rendered header instead of the default 64.
func TestPipelineEndpoint0Override(t *testing.T) {
	clearEnv(t)

	ep0 := 8
	out := runPipeline(t, &config.CLIOverrides{Endpoint0Size: &ep0}, render.FormatHeader)
	if !strings.Contains(out, "#define CFG_TUD_ENDPOINT0_SIZE    8") {
		t.Fatalf("expected overridden endpoint 0 size in header:\n%s", out)
	}
	if strings.Contains(out, "#define CFG_TUD_ENDPOINT0_SIZE    64") {
		t.Fatalf("default endpoint 0 size leaked into header:\n%s", out)
	}
}

// The full source chain: env hint beaten by YAML override beaten by a CLI
// flag, while untouched options keep their defaults.
func TestPipelinePrecedence(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARDUINO_ARCH_ESP32", "1")

	dir := t.TempDir()
	overridesPath := filepath.Join(dir, "overrides.yaml")
	if err := os.WriteFile(overridesPath, []byte("requires: \">= 0.3\"\nmcu: rp2040\ndebug: 1\n"), 0o600); err != nil {
		t.Fatalf("write overrides file: %v", err)
	}

	mcu := "samd51"
	out := decodeJSON(t, runPipeline(t, &config.CLIOverrides{ConfigFile: overridesPath, MCU: &mcu}, render.FormatJSON))

	if out["mcu"] != "samd51" {
		t.Fatalf("expected CLI flag to win over YAML and hint, got %v", out["mcu"])
	}
	if out["debug"] != float64(1) {
		t.Fatalf("expected YAML debug override to survive, got %v", out["debug"])
	}
	if out["device_endpoint0_size"] != float64(64) {
		t.Fatalf("expected untouched endpoint 0 default, got %v", out["device_endpoint0_size"])
	}
}

// A board manifest supplies the platform hint when no override is present.
func TestPipelineManifestHint(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "board.json")
	manifest := `{"build": {"arch": "rp2040", "defines": ["-DARDUINO_ARCH_RP2040"]}}`
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}

	out := runPipeline(t, &config.CLIOverrides{ManifestFile: manifestPath}, render.FormatHeader)
	if !strings.Contains(out, "OPT_MCU_RP2040") {
		t.Fatalf("expected RP2040 profile from manifest hint:\n%s", out)
	}
}

// Hub support grows the derived device capacity to the hub's port fan-out.
func TestHubCapacityDerivation(t *testing.T) {
	clearEnv(t)

	cfg, err := resolve.Resolve(resolve.Overrides{}, nil)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	cfg.HostHub = 2
	cfg.HostDeviceMax = resolve.HostDeviceCapacity(cfg.HostHub)
	if cfg.HostDeviceMax != 4 {
		t.Fatalf("expected capacity 4 with hub support, got %d", cfg.HostDeviceMax)
	}
	if err := resolve.Validate(cfg); err != nil {
		t.Fatalf("expected hub configuration to validate, got %v", err)
	}
}

// The rendered header round-trips against the layout the stack build expects.
func TestPipelineHeaderShape(t *testing.T) {
	clearEnv(t)
	t.Setenv("ARDUINO_ARCH_SAMD", "1")

	out := runPipeline(t, nil, render.FormatHeader)

	ordered := []string{
		"#ifndef _TUSB_CONFIG_H_",
		"// COMMON CONFIGURATION",
		"#define CFG_TUSB_MCU          OPT_MCU_SAMD51",
		"// DEVICE CONFIGURATION",
		"#define CFG_TUD_HID               3",
		"// HOST CONFIGURATION",
		"#define CFG_TUH_ENUMERATION_BUFSIZE 256",
		"#define CFG_TUH_DEVICE_MAX          1",
		"#endif /* _TUSB_CONFIG_H_ */",
	}

	last := -1
	for _, want := range ordered {
		idx := strings.Index(out, want)
		if idx < 0 {
			t.Fatalf("header missing %q:\n%s", want, out)
		}
		if idx < last {
			t.Fatalf("header sections out of order at %q:\n%s", want, out)
		}
		last = idx
	}
}
