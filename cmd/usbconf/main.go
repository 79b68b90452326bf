package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/usbconf/internal/application"
	"github.com/eugenenazirov/usbconf/internal/config"
	"github.com/eugenenazirov/usbconf/internal/logging"
	"github.com/eugenenazirov/usbconf/internal/render"
)

// cliFlags collects raw flag values before they are turned into typed
// overrides. Sentinel defaults (-1, empty string) mean "not supplied".
type cliFlags struct {
	configFile   string
	manifestFile string
	mcu          string
	osAbs        string
	debug        int
	memSection   string
	memAlign     int
	ep0Size      int
	maxSpeed     string
	format       string
	output       string
	packageName  string
	guard        string
	verbose      bool
}

func main() {
	app := kingpin.New("usbconf", "USB stack configuration resolver - produces the build-time constant set for the device and host stack engines")

	var flags cliFlags
	app.Flag("config", "Path to YAML overrides file").StringVar(&flags.configFile)
	app.Flag("manifest", "Path to board manifest JSON providing platform hints").StringVar(&flags.manifestFile)
	app.Flag("mcu", "Target MCU family (none, samd51, rp2040, esp32s2)").StringVar(&flags.mcu)
	app.Flag("os", "OS abstraction (none, freertos, pico, zephyr)").StringVar(&flags.osAbs)
	app.Flag("debug", "Stack debug verbosity level").Default("-1").IntVar(&flags.debug)
	app.Flag("mem-section", "Linker section for transfer buffers").StringVar(&flags.memSection)
	app.Flag("mem-align", "Transfer buffer alignment in bytes").Default("-1").IntVar(&flags.memAlign)
	app.Flag("ep0-size", "Control endpoint max packet size").Default("-1").IntVar(&flags.ep0Size)
	app.Flag("max-speed", "Device link speed cap (default, low, full, high)").StringVar(&flags.maxSpeed)
	app.Flag("format", "Output format (header, go, json)").Default("header").StringVar(&flags.format)
	app.Flag("output", "Output file, - for stdout").Default("-").StringVar(&flags.output)
	app.Flag("package", "Package name for the go format").Default("usbcfg").StringVar(&flags.packageName)
	app.Flag("guard", "Include guard for the header format").Default("_TUSB_CONFIG_H_").StringVar(&flags.guard)
	app.Flag("verbose", "Enable debug logging").BoolVar(&flags.verbose)

	kingpin.MustParse(app.Parse(os.Args[1:]))

	overrides := buildOverrides(&flags)

	output, err := buildOutput(&flags)
	if err != nil {
		panic(fmt.Sprintf("invalid output options: %v", err))
	}

	logger, err := logging.New(flags.verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := application.New(overrides, output, logger).Run(); err != nil {
		logger.Fatal("configuration resolution failed", zap.Error(err))
	}
}

// buildOverrides converts raw flags into CLI overrides, mapping sentinel
// defaults to "not supplied".
func buildOverrides(flags *cliFlags) *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile:   flags.configFile,
		ManifestFile: flags.manifestFile,
	}

	if flags.mcu != "" {
		overrides.MCU = &flags.mcu
	}
	if flags.osAbs != "" {
		overrides.OS = &flags.osAbs
	}
	if flags.debug >= 0 {
		overrides.Debug = &flags.debug
	}
	if flags.memSection != "" {
		overrides.MemSection = &flags.memSection
	}
	if flags.memAlign > 0 {
		overrides.MemAlign = &flags.memAlign
	}
	if flags.ep0Size > 0 {
		overrides.Endpoint0Size = &flags.ep0Size
	}
	if flags.maxSpeed != "" {
		overrides.MaxSpeed = &flags.maxSpeed
	}

	return overrides
}

func buildOutput(flags *cliFlags) (application.Output, error) {
	format, err := render.ParseFormat(flags.format)
	if err != nil {
		return application.Output{}, err
	}

	return application.Output{
		Format:  format,
		Path:    flags.output,
		Package: flags.packageName,
		Guard:   flags.guard,
	}, nil
}
