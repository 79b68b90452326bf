package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/usbconf/internal/profile"
	"github.com/eugenenazirov/usbconf/internal/resolve"
)

// ToolVersion is checked against the `requires` constraint of an overrides
// file before any of its values are applied.
const ToolVersion = "0.4.0"

// yamlOverrides represents the overrides file structure. Pointer fields
// distinguish "absent" from a zero value, so debug: 0 is a real override.
type yamlOverrides struct {
	Requires      string  `yaml:"requires"`
	MCU           *string `yaml:"mcu"`
	OS            *string `yaml:"os"`
	Debug         *int    `yaml:"debug"`
	MemSection    *string `yaml:"mem_section"`
	MemAlign      *int    `yaml:"mem_align"`
	Endpoint0Size *int    `yaml:"endpoint0_size"`
	MaxSpeed      *string `yaml:"max_speed"`
}

// CLIOverrides holds command-line flag overrides.
type CLIOverrides struct {
	ConfigFile    string
	ManifestFile  string
	MCU           *string
	OS            *string
	Debug         *int
	MemSection    *string
	MemAlign      *int
	Endpoint0Size *int
	MaxSpeed      *string
}

// Load gathers overrides and platform hints from multiple sources with
// precedence: CLI flags > YAML overrides file > Environment variables.
// Hints are collected from the environment and the board manifest; they are
// not overrides and carry no precedence among themselves.
func Load(cli *CLIOverrides) (resolve.Overrides, resolve.Hints, error) {
	ov := resolve.Overrides{}
	hints := hintsFromEnv()

	applyEnvOverrides(&ov)

	if cli != nil && cli.ManifestFile != "" {
		manifestHints, err := hintsFromManifest(cli.ManifestFile)
		if err != nil {
			return resolve.Overrides{}, nil, fmt.Errorf("load board manifest: %w", err)
		}
		for h := range manifestHints {
			hints[h] = true
		}
	}

	if cli != nil && cli.ConfigFile != "" {
		yamlOv, err := loadFromFile(cli.ConfigFile)
		if err != nil {
			return resolve.Overrides{}, nil, fmt.Errorf("load overrides file: %w", err)
		}
		if err := checkRequires(yamlOv.Requires); err != nil {
			return resolve.Overrides{}, nil, err
		}
		if err := applyYAMLOverrides(&ov, yamlOv); err != nil {
			return resolve.Overrides{}, nil, err
		}
	}

	if cli != nil {
		if err := applyCLIOverrides(&ov, cli); err != nil {
			return resolve.Overrides{}, nil, err
		}
	}

	return ov, hints, nil
}

// loadFromFile loads overrides from a YAML file.
func loadFromFile(path string) (*yamlOverrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var yamlOv yamlOverrides
	if err := yaml.Unmarshal(data, &yamlOv); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	return &yamlOv, nil
}

// checkRequires enforces the overrides file's minimum tool version.
func checkRequires(constraint string) error {
	constraint = strings.TrimSpace(constraint)
	if constraint == "" {
		return nil
	}

	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("parse requires constraint %q: %w", constraint, err)
	}

	version, err := semver.NewVersion(ToolVersion)
	if err != nil {
		return fmt.Errorf("parse tool version: %w", err)
	}

	if !c.Check(version) {
		return fmt.Errorf("overrides file requires tool version %s, running %s", constraint, ToolVersion)
	}
	return nil
}

// hintsFromEnv collects platform hints exported by the build environment.
// A hint is active when its variable is set non-empty, mirroring a toolchain
// core define.
func hintsFromEnv() resolve.Hints {
	hints := resolve.Hints{}
	for _, h := range profile.HintOrder() {
		if strings.TrimSpace(os.Getenv(string(h))) != "" {
			hints[h] = true
		}
	}
	return hints
}

// applyEnvOverrides applies environment variable overrides. Unparseable
// values are skipped; explicit sources (file, flags) report errors instead.
func applyEnvOverrides(ov *resolve.Overrides) {
	if raw := strings.TrimSpace(os.Getenv("USBCONF_MCU")); raw != "" {
		if mcu, err := profile.ParseMCU(raw); err == nil {
			ov.MCU = &mcu
		}
	}

	if raw := strings.TrimSpace(os.Getenv("USBCONF_OS")); raw != "" {
		if osAbs, err := profile.ParseOS(raw); err == nil {
			ov.OS = &osAbs
		}
	}

	if raw := strings.TrimSpace(os.Getenv("USBCONF_DEBUG")); raw != "" {
		if level, err := strconv.Atoi(raw); err == nil && level >= 0 {
			ov.Debug = &level
		}
	}
}

// applyYAMLOverrides applies overrides-file values.
func applyYAMLOverrides(ov *resolve.Overrides, yamlOv *yamlOverrides) error {
	if yamlOv.MCU != nil {
		mcu, err := profile.ParseMCU(*yamlOv.MCU)
		if err != nil {
			return fmt.Errorf("overrides file: %w", err)
		}
		ov.MCU = &mcu
	}

	if yamlOv.OS != nil {
		osAbs, err := profile.ParseOS(*yamlOv.OS)
		if err != nil {
			return fmt.Errorf("overrides file: %w", err)
		}
		ov.OS = &osAbs
	}

	if yamlOv.Debug != nil {
		ov.Debug = yamlOv.Debug
	}

	if yamlOv.MemSection != nil {
		ov.MemSection = yamlOv.MemSection
	}

	if yamlOv.MemAlign != nil {
		ov.MemAlign = yamlOv.MemAlign
	}

	if yamlOv.Endpoint0Size != nil {
		ov.Endpoint0Size = yamlOv.Endpoint0Size
	}

	if yamlOv.MaxSpeed != nil {
		speed, err := profile.ParseSpeed(*yamlOv.MaxSpeed)
		if err != nil {
			return fmt.Errorf("overrides file: %w", err)
		}
		ov.MaxSpeed = &speed
	}

	return nil
}

// applyCLIOverrides applies command-line flag overrides (highest precedence).
func applyCLIOverrides(ov *resolve.Overrides, cli *CLIOverrides) error {
	if cli.MCU != nil && *cli.MCU != "" {
		mcu, err := profile.ParseMCU(*cli.MCU)
		if err != nil {
			return err
		}
		ov.MCU = &mcu
	}

	if cli.OS != nil && *cli.OS != "" {
		osAbs, err := profile.ParseOS(*cli.OS)
		if err != nil {
			return err
		}
		ov.OS = &osAbs
	}

	if cli.Debug != nil && *cli.Debug >= 0 {
		ov.Debug = cli.Debug
	}

	if cli.MemSection != nil && *cli.MemSection != "" {
		ov.MemSection = cli.MemSection
	}

	if cli.MemAlign != nil && *cli.MemAlign > 0 {
		ov.MemAlign = cli.MemAlign
	}

	if cli.Endpoint0Size != nil && *cli.Endpoint0Size > 0 {
		ov.Endpoint0Size = cli.Endpoint0Size
	}

	if cli.MaxSpeed != nil && *cli.MaxSpeed != "" {
		speed, err := profile.ParseSpeed(*cli.MaxSpeed)
		if err != nil {
			return err
		}
		ov.MaxSpeed = &speed
	}

	return nil
}
