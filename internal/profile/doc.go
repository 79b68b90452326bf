// Package profile defines the platform identity vocabulary of the USB stack
// configuration: MCU families, OS abstractions, link speeds, and the
// build-environment hints that imply an MCU family when no explicit override
// is supplied.
package profile
