// Package application wires the resolution pipeline together: configuration
// sources, resolver, validation, and rendering. It keeps the main package
// focused on CLI parsing and orchestration.
package application
