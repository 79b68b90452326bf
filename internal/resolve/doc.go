// Package resolve turns partial external input (overrides and platform
// hints) into the complete, immutable constant set the USB stack compiles
// against: override-wins-over-default cascades, a fixed class capacity
// table, and one value derived from another. Validate performs the
// build-time adequacy checks the resolution step itself cannot express.
package resolve
