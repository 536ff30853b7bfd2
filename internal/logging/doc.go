// Package logging provides the zerolog setup shared by the driver and
// benchmark CLIs, so both report calculation steps in the same format.
package logging
