// Package options provides shared utilities for option validation.
package options

import "errors"

// ValidateSingleInputSource ensures exactly one input source is specified.
// noSourceMsg is returned when no source is set, multiSourceMsg when more than one is.
func ValidateSingleInputSource(noSourceMsg, multiSourceMsg string, sources ...bool) error {
	count := 0
	for _, set := range sources {
		if set {
			count++
		}
	}

	switch {
	case count == 0:
		return errors.New(noSourceMsg)
	case count > 1:
		return errors.New(multiSourceMsg)
	}
	return nil
}
