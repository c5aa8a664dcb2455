package crypto

import (
	"errors"
	"fmt"
)

// PrintMode Selects the textual form of a value. The zero value never reveals secrets.
type PrintMode int

const (
	// PrintObfuscated Scalars print ObfuscatedPlaceholder. Points are public and print as PrintClear.
	PrintObfuscated PrintMode = iota
	// PrintClear Full 0x-prefixed lowercase hex
	PrintClear
	PrintHexLower
	PrintHexUpper
)

// ObfuscatedPlaceholder Contains no hex digits, so it cannot leak any part of a secret
const ObfuscatedPlaceholder = "[****]"

var ErrFormat = errors.New("malformed input")

var printModeNames = [...]string{
	PrintObfuscated: "obfuscated",
	PrintClear:      "clear",
	PrintHexLower:   "hex-lower",
	PrintHexUpper:   "hex-upper",
}

func (m PrintMode) String() string {
	if m < 0 || int(m) >= len(printModeNames) {
		return fmt.Sprintf("PrintMode(%d)", int(m))
	}
	return printModeNames[m]
}

func ParsePrintMode(s string) (PrintMode, error) {
	for i, name := range printModeNames {
		if name == s {
			return PrintMode(i), nil
		}
	}
	return PrintObfuscated, fmt.Errorf("%w: unknown print mode %q", ErrFormat, s)
}

func formatError(kind string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrFormat, kind, err)
}
