// Package namegen computes proposed file names from a mask and counter
// configuration.
//
// Generation is a pure function over (original name, original extension,
// config, position index): no filesystem access, no hidden state. The same
// inputs always produce the same output, which is what makes live previews
// and the later apply pass agree with each other.
//
// Masks are literal text. When the counter applies to a field, every
// "{counter}" token in that field's mask is replaced with the formatted
// counter value; a mask without the token gets the value appended.
package namegen

import (
	"fmt"
	"strconv"
	"strings"
)

// CounterToken is the placeholder replaced by the formatted counter value.
const CounterToken = "{counter}"

// Config is the rename configuration snapshot consumed per preview or
// rename pass. Values are copied in; callers may mutate their own copy
// freely between passes.
type Config struct {
	// NameMask is the template for the new base name.
	NameMask string

	// ExtMask is the template for the new extension (without leading dot).
	ExtMask string

	// KeepOriginalName keeps the original base name, ignoring NameMask.
	KeepOriginalName bool

	// KeepOriginalExt keeps the original extension, ignoring ExtMask.
	KeepOriginalExt bool

	// CounterEnabled turns the sequential counter on.
	CounterEnabled bool

	// CounterStart is the counter value for the first entry.
	CounterStart int

	// CounterIncrement is added per entry. Negative increments are allowed.
	CounterIncrement int

	// CounterPadding is the minimum digit width, zero-filled.
	CounterPadding int

	// CounterToName appends/substitutes the counter in the name field.
	CounterToName bool

	// CounterToExt appends/substitutes the counter in the extension field.
	CounterToExt bool
}

// ConfigError reports a malformed mask or counter configuration. It is
// surfaced inline in the preview rather than aborting the program.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid rename configuration: %s: %s", e.Field, e.Reason)
}

// Validate checks the static parts of the configuration.
func (c Config) Validate() error {
	if c.CounterPadding < 0 {
		return &ConfigError{Field: "counterPadding", Reason: "must not be negative"}
	}
	return nil
}

// CounterValue returns the counter value assigned to the entry at index.
func (c Config) CounterValue(index int) int {
	return c.CounterStart + index*c.CounterIncrement
}

// counterAppliesToName reports whether the counter participates in the
// name field. A kept original name is never decorated.
func (c Config) counterAppliesToName() bool {
	return c.CounterEnabled && c.CounterToName && !c.KeepOriginalName
}

func (c Config) counterAppliesToExt() bool {
	return c.CounterEnabled && c.CounterToExt && !c.KeepOriginalExt
}

// Generate computes the proposed (name, ext) pair for one entry.
// originalName is the base name without extension; originalExt is the
// extension without the leading dot. index is the entry's position in
// display order and drives counter assignment.
func Generate(originalName, originalExt string, cfg Config, index int) (string, string, error) {
	if err := cfg.Validate(); err != nil {
		return "", "", err
	}

	name := cfg.NameMask
	if cfg.KeepOriginalName {
		name = originalName
	}

	ext := cfg.ExtMask
	if cfg.KeepOriginalExt {
		ext = originalExt
	}

	if cfg.counterAppliesToName() || cfg.counterAppliesToExt() {
		counter, err := FormatCounter(cfg.CounterValue(index), cfg.CounterPadding)
		if err != nil {
			return "", "", err
		}
		if cfg.counterAppliesToName() {
			name = applyCounter(name, counter)
		}
		if cfg.counterAppliesToExt() {
			ext = applyCounter(ext, counter)
		}
	}

	return name, ext, nil
}

// applyCounter substitutes every counter token in mask, or appends the
// value when the mask carries no token.
func applyCounter(mask, counter string) string {
	if strings.Contains(mask, CounterToken) {
		return strings.ReplaceAll(mask, CounterToken, counter)
	}
	return mask + counter
}

// FormatCounter zero-fills value to padding digits. Negative values keep
// their sign in front of the fill ("-05" for value -5, padding 3); values
// wider than the padding pass through unshortened.
func FormatCounter(value, padding int) (string, error) {
	if padding < 0 {
		return "", &ConfigError{Field: "counterPadding", Reason: "must not be negative"}
	}
	if value >= 0 {
		return fmt.Sprintf("%0*d", padding, value), nil
	}
	if padding == 1 {
		// One column cannot carry both the sign and a digit.
		return "", &ConfigError{Field: "counterPadding", Reason: "padding of 1 cannot represent negative counter values"}
	}
	digits := strconv.Itoa(-value)
	if padding > 0 {
		width := padding - 1
		for len(digits) < width {
			digits = "0" + digits
		}
	}
	return "-" + digits, nil
}

// JoinName assembles a full file name from a name and extension pair.
// An empty extension yields the bare name with no trailing dot.
func JoinName(name, ext string) string {
	if ext == "" {
		return name
	}
	return name + "." + ext
}
