package domain

import (
	"fmt"
	"strings"
)

// SMCLevel enumerates the Special Monthly Compensation tiers the engine knows.
type SMCLevel int

// The eight SMC tiers. The zero value is deliberately not a level.
const (
	SMCLevelK SMCLevel = iota + 1
	SMCLevelL
	SMCLevelM
	SMCLevelN
	SMCLevelO
	SMCLevelR1
	SMCLevelR2
	SMCLevelS
)

// AllSMCLevels returns every tier in ascending order.
func AllSMCLevels() []SMCLevel {
	return []SMCLevel{
		SMCLevelK,
		SMCLevelL,
		SMCLevelM,
		SMCLevelN,
		SMCLevelO,
		SMCLevelR1,
		SMCLevelR2,
		SMCLevelS,
	}
}

// String returns the VA tag for the level, e.g. "K" or "R1".
func (l SMCLevel) String() string {
	switch l {
	case SMCLevelK:
		return "K"
	case SMCLevelL:
		return "L"
	case SMCLevelM:
		return "M"
	case SMCLevelN:
		return "N"
	case SMCLevelO:
		return "O"
	case SMCLevelR1:
		return "R1"
	case SMCLevelR2:
		return "R2"
	case SMCLevelS:
		return "S"
	default:
		return fmt.Sprintf("SMCLevel(%d)", int(l))
	}
}

// Valid reports whether l is one of the eight tiers.
func (l SMCLevel) Valid() bool {
	return l >= SMCLevelK && l <= SMCLevelS
}

// ParseSMCLevel converts a tag such as "k" or "R1" into an SMCLevel.
func ParseSMCLevel(tag string) (SMCLevel, error) {
	want := strings.ToUpper(strings.TrimSpace(tag))
	for _, l := range AllSMCLevels() {
		if l.String() == want {
			return l, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSMCLevel, tag)
}

// MarshalText encodes the level as its tag.
func (l SMCLevel) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSMCLevel, int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText decodes a level tag.
func (l *SMCLevel) UnmarshalText(text []byte) error {
	parsed, err := ParseSMCLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
