package snap

import "fmt"

// CycleSize is one of the five screen fractions a window cycles through on
// repeated invocation of a size-cycling action.
type CycleSize int

const (
	SizeHalf CycleSize = iota
	SizeThird
	SizeTwoThirds
	SizeQuarter
	SizeThreeQuarters

	cycleSizeCount
)

// canonicalCycleOrder starts at the common case, ascends, then wraps to the
// smaller sizes. User configuration selects a subset; it never reorders.
var canonicalCycleOrder = [...]CycleSize{
	SizeHalf, SizeTwoThirds, SizeThreeQuarters, SizeQuarter, SizeThird,
}

var cycleFractions = [cycleSizeCount]float64{
	SizeHalf:          1.0 / 2.0,
	SizeThird:         1.0 / 3.0,
	SizeTwoThirds:     2.0 / 3.0,
	SizeQuarter:       1.0 / 4.0,
	SizeThreeQuarters: 3.0 / 4.0,
}

var cycleSizeNames = [cycleSizeCount]string{
	SizeHalf:          "half",
	SizeThird:         "third",
	SizeTwoThirds:     "two-thirds",
	SizeQuarter:       "quarter",
	SizeThreeQuarters: "three-quarters",
}

// Fraction returns the screen fraction for the size.
func (c CycleSize) Fraction() float64 {
	if c < 0 || c >= cycleSizeCount {
		return cycleFractions[SizeHalf]
	}
	return cycleFractions[c]
}

func (c CycleSize) String() string {
	if c < 0 || c >= cycleSizeCount {
		return fmt.Sprintf("cyclesize(%d)", int(c))
	}
	return cycleSizeNames[c]
}

// ParseCycleSize resolves a configured size name.
func ParseCycleSize(name string) (CycleSize, error) {
	for c, n := range cycleSizeNames {
		if n == name {
			return CycleSize(c), nil
		}
	}
	return SizeHalf, fmt.Errorf("unknown cycle size %q", name)
}

// SizeMask is the persisted set of enabled cycle sizes. Bit index equals the
// CycleSize ordinal.
type SizeMask uint8

// FullSizeMask enables all five sizes.
const FullSizeMask SizeMask = 1<<cycleSizeCount - 1

// MaskOf builds a mask from individual sizes.
func MaskOf(sizes ...CycleSize) SizeMask {
	var m SizeMask
	for _, c := range sizes {
		if c >= 0 && c < cycleSizeCount {
			m |= 1 << uint(c)
		}
	}
	return m
}

// Has reports whether the size is enabled.
func (m SizeMask) Has(c CycleSize) bool {
	if c < 0 || c >= cycleSizeCount {
		return false
	}
	return m&(1<<uint(c)) != 0
}

// Valid reports whether the mask enables at least one size and sets no
// unknown bits.
func (m SizeMask) Valid() bool {
	return m != 0 && m <= FullSizeMask
}

// Sizes returns the enabled sizes in canonical cycle order. A malformed mask
// falls back to the full default set rather than producing an empty cycle.
func (m SizeMask) Sizes() []CycleSize {
	if !m.Valid() {
		m = FullSizeMask
	}
	out := make([]CycleSize, 0, cycleSizeCount)
	for _, c := range canonicalCycleOrder {
		if m.Has(c) {
			out = append(out, c)
		}
	}
	return out
}
