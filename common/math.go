package common

import (
	"cmp"
)

// / Clamps the value to the specified range.
// / @param[in]		value			The value to clamp.
// / @param[in]		minInclusive	The minimum permitted return value.
// / @param[in]		maxInclusive	The maximum permitted return value.
// / @return The value, clamped to the specified range.
func Clamp[T cmp.Ordered](value, minInclusive, maxInclusive T) T {
	if value < minInclusive {
		return minInclusive
	}
	if value > maxInclusive {
		return maxInclusive
	}
	return value
}

// InRange reports whether value lies in [minInclusive, maxInclusive].
func InRange[T cmp.Ordered](value, minInclusive, maxInclusive T) bool {
	return value >= minInclusive && value <= maxInclusive
}
