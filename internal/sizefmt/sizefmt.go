// Package sizefmt renders byte counts for humans using binary (1024-based)
// unit steps.
package sizefmt

import (
	"fmt"
	"math"
)

var units = []string{"Bytes", "KB", "MB", "GB"}

// Format renders b in the largest unit where the scaled value is at least 1,
// rounded to the nearest integer. Format(0) == "0 Bytes".
func Format(b int64) string {
	if b <= 0 {
		return "0 Bytes"
	}

	v := float64(b)
	i := 0
	for v >= 1024 && i < len(units)-1 {
		v /= 1024
		i++
	}

	return fmt.Sprintf("%d %s", int64(math.Round(v)), units[i])
}
