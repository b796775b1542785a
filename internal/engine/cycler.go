package engine

import "fmt"

// Cycle moves current by step within [0, count), wrapping around in both directions.
// count must be positive.
func Cycle(count, current, step int) int {
	if count <= 0 {
		panic(fmt.Sprintf("engine: Cycle called with count %d", count))
	}
	next := (current + step) % count
	if next < 0 {
		next += count
	}
	return next
}
