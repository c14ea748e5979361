package codec

import (
	"slices"

	"github.com/alexisbeaulieu97/colorhelper/internal/notation"
)

// Order merges notation orders by precedence: earlier sources win, unknown
// ids and repeats are skipped, and the remaining registered ids follow in
// registration order.
func Order(reg *notation.Registry, sources ...[]string) []string {
	known := reg.IDs()
	order := make([]string, 0, len(known))
	add := func(id string) {
		if slices.Contains(known, id) && !slices.Contains(order, id) {
			order = append(order, id)
		}
	}
	for _, source := range sources {
		for _, id := range source {
			add(id)
		}
	}
	for _, id := range known {
		add(id)
	}
	return order
}

// Hoist moves id to the front of order. An id not in order is prepended.
func Hoist(order []string, id string) []string {
	out := make([]string, 0, len(order)+1)
	out = append(out, id)
	for _, existing := range order {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
