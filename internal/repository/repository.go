// Package repository holds the in-memory registries behind the API. The
// dashboard's state is volatile by design: every collection is seeded at
// process start and mutated only through these registries.
//
// Identity is allocated by a per-collection monotonic counter initialized to
// max(seed ids) + 1. Freed ids are never reused. Registries guard their
// slices with an RWMutex — there is one logical writer (the interactive
// user) but HTTP handlers run concurrently — and hand out copies so callers
// never alias internal state.
package repository

import "errors"

// ErrNoEncontrado is the canonical not-found signal for every registry.
var ErrNoEncontrado = errors.New("registro no encontrado")
