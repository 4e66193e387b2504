// Package go2 contains general utility helpers that should've been in Go. Maybe they'll be in Go 2.0.
package go2

import (
	"golang.org/x/exp/constraints"
)

func Pointer[T any](v T) *T {
	return &v
}

// Deref returns *p, or def when p is nil. Options structs use it to
// resolve unset fields to their defaults.
func Deref[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
