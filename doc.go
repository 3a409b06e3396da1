// Package poo collects small, explicit examples of object fundamentals in Go.
//
// The repository is organized as a short progression:
//
//   - holder: a value holder with a read accessor, a validated write accessor
//     and an injected instance counter
//   - study: per-instance vs. shared state, visibility, and a registration flow
//     split by responsibility
//   - cmd/poo: a driver that narrates every walkthrough through a structured logger
//
// Shared state is always passed in explicitly (no package-level globals), and
// access control relies on Go's package scoping rather than naming conventions.
//
// Package poo See subpackages:
//   - holder: ValueHolder, Counter, InvalidArgumentError
//   - study: Object, Visibility, Registrar, MapDirectory
//   - internal/config: environment settings for the driver
package poo
