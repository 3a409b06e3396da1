// Command poo runs the object fundamentals walkthroughs in order:
//
//   - class attributes: per-instance state next to a shared counter
//   - encapsulation: a value holder with a validated setter
//   - visibility: exported vs. unexported members
//   - registration: one job per step (validate, store, report)
//
// Settings come from the environment:
//
//	POO_LOG_LEVEL   debug|info|warn|error (default info)
//	POO_LOG_PREFIX  logger prefix (default poo)
//	POO_LOG_JSON    true for JSON output (default false)
//
// Usage:
//
//	go run ./cmd/poo
package main
