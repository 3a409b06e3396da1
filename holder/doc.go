// Package holder provides ValueHolder, a record wrapping a single integer field
// behind a read accessor and a validated write accessor, plus Counter, the
// shared instance counter every holder is constructed against.
//
// The counter is never global. Callers build one with NewCounter and pass it
// to every constructor that should be counted by it, so independent tests (or
// independent subsystems) each see their own tally.
//
// There are two entry points for each write:
//
//   - New / Set take a statically typed int and cannot fail.
//   - FromAny / SetAny take an untyped value coming from a dynamic boundary
//     (decoded input, a registry lookup, reflection) and reject anything that is
//     not an integer with an InvalidArgumentError. On rejection nothing is
//     created and nothing is mutated.
//
// Import
//
//	"github.com/sghaida/poo/holder"
package holder
