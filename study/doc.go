// Package study holds the worked examples that surround the holder package:
//
//   - Object: per-instance state next to a shared, injected instance counter.
//   - Visibility: exported, unexported and accessor-mediated fields.
//   - Registrar: a registration flow split into validation, storage and error
//     reporting, each with a single job.
//
// Go enforces visibility at the package boundary, so everything unexported
// here is unreachable from other packages at compile time. There is no
// convention-only "protected" level and no name mangling to work around.
package study
