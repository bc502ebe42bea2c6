// Package kit is a small shared-utilities library: generic pipeline
// helpers at the root, plus subpackages for common glue.
//
//   - [github.com/bjaus/kit/table] — fixed-width text table rendering
//     with pluggable width measurement
//   - [github.com/bjaus/kit/strutil] — string glue (pluralized counts,
//     ANSI escape stripping)
//   - [github.com/bjaus/kit/fsutil] — filesystem glue (temp paths,
//     existence and symlink checks, line filtering, atomic writes,
//     config-file loading)
//
// The root package holds the generic helpers that don't belong to any
// one domain.
//
// # Conditional pipelines
//
// [ApplyIf] and [AppendIf] conditionally extend an accumulator without
// evaluating the candidate value unless the condition holds. The value
// is passed as a closure, so expensive or side-effecting expressions
// are only computed when used:
//
//	s := kit.AppendIf(s, verbose, func() string { return details() })
//
// # Must
//
// [Must] converts a (value, error) pair into a value, panicking on
// error. Use it for operations that cannot fail absent a programming
// mistake:
//
//	re := kit.Must(regexp.Compile(`^\d+$`))
package kit
