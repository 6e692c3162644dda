// Package diag defines the diagnostic model shared by all translation phases.
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//     The code space is partitioned per phase: LEX1xxx, SYN2xxx, CNV3xxx.
//     Conversion codes additionally classify into the three soft-failure
//     kinds (Unsupported, Ambiguous, LossyConversion) via Code.Kind().
//   - Diagnostic – the central record: severity, code, message, primary span,
//     optional notes.
//   - Bag – an append-only, insertion-ordered collection. One conversion call
//     owns exactly one Bag; conversion diagnostics are never deduplicated.
//
// Phases emit through a diag.Reporter so producers stay decoupled from
// storage and rendering. Rendering lives in internal/diagfmt.
package diag
