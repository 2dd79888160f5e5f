// Package reperr renders every diagnostic the pipeline can produce — parse
// errors, unbound names, typing errors, and history I/O failures — into one
// structured Report, following the same phase/code taxonomy the rest of
// this corpus uses for its own error reporting.
package reperr

// Error codes, grouped by the pipeline phase that raises them. Codes are
// never reused across phases, so a code alone identifies both the phase
// and the specific condition.
const (
	// ParseUnexpectedToken covers every parser.Error: the parser itself
	// does not distinguish "unexpected token" from "missing delimiter",
	// so one code serves the whole phase.
	ParseUnexpectedToken = "PAR001"

	// IdentUnbound marks a surface name with no enclosing binder in its
	// namespace.
	IdentUnbound = "IDN001"

	// TypeNotAFunction marks App applied to a non-arrow type.
	TypeNotAFunction = "TYP001"
	// TypeNotAForall marks TyApp instantiating a non-forall type.
	TypeNotAForall = "TYP002"
	// TypeNotEqual marks an argument type that disagrees with the
	// function's declared domain.
	TypeNotEqual = "TYP003"

	// HistoryCreateFailed marks the history file failing to be created
	// or opened at REPL startup — fatal.
	HistoryCreateFailed = "HIS001"
	// HistoryWriteFailed marks the final history append at shutdown
	// failing — logged, not fatal.
	HistoryWriteFailed = "HIS002"
)
