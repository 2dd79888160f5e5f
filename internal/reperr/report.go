package reperr

import (
	"fmt"

	"github.com/TurtlePU/odlang/internal/atoms"
	"github.com/TurtlePU/odlang/internal/parser"
	"github.com/TurtlePU/odlang/internal/pprint"
	"github.com/TurtlePU/odlang/internal/typecheck"
)

// Report is the structured diagnostic every phase renders its failures
// into. A Report always carries Phase and Code, so a caller that only
// wants machine-readable output never has to parse Message.
type Report struct {
	Schema  string
	Code    string
	Phase   string
	Message string
	R       *atoms.Range
}

// Error renders one diagnostic line: "phase: code: message", with the
// source range prefixed when one is known.
func (r *Report) Error() string {
	if r.R != nil {
		return fmt.Sprintf("%s: %s: %s: %s", r.R, r.Phase, r.Code, r.Message)
	}
	return fmt.Sprintf("%s: %s: %s", r.Phase, r.Code, r.Message)
}

const schema = "odlang.error/v1"

// Parse renders one parser.Error.
func Parse(message string, r atoms.Range) *Report {
	return &Report{
		Schema:  schema,
		Code:    ParseUnexpectedToken,
		Phase:   "parser",
		Message: message,
		R:       &r,
	}
}

// ParseErrors renders every error a parser.Parse call returned.
func ParseErrors(errs []parser.Error) []*Report {
	reports := make([]*Report, 0, len(errs))
	for _, e := range errs {
		reports = append(reports, Parse(e.Message, e.R))
	}
	return reports
}

// Unbound renders one name the identifier pass could not resolve in its
// namespace.
func Unbound(name string) *Report {
	return &Report{
		Schema:  schema,
		Code:    IdentUnbound,
		Phase:   "ident",
		Message: fmt.Sprintf("unbound name %q", name),
	}
}

// Typeck renders one typecheck.Error, pretty-printing the types it
// references with names so binder identity reads the way the source did.
func Typeck(e typecheck.Error, names *atoms.NameTable) *Report {
	switch e.Kind {
	case typecheck.NotAFunction:
		return &Report{
			Schema:  schema,
			Code:    TypeNotAFunction,
			Phase:   "typecheck",
			Message: fmt.Sprintf("applied a non-function value of type %s", pprint.Type(e.Type, names)),
		}
	case typecheck.NotAForall:
		return &Report{
			Schema:  schema,
			Code:    TypeNotAForall,
			Phase:   "typecheck",
			Message: fmt.Sprintf("type-applied a non-polymorphic value of type %s", pprint.Type(e.Type, names)),
		}
	case typecheck.NotEqual:
		return &Report{
			Schema: schema,
			Code:   TypeNotEqual,
			Phase:  "typecheck",
			Message: fmt.Sprintf("expected argument of type %s, got %s",
				pprint.Type(e.Expected, names), pprint.Type(e.Actual, names)),
		}
	default:
		return &Report{
			Schema:  schema,
			Code:    TypeNotEqual,
			Phase:   "typecheck",
			Message: "unknown typing error",
		}
	}
}

// HistoryCreateFailure renders the fatal failure to create or open the
// history file at startup.
func HistoryCreateFailure(err error) *Report {
	return &Report{
		Schema:  schema,
		Code:    HistoryCreateFailed,
		Phase:   "history",
		Message: err.Error(),
	}
}

// HistoryWriteFailure renders the non-fatal failure to append history at
// shutdown.
func HistoryWriteFailure(err error) *Report {
	return &Report{
		Schema:  schema,
		Code:    HistoryWriteFailed,
		Phase:   "history",
		Message: err.Error(),
	}
}
