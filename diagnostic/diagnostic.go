// Package diagnostic defines the positioned, severity-tagged error records
// produced while parsing a PGN source. Parsing never aborts on malformed
// input; anomalies are reported here instead.
package diagnostic

import "fmt"

// Severity classifies how serious a Diagnostic is.
type Severity int

const (
	// Message is the lowest severity: a note about a lenient recovery
	// decision the parser made (e.g. an extra period between moves).
	Message Severity = iota
	// Warning indicates a structurally odd but fully recoverable input.
	Warning
	// Error indicates malformed input the parser had to recover from.
	Error
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case Message:
		return "message"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Code identifies the specific anomaly a Diagnostic reports.
type Code int

const (
	IllegalCharacter Code = iota
	UnterminatedTagValue
	UnrecognizedEscapeSequence
	IllegalControlCharacterInTagValue
	UnrecognizedMove
	EmptyTag
	MissingTagBracketOpen
	MissingTagName
	MissingTagValue
	MultipleTagValues
	MissingTagBracketClose
	MissingMove
	OrphanParenthesisClose
	OrphanBracketOpen
	OrphanTagValue
	OrphanBracketClose
	MissingParenthesisClose

	UnterminatedMultiLineComment
	EmptyVariation
	MissingTagSection
	MissingGameTerminationMarker

	EmptyNag
	OverflowNag
	MissingMoveNumber
	OrphanPeriod
	VariationBeforeNAG
)

var names = [...]string{
	"IllegalCharacter",
	"UnterminatedTagValue",
	"UnrecognizedEscapeSequence",
	"IllegalControlCharacterInTagValue",
	"UnrecognizedMove",
	"EmptyTag",
	"MissingTagBracketOpen",
	"MissingTagName",
	"MissingTagValue",
	"MultipleTagValues",
	"MissingTagBracketClose",
	"MissingMove",
	"OrphanParenthesisClose",
	"OrphanBracketOpen",
	"OrphanTagValue",
	"OrphanBracketClose",
	"MissingParenthesisClose",
	"UnterminatedMultiLineComment",
	"EmptyVariation",
	"MissingTagSection",
	"MissingGameTerminationMarker",
	"EmptyNag",
	"OverflowNag",
	"MissingMoveNumber",
	"OrphanPeriod",
	"VariationBeforeNAG",
}

// String returns the Code's identifier, e.g. "MissingTagValue".
func (c Code) String() string {
	if int(c) < 0 || int(c) >= len(names) {
		return "Unknown"
	}
	return names[c]
}

// severities is the fixed code -> severity table.
var severities = [...]Severity{
	IllegalCharacter:                   Error,
	UnterminatedTagValue:               Error,
	UnrecognizedEscapeSequence:         Error,
	IllegalControlCharacterInTagValue:  Error,
	UnrecognizedMove:                   Error,
	EmptyTag:                           Error,
	MissingTagBracketOpen:              Error,
	MissingTagName:                     Error,
	MissingTagValue:                    Error,
	MultipleTagValues:                  Error,
	MissingTagBracketClose:             Error,
	MissingMove:                        Error,
	OrphanParenthesisClose:             Error,
	OrphanBracketOpen:                  Error,
	OrphanTagValue:                     Error,
	OrphanBracketClose:                 Error,
	MissingParenthesisClose:            Error,
	UnterminatedMultiLineComment:       Warning,
	EmptyVariation:                     Warning,
	MissingTagSection:                 Warning,
	MissingGameTerminationMarker:       Warning,
	EmptyNag:                           Message,
	OverflowNag:                        Message,
	MissingMoveNumber:                  Message,
	OrphanPeriod:                       Message,
	VariationBeforeNAG:                 Message,
}

// SeverityOf returns the fixed severity for a Code.
func SeverityOf(c Code) Severity {
	if int(c) < 0 || int(c) >= len(severities) {
		return Error
	}
	return severities[c]
}

// Diagnostic is a single positioned anomaly report.
//
// Start and Start+Length are always within [0, len(source)].
type Diagnostic struct {
	Code       Code
	Severity   Severity
	Start      int
	Length     int
	Parameters []string
}

// New builds a Diagnostic with the Code's fixed severity.
func New(code Code, start, length int, parameters ...string) Diagnostic {
	return Diagnostic{
		Code:       code,
		Severity:   SeverityOf(code),
		Start:      start,
		Length:     length,
		Parameters: parameters,
	}
}

// String renders a human-readable one-line form, e.g. for test failures
// and ad-hoc debugging; it is not a stable serialization format.
func (d Diagnostic) String() string {
	if len(d.Parameters) == 0 {
		return fmt.Sprintf("%s %s@%d+%d", d.Severity, d.Code, d.Start, d.Length)
	}
	return fmt.Sprintf("%s %s@%d+%d %v", d.Severity, d.Code, d.Start, d.Length, d.Parameters)
}
