package diag

import (
	"fmt"
	"strings"
)

// Severity ranks a diagnostic.
type Severity uint8

const (
	SevNote Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// Kind identifies what went wrong.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindInvalidTransform is recorded when a template asks a value for an
	// attribute it does not provide.
	KindInvalidTransform
	// KindCommentKeyNotAllowed is recorded when a template consults a comment
	// key outside the declared allowed set.
	KindCommentKeyNotAllowed
	// KindDeclaredHere points back at the declaration of a constraint.
	KindDeclaredHere
)

var kindNames = map[Kind]string{
	KindUnknown:              "unknown",
	KindInvalidTransform:     "invalid-transform",
	KindCommentKeyNotAllowed: "comment-key-not-allowed",
	KindDeclaredHere:         "declared-here",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// MarshalText lets JSON output carry the readable kind name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText parses a kind name; unrecognised names decode to
// KindUnknown.
func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.TrimSpace(string(text))
	for kind, known := range kindNames {
		if known == name {
			*k = kind
			return nil
		}
	}
	*k = KindUnknown
	return nil
}

// MarshalText lets JSON output carry the readable severity name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a severity name.
func (s *Severity) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "note":
		*s = SevNote
	case "warning":
		*s = SevWarning
	case "error":
		*s = SevError
	default:
		return fmt.Errorf("diag: unknown severity %q", text)
	}
	return nil
}

// Location is a position in a source file. Line and Column are 1-based; a
// zero Line means the position is unknown.
type Location struct {
	File   string `json:"file,omitempty" yaml:"file"`
	Line   int    `json:"line,omitempty" yaml:"line"`
	Column int    `json:"column,omitempty" yaml:"column"`
}

// IsZero reports whether no position information is available.
func (l Location) IsZero() bool {
	return l.File == "" && l.Line == 0 && l.Column == 0
}

func (l Location) String() string {
	file := strings.TrimSpace(l.File)
	if file == "" {
		file = "<unknown>"
	}
	switch {
	case l.Line <= 0:
		return file
	case l.Column <= 0:
		return fmt.Sprintf("%s:%d", file, l.Line)
	default:
		return fmt.Sprintf("%s:%d:%d", file, l.Line, l.Column)
	}
}

// Diagnostic is a single finding bound to a source location.
type Diagnostic struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location, d.Severity, d.Message)
}

// InvalidTransform reports that name is not an attribute of a value labelled
// typeLabel.
func InvalidTransform(name, typeLabel string, at Location) Diagnostic {
	return Diagnostic{
		Kind:     KindInvalidTransform,
		Severity: SevError,
		Message:  fmt.Sprintf("'%s' is not a valid transform for %s", name, typeLabel),
		Location: at,
	}
}

// CommentKeyNotAllowed reports a template access to a comment key that is not
// part of the allowed set.
func CommentKeyNotAllowed(key string, at Location) Diagnostic {
	return Diagnostic{
		Kind:     KindCommentKeyNotAllowed,
		Severity: SevError,
		Message:  fmt.Sprintf("comment key '%s' is not allowed", key),
		Location: at,
	}
}

// DeclaredHere is the note that accompanies a constraint violation.
func DeclaredHere(name string, at Location) Diagnostic {
	return Diagnostic{
		Kind:     KindDeclaredHere,
		Severity: SevNote,
		Message:  fmt.Sprintf("%s declared here", name),
		Location: at,
	}
}
