package diag

import "fmt"

// Code is a compact host-assigned identifier for a class of diagnostics.
// Hosts define their own code spaces; UnknownCode is reserved.
type Code uint16

const UnknownCode Code = 0

func (c Code) String() string {
	return fmt.Sprintf("D%04d", uint16(c))
}

// Note attaches secondary context to a diagnostic at another range.
type Note struct {
	Range Range  `json:"range" msgpack:"range"`
	Msg   string `json:"msg" msgpack:"msg"`
}

// Diagnostic is the record handed to an external renderer: where (Path +
// Primary), what (Message), and how bad (Severity, Code). Data only; this
// package never formats or prints it.
type Diagnostic struct {
	Path     string   `json:"path,omitempty" msgpack:"path"`
	Severity Severity `json:"severity" msgpack:"severity"`
	Code     Code     `json:"code" msgpack:"code"`
	Message  string   `json:"message" msgpack:"message"`
	Primary  Range    `json:"primary" msgpack:"primary"`
	Notes    []Note   `json:"notes,omitempty" msgpack:"notes"`
}

func New(sev Severity, code Code, primary Range, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary Range, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithPath returns a copy placed in the named source.
func (d Diagnostic) WithPath(path string) Diagnostic {
	d.Path = path
	return d
}

// WithNote returns a copy with an extra note appended.
func (d Diagnostic) WithNote(r Range, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Range: r, Msg: msg})
	return d
}
