package compiler

import apperrors "github.com/niiniyare/atomiccss/pkg/errors"

// Diagnostic records a token the compiler could not turn into CSS, per
// spec §4.11: the offending token is dropped, nothing is emitted for it,
// and a Diagnostic is appended to the sink instead of aborting the batch.
type Diagnostic struct {
	Token   string
	Code    apperrors.Code
	Message string
}

// Diagnostics returns every IgnoredToken diagnostic recorded since the
// compiler was created or DrainDiagnostics was last called.
func (c *Compiler) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), c.diagnostics...)
}

// DrainDiagnostics returns the accumulated diagnostics and clears the sink.
func (c *Compiler) DrainDiagnostics() []Diagnostic {
	d := c.diagnostics
	c.diagnostics = nil
	return d
}

func (c *Compiler) recordIgnored(token string, err error) {
	d := Diagnostic{Token: token, Message: err.Error()}
	if ae, ok := err.(*apperrors.Error); ok {
		d.Code = ae.Code
	}
	c.diagnostics = append(c.diagnostics, d)
}
