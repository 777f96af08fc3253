package extract

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Stable parse error classes surfaced in logs and metrics.
const (
	ClassJSONDecode     = "JSONDecode"
	ClassHTMLParse      = "HTMLParse"
	ClassPDFParse       = "PDFParse"
	ClassOCRUnavailable = "OCRUnavailable"
)

// ErrNoText marks a PDF whose library exposes no extractable text and no OCR
// pipeline is wired.
var ErrNoText = errors.New("no extractable text")

type parseError struct {
	class string
	err   error
}

func (e *parseError) Error() string { return fmt.Sprintf("%s: %v", e.class, e.err) }
func (e *parseError) Unwrap() error { return e.err }

func classifyExtract(err error) string {
	var pe *parseError
	if errors.As(err, &pe) {
		return pe.class
	}
	if errors.Is(err, ErrNoText) {
		return ClassOCRUnavailable
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return ClassJSONDecode
	}
	return "ExtractError"
}
