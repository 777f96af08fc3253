package extract

import (
	"bytes"
	"encoding/base64"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// MaxPDFChars caps the serialized output of the PDF pipeline.
const MaxPDFChars = 200_000

// cellGap is the horizontal gap (in PDF units) that splits a text row into
// table cells.
const cellGap = 18.0

// extractPDF decodes the base64 payload and runs the text pipeline: row-wise
// extraction with table serialization, falling back to plain text. A PDF with
// no extractable text surfaces ErrNoText (OCR is not wired).
func extractPDF(body []byte, pageURL string) ([]item, error) {
	raw, err := base64.StdEncoding.DecodeString(string(body))
	if err != nil {
		// Body was not base64; treat it as the raw PDF bytes.
		raw = body
	}

	reader, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, &parseError{class: ClassPDFParse, err: err}
	}

	text := extractRows(reader)
	if text == "" {
		text = extractPlain(reader)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrNoText
	}
	if len(text) > MaxPDFChars {
		text = truncate(text, MaxPDFChars)
	}

	title := firstLine(text)
	return []item{{
		Title: title,
		URL:   pageURL,
		Text:  text,
	}}, nil
}

// extractRows walks every page row by row. Rows whose words cluster into two
// or more cells are serialized as [TABLE] a | b | c [/TABLE].
func extractRows(reader *pdf.Reader) string {
	var b strings.Builder
	for pageNo := 1; pageNo <= reader.NumPage(); pageNo++ {
		page := reader.Page(pageNo)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells := clusterCells(row.Content)
			if len(cells) == 0 {
				continue
			}
			if len(cells) >= 2 {
				b.WriteString("[TABLE] ")
				b.WriteString(strings.Join(cells, " | "))
				b.WriteString(" [/TABLE]\n")
			} else {
				b.WriteString(cells[0])
				b.WriteString("\n")
			}
			if b.Len() > MaxPDFChars {
				return b.String()
			}
		}
	}
	return b.String()
}

// clusterCells groups a row's glyph runs into cells by horizontal gap.
func clusterCells(texts pdf.TextHorizontal) []string {
	var cells []string
	var cell strings.Builder
	var lastEnd float64
	for i, t := range texts {
		if i > 0 && t.X-lastEnd > cellGap {
			if s := strings.TrimSpace(cell.String()); s != "" {
				cells = append(cells, s)
			}
			cell.Reset()
		}
		cell.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	if s := strings.TrimSpace(cell.String()); s != "" {
		cells = append(cells, s)
	}
	return cells
}

func extractPlain(reader *pdf.Reader) string {
	r, err := reader.GetPlainText()
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(io.LimitReader(r, MaxPDFChars+1))
	if err != nil {
		return ""
	}
	return string(data)
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[TABLE]") {
			continue
		}
		if len(line) > 160 {
			line = truncate(line, 160)
		}
		return line
	}
	return ""
}
