// Package pdftext extracts plain text from PDF documents for resume scanning.
package pdftext

import (
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/placementkit/readiness-panel/util/common"
)

// Extract reads every page of the PDF and returns the concatenated,
// lower-cased text. Pages that cannot be decoded are skipped.
func Extract(reader io.ReaderAt, size int64) (string, error) {
	pdfReader, err := pdf.NewReader(reader, size)
	if err != nil {
		return "", common.NewErrorf("failed to read pdf: %v", err)
	}

	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
	}
	return strings.ToLower(textBuilder.String()), nil
}
