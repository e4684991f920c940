package services

import (
	"fmt"
	"html"
	"log"
	"regexp"
	"strings"

	"github.com/h2non/filetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
)

const (
	// minPageTextLen is the per-page threshold under which the strict layout
	// pass is retried with looser tolerance and character-flow order.
	minPageTextLen = 50
	// minDocTextLen is the document-level threshold under which the OCR
	// fallback kicks in for PDFs.
	minDocTextLen = 100
)

// DocumentExtractor converts an uploaded PDF or DOCX into raw text.
type DocumentExtractor interface {
	Extract(doc models.UploadedDocument) (*models.ExtractionResult, error)
}

type documentExtractor struct {
	spooler Spooler
	ocr     OCREngine
}

// NewDocumentExtractor builds the extractor. ocr may be nil, in which case
// low-yield PDFs keep whatever the native pass produced.
func NewDocumentExtractor(spooler Spooler, ocr OCREngine) DocumentExtractor {
	return &documentExtractor{spooler: spooler, ocr: ocr}
}

// Extract implements DocumentExtractor. The upload is spooled to a temporary
// file that is removed on every exit path, including unsupported formats and
// mid-extraction failures.
func (e *documentExtractor) Extract(doc models.UploadedDocument) (*models.ExtractionResult, error) {
	path, cleanup, err := e.spooler.Spool(doc.Filename, doc.Content)
	if err != nil {
		return nil, &ExtractionError{Filename: doc.Filename, Err: err}
	}
	defer cleanup()

	switch doc.Format() {
	case models.FormatPDF:
		if err := checkContentType(doc.Content, "pdf"); err != nil {
			return nil, &ExtractionError{Filename: doc.Filename, Err: err}
		}
		return e.extractPDF(path, doc.Filename)
	case models.FormatDOCX:
		if err := checkContentType(doc.Content, "docx", "zip"); err != nil {
			return nil, &ExtractionError{Filename: doc.Filename, Err: err}
		}
		return e.extractDOCX(path, doc.Filename)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, doc.Filename)
	}
}

// checkContentType rejects uploads whose bytes recognizably belong to a
// different format than the filename extension claims. Bytes the sniffer
// cannot identify pass through; the format parser is the authority there
// (a PDF may legally carry junk ahead of its magic).
func checkContentType(content []byte, allowed ...string) error {
	kind, err := filetype.Match(content)
	if err != nil || kind == filetype.Unknown {
		return nil
	}
	for _, ext := range allowed {
		if kind.Extension == ext {
			return nil
		}
	}
	return fmt.Errorf("content does not look like a %s file (detected %q)", allowed[0], kind.Extension)
}

func (e *documentExtractor) extractPDF(path, filename string) (result *models.ExtractionResult, retErr error) {
	// ledongthuc/pdf panics rather than returning errors on some malformed
	// inputs; surface those as extraction failures.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			retErr = &ExtractionError{Filename: filename, Err: fmt.Errorf("malformed PDF: %v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, &ExtractionError{Filename: filename, Err: fmt.Errorf("failed to open PDF: %w", err)}
	}
	defer f.Close()

	var pages []string
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text := extractPageText(page, strictTolerance, false)
		if len(strings.TrimSpace(text)) < minPageTextLen {
			// Low yield; retry with looser tolerance, keeping the
			// content-stream character order.
			if retried := extractPageText(page, looseTolerance, true); len(retried) > len(text) {
				text = retried
			}
		}

		pages = append(pages, text)
	}

	nativeText := strings.Join(pages, "\n")

	if len(strings.TrimSpace(nativeText)) < minDocTextLen && e.ocr != nil {
		log.Printf("🔍 Native extraction yielded %d chars for %s, trying OCR fallback", len(nativeText), filename)
		ocrText, err := e.ocr.RecognizePDF(path)
		if err != nil {
			log.Printf("⚠️  OCR fallback failed for %s: %v", filename, err)
		} else if len(ocrText) > len(nativeText) {
			// Whichever pass yields more text wins, wholesale.
			return &models.ExtractionResult{RawText: ocrText, Method: models.MethodOCRFallback}, nil
		}
	}

	return &models.ExtractionResult{RawText: nativeText, Method: models.MethodNative}, nil
}

func (e *documentExtractor) extractDOCX(path, filename string) (*models.ExtractionResult, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return nil, &ExtractionError{Filename: filename, Err: fmt.Errorf("failed to open DOCX: %w", err)}
	}
	defer r.Close()

	text := docxContentToText(r.Editable().GetContent())
	return &models.ExtractionResult{RawText: text, Method: models.MethodNative}, nil
}

var (
	docxParagraphRe = regexp.MustCompile(`</w:p>`)
	docxTagRe       = regexp.MustCompile(`<[^>]+>`)
)

// docxContentToText flattens the document.xml markup into paragraph text
// joined by newlines, in document order.
func docxContentToText(content string) string {
	paragraphs := docxParagraphRe.Split(content, -1)
	var lines []string
	for _, p := range paragraphs {
		text := html.UnescapeString(docxTagRe.ReplaceAllString(p, ""))
		if text = strings.TrimSpace(text); text != "" {
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}
