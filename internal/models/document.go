package models

import (
	"path/filepath"
	"strings"
)

// DocumentFormat is the resume file format, taken from the uploaded
// filename's extension (case-insensitive).
type DocumentFormat string

const (
	FormatPDF     DocumentFormat = "pdf"
	FormatDOCX    DocumentFormat = "docx"
	FormatUnknown DocumentFormat = "unknown"
)

// UploadedDocument is one uploaded resume. It lives for the duration of a
// single screening run and is discarded after extraction.
type UploadedDocument struct {
	Filename string
	Content  []byte
}

// Format derives the document format from the filename extension.
func (d UploadedDocument) Format() DocumentFormat {
	switch strings.ToLower(filepath.Ext(d.Filename)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	default:
		return FormatUnknown
	}
}

// ExtractionMethod records how resume text was obtained.
type ExtractionMethod string

const (
	// MethodNative means the text came straight out of the document structure.
	MethodNative ExtractionMethod = "native"
	// MethodOCRFallback means the pages were rasterized and OCRed because
	// native extraction yielded too little text.
	MethodOCRFallback ExtractionMethod = "ocr_fallback"
)

// ExtractionResult is the raw text pulled from one document.
type ExtractionResult struct {
	RawText string
	Method  ExtractionMethod
}
