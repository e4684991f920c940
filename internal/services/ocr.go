package services

import (
	"bytes"
	"fmt"
	"image/png"
	"log"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// OCREngine recognizes text in a PDF whose pages carry no extractable text
// (scanned resumes). Implementations rasterize every page and run character
// recognition on each.
type OCREngine interface {
	RecognizePDF(path string) (string, error)
}

type tesseractEngine struct {
	languages []string
}

// NewTesseractEngine returns the go-fitz + Tesseract backed engine.
// languages is a comma-separated Tesseract language list, e.g. "eng".
func NewTesseractEngine(languages string) OCREngine {
	langs := strings.Split(languages, ",")
	for i := range langs {
		langs[i] = strings.TrimSpace(langs[i])
	}
	return &tesseractEngine{languages: langs}
}

// RecognizePDF implements OCREngine.
func (t *tesseractEngine) RecognizePDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF for rasterization: %w", err)
	}
	defer doc.Close()

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(t.languages...); err != nil {
		return "", fmt.Errorf("failed to set OCR languages: %w", err)
	}

	var sb strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.Image(n)
		if err != nil {
			log.Printf("⚠️  Failed to rasterize page %d: %v", n+1, err)
			continue
		}

		// PNG is lossless; slower to encode but noticeably more accurate
		// for small resume type sizes.
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			log.Printf("⚠️  Failed to encode page %d: %v", n+1, err)
			continue
		}

		if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
			log.Printf("⚠️  Failed to load page %d into OCR: %v", n+1, err)
			continue
		}

		text, err := client.Text()
		if err != nil {
			log.Printf("⚠️  OCR failed on page %d: %v", n+1, err)
			continue
		}

		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
