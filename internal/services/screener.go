package services

import (
	"context"
	"errors"
	"log"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
)

// Pipeline stages reported in per-document failure records.
const (
	StageExtraction = "extraction"
	StageAnalysis   = "analysis"
)

// Screener runs the extract → normalize → analyze → parse pipeline over a
// batch of resumes. Documents are independent; per-document failures are
// isolated into error records and never abort the batch.
type Screener interface {
	ScreenOne(ctx context.Context, doc models.UploadedDocument, criteria models.ScreeningCriteria) (*models.AnalysisReport, error)
	ScreenAll(ctx context.Context, docs []models.UploadedDocument, criteria models.ScreeningCriteria) *models.ScreeningResult
}

type screener struct {
	extractor   DocumentExtractor
	analyzer    Analyzer
	parser      ResponseParser
	concurrency int
}

func NewScreener(extractor DocumentExtractor, analyzer Analyzer, parser ResponseParser, concurrency int) Screener {
	if concurrency < 1 {
		concurrency = 1
	}
	return &screener{
		extractor:   extractor,
		analyzer:    analyzer,
		parser:      parser,
		concurrency: concurrency,
	}
}

// ScreenOne implements Screener for a single document.
func (s *screener) ScreenOne(ctx context.Context, doc models.UploadedDocument, criteria models.ScreeningCriteria) (*models.AnalysisReport, error) {
	extraction, err := s.extractor.Extract(doc)
	if err != nil {
		return nil, err
	}

	resumeText := Normalize(extraction.RawText)

	response, err := s.analyzer.Analyze(ctx, resumeText, criteria)
	if err != nil {
		return nil, err
	}

	report := s.parser.Parse(response)
	report.Filename = doc.Filename
	report.ExtractionMethod = extraction.Method
	return report, nil
}

// ScreenAll implements Screener. Documents run under a bounded-concurrency
// group; the result partitions into reports sorted by descending match score
// and per-document failure records. Input order carries no meaning beyond
// tie-breaking the sort.
func (s *screener) ScreenAll(ctx context.Context, docs []models.UploadedDocument, criteria models.ScreeningCriteria) *models.ScreeningResult {
	reports := make([]*models.AnalysisReport, len(docs))
	failures := make([]*models.DocumentError, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, doc := range docs {
		g.Go(func() error {
			report, err := s.ScreenOne(ctx, doc, criteria)
			if err != nil {
				log.Printf("❌ Failed to screen %s: %v", doc.Filename, err)
				failures[i] = classifyFailure(doc.Filename, err)
				return nil
			}
			reports[i] = report
			return nil
		})
	}
	// Goroutines only ever return nil; errors land in the failure records.
	_ = g.Wait()

	result := &models.ScreeningResult{
		Reports:  make([]models.AnalysisReport, 0, len(docs)),
		Failures: make([]models.DocumentError, 0),
	}
	for i := range docs {
		if reports[i] != nil {
			result.Reports = append(result.Reports, *reports[i])
		}
		if failures[i] != nil {
			result.Failures = append(result.Failures, *failures[i])
		}
	}

	sort.SliceStable(result.Reports, func(i, j int) bool {
		return result.Reports[i].MatchScore > result.Reports[j].MatchScore
	})

	return result
}

func classifyFailure(filename string, err error) *models.DocumentError {
	stage := StageExtraction
	var analysisErr *AnalysisError
	if errors.As(err, &analysisErr) {
		stage = StageAnalysis
	}
	return &models.DocumentError{
		Filename: filename,
		Stage:    stage,
		Message:  err.Error(),
	}
}
