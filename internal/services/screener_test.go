package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
)

type fakeExtractor struct {
	texts  map[string]string
	failOn string
}

func (f *fakeExtractor) Extract(doc models.UploadedDocument) (*models.ExtractionResult, error) {
	if doc.Filename == f.failOn {
		return nil, &ExtractionError{Filename: doc.Filename, Err: errors.New("unreadable file")}
	}
	return &models.ExtractionResult{
		RawText: f.texts[doc.Filename],
		Method:  models.MethodNative,
	}, nil
}

// fakeAnalyzer maps normalized resume text to a canned model reply.
type fakeAnalyzer struct {
	responses map[string]string
	err       error
}

func (f *fakeAnalyzer) Analyze(_ context.Context, resumeText string, _ models.ScreeningCriteria) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.responses[resumeText], nil
}

func cannedResponse(name string, score int) string {
	return fmt.Sprintf("1. Candidate Name: %s\n2. Match Score: %d\n7. Verdict: Moderate Match", name, score)
}

func TestScreenAllPartitionsAndRanks(t *testing.T) {
	extractor := &fakeExtractor{
		texts: map[string]string{
			"alice.pdf": "alice resume",
			"bob.docx":  "bob resume",
		},
		failOn: "broken.pdf",
	}
	analyzer := &fakeAnalyzer{
		responses: map[string]string{
			"alice resume": cannedResponse("Alice", 72),
			"bob resume":   cannedResponse("Bob", 91),
		},
	}

	s := NewScreener(extractor, analyzer, NewLineParser(), 3)

	docs := []models.UploadedDocument{
		{Filename: "alice.pdf"},
		{Filename: "broken.pdf"},
		{Filename: "bob.docx"},
	}

	result := s.ScreenAll(context.Background(), docs, models.ScreeningCriteria{})

	require.Len(t, result.Reports, 2)
	require.Len(t, result.Failures, 1)

	// Ranked by descending match score.
	assert.Equal(t, "Bob", result.Reports[0].CandidateName)
	assert.Equal(t, 91, result.Reports[0].MatchScore)
	assert.Equal(t, "bob.docx", result.Reports[0].Filename)
	assert.Equal(t, "Alice", result.Reports[1].CandidateName)
	assert.Equal(t, 72, result.Reports[1].MatchScore)

	assert.Equal(t, "broken.pdf", result.Failures[0].Filename)
	assert.Equal(t, StageExtraction, result.Failures[0].Stage)
	assert.Contains(t, result.Failures[0].Message, "unreadable file")
}

func TestScreenAllIsolatesAnalysisFailures(t *testing.T) {
	extractor := &fakeExtractor{texts: map[string]string{"a.pdf": "text a", "b.pdf": "text b"}}
	analyzer := &fakeAnalyzer{err: &AnalysisError{Kind: KindRequestFailed, Message: "endpoint down"}}

	s := NewScreener(extractor, analyzer, NewLineParser(), 2)

	result := s.ScreenAll(context.Background(), []models.UploadedDocument{
		{Filename: "a.pdf"},
		{Filename: "b.pdf"},
	}, models.ScreeningCriteria{})

	assert.Empty(t, result.Reports)
	require.Len(t, result.Failures, 2)
	for _, failure := range result.Failures {
		assert.Equal(t, StageAnalysis, failure.Stage)
		assert.Contains(t, failure.Message, "endpoint down")
	}
}

func TestScreenOneAttachesFilenameAndMethod(t *testing.T) {
	extractor := &fakeExtractor{texts: map[string]string{"cv.pdf": "resume text"}}
	analyzer := &fakeAnalyzer{responses: map[string]string{"resume text": cannedResponse("Carol", 55)}}

	s := NewScreener(extractor, analyzer, NewLineParser(), 1)

	report, err := s.ScreenOne(context.Background(), models.UploadedDocument{Filename: "cv.pdf"}, models.ScreeningCriteria{})

	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", report.Filename)
	assert.Equal(t, models.MethodNative, report.ExtractionMethod)
	assert.Equal(t, "Carol", report.CandidateName)
}

func TestScreenAllEmptyBatch(t *testing.T) {
	s := NewScreener(&fakeExtractor{}, &fakeAnalyzer{}, NewLineParser(), 1)

	result := s.ScreenAll(context.Background(), nil, models.ScreeningCriteria{})

	assert.Empty(t, result.Reports)
	assert.Empty(t, result.Failures)
}
