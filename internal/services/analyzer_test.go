package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
)

type stubCompletion struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (s *stubCompletion) Complete(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

func TestAnalyzeEmptyInputShortCircuits(t *testing.T) {
	stub := &stubCompletion{response: "unused"}
	a := NewAnalyzer(stub)

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := a.Analyze(context.Background(), input, models.ScreeningCriteria{})

		var analysisErr *AnalysisError
		require.ErrorAs(t, err, &analysisErr)
		assert.Equal(t, KindEmptyInput, analysisErr.Kind)
	}

	// The remote endpoint must never have been called.
	assert.Equal(t, 0, stub.calls)
}

func TestAnalyzeReturnsTrimmedResponse(t *testing.T) {
	stub := &stubCompletion{response: "\n1. Candidate Name: Jane Doe\n"}
	a := NewAnalyzer(stub)

	got, err := a.Analyze(context.Background(), "some resume text", models.ScreeningCriteria{
		TechnicalSkills: []string{"Python"},
	})

	require.NoError(t, err)
	assert.Equal(t, "1. Candidate Name: Jane Doe", got)
	require.Equal(t, 1, stub.calls)
	assert.Contains(t, stub.prompts[0], "some resume text")
	assert.Contains(t, stub.prompts[0], "Technical Skills: Python")
}

func TestAnalyzeWrapsTransportFailure(t *testing.T) {
	stub := &stubCompletion{err: errors.New("connection refused")}
	a := NewAnalyzer(stub)

	_, err := a.Analyze(context.Background(), "some resume text", models.ScreeningCriteria{})

	var analysisErr *AnalysisError
	require.ErrorAs(t, err, &analysisErr)
	assert.Equal(t, KindRequestFailed, analysisErr.Kind)
	assert.Contains(t, analysisErr.Message, "connection refused")

	// Single attempt, no retries.
	assert.Equal(t, 1, stub.calls)
}
