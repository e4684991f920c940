package services

import (
	"context"
	"log"
	"strings"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
)

// Analyzer sends normalized resume text to the completion endpoint and
// returns the raw model reply. Failures are typed and per-document; the
// caller treats them as recoverable and moves on.
type Analyzer interface {
	Analyze(ctx context.Context, resumeText string, criteria models.ScreeningCriteria) (string, error)
}

type analyzer struct {
	completion    CompletionService
	promptBuilder *PromptBuilder
}

func NewAnalyzer(completion CompletionService) Analyzer {
	return &analyzer{
		completion:    completion,
		promptBuilder: NewPromptBuilder(),
	}
}

// Analyze implements Analyzer. Empty resume text short-circuits without a
// remote call. Single attempt toward the endpoint, no retries or backoff.
func (a *analyzer) Analyze(ctx context.Context, resumeText string, criteria models.ScreeningCriteria) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", &AnalysisError{
			Kind:    KindEmptyInput,
			Message: "resume contains no extractable text",
		}
	}

	prompt := a.promptBuilder.BuildScreeningPrompt(resumeText, criteria)
	log.Printf("📝 Screening prompt length: %d characters", len(prompt))

	response, err := a.completion.Complete(ctx, prompt)
	if err != nil {
		return "", &AnalysisError{
			Kind:    KindRequestFailed,
			Message: err.Error(),
		}
	}

	return strings.TrimSpace(response), nil
}
