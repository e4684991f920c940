package services

import (
	"fmt"
	"strings"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
)

// GeneralCriteriaPhrase is substituted when the user supplies no skill
// criteria at all, so the model still performs a general assessment.
const GeneralCriteriaPhrase = "General skills and qualifications assessment"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildCriteriaDescription renders each non-empty criteria list as
// "<Label>: <comma-joined skills>" on its own line.
func (pb *PromptBuilder) BuildCriteriaDescription(criteria models.ScreeningCriteria) string {
	var parts []string
	if len(criteria.TechnicalSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Technical Skills: %s", strings.Join(criteria.TechnicalSkills, ", ")))
	}
	if len(criteria.SoftSkills) > 0 {
		parts = append(parts, fmt.Sprintf("Soft Skills: %s", strings.Join(criteria.SoftSkills, ", ")))
	}
	if len(parts) == 0 {
		return GeneralCriteriaPhrase
	}
	return strings.Join(parts, "\n")
}

// BuildScreeningPrompt embeds the resume text and criteria into the fixed
// instruction template. The numbered output format is the contract the
// response parser depends on; the prompt is deterministic for a given input.
func (pb *PromptBuilder) BuildScreeningPrompt(resumeText string, criteria models.ScreeningCriteria) string {
	return fmt.Sprintf(`You are an expert AI HR assistant. Analyze the resume against the following criteria.
Return the results strictly in this format:

1. Candidate Name: [Full Name]
2. Match Score: [0-100]
3. Key Skills Found: [comma-separated list]
4. Missing Skills: [comma-separated list]
5. Years of Experience: [number or range]
6. Education: [highest degree and institution]
7. Verdict: Strong Match / Moderate Match / Weak Match

DO NOT include any extra text or explanation. Follow this exact format.

Resume:
%s

Criteria to Match Against:
%s`, resumeText, pb.BuildCriteriaDescription(criteria))
}
