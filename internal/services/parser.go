package services

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SaptarshiMaity01/ai-resume-shortlisting/internal/models"
)

// ResponseParser turns raw model output into an AnalysisReport. Parsing is
// total: a malformed response produces a report full of sentinel defaults,
// never an error. The interface exists so the line-pattern grammar can be
// swapped for a structured-output mode without touching the pipeline.
type ResponseParser interface {
	Parse(response string) *models.AnalysisReport
}

type lineParser struct {
	nameRe       *regexp.Regexp
	scoreRe      *regexp.Regexp
	foundRe      *regexp.Regexp
	missingRe    *regexp.Regexp
	experienceRe *regexp.Regexp
	educationRe  *regexp.Regexp
	verdictRe    *regexp.Regexp
}

// NewLineParser returns the parser for the numbered seven-field reply format
// the screening prompt demands. Each field has its own line-anchored,
// case-insensitive pattern; fields are extracted independently so one
// malformed line never blocks the others.
func NewLineParser() ResponseParser {
	return &lineParser{
		nameRe:       fieldPattern(1, "Candidate Name"),
		scoreRe:      fieldPattern(2, "Match Score"),
		foundRe:      fieldPattern(3, "Key Skills Found"),
		missingRe:    fieldPattern(4, "Missing Skills"),
		experienceRe: fieldPattern(5, "Years of Experience"),
		educationRe:  fieldPattern(6, "Education"),
		verdictRe:    fieldPattern(7, "Verdict"),
	}
}

func fieldPattern(position int, label string) *regexp.Regexp {
	escaped := strings.ReplaceAll(regexp.QuoteMeta(label), " ", `\s+`)
	return regexp.MustCompile(`(?im)^\s*` + strconv.Itoa(position) + `\.\s*` + escaped + `\s*:\s*(.+)$`)
}

func (p *lineParser) Parse(response string) *models.AnalysisReport {
	report := &models.AnalysisReport{
		CandidateName:   models.NotFound,
		MatchScore:      0,
		FoundSkills:     models.NotFound,
		MissingSkills:   models.NotFound,
		YearsExperience: models.NotFound,
		Education:       models.NotFound,
		Verdict:         models.VerdictUnknown,
		RawResponse:     response,
	}

	if v, ok := capture(p.nameRe, response); ok {
		report.CandidateName = v
	}
	if v, ok := capture(p.scoreRe, response); ok {
		report.MatchScore = coerceScore(v)
	}
	if v, ok := capture(p.foundRe, response); ok {
		report.FoundSkills = v
	}
	if v, ok := capture(p.missingRe, response); ok {
		report.MissingSkills = v
	}
	if v, ok := capture(p.experienceRe, response); ok {
		report.YearsExperience = v
	}
	if v, ok := capture(p.educationRe, response); ok {
		report.Education = v
	}
	if v, ok := capture(p.verdictRe, response); ok {
		report.Verdict = coerceVerdict(v)
	}

	return report
}

func capture(re *regexp.Regexp, response string) (string, bool) {
	m := re.FindStringSubmatch(response)
	if m == nil {
		return "", false
	}
	value := strings.TrimSpace(m[1])
	if value == "" {
		return "", false
	}
	return value, true
}

var leadingIntRe = regexp.MustCompile(`^\d+`)

// coerceScore turns the captured score text into an integer in [0,100].
// Non-numeric or out-of-range values resolve to 0 rather than erroring.
func coerceScore(value string) int {
	digits := leadingIntRe.FindString(value)
	if digits == "" {
		return 0
	}
	score, err := strconv.Atoi(digits)
	if err != nil || score < 0 || score > 100 {
		return 0
	}
	return score
}

func coerceVerdict(value string) models.Verdict {
	lower := strings.ToLower(value)
	switch {
	case strings.Contains(lower, "strong"):
		return models.VerdictStrong
	case strings.Contains(lower, "moderate"):
		return models.VerdictModerate
	case strings.Contains(lower, "weak"):
		return models.VerdictWeak
	default:
		return models.VerdictUnknown
	}
}
