package models

// ScreeningCriteria is the optional skill criteria supplied once per
// screening run and shared read-only across all documents in that run.
type ScreeningCriteria struct {
	TechnicalSkills []string `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`
}

// IsEmpty reports whether no criteria were provided at all.
func (c ScreeningCriteria) IsEmpty() bool {
	return len(c.TechnicalSkills) == 0 && len(c.SoftSkills) == 0
}

// Verdict is the coarse three-level fit classification returned by the model.
type Verdict string

const (
	VerdictStrong   Verdict = "Strong Match"
	VerdictModerate Verdict = "Moderate Match"
	VerdictWeak     Verdict = "Weak Match"
	VerdictUnknown  Verdict = "Unknown"
)

// NotFound is the sentinel stored for any string field the model response
// did not contain.
const NotFound = "Not found"

// AnalysisReport is the parsed screening result for one resume. It is
// immutable once produced and lives only for the duration of the run.
type AnalysisReport struct {
	Filename         string           `json:"filename"`
	CandidateName    string           `json:"candidate_name"`
	MatchScore       int              `json:"match_score"`
	FoundSkills      string           `json:"found_skills"`
	MissingSkills    string           `json:"missing_skills"`
	YearsExperience  string           `json:"years_experience"`
	Education        string           `json:"education"`
	Verdict          Verdict          `json:"verdict"`
	ExtractionMethod ExtractionMethod `json:"extraction_method"`
	RawResponse      string           `json:"raw_response"`
}

// DocumentError is the per-document failure record surfaced alongside the
// successful reports. Failures never abort the batch.
type DocumentError struct {
	Filename string `json:"filename"`
	Stage    string `json:"stage"`
	Message  string `json:"message"`
}

// ScreeningResult is the outcome of one run: successes ranked by descending
// match score plus the failures, both always surfaced to the caller.
type ScreeningResult struct {
	Reports  []AnalysisReport `json:"reports"`
	Failures []DocumentError  `json:"failures"`
}
