package model

// ValidationResult holds the outcome of validating one file.
//
// Issues are hard failures that make the validator exit non-zero.
// Warnings are soft problems that are reported but never affect the exit status.
// Passed lists the checks that succeeded, for verbose output.
type ValidationResult struct {
	File     string   `json:"file"`
	Issues   []string `json:"issues"`
	Warnings []string `json:"warnings"`
	Passed   []string `json:"passed"`

	// ReadError is set when the file could not be read. The file is then
	// counted as a single issue and no checks were run.
	ReadError string `json:"read_error,omitempty"`
}

// NewValidationResult creates an empty result for file.
func NewValidationResult(file string) *ValidationResult {
	return &ValidationResult{
		File:     file,
		Issues:   make([]string, 0),
		Warnings: make([]string, 0),
		Passed:   make([]string, 0),
	}
}

// AddIssue records a hard failure.
func (r *ValidationResult) AddIssue(msg string) {
	r.Issues = append(r.Issues, msg)
}

// AddWarning records a soft failure.
func (r *ValidationResult) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// AddPassed records a successful check.
func (r *ValidationResult) AddPassed(msg string) {
	r.Passed = append(r.Passed, msg)
}

// IsPerfect reports whether the file has neither issues nor warnings.
func (r *ValidationResult) IsPerfect() bool {
	return len(r.Issues) == 0 && len(r.Warnings) == 0
}

// ValidationSummary aggregates the results of one validator run.
type ValidationSummary struct {
	Results       []*ValidationResult `json:"results"`
	TotalPages    int                 `json:"total_pages"`
	PerfectPages  int                 `json:"perfect_pages"`
	ProblemPages  int                 `json:"problem_pages"`
	TotalIssues   int                 `json:"total_issues"`
	TotalWarnings int                 `json:"total_warnings"`
}

// NewValidationSummary tallies results.
func NewValidationSummary(results []*ValidationResult) *ValidationSummary {
	s := &ValidationSummary{
		Results:    results,
		TotalPages: len(results),
	}
	for _, r := range results {
		s.TotalIssues += len(r.Issues)
		s.TotalWarnings += len(r.Warnings)
		if r.IsPerfect() {
			s.PerfectPages++
		} else {
			s.ProblemPages++
		}
	}
	return s
}

// ProblemResults returns the results that have issues or warnings.
func (s *ValidationSummary) ProblemResults() []*ValidationResult {
	out := make([]*ValidationResult, 0, s.ProblemPages)
	for _, r := range s.Results {
		if !r.IsPerfect() {
			out = append(out, r)
		}
	}
	return out
}

// PerfectPercent returns the rounded share of perfect pages, 0 when empty.
func (s *ValidationSummary) PerfectPercent() int {
	if s.TotalPages == 0 {
		return 0
	}
	return int(float64(s.PerfectPages)/float64(s.TotalPages)*100 + 0.5)
}

// Passed reports whether no hard issue was found.
func (s *ValidationSummary) Passed() bool {
	return s.TotalIssues == 0
}

// ExitCode is 0 when no issue was found and 1 otherwise. Warnings never
// affect it.
func (s *ValidationSummary) ExitCode() int {
	if s.Passed() {
		return 0
	}
	return 1
}
