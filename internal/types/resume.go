package types

import "time"

// Resume represents an immutable snapshot of a candidate resume at the time
// an application is made.
type Resume struct {
	Summary      string       `json:"summary,omitempty"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education,omitempty"`
	Skills       []string     `json:"skills"` // unique, order irrelevant
	Location     string       `json:"location,omitempty"`
	TargetTitles []string     `json:"target_titles,omitempty"`
	Preferences  Preferences  `json:"preferences,omitempty"`
}

// Experience represents a single work-history entry.
type Experience struct {
	Title            string     `json:"title"`
	Company          string     `json:"company,omitempty"`
	StartDate        time.Time  `json:"start_date"`
	EndDate          *time.Time `json:"end_date,omitempty"` // nil when Current
	Current          bool       `json:"current,omitempty"`
	Responsibilities []string   `json:"responsibilities,omitempty"`
	Industry         string     `json:"industry,omitempty"`
	CompanySize      string     `json:"company_size,omitempty"`
}

// Months returns the span of the entry in whole months as of now.
// Open-ended entries (Current or missing end date) count up to now.
func (e *Experience) Months(now time.Time) int {
	if e.StartDate.IsZero() {
		return 0
	}
	end := now
	if !e.Current && e.EndDate != nil {
		end = *e.EndDate
	}
	if end.Before(e.StartDate) {
		return 0
	}
	months := int(end.Sub(e.StartDate).Hours() / (24 * 30.44))
	return months
}

// Education represents a single education entry.
type Education struct {
	Degree         string  `json:"degree"` // high-school, associate, bachelor, master, phd
	Field          string  `json:"field,omitempty"`
	School         string  `json:"school,omitempty"`
	GPA            float64 `json:"gpa,omitempty"` // 0 when not reported
	GraduationYear int     `json:"graduation_year,omitempty"`
}

// Preferences captures candidate-side application preferences.
type Preferences struct {
	WillingToRelocate bool `json:"willing_to_relocate,omitempty"`
}
