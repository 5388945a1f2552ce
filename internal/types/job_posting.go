// Package types provides type definitions for structured data used throughout the application-predictor system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// JobPosting represents an immutable snapshot of a job posting at the time
// an application is made.
type JobPosting struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Company        string     `json:"company"`
	CompanySize    string     `json:"company_size,omitempty"` // startup, small, medium, large, enterprise
	Location       string     `json:"location,omitempty"`     // "City, State, Country" best effort
	Remote         bool       `json:"remote,omitempty"`
	SalaryMin      float64    `json:"salary_min,omitempty"`
	SalaryMax      float64    `json:"salary_max,omitempty"`
	PostedDate     *time.Time `json:"posted_date,omitempty"`
	ApplicantCount int        `json:"applicant_count,omitempty"` // popularity proxy, 0 if unknown
}

// SalaryMidpoint returns the midpoint of the advertised salary range,
// or 0 if no range is present.
func (j *JobPosting) SalaryMidpoint() float64 {
	switch {
	case j.SalaryMin > 0 && j.SalaryMax > 0:
		return (j.SalaryMin + j.SalaryMax) / 2
	case j.SalaryMin > 0:
		return j.SalaryMin
	case j.SalaryMax > 0:
		return j.SalaryMax
	default:
		return 0
	}
}
