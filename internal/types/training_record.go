package types

import "time"

// OutcomeStatus enumerates the lifecycle states of a submitted application.
type OutcomeStatus string

const (
	StatusPending   OutcomeStatus = "pending"
	StatusInterview OutcomeStatus = "interview"
	StatusReject    OutcomeStatus = "reject"
	StatusOffer     OutcomeStatus = "offer"
	StatusWithdrawn OutcomeStatus = "withdrawn"
)

// Valid reports whether s is a known outcome status.
func (s OutcomeStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInterview, StatusReject, StatusOffer, StatusWithdrawn:
		return true
	}
	return false
}

// ApplicationContext captures metadata about how and when an application
// was submitted. Only timing-derived features are extracted from it.
type ApplicationContext struct {
	AppliedAt         time.Time `json:"applied_at"`
	Source            string    `json:"source,omitempty"` // linkedin, indeed, company-site, referral, other
	CustomResume      bool      `json:"custom_resume,omitempty"`
	CustomCoverLetter bool      `json:"custom_cover_letter,omitempty"`
	Referral          bool      `json:"referral,omitempty"`
}

// Outcome records the real-world result of an application. It is the only
// mutable part of a TrainingRecord; the latest value wins.
type Outcome struct {
	Status      OutcomeStatus `json:"status"`
	UpdatedAt   time.Time     `json:"updated_at"`
	InterviewAt *time.Time    `json:"interview_at,omitempty"`
	RejectedAt  *time.Time    `json:"rejected_at,omitempty"`
	OfferAt     *time.Time    `json:"offer_at,omitempty"`
	Feedback    string        `json:"feedback,omitempty"`
	Notes       string        `json:"notes,omitempty"`
}

// OutcomeUpdate is the inbound contract from the outcome-tracking layer.
type OutcomeUpdate struct {
	Status      OutcomeStatus `json:"status" validate:"required,oneof=pending interview reject offer withdrawn"`
	InterviewAt *time.Time    `json:"interview_at,omitempty"`
	RejectedAt  *time.Time    `json:"rejected_at,omitempty"`
	OfferAt     *time.Time    `json:"offer_at,omitempty"`
	Feedback    string        `json:"feedback,omitempty"`
	Notes       string        `json:"notes,omitempty"`
}

// TrainingRecord is one append-only application record. The job, resume and
// context snapshots are immutable; only Outcome is updated afterwards.
type TrainingRecord struct {
	ID        string             `json:"id"`
	CreatedAt time.Time          `json:"created_at"`
	Job       JobPosting         `json:"job" validate:"required"`
	Resume    Resume             `json:"resume" validate:"required"`
	Context   ApplicationContext `json:"context"`
	Outcome   Outcome            `json:"outcome"`
}

// Labeled reports whether the record carries a determinable training label.
// Pending and withdrawn applications carry no signal either way.
func (r *TrainingRecord) Labeled() bool {
	switch r.Outcome.Status {
	case StatusInterview, StatusOffer, StatusReject:
		return true
	}
	return false
}

// Label returns the binary training label: 1 for interview/offer, 0 for
// reject. The second return is false for unlabeled records.
func (r *TrainingRecord) Label() (int, bool) {
	switch r.Outcome.Status {
	case StatusInterview, StatusOffer:
		return 1, true
	case StatusReject:
		return 0, true
	}
	return 0, false
}
