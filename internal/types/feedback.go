package types

// Feedback is the actionable improvement report derived from a Prediction.
// Everything in it comes from deterministic threshold and lookup tables.
type Feedback struct {
	MatchScore    int              `json:"match_score"`
	CriticalGaps  []SkillGap       `json:"critical_gaps"`
	Narratives    []GapNarrative   `json:"narratives"`
	ResumeChanges []ResumeSuggestion `json:"resume_changes"`
	QuickWins     []QuickWin       `json:"quick_wins"`
	LongTermGoals []LongTermGoal   `json:"long_term_goals"`
}

// SkillGap describes a required skill missing from the resume.
type SkillGap struct {
	Skill        string `json:"skill"`
	Category     string `json:"category"`
	LearningTime string `json:"learning_time"` // from the skill-category table
	Priority     string `json:"priority"`      // critical or helpful
}

// GapNarrative is a graduated message about an experience or education gap.
type GapNarrative struct {
	Area     string `json:"area"` // experience, education, seniority
	Severity string `json:"severity"` // minor, moderate, major
	Message  string `json:"message"`
}

// ResumeSuggestion is a concrete resume edit keyed on a feature threshold.
type ResumeSuggestion struct {
	Feature    string `json:"feature"`
	Suggestion string `json:"suggestion"`
}

// QuickWin is a low-effort change with a declared impact estimate.
type QuickWin struct {
	Action          string  `json:"action"`
	EstimatedImpact float64 `json:"estimated_impact"` // expected match-score points
}

// LongTermGoal is a longer-horizon improvement with a fixed timeline.
type LongTermGoal struct {
	Goal     string `json:"goal"`
	Timeline string `json:"timeline"`
}
