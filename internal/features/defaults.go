package features

import "math"

// Policy documents, per feature, the neutral default used when inputs are
// missing and the bounds every computed value is clamped to before it enters
// the vector. Keeping this in one table makes the degradation contract
// uniform instead of scattered across extractors.
type Policy struct {
	Neutral float64
	Min     float64
	Max     float64
}

var defaultPolicy = map[string]Policy{
	"required_skills_coverage":  {Neutral: 1.0, Min: 0, Max: 1}, // no listed requirements is a vacuous pass
	"preferred_skills_coverage": {Neutral: 0.5, Min: 0, Max: 1},
	"skill_match_score":         {Neutral: 0.5, Min: 0, Max: 1},
	"skill_depth_score":         {Neutral: 0, Min: 0, Max: 1},
	"total_experience_years":    {Neutral: 0, Min: 0, Max: 1},
	"experience_match_score":    {Neutral: 0.5, Min: 0, Max: 1},
	"experience_gap":            {Neutral: 0, Min: 0, Max: 10},
	"seniority_match_score":     {Neutral: 0.6, Min: 0.2, Max: 1},
	"industry_match":            {Neutral: 0.5, Min: 0, Max: 1},
	"recent_title_similarity":   {Neutral: 0, Min: 0, Max: 1},
	"education_level_match":     {Neutral: 0.5, Min: 0, Max: 1},
	"field_of_study_match":      {Neutral: 0.5, Min: 0, Max: 1},
	"gpa_score":                 {Neutral: 0.5, Min: 0, Max: 1},
	"school_prestige_bonus":     {Neutral: 0, Min: 0, Max: 0.2},
	"location_match_score":      {Neutral: 0.2, Min: 0, Max: 1}, // unknown location is the lowest-confidence match
	"relocation_flexibility":    {Neutral: 0, Min: 0, Max: 1},
	"posting_freshness":         {Neutral: 0.5, Min: 0, Max: 1},
	"applied_business_hours":    {Neutral: 0, Min: 0, Max: 1},
	"applied_weekday":           {Neutral: 0, Min: 0, Max: 1},
	"application_timing_score":  {Neutral: 0.5, Min: 0, Max: 1},
	"title_similarity":          {Neutral: 0, Min: 0, Max: 1},
	"description_similarity":    {Neutral: 0, Min: 0, Max: 1},
	"summary_relevance":         {Neutral: 0, Min: 0, Max: 1},
	"keyword_density":           {Neutral: 0, Min: 0, Max: 1},
	"buzzword_overlap":          {Neutral: 0, Min: 0, Max: 1},
	"company_size_score":        {Neutral: 0.5, Min: 0, Max: 1},
	"fortune500_company":        {Neutral: 0, Min: 0, Max: 1},
	"job_seniority_level":       {Neutral: 0.5, Min: 0, Max: 1},
	"salary_competitiveness":    {Neutral: 0.5, Min: 0, Max: 1},
	"remote_position":           {Neutral: 0, Min: 0, Max: 1},
	"application_competition":   {Neutral: 0.5, Min: 0, Max: 1},
	"custom_resume":             {Neutral: 0, Min: 0, Max: 1},
	"custom_cover_letter":       {Neutral: 0, Min: 0, Max: 1},
	"referral":                  {Neutral: 0, Min: 0, Max: 1},
	"__unknown__":               {Neutral: 0.5, Min: 0, Max: 1},
}

// neutral returns the documented neutral default for a feature.
func neutral(name string) float64 {
	if p, ok := defaultPolicy[name]; ok {
		return p.Neutral
	}
	return defaultPolicy["__unknown__"].Neutral
}

// clampTo bounds v to [lo, hi] and maps NaN/Inf to the neutral default so no
// pathological value can enter the vector.
func clampTo(name string, v float64) float64 {
	p, ok := defaultPolicy[name]
	if !ok {
		p = defaultPolicy["__unknown__"]
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return p.Neutral
	}
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
