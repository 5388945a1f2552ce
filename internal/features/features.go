// Package features converts (job posting, resume, application context)
// triples into fixed-length numeric feature vectors. Extraction is a pure,
// total function: it never fails, never produces NaN, and degrades missing
// or malformed inputs to documented neutral defaults.
package features

// SchemaVersion identifies the feature ordering contract. Persisted model
// weights are only valid against the schema version they were trained with.
const SchemaVersion = 1

// FeatureCount is the length of the numeric vector fed to the model.
const FeatureCount = 34

// FeatureVector holds the 34 numeric features extracted from one
// application, plus the parsed years requirement (nil when the posting does
// not state one). Field order here is documentation; the wire order is
// defined solely by Schema.
type FeatureVector struct {
	// Skill features
	RequiredSkillsCoverage  float64 `json:"required_skills_coverage"`
	PreferredSkillsCoverage float64 `json:"preferred_skills_coverage"`
	SkillMatchScore         float64 `json:"skill_match_score"`
	SkillDepthScore         float64 `json:"skill_depth_score"`

	// Experience features
	TotalExperienceYears float64 `json:"total_experience_years"`
	ExperienceMatchScore float64 `json:"experience_match_score"`
	ExperienceGap        float64 `json:"experience_gap"`
	SeniorityMatchScore  float64 `json:"seniority_match_score"`
	IndustryMatch        float64 `json:"industry_match"`
	RecentTitleSimilarity float64 `json:"recent_title_similarity"`

	// Education features
	EducationLevelMatch float64 `json:"education_level_match"`
	FieldOfStudyMatch   float64 `json:"field_of_study_match"`
	GPAScore            float64 `json:"gpa_score"`
	SchoolPrestigeBonus float64 `json:"school_prestige_bonus"`

	// Location features
	LocationMatchScore    float64 `json:"location_match_score"`
	RelocationFlexibility float64 `json:"relocation_flexibility"`

	// Timing features
	PostingFreshness       float64 `json:"posting_freshness"`
	AppliedBusinessHours   float64 `json:"applied_business_hours"`
	AppliedWeekday         float64 `json:"applied_weekday"`
	ApplicationTimingScore float64 `json:"application_timing_score"`

	// Text-similarity features
	TitleSimilarity       float64 `json:"title_similarity"`
	DescriptionSimilarity float64 `json:"description_similarity"`
	SummaryRelevance      float64 `json:"summary_relevance"`
	KeywordDensity        float64 `json:"keyword_density"`
	BuzzwordOverlap       float64 `json:"buzzword_overlap"`

	// Job-characteristic features
	CompanySizeScore       float64 `json:"company_size_score"`
	Fortune500Company      float64 `json:"fortune500_company"`
	JobSeniorityLevel      float64 `json:"job_seniority_level"`
	SalaryCompetitiveness  float64 `json:"salary_competitiveness"`
	RemotePosition         float64 `json:"remote_position"`
	ApplicationCompetition float64 `json:"application_competition"`

	// Application-context features
	CustomResume      float64 `json:"custom_resume"`
	CustomCoverLetter float64 `json:"custom_cover_letter"`
	Referral          float64 `json:"referral"`

	// RequiredYears is the years requirement parsed from the posting,
	// nil when none was stated. It is not part of the numeric vector.
	RequiredYears *float64 `json:"required_years"`
}

// schema is the canonical feature order. Persisted model weights index into
// vectors by these positions; never reorder existing entries, only append.
var schema = []string{
	"required_skills_coverage",
	"preferred_skills_coverage",
	"skill_match_score",
	"skill_depth_score",
	"total_experience_years",
	"experience_match_score",
	"experience_gap",
	"seniority_match_score",
	"industry_match",
	"recent_title_similarity",
	"education_level_match",
	"field_of_study_match",
	"gpa_score",
	"school_prestige_bonus",
	"location_match_score",
	"relocation_flexibility",
	"posting_freshness",
	"applied_business_hours",
	"applied_weekday",
	"application_timing_score",
	"title_similarity",
	"description_similarity",
	"summary_relevance",
	"keyword_density",
	"buzzword_overlap",
	"company_size_score",
	"fortune500_company",
	"job_seniority_level",
	"salary_competitiveness",
	"remote_position",
	"application_competition",
	"custom_resume",
	"custom_cover_letter",
	"referral",
}

// Schema returns the ordered feature names. The returned slice is a copy.
func Schema() []string {
	out := make([]string, len(schema))
	copy(out, schema)
	return out
}

// Vector returns the features as an ordered slice matching Schema.
func (f *FeatureVector) Vector() []float64 {
	return []float64{
		f.RequiredSkillsCoverage,
		f.PreferredSkillsCoverage,
		f.SkillMatchScore,
		f.SkillDepthScore,
		f.TotalExperienceYears,
		f.ExperienceMatchScore,
		f.ExperienceGap,
		f.SeniorityMatchScore,
		f.IndustryMatch,
		f.RecentTitleSimilarity,
		f.EducationLevelMatch,
		f.FieldOfStudyMatch,
		f.GPAScore,
		f.SchoolPrestigeBonus,
		f.LocationMatchScore,
		f.RelocationFlexibility,
		f.PostingFreshness,
		f.AppliedBusinessHours,
		f.AppliedWeekday,
		f.ApplicationTimingScore,
		f.TitleSimilarity,
		f.DescriptionSimilarity,
		f.SummaryRelevance,
		f.KeywordDensity,
		f.BuzzwordOverlap,
		f.CompanySizeScore,
		f.Fortune500Company,
		f.JobSeniorityLevel,
		f.SalaryCompetitiveness,
		f.RemotePosition,
		f.ApplicationCompetition,
		f.CustomResume,
		f.CustomCoverLetter,
		f.Referral,
	}
}

// ByName returns the feature value for a schema name. Unknown names return
// the neutral default for safety rather than panicking.
func (f *FeatureVector) ByName(name string) float64 {
	vec := f.Vector()
	for i, n := range schema {
		if n == name {
			return vec[i]
		}
	}
	return defaultPolicy["__unknown__"].Neutral
}
