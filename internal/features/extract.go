package features

import (
	"strings"
	"time"

	"github.com/jonathan/application-predictor/internal/types"
)

// Extractor builds feature vectors. It carries no mutable state and is safe
// for concurrent use. Now is injectable so open-ended experience spans are
// testable with fixed dates.
type Extractor struct {
	Now func() time.Time
}

// NewExtractor returns an Extractor using the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{Now: time.Now}
}

// Extract converts an application triple into the 34-feature vector. It is
// total: nil inputs and missing fields degrade to the documented neutral
// defaults, and every field is clamped to its policy bounds, so the result
// is always finite and in range.
func (e *Extractor) Extract(job *types.JobPosting, resume *types.Resume, ctx *types.ApplicationContext) *FeatureVector {
	if job == nil {
		job = &types.JobPosting{}
	}
	if resume == nil {
		resume = &types.Resume{}
	}
	if ctx == nil {
		ctx = &types.ApplicationContext{}
	}
	now := time.Now()
	if e.Now != nil {
		now = e.Now()
	}

	f := &FeatureVector{}

	skillFeatures(job, resume, f)
	experienceFeatures(job, resume, now, f)
	educationFeatures(job, resume, f)
	locationFeatures(job, resume, f)
	timingFeatures(job, ctx, f)
	textFeatures(job, resume, f)
	jobCharacteristicFeatures(job, f)

	if ctx.CustomResume {
		f.CustomResume = 1.0
	}
	if ctx.CustomCoverLetter {
		f.CustomCoverLetter = 1.0
	}
	if ctx.Referral {
		f.Referral = 1.0
	}

	f.clampAll()
	return f
}

// textFeatures computes the text-similarity features.
func textFeatures(job *types.JobPosting, resume *types.Resume, f *FeatureVector) {
	resumeText := resumeFullText(resume)

	var bestTitle float64
	candidates := append([]string{}, resume.TargetTitles...)
	if latest := latestExperience(resume); latest != nil {
		candidates = append(candidates, latest.Title)
	}
	for _, c := range candidates {
		if s := jaccardSimilarity(job.Title, c); s > bestTitle {
			bestTitle = s
		}
	}
	f.TitleSimilarity = bestTitle

	f.DescriptionSimilarity = cosineSimilarity(job.Description, resumeText)
	if resume.Summary == "" {
		f.SummaryRelevance = neutral("summary_relevance")
	} else {
		f.SummaryRelevance = jaccardSimilarity(job.Description, resume.Summary)
	}
	f.KeywordDensity = keywordDensity(job.Description, resumeText)
	f.BuzzwordOverlap = buzzwordOverlap(job.Description, resumeText)
}

// resumeFullText flattens a resume into one searchable text blob.
func resumeFullText(resume *types.Resume) string {
	var sb strings.Builder
	sb.WriteString(resume.Summary)
	sb.WriteString(" ")
	for i := range resume.Experience {
		e := &resume.Experience[i]
		sb.WriteString(e.Title)
		sb.WriteString(" ")
		sb.WriteString(e.Company)
		sb.WriteString(" ")
		for _, r := range e.Responsibilities {
			sb.WriteString(r)
			sb.WriteString(" ")
		}
	}
	for i := range resume.Education {
		sb.WriteString(resume.Education[i].Degree)
		sb.WriteString(" ")
		sb.WriteString(resume.Education[i].Field)
		sb.WriteString(" ")
	}
	for _, s := range resume.Skills {
		sb.WriteString(s)
		sb.WriteString(" ")
	}
	return sb.String()
}

// clampAll bounds every feature to its policy range.
func (f *FeatureVector) clampAll() {
	f.RequiredSkillsCoverage = clampTo("required_skills_coverage", f.RequiredSkillsCoverage)
	f.PreferredSkillsCoverage = clampTo("preferred_skills_coverage", f.PreferredSkillsCoverage)
	f.SkillMatchScore = clampTo("skill_match_score", f.SkillMatchScore)
	f.SkillDepthScore = clampTo("skill_depth_score", f.SkillDepthScore)
	f.TotalExperienceYears = clampTo("total_experience_years", f.TotalExperienceYears)
	f.ExperienceMatchScore = clampTo("experience_match_score", f.ExperienceMatchScore)
	f.ExperienceGap = clampTo("experience_gap", f.ExperienceGap)
	f.SeniorityMatchScore = clampTo("seniority_match_score", f.SeniorityMatchScore)
	f.IndustryMatch = clampTo("industry_match", f.IndustryMatch)
	f.RecentTitleSimilarity = clampTo("recent_title_similarity", f.RecentTitleSimilarity)
	f.EducationLevelMatch = clampTo("education_level_match", f.EducationLevelMatch)
	f.FieldOfStudyMatch = clampTo("field_of_study_match", f.FieldOfStudyMatch)
	f.GPAScore = clampTo("gpa_score", f.GPAScore)
	f.SchoolPrestigeBonus = clampTo("school_prestige_bonus", f.SchoolPrestigeBonus)
	f.LocationMatchScore = clampTo("location_match_score", f.LocationMatchScore)
	f.RelocationFlexibility = clampTo("relocation_flexibility", f.RelocationFlexibility)
	f.PostingFreshness = clampTo("posting_freshness", f.PostingFreshness)
	f.AppliedBusinessHours = clampTo("applied_business_hours", f.AppliedBusinessHours)
	f.AppliedWeekday = clampTo("applied_weekday", f.AppliedWeekday)
	f.ApplicationTimingScore = clampTo("application_timing_score", f.ApplicationTimingScore)
	f.TitleSimilarity = clampTo("title_similarity", f.TitleSimilarity)
	f.DescriptionSimilarity = clampTo("description_similarity", f.DescriptionSimilarity)
	f.SummaryRelevance = clampTo("summary_relevance", f.SummaryRelevance)
	f.KeywordDensity = clampTo("keyword_density", f.KeywordDensity)
	f.BuzzwordOverlap = clampTo("buzzword_overlap", f.BuzzwordOverlap)
	f.CompanySizeScore = clampTo("company_size_score", f.CompanySizeScore)
	f.Fortune500Company = clampTo("fortune500_company", f.Fortune500Company)
	f.JobSeniorityLevel = clampTo("job_seniority_level", f.JobSeniorityLevel)
	f.SalaryCompetitiveness = clampTo("salary_competitiveness", f.SalaryCompetitiveness)
	f.RemotePosition = clampTo("remote_position", f.RemotePosition)
	f.ApplicationCompetition = clampTo("application_competition", f.ApplicationCompetition)
	f.CustomResume = clampTo("custom_resume", f.CustomResume)
	f.CustomCoverLetter = clampTo("custom_cover_letter", f.CustomCoverLetter)
	f.Referral = clampTo("referral", f.Referral)
}
