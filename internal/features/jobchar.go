package features

import (
	"strings"

	"github.com/jonathan/application-predictor/internal/types"
)

// Competition normalization: postings with this many applicants or more
// score as maximally competitive.
const competitionSaturation = 500.0

// Salary competitiveness is capped at 1.5x the market average before
// normalizing into [0,1].
const salaryCompetitivenessCap = 1.5

// jobCharacteristicFeatures computes the job-characteristic features.
func jobCharacteristicFeatures(job *types.JobPosting, f *FeatureVector) {
	if score, ok := companySizeScores[strings.ToLower(strings.TrimSpace(job.CompanySize))]; ok {
		f.CompanySizeScore = score
	} else {
		f.CompanySizeScore = neutral("company_size_score")
	}

	if fortune500Companies[strings.ToLower(strings.TrimSpace(job.Company))] {
		f.Fortune500Company = 1.0
	}

	level := seniorityFromTitle(job.Title)
	f.JobSeniorityLevel = float64(level) / 9.0

	mid := job.SalaryMidpoint()
	if mid <= 0 {
		f.SalaryCompetitiveness = neutral("salary_competitiveness")
	} else {
		market := marketSalaryByBand[salaryBand(level)]
		ratio := clamp(mid/market, 0, salaryCompetitivenessCap)
		f.SalaryCompetitiveness = ratio / salaryCompetitivenessCap
	}

	if job.Remote {
		f.RemotePosition = 1.0
	}

	if job.ApplicantCount <= 0 {
		f.ApplicationCompetition = neutral("application_competition")
	} else {
		// Higher means less crowded.
		f.ApplicationCompetition = 1.0 - clamp(float64(job.ApplicantCount)/competitionSaturation, 0, 1)
	}
}
