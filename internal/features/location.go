package features

import (
	"strings"

	"github.com/jonathan/application-predictor/internal/types"
)

// Location match tiers.
const (
	locationSameCity    = 1.0
	locationSameState   = 0.7
	locationSameCountry = 0.4
	locationMismatch    = 0.2
	relocationBoost     = 0.3
)

// parsedLocation holds best-effort "City, State, Country" components.
type parsedLocation struct {
	city, state, country string
}

func parseLocation(loc string) parsedLocation {
	parts := strings.Split(strings.ToLower(loc), ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	var p parsedLocation
	switch len(parts) {
	case 0:
	case 1:
		p.city = parts[0]
	case 2:
		p.city, p.state = parts[0], parts[1]
	default:
		p.city, p.state, p.country = parts[0], parts[1], parts[len(parts)-1]
	}
	return p
}

// locationFeatures computes the location-group features. Remote postings and
// same-city matches score highest; willingness to relocate lifts mismatches.
func locationFeatures(job *types.JobPosting, resume *types.Resume, f *FeatureVector) {
	if resume.Preferences.WillingToRelocate {
		f.RelocationFlexibility = 1.0
	}

	if job.Remote {
		f.LocationMatchScore = locationSameCity
		return
	}
	if strings.TrimSpace(job.Location) == "" || strings.TrimSpace(resume.Location) == "" {
		f.LocationMatchScore = neutral("location_match_score")
		if resume.Preferences.WillingToRelocate {
			f.LocationMatchScore = clamp(f.LocationMatchScore+relocationBoost, 0, 1)
		}
		return
	}

	jobLoc := parseLocation(job.Location)
	userLoc := parseLocation(resume.Location)

	var score float64
	switch {
	case jobLoc.city != "" && jobLoc.city == userLoc.city:
		score = locationSameCity
	case jobLoc.state != "" && jobLoc.state == userLoc.state:
		score = locationSameState
	case jobLoc.country != "" && jobLoc.country == userLoc.country:
		score = locationSameCountry
	default:
		score = locationMismatch
	}

	if resume.Preferences.WillingToRelocate && score < locationSameCity {
		score = clamp(score+relocationBoost, 0, 1)
	}
	f.LocationMatchScore = score
}
