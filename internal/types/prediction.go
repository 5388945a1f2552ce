package types

// Prediction is the outbound contract of the prediction service.
type Prediction struct {
	MatchScore         int                `json:"match_score"` // 0-100
	Probability        float64            `json:"probability"` // 0-1
	Confidence         float64            `json:"confidence"`  // 0-1, distance from the decision boundary
	PredictedOutcome   string             `json:"predicted_outcome"` // success or failure
	ConfidenceInterval ConfidenceInterval `json:"confidence_interval"`
	FeatureBreakdown   FeatureBreakdown   `json:"feature_breakdown"`
	Comparison         Comparison         `json:"comparison"`
	Recommendation     Recommendation     `json:"recommendation"`
}

// ConfidenceInterval brackets the predicted probability.
type ConfidenceInterval struct {
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Margin float64 `json:"margin"`
	Level  string  `json:"level"` // high, medium, low
}

// FeatureContribution is one feature's weighted contribution to the score.
type FeatureContribution struct {
	Feature      string  `json:"feature"`
	Value        float64 `json:"value"`
	Importance   float64 `json:"importance"`
	Contribution float64 `json:"contribution"`
}

// FeatureBreakdown splits the feature vector into strengths, weaknesses and
// the overall top contributors.
type FeatureBreakdown struct {
	Strengths       []FeatureContribution `json:"strengths"`
	Weaknesses      []FeatureContribution `json:"weaknesses"`
	TopContributors []FeatureContribution `json:"top_contributors"`
}

// FeatureDelta compares one feature against the historical successful average.
type FeatureDelta struct {
	Feature    string  `json:"feature"`
	Value      float64 `json:"value"`
	SuccessAvg float64 `json:"success_avg"`
	Delta      float64 `json:"delta"`
}

// Comparison relates the current application to past applications that
// reached an interview. Available is false when no such history exists.
type Comparison struct {
	Available   bool           `json:"available"`
	SampleSize  int            `json:"sample_size,omitempty"`
	AheadOf     []FeatureDelta `json:"ahead_of,omitempty"`
	BehindOn    []FeatureDelta `json:"behind_on,omitempty"`
	OverallGap  float64        `json:"overall_gap,omitempty"`
	Explanation string         `json:"explanation,omitempty"`
}

// Recommendation is the tiered textual advice keyed on the match score.
type Recommendation struct {
	Level   string `json:"level"` // excellent, good, moderate, low
	Message string `json:"message"`
	Action  string `json:"action"`
}

// BatchPredictionItem is one element of a batch prediction result. Failed
// items carry Error and a nil Prediction rather than aborting the batch.
type BatchPredictionItem struct {
	Index      int         `json:"index"`
	JobTitle   string      `json:"job_title,omitempty"`
	Company    string      `json:"company,omitempty"`
	Prediction *Prediction `json:"prediction,omitempty"`
	Error      string      `json:"error,omitempty"`
}
