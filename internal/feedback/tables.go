package feedback

// skillCategories buckets known skills for learning-time estimates. Skills
// not listed here fall back to the "tool" category.
var skillCategories = map[string]string{
	"go":         "language",
	"python":     "language",
	"java":       "language",
	"javascript": "language",
	"typescript": "language",
	"c++":        "language",
	"c#":         "language",
	"ruby":       "language",
	"rust":       "language",
	"kotlin":     "language",
	"swift":      "language",
	"scala":      "language",
	"php":        "language",
	"sql":        "language",

	"react":   "framework",
	"angular": "framework",
	"vue":     "framework",
	"django":  "framework",
	"flask":   "framework",
	"spring":  "framework",
	"rails":   "framework",
	"node.js": "framework",
	"express": "framework",
	".net":    "framework",

	"postgresql":    "database",
	"mysql":         "database",
	"mongodb":       "database",
	"redis":         "database",
	"elasticsearch": "database",
	"cassandra":     "database",
	"dynamodb":      "database",

	"aws":        "cloud",
	"gcp":        "cloud",
	"azure":      "cloud",
	"kubernetes": "cloud",
	"docker":     "cloud",
	"terraform":  "cloud",

	"git":     "tool",
	"jenkins": "tool",
	"kafka":   "tool",
	"grpc":    "tool",
	"graphql": "tool",
	"linux":   "tool",

	"leadership":    "soft",
	"communication": "soft",
	"mentoring":     "soft",
}

// learningTimes is the fixed estimate per skill category.
var learningTimes = map[string]string{
	"language":  "2-4 months",
	"framework": "1-2 months",
	"database":  "3-6 weeks",
	"cloud":     "1-3 months",
	"tool":      "1-3 weeks",
	"soft":      "3-6 months",
}

func categoryOf(skill string) string {
	if cat, ok := skillCategories[skill]; ok {
		return cat
	}
	return "tool"
}

func learningTimeOf(skill string) string {
	return learningTimes[categoryOf(skill)]
}

// quickWinImpacts declares the estimated match-score points per action.
// The values are fixed estimates, not learned.
const (
	impactReferral       = 10.0
	impactCustomResume   = 8.0
	impactKeywords       = 5.0
	impactCoverLetter    = 4.0
	impactBusinessHours  = 2.0
	impactFreshPostings  = 3.0
)
