package features

// Fixed vocabularies and lookup tables used by the extractors. These are
// part of the feature contract: changing them changes feature values, which
// invalidates persisted model weights, so treat edits as schema changes.

// skillVocabulary is the canonical skill list used for substring matching
// against posting text. Entries are lowercase.
var skillVocabulary = []string{
	"go", "golang", "python", "java", "javascript", "typescript", "c++", "c#",
	"ruby", "rust", "kotlin", "swift", "scala", "php", "sql", "html", "css",
	"react", "angular", "vue", "node.js", "django", "flask", "spring",
	"rails", "express", ".net", "graphql", "rest", "grpc",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch", "kafka",
	"rabbitmq", "cassandra", "dynamodb", "sqlite", "oracle",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "ansible",
	"jenkins", "ci/cd", "git", "linux", "bash",
	"machine learning", "deep learning", "nlp", "computer vision",
	"tensorflow", "pytorch", "pandas", "numpy", "spark", "hadoop",
	"data analysis", "data engineering", "etl", "tableau", "power bi",
	"agile", "scrum", "jira", "product management", "project management",
	"ux", "ui design", "figma", "accessibility",
	"microservices", "distributed systems", "system design", "api design",
	"security", "networking", "testing", "tdd", "debugging",
	"communication", "leadership", "mentoring", "stakeholder management",
}

// preferredMarkers flag a sentence as listing nice-to-have skills rather
// than hard requirements.
var preferredMarkers = []string{
	"preferred", "nice to have", "nice-to-have", "bonus", "a plus",
	"plus but not required", "desirable", "ideally", "would be great",
}

// seniorityLevels maps title keywords to an ordinal scale. Matching is
// longest-keyword-first so "senior staff" resolves deterministically.
var seniorityLevels = map[string]int{
	"intern":         1,
	"internship":     1,
	"entry":          2,
	"graduate":       2,
	"junior":         2,
	"associate":      3,
	"mid":            4,
	"senior":         5,
	"sr":             5,
	"staff":          6,
	"lead":           6,
	"principal":      7,
	"manager":        7,
	"architect":      7,
	"director":       8,
	"vp":             8,
	"vice president": 8,
	"head of":        8,
	"executive":      9,
	"chief":          9,
	"cto":            9,
	"ceo":            9,
}

// defaultSeniorityLevel is assumed when a title carries no level keyword.
const defaultSeniorityLevel = 4

// educationLevels maps degree keywords to an ordinal scale.
var educationLevels = map[string]int{
	"high school":   1,
	"ged":           1,
	"associate":     2,
	"bachelor":      3,
	"bachelors":     3,
	"bs":            3,
	"ba":            3,
	"b.s.":          3,
	"b.a.":          3,
	"undergraduate": 3,
	"master":        4,
	"masters":       4,
	"ms":            4,
	"m.s.":          4,
	"mba":           4,
	"phd":           5,
	"ph.d":          5,
	"doctorate":     5,
	"doctoral":      5,
}

// relatedFields grants partial credit when the studied field is adjacent to
// the required one.
var relatedFields = map[string][]string{
	"computer science":       {"software engineering", "computer engineering", "information technology", "mathematics", "data science"},
	"software engineering":   {"computer science", "computer engineering", "information technology"},
	"data science":           {"statistics", "mathematics", "computer science", "physics"},
	"statistics":             {"mathematics", "data science", "economics"},
	"mathematics":            {"statistics", "physics", "computer science"},
	"electrical engineering": {"computer engineering", "physics", "mechanical engineering"},
	"business":               {"economics", "finance", "marketing", "management"},
	"finance":                {"economics", "business", "accounting", "mathematics"},
	"marketing":              {"business", "communications", "psychology"},
	"design":                 {"fine arts", "human-computer interaction", "psychology"},
}

// relatedFieldCredit is the partial score for an adjacent field of study.
const relatedFieldCredit = 0.7

// prestigeSchools is the fixed institution list that earns the flat bonus.
var prestigeSchools = []string{
	"mit", "massachusetts institute of technology", "stanford", "harvard",
	"berkeley", "carnegie mellon", "princeton", "caltech", "oxford",
	"cambridge", "eth zurich", "georgia tech", "cornell", "columbia",
	"university of washington", "university of toronto", "waterloo",
	"tsinghua", "iit",
}

// prestigeBonus is the flat addition for a prestige-list institution.
const prestigeBonus = 0.2

// fortune500Companies is a fixed lookup of large-cap employers, lowercase.
var fortune500Companies = map[string]bool{
	"walmart": true, "amazon": true, "apple": true, "alphabet": true,
	"google": true, "microsoft": true, "meta": true, "berkshire hathaway": true,
	"jpmorgan chase": true, "exxon mobil": true, "unitedhealth": true,
	"cvs health": true, "costco": true, "chevron": true, "cigna": true,
	"ford": true, "general motors": true, "bank of america": true,
	"johnson & johnson": true, "pfizer": true, "pepsico": true,
	"home depot": true, "verizon": true, "at&t": true, "comcast": true,
	"wells fargo": true, "citigroup": true, "goldman sachs": true,
	"morgan stanley": true, "intel": true, "ibm": true, "hp": true,
	"dell": true, "oracle": true, "salesforce": true, "cisco": true,
	"nvidia": true, "netflix": true, "disney": true, "boeing": true,
	"lockheed martin": true, "ups": true, "fedex": true, "target": true,
	"nike": true, "starbucks": true, "mcdonald's": true, "visa": true,
	"mastercard": true, "paypal": true, "adobe": true, "qualcomm": true,
	"tesla": true, "uber": true, "airbnb": true,
}

// buzzwords is the fixed list used for the buzzword-overlap feature.
var buzzwords = []string{
	"innovative", "passionate", "self-starter", "team player", "fast-paced",
	"dynamic", "synergy", "results-driven", "detail-oriented", "proactive",
	"cross-functional", "scalable", "cutting-edge", "best practices",
	"thought leadership", "ownership", "impact", "data-driven",
	"collaborative", "agile",
}

// companySizeScores normalizes the company-size enum.
var companySizeScores = map[string]float64{
	"startup":    0.2,
	"small":      0.4,
	"medium":     0.6,
	"large":      0.8,
	"enterprise": 0.9,
}

// marketSalaryByBand is a fixed annual market-average table keyed by the
// collapsed seniority band, used for salary competitiveness.
var marketSalaryByBand = map[string]float64{
	"entry":     70000,  // levels 1-2
	"associate": 90000,  // level 3
	"mid":       115000, // level 4
	"senior":    150000, // levels 5-6
	"principal": 185000, // levels 7
	"executive": 230000, // levels 8-9
}

// salaryBand collapses an ordinal seniority level into a market band.
func salaryBand(level int) string {
	switch {
	case level <= 2:
		return "entry"
	case level == 3:
		return "associate"
	case level == 4:
		return "mid"
	case level <= 6:
		return "senior"
	case level == 7:
		return "principal"
	default:
		return "executive"
	}
}

// stopwords are excluded from the keyword-density top-word selection.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true, "you": true,
	"are": true, "our": true, "will": true, "this": true, "that": true,
	"have": true, "your": true, "from": true, "their": true, "they": true,
	"has": true, "been": true, "were": true, "was": true, "can": true,
	"all": true, "who": true, "what": true, "when": true, "where": true,
	"not": true, "but": true, "its": true, "into": true, "than": true,
	"them": true, "then": true, "these": true, "those": true, "such": true,
	"more": true, "most": true, "other": true, "some": true, "also": true,
	"about": true, "out": true, "over": true, "per": true, "via": true,
	"within": true, "across": true, "including": true, "etc": true,
	"job": true, "role": true, "work": true, "team": true, "company": true,
	"position": true, "candidate": true, "experience": true, "years": true,
	"ability": true, "strong": true, "required": true, "preferred": true,
	"skills": true, "knowledge": true, "will be": true, "must": true,
	"you'll": true, "we're": true, "looking": true, "join": true,
}
