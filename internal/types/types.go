package types

// Status values the career backend tags its payloads with
const (
	StatusSuccess = "success"
	StatusUnknown = "unknown"
	StatusError   = "error"
)

// Level labels accepted by the /career endpoint. The backend normalizes
// anything else to LevelFresher.
const (
	LevelStudent      = "student"
	LevelFresher      = "fresher"
	LevelProfessional = "professional"
)

// Levels lists the career levels in the order the UI offers them
var Levels = []string{LevelStudent, LevelFresher, LevelProfessional}

// CareerGuidance is the full guidance payload for a known career
type CareerGuidance struct {
	Career          string          `json:"career" yaml:"career"`
	Level           string          `json:"level" yaml:"level"`
	MatchConfidence *float64        `json:"match_confidence,omitempty" yaml:"match_confidence,omitempty"`
	Focus           string          `json:"focus" yaml:"focus"`
	Roadmap         []string        `json:"roadmap" yaml:"roadmap"`
	Skills          []string        `json:"skills" yaml:"skills"`
	Market          string          `json:"market" yaml:"market"`
	Future          string          `json:"future" yaml:"future"`
	Resources       []Resource      `json:"resources" yaml:"resources"`
	Tips            []string        `json:"tips" yaml:"tips"`
	AIGuidance      string          `json:"ai_personalized_guidance,omitempty" yaml:"ai_personalized_guidance,omitempty"`
	SimilarCareers  []SimilarCareer `json:"similar_careers,omitempty" yaml:"similar_careers,omitempty"`
}

// SimilarCareer is a related career with a backend-formatted similarity ("87.0%")
type SimilarCareer struct {
	Career     string `json:"career" yaml:"career"`
	Similarity string `json:"similarity" yaml:"similarity"`
}

// UnknownCareer is returned when the backend has no data for the requested career
type UnknownCareer struct {
	Career     string   `json:"career" yaml:"career"`
	Message    string   `json:"message" yaml:"message"`
	Suggestion string   `json:"suggestion" yaml:"suggestion"`
	Tips       []string `json:"tips" yaml:"tips"`
}

// SkillRecommendation is one ranked career for a set of skills
type SkillRecommendation struct {
	Career         string   `json:"career" yaml:"career"`
	MatchScore     string   `json:"match_score" yaml:"match_score"`
	MatchingSkills []string `json:"matching_skills" yaml:"matching_skills"`
	SkillsToLearn  int      `json:"skills_to_learn" yaml:"skills_to_learn"`
}

// Recommendations is the success payload of /recommend
type Recommendations struct {
	InputSkills     []string              `json:"input_skills" yaml:"input_skills"`
	Recommendations []SkillRecommendation `json:"recommendations" yaml:"recommendations"`
}

// Salary holds yearly salary figures; zero means the backend omitted the level
type Salary struct {
	Entry  int `json:"entry,omitempty" yaml:"entry,omitempty"`
	Mid    int `json:"mid,omitempty" yaml:"mid,omitempty"`
	Senior int `json:"senior,omitempty" yaml:"senior,omitempty"`
}

// ComparedCareer is one column of a comparison
type ComparedCareer struct {
	Name       string   `json:"name" yaml:"name"`
	Salary     Salary   `json:"salary" yaml:"salary"`
	Skills     []string `json:"skills" yaml:"skills"`
	JobOutlook string   `json:"job_outlook" yaml:"job_outlook"`
}

// Comparison is the success payload of /compare
type Comparison struct {
	Careers []ComparedCareer `json:"careers" yaml:"careers"`
}

// SkillGap is the success payload of /skill-gap
type SkillGap struct {
	Career               string   `json:"career" yaml:"career"`
	SkillMatchPercentage float64  `json:"skill_match_percentage" yaml:"skill_match_percentage"`
	AnalysisSummary      string   `json:"analysis_summary" yaml:"analysis_summary"`
	MatchingSkills       []string `json:"matching_skills" yaml:"matching_skills"`
	MissingSkills        []string `json:"missing_skills" yaml:"missing_skills"`
}

// SearchResultItem is one career card of a catalog search.
// MatchScore is opaque backend text and is displayed as-is.
type SearchResultItem struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	SalaryEntry int      `json:"salary_entry,omitempty" yaml:"salary_entry,omitempty"`
	JobOutlook  string   `json:"job_outlook,omitempty" yaml:"job_outlook,omitempty"`
	Skills      []string `json:"skills,omitempty" yaml:"skills,omitempty"`
	MatchScore  string   `json:"match_score,omitempty" yaml:"match_score,omitempty"`
}

// SearchResults is the success payload of /onet/search. Keyword is the
// query as submitted, filled in by the client.
type SearchResults struct {
	Keyword string             `json:"keyword" yaml:"keyword"`
	Total   int                `json:"total" yaml:"total"`
	Results []SearchResultItem `json:"results" yaml:"results"`
}

// CareerStatistics is the success payload of /onet/statistics/{name}
type CareerStatistics struct {
	Career      string   `json:"career" yaml:"career"`
	JobOutlook  string   `json:"job_outlook" yaml:"job_outlook"`
	Salary      Salary   `json:"salary" yaml:"salary"`
	Skills      []string `json:"skills" yaml:"skills"`
	Description string   `json:"description" yaml:"description"`
	Keywords    []string `json:"keywords" yaml:"keywords"`
}

// AIStatus summarizes /ai-status: the names of the guidance providers the
// backend has configured, in backend order.
type AIStatus struct {
	Providers []string `json:"providers" yaml:"providers"`
}

// Active reports whether any AI provider is configured
func (s AIStatus) Active() bool {
	return len(s.Providers) > 0
}
