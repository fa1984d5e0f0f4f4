package types

// Rejection is any non-success status reported by the backend
type Rejection struct {
	Status  string `json:"status" yaml:"status"`
	Message string `json:"message" yaml:"message"`
}

// CareerResult is the decoded /career payload:
// *CareerGuidance, *UnknownCareer or *Rejection.
type CareerResult interface {
	careerResult()
}

func (*CareerGuidance) careerResult() {}
func (*UnknownCareer) careerResult()  {}
func (*Rejection) careerResult()      {}

// RecommendResult is the decoded /recommend payload: *Recommendations or *Rejection
type RecommendResult interface {
	recommendResult()
}

func (*Recommendations) recommendResult() {}
func (*Rejection) recommendResult()       {}

// SkillGapResult is the decoded /skill-gap payload: *SkillGap or *Rejection
type SkillGapResult interface {
	skillGapResult()
}

func (*SkillGap) skillGapResult()  {}
func (*Rejection) skillGapResult() {}

// CompareResult is the decoded /compare payload: *Comparison or *Rejection
type CompareResult interface {
	compareResult()
}

func (*Comparison) compareResult() {}
func (*Rejection) compareResult()  {}

// SearchResult is the decoded /onet/search payload: *SearchResults or *Rejection
type SearchResult interface {
	searchResult()
}

func (*SearchResults) searchResult() {}
func (*Rejection) searchResult()     {}

// StatisticsResult is the decoded /onet/statistics payload: *CareerStatistics or *Rejection
type StatisticsResult interface {
	statisticsResult()
}

func (*CareerStatistics) statisticsResult() {}
func (*Rejection) statisticsResult()        {}
