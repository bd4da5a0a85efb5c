package reviews

import "strings"

type Response struct {
	Content string `json:"content"`
	Date    string `json:"date"`
}

type Review struct {
	ID         string    `json:"id"`
	ClientName string    `json:"clientName"`
	LawyerName string    `json:"lawyerName"`
	LawyerID   string    `json:"lawyerId"`
	Rating     int       `json:"rating"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CaseType   string    `json:"caseType"`
	Date       string    `json:"date"`
	Helpful    int       `json:"helpful"`
	Verified   bool      `json:"verified"`
	Response   *Response `json:"response,omitempty"`
}

type LawyerStats struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Avatar             string      `json:"avatar,omitempty"`
	TotalReviews       int         `json:"totalReviews"`
	AverageRating      float64     `json:"averageRating"`
	RatingDistribution map[int]int `json:"ratingDistribution"`
	ResponseRate       int         `json:"responseRate"`
	RecommendationRate int         `json:"recommendationRate"`
}

type Filter struct {
	LawyerID string
	CaseType string
	Query    string
}

func (f Filter) Matches(r Review) bool {
	if f.LawyerID != "" && r.LawyerID != f.LawyerID {
		return false
	}
	if f.CaseType != "" && r.CaseType != f.CaseType {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		return strings.Contains(strings.ToLower(r.LawyerName), q) ||
			strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Content), q)
	}
	return true
}

type SubmitRequest struct {
	LawyerID  string `json:"lawyerId" validate:"notblank"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Title     string `json:"title" validate:"notblank,max=200"`
	Content   string `json:"content" validate:"notblank,max=5000"`
	CaseType  string `json:"caseType"`
	Recommend *bool  `json:"recommend"`
}

type SubmitResult struct {
	Success  bool   `json:"success"`
	ReviewID string `json:"reviewId"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}
