package lawyers

import (
	"sort"
	"strconv"
	"strings"
)

type Availability string

const (
	AvailabilityAvailable   Availability = "Available"
	AvailabilityBusy        Availability = "Busy"
	AvailabilityUnavailable Availability = "Unavailable"
)

type Lawyer struct {
	ID             string       `json:"id" bson:"_id"`
	Name           string       `json:"name" bson:"name"`
	Specialty      []string     `json:"specialty" bson:"specialty"`
	Rating         float64      `json:"rating" bson:"rating"`
	ReviewCount    int          `json:"reviewCount" bson:"reviewCount"`
	Experience     int          `json:"experience" bson:"experience"`
	HourlyRate     float64      `json:"hourlyRate" bson:"hourlyRate"`
	Location       string       `json:"location" bson:"location"`
	Bio            string       `json:"bio" bson:"bio"`
	Education      []string     `json:"education" bson:"education"`
	Certifications []string     `json:"certifications" bson:"certifications"`
	Languages      []string     `json:"languages" bson:"languages"`
	Availability   Availability `json:"availability" bson:"availability"`
	ProfileImage   string       `json:"profileImage,omitempty" bson:"profileImage,omitempty"`
	CaseTypes      []string     `json:"caseTypes" bson:"caseTypes"`
	SuccessRate    int          `json:"successRate" bson:"successRate"`
}

type CreateRequest struct {
	Name           string       `json:"name" validate:"notblank,max=200"`
	Specialty      []string     `json:"specialty" validate:"min=1,dive,notblank"`
	Rating         float64      `json:"rating" validate:"min=0,max=5"`
	ReviewCount    int          `json:"reviewCount" validate:"min=0"`
	Experience     int          `json:"experience" validate:"min=0,max=80"`
	HourlyRate     float64      `json:"hourlyRate" validate:"min=0"`
	Location       string       `json:"location" validate:"notblank,max=200"`
	Bio            string       `json:"bio" validate:"max=5000"`
	Education      []string     `json:"education"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
	Availability   Availability `json:"availability" validate:"omitempty,oneof=Available Busy Unavailable"`
	ProfileImage   string       `json:"profileImage" validate:"omitempty,max=500"`
	CaseTypes      []string     `json:"caseTypes"`
	SuccessRate    int          `json:"successRate" validate:"min=0,max=100"`
}

type ProfileReview struct {
	ID         string `json:"id" bson:"_id"`
	LawyerID   string `json:"-" bson:"lawyerId"`
	ClientName string `json:"clientName" bson:"clientName"`
	Rating     int    `json:"rating" bson:"rating"`
	Comment    string `json:"comment" bson:"comment"`
	Date       string `json:"date" bson:"date"`
	CaseType   string `json:"caseType" bson:"caseType"`
}

type Filter struct {
	Query     string
	Specialty string
	Location  string
	MinRate   *float64
	MaxRate   *float64
	MinRating *float64
	Limit     int
	Offset    int
}

// Matches reports whether l satisfies every active filter.
func (f Filter) Matches(l Lawyer) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		found := strings.Contains(strings.ToLower(l.Name), q) || strings.Contains(strings.ToLower(l.Bio), q)
		for _, spec := range l.Specialty {
			if strings.Contains(strings.ToLower(spec), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Specialty != "" && !containsExact(l.Specialty, f.Specialty) {
		return false
	}
	if f.Location != "" && !strings.Contains(l.Location, f.Location) {
		return false
	}
	if f.MinRate != nil && l.HourlyRate < *f.MinRate {
		return false
	}
	if f.MaxRate != nil && l.HourlyRate > *f.MaxRate {
		return false
	}
	if f.MinRating != nil && l.Rating < *f.MinRating {
		return false
	}
	return true
}

func (f Filter) cacheKey() string {
	var b strings.Builder
	b.WriteString(cachePrefix + "list")
	for _, part := range []string{f.Query, f.Specialty, f.Location, floatKey(f.MinRate), floatKey(f.MaxRate), floatKey(f.MinRating)} {
		b.WriteString(":")
		b.WriteString(part)
	}
	b.WriteString(":")
	b.WriteString(intKey(f.Limit))
	b.WriteString(":")
	b.WriteString(intKey(f.Offset))
	return b.String()
}

// SortDirectory orders Available lawyers first, then by rating descending.
// Ties keep their input order.
func SortDirectory(items []Lawyer) {
	sort.SliceStable(items, func(i, j int) bool {
		ai := items[i].Availability == AvailabilityAvailable
		aj := items[j].Availability == AvailabilityAvailable
		if ai != aj {
			return ai
		}
		return items[i].Rating > items[j].Rating
	})
}

type ListResult struct {
	Lawyers []Lawyer `json:"lawyers"`
	Total   int      `json:"total"`
}

type Profile struct {
	Lawyer  Lawyer          `json:"lawyer"`
	Reviews []ProfileReview `json:"reviews"`
}

func containsExact(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}

func floatKey(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func intKey(v int) string {
	return strconv.Itoa(v)
}
