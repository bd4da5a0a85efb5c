package cases

type Status string

const (
	StatusActive    Status = "active"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOnHold    Status = "on_hold"
)

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusActive, StatusPending, StatusCompleted, StatusOnHold:
		return true
	}
	return false
}

type UpdateType string

const (
	UpdateMilestone     UpdateType = "milestone"
	UpdateDocument      UpdateType = "document"
	UpdatePayment       UpdateType = "payment"
	UpdateCommunication UpdateType = "communication"
	UpdateCourtDate     UpdateType = "court_date"
)

type Update struct {
	ID          string     `json:"id"`
	Type        UpdateType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        string     `json:"date"`
	Status      string     `json:"status"`
	Attachments []string   `json:"attachments,omitempty"`
}

type Case struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	LawyerName         string   `json:"lawyerName"`
	LawyerAvatar       string   `json:"lawyerAvatar,omitempty"`
	CaseType           string   `json:"caseType"`
	Status             Status   `json:"status"`
	Progress           int      `json:"progress"`
	StartDate          string   `json:"startDate"`
	ExpectedCompletion string   `json:"expectedCompletion,omitempty"`
	TotalCost          float64  `json:"totalCost"`
	PaidAmount         float64  `json:"paidAmount"`
	NextMilestone      string   `json:"nextMilestone"`
	Priority           string   `json:"priority"`
	Updates            []Update `json:"updates"`
}

type CreateRequest struct {
	Title       string `json:"title" validate:"notblank,max=200"`
	LawyerID    string `json:"lawyerId"`
	CaseType    string `json:"caseType" validate:"notblank"`
	Description string `json:"description" validate:"max=5000"`
}

type CreateResult struct {
	Success bool   `json:"success"`
	CaseID  string `json:"caseId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}
