package payments

const (
	MethodCard        = "card"
	MethodBankAccount = "bank_account"
)

// Release amounts are fixed: a single milestone or the whole escrow.
const (
	MilestoneReleaseAmount = 600
	FullReleaseAmount      = 3500
)

type PaymentMethod struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Brand       string `json:"brand,omitempty"`
	BankName    string `json:"bankName,omitempty"`
	Last4       string `json:"last4"`
	ExpiryMonth int    `json:"expiryMonth,omitempty"`
	ExpiryYear  int    `json:"expiryYear,omitempty"`
	IsDefault   bool   `json:"isDefault"`
}

type Transaction struct {
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	Description       string  `json:"description"`
	Lawyer            string  `json:"lawyer"`
	Date              string  `json:"date"`
	EscrowReleaseDate string  `json:"escrowReleaseDate,omitempty"`
}

type Milestone struct {
	ID            string  `json:"id"`
	Description   string  `json:"description"`
	Amount        float64 `json:"amount"`
	Completed     bool    `json:"completed"`
	CompletedDate string  `json:"completedDate,omitempty"`
}

type EscrowAccount struct {
	ID          string      `json:"id"`
	LawyerName  string      `json:"lawyerName"`
	CaseTitle   string      `json:"caseTitle"`
	Amount      float64     `json:"amount"`
	Status      string      `json:"status"`
	CreatedDate string      `json:"createdDate"`
	ReleaseDate string      `json:"releaseDate,omitempty"`
	Milestones  []Milestone `json:"milestones"`
}

type AddMethodRequest struct {
	Type        string `json:"type" validate:"oneof=card bank_account"`
	CardNumber  string `json:"cardNumber" validate:"omitempty,cardnumber"`
	ExpiryMonth int    `json:"expiryMonth" validate:"min=0,max=12"`
	ExpiryYear  int    `json:"expiryYear" validate:"min=0"`
	CVC         string `json:"cvc" validate:"omitempty,numeric,min=3,max=4"`
	BankAccount string `json:"bankAccount"`
}

type AddMethodResult struct {
	Success         bool   `json:"success"`
	PaymentMethodID string `json:"paymentMethodId"`
	Message         string `json:"message"`
}

type ProcessRequest struct {
	Amount          float64 `json:"amount" validate:"gt=0"`
	PaymentMethodID string  `json:"paymentMethodId" validate:"notblank"`
	Description     string  `json:"description" validate:"max=500"`
	LawyerID        string  `json:"lawyerId"`
	Escrow          bool    `json:"escrow"`
}

type ProcessResult struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transactionId"`
	EscrowID      *string `json:"escrowId"`
	Amount        float64 `json:"amount"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
}

type ReleaseRequest struct {
	EscrowID    string `json:"escrowId" validate:"notblank"`
	MilestoneID string `json:"milestoneId"`
}

type ReleaseResult struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transactionId"`
	ReleaseAmount float64 `json:"releaseAmount"`
	Status        string  `json:"status"`
	Message       string  `json:"message"`
}
