package response

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// ServiceCost represents one displayed line of a day
type ServiceCost struct {
	Name     string  `json:"name"`
	Account  string  `json:"account,omitempty"`
	Amount   float64 `json:"amount"`
	Severity string  `json:"severity"`
}

// DailyCost represents the costs of a single day
type DailyCost struct {
	Date     string        `json:"date"`
	Total    float64       `json:"total"`
	Services []ServiceCost `json:"services"`
}

// CostReport represents an aggregated daily cost report
type CostReport struct {
	AccountID string      `json:"account_id,omitempty"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Total     float64     `json:"total"`
	Currency  string      `json:"currency"`
	Subject   string      `json:"subject"`
	Days      []DailyCost `json:"days"`
}

// SendResult represents a delivered cost report
type SendResult struct {
	MessageID string     `json:"message_id"`
	Report    CostReport `json:"report"`
}
