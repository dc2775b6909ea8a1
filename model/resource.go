package model

// AccountInfo represents the AWS account the report was generated for
type AccountInfo struct {
	Provider    string
	AccountID   string
	AccountName string
}
