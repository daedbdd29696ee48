package domain

// Category is a per-user label available to the SPA's category pickers.
// Ledger entries store category names directly; the registry is declarative.
type Category struct {
	CategoryID string          `json:"categoryID"` // Primary Key (UUID)
	UserID     string          `json:"userID"`
	Name       string          `json:"name"`
	Type       TransactionType `json:"type"`
	AuditFields
}
