package domain

// User represents a registered user of the application.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	Fullname     string `json:"fullname"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
