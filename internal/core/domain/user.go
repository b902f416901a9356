package domain

// UserRole defines the access level of a user account.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleStaff UserRole = "staff"
)

// User represents a back-office user of the application.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	FullName     string   `json:"fullName"`
	Role         UserRole `json:"role"`
	IsActive     bool     `json:"isActive"`
	AuditFields
}
