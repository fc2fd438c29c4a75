package models

// User is the persisted form of an account. Local accounts carry a password hash,
// OAuth accounts carry the provider's subject instead.
type User struct {
	UserID         string  `json:"userID" db:"user_id" gorm:"primaryKey;size:36"`
	Username       string  `json:"username" db:"username" gorm:"uniqueIndex;not null"`
	PasswordHash   *string `json:"-" db:"password_hash"`
	AuthProvider   string  `json:"authProvider" db:"auth_provider" gorm:"not null;default:local;uniqueIndex:idx_users_provider"`
	ProviderUserID *string `json:"providerUserID,omitempty" db:"provider_user_id" gorm:"uniqueIndex:idx_users_provider"`
	AuditFields    `gorm:"embedded"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}
