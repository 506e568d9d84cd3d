package entities

import "time"

// Role gates which operations a staff member may perform. Route-level role
// lists mirror the shop's workflow: receptionists draft estimates, managers
// and admins approve or reject them.
type Role string

const (
	RoleAdmin        Role = "admin"
	RoleManager      Role = "manager"
	RoleReceptionist Role = "receptionist"
	RoleTechnician   Role = "technician"
	RoleAccountant   Role = "accountant"
)

// User is a staff account. PasswordHash is a bcrypt hash and never leaves the
// persistence boundary.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
