package models

import "time"

// UserRole defines the roles the backend may assign to an account
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
)

// User is the client-side copy of an account record. It is never
// authoritative: a non-nil User only means the backend confirmed an
// active session when it was fetched.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
