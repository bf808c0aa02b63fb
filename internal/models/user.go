package models

import "time"

// User is an application-level account profile, distinct from the identity
// account referenced by AuthRef.
type User struct {
	ID        string    `db:"id" json:"id"`
	FullName  string    `db:"full_name" json:"fullName"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	Age       int       `db:"age" json:"age"`
	City      string    `db:"city" json:"city"`
	AuthRef   string    `db:"auth_ref" json:"authRef"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
