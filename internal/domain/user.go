package domain

import "time"

type Address struct {
	Street  string
	City    string
	Pincode string
}

type User struct {
	ID              string
	Name            string
	Email           string
	Phone           string
	DateOfBirth     string
	ProfileComplete bool
	Address         Address
	CreatedAt       time.Time
}

// ProfileUpdate carries the fields a profile update may change. Nil fields
// are left untouched.
type ProfileUpdate struct {
	Name        *string
	Email       *string
	DateOfBirth *string
	Address     *Address
}
