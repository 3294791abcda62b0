package entity

import "time"

// Roles recognised across the API and the realtime layer.
const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"
)

type Owner struct {
	ID               string    `json:"id" firestore:"-"`
	PhoneNumber      string    `json:"phoneNumber" firestore:"phoneNumber"`
	AccessCode       string    `json:"-" firestore:"accessCode"`
	AccessCodeExpiry time.Time `json:"-" firestore:"accessCodeExpiry"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
	LastLogin        time.Time `json:"lastLogin,omitempty" firestore:"lastLogin,omitempty"`
}

type Employee struct {
	ID               string    `json:"id" firestore:"-"`
	Name             string    `json:"name" firestore:"name"`
	Email            string    `json:"email" firestore:"email"`
	Department       string    `json:"department" firestore:"department"`
	AccessCode       string    `json:"-" firestore:"accessCode"`
	AccessCodeExpiry time.Time `json:"-" firestore:"accessCodeExpiry"`
	Username         string    `json:"username,omitempty" firestore:"username,omitempty"`
	PasswordHash     string    `json:"-" firestore:"passwordHash,omitempty"`
	SetupToken       string    `json:"-" firestore:"setupToken,omitempty"`
	SetupTokenExpiry time.Time `json:"-" firestore:"setupTokenExpiry,omitempty"`
	IsActive         bool      `json:"isActive" firestore:"isActive"`
	IsSetupComplete  bool      `json:"isSetupComplete" firestore:"isSetupComplete"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
	LastLogin        time.Time `json:"lastLogin,omitempty" firestore:"lastLogin,omitempty"`
	CreatedBy        string    `json:"createdBy" firestore:"createdBy"`
}
