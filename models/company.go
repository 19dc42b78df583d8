package models

import (
	"time"
)

// Role defines the identities the API issues tokens for
type Role string

const (
	RoleCompany  Role = "company"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// AccountStatus marks whether a company or employee may log in
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
)

type Company struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	Name          string        `json:"name" gorm:"not null"`
	Email         string        `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash  string        `json:"-" gorm:"not null"`
	Address       string        `json:"address"`
	Phone         string        `json:"phone"`
	ContactPerson string        `json:"contact_person"`
	Status        AccountStatus `json:"status" gorm:"not null;default:'active'"`
	Employees     []Employee    `json:"employees,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
