package models

import "time"

// Employee logs in with email + 4-digit PIN issued by their company.
// The PIN stays visible to the owning company's dashboard, so it is not
// treated as a secret field in JSON.
type Employee struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	CompanyID uint          `json:"company_id" gorm:"not null;uniqueIndex:idx_employee_company_email"`
	Company   Company       `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	Name      string        `json:"name" gorm:"not null"`
	Email     string        `json:"email" gorm:"not null;uniqueIndex:idx_employee_company_email"`
	PIN       string        `json:"pin" gorm:"size:4;not null"`
	Status    AccountStatus `json:"status" gorm:"not null;default:'active'"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
