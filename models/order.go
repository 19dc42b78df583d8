package models

import "time"

// OrderStatus represents the states of a weekly order
type OrderStatus string

const (
	StatusSubmitted OrderStatus = "SUBMITTED"
	StatusAmended   OrderStatus = "AMENDED"
)

// Order is one employee's meal selections for one week, keyed by the
// Monday of that week. One order per (employee, week) is enforced by the
// database, closing the duplicate-submission race.
type Order struct {
	ID         uint             `json:"id" gorm:"primaryKey"`
	EmployeeID uint             `json:"employee_id" gorm:"not null;uniqueIndex:idx_order_employee_week"`
	Employee   Employee         `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
	CompanyID  uint             `json:"company_id" gorm:"not null;index"`
	WeekStart  string           `json:"week_start" gorm:"size:10;not null;uniqueIndex:idx_order_employee_week"`
	Status     OrderStatus      `json:"status" gorm:"not null;default:'SUBMITTED'"`
	Selections []OrderSelection `json:"selections,omitempty" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// OrderSelection is the persisted form of a day's choice: either an
// explicit no-meal marker or a (menu, option position) pair, never both.
type OrderSelection struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderID     uint   `json:"order_id" gorm:"not null;uniqueIndex:idx_selection_order_date"`
	Date        string `json:"date" gorm:"size:10;not null;uniqueIndex:idx_selection_order_date"`
	NoMeal      bool   `json:"no_meal" gorm:"not null;default:false"`
	MenuID      *uint  `json:"menu_id,omitempty"`
	OptionIndex *int   `json:"option_index,omitempty"`
}
