package models

import "time"

// MenuScopeAll is the company scope meaning "every company". A menu with
// CompanyID 0 is served to all employees regardless of their company; a
// company-specific menu for the same date takes precedence over it.
const MenuScopeAll uint = 0

// Menu is one day's set of meal options, scoped to a single company or to
// all companies. One menu per (date, scope) is enforced by the database.
type Menu struct {
	ID        uint         `json:"id" gorm:"primaryKey"`
	Date      string       `json:"date" gorm:"size:10;not null;uniqueIndex:idx_menu_date_scope"`
	CompanyID uint         `json:"company_id" gorm:"not null;default:0;uniqueIndex:idx_menu_date_scope"`
	Options   []MenuOption `json:"options,omitempty" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// MenuOption is one selectable meal within a day's menu. Position keeps
// the admin's ordering and is what order selections reference.
type MenuOption struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	MenuID      uint   `json:"menu_id" gorm:"not null;index"`
	Position    int    `json:"position" gorm:"not null"`
	Description string `json:"description" gorm:"not null"`
}

// MenuCategory groups the reusable menu library, scoped per admin.
type MenuCategory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AdminID   uint      `json:"admin_id" gorm:"not null;index"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}

// MenuBaseItem is a reusable dish in the menu library. The category is
// referenced by name, matching how the library screens link them.
type MenuBaseItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	AdminID     uint      `json:"admin_id" gorm:"not null;index"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}
