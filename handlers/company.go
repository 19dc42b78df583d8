package handlers

import (
	"net/http"
	"time"

	"mojamalca-api/config"
	"mojamalca-api/middleware"
	"mojamalca-api/models"
	"mojamalca-api/weekly"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ── Employee Management ─────────────────────────────────────────────────────

type AddEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	PIN   string `json:"pin" binding:"required,len=4,number"`
}

// ListEmployees returns the company's employees ordered by name
func ListEmployees(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	var employees []models.Employee
	config.DB.Where("company_id = ?", companyID).Order("name asc").Find(&employees)
	c.JSON(http.StatusOK, gin.H{"count": len(employees), "employees": employees})
}

// AddEmployee creates an employee account. The PIN is validated against
// ^[0-9]{4}$ by the binding tags before anything touches the database.
func AddEmployee(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)

	var req AddEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Employee
	if result := config.DB.Where("company_id = ? AND email = ?", companyID, req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee with this email already exists"})
		return
	}

	employee := models.Employee{
		CompanyID: companyID,
		Name:      req.Name,
		Email:     req.Email,
		PIN:       req.PIN,
		Status:    models.StatusActive,
	}
	if err := config.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Employee with this email already exists"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Employee added", "employee": employee})
}

// DeleteEmployee removes an employee owned by the calling company
func DeleteEmployee(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	employeeID := c.Param("id")

	var employee models.Employee
	if err := config.DB.Where("id = ? AND company_id = ?", employeeID, companyID).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		return
	}
	config.DB.Delete(&employee)
	c.JSON(http.StatusOK, gin.H{"message": "Employee deleted"})
}

// ── Weekly Menus (company view, Mon–Fri) ────────────────────────────────────

// CompanyWeekMenus returns the workweek's menus as resolved for this
// company: a company-specific menu wins over the all-companies one.
func CompanyWeekMenus(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)

	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a Monday in YYYY-MM-DD format"})
		return
	}

	days := window.Workdays()
	menuByDate, err := resolveMenus(companyID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menus"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start": window.Key(),
		"days":       dayMenus(days, menuByDate),
	})
}

// CompanyWeekOrders returns every order the company's employees placed
// for the given week.
func CompanyWeekOrders(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)

	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a Monday in YYYY-MM-DD format"})
		return
	}

	var orders []models.Order
	config.DB.Preload("Selections").Preload("Employee").
		Where("company_id = ? AND week_start = ?", companyID, window.Key()).
		Order("created_at asc").
		Find(&orders)

	c.JSON(http.StatusOK, gin.H{
		"week_start": window.Key(),
		"count":      len(orders),
		"orders":     orders,
	})
}

// ── Shared helpers ──────────────────────────────────────────────────────────

// windowFromQuery reads the optional ?week= parameter; defaulting to the
// initial window for "today" (next Monday, or today if Monday).
func windowFromQuery(c *gin.Context) (weekly.Window, error) {
	if week := c.Query("week"); week != "" {
		return weekly.Parse(week)
	}
	return weekly.At(time.Now()), nil
}

// resolveMenus loads the menus covering the given dates for one company,
// applying the scope rule: company-specific beats all-companies.
func resolveMenus(companyID uint, days []string) (map[string]models.Menu, error) {
	var menus []models.Menu
	err := config.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("company_id IN ? AND date >= ? AND date <= ?",
			[]uint{companyID, models.MenuScopeAll}, days[0], days[len(days)-1]).
		Order("date asc").
		Find(&menus).Error
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]models.Menu)
	for _, m := range menus {
		existing, ok := byDate[m.Date]
		if !ok || (existing.CompanyID == models.MenuScopeAll && m.CompanyID == companyID) {
			byDate[m.Date] = m
		}
	}
	return byDate, nil
}

// dayMenus shapes the per-day response, with null menus for days the
// kitchen has not published yet.
func dayMenus(days []string, byDate map[string]models.Menu) []gin.H {
	out := make([]gin.H, 0, len(days))
	for _, d := range days {
		if m, ok := byDate[d]; ok {
			out = append(out, gin.H{"date": d, "menu": m})
		} else {
			out = append(out, gin.H{"date": d, "menu": nil})
		}
	}
	return out
}
