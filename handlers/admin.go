package handlers

import (
	"net/http"

	"mojamalca-api/config"
	"mojamalca-api/models"
	"mojamalca-api/weekly"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── Companies ───────────────────────────────────────────────────────────────

// AdminListCompanies returns all companies, newest first
func AdminListCompanies(c *gin.Context) {
	var companies []models.Company
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("created_at desc").Find(&companies)
	c.JSON(http.StatusOK, gin.H{"count": len(companies), "companies": companies})
}

// AdminCreateCompany creates a company from the back office. Reuses the
// public signup validation and duplicate handling.
func AdminCreateCompany(c *gin.Context) {
	RegisterCompany(c)
}

// AdminUpdateCompany updates company details
func AdminUpdateCompany(c *gin.Context) {
	var company models.Company
	if err := config.DB.First(&company, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Only allow safe fields; email and password have their own flows
	allowed := map[string]bool{"name": true, "address": true, "phone": true, "contact_person": true, "status": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	if password, ok := req["password"].(string); ok && password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		update["password_hash"] = string(hash)
	}

	config.DB.Model(&company).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Company updated", "company": company})
}

// AdminDeleteCompany removes a company and its employees
func AdminDeleteCompany(c *gin.Context) {
	var company models.Company
	if err := config.DB.First(&company, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", company.ID).Delete(&models.Employee{}).Error; err != nil {
			return err
		}
		return tx.Delete(&company).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete company"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Company deleted"})
}

// ── Weekly Menu Editor ──────────────────────────────────────────────────────

type SaveWeekMenusRequest struct {
	WeekStart string `json:"week_start" binding:"required"`
	CompanyID uint   `json:"company_id"` // 0 = all companies
	Days      []struct {
		Date    string   `json:"date" binding:"required"`
		Options []string `json:"options" binding:"required"`
	} `json:"days" binding:"required,min=1"`
}

// AdminWeekMenus returns the raw menus of a workweek for the editor,
// without company-scope resolution.
func AdminWeekMenus(c *gin.Context) {
	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a Monday in YYYY-MM-DD format"})
		return
	}

	days := window.Workdays()
	var menus []models.Menu
	config.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("date >= ? AND date <= ?", days[0], days[len(days)-1]).
		Order("date asc").
		Find(&menus)

	c.JSON(http.StatusOK, gin.H{
		"week_start": window.Key(),
		"count":      len(menus),
		"menus":      menus,
	})
}

// AdminSaveWeekMenus upserts one menu per (date, company scope). Editing
// replaces the day's option list in place, so repeated saves can never
// produce duplicate menus for the same day.
func AdminSaveWeekMenus(c *gin.Context) {
	var req SaveWeekMenusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := weekly.Parse(req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be a Monday in YYYY-MM-DD format"})
		return
	}
	inWindow := make(map[string]bool)
	for _, d := range window.Workdays() {
		inWindow[d] = true
	}

	var saved []models.Menu
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		for _, day := range req.Days {
			if !inWindow[day.Date] {
				return &selectionError{date: day.Date, reason: "date is outside the workweek"}
			}

			var menu models.Menu
			result := tx.Where("date = ? AND company_id = ?", day.Date, req.CompanyID).First(&menu)
			if result.Error != nil {
				menu = models.Menu{Date: day.Date, CompanyID: req.CompanyID}
				if err := tx.Create(&menu).Error; err != nil {
					return err
				}
			} else if err := tx.Where("menu_id = ?", menu.ID).Delete(&models.MenuOption{}).Error; err != nil {
				return err
			}

			for i, desc := range day.Options {
				opt := models.MenuOption{MenuID: menu.ID, Position: i, Description: desc}
				if err := tx.Create(&opt).Error; err != nil {
					return err
				}
			}
			saved = append(saved, menu)
		}
		return nil
	})
	if err != nil {
		if _, ok := err.(*selectionError); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save menus"})
		return
	}

	for i := range saved {
		hub.Broadcast(newEvent("menus", "updated", saved[i].ID, nil))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menus saved", "count": len(saved)})
}

// ── Orders Report ───────────────────────────────────────────────────────────

type optionTally struct {
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// AdminOrdersReport tallies, per company, how many employees picked each
// menu option on one date. Orders are keyed per employee while counting,
// so a duplicate row could only ever count once.
func AdminOrdersReport(c *gin.Context) {
	date := c.Query("date")
	if _, err := weekly.ParseDate(date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}
	weekStart := weekly.WeekOf(date)

	var companies []models.Company
	config.DB.Where("status = ?", models.StatusActive).Order("name asc").Find(&companies)

	var orders []models.Order
	config.DB.Preload("Selections").Where("week_start = ?", weekStart).Find(&orders)

	report := make([]gin.H, 0, len(companies))
	for _, company := range companies {
		menuByDate, err := resolveMenus(company.ID, []string{date})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menus"})
			return
		}
		menu, ok := menuByDate[date]
		if !ok {
			report = append(report, gin.H{"company": company, "rows": []optionTally{}, "total": 0})
			continue
		}

		counts := make([]int, len(menu.Options))
		seen := make(map[uint]bool)
		for _, order := range orders {
			if order.CompanyID != company.ID || seen[order.EmployeeID] {
				continue
			}
			seen[order.EmployeeID] = true
			for _, sel := range order.Selections {
				if sel.Date != date || sel.NoMeal || sel.MenuID == nil || sel.OptionIndex == nil {
					continue
				}
				if *sel.MenuID == menu.ID && *sel.OptionIndex < len(counts) {
					counts[*sel.OptionIndex]++
				}
			}
		}

		rows := make([]optionTally, len(menu.Options))
		total := 0
		for i, opt := range menu.Options {
			rows[i] = optionTally{Description: opt.Description, Count: counts[i]}
			total += counts[i]
		}
		report = append(report, gin.H{"company": company, "rows": rows, "total": total})
	}

	c.JSON(http.StatusOK, gin.H{"date": date, "week_start": weekStart, "report": report})
}
