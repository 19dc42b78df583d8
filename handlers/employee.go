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

// ── Weekly Menus (employee view, Mon–Sun) ───────────────────────────────────

// EmployeeWeekMenus returns the full week's menus resolved for the
// employee's company, plus their order for that week when one exists.
func EmployeeWeekMenus(c *gin.Context) {
	companyID := middleware.GetCompanyID(c)
	employeeID := middleware.GetSubjectID(c)

	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a Monday in YYYY-MM-DD format"})
		return
	}

	days := window.Days()
	menuByDate, err := resolveMenus(companyID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load menus"})
		return
	}

	var order models.Order
	var existing interface{}
	if err := config.DB.Preload("Selections").
		Where("employee_id = ? AND week_start = ?", employeeID, window.Key()).
		First(&order).Error; err == nil {
		existing = order
	}

	c.JSON(http.StatusOK, gin.H{
		"week_start": window.Key(),
		"days":       dayMenus(days, menuByDate),
		"order":      existing,
	})
}

// ── Orders ──────────────────────────────────────────────────────────────────

type SubmitOrderRequest struct {
	WeekStart  string              `json:"week_start" binding:"required"`
	Selections weekly.SelectionSet `json:"selections" binding:"required"`
}

type AmendOrderRequest struct {
	Selections weekly.SelectionSet `json:"selections" binding:"required"`
}

// SubmitOrder records the employee's selections for one week. Every
// workday of the window must carry a valid selection, each picked option
// must exist on the menu resolved for that day, and the unique index on
// (employee, week) turns a double submission into a 409 instead of a
// duplicate row.
func SubmitOrder(c *gin.Context) {
	employeeID := middleware.GetSubjectID(c)
	companyID := middleware.GetCompanyID(c)

	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := weekly.Parse(req.WeekStart)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week_start must be a Monday in YYYY-MM-DD format"})
		return
	}
	if window.Before(weekly.At(time.Now())) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Ordering for this week is closed"})
		return
	}

	if err := req.Selections.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if missing := req.Selections.Missing(window.Workdays()); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "Every workday needs a selection before submitting",
			"missing_days": missing,
		})
		return
	}

	selections, err := buildSelections(companyID, window, req.Selections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Pre-query keeps the common case friendly; the constraint is the
	// actual guarantee under concurrent submits
	var existing models.Order
	if result := config.DB.Where("employee_id = ? AND week_start = ?", employeeID, window.Key()).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An order for this week already exists", "order_id": existing.ID})
		return
	}

	order := models.Order{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		WeekStart:  window.Key(),
		Status:     models.StatusSubmitted,
		Selections: selections,
	}
	if err := config.DB.Create(&order).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An order for this week already exists"})
		return
	}

	config.DB.Preload("Selections").First(&order, order.ID)
	c.JSON(http.StatusCreated, gin.H{"message": "Order submitted", "order": order})
}

// GetMyWeekOrder returns the employee's order for a week, if any
func GetMyWeekOrder(c *gin.Context) {
	employeeID := middleware.GetSubjectID(c)

	window, err := windowFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be a Monday in YYYY-MM-DD format"})
		return
	}

	var order models.Order
	if err := config.DB.Preload("Selections").
		Where("employee_id = ? AND week_start = ?", employeeID, window.Key()).
		First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No order for this week"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// AmendOrder replaces the order's selections. The lifecycle allows
// exactly one amendment per order; a second attempt gets a 409.
func AmendOrder(c *gin.Context) {
	employeeID := middleware.GetSubjectID(c)
	companyID := middleware.GetCompanyID(c)
	orderID := c.Param("id")

	var order models.Order
	if err := config.DB.First(&order, orderID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.EmployeeID != employeeID {
		c.JSON(http.StatusForbidden, gin.H{"error": "This order does not belong to you"})
		return
	}
	if err := weekly.CanAmend(order.Status, "employee"); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	var req AmendOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := req.Selections.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := weekly.Parse(order.WeekStart)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Stored week start is corrupt"})
		return
	}
	if missing := req.Selections.Missing(window.Workdays()); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":        "Every workday needs a selection",
			"missing_days": missing,
		})
		return
	}

	selections, err := buildSelections(companyID, window, req.Selections)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderSelection{}).Error; err != nil {
			return err
		}
		for i := range selections {
			selections[i].OrderID = order.ID
		}
		if err := tx.Create(&selections).Error; err != nil {
			return err
		}
		return tx.Model(&order).Update("status", models.StatusAmended).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to amend order"})
		return
	}

	config.DB.Preload("Selections").First(&order, order.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Order amended", "order": order})
}

// buildSelections turns the request's selection set into persisted rows,
// checking each picked option against the menu resolved for that date.
func buildSelections(companyID uint, window weekly.Window, set weekly.SelectionSet) ([]models.OrderSelection, error) {
	menuByDate, err := resolveMenus(companyID, window.Days())
	if err != nil {
		return nil, err
	}

	rows := make([]models.OrderSelection, 0, len(set))
	for _, date := range window.Days() {
		sel, ok := set[date]
		if !ok {
			continue
		}
		if sel.NoMeal {
			rows = append(rows, models.OrderSelection{Date: date, NoMeal: true})
			continue
		}
		menu, ok := menuByDate[date]
		if !ok || menu.ID != sel.MenuID {
			return nil, &selectionError{date: date, reason: "selection does not match the menu for this day"}
		}
		if *sel.OptionIndex >= len(menu.Options) {
			return nil, &selectionError{date: date, reason: "option index is out of range"}
		}
		menuID := sel.MenuID
		idx := *sel.OptionIndex
		rows = append(rows, models.OrderSelection{Date: date, MenuID: &menuID, OptionIndex: &idx})
	}
	return rows, nil
}

type selectionError struct {
	date   string
	reason string
}

func (e *selectionError) Error() string {
	return e.date + ": " + e.reason
}
