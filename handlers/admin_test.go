package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"mojamalca-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSaveWeekMenusUpserts(t *testing.T) {
	r := setupRouter(t)
	admin := createAdmin(t, "boss@example.com")
	token := adminToken(t, admin)

	payload := map[string]interface{}{
		"week_start": "2030-01-07",
		"company_id": 0,
		"days": []map[string]interface{}{
			{"date": "2030-01-07", "options": []string{"Goulash", "Salad"}},
			{"date": "2030-01-08", "options": []string{"Stew"}},
		},
	}
	w := doJSON(t, r, http.MethodPut, "/api/admin/menus", token, payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 2, countRows(t, &models.Menu{}))
	assert.EqualValues(t, 3, countRows(t, &models.MenuOption{}))

	// Saving the same week again replaces options in place — no
	// duplicate (date, scope) menus, last write wins
	payload["days"] = []map[string]interface{}{
		{"date": "2030-01-07", "options": []string{"Risotto"}},
	}
	w = doJSON(t, r, http.MethodPut, "/api/admin/menus", token, payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, countRows(t, &models.Menu{}))

	var monday models.Menu
	require.NoError(t, configDB().Preload("Options").Where("date = ?", "2030-01-07").First(&monday).Error)
	require.Len(t, monday.Options, 1)
	assert.Equal(t, "Risotto", monday.Options[0].Description)
}

func TestAdminSaveWeekMenusRejectsOutsideDates(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, createAdmin(t, "boss@example.com"))

	w := doJSON(t, r, http.MethodPut, "/api/admin/menus", token, map[string]interface{}{
		"week_start": "2030-01-07",
		"days": []map[string]interface{}{
			{"date": "2030-01-14", "options": []string{"Stew"}}, // next week
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Menu{}))
}

func TestAdminSaveWeekMenusScopedPerCompany(t *testing.T) {
	r := setupRouter(t)
	company := createCompany(t, "Acme d.o.o.", "acme@example.com")
	token := adminToken(t, createAdmin(t, "boss@example.com"))

	// Same date, two scopes: both rows may exist side by side
	w := doJSON(t, r, http.MethodPut, "/api/admin/menus", token, map[string]interface{}{
		"week_start": "2030-01-07",
		"company_id": 0,
		"days":       []map[string]interface{}{{"date": "2030-01-07", "options": []string{"Goulash"}}},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/admin/menus", token, map[string]interface{}{
		"week_start": "2030-01-07",
		"company_id": company.ID,
		"days":       []map[string]interface{}{{"date": "2030-01-07", "options": []string{"Risotto"}}},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, countRows(t, &models.Menu{}))
}

func TestAdminOrdersReportTally(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, createAdmin(t, "boss@example.com"))
	company := createCompany(t, "Acme d.o.o.", "acme@example.com")
	anna := createEmployee(t, company, "Ana Bregar", "ana@example.com", "1111")
	jana := createEmployee(t, company, "Jana Novak", "jana@example.com", "2222")
	ziga := createEmployee(t, company, "Ziga Kralj", "ziga@example.com", "3333")

	// 2030-01-08 is the Tuesday of the 2030-01-07 week
	menu := createMenu(t, models.MenuScopeAll, "2030-01-08", "Goulash", "Salad")

	seedOrder := func(employee models.Employee, optionIndex int, noMeal bool) {
		sel := models.OrderSelection{Date: "2030-01-08", NoMeal: noMeal}
		if !noMeal {
			sel.MenuID = &menu.ID
			sel.OptionIndex = &optionIndex
		}
		order := models.Order{
			EmployeeID: employee.ID,
			CompanyID:  company.ID,
			WeekStart:  "2030-01-07",
			Status:     models.StatusSubmitted,
			Selections: []models.OrderSelection{sel},
		}
		require.NoError(t, configDB().Create(&order).Error)
	}
	seedOrder(anna, 0, false)
	seedOrder(jana, 0, false)
	seedOrder(ziga, 1, false)

	w := doJSON(t, r, http.MethodGet, "/api/admin/orders/report?date=2030-01-08", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "2030-01-07", body["week_start"])
	report := body["report"].([]interface{})
	require.Len(t, report, 1)

	entry := report[0].(map[string]interface{})
	assert.EqualValues(t, 3, entry["total"])
	rows := entry["rows"].([]interface{})
	require.Len(t, rows, 2)
	goulash := rows[0].(map[string]interface{})
	assert.Equal(t, "Goulash", goulash["description"])
	assert.EqualValues(t, 2, goulash["count"])
	salad := rows[1].(map[string]interface{})
	assert.EqualValues(t, 1, salad["count"])
}

func TestAdminOrdersReportIgnoresNoMeal(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, createAdmin(t, "boss@example.com"))
	company := createCompany(t, "Acme d.o.o.", "acme@example.com")
	anna := createEmployee(t, company, "Ana Bregar", "ana@example.com", "1111")

	menu := createMenu(t, models.MenuScopeAll, "2030-01-08", "Goulash")
	_ = menu

	order := models.Order{
		EmployeeID: anna.ID,
		CompanyID:  company.ID,
		WeekStart:  "2030-01-07",
		Status:     models.StatusSubmitted,
		Selections: []models.OrderSelection{{Date: "2030-01-08", NoMeal: true}},
	}
	require.NoError(t, configDB().Create(&order).Error)

	w := doJSON(t, r, http.MethodGet, "/api/admin/orders/report?date=2030-01-08", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	entry := decodeBody(t, w)["report"].([]interface{})[0].(map[string]interface{})
	assert.EqualValues(t, 0, entry["total"])
}

func TestAdminCompanyLifecycle(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, createAdmin(t, "boss@example.com"))
	company := createCompany(t, "Acme d.o.o.", "acme@example.com")
	createEmployee(t, company, "Jana Novak", "jana@example.com", "1234")

	// Update: deactivate and correct the phone
	path := fmt.Sprintf("/api/admin/companies/%d", company.ID)
	w := doJSON(t, r, http.MethodPut, path, token, map[string]interface{}{
		"status": "inactive",
		"phone":  "+386 40 123 456",
		"email":  "hijack@example.com", // not an allowed field
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Company
	require.NoError(t, configDB().First(&updated, company.ID).Error)
	assert.Equal(t, models.StatusInactive, updated.Status)
	assert.Equal(t, "+386 40 123 456", updated.Phone)
	assert.Equal(t, "acme@example.com", updated.Email, "email is not updatable through this endpoint")

	// Delete removes the company and its employees
	w = doJSON(t, r, http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Company{}))
	assert.EqualValues(t, 0, countRows(t, &models.Employee{}))
}

func TestAdminListCompaniesNewestFirst(t *testing.T) {
	r := setupRouter(t)
	token := adminToken(t, createAdmin(t, "boss@example.com"))
	createCompany(t, "Oldest d.o.o.", "old@example.com")
	createCompany(t, "Newest d.o.o.", "new@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/admin/companies", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	companies := decodeBody(t, w)["companies"].([]interface{})
	require.Len(t, companies, 2)
}
