package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"mojamalca-api/config"
	"mojamalca-api/middleware"
	"mojamalca-api/models"
	"mojamalca-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const testPassword = "secret123"

// setupRouter gives each test its own migrated database and a router
// with the full route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.Load()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createCompany(t *testing.T, name, email string) models.Company {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	company := models.Company{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Status:       models.StatusActive,
	}
	require.NoError(t, config.DB.Create(&company).Error)
	return company
}

func createEmployee(t *testing.T, company models.Company, name, email, pin string) models.Employee {
	t.Helper()
	employee := models.Employee{
		CompanyID: company.ID,
		Name:      name,
		Email:     email,
		PIN:       pin,
		Status:    models.StatusActive,
	}
	require.NoError(t, config.DB.Create(&employee).Error)
	return employee
}

func createAdmin(t *testing.T, email string) models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	admin := models.Admin{Name: "Test Admin", Email: email, PasswordHash: string(hash)}
	require.NoError(t, config.DB.Create(&admin).Error)
	return admin
}

func createMenu(t *testing.T, companyID uint, date string, options ...string) models.Menu {
	t.Helper()
	menu := models.Menu{Date: date, CompanyID: companyID}
	require.NoError(t, config.DB.Create(&menu).Error)
	for i, desc := range options {
		opt := models.MenuOption{MenuID: menu.ID, Position: i, Description: desc}
		require.NoError(t, config.DB.Create(&opt).Error)
	}
	return menu
}

func companyToken(t *testing.T, company models.Company) string {
	t.Helper()
	token, err := middleware.GenerateToken(company.ID, company.ID, company.Email, models.RoleCompany)
	require.NoError(t, err)
	return token
}

func employeeToken(t *testing.T, employee models.Employee) string {
	t.Helper()
	token, err := middleware.GenerateToken(employee.ID, employee.CompanyID, employee.Email, models.RoleEmployee)
	require.NoError(t, err)
	return token
}

func adminToken(t *testing.T, admin models.Admin) string {
	t.Helper()
	token, err := middleware.GenerateToken(admin.ID, 0, admin.Email, models.RoleAdmin)
	require.NoError(t, err)
	return token
}

func configDB() *gorm.DB {
	return config.DB
}

func countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, config.DB.Model(model).Count(&n).Error)
	return n
}
