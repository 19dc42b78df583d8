package handlers

import (
	"net/http"

	"mojamalca-api/config"
	"mojamalca-api/middleware"
	"mojamalca-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterCompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	ContactPerson string `json:"contact_person"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type EmployeeLoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	PIN   string `json:"pin" binding:"required,len=4,number"`
}

// RegisterCompany creates a new company account (public signup form)
func RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Duplicate check before the insert; the unique index on email is the
	// real guard against a concurrent second signup
	var existing models.Company
	if result := config.DB.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company with this email already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	company := models.Company{
		Name:          req.Name,
		Email:         req.Email,
		PasswordHash:  string(hash),
		Address:       req.Address,
		Phone:         req.Phone,
		ContactPerson: req.ContactPerson,
		Status:        models.StatusActive,
	}

	if err := config.DB.Create(&company).Error; err != nil {
		// Lost the race on the unique index
		c.JSON(http.StatusBadRequest, gin.H{"error": "Company with this email already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Company registered successfully",
		"company": company,
	})
}

// CompanyLogin authenticates a company and returns a JWT
func CompanyLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var company models.Company
	if err := config.DB.Where("email = ? AND status = ?", req.Email, models.StatusActive).First(&company).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(company.ID, company.ID, company.Email, models.RoleCompany)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"company": company,
	})
}

// EmployeeLogin authenticates an employee by email + 4-digit PIN
func EmployeeLogin(c *gin.Context) {
	var req EmployeeLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var employee models.Employee
	if err := config.DB.
		Where("email = ? AND pin = ? AND status = ?", req.Email, req.PIN, models.StatusActive).
		First(&employee).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or PIN"})
		return
	}

	token, err := middleware.GenerateToken(employee.ID, employee.CompanyID, employee.Email, models.RoleEmployee)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"token":    token,
		"employee": employee,
	})
}

// AdminLogin authenticates an admin. Valid credentials without an admin
// record are rejected the same way as bad credentials.
func AdminLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := middleware.GenerateToken(admin.ID, 0, admin.Email, models.RoleAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"admin":   admin,
	})
}

// GetProfile returns the authenticated caller's own record
func GetProfile(c *gin.Context) {
	id := middleware.GetSubjectID(c)
	switch middleware.GetRole(c) {
	case models.RoleCompany:
		var company models.Company
		if err := config.DB.First(&company, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"company": company})
	case models.RoleEmployee:
		var employee models.Employee
		if err := config.DB.Preload("Company").First(&employee, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"employee": employee})
	case models.RoleAdmin:
		var admin models.Admin
		if err := config.DB.First(&admin, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"admin": admin})
	}
}
