package middleware

import (
	"net/http"
	"strings"
	"time"

	"mojamalca-api/config"
	"mojamalca-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	SubjectID uint        `json:"subject_id"`
	CompanyID uint        `json:"company_id"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a company, employee, or admin.
// CompanyID is the owning company for employees, the company itself for
// company logins, and zero for admins.
func GenerateToken(subjectID, companyID uint, email string, role models.Role) (string, error) {
	claims := Claims{
		SubjectID: subjectID,
		CompanyID: companyID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects claims into context
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("subjectID", claims.SubjectID)
		c.Set("companyID", claims.CompanyID)
		c.Set("email", claims.Email)
		c.Set("role", string(claims.Role))
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.Role(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetSubjectID extracts the caller's own record ID from context
func GetSubjectID(c *gin.Context) uint {
	val, _ := c.Get("subjectID")
	return val.(uint)
}

// GetCompanyID extracts the caller's company scope from context
func GetCompanyID(c *gin.Context) uint {
	val, _ := c.Get("companyID")
	return val.(uint)
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.Role {
	val, _ := c.Get("role")
	return models.Role(val.(string))
}
