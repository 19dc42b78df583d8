package routes

import (
	"mojamalca-api/handlers"
	"mojamalca-api/middleware"
	"mojamalca-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Signup & logins
		public.POST("/companies", handlers.RegisterCompany)
		public.POST("/company/login", handlers.CompanyLogin)
		public.POST("/employee/login", handlers.EmployeeLogin)
		public.POST("/admin/login", handlers.AdminLogin)

		// Marketing site
		public.POST("/contact", handlers.Contact)
		public.GET("/delivery-menu", handlers.ListDeliveryMenu)
	}

	// Live subscriptions (websocket)
	r.GET("/ws/:topic", handlers.Subscribe)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Company routes ─────────────────────────────────────────────
	company := r.Group("/api/company")
	company.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleCompany))
	{
		company.GET("/employees", handlers.ListEmployees)
		company.POST("/employees", handlers.AddEmployee)
		company.DELETE("/employees/:id", handlers.DeleteEmployee)

		company.GET("/menus", handlers.CompanyWeekMenus)
		company.GET("/orders", handlers.CompanyWeekOrders)
	}

	// ── Employee routes ────────────────────────────────────────────
	employee := r.Group("/api/employee")
	employee.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleEmployee))
	{
		employee.GET("/menus", handlers.EmployeeWeekMenus)
		employee.GET("/orders", handlers.GetMyWeekOrder)
		employee.POST("/orders", handlers.SubmitOrder)
		employee.PUT("/orders/:id", handlers.AmendOrder)
	}

	// ── Admin routes ───────────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/companies", handlers.AdminListCompanies)
		admin.POST("/companies", handlers.AdminCreateCompany)
		admin.PUT("/companies/:id", handlers.AdminUpdateCompany)
		admin.DELETE("/companies/:id", handlers.AdminDeleteCompany)

		admin.GET("/menus", handlers.AdminWeekMenus)
		admin.PUT("/menus", handlers.AdminSaveWeekMenus)

		admin.GET("/orders/report", handlers.AdminOrdersReport)

		admin.GET("/menu-categories", handlers.ListMenuCategories)
		admin.POST("/menu-categories", handlers.CreateMenuCategory)
		admin.DELETE("/menu-categories/:id", handlers.DeleteMenuCategory)

		admin.GET("/menu-base", handlers.ListMenuBaseItems)
		admin.POST("/menu-base", handlers.CreateMenuBaseItem)
		admin.DELETE("/menu-base/:id", handlers.DeleteMenuBaseItem)

		admin.POST("/delivery-menu", handlers.CreateDeliveryItem)
		admin.DELETE("/delivery-menu/:id", handlers.DeleteDeliveryItem)
	}
}
