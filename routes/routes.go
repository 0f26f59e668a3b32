package routes

import (
	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	complaintRepo := repository.NewComplaintRepository(db)
	mechRepo := repository.NewMechanicRepository(db)
	empRepo := repository.NewEmployeeRepository(db)
	chatRepo := repository.NewChatRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	complaintSvc := services.NewComplaintService(db, complaintRepo, userRepo, mechRepo)
	assignmentSvc := services.NewAssignmentService(db, complaintRepo, mechRepo, chatRepo, complaintSvc)
	mechanicSvc := services.NewMechanicService(db, mechRepo, empRepo, complaintRepo, complaintSvc)
	employeeSvc := services.NewEmployeeService(db, empRepo, mechRepo, userRepo)
	chatSvc := services.NewChatService(db, chatRepo, complaintRepo, userRepo, empRepo, mechRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	productCtrl := controllers.NewProductController(authSvc)
	complaintCtrl := controllers.NewComplaintController(complaintSvc, authSvc)
	coordCtrl := controllers.NewCoordinatorController(complaintSvc, assignmentSvc, authSvc, mechRepo)
	mechCtrl := controllers.NewMechanicController(mechanicSvc, authSvc)
	adminCtrl := controllers.NewAdminController(db, employeeSvc)
	chatCtrl := controllers.NewChatController(chatSvc)

	auth := func(roles ...string) gin.HandlerFunc {
		return middlewares.AuthMiddleware(cfg.JWTSecret, roles...)
	}

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", auth())
	{
		aAuth.GET("/me", authCtrl.Me)
		aAuth.PATCH("/me", authCtrl.UpdateMe)
	}

	// Customer
	u := r.Group("/", auth())
	{
		u.POST("/complaints", complaintCtrl.Create)
		u.GET("/complaints", complaintCtrl.ListForMe)
		u.GET("/complaints/:id", complaintCtrl.Detail)
		u.GET("/complaints/:id/history", complaintCtrl.History)
		u.PATCH("/complaints/:id/cancel", complaintCtrl.Cancel)
		u.GET("/complaints/:id/chat", chatCtrl.RoomForComplaint)
		u.GET("/chatrooms/:id/messages", chatCtrl.ListMessages)

		u.POST("/products", productCtrl.Create)
		u.GET("/products", productCtrl.List)
	}

	// Coordinator desk (coordinator/admin)
	coord := r.Group("/coordinator", auth("coordinator", "admin"))
	{
		coord.GET("/complaints", coordCtrl.List)
		coord.GET("/complaints/:id", coordCtrl.Detail)
		coord.GET("/complaints/:id/history", coordCtrl.History)
		coord.POST("/complaints/:id/assign", coordCtrl.Assign)
		coord.PATCH("/complaints/:id/status", coordCtrl.UpdateStatus)
		coord.PATCH("/complaints/:id/priority", coordCtrl.UpdatePriority)
		coord.POST("/complaints/:id/notes", coordCtrl.AddNote)
		coord.DELETE("/complaints/:id", coordCtrl.Delete)
		coord.GET("/mechanics", coordCtrl.Mechanics)
	}

	// Partner Mechanic (mechanic/admin)
	partnerMech := r.Group("/partner/mechanic", auth("mechanic", "admin"))
	{
		partnerMech.GET("/profile", mechCtrl.Profile)
		partnerMech.GET("/work", mechCtrl.Work)
		partnerMech.GET("/histories", mechCtrl.Histories)
		partnerMech.PATCH("/availability", mechCtrl.SetAvailability)
		partnerMech.PATCH("/jobs/:id/finish", mechCtrl.FinishJob)
	}

	// Admin (admin only)
	admin := r.Group("/admin", auth("admin"))
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.POST("/employees", adminCtrl.CreateEmployee)
		admin.GET("/employees", adminCtrl.ListEmployees)
		admin.GET("/employees/:id", adminCtrl.GetEmployee)
		admin.PATCH("/employees/:id", adminCtrl.UpdateEmployee)
		admin.PATCH("/employees/:id/deactivate", adminCtrl.DeactivateEmployee)
		admin.DELETE("/employees/:id", adminCtrl.DeleteEmployee)
	}

	// WebSocket chat
	hub := ws.NewChatHub(chatSvc)
	go hub.Run()
	r.GET("/ws/chat/:roomId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
