package routes

import (
	"log"
	"net/http"

	"github.com/smithbhavsar/ChatpataAI/configs"
	"github.com/smithbhavsar/ChatpataAI/controllers"
	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/gateway"
	"github.com/smithbhavsar/ChatpataAI/middlewares"
	"github.com/smithbhavsar/ChatpataAI/store"
	"github.com/smithbhavsar/ChatpataAI/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// anyRole gates a view to "any authenticated role".
var anyRole = []entity.Role{entity.RoleUser, entity.RoleWaiter, entity.RoleAdmin, entity.RoleSuperAdmin}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// State containers and collaborators
	sessions := store.NewSessionStore(db, cfg.JWTSecret, cfg.JWTTTL)
	if err := sessions.PurgeExpired(); err != nil {
		log.Printf("purge expired sessions: %v", err)
	}
	carts := store.NewCartStore()
	api := gateway.New(cfg.APIBaseURL, cfg.MenuCacheTTL)
	hub := ws.NewOrderHub()
	go hub.Run()

	// Controllers
	authCtrl := controllers.NewAuthController(sessions)
	restCtrl := controllers.NewRestaurantController(api)
	menuCtrl := controllers.NewMenuController(api)
	qrCtrl := controllers.NewQRController()
	cartCtrl := controllers.NewCartController(carts, api, hub)
	orderCtrl := controllers.NewOrderController(api)
	dashCtrl := controllers.NewDashboardController(db, api)

	authed := func(roles ...entity.Role) gin.HandlerFunc {
		return middlewares.AuthMiddleware(sessions, roles...)
	}

	// Home (public)
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "service": "chatpata-ai"})
	})

	// Login page target for guard redirects; the actual login is the POST
	r.GET("/login", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true, "login": "POST /auth/login with {\"phoneNumber\": ...}"})
	})

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}

	// Auth (protected)
	aAuth := a.Group("", authed(anyRole...))
	{
		aAuth.POST("/logout", authCtrl.Logout)
		aAuth.GET("/me", authCtrl.Me)
	}

	// Public browsing + QR check-in
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)
	r.GET("/restaurants/:id/menu", menuCtrl.List)
	r.POST("/scan", qrCtrl.Resolve)

	// Profile & history (any authenticated role)
	profile := r.Group("/profile", authed(anyRole...))
	{
		profile.GET("", authCtrl.Me)
		profile.GET("/orders", orderCtrl.ListForMe)
		profile.GET("/bills", orderCtrl.BillsForMe)
	}

	// Cart (any authenticated role)
	cart := r.Group("/cart", authed(anyRole...))
	{
		cart.GET("", cartCtrl.View)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:itemId", cartCtrl.UpdateQuantity)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
		cart.POST("/switch", cartCtrl.RequestSwitch)
		cart.POST("/switch/confirm", cartCtrl.ConfirmSwitch)
		cart.POST("/switch/cancel", cartCtrl.CancelSwitch)
		cart.POST("/checkout", cartCtrl.Checkout)
	}

	// Waiter dashboard (waiter/admin)
	waiter := r.Group("/partner/waiter", authed(entity.RoleWaiter, entity.RoleAdmin))
	{
		waiter.GET("/dashboard", dashCtrl.Waiter)
	}
	r.GET("/ws/orders/:restaurantId", authed(entity.RoleWaiter, entity.RoleAdmin), hub.HandleWebSocket)

	// Admin (admin only)
	admin := r.Group("/admin", authed(entity.RoleAdmin))
	{
		admin.GET("/dashboard", dashCtrl.Admin)
	}

	// Super admin (superadmin only)
	sa := r.Group("/superadmin", authed(entity.RoleSuperAdmin))
	{
		sa.GET("/dashboard", dashCtrl.SuperAdmin)
	}
}
