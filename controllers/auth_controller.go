package controllers

import (
	"errors"
	"net/http"

	"github.com/smithbhavsar/ChatpataAI/entity"
	"github.com/smithbhavsar/ChatpataAI/pkg/resp"
	"github.com/smithbhavsar/ChatpataAI/store"
	"github.com/smithbhavsar/ChatpataAI/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type AuthController struct {
	Sessions *store.SessionStore
}

func NewAuthController(sessions *store.SessionStore) *AuthController {
	return &AuthController{Sessions: sessions}
}

// landingFor mirrors the per-role redirect after login: staff land on
// their dashboard, everyone else goes home.
func landingFor(role entity.Role) string {
	switch role {
	case entity.RoleWaiter:
		return "/partner/waiter/dashboard"
	case entity.RoleAdmin:
		return "/admin/dashboard"
	case entity.RoleSuperAdmin:
		return "/superadmin/dashboard"
	default:
		return "/"
	}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cust, token, err := a.Sessions.Login(req.PhoneNumber)
	if errors.Is(err, store.ErrNotRegistered) {
		resp.NotFound(c, "phone number not registered, please sign up first")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"token":    token,
		"redirect": landingFor(cust.Role),
		"user": gin.H{
			"id": cust.ID, "phoneNumber": cust.PhoneNumber,
			"role": cust.Role, "loyaltyPoints": cust.LoyaltyPoints,
		},
	})
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Sessions.Logout(utils.CurrentToken(c)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"loggedOut": true})
}

// GET /auth/me and GET /profile
func (a *AuthController) Me(c *gin.Context) {
	cust := utils.CurrentIdentity(c)
	if cust == nil {
		resp.Unauthorized(c, "login required")
		return
	}
	resp.OK(c, gin.H{
		"id": cust.ID, "phoneNumber": cust.PhoneNumber,
		"role": cust.Role, "loyaltyPoints": cust.LoyaltyPoints,
	})
}
