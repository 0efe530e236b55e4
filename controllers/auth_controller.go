package controllers

import (
	"net/http"

	"cooksync/pkg/resp"
	"cooksync/services"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Photo    string `json:"photo"`
}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	svc *services.AuthService
}

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{svc: svc}
}

// POST /auth/register
func (a *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.svc.Register(req.Name, req.Email, req.Password, req.Photo)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp.Created(c, gin.H{
		"id": user.ID, "name": user.Name, "email": user.Email,
		"photo": user.Photo, "role": user.Role, "badge": user.Badge,
	})
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := a.svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "name": user.Name, "email": user.Email,
			"photo": user.Photo, "role": user.Role, "badge": user.Badge,
		},
	})
}

// GET /auth/me (protected)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.svc.GetProfile(utils.CurrentUserID(c))
	if err != nil {
		resp.BadRequest(c, "user not found")
		return
	}
	resp.OK(c, user)
}
