package controllers

import (
	"errors"
	"strconv"

	"cooksync/pkg/resp"
	"cooksync/repository"
	"cooksync/services"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UpcomingMealController struct {
	svc      *services.UpcomingMealService
	userRepo *repository.UserRepository
}

func NewUpcomingMealController(svc *services.UpcomingMealService, userRepo *repository.UserRepository) *UpcomingMealController {
	return &UpcomingMealController{svc: svc, userRepo: userRepo}
}

// GET /api/upcomingMeals
func (ctl *UpcomingMealController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "9"))

	meals, total, err := ctl.svc.List(c.Query("sort"), skip, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": meals, "total": total, "skip": skip, "limit": limit})
}

// POST /api/upcomingMeals (admin)
func (ctl *UpcomingMealController) Create(c *gin.Context) {
	var in services.UpcomingMealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := utils.CurrentEmail(c)
	name := email
	if u, err := ctl.userRepo.FindByEmail(email); err == nil {
		name = u.Name
	}

	meal, err := ctl.svc.Create(in, name, email)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, meal)
}

// PATCH /api/upcomingMeals/:id/like (protected, premium badge)
func (ctl *UpcomingMealController) Like(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	email := utils.CurrentEmail(c)

	user, err := ctl.userRepo.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		resp.Unauthorized(c, "unknown identity")
		return
	}
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	meal, err := ctl.svc.Like(c.Request.Context(), uint(id), email, user.Badge)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, meal)
}

// PATCH /api/upcomingMeals/:id/publish (admin)
func (ctl *UpcomingMealController) Publish(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	meal, err := ctl.svc.Publish(c.Request.Context(), uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, meal)
}
