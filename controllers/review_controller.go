package controllers

import (
	"strconv"

	"cooksync/pkg/resp"
	"cooksync/repository"
	"cooksync/services"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

type ReviewController struct {
	svc      *services.ReviewService
	userRepo *repository.UserRepository
}

func NewReviewController(svc *services.ReviewService, userRepo *repository.UserRepository) *ReviewController {
	return &ReviewController{svc: svc, userRepo: userRepo}
}

type CreateReviewReq struct {
	MealID uint   `json:"mealId" binding:"required"`
	Review string `json:"review"`
}

// POST /api/reviews (protected)
func (ctl *ReviewController) Create(c *gin.Context) {
	var req CreateReviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	email := utils.CurrentEmail(c)
	name := email
	if u, err := ctl.userRepo.FindByEmail(email); err == nil {
		name = u.Name
	}

	review, err := ctl.svc.Add(req.MealID, email, name, req.Review)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, review)
}

// GET /api/reviews/:mealId (public)
func (ctl *ReviewController) ListForMeal(c *gin.Context) {
	mealID, _ := strconv.Atoi(c.Param("mealId"))
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reviews, err := ctl.svc.ListForMeal(uint(mealID), skip, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}

// GET /api/reviews (admin all-reviews table)
func (ctl *ReviewController) ListAll(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	reviews, total, err := ctl.svc.ListAll(c.Query("search"), skip, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews, "total": total, "skip": skip, "limit": limit})
}

// GET /profile/reviews (protected)
func (ctl *ReviewController) ListForMe(c *gin.Context) {
	reviews, err := ctl.svc.ListForUser(utils.CurrentEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": reviews})
}

// DELETE /api/reviews/:id (owner or admin)
func (ctl *ReviewController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.svc.Delete(uint(id), utils.CurrentEmail(c), utils.CurrentRole(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "review deleted"})
}
