package controllers

import (
	"strconv"

	"cooksync/pkg/resp"
	"cooksync/repository"
	"cooksync/services"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	svc *services.MealService
}

func NewMealController(svc *services.MealService) *MealController {
	return &MealController{svc: svc}
}

func parseFilter(c *gin.Context) repository.MealFilter {
	f := repository.MealFilter{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
	}
	if v, err := strconv.ParseFloat(c.Query("priceMin"), 64); err == nil {
		f.PriceMin = &v
	}
	if v, err := strconv.ParseFloat(c.Query("priceMax"), 64); err == nil {
		f.PriceMax = &v
	}
	f.Skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "9"))
	return f
}

// GET /api/meals
func (ctl *MealController) List(c *gin.Context) {
	f := parseFilter(c)
	meals, total, err := ctl.svc.List(c.Request.Context(), f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": meals, "total": total, "skip": f.Skip, "limit": f.Limit})
}

// GET /api/meals/:id
func (ctl *MealController) Detail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	meal, err := ctl.svc.Get(uint(id))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, meal)
}

// PATCH /api/meals/:id/like (protected)
func (ctl *MealController) Like(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	meal, err := ctl.svc.Like(c.Request.Context(), uint(id), utils.CurrentEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, meal)
}

// POST /api/meals (admin)
func (ctl *MealController) Create(c *gin.Context) {
	var in services.MealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	meal, err := ctl.svc.Create(c.Request.Context(), in, utils.CurrentEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, meal)
}

// PUT /api/meals/:id (admin)
func (ctl *MealController) Update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var in services.MealInput
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	meal, err := ctl.svc.Update(c.Request.Context(), uint(id), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, meal)
}

// DELETE /api/meals/:id (admin)
func (ctl *MealController) Delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.svc.Delete(c.Request.Context(), uint(id)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "meal deleted"})
}
