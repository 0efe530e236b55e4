package controllers

import (
	"strconv"

	"cooksync/pkg/resp"
	"cooksync/services"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

type RequestController struct {
	svc *services.RequestService
}

func NewRequestController(svc *services.RequestService) *RequestController {
	return &RequestController{svc: svc}
}

type CreateRequestReq struct {
	MealID uint `json:"mealId" binding:"required"`
}

// POST /api/mealRequests (protected, badge-gated)
func (ctl *RequestController) Create(c *gin.Context) {
	var req CreateRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	request, err := ctl.svc.Create(req.MealID, utils.CurrentEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.Created(c, request)
}

// GET /api/mealRequests (admin serve table; ?search=&status=)
func (ctl *RequestController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	requests, total, err := ctl.svc.List(c.Query("search"), c.Query("status"), skip, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": requests, "total": total, "skip": skip, "limit": limit})
}

// GET /profile/mealRequests (protected)
func (ctl *RequestController) ListForMe(c *gin.Context) {
	requests, err := ctl.svc.ListForUser(utils.CurrentEmail(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": requests})
}

// DELETE /api/mealRequests/:id (requester cancels own pending request)
func (ctl *RequestController) Cancel(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := ctl.svc.Cancel(uint(id), utils.CurrentEmail(c)); err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, gin.H{"message": "request cancelled"})
}

type ServeRequestReq struct {
	Status string `json:"status" binding:"required"`
}

// PATCH /api/mealRequests/:id/serve (admin)
func (ctl *RequestController) Serve(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req ServeRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	request, err := ctl.svc.Serve(uint(id), req.Status)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	resp.OK(c, request)
}
