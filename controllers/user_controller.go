package controllers

import (
	"strconv"

	"cooksync/entity"
	"cooksync/pkg/resp"
	"cooksync/repository"
	"cooksync/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	repo *repository.UserRepository
}

func NewUserController(repo *repository.UserRepository) *UserController {
	return &UserController{repo: repo}
}

// GET /users?search= (admin manage-user table)
func (ctl *UserController) List(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	users, total, err := ctl.repo.Search(c.Query("search"), skip, limit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users, "total": total, "skip": skip, "limit": limit})
}

// GET /users/:email — self or admin; the badge here drives client gating.
func (ctl *UserController) GetByEmail(c *gin.Context) {
	email := c.Param("email")
	if utils.CurrentRole(c) != entity.RoleAdmin && utils.CurrentEmail(c) != email {
		resp.Forbidden(c, "forbidden")
		return
	}

	user, err := ctl.repo.FindByEmail(email)
	if err != nil {
		resp.NotFound(c, "user not found")
		return
	}
	resp.OK(c, user)
}

// PATCH /users/admin/:id (admin promotes a user; single role per user)
func (ctl *UserController) PromoteAdmin(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	affected, err := ctl.repo.UpdateRole(uint(id), entity.RoleAdmin)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if affected == 0 {
		resp.NotFound(c, "user not found")
		return
	}

	user, err := ctl.repo.FindByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, user)
}
