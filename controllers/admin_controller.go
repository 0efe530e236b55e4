package controllers

import (
	"net/http"

	"cooksync/entity"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GET /admin/dashboard — headline counts for the admin landing view.
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers, totalMeals, totalUpcoming, pendingRequests, totalReviews, totalPayments int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count users failed"})
		return
	}
	if err := db.Model(&entity.Meal{}).Count(&totalMeals).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count meals failed"})
		return
	}
	if err := db.Model(&entity.UpcomingMeal{}).Count(&totalUpcoming).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count upcoming meals failed"})
		return
	}
	if err := db.Model(&entity.MealRequest{}).
		Where("status = ?", entity.RequestPending).
		Count(&pendingRequests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count pending requests failed"})
		return
	}
	if err := db.Model(&entity.Review{}).Count(&totalReviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count reviews failed"})
		return
	}
	if err := db.Model(&entity.Payment{}).Count(&totalPayments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "count payments failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalUsers":      totalUsers,
		"totalMeals":      totalMeals,
		"upcomingMeals":   totalUpcoming,
		"pendingRequests": pendingRequests,
		"totalReviews":    totalReviews,
		"totalPayments":   totalPayments,
	})
}
