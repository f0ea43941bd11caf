package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"bistro-api/initializers"
	"bistro-api/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func groupLabel(role string) string {
	if role == models.RoleDeliveryCrew {
		return "Delivery Crew"
	}
	return "Manager"
}

func listGroupUsers(ctx *gin.Context, role string) {
	var users []models.User
	if err := initializers.DB.Where("role = ?", role).Find(&users).Error; err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"users": users})
}

// addGroupUser grants the role to the named user, creating the account first
// when the username is unknown.
func addGroupUser(ctx *gin.Context, role string) {
	var input struct {
		Username string `json:"username" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "username is required")
		return
	}

	user, err := findUserByUsername(input.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{Username: input.Username, Role: role}
		if createErr := initializers.DB.Create(&user).Error; createErr != nil {
			log.Println("User creation error:", createErr)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	} else if err != nil {
		log.Println("Database error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	} else if user.Role != role {
		if updateErr := initializers.DB.Model(&user).Update("role", role).Error; updateErr != nil {
			log.Println("Role update error:", updateErr)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}
	}

	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": "Successfully added user to " + groupLabel(role) + " group",
	})
}

// removeGroupUser reverts the member to a plain customer. The account itself
// is kept.
func removeGroupUser(ctx *gin.Context, role string) {
	userId, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, "Invalid user ID")
		return
	}

	result := initializers.DB.Model(&models.User{}).
		Where("id = ? AND role = ?", userId, role).
		Update("role", models.RoleCustomer)
	if result.Error != nil {
		log.Println("Database error:", result.Error)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
		return
	}
	if result.RowsAffected == 0 {
		sendErrorResponse(ctx, http.StatusNotFound, "User not found in "+groupLabel(role)+" group")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": "Successfully removed user from " + groupLabel(role) + " group",
	})
}

func GetManagers(ctx *gin.Context)   { listGroupUsers(ctx, models.RoleManager) }
func AddManager(ctx *gin.Context)    { addGroupUser(ctx, models.RoleManager) }
func RemoveManager(ctx *gin.Context) { removeGroupUser(ctx, models.RoleManager) }

func GetDeliveryCrew(ctx *gin.Context)    { listGroupUsers(ctx, models.RoleDeliveryCrew) }
func AddDeliveryCrew(ctx *gin.Context)    { addGroupUser(ctx, models.RoleDeliveryCrew) }
func RemoveDeliveryCrew(ctx *gin.Context) { removeGroupUser(ctx, models.RoleDeliveryCrew) }
