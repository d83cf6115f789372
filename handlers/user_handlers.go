package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/utils"
)

// ListUsers handles GET /api/user
func ListUsers(c *gin.Context) {
	users, err := handlerServices.UserService.ListUsers()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, users)
}

// GetUser handles GET /api/user/:id
func GetUser(c *gin.Context) {
	user, err := handlerServices.UserService.GetUser(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, user)
}

// CreateUser handles POST /api/user
func CreateUser(c *gin.Context) {
	var request models.CreateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Email is required"))
		return
	}

	user, err := handlerServices.UserService.CreateUser(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, user)
}

// UpdateUser handles PUT /api/user/:id
func UpdateUser(c *gin.Context) {
	var request models.UpdateUserRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Email is required"))
		return
	}

	user, err := handlerServices.UserService.UpdateUser(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, user)
}

// DeleteUser handles DELETE /api/user/:id
func DeleteUser(c *gin.Context) {
	if err := handlerServices.UserService.DeleteUser(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
