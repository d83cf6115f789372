package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/utils"
)

// ListRestaurants handles GET /api/restaurant
func ListRestaurants(c *gin.Context) {
	restaurants, err := handlerServices.RestaurantService.ListRestaurants()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, restaurants)
}

// GetRestaurant handles GET /api/restaurant/:id
func GetRestaurant(c *gin.Context) {
	restaurant, err := handlerServices.RestaurantService.GetRestaurant(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, restaurant)
}

// CreateRestaurant handles POST /api/restaurant
func CreateRestaurant(c *gin.Context) {
	var request models.CreateRestaurantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Restaurant name is required"))
		return
	}

	restaurant, err := handlerServices.RestaurantService.CreateRestaurant(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, restaurant)
}

// UpdateRestaurant handles PUT /api/restaurant/:id
func UpdateRestaurant(c *gin.Context) {
	var request models.UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Restaurant name is required"))
		return
	}

	restaurant, err := handlerServices.RestaurantService.UpdateRestaurant(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, restaurant)
}

// DeleteRestaurant handles DELETE /api/restaurant/:id
func DeleteRestaurant(c *gin.Context) {
	if err := handlerServices.RestaurantService.DeleteRestaurant(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateQRCode handles POST /api/restaurant/:id/qr-codes
func CreateQRCode(c *gin.Context) {
	var request models.CreateQRCodeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Table number is required"))
		return
	}

	response, err := handlerServices.QRService.CreateQRCode(
		c.Param("id"), request.TableNumber, handlerServices.FrontendBaseURL)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, response)
}

// ListQRCodes handles GET /api/restaurant/:id/qr-codes
func ListQRCodes(c *gin.Context) {
	codes, err := handlerServices.QRService.ListQRCodes(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, codes)
}

// ExportRestaurantReport handles GET /api/restaurant/:id/export
func ExportRestaurantReport(c *gin.Context) {
	file, filename, err := handlerServices.ExportService.ExportRestaurantReport(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	if err := file.Write(c.Writer); err != nil {
		utils.HandleError(c, utils.NewInternalError("Failed to write report"))
	}
}
