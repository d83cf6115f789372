package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/klubapp/klub-backend/services"
	"github.com/klubapp/klub-backend/utils"
)

// ResolveScan handles GET /api/scan/resolve?payload=...
//
// Decodes a scanned QR payload, looks up the restaurant it points at, and
// returns any open bills at that table so the client can offer join-or-open.
func ResolveScan(c *gin.Context) {
	payload := c.Query("payload")
	if payload == "" {
		utils.HandleError(c, utils.NewValidationError("payload is required"))
		return
	}

	ref, err := services.DecodeTablePayload(payload)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	restaurant, err := handlerServices.RestaurantService.GetRestaurant(ref.RestaurantID)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	openBills, err := handlerServices.BillService.ListOpenBillsForTable(ref.RestaurantID, ref.TableNumber)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, gin.H{
		"restaurant":   restaurant,
		"table_number": ref.TableNumber,
		"open_bills":   openBills,
	})
}
