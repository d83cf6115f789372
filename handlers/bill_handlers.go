package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/utils"
)

// ListBills handles GET /api/bill
func ListBills(c *gin.Context) {
	bills, err := handlerServices.BillService.ListBills()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, bills)
}

// GetBill handles GET /api/bill/:id, returning the bill with its items
func GetBill(c *gin.Context) {
	agg, err := handlerServices.BillService.GetBillAggregate(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, agg)
}

// CreateBill handles POST /api/bill
func CreateBill(c *gin.Context) {
	var request models.CreateBillRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Restaurant ID and table number are required"))
		return
	}

	bill, err := handlerServices.BillService.CreateBill(&request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, bill)
}

// UpdateBill handles PUT /api/bill/:id
func UpdateBill(c *gin.Context) {
	var request models.UpdateBillRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Table number and status are required"))
		return
	}

	bill, err := handlerServices.BillService.UpdateBill(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, bill)
}

// DeleteBill handles DELETE /api/bill/:id
func DeleteBill(c *gin.Context) {
	if err := handlerServices.BillService.DeleteBill(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListBillItems handles GET /api/bill/:id/items
func ListBillItems(c *gin.Context) {
	items, err := handlerServices.BillService.ListItems(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, items)
}

// AddBillItems handles POST /api/bill/:id/items. The bill's total is
// recomputed from all items and persisted in the same operation.
func AddBillItems(c *gin.Context) {
	var request models.AddBillItemsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Items are required"))
		return
	}

	items, total, err := handlerServices.BillService.AddItems(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"items":        items,
		"total_amount": total,
	})
}

// ListParticipants handles GET /api/bill/:id/participants
func ListParticipants(c *gin.Context) {
	participants, err := handlerServices.BillService.ListParticipants(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, participants)
}

// AddParticipant handles POST /api/bill/:id/participants
func AddParticipant(c *gin.Context) {
	var request models.AddParticipantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Participant name is required"))
		return
	}

	participant, err := handlerServices.BillService.AddParticipant(c.Param("id"), &request)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleCreated(c, participant)
}

// RemoveParticipant handles DELETE /api/bill/:id/participants/:participantId
func RemoveParticipant(c *gin.Context) {
	err := handlerServices.BillService.RemoveParticipant(c.Param("id"), c.Param("participantId"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetItemAssignments handles PUT /api/bill/:id/items/:itemId/assignments
func SetItemAssignments(c *gin.Context) {
	var request models.SetItemAssignmentsRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Participant IDs are required"))
		return
	}

	err := handlerServices.BillService.SetItemAssignments(
		c.Param("id"), c.Param("itemId"), request.ParticipantIDs)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, gin.H{"participant_ids": request.ParticipantIDs})
}

// CalculateBillSplit handles POST /api/bill/:id/split
func CalculateBillSplit(c *gin.Context) {
	var request models.CalculateSplitRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.HandleError(c, utils.NewValidationError("Split policy is required"))
		return
	}

	agg, err := handlerServices.BillService.GetBillAggregate(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	owed, err := handlerServices.SplitService.CalculateSplit(agg, request.Policy)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.HandleSuccess(c, models.SplitResult{
		BillID:      agg.Bill.ID,
		Policy:      request.Policy,
		TotalAmount: utils.Round(agg.Bill.TotalAmount),
		Owed:        owed,
	})
}
