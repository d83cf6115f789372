package services

import (
	"testing"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/utils"
	"github.com/stretchr/testify/assert"
)

func aggregate(total float64, items []models.BillItem, participantIDs ...string) *models.BillAggregate {
	participants := make([]models.Participant, 0, len(participantIDs))
	for _, id := range participantIDs {
		participants = append(participants, models.Participant{
			ID:     id,
			BillID: "bill-1",
			Name:   id,
		})
	}
	return &models.BillAggregate{
		Bill: models.Bill{
			ID:          "bill-1",
			TableNumber: 4,
			TotalAmount: total,
			Status:      models.BillStatusOpen,
		},
		Items:        items,
		Participants: participants,
	}
}

func TestSplitService_CalculateSplit_EqualSplit(t *testing.T) {
	service := NewSplitService()

	// Burger 12.00 x1 + Fries 4.00 x2 = 20.00, split two ways
	agg := aggregate(20.00, []models.BillItem{
		{ID: "item-1", Name: "Burger", Price: 12.00, Quantity: 1},
		{ID: "item-2", Name: "Fries", Price: 4.00, Quantity: 2},
	}, "alice", "bob")

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyEqual)

	assert.NoError(t, err)
	assert.Len(t, owed, 2)
	assert.Equal(t, 10.00, owed["alice"])
	assert.Equal(t, 10.00, owed["bob"])
}

func TestSplitService_CalculateSplit_EqualSplitCoversTotal(t *testing.T) {
	service := NewSplitService()

	// 10.00 across three people rounds to 3.33 per head
	agg := aggregate(10.00, nil, "alice", "bob", "carol")

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyEqual)

	assert.NoError(t, err)
	sum := 0.0
	for _, amount := range owed {
		assert.Equal(t, 3.33, amount)
		sum += amount
	}
	assert.InDelta(t, agg.Bill.TotalAmount, sum, 0.01*float64(len(owed)))
}

func TestSplitService_CalculateSplit_Itemized(t *testing.T) {
	service := NewSplitService()

	// Alice: 12.00 + 8.00/2 = 16.00
	// Bob:   8.00/2 + 3.50 = 7.50
	agg := aggregate(23.50, []models.BillItem{
		{ID: "item-1", Name: "Steak", Price: 12.00, Quantity: 1, AssignedTo: []string{"alice"}},
		{ID: "item-2", Name: "Nachos", Price: 8.00, Quantity: 1, AssignedTo: []string{"alice", "bob"}},
		{ID: "item-3", Name: "Soda", Price: 3.50, Quantity: 1, AssignedTo: []string{"bob"}},
	}, "alice", "bob")

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyItemized)

	assert.NoError(t, err)
	assert.InDelta(t, 16.00, owed["alice"], 0.01)
	assert.InDelta(t, 7.50, owed["bob"], 0.01)

	sum := 0.0
	for _, amount := range owed {
		sum += amount
	}
	assert.InDelta(t, agg.Bill.TotalAmount, sum, 0.01)
}

func TestSplitService_CalculateSplit_ItemizedQuantities(t *testing.T) {
	service := NewSplitService()

	// Wings 6.00 x3 = 18.00 shared by all three: 6.00 each
	// Beer 5.00 x2 = 10.00 to bob: 10.00
	agg := aggregate(28.00, []models.BillItem{
		{ID: "item-1", Name: "Wings", Price: 6.00, Quantity: 3, AssignedTo: []string{"alice", "bob", "carol"}},
		{ID: "item-2", Name: "Beer", Price: 5.00, Quantity: 2, AssignedTo: []string{"bob"}},
	}, "alice", "bob", "carol")

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyItemized)

	assert.NoError(t, err)
	assert.InDelta(t, 6.00, owed["alice"], 0.01)
	assert.InDelta(t, 16.00, owed["bob"], 0.01)
	assert.InDelta(t, 6.00, owed["carol"], 0.01)
}

func TestSplitService_CalculateSplit_UnassignedItemsFallToFirstParticipant(t *testing.T) {
	service := NewSplitService()

	agg := aggregate(10.00, []models.BillItem{
		{ID: "item-1", Name: "Coffee", Price: 10.00, Quantity: 1},
	}, "alice", "bob")

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyItemized)

	assert.NoError(t, err)
	assert.Equal(t, 10.00, owed["alice"])
	assert.Equal(t, 0.00, owed["bob"])
}

func TestSplitService_CalculateSplit_Idempotent(t *testing.T) {
	service := NewSplitService()

	agg := aggregate(23.50, []models.BillItem{
		{ID: "item-1", Name: "Steak", Price: 12.00, Quantity: 1, AssignedTo: []string{"alice"}},
		{ID: "item-2", Name: "Nachos", Price: 8.00, Quantity: 1, AssignedTo: []string{"alice", "bob"}},
		{ID: "item-3", Name: "Soda", Price: 3.50, Quantity: 1},
	}, "alice", "bob")

	first, err := service.CalculateSplit(agg, utils.SplitPolicyItemized)
	assert.NoError(t, err)

	second, err := service.CalculateSplit(agg, utils.SplitPolicyItemized)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSplitService_CalculateSplit_NoParticipants(t *testing.T) {
	service := NewSplitService()

	agg := aggregate(20.00, []models.BillItem{
		{ID: "item-1", Name: "Burger", Price: 20.00, Quantity: 1},
	})

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyEqual)

	assert.Nil(t, owed)
	assert.True(t, utils.IsKind(err, utils.KindInvalidSplitState))
}

func TestSplitService_CalculateSplit_UnknownPolicy(t *testing.T) {
	service := NewSplitService()

	agg := aggregate(20.00, nil, "alice")

	owed, err := service.CalculateSplit(agg, "proportional")

	assert.Nil(t, owed)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}

func TestSplitService_CalculateSplit_DanglingAssignment(t *testing.T) {
	service := NewSplitService()

	agg := aggregate(12.00, []models.BillItem{
		{ID: "item-1", Name: "Steak", Price: 12.00, Quantity: 1, AssignedTo: []string{"ghost"}},
	}, "alice", "bob")

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyItemized)

	assert.Nil(t, owed)
	assert.True(t, utils.IsKind(err, utils.KindDanglingReference))
}

func TestSplitService_CalculateSplit_AfterParticipantRemoval(t *testing.T) {
	service := NewSplitService()

	// Carol left the table and her assignments were reassigned to bob.
	agg := aggregate(24.00, []models.BillItem{
		{ID: "item-1", Name: "Pizza", Price: 18.00, Quantity: 1, AssignedTo: []string{"alice", "bob"}},
		{ID: "item-2", Name: "Wine", Price: 6.00, Quantity: 1, AssignedTo: []string{"bob"}},
	}, "alice", "bob")

	owed, err := service.CalculateSplit(agg, utils.SplitPolicyItemized)

	assert.NoError(t, err)
	assert.InDelta(t, 9.00, owed["alice"], 0.01)
	assert.InDelta(t, 15.00, owed["bob"], 0.01)
	assert.NotContains(t, owed, "carol")
}

func TestValidateAggregate(t *testing.T) {
	valid := aggregate(12.00, []models.BillItem{
		{ID: "item-1", Name: "Steak", Price: 12.00, Quantity: 1, AssignedTo: []string{"alice"}},
	}, "alice")
	assert.NoError(t, ValidateAggregate(valid))

	broken := aggregate(12.00, []models.BillItem{
		{ID: "item-1", Name: "Steak", Price: 12.00, Quantity: 1, AssignedTo: []string{"ghost"}},
	}, "alice")
	err := ValidateAggregate(broken)
	assert.Error(t, err)
	assert.True(t, utils.IsKind(err, utils.KindDanglingReference))
}
