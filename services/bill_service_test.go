package services

import (
	"testing"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/utils"
	"github.com/stretchr/testify/assert"
)

func TestBillService_AddItems_EmptyItems(t *testing.T) {
	service := NewBillService(nil, nil)

	items, total, err := service.AddItems("bill-1", &models.AddBillItemsRequest{})

	assert.Nil(t, items)
	assert.Equal(t, 0.00, total)
	assert.True(t, utils.IsKind(err, utils.KindValidation))
}
