package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/repository"
	"github.com/klubapp/klub-backend/utils"
)

// BillService handles bill lifecycle, bill items, participants, and
// aggregate assembly.
type BillService struct {
	billRepo       *repository.BillRepository
	restaurantRepo *repository.RestaurantRepository
}

// NewBillService creates a new bill service
func NewBillService(billRepo *repository.BillRepository, restaurantRepo *repository.RestaurantRepository) *BillService {
	return &BillService{
		billRepo:       billRepo,
		restaurantRepo: restaurantRepo,
	}
}

// ListBills returns all bills
func (s *BillService) ListBills() ([]models.Bill, error) {
	bills, err := s.billRepo.ListBills()
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve bills", err)
	}
	return bills, nil
}

// ListOpenBillsForTable returns the open bills at a restaurant table
func (s *BillService) ListOpenBillsForTable(restaurantID string, tableNumber int) ([]models.Bill, error) {
	bills, err := s.billRepo.ListOpenBillsForTable(restaurantID, tableNumber)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve bills", err)
	}
	return bills, nil
}

// GetBill returns a single bill
func (s *BillService) GetBill(billID string) (*models.Bill, error) {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}
	return bill, nil
}

// CreateBill opens a bill for a table, optionally with initial items. The
// stored total is derived from the items, never taken from the caller.
func (s *BillService) CreateBill(req *models.CreateBillRequest) (*models.Bill, error) {
	if err := utils.ValidateTableNumber(req.TableNumber); err != nil {
		return nil, err
	}
	if _, err := s.restaurantRepo.GetRestaurantByID(req.RestaurantID); err != nil {
		return nil, mapStoreError(err, "Restaurant", "Failed to fetch restaurant")
	}

	bill := models.NewBill(uuid.NewString(), req.RestaurantID, req.TableNumber)

	items, err := buildItems(bill.ID, req.Items)
	if err != nil {
		return nil, err
	}

	if err := s.billRepo.CreateBill(bill, items); err != nil {
		return nil, utils.NewUpstreamError("Failed to store bill", err)
	}
	return bill, nil
}

// UpdateBill updates a bill's table number and status
func (s *BillService) UpdateBill(billID string, req *models.UpdateBillRequest) (*models.Bill, error) {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}

	bill.TableNumber = req.TableNumber
	bill.Status = req.Status

	if err := s.billRepo.UpdateBill(bill); err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to update bill")
	}
	return bill, nil
}

// DeleteBill removes a bill and everything attached to it
func (s *BillService) DeleteBill(billID string) error {
	if err := s.billRepo.DeleteBill(billID); err != nil {
		return mapStoreError(err, "Bill", "Failed to delete bill")
	}
	return nil
}

// ListItems returns a bill's items with their assignments
func (s *BillService) ListItems(billID string) ([]models.BillItem, error) {
	if _, err := s.billRepo.GetBillByID(billID); err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}

	items, err := s.billRepo.ListBillItems(billID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve bill items", err)
	}
	return items, nil
}

// AddItems appends items to a bill and recomputes the persisted total.
// Returns the items with the bill's new total applied.
func (s *BillService) AddItems(billID string, req *models.AddBillItemsRequest) ([]models.BillItem, float64, error) {
	if err := utils.ValidateNotEmpty(req.Items, "items"); err != nil {
		return nil, 0, err
	}

	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		return nil, 0, mapStoreError(err, "Bill", "Failed to fetch bill")
	}
	if bill.Status != models.BillStatusOpen {
		return nil, 0, utils.NewValidationError("items can only be added to an open bill")
	}

	items, err := buildItems(billID, req.Items)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.billRepo.AddBillItems(billID, items)
	if err != nil {
		return nil, 0, utils.NewUpstreamError("Failed to store bill items", err)
	}
	return items, total, nil
}

// ListParticipants returns a bill's participants in join order
func (s *BillService) ListParticipants(billID string) ([]models.Participant, error) {
	if _, err := s.billRepo.GetBillByID(billID); err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}

	participants, err := s.billRepo.ListParticipants(billID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve participants", err)
	}
	return participants, nil
}

// AddParticipant joins a person to a bill
func (s *BillService) AddParticipant(billID string, req *models.AddParticipantRequest) (*models.Participant, error) {
	if err := utils.ValidateRequired(req.Name, "participant name"); err != nil {
		return nil, err
	}
	if _, err := s.billRepo.GetBillByID(billID); err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}

	participant := &models.Participant{
		ID:        uuid.NewString(),
		BillID:    billID,
		Name:      req.Name,
		Email:     req.Email,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.billRepo.AddParticipant(participant); err != nil {
		return nil, utils.NewUpstreamError("Failed to store participant", err)
	}
	return participant, nil
}

// RemoveParticipant removes a participant from a bill. All of the
// participant's item assignments are removed in the same operation, so
// affected items' per-person costs recompute on the next split calculation.
func (s *BillService) RemoveParticipant(billID, participantID string) error {
	if _, err := s.billRepo.GetBillByID(billID); err != nil {
		return mapStoreError(err, "Bill", "Failed to fetch bill")
	}
	if err := s.billRepo.RemoveParticipant(billID, participantID); err != nil {
		return mapStoreError(err, "Participant", "Failed to remove participant")
	}
	return nil
}

// SetItemAssignments replaces the participant set an item is split across.
// Every referenced participant must exist on the bill.
func (s *BillService) SetItemAssignments(billID, itemID string, participantIDs []string) error {
	participants, err := s.ListParticipants(billID)
	if err != nil {
		return err
	}

	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}
	for _, participantID := range participantIDs {
		if !known[participantID] {
			return utils.NewDanglingReferenceError(itemID, participantID)
		}
	}

	if err := s.billRepo.SetItemAssignments(billID, itemID, participantIDs); err != nil {
		return mapStoreError(err, "Bill item", "Failed to store item assignments")
	}
	return nil
}

// GetBillAggregate assembles the bill, its items, and its participants into
// one consistent in-memory object, verifying referential consistency.
func (s *BillService) GetBillAggregate(billID string) (*models.BillAggregate, error) {
	bill, err := s.billRepo.GetBillByID(billID)
	if err != nil {
		return nil, mapStoreError(err, "Bill", "Failed to fetch bill")
	}

	items, err := s.billRepo.ListBillItems(billID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve bill items", err)
	}

	participants, err := s.billRepo.ListParticipants(billID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve participants", err)
	}

	agg := &models.BillAggregate{
		Bill:         *bill,
		Items:        items,
		Participants: participants,
	}
	if err := ValidateAggregate(agg); err != nil {
		return nil, err
	}
	return agg, nil
}

// buildItems validates and materializes item inputs for storage. A missing
// quantity defaults to 1, matching how single items are usually entered.
func buildItems(billID string, inputs []models.BillItemInput) ([]models.BillItem, error) {
	items := make([]models.BillItem, 0, len(inputs))
	for _, input := range inputs {
		quantity := input.Quantity
		if quantity == 0 {
			quantity = 1
		}
		if err := utils.ValidateItemData(input.Name, input.Price, quantity); err != nil {
			return nil, err
		}
		items = append(items, models.BillItem{
			ID:         uuid.NewString(),
			BillID:     billID,
			Name:       input.Name,
			Price:      input.Price,
			Quantity:   quantity,
			AssignedTo: []string{},
		})
	}
	return items, nil
}
