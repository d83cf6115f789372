package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/repository"
	"github.com/klubapp/klub-backend/utils"
)

// ExportService generates Excel reports for restaurant owners
type ExportService struct {
	restaurantRepo *repository.RestaurantRepository
	billRepo       *repository.BillRepository
	paymentRepo    *repository.PaymentRepository
}

// NewExportService creates a new export service
func NewExportService(restaurantRepo *repository.RestaurantRepository, billRepo *repository.BillRepository, paymentRepo *repository.PaymentRepository) *ExportService {
	return &ExportService{
		restaurantRepo: restaurantRepo,
		billRepo:       billRepo,
		paymentRepo:    paymentRepo,
	}
}

// ExportRestaurantReport generates an Excel workbook with a restaurant's
// bills and their payments, one sheet each.
func (s *ExportService) ExportRestaurantReport(restaurantID string) (*excelize.File, string, error) {
	restaurant, err := s.restaurantRepo.GetRestaurantByID(restaurantID)
	if err != nil {
		return nil, "", mapStoreError(err, "Restaurant", "Failed to fetch restaurant")
	}

	bills, err := s.billRepo.ListBillsByRestaurant(restaurantID)
	if err != nil {
		return nil, "", utils.NewUpstreamError("Failed to retrieve bills", err)
	}

	f := excelize.NewFile()

	if err := s.createBillsSheet(f, bills); err != nil {
		return nil, "", utils.NewInternalError(fmt.Sprintf("failed to create bills sheet: %v", err))
	}
	if err := s.createPaymentsSheet(f, bills); err != nil {
		return nil, "", utils.NewInternalError(fmt.Sprintf("failed to create payments sheet: %v", err))
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s_Report_%s.xlsx",
		utils.CleanFileName(restaurant.Name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createBillsSheet creates Sheet 1: Bills
func (s *ExportService) createBillsSheet(f *excelize.File, bills []models.Bill) error {
	sheetName := "Bills"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"Bill ID", "Table", "Total", "Status", "Opened"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, bill := range bills {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), bill.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), bill.TableNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), utils.Round(bill.TotalAmount))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), bill.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), bill.CreatedAt.Format("2006-01-02 15:04"))
	}

	f.SetColWidth(sheetName, "A", "E", 20)
	return nil
}

// createPaymentsSheet creates Sheet 2: Payments across all the restaurant's
// bills.
func (s *ExportService) createPaymentsSheet(f *excelize.File, bills []models.Bill) error {
	sheetName := "Payments"
	f.NewSheet(sheetName)

	headers := []string{"Payment ID", "Bill ID", "Table", "Amount", "Method", "Status", "Created"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	row := 2
	for _, bill := range bills {
		payments, err := s.paymentRepo.ListPaymentsByBill(bill.ID)
		if err != nil {
			return err
		}
		for _, payment := range payments {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), payment.ID)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), payment.BillID)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), bill.TableNumber)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), utils.Round(payment.Amount))
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), payment.PaymentMethod)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), payment.Status)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), payment.CreatedAt.Format("2006-01-02 15:04"))
			row++
		}
	}

	f.SetColWidth(sheetName, "A", "G", 20)
	return nil
}
