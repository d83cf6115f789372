package handlers

import (
	"os"

	"github.com/klubapp/klub-backend/repository"
	"github.com/klubapp/klub-backend/services"
)

// HandlerServices contains all service dependencies
type HandlerServices struct {
	RestaurantService *services.RestaurantService
	UserService       *services.UserService
	BillService       *services.BillService
	SplitService      *services.SplitService
	PaymentService    *services.PaymentService
	QRService         *services.QRService
	ExportService     *services.ExportService

	FrontendBaseURL string
}

// NewHandlerServices wires repositories and services over the shared
// database handle.
func NewHandlerServices() *HandlerServices {
	db := repository.GetDB()

	restaurantRepo := repository.NewRestaurantRepository(db)
	userRepo := repository.NewUserRepository(db)
	billRepo := repository.NewBillRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	qrRepo := repository.NewQRCodeRepository(db)

	frontendBaseURL := os.Getenv("FRONTEND_URL")
	if frontendBaseURL == "" {
		frontendBaseURL = "http://localhost:3000"
	}

	return &HandlerServices{
		RestaurantService: services.NewRestaurantService(restaurantRepo),
		UserService:       services.NewUserService(userRepo),
		BillService:       services.NewBillService(billRepo, restaurantRepo),
		SplitService:      services.NewSplitService(),
		PaymentService:    services.NewPaymentService(paymentRepo, billRepo),
		QRService:         services.NewQRService(qrRepo, restaurantRepo),
		ExportService:     services.NewExportService(restaurantRepo, billRepo, paymentRepo),
		FrontendBaseURL:   frontendBaseURL,
	}
}

var handlerServices *HandlerServices

// InitHandlers initializes the handler services
func InitHandlers() {
	handlerServices = NewHandlerServices()
}
