package services

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/klubapp/klub-backend/models"
	"github.com/klubapp/klub-backend/repository"
	"github.com/klubapp/klub-backend/utils"
)

// TableScheme is the custom URI scheme used in native-app QR payloads
const TableScheme = "klub"

// QRService handles table QR payload encoding/decoding and QR record
// management.
type QRService struct {
	qrRepo         *repository.QRCodeRepository
	restaurantRepo *repository.RestaurantRepository
}

// NewQRService creates a new QR service
func NewQRService(qrRepo *repository.QRCodeRepository, restaurantRepo *repository.RestaurantRepository) *QRService {
	return &QRService{
		qrRepo:         qrRepo,
		restaurantRepo: restaurantRepo,
	}
}

// EncodeTablePayload builds the custom-scheme payload embedded in a table's
// QR code: klub://restaurant/{restaurantId}/table/{tableNumber}.
func EncodeTablePayload(restaurantID string, tableNumber int) string {
	return fmt.Sprintf("%s://restaurant/%s/table/%d", TableScheme, restaurantID, tableNumber)
}

// ScanURL builds the web fallback URL for a table, decodable by
// DecodeTablePayload as the query-parameter form.
func ScanURL(baseURL, restaurantID string, tableNumber int) string {
	return fmt.Sprintf("%s/scan?restaurant=%s&table=%d",
		strings.TrimRight(baseURL, "/"), url.QueryEscape(restaurantID), tableNumber)
}

// DecodeTablePayload parses a scanned payload into a restaurant+table
// reference. Two shapes are accepted:
//
//	klub://restaurant/{restaurantId}/table/{tableNumber}
//	http(s)://.../...?restaurant={restaurantId}&table={tableNumber}
//
// Anything else fails with an invalid-payload error. Decoding is pure and
// has no side effects.
func DecodeTablePayload(payload string) (*models.TableRef, error) {
	u, err := url.Parse(strings.TrimSpace(payload))
	if err != nil {
		return nil, utils.NewInvalidPayloadError("not a well-formed URI")
	}

	switch u.Scheme {
	case TableScheme:
		return decodeSchemePayload(u)
	case "http", "https":
		return decodeWebPayload(u)
	default:
		return nil, utils.NewInvalidPayloadError("unrecognized payload scheme")
	}
}

// decodeSchemePayload handles klub://restaurant/{id}/table/{n}. The URI host
// is the first path segment of the original payload.
func decodeSchemePayload(u *url.URL) (*models.TableRef, error) {
	segments := []string{}
	if u.Host != "" {
		segments = append(segments, u.Host)
	}
	for _, part := range strings.Split(u.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}

	if len(segments) != 4 || segments[0] != "restaurant" || segments[2] != "table" {
		return nil, utils.NewInvalidPayloadError("expected restaurant/{id}/table/{number} path")
	}

	tableNumber, err := strconv.Atoi(segments[3])
	if err != nil {
		return nil, utils.NewInvalidPayloadError("table number is not a valid integer")
	}

	return &models.TableRef{RestaurantID: segments[1], TableNumber: tableNumber}, nil
}

// decodeWebPayload handles http(s) URLs carrying restaurant and table query
// parameters.
func decodeWebPayload(u *url.URL) (*models.TableRef, error) {
	query := u.Query()
	restaurantID := query.Get("restaurant")
	tableParam := query.Get("table")

	if restaurantID == "" || tableParam == "" {
		return nil, utils.NewInvalidPayloadError("restaurant and table parameters are required")
	}

	tableNumber, err := strconv.Atoi(tableParam)
	if err != nil {
		return nil, utils.NewInvalidPayloadError("table number is not a valid integer")
	}

	return &models.TableRef{RestaurantID: restaurantID, TableNumber: tableNumber}, nil
}

// CreateQRCode persists a QR record for a restaurant table and returns it
// together with the scan URL to embed in the rendered code.
func (s *QRService) CreateQRCode(restaurantID string, tableNumber int, frontendBaseURL string) (*models.QRCodeResponse, error) {
	if err := utils.ValidateTableNumber(tableNumber); err != nil {
		return nil, err
	}

	if _, err := s.restaurantRepo.GetRestaurantByID(restaurantID); err != nil {
		return nil, mapStoreError(err, "Restaurant", "Failed to fetch restaurant")
	}

	code := models.NewQRCode(uuid.NewString(), restaurantID, tableNumber)
	if err := s.qrRepo.CreateQRCode(code); err != nil {
		return nil, utils.NewUpstreamError("Failed to store QR code", err)
	}

	return &models.QRCodeResponse{
		QRCode: *code,
		QRURL:  ScanURL(frontendBaseURL, restaurantID, tableNumber),
	}, nil
}

// ListQRCodes returns all QR codes registered for a restaurant
func (s *QRService) ListQRCodes(restaurantID string) ([]models.QRCode, error) {
	if _, err := s.restaurantRepo.GetRestaurantByID(restaurantID); err != nil {
		return nil, mapStoreError(err, "Restaurant", "Failed to fetch restaurant")
	}

	codes, err := s.qrRepo.ListQRCodesByRestaurant(restaurantID)
	if err != nil {
		return nil, utils.NewUpstreamError("Failed to retrieve QR codes", err)
	}
	return codes, nil
}
