// Package qrcode renders wishlist share payloads as QR code images.
package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"

	"wishlist/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// ShareData represents the QR code data structure
type ShareData struct {
	WishlistID string `json:"wishlist_id"`
	URL        string `json:"url,omitempty"`
	Type       string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GenerateShareQR generates a QR code PNG encoding the wishlist share payload.
func (s *qrcodeService) GenerateShareQR(wishlistID int64) ([]byte, error) {
	data := ShareData{
		WishlistID: strconv.FormatInt(wishlistID, 10),
		Type:       "wishlist-share",
	}
	if s.baseURL != "" {
		data.URL = fmt.Sprintf("%s/wishlists/%d", s.baseURL, wishlistID)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseShareQR parses QR code data and returns the wishlist ID.
func (s *qrcodeService) ParseShareQR(qrData string) (int64, error) {
	var data ShareData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "wishlist-share" {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	wishlistID, err := strconv.ParseInt(data.WishlistID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse wishlist ID: %w", err)
	}

	return wishlistID, nil
}
