package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateShareQR generates a QR code image that encodes the share
	// payload for a wishlist.
	GenerateShareQR(wishlistID int64) ([]byte, error)

	// ParseShareQR parses QR code data and returns the wishlist ID.
	ParseShareQR(qrData string) (int64, error)
}
