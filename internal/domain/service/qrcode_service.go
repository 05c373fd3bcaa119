package service

import "github.com/google/uuid"

// QRCodeService generates and parses share QR codes for POIs.
type QRCodeService interface {
	// GeneratePoiShareQR renders a PNG QR code that encodes the POI reference.
	GeneratePoiShareQR(poiID uuid.UUID) ([]byte, error)

	// ParsePoiShareQR extracts the POI ID from scanned QR payload data.
	ParsePoiShareQR(qrData string) (uuid.UUID, error)
}
