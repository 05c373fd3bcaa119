package qrcode

import (
	"encoding/json"
	"fmt"

	"wayfinder/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PoiID string `json:"poi_id"`
	Type  string `json:"type"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
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
	}
}

// GeneratePoiShareQR generates a QR code that references a POI
func (s *qrcodeService) GeneratePoiShareQR(poiID uuid.UUID) ([]byte, error) {
	data := QRCodeData{
		PoiID: poiID.String(),
		Type:  "poi_share",
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

// ParsePoiShareQR parses QR code data and returns the POI ID
func (s *qrcodeService) ParsePoiShareQR(qrData string) (uuid.UUID, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return uuid.Nil, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "poi_share" {
		return uuid.Nil, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	poiID, err := uuid.Parse(data.PoiID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse poi ID: %w", err)
	}

	return poiID, nil
}
