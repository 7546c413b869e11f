package qrcode

import (
	"net/url"
	"strings"

	"rating/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const buildingPagePath = "apartment"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Codes link to
// {baseURL}/apartment/{buildingID}.
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
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// BuildingURL returns the frontend page a building QR code points at.
func (s *qrcodeService) BuildingURL(buildingID string) string {
	return s.baseURL + "/" + buildingPagePath + "/" + url.PathEscape(buildingID)
}

// GenerateBuildingQR generates a PNG QR code linking to the building page
func (s *qrcodeService) GenerateBuildingQR(buildingID string) ([]byte, error) {
	if buildingID == "" {
		return nil, errors.New("building ID is required")
	}

	qrCode, err := qrcode.New(s.BuildingURL(buildingID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
