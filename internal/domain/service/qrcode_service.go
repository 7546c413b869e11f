package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// BuildingURL returns the frontend link encoded for a building
	BuildingURL(buildingID string) string

	// GenerateBuildingQR renders a PNG QR code linking to the building page
	GenerateBuildingQR(buildingID string) ([]byte, error)
}
