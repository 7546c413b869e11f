package handler

import (
	"log/slog"
	"net/http"

	"rating/internal/delivery/api/response"
	domainerrors "rating/internal/domain/errors"
	"rating/internal/domain/service"
	"rating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BuildingHandlerParams holds dependencies for BuildingHandler, injected by Fx.
type BuildingHandlerParams struct {
	fx.In

	BuildingUC usecase.BuildingUsecase
	QRCode     service.QRCodeService
	Logger     *slog.Logger
}

// BuildingHandler holds dependencies for building-related handlers
type BuildingHandler struct {
	buildingUC usecase.BuildingUsecase
	qrCode     service.QRCodeService
	logger     *slog.Logger
}

// NewBuildingHandler is the constructor for BuildingHandler
func NewBuildingHandler(params BuildingHandlerParams) *BuildingHandler {
	return &BuildingHandler{
		buildingUC: params.BuildingUC,
		qrCode:     params.QRCode,
		logger:     params.Logger,
	}
}

// CreateBuildingRequest represents the request body for registering a building
type CreateBuildingRequest struct {
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	PriceRange  *string `json:"priceRange"`
	Description *string `json:"description"`
}

// ListBuildings handles GET /api/buildings
func (h *BuildingHandler) ListBuildings(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return err
	}

	buildings, err := h.buildingUC.List(c.Request().Context(), usecase.ListBuildingsQuery{
		Search: c.QueryParam("search"),
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return err
	}

	return response.OK(c, buildings)
}

// GetBuilding handles GET /api/buildings/:id
func (h *BuildingHandler) GetBuilding(c echo.Context) error {
	building, err := h.buildingUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, building)
}

// CreateBuilding handles POST /api/buildings
func (h *BuildingHandler) CreateBuilding(c echo.Context) error {
	var req CreateBuildingRequest
	if err := c.Bind(&req); err != nil {
		return response.ErrInvalidBody
	}

	building, err := h.buildingUC.Create(c.Request().Context(), &usecase.CreateBuildingInput{
		Name:        req.Name,
		Address:     req.Address,
		PriceRange:  req.PriceRange,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return response.Created(c, building)
}

// GetBuildingQR handles GET /api/buildings/:id/qr and renders a PNG share code
func (h *BuildingHandler) GetBuildingQR(c echo.Context) error {
	id := c.Param("id")
	if err := requireBuilding(c, h.buildingUC, id); err != nil {
		return err
	}

	png, err := h.qrCode.GenerateBuildingQR(id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// requireBuilding answers NotFound for an unknown building id. Handlers call it
// before rejecting a malformed body so existence is always reported first.
func requireBuilding(c echo.Context, buildings usecase.BuildingUsecase, id string) error {
	exists, err := buildings.Exists(c.Request().Context(), id)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.NewBuildingNotFoundError(id)
	}

	return nil
}
