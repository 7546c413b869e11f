package handler

import (
	"log/slog"

	"rating/internal/delivery/api/response"
	"rating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SummaryHandlerParams holds dependencies for SummaryHandler, injected by Fx.
type SummaryHandlerParams struct {
	fx.In

	SummaryUC  usecase.SummaryUsecase
	BuildingUC usecase.BuildingUsecase
	Logger     *slog.Logger
}

// SummaryHandler holds dependencies for summary-related handlers
type SummaryHandler struct {
	summaryUC  usecase.SummaryUsecase
	buildingUC usecase.BuildingUsecase
	logger     *slog.Logger
}

// NewSummaryHandler is the constructor for SummaryHandler
func NewSummaryHandler(params SummaryHandlerParams) *SummaryHandler {
	return &SummaryHandler{
		summaryUC:  params.SummaryUC,
		buildingUC: params.BuildingUC,
		logger:     params.Logger,
	}
}

// UpdateSummaryRequest represents the body the summarizer PUTs back
type UpdateSummaryRequest struct {
	Content       *string  `json:"content" validate:"required"`
	AverageRating *float64 `json:"averageRating" validate:"required"`
	CommentCount  *int     `json:"commentCount" validate:"required"`
}

// GetSummary handles GET /api/summaries/:buildingId
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	summary, err := h.summaryUC.GetByBuildingID(c.Request().Context(), c.Param("buildingId"))
	if err != nil {
		return err
	}
	if summary == nil {
		return response.NotFound(c, "Summary not found")
	}

	return response.OK(c, summary)
}

// UpdateSummary handles PUT /api/summaries/:buildingId
func (h *SummaryHandler) UpdateSummary(c echo.Context) error {
	buildingID := c.Param("buildingId")

	var req UpdateSummaryRequest
	if err := c.Bind(&req); err != nil {
		if err := requireBuilding(c, h.buildingUC, buildingID); err != nil {
			return err
		}
		return response.ErrInvalidBody
	}

	if err := c.Validate(&req); err != nil {
		if notFound := requireBuilding(c, h.buildingUC, buildingID); notFound != nil {
			return notFound
		}
		return err
	}

	summary, err := h.summaryUC.Update(c.Request().Context(), buildingID, &usecase.UpdateSummaryInput{
		Content:       *req.Content,
		AverageRating: *req.AverageRating,
		CommentCount:  *req.CommentCount,
	})
	if err != nil {
		return err
	}

	return response.OK(c, summary)
}
