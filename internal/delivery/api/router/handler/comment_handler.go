package handler

import (
	"log/slog"

	"rating/internal/delivery/api/response"
	"rating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CommentHandlerParams holds dependencies for CommentHandler, injected by Fx.
type CommentHandlerParams struct {
	fx.In

	CommentUC  usecase.CommentUsecase
	BuildingUC usecase.BuildingUsecase
	Logger     *slog.Logger
}

// CommentHandler holds dependencies for comment-related handlers
type CommentHandler struct {
	commentUC  usecase.CommentUsecase
	buildingUC usecase.BuildingUsecase
	logger     *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler
func NewCommentHandler(params CommentHandlerParams) *CommentHandler {
	return &CommentHandler{
		commentUC:  params.CommentUC,
		buildingUC: params.BuildingUC,
		logger:     params.Logger,
	}
}

// CreateCommentRequest represents the request body for a review. Rating is
// a pointer so an absent value reaches the use case as 0.
type CreateCommentRequest struct {
	Rating  *int   `json:"rating"`
	Content string `json:"content"`
}

// ListComments handles GET /api/buildings/:id/comments
func (h *CommentHandler) ListComments(c echo.Context) error {
	page, err := bindPageQuery(c)
	if err != nil {
		return err
	}

	comments, err := h.commentUC.ListByBuildingID(c.Request().Context(), c.Param("id"), usecase.ListCommentsQuery{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		return err
	}

	return response.OK(c, comments)
}

// CreateComment handles POST /api/buildings/:id/comments
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		if err := requireBuilding(c, h.buildingUC, c.Param("id")); err != nil {
			return err
		}
		return response.ErrInvalidBody
	}

	input := &usecase.CreateCommentInput{Content: req.Content}
	if req.Rating != nil {
		input.Rating = *req.Rating
	}

	comment, err := h.commentUC.Create(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return response.Created(c, comment)
}

// GetCommentStats handles GET /api/buildings/:id/comments/stats
func (h *CommentHandler) GetCommentStats(c echo.Context) error {
	stats, err := h.commentUC.GetStats(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, stats)
}
