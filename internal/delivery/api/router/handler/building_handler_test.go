package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rating/internal/delivery/api/middleware"
	"rating/internal/delivery/api/validator"
	"rating/internal/domain/entity"
	"rating/internal/infra/persistence/memory"
	mockService "rating/internal/mocks/service"
	"rating/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBuildingHandlerEcho(t *testing.T, qr *mockService.MockQRCodeService) (*echo.Echo, string) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()
	buildingRepo := memory.NewBuildingRepository(store)
	now := time.Now().UTC()
	building := &entity.Building{ID: "b-1", Name: "Maple Court", Address: "1 Main St", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, buildingRepo.CreateBuilding(context.Background(), building))

	h := NewBuildingHandler(BuildingHandlerParams{
		BuildingUC: impl.NewBuildingService(buildingRepo, memory.NewSummaryRepository(store)),
		QRCode:     qr,
		Logger:     logger,
	})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.GET("/api/buildings", h.ListBuildings)
	e.GET("/api/buildings/:id/qr", h.GetBuildingQR)

	return e, building.ID
}

func TestGetBuildingQR(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(qr *mockService.MockQRCodeService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "renders png",
			setupMock: func(qr *mockService.MockQRCodeService) {
				qr.EXPECT().GenerateBuildingQR("b-1").Return([]byte("png-bytes"), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "png-bytes",
		},
		{
			name: "encoder failure is hidden",
			setupMock: func(qr *mockService.MockQRCodeService) {
				qr.EXPECT().GenerateBuildingQR("b-1").Return(nil, errors.New("encoder exploded"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qr := mockService.NewMockQRCodeService(t)
			tt.setupMock(qr)
			e, id := newBuildingHandlerEcho(t, qr)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buildings/"+id+"/qr", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, trimNewline(rec.Body.String()))
		})
	}
}

func TestGetBuildingQR_UnknownBuildingSkipsEncoder(t *testing.T) {
	qr := mockService.NewMockQRCodeService(t)
	e, _ := newBuildingHandlerEcho(t, qr)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buildings/nope/qr", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Building not found: nope"}`, rec.Body.String())
}

func TestListBuildings_RejectsBadPaging(t *testing.T) {
	e, _ := newBuildingHandlerEcho(t, mockService.NewMockQRCodeService(t))

	tests := []struct {
		query   string
		message string
	}{
		{query: "limit=ten", message: "limit and offset must be integers"},
		{query: "offset=-3", message: "offset must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buildings?"+tt.query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.message+`"}`, rec.Body.String())
		})
	}
}

func trimNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}

	return s
}
