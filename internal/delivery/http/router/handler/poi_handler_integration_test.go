package handler

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wayfinder/config"
	"wayfinder/internal/delivery/http/middleware"
	"wayfinder/internal/delivery/http/validator"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/infra/geoloc"
	"wayfinder/internal/infra/persistence/memory"
	"wayfinder/internal/infra/qrcode"
	"wayfinder/internal/usecase"
	"wayfinder/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type dropPublisher struct{}

func (dropPublisher) PublishAccessEvent(ctx context.Context, event *service.AccessEvent) error {
	return nil
}

func (dropPublisher) Close() error { return nil }

func newTestPoiHandler(t *testing.T) (*PoiHandler, *memory.PoiRepository, usecase.MapViewUsecase) {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)
	poiRepo := memory.NewPoiRepository()
	accessLog := impl.NewAccessLogService(memory.NewAccessLogRepository(), dropPublisher{}, logger, 16)
	t.Cleanup(func() {
		_ = accessLog.Close()
	})

	cfg := &config.Config{}
	poiUC := impl.NewPoiService(
		poiRepo,
		geoloc.NewTracker(logger),
		qrcode.NewQRCodeService(256, "M"),
		accessLog,
		cfg,
		logger,
	)
	mapViewUC := impl.NewMapViewService(nil, logger)

	handler := &PoiHandler{
		poiUC:     poiUC,
		mapViewUC: mapViewUC,
		logger:    logger,
	}

	return handler, poiRepo, mapViewUC
}

func TestPoiHandler_ListPois_Integration(t *testing.T) {
	handler, poiRepo, mapViewUC := newTestPoiHandler(t)

	poi := &entity.POI{
		ID:        uuid.New(),
		Name:      "Marche Central",
		Category:  "market",
		Location:  entity.Coordinate{Latitude: 3.8480, Longitude: 11.5021},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	require.NoError(t, poiRepo.Create(context.Background(), poi))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/pois", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.ListPois(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Marche Central")

	// Listing refreshes the marker working set.
	markers := mapViewUC.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, poi.ID, markers[0].PoiID)
}

func TestPoiHandler_CreatePoi_RequiresSession(t *testing.T) {
	handler, _, _ := newTestPoiHandler(t)

	body := `{"name":"Chez Wou","category":"restaurant","latitude":3.85,"longitude":11.5}`

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/pois", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.CreatePoi(c)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestPoiHandler_CreatePoi_Integration(t *testing.T) {
	handler, poiRepo, _ := newTestPoiHandler(t)

	userID := uuid.New()
	session := &entity.Session{UserID: userID}

	body := `{"name":"Chez Wou","category":"restaurant","latitude":3.85,"longitude":11.5}`

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/pois", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.SessionContextKey, session)

	require.NoError(t, handler.CreatePoi(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// Submissions start pending moderation.
	created, err := poiRepo.FindByCreator(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, created, 1)
	assert.False(t, created[0].IsActive)
}
