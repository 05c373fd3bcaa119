package impl

import (
	"context"
	"log/slog"

	"wayfinder/config"
	"wayfinder/internal/domain/constants"
	"wayfinder/internal/domain/entity"
	domainerrors "wayfinder/internal/domain/errors"
	"wayfinder/internal/domain/repository"
	"wayfinder/internal/domain/service"
	"wayfinder/internal/errors"
	"wayfinder/internal/usecase"

	"github.com/google/uuid"
)

const defaultSearchRadiusKm = 50.0

// poiService implements the PoiUsecase interface.
type poiService struct {
	poiRepo        repository.PoiRepository
	locationSource service.LocationSource
	qrService      service.QRCodeService
	accessLog      usecase.AccessLogUsecase
	searchRadiusKm float64
	logger         *slog.Logger
}

// NewPoiService creates a new POI service instance.
func NewPoiService(
	poiRepo repository.PoiRepository,
	locationSource service.LocationSource,
	qrService service.QRCodeService,
	accessLog usecase.AccessLogUsecase,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PoiUsecase {
	radius := defaultSearchRadiusKm
	if cfg.PoiLoader != nil && cfg.PoiLoader.SearchRadiusKm > 0 {
		radius = cfg.PoiLoader.SearchRadiusKm
	}

	return &poiService{
		poiRepo:        poiRepo,
		locationSource: locationSource,
		qrService:      qrService,
		accessLog:      accessLog,
		searchRadiusKm: radius,
		logger:         logger,
	}
}

// LoadMapPois produces the working POI set using the locality-first fallback
// chain: geolocate, proximity search, then global fetch as a backstop. Each
// stage is attempted only when the prior one is unusable, stage failures
// degrade rather than abort, and the user's own POIs are merged in at every
// stage so pending submissions stay visible to their creator.
func (s *poiService) LoadMapPois(ctx context.Context, session *entity.Session) ([]*entity.POI, error) {
	userID := sessionUserID(session)

	// Stage 1: resolve a position. Failure skips straight to the backstop.
	center, err := s.locationSource.Current(ctx)
	if err == nil {
		// Stage 2: proximity search around the resolved position. Empty or
		// failed results fall through rather than showing nothing.
		near, searchErr := s.poiRepo.SearchByLocation(ctx, center, s.searchRadiusKm)
		if searchErr != nil {
			s.logger.Warn("poi proximity search failed, falling back to global fetch",
				slog.Any("error", searchErr),
			)
		} else if len(near) > 0 {
			return s.mergeVisible(ctx, userID, near), nil
		}
	} else {
		s.logger.Debug("position unavailable, skipping proximity search",
			slog.Any("error", err),
		)
	}

	// Stage 3: global fetch as a backstop, still merging the user's own POIs.
	global, globalErr := s.poiRepo.FindApproved(ctx)
	if globalErr != nil {
		s.logger.Warn("global poi fetch failed", slog.Any("error", globalErr))
	}

	merged := s.mergeVisible(ctx, userID, global)
	if globalErr != nil && len(merged) == 0 {
		return nil, domainerrors.ErrPoiFetchFailed.WrapMessage("all poi loading stages failed")
	}

	return merged, nil
}

// mergeVisible merges the user's own POIs into the base set, deduplicates by
// POI ID and re-applies the visibility rule. The visibility check runs at
// every stage because upstream sources may return only approved POIs.
func (s *poiService) mergeVisible(ctx context.Context, userID uuid.UUID, base []*entity.POI) []*entity.POI {
	merged := make([]*entity.POI, 0, len(base))
	seen := make(map[uuid.UUID]struct{}, len(base))

	appendVisible := func(pois []*entity.POI) {
		for _, poi := range pois {
			if _, ok := seen[poi.ID]; ok {
				continue
			}
			if !poi.VisibleTo(userID) {
				continue
			}
			seen[poi.ID] = struct{}{}
			merged = append(merged, poi)
		}
	}

	appendVisible(base)

	if userID != uuid.Nil {
		own, err := s.poiRepo.FindByCreator(ctx, userID)
		if err != nil {
			s.logger.Warn("failed to load user-owned pois for merge",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		} else {
			appendVisible(own)
		}
	}

	return merged
}

// GetPoi retrieves one POI and records a best-effort VIEW access event.
func (s *poiService) GetPoi(ctx context.Context, session *entity.Session, id uuid.UUID) (*entity.POI, error) {
	poi, err := s.findVisiblePoi(ctx, session, id)
	if err != nil {
		return nil, err
	}

	if session != nil {
		s.accessLog.Record(&entity.AccessLog{
			PoiID:          poi.ID,
			UserID:         session.UserID,
			OrganizationID: session.OrganizationID,
			PlatformType:   constants.PlatformTypeWeb,
			AccessType:     entity.AccessTypeView,
		})
	}

	return poi, nil
}

// CreatePoi submits a new POI. Submissions start pending until moderated.
func (s *poiService) CreatePoi(ctx context.Context, session *entity.Session, input *usecase.CreatePoiInput) (*entity.POI, error) {
	if session == nil {
		return nil, domainerrors.ErrUnauthorized
	}

	location := entity.Coordinate{Latitude: input.Latitude, Longitude: input.Longitude}
	if !location.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	poi := &entity.POI{
		ID:          uuid.New(),
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		Address:     input.Address,
		City:        input.City,
		Contact:     input.Contact,
		ImageURLs:   input.ImageURLs,
		Amenities:   input.Amenities,
		Keywords:    input.Keywords,
		Location:    location,
		IsActive:    false,
		CreatedBy:   session.UserID,
	}

	if err := s.poiRepo.Create(ctx, poi); err != nil {
		return nil, err
	}

	return poi, nil
}

// GeneratePoiShareQR renders a share QR code for a POI the caller may see.
func (s *poiService) GeneratePoiShareQR(ctx context.Context, session *entity.Session, id uuid.UUID) ([]byte, error) {
	poi, err := s.findVisiblePoi(ctx, session, id)
	if err != nil {
		return nil, err
	}

	return s.qrService.GeneratePoiShareQR(poi.ID)
}

// SetPoiActive flips the moderation state of a POI. Admin only.
func (s *poiService) SetPoiActive(ctx context.Context, session *entity.Session, id uuid.UUID, active bool) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if err := s.poiRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, repository.ErrPoiNotFound) {
			return domainerrors.ErrPoiNotFound
		}

		return err
	}

	return nil
}

// DeletePoi removes a POI permanently. Admin only.
func (s *poiService) DeletePoi(ctx context.Context, session *entity.Session, id uuid.UUID) error {
	if err := requireAdmin(session); err != nil {
		return err
	}

	if err := s.poiRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPoiNotFound) {
			return domainerrors.ErrPoiNotFound
		}

		return err
	}

	return nil
}

// findVisiblePoi loads a POI and enforces the visibility rule. A pending POI
// is reported as not found to everyone but its creator.
func (s *poiService) findVisiblePoi(ctx context.Context, session *entity.Session, id uuid.UUID) (*entity.POI, error) {
	poi, err := s.poiRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPoiNotFound) {
			return nil, domainerrors.ErrPoiNotFound
		}

		return nil, err
	}

	if !poi.VisibleTo(sessionUserID(session)) {
		return nil, domainerrors.ErrPoiNotFound
	}

	return poi, nil
}

func sessionUserID(session *entity.Session) uuid.UUID {
	if session == nil {
		return uuid.Nil
	}

	return session.UserID
}

func requireAdmin(session *entity.Session) error {
	if session == nil {
		return domainerrors.ErrUnauthorized
	}
	if session.Role != constants.RoleAdmin {
		return domainerrors.ErrForbidden
	}

	return nil
}
