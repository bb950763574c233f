// FILE: internal/service/admin_service.go
// Admin surface: login, status changes, log reading
package service

import (
	"context"
	"time"

	"roadmap-voting-be/internal/config"
	"roadmap-voting-be/internal/dto"
	"roadmap-voting-be/internal/entity"
	"roadmap-voting-be/internal/pkg/logger"
	"roadmap-voting-be/internal/pkg/serverutils"
	"roadmap-voting-be/internal/repository/contract"
	"roadmap-voting-be/pkg/events"
	pktNats "roadmap-voting-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = serverutils.NewUnauthorized("Invalid email or password")
	ErrInvalidStatus      = serverutils.NewBadRequest("Invalid status value")
)

type IAdminService interface {
	Login(ctx context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error)
	UpdateStatus(ctx context.Context, featureId int, status string) error
	GetLogs(level string, limit, offset int) ([]logger.LogEntry, error)
	GetAuditTrail(ctx context.Context, limit int) ([]*entity.AdminLog, error)
}

type adminService struct {
	store    contract.FeatureStore
	auditLog contract.AdminLogRepository
	listing  *ListingCache
	natsPub  *pktNats.Publisher
	log      logger.ILogger
	cfg      *config.Config
}

func NewAdminService(
	store contract.FeatureStore,
	auditLog contract.AdminLogRepository,
	listing *ListingCache,
	natsPub *pktNats.Publisher,
	log logger.ILogger,
	cfg *config.Config,
) IAdminService {
	return &adminService{
		store:    store,
		auditLog: auditLog,
		listing:  listing,
		natsPub:  natsPub,
		log:      log,
		cfg:      cfg,
	}
}

func (s *adminService) Login(_ context.Context, req *dto.AdminLoginRequest) (*dto.AdminLoginResponse, error) {
	if s.cfg.Admin.Email == "" || req.Email != s.cfg.Admin.Email {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": req.Email,
		"exp":   time.Now().Add(12 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(s.cfg.Admin.JWTSecret))
	if err != nil {
		return nil, err
	}

	s.log.Info("admin", "Admin logged in", map[string]interface{}{"email": req.Email})
	return &dto.AdminLoginResponse{Token: signed}, nil
}

// UpdateStatus is the administrative status process: the only path that
// mutates a feature's status. Declined features disappear from the public
// listing on the next read, so the listing cache is invalidated here too.
func (s *adminService) UpdateStatus(ctx context.Context, featureId int, status string) error {
	newStatus := entity.FeatureStatus(status)
	if !newStatus.IsValid() {
		return ErrInvalidStatus
	}

	found, err := s.store.UpdateStatus(ctx, featureId, newStatus)
	if err != nil {
		return err
	}
	if !found {
		return ErrFeatureNotFound
	}

	s.listing.Invalidate(ctx)

	audit := &entity.AdminLog{
		Action:    "status_change",
		FeatureId: &featureId,
		Details:   map[string]interface{}{"status": status},
		CreatedAt: time.Now(),
	}
	if err := s.auditLog.Create(ctx, audit); err != nil {
		s.log.Warn("admin", "Failed to write audit log", map[string]interface{}{"error": err.Error()})
	}

	s.log.Info("admin", "Feature status updated", map[string]interface{}{
		"feature_id": featureId,
		"status":     status,
	})

	if s.natsPub != nil {
		if err := s.natsPub.Publish(ctx, events.NewStatusChanged(featureId, status)); err != nil {
			s.log.Warn("admin", "Failed to publish status event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

func (s *adminService) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return s.log.GetLogs(level, limit, offset)
}

func (s *adminService) GetAuditTrail(ctx context.Context, limit int) ([]*entity.AdminLog, error) {
	return s.auditLog.FindRecent(ctx, limit)
}
