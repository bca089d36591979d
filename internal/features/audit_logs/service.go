package audit_logs

import (
	"log/slog"
	"time"

	"teamhub/internal/features/access"
	users_enums "teamhub/internal/features/users/enums"
	users_models "teamhub/internal/features/users/models"

	"github.com/google/uuid"
)

type AuditLogService struct {
	auditLogRepository *AuditLogRepository
	accessService      *access.Service
	logger             *slog.Logger
}

// WriteAuditLog is best-effort: a failed write is logged and swallowed
// so audit plumbing never fails the operation being audited.
func (s *AuditLogService) WriteAuditLog(
	message string,
	userID *uuid.UUID,
	teamID *uuid.UUID,
) {
	auditLog := &AuditLog{
		UserID:    userID,
		TeamID:    teamID,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}

	err := s.auditLogRepository.Create(auditLog)
	if err != nil {
		s.logger.Error("failed to create audit log", "error", err)
		return
	}
}

func (s *AuditLogService) CreateAuditLog(auditLog *AuditLog) error {
	return s.auditLogRepository.Create(auditLog)
}

func (s *AuditLogService) GetTeamAuditLogs(
	teamID uuid.UUID,
	caller *users_models.Caller,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	if _, err := s.accessService.RequireTeamRole(teamID, caller.ID, users_enums.TeamRoleAdmin); err != nil {
		return nil, err
	}

	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	auditLogs, err := s.auditLogRepository.GetByTeam(teamID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	total, err := s.auditLogRepository.CountByTeam(teamID, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     total,
		Limit:     limit,
		Offset:    offset,
	}, nil
}

func (s *AuditLogService) GetUserAuditLogs(
	targetUserID uuid.UUID,
	caller *users_models.Caller,
	request *GetAuditLogsRequest,
) (*GetAuditLogsResponse, error) {
	// Users can only view their own activity trail
	if caller.ID != targetUserID {
		return nil, access.ErrAccessDenied
	}

	limit := request.Limit
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	offset := max(request.Offset, 0)

	auditLogs, err := s.auditLogRepository.GetByUser(targetUserID, limit, offset, request.BeforeDate)
	if err != nil {
		return nil, err
	}

	return &GetAuditLogsResponse{
		AuditLogs: auditLogs,
		Total:     int64(len(auditLogs)),
		Limit:     limit,
		Offset:    offset,
	}, nil
}
