package audit_logs

import (
	"teamhub/internal/features/access"
	projects_services "teamhub/internal/features/projects/services"
	teams_services "teamhub/internal/features/teams/services"
	users_services "teamhub/internal/features/users/services"
	"teamhub/internal/util/logger"
)

var auditLogRepository = &AuditLogRepository{}
var auditLogService = &AuditLogService{
	auditLogRepository: auditLogRepository,
	accessService:      access.GetAccessService(),
	logger:             logger.GetLogger(),
}
var auditLogController = &AuditLogController{
	auditLogService: auditLogService,
}

func GetAuditLogService() *AuditLogService {
	return auditLogService
}

func GetAuditLogController() *AuditLogController {
	return auditLogController
}

func SetupDependencies() {
	users_services.GetUserService().SetAuditLogWriter(auditLogService)
	teams_services.GetTeamService().SetAuditLogWriter(auditLogService)
	teams_services.GetMembershipService().SetAuditLogWriter(auditLogService)
	teams_services.GetInvitationService().SetAuditLogWriter(auditLogService)
	projects_services.GetProjectService().SetAuditLogWriter(auditLogService)
}
