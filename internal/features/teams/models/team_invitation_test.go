package teams_models

import (
	"testing"
	"time"

	teams_enums "teamhub/internal/features/teams/enums"

	"github.com/stretchr/testify/assert"
)

func Test_IsExpired_PendingPastDeadline_ReportsExpired(t *testing.T) {
	now := time.Now().UTC()
	invitation := &TeamInvitation{
		Status:    teams_enums.InvitationStatusPending,
		ExpiresAt: now.Add(-time.Minute),
	}

	assert.True(t, invitation.IsExpired(now))
}

func Test_IsExpired_PendingBeforeDeadline_ReportsNotExpired(t *testing.T) {
	now := time.Now().UTC()
	invitation := &TeamInvitation{
		Status:    teams_enums.InvitationStatusPending,
		ExpiresAt: now.Add(InvitationLifetime),
	}

	assert.False(t, invitation.IsExpired(now))
}

func Test_IsExpired_ResolvedInvitations_NeverReportExpired(t *testing.T) {
	now := time.Now().UTC()

	for _, status := range []teams_enums.InvitationStatus{
		teams_enums.InvitationStatusAccepted,
		teams_enums.InvitationStatusDeclined,
	} {
		invitation := &TeamInvitation{
			Status:    status,
			ExpiresAt: now.Add(-time.Hour),
		}

		assert.False(t, invitation.IsExpired(now), "status: %s", status)
	}
}
