package system_healthcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetSystemStatus_ReturnsMemoryAndCPUSnapshot(t *testing.T) {
	service := &HealthcheckService{}

	status, err := service.GetSystemStatus()
	require.NoError(t, err)

	assert.Greater(t, status.MemoryTotalBytes, uint64(0))
	assert.Greater(t, status.CPUCores, 0)
	assert.GreaterOrEqual(t, status.MemoryUsedPercent, 0.0)
	assert.LessOrEqual(t, status.MemoryUsedPercent, 100.0)
}
