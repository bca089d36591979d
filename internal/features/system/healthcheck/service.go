package system_healthcheck

import (
	"fmt"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const cpuSampleInterval = 200 * time.Millisecond

type HealthcheckService struct{}

type SystemStatus struct {
	MemoryTotalBytes     uint64  `json:"memoryTotalBytes"`
	MemoryUsedBytes      uint64  `json:"memoryUsedBytes"`
	MemoryAvailableBytes uint64  `json:"memoryAvailableBytes"`
	MemoryUsedPercent    float64 `json:"memoryUsedPercent"`
	CPUCores             int     `json:"cpuCores"`
	CPUUsedPercent       float64 `json:"cpuUsedPercent"`
}

func (s *HealthcheckService) GetSystemStatus() (*SystemStatus, error) {
	memory, err := mem.VirtualMemory()
	if err != nil {
		return nil, fmt.Errorf("failed to read memory stats: %w", err)
	}

	cores, err := cpu.Counts(true)
	if err != nil {
		return nil, fmt.Errorf("failed to read CPU count: %w", err)
	}

	// Percent blocks for the sample interval to measure usage
	usage, err := cpu.Percent(cpuSampleInterval, false)
	if err != nil {
		return nil, fmt.Errorf("failed to read CPU usage: %w", err)
	}

	status := &SystemStatus{
		MemoryTotalBytes:     memory.Total,
		MemoryUsedBytes:      memory.Used,
		MemoryAvailableBytes: memory.Available,
		MemoryUsedPercent:    memory.UsedPercent,
		CPUCores:             cores,
	}

	if len(usage) > 0 {
		status.CPUUsedPercent = usage[0]
	}

	return status, nil
}
