package provider

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
)

// Stats is a snapshot of the host's resource usage
type Stats struct {
	MemUsed    uint64
	MemTotal   uint64
	CPUPercent float64
	Uptime     time.Duration
}

// StatsSource provides host statistics for the server_* placeholders
type StatsSource interface {
	Stats() (Stats, error)
}

// HostStats reads statistics from the machine the process is running on
type HostStats struct {
	Started time.Time // Used to calculate uptime
}

// Stats implements StatsSource
func (h HostStats) Stats() (Stats, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Stats{}, errors.Wrap(err, "could not read memory stats")
	}

	percents, err := cpu.Percent(0, false)
	if err != nil {
		return Stats{}, errors.Wrap(err, "could not read cpu stats")
	}

	out := Stats{MemUsed: vm.Used, MemTotal: vm.Total, Uptime: time.Since(h.Started)}
	if len(percents) > 0 {
		out.CPUPercent = percents[0]
	}

	return out, nil
}
