// Package sysmon samples system-wide CPU and memory utilization around a
// benchmark combo's sweep, so a report can show pressure on the host
// alongside the combo's own heap delta from internal/metrics.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds one system-wide snapshot, taken immediately before or after
// a combo's sweep.
type Stats struct {
	CPUPercent float64 // 0.0 .. 100.0
	MemPercent float64 // 0.0 .. 100.0
}

// Sample takes one system-wide CPU/memory snapshot. CPU uses interval=0
// (delta since the previous call anywhere in the process), which is why
// fibbench calls Sample once before and once after each combo rather than
// relying on an absolute reading. Returns zero values on error.
func Sample() Stats {
	var s Stats
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
	}
	return s
}
