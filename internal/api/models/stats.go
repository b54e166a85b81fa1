package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string        `json:"uptime"`
	UptimeSeconds int64         `json:"uptime_seconds"`
	StartTime     time.Time     `json:"start_time"`
	GoRoutines    int           `json:"goroutines"`
	MemoryAllocMB float64       `json:"memory_alloc_mb"`
	NumCPU        int           `json:"num_cpu"`
	Host          *HostStats    `json:"host,omitempty"`
	Generations   *HistoryStats `json:"generations,omitempty"`
}

// HostStats describes the machine BIND runs on.
type HostStats struct {
	Hostname        string  `json:"hostname"`
	OS              string  `json:"os"`
	Platform        string  `json:"platform"`
	PlatformVersion string  `json:"platform_version"`
	KernelVersion   string  `json:"kernel_version"`
	MemoryTotalMB   float64 `json:"memory_total_mb"`
	MemoryUsedPct   float64 `json:"memory_used_percent"`
}

// HistoryStats summarizes stored generations.
type HistoryStats struct {
	Total   int `json:"total"`
	Applied int `json:"applied"`
}
