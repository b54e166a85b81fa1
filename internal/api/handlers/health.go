package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/autodns/internal/api/models"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// Health godoc
// @Summary Health check
// @Description Returns server health status. Reports "degraded" when the database is unreachable.
// @Tags system
// @Produce json
// @Success 200 {object} models.StatusResponse
// @Failure 503 {object} models.StatusResponse
// @Router /health [get]
func (h *Handler) Health(c *gin.Context) {
	if h.db != nil {
		if err := h.db.Health(); err != nil {
			h.logger.Warn("database health check failed", "err", err)
			c.JSON(http.StatusServiceUnavailable, models.StatusResponse{Status: "degraded"})
			return
		}
	}
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats godoc
// @Summary Server statistics
// @Description Returns runtime statistics including memory, goroutines, host details and history counts
// @Tags system
// @Produce json
// @Success 200 {object} models.ServerStatsResponse
// @Security ApiKeyAuth
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Host:          hostStats(),
	}

	if h.db != nil {
		total, applied, err := h.db.CountGenerations()
		if err != nil {
			h.logger.Warn("failed to count generations", "err", err)
		} else {
			resp.Generations = &models.HistoryStats{Total: total, Applied: applied}
		}
	}

	c.JSON(http.StatusOK, resp)
}

// hostStats returns nil when the platform gives us nothing useful.
func hostStats() *models.HostStats {
	info, err := host.Info()
	if err != nil {
		return nil
	}
	out := &models.HostStats{
		Hostname:        info.Hostname,
		OS:              info.OS,
		Platform:        info.Platform,
		PlatformVersion: info.PlatformVersion,
		KernelVersion:   info.KernelVersion,
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		out.MemoryTotalMB = float64(vm.Total) / 1024 / 1024
		out.MemoryUsedPct = vm.UsedPercent
	}
	return out
}
