package workers

import (
	"context"
	"counting-lab/contract"
	"counting-lab/observability"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

var _ contract.Worker = (*HeartbeatWorker)(nil)

// HeartbeatWorker periodically logs engine counters together with the
// process self-stats (RSS, CPU). Purely observational.
type HeartbeatWorker struct {
	log        *slog.Logger
	stats      *observability.EngineStats
	repository contract.ICountRepository
	interval   time.Duration
}

func NewHeartbeatWorker(
	log *slog.Logger,
	stats *observability.EngineStats,
	repository contract.ICountRepository,
	interval time.Duration,
) *HeartbeatWorker {
	return &HeartbeatWorker{log: log, stats: stats, repository: repository, interval: interval}
}

func (w *HeartbeatWorker) Run(ctx context.Context) error {
	w.log.Info("Starting heartbeat worker")
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snapshot := w.stats.Snapshot()
			total, err := w.repository.GetTotalAcrossRooms(ctx)
			if err != nil {
				w.log.Warn("Store unreachable for heartbeat", "err", err)
			}

			w.log.Info("Heartbeat",
				"processed", snapshot.MessagesProcessed,
				"accepted", snapshot.Accepted,
				"graces_opened", snapshot.GracesOpened,
				"graces_saved", snapshot.GracesSaved,
				"graces_expired", snapshot.GracesExpired,
				"store_failures", snapshot.StoreFailures,
				"live_rooms", snapshot.LiveRooms,
				"total_across_rooms", total,
				"ram_bytes", rss,
				"cpu_percent", cpu,
			)
		}
	}
}

// getSelfStats retrieves memory and CPU usage for the given process.
func getSelfStats(p *process.Process) (uint64, float64, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, err
	}
	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, err
	}
	return memInfo.RSS, cpuPercent, nil
}
