package internal

import (
	"counting-lab/contract"
	"counting-lab/domain"
	errs "counting-lab/errors"
	"counting-lab/observability"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// StartDebugServer exposes read-only engine state over HTTP for local
// inspection:
//
//	GET /stats            -> engine counters snapshot
//	GET /rankings         -> global per-statistic leaderboards
//	GET /rooms?room={id}  -> one room's stored stats
//
// It listens in a background goroutine and is never part of the engine's
// correctness; a dead debug server changes nothing.
func StartDebugServer(
	port int,
	repository contract.ICountRepository,
	stats *observability.EngineStats,
	log *slog.Logger,
) {
	mux := http.NewServeMux()

	mux.HandleFunc("/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log, stats.Snapshot())
	})

	mux.HandleFunc("/rankings", func(w http.ResponseWriter, r *http.Request) {
		rankings, err := repository.GetGlobalRankings(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, log, rankings)
	})

	mux.HandleFunc("/rooms", func(w http.ResponseWriter, r *http.Request) {
		room := domain.RoomID(r.URL.Query().Get("room"))
		if room == "" {
			http.Error(w, "missing room parameter", http.StatusBadRequest)
			return
		}
		roomStats, err := repository.GetRoomStats(r.Context(), room)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		channel, mapped, err := repository.GetCountingRoom(r.Context(), room)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if !mapped && roomStats == (domain.RoomStats{}) {
			http.Error(w, errs.ErrRoomNotFound.Error(), http.StatusNotFound)
			return
		}
		contributors, err := repository.GetTopContributors(r.Context(), room, 10)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, log, map[string]any{
			"room":             room,
			"channel":          channel,
			"stats":            roomStats,
			"top_contributors": contributors,
		})
	})

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%d", port)
		log.Info("Debug server listening", "addr", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Warn("Debug server stopped", "error", err)
		}
	}()
}

func writeJSON(w http.ResponseWriter, log *slog.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn("Failed to encode debug payload", "error", err)
	}
}
