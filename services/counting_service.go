package services

import (
	"context"
	"counting-lab/contract"
	"counting-lab/domain"
	"counting-lab/runtime"
	"log/slog"

	"github.com/go-playground/validator/v10"
)

type ICountingService interface {
	HandleMessage(ctx context.Context, msg domain.Message) (domain.Outcome, error)
	RoomStats(ctx context.Context, room domain.RoomID) (domain.RoomStats, error)
	GlobalRankings(ctx context.Context) (domain.Rankings, error)
	TotalAcrossRooms(ctx context.Context) (int64, error)
	TopContributors(ctx context.Context, room domain.RoomID, limit int) ([]domain.ContributorScore, error)
	SetCountingRoom(ctx context.Context, room domain.RoomID, channel string) error
	ResetRoom(ctx context.Context, room domain.RoomID) error
}

// CountingService is the facade between the gateway and the engine.
// It applies the gateway-side filters (automated authors, counting-room
// mapping) so the evaluator only ever sees candidate contributions.
type CountingService struct {
	orchestrator *runtime.Orchestrator
	repository   contract.ICountRepository
	validate     *validator.Validate
	log          *slog.Logger
}

func NewCountingService(orchestrator *runtime.Orchestrator, repository contract.ICountRepository, log *slog.Logger) *CountingService {
	return &CountingService{
		orchestrator: orchestrator,
		repository:   repository,
		validate:     validator.New(),
		log:          log,
	}
}

// HandleMessage runs the inbound contract checks and forwards the message
// to its room's worker. Messages from automated authors and messages
// outside the mapped counting channel never reach evaluation.
func (s *CountingService) HandleMessage(ctx context.Context, msg domain.Message) (domain.Outcome, error) {
	if err := s.validate.Struct(msg); err != nil {
		return domain.OutcomeIgnored, err
	}
	if msg.Automated {
		return domain.OutcomeIgnored, nil
	}

	channel, mapped, err := s.repository.GetCountingRoom(ctx, msg.Room)
	if err != nil {
		s.log.Error("Failed to resolve counting room", "room", msg.Room, "error", err)
		return domain.OutcomeIgnored, err
	}
	if !mapped || channel != msg.Channel {
		// The room has no counting channel, or the message was posted
		// elsewhere.
		return domain.OutcomeIgnored, nil
	}

	return s.orchestrator.Submit(ctx, msg)
}

func (s *CountingService) RoomStats(ctx context.Context, room domain.RoomID) (domain.RoomStats, error) {
	return s.repository.GetRoomStats(ctx, room)
}

func (s *CountingService) GlobalRankings(ctx context.Context) (domain.Rankings, error) {
	return s.repository.GetGlobalRankings(ctx)
}

func (s *CountingService) TotalAcrossRooms(ctx context.Context) (int64, error) {
	return s.repository.GetTotalAcrossRooms(ctx)
}

func (s *CountingService) TopContributors(ctx context.Context, room domain.RoomID, limit int) ([]domain.ContributorScore, error) {
	return s.repository.GetTopContributors(ctx, room, limit)
}

func (s *CountingService) SetCountingRoom(ctx context.Context, room domain.RoomID, channel string) error {
	return s.repository.SetCountingRoom(ctx, room, channel)
}

func (s *CountingService) ResetRoom(ctx context.Context, room domain.RoomID) error {
	return s.orchestrator.ResetRoom(ctx, room)
}
