package workers

import (
	"context"
	"counting-lab/contract"
	"counting-lab/domain/event"
	"counting-lab/mocks"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_DeliversToPermanentAndRoomSinks(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	permanent := mocks.NewMockEventSink(ctrl)
	watcher := mocks.NewMockEventSink(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)

	delivered := make(chan struct{}, 2)
	permanent.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, event.DomainEvent) error {
			delivered <- struct{}{}
			return nil
		}).Times(1)
	watcher.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, event.DomainEvent) error {
			delivered <- struct{}{}
			return nil
		}).Times(1)
	registry.EXPECT().GetSinksForRoom(testRoom).
		Return([]contract.EventSink{watcher}).Times(1)

	events := make(chan event.DomainEvent, 1)
	fanout := NewEventFanout(slog.Default(), events, []contract.EventSink{permanent}, registry, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- event.CountAccepted{Room: testRoom, Contributor: "alice", Value: 1, At: time.Now().UTC()}

	for i := 0; i < 2; i++ {
		select {
		case <-delivered:
		case <-time.After(time.Second):
			req.Fail("Sink did not receive the event")
		}
	}
}

func TestEventFanout_SinkErrorDoesNotStopDelivery(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	broken := mocks.NewMockEventSink(ctrl)
	healthy := mocks.NewMockEventSink(ctrl)
	registry := mocks.NewMockIRegistry(ctrl)

	delivered := make(chan struct{}, 1)
	broken.EXPECT().Consume(gomock.Any(), gomock.Any()).
		Return(errors.New("sink offline")).Times(1)
	healthy.EXPECT().Consume(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, event.DomainEvent) error {
			delivered <- struct{}{}
			return nil
		}).Times(1)
	registry.EXPECT().GetSinksForRoom(testRoom).
		Return(nil).Times(1)

	events := make(chan event.DomainEvent, 1)
	fanout := NewEventFanout(slog.Default(), events, []contract.EventSink{broken, healthy}, registry, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	events <- event.GraceExpired{Room: testRoom, Expected: 4, At: time.Now().UTC()}

	select {
	case <-delivered:
	case <-time.After(time.Second):
		req.Fail("Healthy sink should receive the event despite the broken one")
	}
}
