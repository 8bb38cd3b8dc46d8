package actor

import (
	"context"
	"fmt"
	"time"

	"github.com/berfenger/homedash/internal/config"
	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/port"
	. "github.com/berfenger/homedash/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/asynkron/protoactor-go/scheduler"
	"go.uber.org/zap"
)

// PollerActor takes periodic snapshots of the data source and publishes them
// on the event stream.
type PollerActor struct {
	behavior  actor.Behavior
	stash     *Stash
	scheduler *scheduler.TimerScheduler

	home        port.SmartHome
	config      *config.Config
	eventStream *eventstream.EventStream
	lastSource  domain.DataSource
	replyTo     *actor.PID
	lastError   error

	logger *zap.Logger
}

type pollerTick struct {
}

type snapshotResult struct {
	Source  domain.DataSource
	Sensors []domain.Sensor
	Error   error
}

func NewPollerActor(config *config.Config, home port.SmartHome, eventStream *eventstream.EventStream, logger *zap.Logger) *PollerActor {
	act := &PollerActor{
		config:      config,
		home:        home,
		behavior:    actor.NewBehavior(),
		stash:       &Stash{},
		logger:      ActorLogger(domain.ACTOR_ID_POLLER, logger),
		eventStream: eventStream,
	}
	act.behavior.Become(act.StartingReceive)
	return act
}

func (state *PollerActor) Receive(context actor.Context) {
	state.behavior.Receive(context)
}

func (state *PollerActor) interval() time.Duration {
	return time.Duration(state.config.Poller.IntervalMillis) * time.Millisecond
}

// snapshots are bounded by the outbound request timeout plus some slack
func (state *PollerActor) timeout() time.Duration {
	return time.Duration(state.config.HomeAssistant.TimeoutMillis)*time.Millisecond + 2*time.Second
}

func (state *PollerActor) StartingReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case *actor.Started:
		state.logger.Debug("poller@starting started")
		state.scheduler = scheduler.NewTimerScheduler(ctx)
		state.behavior.Become(state.DefaultReceive)
		// first snapshot right away
		ctx.Send(ctx.Self(), pollerTick{})
		state.stash.UnstashAll(ctx)
	case *actor.Restarting:
	default:
		state.logger.Debug("poller@starting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollerActor) DefaultReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case domain.ActorHealthRequest:
		state.logger.Debug("poller@default: ActorHealthRequest")
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_POLLER,
			Healthy: state.lastError == nil,
			State:   string(state.lastSource),
		})
	case pollerTick:
		state.logger.Debug("poller@default tick")
		state.snapshot(ctx)
		// schedule next tick
		state.scheduler.RequestOnce(state.interval(), ctx.Self(), pollerTick{})
	case domain.PollNowRequest:
		state.logger.Debug("poller@default PollNowRequest")
		state.replyTo = ForRequest(msg).ReplyTo(ctx)
		state.snapshot(ctx)
	default:
		state.logger.Debug("poller@default: unhandled", zap.String("type", fmt.Sprintf("%T", msg)))
	}
}

func (state *PollerActor) WaitingSnapshotReceive(ctx actor.Context) {
	switch msg := ctx.Message().(type) {
	case snapshotResult:
		state.lastError = msg.Error
		if msg.Error != nil {
			state.logger.Error("poller@waiting snapshot error", zap.Error(msg.Error))
		} else {
			state.logger.Debug("poller@waiting snapshot", zap.Int("sensors", len(msg.Sensors)))
			state.publish(msg)
		}
		if state.replyTo != nil {
			ctx.Send(state.replyTo, domain.PollNowResponse{
				ActorResponseMixIn: domain.ActorResponseMixIn{
					ResponseError: msg.Error,
				},
				Sensors: len(msg.Sensors),
			})
			state.replyTo = nil
		}
		state.behavior.UnbecomeStacked()
		state.stash.UnstashAll(ctx)
	case domain.ActorHealthRequest:
		ctx.Respond(domain.ActorHealthResponse{
			Id:      domain.ACTOR_ID_POLLER,
			Healthy: true,
			State:   "polling",
		})
	case pollerTick:
		// a snapshot is already in flight, keep the schedule going
		state.scheduler.RequestOnce(state.interval(), ctx.Self(), pollerTick{})
	default:
		state.logger.Debug("poller@waiting: stash", zap.String("type", fmt.Sprintf("%T", msg)))
		state.stash.Stash(ctx, msg)
	}
}

func (state *PollerActor) snapshot(ctx actor.Context) {
	home := state.home
	NewBackgroundTaskNoError(ctx, func() *snapshotResult {
		source := home.DataSource()
		return &snapshotResult{
			Source:  source,
			Sensors: home.Sensors(context.Background()),
		}
	}).WithTimeout(state.timeout()).Recover(func(err error) snapshotResult {
		return snapshotResult{Error: err}
	}).PipeToAsync(ctx.Self())
	state.behavior.BecomeStacked(state.WaitingSnapshotReceive)
}

func (state *PollerActor) publish(snapshot snapshotResult) {
	if state.eventStream == nil {
		return
	}
	if snapshot.Source != state.lastSource {
		state.lastSource = snapshot.Source
		state.eventStream.Publish(domain.DataSourceUpdateEvent{Source: snapshot.Source})
	}
	for _, sensor := range snapshot.Sensors {
		state.eventStream.Publish(domain.NewSensorStateEvent(sensor))
	}
}
