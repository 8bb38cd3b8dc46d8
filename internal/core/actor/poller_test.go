package actor

import (
	"testing"
	"time"

	"github.com/berfenger/homedash/internal/adapter/fixtures"
	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/service"
	"github.com/berfenger/homedash/internal/util"
	"github.com/berfenger/homedash/internal/util/actorutil"

	"github.com/asynkron/protoactor-go/actor"
	"github.com/asynkron/protoactor-go/eventstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockHome() *service.DataSourceService {
	// mock mode never touches the store or the client
	return service.NewDataSourceService(nil, nil, fixtures.Default(), zap.NewNop())
}

func TestPollerActorPublishesSnapshot(t *testing.T) {

	require := require.New(t)

	cfg := util.LoadTestConfig()
	cfg.Poller.IntervalMillis = 60000
	logger := zap.NewNop()

	as := actorutil.NewActorSystemWithZapLogger(logger)
	defer as.Shutdown()

	es := &eventstream.EventStream{}
	events := make(chan any, 32)
	sub := es.Subscribe(func(evt interface{}) {
		events <- evt
	})
	defer es.Unsubscribe(sub)

	props := actor.PropsFromProducer(func() actor.Actor {
		return NewPollerActor(&cfg, newMockHome(), es, logger)
	})
	pid := as.Root.Spawn(props)
	defer as.Root.Stop(pid)

	sensors := map[string]bool{}
	var source domain.DataSource
	deadline := time.After(3 * time.Second)
	for len(sensors) < 6 {
		select {
		case evt := <-events:
			switch ev := evt.(type) {
			case domain.DataSourceUpdateEvent:
				source = ev.Source
			case domain.SensorStateEvent:
				sensors[ev.Sensor.Id] = true
			}
		case <-deadline:
			t.Fatalf("snapshot not published, got %d sensors", len(sensors))
		}
	}
	require.Equal(domain.DATA_SOURCE_MOCK, source)
	require.True(sensors["co2-2"])

	res, err := as.Root.RequestFuture(pid, domain.PollNowRequest{}, 3*time.Second).Result()
	require.NoError(err)
	resp, ok := res.(domain.PollNowResponse)
	require.True(ok)
	assert.False(t, resp.HasResponseError())
	assert.Equal(t, 6, resp.Sensors)

	res, err = as.Root.RequestFuture(pid, domain.ActorHealthRequest{}, 3*time.Second).Result()
	require.NoError(err)
	health, ok := res.(domain.ActorHealthResponse)
	require.True(ok)
	assert.True(t, health.Healthy)
}
