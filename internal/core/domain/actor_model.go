package domain

const (
	ACTOR_ID_MASTER = "master"
	ACTOR_ID_POLLER = "poller"
	ACTOR_ID_MQTT   = "mqtt"
)

// ControlDeviceRequest asks the master to dispatch a device command through
// the data source.
type ControlDeviceRequest struct {
	ActorRequestMixIn
	EntityId string
	Action   DeviceAction
}

type ControlDeviceResponse struct {
	ActorResponseMixIn
}

// PollNowRequest triggers an immediate snapshot outside the poll schedule.
type PollNowRequest struct {
	ActorRequestMixIn
}

type PollNowResponse struct {
	ActorResponseMixIn
	Sensors int
}

type ActorHealthRequest struct {
	ActorRequestMixIn
}

type ActorHealthResponse struct {
	ActorResponseMixIn
	Id      string
	Healthy bool
	State   string
}
