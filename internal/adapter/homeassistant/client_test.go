package homeassistant

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticStore struct {
	cfg *domain.ConnectionConfig
}

func (s *staticStore) Get(ctx context.Context) *domain.ConnectionConfig { return s.cfg }
func (s *staticStore) Set(ctx context.Context, url, token string) error {
	s.cfg = &domain.ConnectionConfig{URL: url, Token: token}
	return nil
}
func (s *staticStore) Clear(ctx context.Context) error {
	s.cfg = nil
	return nil
}

const statesFixture = `[
  {"entity_id": "sensor.living_temp", "state": "21.5",
   "attributes": {"unit_of_measurement": "°C", "friendly_name": "Living", "device_class": "temperature"},
   "last_changed": "2024-05-01T10:00:00+00:00", "last_updated": "2024-05-01T10:00:00+00:00"},
  {"entity_id": "light.porch", "state": "on", "attributes": {},
   "last_changed": "2024-05-01T10:00:00+00:00", "last_updated": "2024-05-01T10:00:00+00:00"}
]`

func newTestServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	check := func(w http.ResponseWriter, r *http.Request) bool {
		if r.Header.Get("Authorization") != "Bearer secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return false
		}
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		return true
	}
	mux.HandleFunc("/api/config", func(w http.ResponseWriter, r *http.Request) {
		if check(w, r) {
			w.Write([]byte(`{"version": "2024.5.0"}`))
		}
	})
	mux.HandleFunc("/api/states", func(w http.ResponseWriter, r *http.Request) {
		if check(w, r) {
			w.Write([]byte(statesFixture))
		}
	})
	mux.HandleFunc("/api/states/light.porch", func(w http.ResponseWriter, r *http.Request) {
		if check(w, r) {
			w.Write([]byte(`{"entity_id": "light.porch", "state": "on", "attributes": {"friendly_name": "Porch"}}`))
		}
	})
	mux.HandleFunc("/api/states/light.missing", func(w http.ResponseWriter, r *http.Request) {
		if check(w, r) {
			w.WriteHeader(http.StatusNotFound)
		}
	})
	mux.HandleFunc("/api/services/light/turn_on", func(w http.ResponseWriter, r *http.Request) {
		if !check(w, r) {
			return
		}
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		assert.NoError(t, json.Unmarshal(body, &payload))
		assert.Equal(t, "light.porch", payload["entity_id"])
		w.Write([]byte(`[{"entity_id": "light.porch", "state": "on"}]`))
	})
	mux.HandleFunc("/api/services/light/explode", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func newTestClient(srv *httptest.Server, token string) *Client {
	store := &staticStore{cfg: &domain.ConnectionConfig{URL: srv.URL + "/", Token: token}}
	return NewClient(store, 2*time.Second, zap.NewNop())
}

func TestCheckConnectivity(t *testing.T) {

	srv := newTestServer(t)
	defer srv.Close()

	assert.True(t, newTestClient(srv, "secret").CheckConnectivity(context.Background()))
	assert.False(t, newTestClient(srv, "wrong").CheckConnectivity(context.Background()))
}

func TestCheckConnectivityNotConfigured(t *testing.T) {

	c := NewClient(&staticStore{}, 0, zap.NewNop())
	assert.False(t, c.CheckConnectivity(context.Background()))

	_, err := c.FetchAllEntities(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotConfigured)
}

func TestFetchAllEntities(t *testing.T) {

	require := require.New(t)

	srv := newTestServer(t)
	defer srv.Close()

	entities, err := newTestClient(srv, "secret").FetchAllEntities(context.Background())
	require.NoError(err)
	require.Len(entities, 2)
	require.Equal("sensor.living_temp", entities[0].EntityId)
	require.Equal("21.5", entities[0].State)
	require.Equal("°C", entities[0].Attributes.UnitOfMeasurement())
	require.Equal("light", entities[1].Domain())
}

func TestFetchAllEntitiesUnauthorized(t *testing.T) {

	srv := newTestServer(t)
	defer srv.Close()

	_, err := newTestClient(srv, "wrong").FetchAllEntities(context.Background())
	var remote *domain.RemoteError
	require.ErrorAs(t, err, &remote)
	assert.Equal(t, http.StatusUnauthorized, remote.Status)
}

func TestFetchEntity(t *testing.T) {

	require := require.New(t)

	srv := newTestServer(t)
	defer srv.Close()
	c := newTestClient(srv, "secret")

	entity, err := c.FetchEntity(context.Background(), "light.porch")
	require.NoError(err)
	require.Equal("Porch", entity.Attributes.FriendlyName())

	_, err = c.FetchEntity(context.Background(), "light.missing")
	require.ErrorIs(err, domain.ErrNotFound)
}

func TestInvokeService(t *testing.T) {

	require := require.New(t)

	srv := newTestServer(t)
	defer srv.Close()
	c := newTestClient(srv, "secret")

	raw, err := c.InvokeService(context.Background(), "light", "turn_on", map[string]any{"entity_id": "light.porch"})
	require.NoError(err)
	require.JSONEq(`[{"entity_id": "light.porch", "state": "on"}]`, string(raw))

	_, err = c.InvokeService(context.Background(), "light", "explode", map[string]any{"entity_id": "light.porch"})
	var remote *domain.RemoteError
	require.ErrorAs(err, &remote)
	require.Equal(http.StatusInternalServerError, remote.Status)
}

func TestNetworkError(t *testing.T) {

	srv := newTestServer(t)
	c := newTestClient(srv, "secret")
	srv.Close()

	_, err := c.FetchAllEntities(context.Background())
	var netErr *domain.NetworkError
	assert.ErrorAs(t, err, &netErr)
	assert.False(t, c.CheckConnectivity(context.Background()))
}
