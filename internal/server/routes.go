package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/berfenger/homedash/internal/core/domain"
	"github.com/berfenger/homedash/internal/core/service"

	"github.com/carlmjohnson/versioninfo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const DEFAULT_HISTORY_HOURS = 24

type sourceBody struct {
	Source string `json:"source"`
}

type connectionBody struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

type connectionStatus struct {
	Connected bool              `json:"connected"`
	Source    domain.DataSource `json:"source"`
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.HideBanner = true
	if s.httpLog {
		e.Use(middleware.Logger())
	}
	e.Use(middleware.Recover())

	e.GET("/healthcheck", s.HealthCheckHandler)
	e.GET("/version", s.VersionHandler)

	api := e.Group("/api")
	api.GET("/sensors", s.SensorsHandler)
	api.GET("/sensors/:id/history", s.SensorHistoryHandler)
	api.GET("/rooms", s.RoomsHandler)
	api.GET("/rooms/:id", s.RoomHandler)
	api.GET("/summary", s.SummaryHandler)
	api.POST("/devices/:id/:action", s.ControlDeviceHandler)
	api.GET("/source", s.GetSourceHandler)
	api.PUT("/source", s.SetSourceHandler)
	api.GET("/homeassistant", s.ConnectionStatusHandler)
	api.POST("/homeassistant", s.ConfigureHandler)
	api.DELETE("/homeassistant", s.DisconnectHandler)
	api.POST("/poll", s.PollNowHandler)

	return e
}

func (s *Server) HealthCheckHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.ActorHealthRequest{}, 10*time.Second).Result()
	if err != nil {
		return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
	}
	if response, ok := res.(domain.ActorHealthResponse); ok && response.Healthy {
		return c.String(http.StatusOK, "health_check: OK")
	}
	return c.String(http.StatusServiceUnavailable, "health_check: FAIL")
}

func (s *Server) VersionHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"version":  versioninfo.Short(),
		"revision": versioninfo.Revision,
		"dirty":    versioninfo.DirtyBuild,
	})
}

func (s *Server) SensorsHandler(c echo.Context) error {
	sensors := s.home.Sensors(c.Request().Context())
	if t := c.QueryParam("type"); t != "" {
		sensors = service.FilterByType(sensors, domain.SensorType(t))
	}
	return c.JSON(http.StatusOK, sensors)
}

func (s *Server) SensorHistoryHandler(c echo.Context) error {
	hours := DEFAULT_HISTORY_HOURS
	if h := c.QueryParam("hours"); h != "" {
		parsed, err := strconv.Atoi(h)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, errorBody{Error: "hours must be a positive integer"})
		}
		hours = parsed
	}
	return c.JSON(http.StatusOK, s.home.SensorHistory(c.Request().Context(), c.Param("id"), hours))
}

func (s *Server) RoomsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, s.home.Rooms(c.Request().Context()))
}

func (s *Server) RoomHandler(c echo.Context) error {
	ctx := c.Request().Context()
	room, ok := service.FindRoom(s.home.Rooms(ctx), c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody{Error: "room not found"})
	}
	return c.JSON(http.StatusOK, service.RoomStats(room, s.home.Sensors(ctx)))
}

func (s *Server) SummaryHandler(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, service.Summarize(s.home.Sensors(ctx), s.home.Rooms(ctx)))
}

func (s *Server) ControlDeviceHandler(c echo.Context) error {
	action, err := domain.ParseDeviceAction(c.Param("action"))
	if err != nil {
		return s.errorResponse(c, err)
	}
	if err := s.home.ControlDevice(c.Request().Context(), c.Param("id"), action); err != nil {
		return s.errorResponse(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) GetSourceHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, sourceBody{Source: string(s.home.DataSource())})
}

func (s *Server) SetSourceHandler(c echo.Context) error {
	var body sourceBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "invalid body"})
	}
	source, ok := domain.ParseDataSource(body.Source)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "source must be mock or homeassistant"})
	}
	s.home.SetDataSource(source)
	return c.JSON(http.StatusOK, sourceBody{Source: string(source)})
}

func (s *Server) ConnectionStatusHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, connectionStatus{
		Connected: s.home.IsConnected(c.Request().Context()),
		Source:    s.home.DataSource(),
	})
}

func (s *Server) ConfigureHandler(c echo.Context) error {
	var body connectionBody
	if err := c.Bind(&body); err != nil || body.URL == "" || body.Token == "" {
		return c.JSON(http.StatusBadRequest, errorBody{Error: "url and token are required"})
	}
	if err := s.home.Configure(c.Request().Context(), body.URL, body.Token); err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, connectionStatus{Connected: true, Source: s.home.DataSource()})
}

func (s *Server) DisconnectHandler(c echo.Context) error {
	if err := s.home.Disconnect(c.Request().Context()); err != nil {
		return s.errorResponse(c, err)
	}
	return c.JSON(http.StatusOK, connectionStatus{Connected: false, Source: s.home.DataSource()})
}

func (s *Server) PollNowHandler(c echo.Context) error {
	res, err := s.rootContext.RequestFuture(s.masterActor, domain.PollNowRequest{}, 30*time.Second).Result()
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: err.Error()})
	}
	if r, ok := res.(domain.ActorResponse); ok && r.HasResponseError() {
		return c.JSON(http.StatusServiceUnavailable, errorBody{Error: r.GetResponseError().Error()})
	}
	resp, ok := res.(domain.PollNowResponse)
	if !ok {
		return c.JSON(http.StatusInternalServerError, errorBody{Error: "unexpected response"})
	}
	return c.JSON(http.StatusOK, map[string]int{"sensors": resp.Sensors})
}

func (s *Server) errorResponse(c echo.Context, err error) error {
	status := StatusForError(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.JSON(status, errorBody{Error: err.Error()})
}

// StatusForError maps domain errors onto HTTP statuses.
func StatusForError(err error) int {
	var remote *domain.RemoteError
	var network *domain.NetworkError
	var storage *domain.StorageError
	switch {
	case errors.Is(err, domain.ErrInvalidAction):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSourceMismatch), errors.Is(err, domain.ErrNotConfigured):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConnectionFailed), errors.As(err, &remote), errors.As(err, &network):
		return http.StatusBadGateway
	case errors.As(err, &storage):
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}
