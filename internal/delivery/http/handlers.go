package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/weatherwidget/backend/internal/domain"
	"github.com/weatherwidget/backend/internal/widget"
)

const sessionCookie = "weather_session"

// Handler contains all HTTP handlers
type Handler struct {
	provider domain.WeatherProvider
	sessions *widget.Registry
	mock     bool
}

// NewHandler creates a new handler. mock marks every page as demo data.
func NewHandler(provider domain.WeatherProvider, sessions *widget.Registry, mock bool) *Handler {
	return &Handler{
		provider: provider,
		sessions: sessions,
		mock:     mock,
	}
}

type pageData struct {
	State      domain.ViewState
	Background domain.BackgroundStyle
	Mock       bool
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weather-widget",
		"version": "1.0.0",
	})
}

// Index renders the widget for the caller's session
func (h *Handler) Index(c *fiber.Ctx) error {
	return h.render(c, h.session(c).State())
}

// Search runs a lookup for the submitted city and renders the result
func (h *Handler) Search(c *fiber.Ctx) error {
	w := h.session(c)
	// the session outlives the request, fiber's strings do not
	w.SetQuery(utils.CopyString(c.FormValue("city")))

	state, err := w.Search(c.Context())
	if errors.Is(err, widget.ErrBusy) {
		c.Status(fiber.StatusConflict)
	}
	return h.render(c, state)
}

// GetState returns the caller's session state
func (h *Handler) GetState(c *fiber.Ctx) error {
	state := h.session(c).State()
	return c.JSON(fiber.Map{
		"success":    true,
		"data":       state,
		"background": state.Background(),
	})
}

// GetWeather performs a one-off lookup outside any session
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	w := widget.New(h.provider)
	w.SetQuery(c.Query("city"))

	state, err := w.Search(c.Context())
	resp := domain.WeatherResponse{
		Data:       state.Weather,
		Background: state.Background(),
		Success:    err == nil && state.Failure == nil,
		Error:      state.Error,
		Failure:    state.Failure,
	}

	switch {
	case errors.Is(err, widget.ErrEmptyQuery):
		c.Status(fiber.StatusBadRequest)
	case state.Failure == nil:
		c.Status(fiber.StatusOK)
	case state.Error == domain.MsgCityNotFound:
		c.Status(fiber.StatusNotFound)
	default:
		c.Status(fiber.StatusBadGateway)
	}
	return c.JSON(resp)
}

func (h *Handler) render(c *fiber.Ctx, state domain.ViewState) error {
	return c.Render("index", pageData{
		State:      state,
		Background: state.Background(),
		Mock:       h.mock,
	})
}

// session returns the caller's widget, issuing a cookie for new sessions
func (h *Handler) session(c *fiber.Ctx) *widget.Widget {
	current := c.Cookies(sessionCookie)
	w, id := h.sessions.Get(current)
	if id != current {
		c.Cookie(&fiber.Cookie{
			Name:     sessionCookie,
			Value:    id,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return w
}
