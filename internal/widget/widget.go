// Package widget owns the view state of one interactive weather lookup
// surface and implements the lookup state machine on top of a provider.
package widget

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/weatherwidget/backend/internal/domain"
)

var (
	// ErrBusy is returned when a search is started while another is in flight.
	ErrBusy = errors.New("widget: search already in progress")
	// ErrEmptyQuery is returned when the trimmed query is empty.
	ErrEmptyQuery = errors.New("widget: empty query")
)

// Widget is the exclusive owner of a ViewState. Every transition replaces
// the whole state under the lock; the provider call runs outside it so
// readers observe Loading while the request is in flight.
type Widget struct {
	provider domain.WeatherProvider

	mu    sync.Mutex
	state domain.ViewState
}

// New creates a widget in its initial state
func New(provider domain.WeatherProvider) *Widget {
	return &Widget{
		provider: provider,
		state:    domain.InitialViewState(),
	}
}

// State returns a snapshot of the current view state
func (w *Widget) State() domain.ViewState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SetQuery binds the input text. No validation happens here.
// The input is disabled while loading, so changes are dropped then.
func (w *Widget) SetQuery(q string) domain.ViewState {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Loading {
		return w.state
	}
	next := w.state
	next.Query = q
	w.state = next
	return next
}

// Begin validates the query and, if accepted, enters the loading state.
// It returns the query to look up exactly as typed; trimming only decides
// whether it is empty. A rejected empty query sets the error message and
// leaves the weather as it was.
func (w *Widget) Begin() (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state.Loading {
		return "", ErrBusy
	}

	next := w.state
	if strings.TrimSpace(next.Query) == "" {
		failure := domain.ProviderFailure{Kind: domain.FailureEmptyQuery, Message: domain.MsgEmptyQuery}
		next.Error = domain.DisplayMessage(failure)
		next.Failure = failure.Info()
		w.state = next
		return "", ErrEmptyQuery
	}

	next.Loading = true
	next.Error = ""
	next.Failure = nil
	w.state = next
	return next.Query, nil
}

// Resolve performs the lookup for a query accepted by Begin and applies
// the result. Loading is cleared on every path, including a panicking
// provider.
func (w *Widget) Resolve(ctx context.Context, city string) (state domain.ViewState) {
	var result domain.ProviderResult = domain.ProviderFailure{
		Kind:    domain.FailureTransport,
		Message: "weather: lookup aborted",
	}
	defer func() {
		w.mu.Lock()
		w.state = apply(w.state, result)
		state = w.state
		w.mu.Unlock()
	}()

	result = w.provider.Lookup(ctx, city)
	if f, ok := result.(domain.ProviderFailure); ok {
		log.Printf("weather: lookup for %q failed: %v", city, f)
	}
	return state
}

// Search runs the whole routine: validate, request, apply.
func (w *Widget) Search(ctx context.Context) (domain.ViewState, error) {
	city, err := w.Begin()
	if err != nil {
		return w.State(), err
	}
	return w.Resolve(ctx, city), nil
}

// apply returns the state that follows a provider result.
// Applying the same result twice yields the same state.
func apply(prev domain.ViewState, result domain.ProviderResult) domain.ViewState {
	next := prev
	next.Loading = false

	switch r := result.(type) {
	case domain.ProviderSuccess:
		next.Weather = r.View
		next.Error = ""
		next.Failure = nil
	case domain.ProviderFailure:
		next.Weather = domain.EmptyWeatherView()
		next.Error = domain.DisplayMessage(r)
		next.Failure = r.Info()
	default:
		next.Weather = domain.EmptyWeatherView()
		next.Error = domain.MsgFetchFailed
		next.Failure = nil
	}
	return next
}
