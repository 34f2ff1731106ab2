package domain

import (
	"fmt"
	"strings"
)

// User-facing messages
const (
	MsgEmptyQuery   = "Please enter a city name."
	MsgCityNotFound = "City not found. Please check spelling."
	MsgFetchFailed  = "Failed to fetch weather data. Please try again."

	// MsgInvalidData is the failure message of a malformed provider response.
	MsgInvalidData = "Invalid weather data received."
	// MsgDefaultNotFound is used when an error response carries no message.
	MsgDefaultNotFound = "City not found"
)

// FailureKind classifies why a lookup did not produce a WeatherView
type FailureKind int

const (
	FailureEmptyQuery FailureKind = iota + 1
	FailureProvider
	FailureMalformed
	FailureTransport
)

func (k FailureKind) String() string {
	switch k {
	case FailureEmptyQuery:
		return "empty_query"
	case FailureProvider:
		return "provider"
	case FailureMalformed:
		return "malformed"
	case FailureTransport:
		return "transport"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// MarshalText lets FailureKind appear as its name in JSON.
// UnmarshalText accepts the same names.
func (k FailureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *FailureKind) UnmarshalText(b []byte) error {
	for _, candidate := range []FailureKind{FailureEmptyQuery, FailureProvider, FailureMalformed, FailureTransport} {
		if candidate.String() == string(b) {
			*k = candidate
			return nil
		}
	}
	return fmt.Errorf("weather: unknown failure kind %q", b)
}

// ProviderResult is either ProviderSuccess or ProviderFailure
type ProviderResult interface {
	providerResult()
}

// ProviderSuccess carries a fully mapped view
type ProviderSuccess struct {
	View WeatherView
}

// ProviderFailure carries the failure kind and the raw message used for classification
type ProviderFailure struct {
	Kind    FailureKind
	Status  int
	Message string
	Err     error
}

func (ProviderSuccess) providerResult() {}
func (ProviderFailure) providerResult() {}

// Error makes a failure usable where an error is expected
func (f ProviderFailure) Error() string {
	if f.Status != 0 {
		return fmt.Sprintf("weather: %s failure (status %d): %s", f.Kind, f.Status, f.Message)
	}
	return fmt.Sprintf("weather: %s failure: %s", f.Kind, f.Message)
}

func (f ProviderFailure) Unwrap() error {
	return f.Err
}

// Info returns the JSON-facing part of the failure
func (f ProviderFailure) Info() *FailureInfo {
	return &FailureInfo{Kind: f.Kind, Status: f.Status, Message: f.Message}
}

// FailureInfo is the diagnostic record kept in ViewState
type FailureInfo struct {
	Kind    FailureKind `json:"kind"`
	Status  int         `json:"status,omitempty"`
	Message string      `json:"message"`
}

// DisplayMessage collapses a failure into the string shown to the user.
// Anything mentioning "city not found" (any case) or "404" is a not-found;
// every other provider, malformed or transport failure is generic.
func DisplayMessage(f ProviderFailure) string {
	if f.Kind == FailureEmptyQuery {
		return MsgEmptyQuery
	}
	if IsNotFoundMessage(f.Message) {
		return MsgCityNotFound
	}
	return MsgFetchFailed
}

// IsNotFoundMessage applies the not-found rule to a raw failure message
func IsNotFoundMessage(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "city not found") || strings.Contains(msg, "404")
}
