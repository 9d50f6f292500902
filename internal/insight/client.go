// Package insight asks a remote text-generation service for a structured
// natural-language summary of the user's finances. It is the only component
// in the application that talks to the network.
package insight

import (
	"context"
	"errors"

	"github.com/Veraticus/pennywise/internal/model"
)

// Client defines the interface for insight providers.
type Client interface {
	// Advise sends the snapshot to the provider and returns the parsed
	// insight. The insight must be written in the given language tag
	// ("en" or "zh"). An empty snapshot is a degenerate input the remote
	// service is not obligated to make sense of; callers should refuse to
	// send one.
	Advise(ctx context.Context, txns []model.Transaction, language string) (model.Insight, error)
}

// Config holds provider selection and tuning knobs.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	Temperature float64
	MaxTokens   int
}

// Insight errors. None of these is fatal; every failure leaves the store
// intact and the caller free to retry manually. Requests are never retried
// automatically.
var (
	// ErrTransport means the remote call itself failed.
	ErrTransport = errors.New("insight request failed")
	// ErrParse means the response did not match the expected JSON shape.
	ErrParse = errors.New("insight response malformed")
	// ErrTimeout means the bounded request deadline was exceeded.
	ErrTimeout = errors.New("insight request timed out")
	// ErrBusy means another request is already in flight.
	ErrBusy = errors.New("an insight request is already in flight")
)
