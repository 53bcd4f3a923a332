package main

import (
	"github.com/Unleash/unleash-client-go/v3"
	"github.com/rs/zerolog/log"
)

// BasicListener is a much less noisy version of Unleash's DebugListener
type BasicListener struct{}

// OnError logs errors
func (l BasicListener) OnError(err error) {
	log.Error().Err(err).Msg("unleash error")
}

// OnWarning logs warnings at debug level
func (l BasicListener) OnWarning(warning error) {
	log.Debug().Err(warning).Msg("unleash warning")
}

// OnReady logs when the repository is ready
func (l BasicListener) OnReady() {
	log.Info().Msg("unleash ready")
}

// OnCount is called when a feature is queried
func (l BasicListener) OnCount(name string, enabled bool) {
}

// OnSent is called when the client has uploaded metrics
func (l BasicListener) OnSent(payload unleash.MetricsData) {
}

// OnRegistered is called when the client has registered
func (l BasicListener) OnRegistered(payload unleash.ClientData) {
}
