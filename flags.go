package main

import (
	"github.com/Unleash/unleash-client-go/v3"
	"github.com/spf13/viper"
)

// Feature flags guarding each endpoint
const (
	featureCleanTranscript = "transcripts.api.clean"
	featureCleanCase       = "transcripts.api.clean.case"
	featureListRuns        = "transcripts.api.runs"
	featureValidate        = "dataset.api.validate"
)

type featureFlags interface {
	IsEnabled(feature string) bool
}

type unleashFlags struct{}

func (unleashFlags) IsEnabled(feature string) bool {
	return unleash.IsEnabled(feature, unleash.WithFallback(viper.GetBool("feature_fallback")))
}

var flags featureFlags = unleashFlags{}

func initFeatureFlags() error {
	return unleash.Initialize(
		unleash.WithListener(BasicListener{}),
		unleash.WithAppName(viper.GetString("service_name")),
		unleash.WithUrl(viper.GetString("unleash_path")),
	)
}
