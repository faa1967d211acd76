package main

import (
	"log"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"

	"github.com/hupe1980/dealdesk"
	"github.com/hupe1980/dealdesk/internal/config"
	"github.com/hupe1980/dealdesk/logging"
	"github.com/hupe1980/dealdesk/model"
	"github.com/hupe1980/dealdesk/model/anthropic"
	"github.com/hupe1980/dealdesk/model/openai"
	"github.com/hupe1980/dealdesk/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger := logging.New(func(o *logging.Options) {
		o.Level = logging.ParseLevel(cfg.LogLevel)
		o.Format = cfg.LogFormat
	})

	desk := dealdesk.New(newGenerator(cfg), func(o *dealdesk.Options) {
		o.Logger = logger
	})

	srv := server.New(desk, func(o *server.Options) {
		o.Bind = cfg.Bind
		o.AccessCode = cfg.AccessCode
		o.Logger = logger
	})

	if err := srv.Start(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func newGenerator(cfg *config.Config) model.Generator {
	if cfg.Provider == config.ProviderAnthropic {
		return anthropic.New(func(o *anthropic.Options) {
			o.APIKey = cfg.AnthropicAPIKey
			if cfg.ModelID != "" {
				o.Model = anthropicsdk.Model(cfg.ModelID)
			}
		})
	}
	return openai.New(func(o *openai.Options) {
		o.APIKey = cfg.OpenAIAPIKey
		if cfg.ModelID != "" {
			o.Model = cfg.ModelID
		}
	})
}
