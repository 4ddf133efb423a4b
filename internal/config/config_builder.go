package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 3),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	applyDefaults(config)

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.configs = append(b.configs, ParseFlags())
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

// GetServerConfig assembles the server configuration from environment
// variables, command-line flags and the optional JSON file,
// in that order of precedence, and validates the result.
func GetServerConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().withEnv().withFlags().withJSON().build()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validateServer()
}

// GetClientConfig assembles and validates the client view of the
// configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().withEnv().withFlags().withJSON().build()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		ServerURL:       cfg.Client.ServerURL,
		EmailGatewayURL: cfg.Client.EmailGatewayURL,
		RequestTimeout:  cfg.Client.RequestTimeout,
		RefreshInterval: cfg.Client.RefreshInterval,
		Version:         cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}
