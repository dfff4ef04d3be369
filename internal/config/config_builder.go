package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder accumulates configuration snapshots from the individual
// sources (env, flags, JSON file) in priority order. Source errors are
// collected on the builder instead of aborting, so build reports every
// broken source at once.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected snapshots into one StructuredConfig. mergo only
// fills fields that are still zero, so a source appended earlier keeps its
// value over a later one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, snapshot := range b.configs {
		if err := mergo.Merge(merged, snapshot); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, nil
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

// withJSON loads the JSON config file when an earlier source named one.
// It must run after withEnv and withFlags: the file path itself comes from
// those sources.
func (b *configBuilder) withJSON() *configBuilder {
	jsonPath := ""
	for _, snapshot := range b.configs {
		if snapshot.JSONFilePath != "" {
			jsonPath = snapshot.JSONFilePath
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
