package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sign-language-processing/complex-tokenization-go/merge"
	"github.com/sign-language-processing/complex-tokenization-go/trainer"
)

// trainConfig is the YAML-loadable shape of a training run's configuration,
// mirroring merge.Config and trainer.Options.
type trainConfig struct {
	MaxMergeSize      int    `yaml:"max_merge_size"`
	OnlyMinimalMerges bool   `yaml:"only_minimal_merges"`
	UseSingletons     bool   `yaml:"use_singletons"`
	OnlyTokens        bool   `yaml:"only_tokens"`
	Unit              string `yaml:"unit"`
}

func defaultTrainConfig() trainConfig {
	return trainConfig{
		MaxMergeSize:      3,
		OnlyMinimalMerges: true,
		UseSingletons:     true,
		OnlyTokens:        true,
		Unit:              "bytes",
	}
}

func loadTrainConfig(path string) (trainConfig, error) {
	cfg := defaultTrainConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return trainConfig{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return trainConfig{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

func (c trainConfig) trainerOptions() (trainer.Options, error) {
	mergeCfg, err := merge.NewConfig(
		merge.WithMaxMergeSize(c.MaxMergeSize),
		merge.WithOnlyMinimalMerges(c.OnlyMinimalMerges),
		merge.WithUseSingletons(c.UseSingletons),
	)
	if err != nil {
		return trainer.Options{}, err
	}
	return trainer.NewOptions(
		trainer.WithConfig(mergeCfg),
		trainer.WithOnlyTokens(c.OnlyTokens),
	)
}
