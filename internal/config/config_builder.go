package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// sources tells a configBuilder how to read one configuration type.
type sources[T any] struct {
	envPrefix string
	flags     func(fs *flag.FlagSet, cfg *T)
	json      func(path string) (*T, error)
	jsonPath  func(cfg *T) string
	defaults  func() *T
	validate  func(cfg *T) error
}

type configBuilder[T any] struct {
	sources sources[T]
	args    []string
	rest    []string
	configs []*T
	err     error
}

func newConfigBuilder[T any](args []string, src sources[T]) *configBuilder[T] {
	return &configBuilder[T]{
		sources: src,
		args:    args,
		configs: make([]*T, 0, 4),
	}
}

// build merges the collected configs. mergo never overrides a field that is
// already set, so earlier sources take precedence over later ones.
func (b *configBuilder[T]) build() (*T, []string, error) {
	if b.err != nil {
		return nil, nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(T)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if b.sources.validate != nil {
		if err := b.sources.validate(config); err != nil {
			return nil, nil, err
		}
	}

	return config, b.rest, nil
}

// withDotEnv loads the given .env files (".env" when none) into the process
// environment. A missing file is not an error.
func (b *configBuilder[T]) withDotEnv(paths ...string) *configBuilder[T] {
	if err := godotenv.Load(paths...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		b.err = errors.Join(b.err, fmt.Errorf("error loading .env file: %w", err))
	}
	return b
}

func (b *configBuilder[T]) withEnv() *configBuilder[T] {
	envCfg := new(T)
	if err := parseEnv(envCfg, b.sources.envPrefix); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder[T]) withFlags() *configBuilder[T] {
	flagCfg := new(T)

	flagSet := flag.NewFlagSet("config", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	b.sources.flags(flagSet, flagCfg)

	if err := flagSet.Parse(b.args); err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.rest = flagSet.Args()
	b.configs = append(b.configs, flagCfg)
	return b
}

func (b *configBuilder[T]) withJSON() *configBuilder[T] {
	var jsonPath string

	for _, cfg := range b.configs {
		if p := b.sources.jsonPath(cfg); p != "" {
			jsonPath = p
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := b.sources.json(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}

func (b *configBuilder[T]) withDefaults() *configBuilder[T] {
	if b.sources.defaults != nil {
		b.configs = append(b.configs, b.sources.defaults())
	}
	return b
}
