// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package weightsets

import (
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gomlx/selectionsets/internal/workerspool"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// SELECTIONSETS_CONFIG is the environment variable with the default configuration, read the first
// time an operation runs (unless SetConfig was called before).
//
// The format is the one accepted by ParseConfig, e.g.: "parallelism=4,min_parallel_size=8192".
const SELECTIONSETS_CONFIG = "SELECTIONSETS_CONFIG"

// Config controls how operations execute. It never changes their results.
type Config struct {
	// MaxParallelism is a soft limit on the number of goroutines used to process one large WeightSet.
	// 0 disables parallelism, -1 makes it unlimited.
	MaxParallelism int

	// MinParallelSize is the minimum number of weights processed by each goroutine: sets smaller
	// than this are always processed sequentially.
	MinParallelSize int
}

// DefaultMinParallelSize is the default Config.MinParallelSize.
const DefaultMinParallelSize = 16 * 1024

// DefaultConfig uses runtime.NumCPU() for MaxParallelism and DefaultMinParallelSize.
func DefaultConfig() Config {
	return Config{
		MaxParallelism:  runtime.NumCPU(),
		MinParallelSize: DefaultMinParallelSize,
	}
}

// ParseConfig parses a comma-separated list of "key=value" settings, starting from DefaultConfig.
//
// Keys:
//
//   - "parallelism": Config.MaxParallelism.
//   - "min_parallel_size": Config.MinParallelSize, must be > 0.
//   - "sequential": shortcut for parallelism=0, takes no value.
func ParseConfig(config string) (Config, error) {
	cfg := DefaultConfig()
	for _, part := range strings.Split(config, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, hasValue := strings.Cut(part, "=")
		key = strings.TrimSpace(key)
		if key == "sequential" {
			if hasValue {
				return cfg, errors.Errorf("config %q: key %q takes no value", config, key)
			}
			cfg.MaxParallelism = 0
			continue
		}
		if !hasValue {
			return cfg, errors.Errorf("config %q: key %q requires a value", config, key)
		}
		intValue, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return cfg, errors.Wrapf(err, "config %q: invalid value for %q", config, key)
		}
		switch key {
		case "parallelism":
			cfg.MaxParallelism = intValue
		case "min_parallel_size":
			if intValue <= 0 {
				return cfg, errors.Errorf("config %q: min_parallel_size must be > 0, got %d", config, intValue)
			}
			cfg.MinParallelSize = intValue
		default:
			return cfg, errors.Errorf("config %q: unknown key %q", config, key)
		}
	}
	return cfg, nil
}

// engine holds the state derived from a Config.
type engine struct {
	config Config
	pool   *workerspool.Pool
}

var (
	currentEngine atomic.Pointer[engine]
	envConfigOnce sync.Once
)

func newEngine(cfg Config) *engine {
	if cfg.MinParallelSize <= 0 {
		cfg.MinParallelSize = DefaultMinParallelSize
	}
	pool := workerspool.New()
	pool.SetMaxParallelism(cfg.MaxParallelism)
	return &engine{config: cfg, pool: pool}
}

// SetConfig changes the configuration used by all operations started after the call.
func SetConfig(cfg Config) {
	currentEngine.Store(newEngine(cfg))
	klog.V(1).Infof("weightsets: using config %+v", cfg)
}

// CurrentConfig returns the configuration in use.
func CurrentConfig() Config {
	return getEngine().config
}

// getEngine returns the current engine, initializing it from SELECTIONSETS_CONFIG on first use,
// if SetConfig was not called before.
func getEngine() *engine {
	if e := currentEngine.Load(); e != nil {
		return e
	}
	envConfigOnce.Do(func() {
		cfg := DefaultConfig()
		if envConfig, found := os.LookupEnv(SELECTIONSETS_CONFIG); found {
			var err error
			cfg, err = ParseConfig(envConfig)
			if err != nil {
				klog.Errorf("weightsets: ignoring $%s: %+v", SELECTIONSETS_CONFIG, err)
				cfg = DefaultConfig()
			}
		}
		if currentEngine.CompareAndSwap(nil, newEngine(cfg)) {
			klog.V(1).Infof("weightsets: using config %+v", cfg)
		}
	})
	return currentEngine.Load()
}
