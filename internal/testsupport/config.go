package testsupport

import (
	"path/filepath"
	"testing"

	"listone/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose playlist paths live in a unique temp
// directory per test. It applies any provided options afterwards.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Input = filepath.Join(base, "listone.m3u8")
	cfgVal.Paths.Output = filepath.Join(base, "listone_ordinato.m3u8")
	cfgVal.Logging.Level = "debug"

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithInput places the input playlist at name inside the test directory.
func WithInput(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.Input = filepath.Join(b.baseDir, name)
	}
}

// WithOutput places the output playlist at name inside the test directory.
func WithOutput(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.Output = filepath.Join(b.baseDir, name)
	}
}

// WithLogDir enables file logging inside the test directory.
func WithLogDir() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.LogDir = filepath.Join(b.baseDir, "logs")
	}
}
