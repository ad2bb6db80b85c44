package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/kbukum/seqfns/errors"
	"github.com/kbukum/seqfns/logger"
)

type options struct {
	fs         FileSystem
	configFile string
	envFile    string
	envPrefix  string
	defaults   map[string]any
	environ    func() []string
}

// Option customises Load.
type Option func(*options)

// WithFileSystem replaces the OS file system, mostly for tests.
func WithFileSystem(fs FileSystem) Option {
	return func(o *options) { o.fs = fs }
}

// WithConfigFile skips the search and reads path.
func WithConfigFile(path string) Option {
	return func(o *options) { o.configFile = path }
}

// WithEnvFile skips the search and loads path.
func WithEnvFile(path string) Option {
	return func(o *options) { o.envFile = path }
}

// WithEnvPrefix restricts environment overrides to variables named
// PREFIX_<KEY>.
func WithEnvPrefix(prefix string) Option {
	return func(o *options) { o.envPrefix = strings.ToUpper(strings.TrimSuffix(prefix, "_")) }
}

// WithDefaults sets values used when neither a file nor the environment
// provides the key. Keys use dots for nesting.
func WithDefaults(defaults map[string]any) Option {
	return func(o *options) { o.defaults = defaults }
}

// Load fills cfg for the named command. Missing files are not an error;
// a file that exists but cannot be parsed is.
func Load(name string, cfg any, opts ...Option) error {
	o := options{fs: OSFileSystem{}, environ: os.Environ}
	for _, opt := range opts {
		opt(&o)
	}
	log := logger.Get("config")

	files := NewResolver(o.fs).Resolve(name, o)
	if files.Env != "" {
		if err := o.fs.LoadEnv(files.Env); err != nil {
			log.Warn("could not load env file", map[string]any{"path": files.Env, logger.FieldError: err.Error()})
		}
	}

	v := viper.New()
	for key, value := range o.defaults {
		v.SetDefault(key, value)
	}
	if files.Config != "" {
		v.SetConfigFile(files.Config)
		if err := v.ReadInConfig(); err != nil {
			return errors.InvalidInput("config", "cannot read "+files.Config).WithCause(err)
		}
		log.Debug("config file loaded", map[string]any{"path": files.Config})
	}

	bindEnv(v, o.environ(), o.envPrefix)

	if err := v.Unmarshal(cfg); err != nil {
		return errors.InvalidInput("config", "cannot decode configuration").WithCause(err)
	}
	return nil
}

// bindEnv sets every key variant of each environment variable so that
// RANGE_SAMPLE_RATE can land on range.sample_rate as well as range_sample.rate.
func bindEnv(v *viper.Viper, environ []string, prefix string) {
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			continue
		}
		if prefix != "" {
			rest, found := strings.CutPrefix(key, prefix+"_")
			if !found || rest == "" {
				continue
			}
			key = rest
		}
		for _, variant := range keyVariants(key) {
			v.Set(variant, value)
		}
	}
}

// keyVariants maps A_B_C to a_b_c, a.b.c, a.b_c and a_b.c.
func keyVariants(envKey string) []string {
	lower := strings.ToLower(envKey)
	parts := strings.Split(lower, "_")
	variants := []string{lower}
	if len(parts) == 1 {
		return variants
	}
	variants = append(variants, strings.Join(parts, "."))
	for i := 1; i < len(parts); i++ {
		head := strings.Join(parts[:i], "_")
		tail := strings.Join(parts[i:], "_")
		variants = append(variants,
			strings.Join(parts[:i], ".")+"."+tail,
			head+"."+strings.Join(parts[i:], "."),
		)
	}
	return unique(variants)
}

func unique(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
