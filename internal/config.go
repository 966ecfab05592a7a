package internal

import (
	"chat-engine/ai"
	"chat-engine/runtime"
	"fmt"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
)

// Config is read from the environment. Replies and prefixes may contain
// commas, their defaults are applied in code rather than in the tags.
type Config struct {
	DataDir                string        `env:"DATA_DIR,default=data" validate:"required"`
	ModelPath              string        `env:"MODEL_PATH,default=data/trained-model.json" validate:"required"`
	BadgerFilepath         string        `env:"BADGER_FILEPATH"`
	LogLevel               string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	HistoryCapacity        int           `env:"HISTORY_CAPACITY,default=20" validate:"gt=0"`
	NetworkThreshold       float64       `env:"NETWORK_THRESHOLD,default=0.7" validate:"gte=0,lte=1"`
	ResponseThreshold      float64       `env:"RESPONSE_THRESHOLD,default=0.5" validate:"gte=0,lte=1"`
	TrainingIterations     int           `env:"TRAINING_ITERATIONS,default=2000" validate:"gt=0"`
	TrainingErrorThreshold float64       `env:"TRAINING_ERROR_THRESHOLD,default=0.005" validate:"gt=0,lt=1"`
	LearningRate           float64       `env:"LEARNING_RATE,default=0.3" validate:"gt=0"`
	Momentum               float64       `env:"MOMENTUM,default=0.1" validate:"gte=0,lt=1"`
	TypingDelayMin         time.Duration `env:"TYPING_DELAY_MIN,default=1s" validate:"gte=0"`
	TypingDelayMax         time.Duration `env:"TYPING_DELAY_MAX,default=3s" validate:"gtefield=TypingDelayMin"`
	// EmpathyPrefixes is a '|' separated list.
	EmpathyPrefixes string `env:"EMPATHY_PREFIXES"`
	FallbackReply   string `env:"FALLBACK_REPLY"`
	ApologyReply    string `env:"APOLOGY_REPLY"`
	RandomSeed      *int   `env:"RANDOM_SEED" validate:"omitempty,gte=0"`
}

// LoadConfig reads and validates the configuration from the environment.
func LoadConfig() (Config, error) {
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Seed returns the configured random seed, nil when unset.
func (c Config) Seed() *uint64 {
	if c.RandomSeed == nil {
		return nil
	}
	seed := uint64(*c.RandomSeed)
	return &seed
}

// Prefixes splits EmpathyPrefixes, falling back to the built-in ones.
func (c Config) Prefixes() []string {
	if strings.TrimSpace(c.EmpathyPrefixes) == "" {
		return runtime.DefaultEmpathyPrefixes
	}
	return runtime.NormalizePrefixes(strings.Split(c.EmpathyPrefixes, "|"))
}

// Options maps the configuration onto the orchestrator options.
func (c Config) Options() runtime.Options {
	opts := runtime.DefaultOptions()
	opts.NetworkThreshold = c.NetworkThreshold
	opts.ResponseThreshold = c.ResponseThreshold
	opts.Network.Iterations = c.TrainingIterations
	opts.Network.ErrorThreshold = c.TrainingErrorThreshold
	opts.Network.LearningRate = c.LearningRate
	opts.Network.Momentum = c.Momentum
	opts.EmpathyPrefixes = c.Prefixes()
	opts.FallbackReply = c.FallbackReply
	if opts.FallbackReply == "" {
		opts.FallbackReply = ai.DefaultFallback
	}
	opts.ApologyReply = c.ApologyReply
	if opts.ApologyReply == "" {
		opts.ApologyReply = runtime.DefaultApology
	}
	opts.Seed = c.Seed()
	return opts
}
