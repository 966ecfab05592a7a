package internal

import (
	"chat-engine/runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		DataDir:                "data",
		ModelPath:              "data/trained-model.json",
		LogLevel:               "INFO",
		HistoryCapacity:        20,
		NetworkThreshold:       0.7,
		ResponseThreshold:      0.5,
		TrainingIterations:     2000,
		TrainingErrorThreshold: 0.005,
		LearningRate:           0.3,
		Momentum:               0.1,
		TypingDelayMin:         time.Second,
		TypingDelayMax:         3 * time.Second,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		description string
		modify      func(c *Config)
		wantErr     bool
	}{
		{"Should succeed with defaults", func(c *Config) {}, false},
		{"Should fail if network threshold is above 1", func(c *Config) { c.NetworkThreshold = 1.2 }, true},
		{"Should fail if response threshold is negative", func(c *Config) { c.ResponseThreshold = -0.1 }, true},
		{"Should fail if capacity is zero", func(c *Config) { c.HistoryCapacity = 0 }, true},
		{"Should fail if min delay exceeds max delay", func(c *Config) { c.TypingDelayMin = 5 * time.Second }, true},
		{"Should succeed with equal delays", func(c *Config) { c.TypingDelayMax = time.Second }, false},
		{"Should fail with an unknown log level", func(c *Config) { c.LogLevel = "TRACE" }, true},
		{"Should fail without data dir", func(c *Config) { c.DataDir = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			c := validConfig()
			tt.modify(&c)
			err := c.Validate()
			if tt.wantErr {
				req.Error(err)
			} else {
				req.NoError(err)
			}
		})
	}
}

func TestConfig_Options(t *testing.T) {
	req := require.New(t)
	seed := 42
	c := validConfig()
	c.EmpathyPrefixes = "I hear you.| That sounds hard. "
	c.RandomSeed = &seed
	c.Momentum = 0.2

	opts := c.Options()

	req.Equal([]string{"I hear you. ", "That sounds hard. "}, opts.EmpathyPrefixes)
	req.Equal(uint64(42), *opts.Seed)
	req.Equal(0.2, opts.Network.Momentum)
	req.Equal([]int{10, 8, 6}, opts.Network.HiddenLayers)
	req.Equal("I don't understand, please rephrase", opts.FallbackReply)
	req.Equal(runtime.DefaultApology, opts.ApologyReply)
}

func TestConfig_Prefixes_Default(t *testing.T) {
	req := require.New(t)
	req.Equal(runtime.DefaultEmpathyPrefixes, validConfig().Prefixes())
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Setenv("TYPING_DELAY_MAX", "2s")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("data", config.DataDir)
	req.Equal(20, config.HistoryCapacity)
	req.Equal(0.7, config.NetworkThreshold)
	req.Equal(time.Second, config.TypingDelayMin)
	req.Equal(2*time.Second, config.TypingDelayMax)
	req.Nil(config.RandomSeed)
}
