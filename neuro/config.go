package neuro

import (
	"fmt"

	"gopkg.in/ini.v1"
)

// Config stores the parameters of a network population and its evolution.
type Config struct {
	Network   NetworkConfig
	Evolution EvolutionConfig
}

// NetworkConfig holds the dimensions used to randomly initialize networks.
type NetworkConfig struct {
	InputSize        int `ini:"input_size"`
	OutputSize       int `ini:"output_size"`
	HiddenLayerCount int `ini:"hidden_layer_count"` // <= 0 means a single input->output layer
	HiddenLayerSize  int `ini:"hidden_layer_size"`
}

// EvolutionConfig holds the genetic operator rates and the population loop
// settings used by a host.
type EvolutionConfig struct {
	PopSize           int     `ini:"pop_size"`
	Generations       int     `ini:"generations"`
	MixProb           float64 `ini:"mix_prob"`
	MutationRate      float64 `ini:"mutation_rate"`
	MutationStdDev    float64 `ini:"mutation_stddev"`
	Elitism           int     `ini:"elitism"`
	SurvivalThreshold float64 `ini:"survival_threshold"`
	FitnessThreshold  float64 `ini:"fitness_threshold"`
	Seed              uint64  `ini:"seed"`
	Workers           int     `ini:"workers"`
}

// LoadConfig loads configuration parameters from an INI file.
func LoadConfig(filePath string) (*Config, error) {
	config, err := LoadConfigSource(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config file '%s': %w", filePath, err)
	}
	return config, nil
}

// LoadConfigSource loads configuration from any source accepted by ini.Load:
// a file name, a []byte, or an io.Reader.
func LoadConfigSource(source interface{}) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		SpaceBeforeInlineComment: true, // "a = 1 # note" is a comment, "a = x#y" is a value
	}, source)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	config.Evolution.MixProb = DefaultMixProb
	config.Evolution.SurvivalThreshold = 0.2
	config.Evolution.Generations = 100
	config.Evolution.Workers = 1

	if err := cfg.Section("Network").MapTo(&config.Network); err != nil {
		return nil, fmt.Errorf("failed to map [Network] section: %w", err)
	}
	if err := cfg.Section("Evolution").MapTo(&config.Evolution); err != nil {
		return nil, fmt.Errorf("failed to map [Evolution] section: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	n := c.Network
	if n.InputSize <= 0 {
		return fmt.Errorf("config error: input_size must be positive")
	}
	if n.OutputSize <= 0 {
		return fmt.Errorf("config error: output_size must be positive")
	}
	if n.HiddenLayerCount > 0 && n.HiddenLayerSize <= 0 {
		return fmt.Errorf("config error: hidden_layer_size must be positive when hidden_layer_count > 0")
	}

	e := c.Evolution
	if e.PopSize < 2 {
		return fmt.Errorf("config error: pop_size must be at least 2")
	}
	if e.Generations <= 0 {
		return fmt.Errorf("config error: generations must be positive")
	}
	if e.MixProb < 0 || e.MixProb > 1 {
		return fmt.Errorf("config error: mix_prob must be between 0 and 1")
	}
	if e.MutationRate < 0 || e.MutationRate > 1 {
		return fmt.Errorf("config error: mutation_rate must be between 0 and 1")
	}
	if e.MutationStdDev < 0 {
		return fmt.Errorf("config error: mutation_stddev cannot be negative")
	}
	if e.Elitism < 0 || e.Elitism >= e.PopSize {
		return fmt.Errorf("config error: elitism must be in [0, pop_size)")
	}
	if e.SurvivalThreshold <= 0 || e.SurvivalThreshold > 1 {
		return fmt.Errorf("config error: survival_threshold must be in (0, 1]")
	}
	if e.Workers <= 0 {
		return fmt.Errorf("config error: workers must be positive")
	}
	return nil
}
