package experiments

import (
	"fmt"
	"mills/experiments/metrics"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes an experiment: the competing agents and the pairings
// between them, each pairing played Games times.
type Config struct {
	Name     string                `yaml:"name"`
	Games    int                   `yaml:"games"`
	MaxTurns int                   `yaml:"maxTurns"`
	Output   string                `yaml:"output"`
	Agents   []metrics.AgentConfig `yaml:"agents"`
	Matchups [][]int               `yaml:"matchups"` // [white agent ID, black agent ID]
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read experiment config: %w", err)
	}
	return ParseConfig(data)
}

func ParseConfig(data []byte) (*Config, error) {
	config := &Config{
		Name:   "experiment",
		Games:  NumGames,
		Output: "experiments",
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid experiment config: %w", err)
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("no agents")
	}
	ids := map[int]bool{}
	for _, a := range c.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
	}
	if len(c.Matchups) == 0 {
		return fmt.Errorf("no matchups")
	}
	for i, m := range c.Matchups {
		if len(m) != 2 {
			return fmt.Errorf("matchup %d: want two agent ids, got %d", i+1, len(m))
		}
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("matchup %d: unknown agent id %d", i+1, id)
			}
		}
	}
	return nil
}

func (c *Config) agent(id int) metrics.AgentConfig {
	for _, a := range c.Agents {
		if a.ID == id {
			return a
		}
	}
	panic(fmt.Sprintf("unknown agent id %d", id))
}
