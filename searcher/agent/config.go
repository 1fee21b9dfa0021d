package agent

import (
	"fmt"
	"mills/experiments/metrics"
	"mills/game"
	"mills/searcher"
)

var evaluations = map[string]game.Evaluate{
	"":         game.EvaluateMills,
	"mills":    game.EvaluateMills,
	"material": game.EvaluateMaterial,
}

// FromConfig builds the agent an experiment config describes.
func FromConfig(config metrics.AgentConfig) (Agent, error) {
	evaluate, ok := evaluations[config.Evaluate]
	if !ok {
		return nil, fmt.Errorf("agent %d: unknown evaluation %q", config.ID, config.Evaluate)
	}

	options := []searcher.Option{
		searcher.WithEvaluationFn(evaluate),
		searcher.WithGoroutines(config.Goroutines),
		searcher.WithDuration(config.Duration),
		searcher.WithMetrics(),
	}

	switch config.Kind {
	case "negamax":
		options = append(options, searcher.WithDepth(config.Depth))
		return NewSearchAgent(searcher.NewNegamax(options...), config.Seed), nil
	case "mcts":
		if config.Episodes <= 0 && config.Duration <= 0 {
			return nil, fmt.Errorf("agent %d: mcts needs episodes or a duration", config.ID)
		}
		goroutines := config.Goroutines
		if goroutines <= 0 {
			goroutines = 1
		}
		options = append(options, searcher.WithEpisodes(config.Episodes), searcher.WithCutoff(config.Cutoff))
		return NewSearchAgent(searcher.NewMCTS(goroutines, options...), config.Seed), nil
	case "random":
		return NewRandomAgent(config.Seed), nil
	default:
		return nil, fmt.Errorf("agent %d: unknown kind %q", config.ID, config.Kind)
	}
}
