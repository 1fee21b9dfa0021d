package experiments

import (
	"context"
	"fmt"
	"mills/engine"
	"mills/experiments/metrics"
	"mills/game"
	"mills/searcher/agent"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per matchup, unless configured

// Run plays every matchup of config and stores the agent configs, game
// records and move records under config.Output. It returns the directory
// the records were written to.
func Run(ctx context.Context, config *Config) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	wins := map[int]int{}

	log.Info().Msgf("starting %s experiment...", config.Name)

	for mi, matchup := range config.Matchups {
		white, black := config.agent(matchup[0]), config.agent(matchup[1])

		log.Info().Msgf("starting matchup %d of %d between white=%+v and black=%+v...", mi+1, len(config.Matchups), white, black)

		for i := 0; i < config.Games; i++ {
			winner, gameMetric, moveMetrics, err := runGame(ctx, white, black, config.MaxTurns)
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     white.ID,
				Agent2:     black.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			switch winner {
			case game.White:
				wins[white.ID]++
			case game.Black:
				wins[black.ID]++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(config.Matchups), i+1, winner)
		}
		log.Info().Int("white", white.ID).Int("white_wins", wins[white.ID]).Int("black", black.ID).Int("black_wins", wins[black.ID]).Msgf("completed matchup %d of %d", mi+1, len(config.Matchups))
	}

	log.Info().Msgf("completed %s experiment", config.Name)

	writer, err := metrics.NewWriter(config.Output, config.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(config.Agents); err != nil {
		return "", err
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// runGame plays a single game between fresh agents, so no search state
// leaks from one game into the next.
func runGame(ctx context.Context, white, black metrics.AgentConfig, maxTurns int) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	var agents [2]agent.Agent
	for i, config := range []metrics.AgentConfig{white, black} {
		a, err := agent.FromConfig(config)
		if err != nil {
			return game.Empty, metrics.GameMetric{}, nil, err
		}
		agents[i] = a
	}

	e := engine.LocalEngine(agents, maxTurns)
	return e.Run(ctx)
}
