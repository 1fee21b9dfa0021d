package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"mills/engine"
	"mills/experiments"
	"mills/game"
	"mills/searcher"
	"mills/searcher/agent"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

func main() {
	mode := flag.String("mode", "play", "play, selfplay or experiment")
	depth := flag.Int("depth", searcher.DefaultDepth, "Deepest negamax iteration")
	duration := flag.Duration("duration", 5*time.Second, "Search time per move")
	goroutines := flag.Int("goroutines", 0, "Number of search goroutines, defaults to the number of CPUs")
	config := flag.String("config", "experiment.yaml", "Experiment config file")
	seed := flag.Uint64("seed", uint64(time.Now().UnixNano()), "Seed for tie breaks and rollouts")
	debug := flag.Bool("debug", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	options := []searcher.Option{
		searcher.WithDepth(*depth),
		searcher.WithDuration(*duration),
		searcher.WithGoroutines(*goroutines),
		searcher.WithMetrics(),
	}

	var err error
	switch *mode {
	case "play":
		err = play(ctx, os.Stdin, agent.NewSearchAgent(searcher.NewNegamax(options...), *seed))
	case "selfplay":
		err = selfplay(ctx, *goroutines, options, *seed)
	case "experiment":
		err = experiment(ctx, *config)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", *mode)
	}
}

func play(ctx context.Context, in io.Reader, opponent agent.Agent) error {
	e := engine.LocalEngine([2]agent.Agent{newHumanAgent(in, os.Stdout), opponent}, 0)
	winner, _, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Println(e.State)
	if winner == game.Empty {
		fmt.Println("Draw")
	} else {
		fmt.Printf("%s wins\n", winner)
	}
	return nil
}

func selfplay(ctx context.Context, goroutines int, options []searcher.Option, seed uint64) error {
	e := engine.LocalEngine(selfplayAgents(goroutines, options, seed), 0)
	winner, gameMetric, _, err := e.Run(ctx)
	if err != nil {
		return err
	}
	log.Info().Str("winner", winner.String()).Int("moves", gameMetric.TotalMoves).Dur("duration", gameMetric.Duration).Msg("selfplay-complete")
	return nil
}

func experiment(ctx context.Context, path string) error {
	config, err := experiments.LoadConfig(path)
	if err != nil {
		return err
	}
	dir, err := experiments.Run(ctx, config)
	if err != nil {
		return err
	}
	log.Info().Str("dir", dir).Msg("experiment records stored")
	return nil
}

// selfplayAgents pits negamax as White against MCTS as Black, both searching
// with the same number of goroutines. A non-positive count means one per CPU.
func selfplayAgents(goroutines int, options []searcher.Option, seed uint64) [2]agent.Agent {
	if goroutines <= 0 {
		goroutines = runtime.NumCPU()
	}
	options = append(slices.Clip(options), searcher.WithGoroutines(goroutines))
	return [2]agent.Agent{
		agent.NewSearchAgent(searcher.NewNegamax(options...), seed),
		agent.NewSearchAgent(searcher.NewMCTS(goroutines, options...), seed+1),
	}
}
