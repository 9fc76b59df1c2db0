// Command seeker runs the A* pathfinder and the adversarial searchers.
//
//	seeker path      run A* over the built-in maps, optionally with a moving goal
//	seeker play      play one Pacman game with a search agent against ghosts
//	seeker compare   compare minimax, alpha-beta and expectimax over many games
//
// Flags also read SEEKER_* environment variables, and a .env file in the
// working directory is loaded first.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"seeker/agent"
	"seeker/engine"
	"seeker/experiments"
	"seeker/game"
	"seeker/game/pacman"
	"seeker/meta"
	"seeker/searcher"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Msgf("failed to load .env file: %v", err)
	}

	err := command().Run(context.Background(), os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("seeker failed")
	}
}

func command() *cli.Command {
	return &cli.Command{
		Name:  "seeker",
		Usage: "A* grid search and adversarial game-tree search",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "enable debug logging", Sources: cli.EnvVars("SEEKER_DEBUG")},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{pathCommand(), playCommand(), compareCommand()},
	}
}

func outFlag() cli.Flag {
	return &cli.StringFlag{Name: "out", Usage: "directory for CSV results, none when empty", Sources: cli.EnvVars("SEEKER_OUT")}
}

func depthFlag() cli.Flag {
	return &cli.IntFlag{Name: "depth", Value: meta.DEPTH, Usage: "search depth in rounds", Sources: cli.EnvVars("SEEKER_DEPTH")}
}

func evalFlag() cli.Flag {
	return &cli.StringFlag{Name: "eval", Value: "score", Usage: "evaluation function: score or better", Sources: cli.EnvVars("SEEKER_EVAL")}
}

func seedFlag() cli.Flag {
	return &cli.IntFlag{Name: "seed", Value: meta.SEED, Usage: "seed for the ghosts", Sources: cli.EnvVars("SEEKER_SEED")}
}

func maxTurnsFlag() cli.Flag {
	return &cli.IntFlag{Name: "max-turns", Value: engine.MaxTurns, Usage: "rounds before a game is a draw", Sources: cli.EnvVars("SEEKER_MAX_TURNS")}
}

func pathCommand() *cli.Command {
	return &cli.Command{
		Name:  "path",
		Usage: "run A* on built-in maps",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "task", Value: experiments.PathTaskNames(), Usage: "map names", Sources: cli.EnvVars("SEEKER_TASKS")},
			&cli.IntFlag{Name: "move-rate", Value: meta.MOVE_RATE, Usage: "steps between goal moves, 0 keeps it still", Sources: cli.EnvVars("SEEKER_MOVE_RATE")},
			outFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			records, err := experiments.RunPaths(cmd.String("out"), cmd.StringSlice("task"), cmd.Int("move-rate"))
			if err != nil {
				return err
			}
			for _, r := range records {
				fmt.Printf("%-10s %-10s cost=%-5.0f steps=%-5d goal_moves=%d\n", r.Task, r.Status, r.Cost, r.Steps, r.GoalMoves)
			}
			return nil
		},
	}
}

func playCommand() *cli.Command {
	return &cli.Command{
		Name:  "play",
		Usage: "play one Pacman game",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "layout", Value: "minimax", Usage: "one of " + strings.Join(pacman.LayoutNames(), ", "), Sources: cli.EnvVars("SEEKER_LAYOUT")},
			&cli.StringFlag{Name: "algorithm", Value: searcher.AlphaBetaName, Usage: "minimax, alphabeta or expectimax", Sources: cli.EnvVars("SEEKER_ALGORITHM")},
			&cli.StringFlag{Name: "ghosts", Value: "random", Usage: "ghost policy: random or first", Sources: cli.EnvVars("SEEKER_GHOSTS")},
			depthFlag(), evalFlag(), seedFlag(), maxTurnsFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			state, err := pacman.Layout(cmd.String("layout"))
			if err != nil {
				return err
			}

			evaluate := game.EvaluateScore
			if cmd.String("eval") == "better" {
				evaluate = pacman.EvaluateBetter
			}
			s, err := searcher.New(cmd.String("algorithm"),
				searcher.WithDepth(cmd.Int("depth")),
				searcher.WithEvaluationFn(evaluate),
				searcher.WithMetrics(),
			)
			if err != nil {
				return err
			}

			agents := []agent.Agent{agent.NewSearchAgent(s)}
			for i := 1; i < state.AgentCount(); i++ {
				switch cmd.String("ghosts") {
				case "first":
					agents = append(agents, agent.NewFirstAgent())
				case "random":
					agents = append(agents, agent.NewRandomAgent(uint64(cmd.Int("seed")+i)))
				default:
					return fmt.Errorf("unknown ghost policy %q", cmd.String("ghosts"))
				}
			}

			e, err := engine.LocalEngine(state, agents, engine.WithMaxTurns(cmd.Int("max-turns")))
			if err != nil {
				return err
			}
			gameMetric, _, err := e.Run()
			if err != nil {
				return err
			}

			fmt.Println(e.State)
			fmt.Printf("%s with score %.0f after %d turns\n", gameMetric.Outcome, gameMetric.Score, gameMetric.Turns)
			return nil
		},
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "compare the searchers over many games",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "layout", Value: pacman.LayoutNames(), Usage: "layouts to play", Sources: cli.EnvVars("SEEKER_LAYOUTS")},
			&cli.IntFlag{Name: "games", Value: experiments.NumGames, Usage: "games per layout and algorithm", Sources: cli.EnvVars("SEEKER_GAMES")},
			depthFlag(), evalFlag(), seedFlag(), maxTurnsFlag(), outFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			summaries, err := experiments.RunComparison(experiments.Config{
				OutDir:     cmd.String("out"),
				Layouts:    cmd.StringSlice("layout"),
				Depth:      cmd.Int("depth"),
				Games:      cmd.Int("games"),
				MaxTurns:   cmd.Int("max-turns"),
				Evaluation: cmd.String("eval"),
				Seed:       uint64(cmd.Int("seed")),
			})
			if err != nil {
				return err
			}
			for _, s := range summaries {
				fmt.Printf("%-10s searches=%-5d nodes=%-10.1f prunes=%-8.1f time=%.0fµs\n", s.Algorithm, s.Searches, s.MeanNodes, s.MeanPrunes, s.MeanDuration)
			}
			return nil
		},
	}
}
