package experiments

import (
	"fmt"
	"seeker/agent"
	"seeker/engine"
	"seeker/experiments/metrics"
	"seeker/game"
	"seeker/game/pacman"
	"seeker/searcher"

	"github.com/rs/zerolog/log"
)

const NumGames = 10 // Per layout and algorithm

var Algorithms = []string{searcher.MinimaxName, searcher.AlphaBetaName, searcher.ExpectimaxName}

type Config struct {
	OutDir     string // Skips CSV output when empty
	Layouts    []string
	Depth      int
	Games      int
	MaxTurns   int
	Evaluation string // "score" or "better"
	Seed       uint64
}

func evaluation(name string) (game.Evaluate, error) {
	switch name {
	case "", "score":
		return game.EvaluateScore, nil
	case "better":
		return pacman.EvaluateBetter, nil
	default:
		return nil, fmt.Errorf("unknown evaluation function %q", name)
	}
}

// RunComparison plays every algorithm on every layout against random ghosts.
// Ghost seeds depend only on the game number, so minimax and alpha-beta play
// identical games and their node counts compare directly.
func RunComparison(config Config) ([]metrics.Summary, error) {
	evaluate, err := evaluation(config.Evaluation)
	if err != nil {
		return nil, err
	}
	if config.Games <= 0 {
		config.Games = NumGames
	}

	configs := make([]metrics.AgentConfig, 0, len(Algorithms))
	for i, algorithm := range Algorithms {
		configs = append(configs, metrics.AgentConfig{ID: i + 1, Algorithm: algorithm, Depth: config.Depth, Evaluation: config.Evaluation})
	}

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	searches := []metrics.SearchMetric{}

	log.Info().Msgf("starting comparison of %v on %v...", Algorithms, config.Layouts)

	for _, agentConfig := range configs {
		for _, layout := range config.Layouts {
			log.Info().Msgf("starting %s on layout %s...", agentConfig.Algorithm, layout)

			wins := 0
			for i := 0; i < config.Games; i++ {
				gameMetric, moveMetrics, err := runGame(agentConfig.Algorithm, layout, config, evaluate, config.Seed+uint64(i))
				if err != nil {
					return nil, fmt.Errorf("%s on %s game %d: %w", agentConfig.Algorithm, layout, i+1, err)
				}
				if gameMetric.Outcome == string(engine.Win) {
					wins++
				}

				count++
				gameRecords = append(gameRecords, metrics.GameRecord{
					ID:         count,
					Agent:      agentConfig.ID,
					Layout:     layout,
					GameMetric: gameMetric,
				})
				for _, mm := range moveMetrics {
					moveRecords = append(moveRecords, metrics.MoveRecord{Game: count, MoveMetric: mm})
					if mm.Algorithm != "" {
						searches = append(searches, mm.SearchMetric)
					}
				}
			}
			log.Info().Msgf("completed %s on layout %s: %d of %d games won", agentConfig.Algorithm, layout, wins, config.Games)
		}
	}

	summaries := metrics.Summarize(searches)
	for _, s := range summaries {
		log.Info().Msgf("%s: %d searches, %.1f nodes on average (sd %.1f), %.1f prunes, %.0fµs", s.Algorithm, s.Searches, s.MeanNodes, s.StdDevNodes, s.MeanPrunes, s.MeanDuration)
	}

	if config.OutDir == "" {
		return summaries, nil
	}

	writer, err := metrics.NewWriter(config.OutDir, "comparison")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored comparison results in %s", writer.Dir())

	return summaries, nil
}

// runGame plays one game of a search agent against random ghosts
func runGame(algorithm, layout string, config Config, evaluate game.Evaluate, seed uint64) (metrics.GameMetric, []metrics.MoveMetric, error) {
	state, err := pacman.Layout(layout)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	s, err := searcher.New(algorithm, searcher.WithDepth(config.Depth), searcher.WithEvaluationFn(evaluate), searcher.WithMetrics())
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}

	agents := []agent.Agent{agent.NewSearchAgent(s)}
	for i := 1; i < state.AgentCount(); i++ {
		agents = append(agents, agent.NewRandomAgent(seed*uint64(state.AgentCount())+uint64(i)))
	}

	e, err := engine.LocalEngine(state, agents, engine.WithMaxTurns(config.MaxTurns))
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return e.Run()
}
