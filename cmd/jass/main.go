package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"jass-game/internal/agent"
	"jass-game/internal/game"
	"jass-game/internal/server"
	"jass-game/internal/shared"
	"jass-game/internal/store"

	"github.com/sirupsen/logrus"
)

var defaultNames = [4]string{"Jean", "Anne", "Luc", "Sophie"}

func main() {
	var (
		seed    = flag.Uint64("seed", 0, "match RNG seed (0 = time-based)")
		goal    = flag.Int("goal", game.DefaultGoal, "score a team must reach to win")
		games   = flag.Int("games", 1, "number of matches to play")
		agents  = flag.String("agents", "random,random,random,random", "comma-separated agent kinds per seat: random|greedy|human|learned")
		listen  = flag.String("listen", "", "address for the spectator websocket feed (empty = disabled)")
		policy  = flag.String("policy", "default", "policy store row used by learned agents")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	if err := run(logger, *seed, *goal, *games, *agents, *listen, *policy); err != nil {
		logger.WithError(err).Fatal("match aborted")
	}
}

func run(logger *logrus.Logger, seed uint64, goal, games int, agentSpec, listen, policy string) error {
	kinds := strings.Split(agentSpec, ",")
	if len(kinds) != 4 {
		return fmt.Errorf("-agents needs exactly 4 entries, got %d", len(kinds))
	}

	var db *store.Service
	var learned []*agent.LearnedPolicy

	var seats [4]shared.Agent
	for i, kind := range kinds {
		switch strings.TrimSpace(kind) {
		case "random":
			agentSeed := seed
			if agentSeed != 0 {
				agentSeed += uint64(i + 1)
			}
			seats[i] = agent.NewRandom(agentSeed)
		case "greedy":
			seats[i] = agent.NewGreedy()
		case "human":
			seats[i] = agent.NewInteractive(os.Stdin, os.Stdout)
		case "learned":
			if db == nil {
				var err error
				if db, err = store.New(); err != nil {
					return err
				}
				defer db.Close()
			}
			lp := agent.NewLearnedPolicy()
			weights, err := db.LoadWeights(policy)
			if err != nil {
				return err
			}
			lp.SetWeights(weights)
			learned = append(learned, lp)
			seats[i] = lp
		default:
			return fmt.Errorf("unknown agent kind %q", kind)
		}
	}

	var sink game.EventSink
	if listen != "" {
		hub := server.NewHub(logger)
		go hub.Run()
		http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			server.ServeWs(hub, w, r)
		})
		go func() {
			logger.WithField("addr", listen).Info("spectator feed listening")
			if err := http.ListenAndServe(listen, nil); err != nil {
				logger.WithError(err).Error("spectator feed stopped")
			}
		}()
		sink = hub.Broadcast
	}

	var teamWins [2]int
	for n := 0; n < games; n++ {
		matchSeed := seed
		if matchSeed != 0 {
			matchSeed += uint64(n)
		}
		g, err := game.NewGame(game.Config{Goal: goal, Seed: matchSeed, Names: defaultNames}, seats, logger, sink)
		if err != nil {
			return err
		}
		result, err := g.Run()
		if err != nil {
			return err
		}
		for i, t := range g.Teams() {
			if t == result.WinningTeam {
				teamWins[i]++
			}
		}
		logger.WithFields(logrus.Fields{
			"game":   n + 1,
			"deals":  result.Deals,
			"scores": fmt.Sprintf("%d-%d", result.Scores[0], result.Scores[1]),
		}).Info("match finished")
	}

	if db != nil {
		for _, lp := range learned {
			if err := db.SaveWeights(policy, lp.Weights()); err != nil {
				return err
			}
		}
	}

	logger.WithFields(logrus.Fields{
		"team1": teamWins[0],
		"team2": teamWins[1],
	}).Info("all matches finished")
	return nil
}
