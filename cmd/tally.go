package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/repositories"
	"github.com/Elmanda1/pemuda-berprestasi-legacy-sub004/services"
	"github.com/spf13/cobra"
)

var tallyCmd = &cobra.Command{
	Use:   "tally <competitionID>...",
	Short: "Print the medal tally of one or more competitions as JSON",
	Long: `Resolve every class of the given competitions and print the medal tally
per dojang. Competitions that cannot be loaded are logged and left out.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTally,
}

func runTally(cmd *cobra.Command, args []string) error {
	ids, err := parseCompetitionIDs(args)
	if err != nil {
		return err
	}

	logger, cfg, dbConn, err := bootstrap()
	if err != nil {
		return err
	}
	defer closeDB(logger, dbConn)

	medalService := services.NewMedalService(
		repositories.NewPostgresCompetitionRepository(dbConn),
		repositories.NewPostgresClassRepository(dbConn),
		repositories.NewPostgresParticipantRepository(dbConn),
		repositories.NewPostgresMatchRepository(dbConn),
		cfg.TallyConcurrency,
		logger,
	)

	tallies := medalService.CompetitionTallies(cmd.Context(), ids)

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(tallies)
}

func parseCompetitionIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid competition id %q", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
