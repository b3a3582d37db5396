package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/engine"
	"github.com/jonathan/job-matcher/internal/matching"
)

var (
	recommendProfileID string
	recommendSearch    int
	recommendShow      int
	recommendExternal  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank stored postings for a profile and print the top matches",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		log, err := buildLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		eng, cleanup, err := buildEngine(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer cleanup()

		profileID := uuid.Nil
		if recommendProfileID != "" {
			profileID, err = uuid.Parse(recommendProfileID)
			if err != nil {
				return fmt.Errorf("invalid --profile value: %w", err)
			}
		}

		opts := engine.Options{
			NumToSearch: cfg.NumToSearch,
			NumToShow:   cfg.NumToShow,
			Concurrency: cfg.Concurrency,
		}
		if recommendSearch > 0 {
			opts.NumToSearch = recommendSearch
		}
		if recommendShow > 0 {
			opts.NumToShow = recommendShow
		}

		outcome, err := eng.RecommendPostings(cmd.Context(), profileID, opts)
		if err != nil {
			return err
		}
		printOutcome(cmd, "Stored postings", outcome)

		if recommendExternal {
			profile, err := eng.GetProfileOrLatest(cmd.Context(), profileID)
			if err != nil {
				return err
			}
			external, err := eng.SearchExternal(cmd.Context(), profile, opts)
			if err != nil {
				return err
			}
			printOutcome(cmd, "External listings", external)
		}
		return nil
	},
}

func printOutcome(cmd *cobra.Command, label string, outcome *matching.Outcome) {
	cmd.Printf("%s: %d results (%d skipped, %d fallbacks)\n",
		label, len(outcome.Results), outcome.Skipped, outcome.Fallbacks)
	for i, r := range outcome.Results {
		cmd.Printf("  #%d %-40s %6.1f%% (semantic %.1f, skills %.1f)\n",
			i+1, truncate(r.CandidateTitle+" @ "+r.CandidateCompany, 40),
			r.CombinedScore, r.SemanticScore, r.SkillMatchPercentage)
		if len(r.MatchedSkills) > 0 {
			cmd.Printf("      matched: %s\n", strings.Join(r.MatchedSkills, ", "))
		}
		if len(r.MissingSkills) > 0 {
			cmd.Printf("      missing: %s\n", strings.Join(r.MissingSkills, ", "))
		}
	}
	for _, warning := range outcome.Warnings {
		cmd.Printf("  warning: %s\n", warning)
	}
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}

func init() {
	recommendCmd.Flags().StringVar(&recommendProfileID, "profile", "", "Profile UUID (defaults to the latest stored profile)")
	recommendCmd.Flags().IntVar(&recommendSearch, "search", 0, "Pool size to evaluate")
	recommendCmd.Flags().IntVar(&recommendShow, "show", 0, "Top matches to print")
	recommendCmd.Flags().BoolVar(&recommendExternal, "external", false, "Also rank external provider listings")
	rootCmd.AddCommand(recommendCmd)
}
