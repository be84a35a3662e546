package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/baselinehq/baseliner/pkg/domain/assessment"
	"github.com/spf13/cobra"
)

// Flag variables for evaluate command
var (
	evalScope    string
	evalSafety   string
	evalRisk     string
	evalCoverage string
	evalCost     float64
	evalTeams    string
	evalUrgency  string
	evalJSON     bool
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score a change request against the fast-track criteria",
	Long: `Score a change request against the fast-track criteria.

Each factor is supplied as a flag:
  --scope      isolated | multiple
  --safety     none | impact
  --risk       very_low | moderate | high
  --coverage   fully | partially | not_tested
  --cost       estimated cost (non-negative number)
  --teams      one | two_or_three | more_or_vendor
  --urgency    critical | important | nice_to_have

Examples:
  baseliner evaluate --scope isolated --safety none --risk very_low \
    --coverage fully --cost 1200 --teams one --urgency important
  baseliner evaluate --scope multiple --safety impact --risk high \
    --coverage not_tested --cost 45000 --teams more_or_vendor --urgency critical --json`,
	RunE: runEvaluateCmd,
}

// evaluateJSONOutput represents the JSON output format for evaluate
type evaluateJSONOutput struct {
	Score     int                      `json:"score"`
	Tier      assessment.Tier          `json:"tier"`
	TierName  string                   `json:"tier_name"`
	Breakdown []assessment.FactorDelta `json:"breakdown"`
	NextSteps []string                 `json:"next_steps"`
}

func runEvaluateCmd(cmd *cobra.Command, args []string) error {
	a, err := parseAssessmentFlags()
	if err != nil {
		return MapError(err)
	}

	services, err := loadServicesForCurrentDir()
	if err != nil {
		return err
	}

	result, err := services.Evaluation.Evaluate(*a)
	if err != nil {
		return MapError(err)
	}

	if evalJSON {
		output := evaluateJSONOutput{
			Score:     result.Score,
			Tier:      result.Tier,
			TierName:  result.Tier.DisplayName(),
			Breakdown: result.Breakdown,
			NextSteps: result.Tier.NextSteps(),
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	}

	fmt.Printf("Score: %d\n", result.Score)
	fmt.Printf("Tier:  %s (%s)\n", result.Tier, result.Tier.DisplayName())

	fmt.Println("\nBreakdown")
	fmt.Println("----------------")
	for _, d := range result.Breakdown {
		fmt.Printf("%+d  %-16s %s\n", d.Delta, d.Factor, d.Reason)
	}

	fmt.Println("\nNext steps:")
	for _, step := range result.Tier.NextSteps() {
		fmt.Printf("- %s\n", step)
	}
	return nil
}

func parseAssessmentFlags() (*assessment.ChangeAssessment, error) {
	scope, err := assessment.ParseScope(evalScope)
	if err != nil {
		return nil, err
	}
	safety, err := assessment.ParseSafetyImpact(evalSafety)
	if err != nil {
		return nil, err
	}
	risk, err := assessment.ParseTechnicalRisk(evalRisk)
	if err != nil {
		return nil, err
	}
	coverage, err := assessment.ParseTestCoverage(evalCoverage)
	if err != nil {
		return nil, err
	}
	teams, err := assessment.ParseTeamsInvolved(evalTeams)
	if err != nil {
		return nil, err
	}
	urgency, err := assessment.ParseUrgency(evalUrgency)
	if err != nil {
		return nil, err
	}

	a := &assessment.ChangeAssessment{
		Scope:         scope,
		SafetyImpact:  safety,
		TechnicalRisk: risk,
		TestCoverage:  coverage,
		EstimatedCost: evalCost,
		TeamsInvolved: teams,
		Urgency:       urgency,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func init() {
	evaluateCmd.Flags().StringVar(&evalScope, "scope", "", "Change scope (isolated, multiple)")
	evaluateCmd.Flags().StringVar(&evalSafety, "safety", "", "Safety impact (none, impact)")
	evaluateCmd.Flags().StringVar(&evalRisk, "risk", "", "Technical risk (very_low, moderate, high)")
	evaluateCmd.Flags().StringVar(&evalCoverage, "coverage", "", "Test coverage (fully, partially, not_tested)")
	evaluateCmd.Flags().Float64Var(&evalCost, "cost", 0, "Estimated cost")
	evaluateCmd.Flags().StringVar(&evalTeams, "teams", "", "Teams involved (one, two_or_three, more_or_vendor)")
	evaluateCmd.Flags().StringVar(&evalUrgency, "urgency", "", "Urgency (critical, important, nice_to_have)")
	evaluateCmd.Flags().BoolVar(&evalJSON, "json", false, "Output in JSON format")

	_ = evaluateCmd.MarkFlagRequired("scope")
	_ = evaluateCmd.MarkFlagRequired("safety")
	_ = evaluateCmd.MarkFlagRequired("risk")
	_ = evaluateCmd.MarkFlagRequired("coverage")
	_ = evaluateCmd.MarkFlagRequired("teams")
	_ = evaluateCmd.MarkFlagRequired("urgency")

	RootCmd.AddCommand(evaluateCmd)
}
