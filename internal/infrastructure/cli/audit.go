package cli

import (
	"fmt"
	"os"

	"github.com/baselinehq/baseliner/internal/infrastructure/wiring"
	"github.com/spf13/cobra"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit and verify workspace history",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Verify the integrity of the workspace audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getWorkspaceRoot()
		if err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
		workspace := wiring.NewWorkspace(root)

		fmt.Println("Verifying audit trail integrity...")
		violations, err := workspace.Audit.VerifyIntegrity()
		if err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}

		if len(violations) == 0 {
			fmt.Println("Audit trail is intact and verified.")
			return nil
		}

		fmt.Printf("Found %d integrity violations:\n", len(violations))
		for _, v := range violations {
			fmt.Printf("  - %s\n", v)
		}
		os.Exit(1)
		return nil
	},
}

var auditLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Show the chronological audit trail",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := getWorkspaceRoot()
		if err != nil {
			return fmt.Errorf("resolve workspace path: %w", err)
		}
		workspace := wiring.NewWorkspace(root)

		events, err := workspace.Audit.GetTimeline()
		if err != nil {
			return fmt.Errorf("load audit trail: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No events recorded yet.")
			return nil
		}

		for _, e := range events {
			fmt.Printf("%s  %-26s actor=%s\n", e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Actor)
		}
		return nil
	},
}

func init() {
	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditLogCmd)
	RootCmd.AddCommand(auditCmd)
}
