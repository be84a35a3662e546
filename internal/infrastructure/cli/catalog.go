package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catalogDepartment string

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the document templates in the baseline catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		catalog, err := services.Workspace.Repo.LoadCatalog()
		if err != nil {
			return MapError(err)
		}

		templates := catalog.Templates()
		if catalogDepartment != "" {
			templates = catalog.ByDepartment(catalogDepartment)
			if len(templates) == 0 {
				return fmt.Errorf("no templates for department %q", catalogDepartment)
			}
		}

		fmt.Printf("%-8s %-10s %-45s %s\n", "ID", "DEPT", "NAME", "EXPECTED FILE")
		for _, t := range templates {
			fmt.Printf("%-8s %-10s %-45s %s\n", t.ID, t.DepartmentCode, t.DisplayName, t.ExpectedPDFName())
		}
		fmt.Printf("\n%d templates\n", len(templates))
		return nil
	},
}

var catalogDepartmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List the departments contributing baseline documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := loadServicesForCurrentDir()
		if err != nil {
			return err
		}

		catalog, err := services.Workspace.Repo.LoadCatalog()
		if err != nil {
			return MapError(err)
		}

		for _, dept := range catalog.Departments() {
			fmt.Printf("%-24s %d templates\n", dept, len(catalog.ByDepartment(dept)))
		}
		return nil
	},
}

func init() {
	catalogCmd.Flags().StringVarP(&catalogDepartment, "department", "d", "", "Filter by department name")
	catalogCmd.AddCommand(catalogDepartmentsCmd)
	RootCmd.AddCommand(catalogCmd)
}
