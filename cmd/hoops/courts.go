package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-hoops/internal/config"
	"github.com/vovakirdan/tui-hoops/internal/registry"
)

var courtsCmd = &cobra.Command{
	Use:   "courts",
	Short: "List available courts",
	Long:  `Shows every court layout that can be passed to --court.`,
	Args:  cobra.NoArgs,
	Run:   runCourts,
}

func runCourts(_ *cobra.Command, _ []string) {
	courts := registry.List()

	if len(courts) == 0 {
		fmt.Println("No courts available.")
		return
	}

	fmt.Println("Available courts:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range courts {
		if len(c.ID) > maxIDLen {
			maxIDLen = len(c.ID)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Description")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----------")
	for _, c := range courts {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Description)
	}

	fmt.Println()
	fmt.Println("Run 'hoops play --court <id>' to play on a court.")
}

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved game config",
	Long: `Print the game config after the search order is applied:
--config, ~/.hoops/configs/hoops.yaml, ./configs/hoops.yaml, then the
built-in defaults. With --defaults the built-in file is printed as is,
ready to copy and edit.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return nil
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
