package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gocadlabs/govcad/internal/app"
	"github.com/gocadlabs/govcad/internal/config"
	"github.com/gocadlabs/govcad/version"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "govcad <file>",
	Short:   "Parametric sketch CAD viewport",
	Long:    `GoVCAD is a parametric sketch/CAD studio. It opens a versioned .vcad.json scene document in a 3D viewport for sketching, face selection and sketch operations.`,
	Args:    cobra.ExactArgs(1),
	Version: version.GetVersion(),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return app.Run(args[0], cfg)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "govcad.yaml", "settings file")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
