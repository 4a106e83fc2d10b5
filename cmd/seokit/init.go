package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cinematicwebworks/seokit/internal/config"
	"github.com/spf13/cobra"
)

//go:embed templates/seokit.yaml
var configTemplate embed.FS

// configTemplatePath is the embedded template location.
const configTemplatePath = "templates/seokit.yaml"

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new seokit configuration file",
		Long: `Initialize creates a new .seokit.yaml configuration file in the current directory.

The generated file includes:
- The site base URL and root directory
- Scanner exclusions and sitemap classification rules
- Validator and audit settings
- Business facts used by the schema generators

Every setting is commented out and shows its default value.

Examples:
  # Create .seokit.yaml in current directory
  seokit init

  # Create config file at a specific path
  seokit init -o config/seokit.yaml

  # Force overwrite existing file
  seokit init -f`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Output file path for the configuration")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite existing configuration file")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	// Check if file already exists
	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("configuration file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := configTemplate.ReadFile(configTemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read config template: %w", err)
	}

	// Create parent directories if needed
	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0o600); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created configuration file: %s\n", outputPath)
	fmt.Fprintln(out, "\nEdit this file to configure settings such as:")
	fmt.Fprintln(out, "  - The production base URL and site root")
	fmt.Fprintln(out, "  - Pages and thresholds for Lighthouse audits")
	fmt.Fprintln(out, "  - Business facts for schema.org markup")

	return nil
}
