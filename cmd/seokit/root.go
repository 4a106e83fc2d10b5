package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for seokit.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seokit",
		Short: "SEO toolkit for static marketing sites",
		Long: `seokit keeps a static marketing site in shape for search engines.

It scans the site root for .html pages and can generate sitemap.xml,
check every page for required SEO markup, print schema.org JSON-LD
blocks, and run Lighthouse audits against the live site.

Settings are read from .seokit.yaml (see 'seokit init'), a .env file
(SEOKIT_BASE_URL, SEOKIT_ROOT) and command-line flags, in increasing
order of precedence.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .seokit.yaml in current directory or XDG config dir)")

	// Add subcommands
	cmd.AddCommand(NewSitemapCmd())
	cmd.AddCommand(NewValidateCmd())
	cmd.AddCommand(NewSchemaCmd())
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return exitErr.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// ExitError ends the process with Code without printing anything.
// Commands return it after they have already reported the failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
