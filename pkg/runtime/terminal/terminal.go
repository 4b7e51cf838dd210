package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdanniel/github-security-checker/pkg/runtime/terminal/commands"
)

// CLI represents the command-line interface
type CLI struct {
	output  io.Writer
	rootCmd *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{output: opts.Output}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ghsec",
		Short: "GitHub repository security checker",
	}

	cmd.AddCommand(commands.NewScanCmd(cli.output))
	cmd.AddCommand(commands.NewReposCmd(cli.output))
	cmd.AddCommand(commands.NewComplianceCmd(cli.output))
	cmd.AddCommand(commands.NewFixCmd(cli.output))

	return cmd
}
