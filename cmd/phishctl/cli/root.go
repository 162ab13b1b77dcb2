package cli

import (
	"bufio"
	"os"
	"time"

	"phish_trainer/pkg/i18n"
	"phish_trainer/pkg/logger"

	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every command.
type options struct {
	server  string
	locale  string
	timeout time.Duration
	debug   bool

	// stdin is shared so several prompts can read piped input in turn.
	stdin *bufio.Reader
	tty   *os.File
}

func (o *options) catalog() i18n.Catalog {
	return i18n.New(o.locale)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "phishctl",
		Short: "Phishing trainer dashboard in the terminal",
		Long: `phishctl shows your phishing awareness training statistics and
manages your profile and password on a phishing trainer server.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitConsole(opts.debug)
			opts.attachInput(cmd.InOrStdin())
		},
	}

	root.PersistentFlags().StringVar(&opts.server, "server", "", "trainer server URL (defaults to the one saved at login)")
	root.PersistentFlags().StringVar(&opts.locale, "locale", i18n.English, "message language: en or ru")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "log debug output to stderr")

	root.AddCommand(
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newStatsCmd(opts),
		newProfileCmd(opts),
		newPasswordCmd(opts),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
