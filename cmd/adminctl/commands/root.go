package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/storefront-admin/cmd/adminctl/output"
	"github.com/javajoker/storefront-admin/internal/config"
	"github.com/javajoker/storefront-admin/internal/crud"
	"github.com/javajoker/storefront-admin/internal/i18n"
	"github.com/javajoker/storefront-admin/internal/utils"
)

// options holds the global flags.
type options struct {
	baseURL    string
	timeout    int
	lang       string
	jsonOutput bool
	verbose    bool
	yes        bool
}

// NewRootCmd builds the adminctl command tree.
func NewRootCmd() *cobra.Command {
	cmd, _ := newRootCmd()
	return cmd
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}

	// Environment and .env supply the flag defaults.
	cfg, _ := config.Load()

	rootCmd := &cobra.Command{
		Use:   "adminctl",
		Short: "Storefront admin - manage users, products, orders and reviews",
		Long: `adminctl manages the storefront's records through its REST backend.

Every entity supports the same operations:
  list     - Show the current records
  create   - Create a record from flags
  update   - Change fields of an existing record
  delete   - Delete a record after confirmation

Examples:
  adminctl products list
  adminctl products create --name Widget --description "A widget" --price 9.99 --stock 10
  adminctl orders update 5 --status shipped
  adminctl orders delete 5 --yes`,
		Version:       "1.0.0",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetOutput(os.Stderr)
			logrus.SetLevel(logrus.ErrorLevel)
			if opts.verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return i18n.Initialize(cfg.I18n.DefaultLocale)
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", cfg.Collaborator.BaseURL, "Base URL of the REST backend")
	rootCmd.PersistentFlags().IntVar(&opts.timeout, "timeout", cfg.Collaborator.Timeout, "Request timeout in seconds (0 waits indefinitely)")
	rootCmd.PersistentFlags().StringVar(&opts.lang, "lang", cfg.I18n.DefaultLocale, "Language for messages (en, zh_TW)")
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(
		newEntityCommand(opts, userEntity),
		newEntityCommand(opts, productEntity),
		newEntityCommand(opts, orderEntity),
		newEntityCommand(opts, reviewEntity),
	)

	return rootCmd, opts
}

// Execute runs the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	rootCmd, opts := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		output.Error("%s", describe(opts.lang, err))
		os.Exit(1)
	}
}

// describe turns page operation failures into the operator-facing message
// and leaves usage errors as they are.
func describe(lang string, err error) string {
	var opErr *crud.OperationError
	if errors.As(err, &opErr) {
		return utils.Message(lang, err)
	}
	return err.Error()
}
