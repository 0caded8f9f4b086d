package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/efootball-data-service/internal/providers/fixture"
	"github.com/preston-bernstein/efootball-data-service/internal/providers/pesdb"
)

type rootOptions struct {
	baseURL   string
	timeout   time.Duration
	userAgent string
	fixture   bool
}

func (o *rootOptions) client() *pesdb.Client {
	cfg := pesdb.Config{
		BaseURL:   o.baseURL,
		Timeout:   o.timeout,
		UserAgent: o.userAgent,
	}
	if o.fixture {
		cfg.Transport = fixture.NewTransport()
	}
	return pesdb.NewClient(cfg)
}

// NewRootCmd assembles pesdbctl and its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pesdbctl",
		Short:         "pesdbctl queries the eFootball player database from the command line.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", envOr("PESDB_BASE_URL", ""), "upstream base URL")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "upstream request timeout")
	flags.StringVar(&opts.userAgent, "user-agent", envOr("PESDB_USER_AGENT", ""), "User-Agent header sent upstream")
	flags.BoolVar(&opts.fixture, "fixture", false, "serve recorded pages instead of calling upstream")

	root.AddCommand(
		newSearchCmd(opts),
		newPlayerCmd(opts),
		newRecordCmd(opts),
	)
	return root
}

func ExecuteContext(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
