package config

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RunFunc is the body of a service binary. It returns when ctx is cancelled or on a fatal error.
type RunFunc func(ctx context.Context, cfg Settings, log *logrus.Entry) error

// NewCommand builds the cobra root command of a service. Flags override environment
// variables, which override the config file, which overrides defaults.
func NewCommand(service, defaultAddr, short string, run RunFunc) *cobra.Command {
	v := viper.New()
	SetDefaults(v, defaultAddr)

	var cfgFile string
	cmd := &cobra.Command{
		Use:          service,
		Short:        short,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Load(v, cfgFile)
			if err != nil {
				return err
			}
			log := NewLogger(service, cfg.LogLevel)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg, log)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	cmd.Flags().String("http-addr", defaultAddr, "HTTP listen address")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
	_ = v.BindPFlag("http_addr", cmd.Flags().Lookup("http-addr"))
	_ = v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))
	return cmd
}

func Execute(cmd *cobra.Command) {
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Serve runs srv until ctx is cancelled, then shuts it down gracefully.
func Serve(ctx context.Context, srv *http.Server, log *logrus.Entry) error {
	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", srv.Addr).Info("http server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
