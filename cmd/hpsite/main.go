package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hpsite/internal/httpx"
	"hpsite/internal/render"
)

type options struct {
	listen   string
	logLevel string
	noIndex  bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "hpsite",
		Short:         "Serve the static hp pages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logrus.New()
			if err := run(cmd.Context(), log, opts); err != nil {
				log.WithError(err).Error("hpsite exited")
				return err
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.listen, "listen", "127.0.0.1:5000", "HTTP listen address")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.BoolVar(&opts.noIndex, "noindex", false, "send X-Robots-Tag: noindex, nofollow")
	return cmd
}

func run(ctx context.Context, log *logrus.Logger, opts options) error {
	lvl, err := logrus.ParseLevel(opts.logLevel)
	if err != nil {
		return errors.Wrap(err, "invalid --log-level")
	}
	log.SetLevel(lvl)

	tmpl, err := render.Default()
	if err != nil {
		return err
	}
	srv, err := httpx.NewServer(httpx.Config{NoIndex: opts.noIndex}, tmpl, log)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", opts.listen)
	if err != nil {
		return errors.Wrap(err, "listen")
	}
	return serve(ctx, log, ln, httpx.NewRouter(srv))
}

// serve runs h on ln until ctx is cancelled or SIGINT/SIGTERM arrives.
func serve(ctx context.Context, log *logrus.Logger, ln net.Listener, h http.Handler) error {
	httpSrv := &http.Server{
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.Serve(ln)
	}()
	log.WithField("addr", "http://"+ln.Addr().String()).Info("listening")

	select {
	case err := <-errCh:
		return serveErr(err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "shutdown")
	}
	return serveErr(<-errCh)
}

func serveErr(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Wrap(err, "serve")
}
