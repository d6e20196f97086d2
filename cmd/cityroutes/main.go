// Command cityroutes maintains a road network driven by text commands.
//
// By default it reads commands from standard input (or -input), prints route
// descriptions to standard output and "ERROR <line>" for every failing line
// to standard error. With -serve it exposes the same network over HTTP.
//
//	cityroutes < commands.txt
//	cityroutes -input commands.txt -log-level debug
//	cityroutes -serve :8080 -config cityroutes.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/cityroutes/batch"
	"github.com/katalvlaran/cityroutes/config"
	"github.com/katalvlaran/cityroutes/httpapi"
	"github.com/katalvlaran/cityroutes/logging"
	"github.com/katalvlaran/cityroutes/roadmap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	input    string
	serve    string
	config   string
	logLevel string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("cityroutes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.input, "input", "", "read commands from `file` instead of standard input")
	fs.StringVar(&o.serve, "serve", "", "serve HTTP on `addr` instead of reading commands")
	fs.StringVar(&o.config, "config", "", "YAML configuration `file`")
	fs.StringVar(&o.logLevel, "log-level", "", "log `level`: debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	return o, nil
}

// loadConfig merges the config file and the flags.
func loadConfig(o options) (config.Config, error) {
	cfg := config.Default()
	if o.config != "" {
		var err error
		if cfg, err = config.Load(o.config); err != nil {
			return cfg, err
		}
	}
	if o.logLevel != "" {
		lvl, err := config.ParseLevel(o.logLevel)
		if err != nil {
			return cfg, err
		}
		cfg.Log.Level = lvl
		if cfg.Log.Format == config.FormatOff {
			cfg.Log.Format = config.FormatText
		}
	}
	if o.serve != "" {
		cfg.HTTP.Addr = o.serve
	}

	return cfg, cfg.Validate()
}

// run returns the process exit code. Command failures never change it.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "cityroutes:", err)
		return 2
	}
	cfg, err := loadConfig(o)
	if err != nil {
		fmt.Fprintln(stderr, "cityroutes:", err)
		return 2
	}
	log := logging.New(cfg.Log, stderr)
	m := roadmap.New(roadmap.WithLogger(log))

	if o.serve != "" {
		if err = serve(ctx, cfg.HTTP, m, log); err != nil {
			log.Error("server stopped", "err", err)
			return 1
		}
		return 0
	}

	in := stdin
	if o.input != "" {
		f, err := os.Open(o.input)
		if err != nil {
			fmt.Fprintln(stderr, "cityroutes:", err)
			return 1
		}
		defer f.Close()
		in = f
	}
	r := &batch.Runner{
		Map:            m,
		Out:            stdout,
		Err:            stderr,
		Logger:         log,
		BufferSize:     cfg.Input.BufferSize,
		RequireNewline: true,
	}
	sum, err := r.Run(ctx, in)
	if err != nil {
		log.Error("input aborted", "line", sum.Lines, "err", err)
	}
	log.Debug("input done", "lines", sum.Lines, "executed", sum.Executed, "failed", sum.Failed, "skipped", sum.Skipped)

	return 0
}

func serve(ctx context.Context, cfg config.HTTP, m *roadmap.Map, log *slog.Logger) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpapi.New(m, log),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
