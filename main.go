package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/danielgtaylor/huma/v2/humacli"
	"github.com/spf13/cobra"

	"github.com/oaiiae/huma-contacts/cli/api"
	"github.com/oaiiae/huma-contacts/cli/logger"
	ds "github.com/oaiiae/huma-contacts/datastores"
)

const title = "Contacts"

// Options for the CLI. Pass `--port` or set the `SERVICE_PORT` env var.
type Options struct {
	api.ServerOptions
	api.RouterOptions
	api.StoreOptions
	logger.Options
}

func main() {
	version, revision, created := buildInfo()

	var options *Options
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		options = opts
		log := logger.New(&opts.Options)
		srv := api.NewServer(&opts.ServerOptions, nil, log)

		ctx, cancel := context.WithCancel(context.Background())
		hooks.OnStart(func() {
			defer cancel()
			store, watch, err := api.NewStore(&opts.StoreOptions, log)
			if err != nil {
				log.Error("failed to open the store", "err", err)
				return
			}
			if watch != nil {
				go func() {
					if err := watch(ctx); err != nil {
						log.Error("store watcher stopped", "err", err)
					}
				}()
			}

			srv.Handler, _ = api.NewRouter(&opts.RouterOptions, title, version, revision, created, store, log)
			log.Info("server listening", "addr", srv.Addr)
			err = srv.ListenAndServe()
			if !errors.Is(err, http.ErrServerClosed) {
				log.Error("failed to listen and serve", "err", err)
			} else {
				log.Info("server closed")
			}
		})
		hooks.OnStop(func() {
			defer cancel()
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Minute)
			defer shutdownCancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				log.Warn("could not shutdown the server", "err", err)
			}
		})
	})

	cli.Root().Use = "contacts"
	cli.Root().Version = version
	cli.Root().AddCommand(&cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, humaAPI := api.NewRouter(&options.RouterOptions, title, version, revision, created,
				ds.NewContactsInmem(), slog.New(slog.DiscardHandler))
			b, err := humaAPI.OpenAPI().YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(b))
			return err
		},
	})
	cli.Run()
}

// buildInfo reads the module version and the VCS stamp embedded by go build.
func buildInfo() (version, revision, created string) {
	version, revision, created = "(devel)", "unknown", "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if info.Main.Version != "" {
		version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.time":
			created = setting.Value
		}
	}
	return
}
