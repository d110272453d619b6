package api

import (
	"context"
	"log/slog"
	"time"

	ds "github.com/oaiiae/huma-contacts/datastores"
)

type StoreOptions struct {
	StoreFile    string        `doc:"persist contacts to a YAML file, in memory when empty"`
	StoreWatch   bool          `doc:"reload the store file when edited by another process"`
	StoreLatency time.Duration `doc:"delay every store call, to observe pending states" default:"0s"`
	StoreSeed    bool          `doc:"fill an empty store with sample contacts"            default:"true"`
}

// NewStore returns the store configured by options and, when the store file
// is watched, the function running the watcher until its context ends.
func NewStore(options *StoreOptions, logger *slog.Logger) (ds.ContactsStore, func(context.Context) error, error) {
	var seed []*ds.Contact
	if options.StoreSeed {
		seed = ds.SeedContacts()
	}

	var (
		store ds.ContactsStore
		watch func(context.Context) error
	)
	if options.StoreFile == "" {
		store = ds.NewContactsInmem(seed...)
		if options.StoreWatch {
			logger.Warn("store watch ignored without a store file")
		}
	} else {
		file, err := ds.OpenContactsFile(options.StoreFile, logger)
		if err != nil {
			return nil, nil, err
		}
		if len(seed) > 0 {
			if err = file.Seed(seed...); err != nil {
				return nil, nil, err
			}
		}
		logger.Info("store file opened", "path", file.Path(), "contacts", file.Len())
		if options.StoreWatch {
			watch = file.Watch
		}
		store = file
	}

	if options.StoreLatency > 0 {
		store = &ds.ContactsDelayed{Store: store, Latency: options.StoreLatency}
	}
	return store, watch, nil
}
