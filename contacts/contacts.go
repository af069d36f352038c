package contacts

import (
	"errors"
	"os"

	"github.com/0xRadioAc7iv/go-contacts/core"
)

// Open builds a Store from opts, takes its lock if requested and loads the
// backing file. A missing file is not an error; the store starts empty and
// the file is created by the first Add. Any other load failure closes the
// store and is returned, so a damaged file is never silently overwritten.
func Open(opts ...Option) (*core.Store, error) {
	cfg := &config{
		file:     core.DefaultFileName,
		autoLoad: true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	store := &core.Store{
		FilePath:  cfg.file,
		Exclusive: cfg.exclusive,
		Logger:    cfg.logger,
	}

	if err := store.Open(); err != nil {
		return nil, err
	}

	if !cfg.autoLoad {
		return store, nil
	}

	if _, err := store.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		store.Close()
		return nil, err
	}

	return store, nil
}
