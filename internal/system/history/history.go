// Released under an MIT license. See LICENSE.

// Package history loads and saves the interactive history file.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Path returns the location of the history file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), ".ratscheme_history")
}

// Load passes the contents of the history file at path to read.
// A missing file is not an error.
func Load(path string, read func(r io.Reader) (int, error)) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	defer f.Close()

	if err := lock(f, false); err != nil {
		return err
	}

	defer unlock(f) //nolint:errcheck

	_, err = read(f)

	return err
}

// Save replaces the contents of the history file at path with what write
// produces.
func Save(path string, write func(w io.Writer) (int, error)) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}

	if err := lock(f, true); err != nil {
		f.Close()

		return err
	}

	// Truncate only once the lock is held.
	if err = f.Truncate(0); err == nil {
		_, err = write(f)
	}

	uerr := unlock(f)
	cerr := f.Close()

	switch {
	case err != nil:
		return err
	case uerr != nil:
		return uerr
	}

	return cerr
}
