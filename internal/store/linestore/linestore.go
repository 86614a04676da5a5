package linestore

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todos/internal/codec"
	"github.com/idilsaglam/todos/internal/model"
)

// Line-oriented storage. Single file, one task per line, see package codec.
// No locking; the invoking process owns the file for one command.

// DefaultFileName is the store file looked up in the working directory.
const DefaultFileName = ".todos"

// Store loads and saves the full task list at a fixed path.
type Store struct {
	path string
	log  *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for unparseable-line warnings.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a Store backed by path. Warnings go to stderr unless
// WithLogger says otherwise.
func New(path string, opts ...Option) *Store {
	s := &Store{path: path}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = NewLogger(os.Stderr)
	}
	return s
}

// NewLogger returns the warning logger used by the store.
func NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:  log.WarnLevel,
		Prefix: "todo",
	})
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Load reads every task from the file. A missing file is an empty store.
// Lines that fail to decode are logged and skipped.
func (s *Store) Load() ([]model.Task, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Task{}, nil
		}
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	tasks := []model.Task{}
	r := bufio.NewReader(f)
	for lineno := 1; ; lineno++ {
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read %s: %w", s.path, err)
		}
		eof := err != nil

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			t, derr := codec.Decode(line)
			if derr != nil {
				s.log.Warn("couldn't parse line", "lineno", lineno, "line", line, "err", derr)
			} else {
				tasks = append(tasks, t)
			}
		}
		if eof {
			break
		}
	}
	return tasks, nil
}

// Save replaces the file with tasks, one encoded record per line. The
// data is written to a temp file in the same directory and renamed over
// the target, so readers never see a partial file. An existing file keeps
// its permission bits; a new one gets 0644.
func (s *Store) Save(tasks []model.Task) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	w := bufio.NewWriter(tmp)
	for _, t := range tasks {
		if _, err := w.WriteString(codec.Encode(t) + "\n"); err != nil {
			return fmt.Errorf("write temp file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	mode := os.FileMode(0o644)
	if fi, err := os.Stat(s.path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename temp file to %s: %w", s.path, err)
	}

	success = true
	return nil
}

// Remove deletes the backing file. A missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("remove %s: %w", s.path, err)
	}
	return nil
}
