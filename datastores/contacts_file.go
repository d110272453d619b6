package datastores

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ContactsFile implements [ContactsStore] with an in-memory store that is
// written to a YAML file after every mutation.
type ContactsFile struct {
	mem    *ContactsInmem
	path   string
	logger *slog.Logger

	mu      sync.Mutex // held across a mutation and its save, and across reloads
	written []byte     // last content read from or written to path
}

var _ ContactsStore = (*ContactsFile)(nil)

type contactsDocument struct {
	Contacts []contactRecord `yaml:"contacts"`
}

type contactRecord struct {
	ID        string    `yaml:"id"`
	First     string    `yaml:"first,omitempty"`
	Last      string    `yaml:"last,omitempty"`
	Twitter   string    `yaml:"twitter,omitempty"`
	Avatar    string    `yaml:"avatar,omitempty"`
	Notes     string    `yaml:"notes,omitempty"`
	Favorite  bool      `yaml:"favorite,omitempty"`
	CreatedAt time.Time `yaml:"createdAt"`
}

// OpenContactsFile loads the contacts stored at path. A missing file is an
// empty store; it is created by the first mutation.
func OpenContactsFile(path string, logger *slog.Logger) (*ContactsFile, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &ContactsFile{mem: NewContactsInmem(), path: filepath.Clean(path), logger: logger}
	_, err := s.reload()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

func (s *ContactsFile) Path() string { return s.path }

func (s *ContactsFile) Len() int { return s.mem.Len() }

// Seed stores cs and saves the file, unless the store already holds contacts.
func (s *ContactsFile) Seed(cs ...*Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mem.Len() > 0 {
		return nil
	}
	s.mem.Replace(cs)
	return s.save()
}

// reload must be called with s.mu held. It reports whether the store changed.
func (s *ContactsFile) reload() (bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false, err
	}
	if bytes.Equal(data, s.written) {
		return false, nil
	}

	var doc contactsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", s.path, err)
	}
	cs := make([]*Contact, 0, len(doc.Contacts))
	for _, r := range doc.Contacts {
		cs = append(cs, &Contact{
			ID:        r.ID,
			First:     r.First,
			Last:      r.Last,
			Twitter:   r.Twitter,
			Avatar:    r.Avatar,
			Notes:     r.Notes,
			Favorite:  r.Favorite,
			CreatedAt: r.CreatedAt,
		})
	}
	s.mem.Replace(cs)
	s.written = data
	return true, nil
}

// save must be called with s.mu held.
func (s *ContactsFile) save() error {
	contacts := s.mem.Snapshot()
	doc := contactsDocument{Contacts: make([]contactRecord, 0, len(contacts))}
	for _, c := range contacts {
		doc.Contacts = append(doc.Contacts, contactRecord{
			ID:        c.ID,
			First:     c.First,
			Last:      c.Last,
			Twitter:   c.Twitter,
			Avatar:    c.Avatar,
			Notes:     c.Notes,
			Favorite:  c.Favorite,
			CreatedAt: c.CreatedAt,
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := writeFileAtomic(s.path, data, 0o600); err != nil {
		return err
	}
	s.written = data
	return nil
}

func (s *ContactsFile) List(ctx context.Context, query string) ([]*Contact, error) {
	return s.mem.List(ctx, query)
}

func (s *ContactsFile) Get(ctx context.Context, id ContactID) (*Contact, error) {
	return s.mem.Get(ctx, id)
}

// commit saves the store after a mutation, restoring prev when the save
// fails. It must be called with s.mu held.
func (s *ContactsFile) commit(prev []*Contact) error {
	if err := s.save(); err != nil {
		s.mem.Replace(prev)
		return err
	}
	return nil
}

func (s *ContactsFile) Create(ctx context.Context) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.mem.Snapshot()
	c, err := s.mem.Create(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.commit(prev); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactsFile) Update(ctx context.Context, id ContactID, u *ContactUpdate) (*Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.mem.Snapshot()
	c, err := s.mem.Update(ctx, id, u)
	if err != nil {
		return nil, err
	}
	if err := s.commit(prev); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *ContactsFile) Delete(ctx context.Context, id ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.mem.Snapshot()
	if err := s.mem.Delete(ctx, id); err != nil {
		return err
	}
	return s.commit(prev)
}

// Watch reloads the store whenever the file is written by another process.
// It blocks until ctx is done.
func (s *ContactsFile) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Atomic writes replace the file, so the directory is watched instead.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != s.path || !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.mu.Lock()
			changed, err := s.reload()
			s.mu.Unlock()
			switch {
			case err != nil:
				s.logger.Warn("could not reload contacts file", "path", s.path, "err", err)
			case changed:
				s.logger.Info("contacts file reloaded", "path", s.path, "contacts", s.mem.Len())
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("contacts file watcher error", "err", err)
		}
	}
}
