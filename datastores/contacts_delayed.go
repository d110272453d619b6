package datastores

import (
	"context"
	"time"
)

// ContactsDelayed implements [ContactsStore] by waiting Latency before
// every call to Store. It simulates a slow backend.
type ContactsDelayed struct {
	Store   ContactsStore
	Latency time.Duration
}

var _ ContactsStore = (*ContactsDelayed)(nil)

func (s *ContactsDelayed) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (s *ContactsDelayed) List(ctx context.Context, query string) ([]*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.Store.List(ctx, query)
}

func (s *ContactsDelayed) Get(ctx context.Context, id ContactID) (*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.Store.Get(ctx, id)
}

func (s *ContactsDelayed) Create(ctx context.Context) (*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.Store.Create(ctx)
}

func (s *ContactsDelayed) Update(ctx context.Context, id ContactID, u *ContactUpdate) (*Contact, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.Store.Update(ctx, id, u)
}

func (s *ContactsDelayed) Delete(ctx context.Context, id ContactID) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	return s.Store.Delete(ctx, id)
}
