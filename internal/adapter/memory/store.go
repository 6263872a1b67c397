package memory

import (
	"context"
	"fmt"
	"sync"

	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
)

// Store implements port.CampaignRepository in memory. Registry appends are
// serialised by one insertion lock; each campaign has its own lock so
// mutations of different campaigns proceed independently.
type Store struct {
	token *Token

	mu        sync.RWMutex
	nextID    int64
	order     []*entry
	byAddr    map[domain.Address]*entry
	byCreator map[domain.Address][]*entry
}

type entry struct {
	mu        sync.Mutex
	c         domain.Campaign
	donations map[domain.Address]domain.Amount
	donors    []domain.Address
}

// NewStore returns an empty registry whose campaigns hold funds on token.
func NewStore(token *Token) *Store {
	return &Store{
		token:     token,
		byAddr:    map[domain.Address]*entry{},
		byCreator: map[domain.Address][]*entry{},
	}
}

var _ port.CampaignRepository = (*Store)(nil)

func (s *Store) Create(_ context.Context, c *domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byAddr[c.Address]; ok {
		return fmt.Errorf("campaign %s already registered", c.Address)
	}
	s.nextID++
	c.ID = s.nextID
	e := &entry{c: *c, donations: map[domain.Address]domain.Amount{}}
	s.order = append(s.order, e)
	s.byAddr[c.Address] = e
	s.byCreator[c.Creator] = append(s.byCreator[c.Creator], e)
	return nil
}

func (s *Store) lookup(ref domain.Address) (*entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.byAddr[ref]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCampaignNotFound, ref)
	}
	return e, nil
}

func (s *Store) Get(_ context.Context, ref domain.Address) (domain.Campaign, error) {
	e, err := s.lookup(ref)
	if err != nil {
		return domain.Campaign{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.c, nil
}

func (s *Store) List(_ context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	s.mu.RLock()
	src := s.order
	if !filter.Creator.IsZero() {
		src = s.byCreator[filter.Creator]
	}
	entries := make([]*entry, len(src))
	copy(entries, src)
	s.mu.RUnlock()

	out := make([]domain.Campaign, 0, len(entries))
	for _, e := range entries {
		e.mu.Lock()
		c := e.c
		e.mu.Unlock()
		if filter.ActiveOnly && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.order)), nil
}

func (s *Store) DonationOf(_ context.Context, ref, donor domain.Address) (domain.Amount, error) {
	e, err := s.lookup(ref)
	if err != nil {
		return 0, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.donations[donor], nil
}

func (s *Store) Donors(_ context.Context, ref domain.Address, page domain.Page) ([]domain.DonorTotal, error) {
	page, err := page.Normalize()
	if err != nil {
		return nil, err
	}
	e, err := s.lookup(ref)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if page.Offset >= len(e.donors) {
		return []domain.DonorTotal{}, nil
	}
	end := min(page.Offset+page.Limit, len(e.donors))
	out := make([]domain.DonorTotal, 0, end-page.Offset)
	for _, d := range e.donors[page.Offset:end] {
		out = append(out, domain.DonorTotal{Donor: d, Amount: e.donations[d]})
	}
	return out, nil
}

func (s *Store) Update(ctx context.Context, ref domain.Address, fn func(ctx context.Context, tx port.LedgerTx) error) error {
	e, err := s.lookup(ref)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	tx := &ledgerTx{
		entry:   e,
		c:       e.c,
		token:   s.token.begin(),
		credits: map[domain.Address]domain.Amount{},
	}
	if err = fn(ctx, tx); err != nil {
		return err
	}
	if err = tx.token.commit(); err != nil {
		return err
	}
	e.donors = append(e.donors, tx.newDonors...)
	for d, amount := range tx.credits {
		e.donations[d] += amount
	}
	e.c = tx.c
	return nil
}

// ledgerTx stages campaign changes until Update commits them.
type ledgerTx struct {
	entry     *entry
	c         domain.Campaign
	token     *tokenTx
	credits   map[domain.Address]domain.Amount
	newDonors []domain.Address
}

func (tx *ledgerTx) Campaign() *domain.Campaign { return &tx.c }

func (tx *ledgerTx) Token() port.Token { return tx.token }

func (tx *ledgerTx) Credit(_ context.Context, donor domain.Address, amount domain.Amount) (domain.Amount, bool, error) {
	if amount <= 0 {
		return 0, false, domain.ErrInvalidAmount
	}
	prev, existed := tx.entry.donations[donor]
	staged, stagedBefore := tx.credits[donor]
	first := !existed && !stagedBefore
	if first {
		tx.newDonors = append(tx.newDonors, donor)
	}
	tx.credits[donor] = staged + amount
	return prev + staged + amount, first, nil
}
