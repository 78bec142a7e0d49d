// Package datacache keeps an in-memory working copy of the admin
// collections for the lifetime of a session. It loads everything in one
// concurrent fan-out at login, serves reads from memory, applies mutations
// through the API and resynchronizes whenever a write fails so the cache
// never drifts from the server.
package datacache

import (
	"context"
	"errors"
	"sync"

	"github.com/IsPeeves/lumenixorg/internal/validation"
	"github.com/IsPeeves/lumenixorg/models"
)

var (
	// ErrPartialFailure means at least one collection loaded and at least
	// one did not. The loaded collections stay usable.
	ErrPartialFailure = errors.New("some collections failed to load")
	// ErrTotalFailure means no collection loaded at all.
	ErrTotalFailure = errors.New("all collections failed to load")
)

// Collection names one of the cached data sets.
type Collection string

const (
	CollectionClients  Collection = "clients"
	CollectionExpenses Collection = "expenses"
	CollectionProjects Collection = "projects"
)

// API is the backend the store loads from and writes through.
// apiclient.Client satisfies it.
type API interface {
	ListClients(ctx context.Context) ([]models.Client, error)
	CreateClient(ctx context.Context, in validation.ClientInput) (models.Client, error)
	UpdateClient(ctx context.Context, id uint, in validation.ClientInput) (models.Client, error)
	DeleteClient(ctx context.Context, id uint) error

	ListExpenses(ctx context.Context) ([]models.Expense, error)
	CreateExpense(ctx context.Context, in validation.ExpenseInput) (models.Expense, error)
	UpdateExpense(ctx context.Context, id uint, in validation.ExpenseInput) (models.Expense, error)
	DeleteExpense(ctx context.Context, id uint) error

	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, in validation.ProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id uint, in validation.ProjectInput) (models.Project, error)
	DeleteProject(ctx context.Context, id uint) error
	ReorderProjects(ctx context.Context, orders []validation.ProjectOrderInput) ([]models.Project, error)
}

// State reports how fresh a collection is.
type State int

const (
	StateEmpty State = iota
	StateLoaded
	StateFailed
)

// Store is safe for concurrent use.
type Store struct {
	api API

	mu       sync.RWMutex
	clients  []models.Client
	expenses []models.Expense
	projects []models.Project
	states   map[Collection]State
	loadErrs map[Collection]error
}

func New(api API) *Store {
	return &Store{
		api:      api,
		states:   map[Collection]State{},
		loadErrs: map[Collection]error{},
	}
}

// OnSessionStart loads every collection concurrently. Each fetch succeeds
// or fails on its own; one broken endpoint never blocks the others.
func (s *Store) OnSessionStart(ctx context.Context) error {
	return s.loadAll(ctx)
}

// Refetch reloads every collection from the server, replacing whatever the
// cache currently holds.
func (s *Store) Refetch(ctx context.Context) error {
	return s.loadAll(ctx)
}

func (s *Store) loadAll(ctx context.Context) error {
	var (
		wg       sync.WaitGroup
		clients  []models.Client
		expenses []models.Expense
		projects []models.Project
		errs     = map[Collection]error{}
		errMu    sync.Mutex
	)

	fail := func(c Collection, err error) {
		errMu.Lock()
		errs[c] = err
		errMu.Unlock()
	}

	wg.Add(3)
	go func() {
		defer wg.Done()
		out, err := s.api.ListClients(ctx)
		if err != nil {
			fail(CollectionClients, err)
			return
		}
		clients = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.api.ListExpenses(ctx)
		if err != nil {
			fail(CollectionExpenses, err)
			return
		}
		expenses = out
	}()
	go func() {
		defer wg.Done()
		out, err := s.api.ListProjects(ctx)
		if err != nil {
			fail(CollectionProjects, err)
			return
		}
		projects = out
	}()
	wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range []Collection{CollectionClients, CollectionExpenses, CollectionProjects} {
		if err, ok := errs[c]; ok {
			s.states[c] = StateFailed
			s.loadErrs[c] = err
			continue
		}
		s.states[c] = StateLoaded
		delete(s.loadErrs, c)
	}
	if _, ok := errs[CollectionClients]; !ok {
		s.clients = clients
	}
	if _, ok := errs[CollectionExpenses]; !ok {
		s.expenses = expenses
	}
	if _, ok := errs[CollectionProjects]; !ok {
		s.projects = projects
	}

	switch len(errs) {
	case 0:
		return nil
	case 3:
		return ErrTotalFailure
	default:
		return ErrPartialFailure
	}
}

// OnSessionEnd drops everything the cache holds.
func (s *Store) OnSessionEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clients = nil
	s.expenses = nil
	s.projects = nil
	s.states = map[Collection]State{}
	s.loadErrs = map[Collection]error{}
}

// CollectionState reports a collection's load state and, if it failed,
// the error that broke it.
func (s *Store) CollectionState(c Collection) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[c], s.loadErrs[c]
}

// Clients returns a copy of the cached client list.
func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

// Expenses returns a copy of the cached expense list.
func (s *Store) Expenses() []models.Expense {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Projects returns a copy of the cached project list.
func (s *Store) Projects() []models.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// resync pulls everything fresh after a failed write. The write error is
// what the caller cares about, so resync problems only surface through the
// collection states.
func (s *Store) resync(ctx context.Context, err error) error {
	_ = s.Refetch(ctx)
	return err
}

func (s *Store) CreateClient(ctx context.Context, in validation.ClientInput) (models.Client, error) {
	created, err := s.api.CreateClient(ctx, in)
	if err != nil {
		return models.Client{}, s.resync(ctx, err)
	}
	s.mu.Lock()
	s.clients = append([]models.Client{created}, s.clients...)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateClient(ctx context.Context, id uint, in validation.ClientInput) (models.Client, error) {
	updated, err := s.api.UpdateClient(ctx, id, in)
	if err != nil {
		return models.Client{}, s.resync(ctx, err)
	}
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteClient(ctx context.Context, id uint) error {
	if err := s.api.DeleteClient(ctx, id); err != nil {
		return s.resync(ctx, err)
	}
	s.mu.Lock()
	for i := range s.clients {
		if s.clients[i].ID == id {
			s.clients = append(s.clients[:i], s.clients[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateExpense(ctx context.Context, in validation.ExpenseInput) (models.Expense, error) {
	created, err := s.api.CreateExpense(ctx, in)
	if err != nil {
		return models.Expense{}, s.resync(ctx, err)
	}
	s.mu.Lock()
	s.expenses = append([]models.Expense{created}, s.expenses...)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateExpense(ctx context.Context, id uint, in validation.ExpenseInput) (models.Expense, error) {
	updated, err := s.api.UpdateExpense(ctx, id, in)
	if err != nil {
		return models.Expense{}, s.resync(ctx, err)
	}
	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uint) error {
	if err := s.api.DeleteExpense(ctx, id); err != nil {
		return s.resync(ctx, err)
	}
	s.mu.Lock()
	for i := range s.expenses {
		if s.expenses[i].ID == id {
			s.expenses = append(s.expenses[:i], s.expenses[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *Store) CreateProject(ctx context.Context, in validation.ProjectInput) (models.Project, error) {
	created, err := s.api.CreateProject(ctx, in)
	if err != nil {
		return models.Project{}, s.resync(ctx, err)
	}
	s.mu.Lock()
	s.projects = append(s.projects, created)
	s.mu.Unlock()
	return created, nil
}

func (s *Store) UpdateProject(ctx context.Context, id uint, in validation.ProjectInput) (models.Project, error) {
	updated, err := s.api.UpdateProject(ctx, id, in)
	if err != nil {
		return models.Project{}, s.resync(ctx, err)
	}
	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects[i] = updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

func (s *Store) DeleteProject(ctx context.Context, id uint) error {
	if err := s.api.DeleteProject(ctx, id); err != nil {
		return s.resync(ctx, err)
	}
	s.mu.Lock()
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	return nil
}

// ReorderProjects applies a bulk order change and replaces the cached
// project list with the listing the server returns.
func (s *Store) ReorderProjects(ctx context.Context, orders []validation.ProjectOrderInput) ([]models.Project, error) {
	listing, err := s.api.ReorderProjects(ctx, orders)
	if err != nil {
		return nil, s.resync(ctx, err)
	}
	s.mu.Lock()
	s.projects = listing
	s.mu.Unlock()
	return listing, nil
}
