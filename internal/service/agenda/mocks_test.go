package agenda

import (
	"context"
	"iter"

	"github.com/finiate/finiate/internal/domain"
)

// agendaRepoMock implements agendaRepo with overridable functions.
type agendaRepoMock struct {
	CreateFunc        func(ctx context.Context, a domain.Agenda) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Agenda, error)
	UpdateFunc        func(ctx context.Context, id string, params domain.AgendaUpdateParams) error
	RenameIDFunc      func(ctx context.Context, oldID, newID string) error
	DeleteFunc        func(ctx context.Context, id string) error
	ListFunc          func(ctx context.Context, filter domain.AgendaFilter) iter.Seq2[domain.Agenda, error]
	CountByStatusFunc func(ctx context.Context, status *domain.AgendaStatus) (int64, error)
}

func (m *agendaRepoMock) Create(ctx context.Context, a domain.Agenda) error {
	return m.CreateFunc(ctx, a)
}

func (m *agendaRepoMock) GetByID(ctx context.Context, id string) (*domain.Agenda, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *agendaRepoMock) Update(ctx context.Context, id string, params domain.AgendaUpdateParams) error {
	return m.UpdateFunc(ctx, id, params)
}

func (m *agendaRepoMock) RenameID(ctx context.Context, oldID, newID string) error {
	return m.RenameIDFunc(ctx, oldID, newID)
}

func (m *agendaRepoMock) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *agendaRepoMock) List(ctx context.Context, filter domain.AgendaFilter) iter.Seq2[domain.Agenda, error] {
	return m.ListFunc(ctx, filter)
}

func (m *agendaRepoMock) CountByStatus(ctx context.Context, status *domain.AgendaStatus) (int64, error) {
	return m.CountByStatusFunc(ctx, status)
}

// logRefsMock implements logRefMaintainer.
type logRefsMock struct {
	ClearAgendaRefFunc   func(ctx context.Context, agendaID string) (int64, error)
	RewriteAgendaRefFunc func(ctx context.Context, oldID, newID string) (int64, error)
}

func (m *logRefsMock) ClearAgendaRef(ctx context.Context, agendaID string) (int64, error) {
	return m.ClearAgendaRefFunc(ctx, agendaID)
}

func (m *logRefsMock) RewriteAgendaRef(ctx context.Context, oldID, newID string) (int64, error) {
	return m.RewriteAgendaRefFunc(ctx, oldID, newID)
}

// txManagerMock implements txManager.
type txManagerMock struct {
	RunInSerializableTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *txManagerMock) RunInSerializableTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.RunInSerializableTxFunc(ctx, fn)
}

// defaultTxMock returns a txManagerMock that simply calls the function with
// the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInSerializableTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}
