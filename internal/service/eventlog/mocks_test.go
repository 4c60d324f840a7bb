package eventlog

import (
	"context"
	"iter"

	"github.com/finiate/finiate/internal/domain"
)

type iterSeq = iter.Seq2[domain.Log, error]

type logRepoMock struct {
	CreateFunc       func(ctx context.Context, l domain.Log) error
	GetByIDFunc      func(ctx context.Context, id string) (*domain.Log, error)
	DeleteFunc       func(ctx context.Context, id string) error
	ListByAgendaFunc func(ctx context.Context, agendaID string) iter.Seq2[domain.Log, error]
	ListByRangeFunc  func(ctx context.Context, from, to int64) iter.Seq2[domain.Log, error]
}

func (m *logRepoMock) Create(ctx context.Context, l domain.Log) error {
	return m.CreateFunc(ctx, l)
}

func (m *logRepoMock) GetByID(ctx context.Context, id string) (*domain.Log, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *logRepoMock) Delete(ctx context.Context, id string) error {
	return m.DeleteFunc(ctx, id)
}

func (m *logRepoMock) ListByAgenda(ctx context.Context, agendaID string) iter.Seq2[domain.Log, error] {
	return m.ListByAgendaFunc(ctx, agendaID)
}

func (m *logRepoMock) ListByRange(ctx context.Context, from, to int64) iter.Seq2[domain.Log, error] {
	return m.ListByRangeFunc(ctx, from, to)
}

func logsOf(logs ...domain.Log) iter.Seq2[domain.Log, error] {
	return func(yield func(domain.Log, error) bool) {
		for _, l := range logs {
			if !yield(l, nil) {
				return
			}
		}
	}
}
