package service

import (
	"context"
	"sort"
	"strings"

	"restaurant-ordering/order-svc/internal/domain"

	"github.com/sirupsen/logrus"
)

type TableService struct {
	store DocumentStore
	log   *logrus.Entry
}

func NewTableService(store DocumentStore, log *logrus.Entry) *TableService {
	return &TableService{store: store, log: log}
}

func (s *TableService) List(ctx context.Context) ([]domain.Table, error) {
	docs, err := s.store.List(ctx, tablesCollection)
	if err != nil {
		return nil, unavailable("list tables", err)
	}

	tables := make([]domain.Table, 0, len(docs))
	for _, doc := range docs {
		var table domain.Table
		if err := doc.Decode(&table); err != nil {
			continue
		}
		table.ID = doc.ID
		tables = append(tables, table)
	}
	sort.SliceStable(tables, func(i, j int) bool { return tables[i].Name < tables[j].Name })
	return tables, nil
}

func (s *TableService) get(ctx context.Context, tableID string) (*domain.Table, error) {
	doc, err := s.store.Get(ctx, tablesCollection, tableID)
	if err != nil {
		return nil, unavailable("get table", err)
	}
	var table domain.Table
	if err := doc.Decode(&table); err != nil {
		return nil, unavailable("decode table", err)
	}
	table.ID = doc.ID
	return &table, nil
}

// Create adds a table, or replaces it when table.ID is already set.
func (s *TableService) Create(ctx context.Context, sess *domain.Session, table *domain.Table) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	table.Name = strings.TrimSpace(table.Name)
	if table.Name == "" || table.Capacity < 1 {
		return ErrInvalidTable
	}

	if table.ID == "" {
		id, err := s.store.Add(ctx, tablesCollection, table)
		if err != nil {
			return unavailable("create table", err)
		}
		table.ID = id
		return nil
	}
	return unavailable("create table", s.store.Set(ctx, tablesCollection, table.ID, table, false))
}

// Select marks an available table as taken. The flag is flipped with a
// compare-and-set so two customers racing for the same table cannot both
// win; the loser gets ErrTableUnavailable and the record is not touched.
func (s *TableService) Select(ctx context.Context, sess *domain.Session, tableID string) (*domain.Table, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	ok, err := s.store.UpdateIf(ctx, tablesCollection, tableID, "available", true, map[string]any{"available": false})
	if err != nil {
		return nil, unavailable("select table", err)
	}
	if !ok {
		if _, err := s.get(ctx, tableID); err != nil {
			return nil, err
		}
		return nil, ErrTableUnavailable
	}

	table, err := s.get(ctx, tableID)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"table_id": tableID, "user_id": sess.UserID}).Info("table selected")
	return table, nil
}

func (s *TableService) SetAvailability(ctx context.Context, sess *domain.Session, tableID string, available bool) (*domain.Table, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if _, err := s.get(ctx, tableID); err != nil {
		return nil, err
	}

	patch := map[string]any{"available": available}
	if err := s.store.Set(ctx, tablesCollection, tableID, patch, true); err != nil {
		return nil, unavailable("set table availability", err)
	}
	return s.get(ctx, tableID)
}

var _ TableServiceInterface = (*TableService)(nil)

