package tests

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"restaurant-ordering/order-svc/internal/cart"
	"restaurant-ordering/order-svc/internal/domain"
	"restaurant-ordering/order-svc/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDocumentsDB(t *testing.T) (*storage.PostgresDocuments, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewPostgresDocuments(db), mock
}

func TestPostgresDocuments_EnsureSchema(t *testing.T) {
	docs, mock := setupDocumentsDB(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS documents").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS documents_created_idx").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, docs.EnsureSchema(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDocuments_Get(t *testing.T) {
	ctx := context.Background()
	docs, mock := setupDocumentsDB(t)
	now := time.Now()

	mock.ExpectQuery("SELECT data, created_at, updated_at").
		WithArgs("tables", "t1").
		WillReturnRows(sqlmock.NewRows([]string{"data", "created_at", "updated_at"}).
			AddRow(`{"name":"Mesa 1","capacity":4,"available":true}`, now, now))
	mock.ExpectQuery("SELECT data, created_at, updated_at").
		WithArgs("tables", "missing").
		WillReturnError(sql.ErrNoRows)

	doc, err := docs.Get(ctx, "tables", "t1")
	require.NoError(t, err)
	var table domain.Table
	require.NoError(t, doc.Decode(&table))
	assert.Equal(t, "Mesa 1", table.Name)
	assert.True(t, table.Available)

	_, err = docs.Get(ctx, "tables", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDocuments_Set(t *testing.T) {
	ctx := context.Background()
	docs, mock := setupDocumentsDB(t)

	mock.ExpectExec(`DO UPDATE SET data = EXCLUDED.data,`).
		WithArgs("tables", "t1", `{"id":"t1","name":"Mesa 1","capacity":4,"available":true}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DO UPDATE SET data = documents.data \|\| EXCLUDED.data`).
		WithArgs("tables", "t1", `{"available":false}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, docs.Set(ctx, "tables", "t1", domain.Table{ID: "t1", Name: "Mesa 1", Capacity: 4, Available: true}, false))
	require.NoError(t, docs.Set(ctx, "tables", "t1", map[string]any{"available": false}, true))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDocuments_Create(t *testing.T) {
	ctx := context.Background()
	docs, mock := setupDocumentsDB(t)

	mock.ExpectExec("ON CONFLICT \\(collection, id\\) DO NOTHING").
		WithArgs("emails", "ana@example.com", `{"user_id":"u1"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("ON CONFLICT \\(collection, id\\) DO NOTHING").
		WithArgs("emails", "ana@example.com", `{"user_id":"u2"}`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, docs.Create(ctx, "emails", "ana@example.com", map[string]string{"user_id": "u1"}))
	assert.ErrorIs(t, docs.Create(ctx, "emails", "ana@example.com", map[string]string{"user_id": "u2"}), domain.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDocuments_Add(t *testing.T) {
	docs, mock := setupDocumentsDB(t)
	mock.ExpectExec("INSERT INTO documents").
		WithArgs("users/u1/orders", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	id, err := docs.Add(context.Background(), "users/u1/orders", domain.Order{UserID: "u1"})
	require.NoError(t, err)
	assert.Len(t, id, 36)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDocuments_ListGroup(t *testing.T) {
	docs, mock := setupDocumentsDB(t)
	now := time.Now()

	mock.ExpectQuery(`WHERE collection = \$1 OR collection LIKE '%/' \|\| \$1`).
		WithArgs("orders").
		WillReturnRows(sqlmock.NewRows([]string{"collection", "id", "data", "created_at", "updated_at"}).
			AddRow("users/u1/orders", "o1", []byte(`{"status":"pending"}`), now, now).
			AddRow("users/u2/orders", "o2", []byte(`{"status":"delivered"}`), now, now))

	found, err := docs.ListGroup(context.Background(), "orders")
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.Equal(t, "users/u2/orders", found[1].Collection)
	assert.JSONEq(t, `{"status":"delivered"}`, string(found[1].Data))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDocuments_Delete(t *testing.T) {
	ctx := context.Background()
	docs, mock := setupDocumentsDB(t)
	mock.ExpectExec("DELETE FROM documents").WithArgs("menu/postres", "flan").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM documents").WithArgs("menu/postres", "flan").WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, docs.Delete(ctx, "menu/postres", "flan"))
	assert.ErrorIs(t, docs.Delete(ctx, "menu/postres", "flan"), domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDocuments_UpdateIf(t *testing.T) {
	ctx := context.Background()
	docs, mock := setupDocumentsDB(t)

	tests := []struct {
		name     string
		affected int64
		want     bool
	}{
		{name: "field matched", affected: 1, want: true},
		{name: "field changed meanwhile", affected: 0, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mock.ExpectExec(`UPDATE documents\s+SET data = data \|\| \$5::jsonb`).
				WithArgs("tables", "t1", "available", "true", `{"available":false}`, sqlmock.AnyArg()).
				WillReturnResult(sqlmock.NewResult(0, testCase.affected))

			ok, err := docs.UpdateIf(ctx, "tables", "t1", "available", true, map[string]any{"available": false})
			require.NoError(t, err)
			assert.Equal(t, testCase.want, ok)
		})
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisCartStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := storage.NewRedisCartStore(client, 30*time.Minute)

	empty, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	require.NoError(t, store.Save(ctx, "s1", paellaCart()))
	assert.True(t, mr.Exists("cart:s1"))
	assert.Equal(t, 30*time.Minute, mr.TTL("cart:s1"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, loaded.Quantity(domain.CategoryMains, "paella"))
	assert.Equal(t, "43.00", loaded.Total().StringFixed(2))

	other, err := store.Load(ctx, "s2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())

	require.NoError(t, store.Save(ctx, "s1", cart.New()))
	assert.False(t, mr.Exists("cart:s1"))

	require.NoError(t, store.Save(ctx, "s1", paellaCart()))
	require.NoError(t, store.Clear(ctx, "s1"))
	assert.False(t, mr.Exists("cart:s1"))
}

func TestRedisSessionStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := storage.NewRedisSessionStore(client)

	revoked, err := store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, store.Revoke(ctx, "s1", time.Now().Add(time.Hour)))
	revoked, err = store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, revoked)

	require.NoError(t, store.Revoke(ctx, "s2", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("session:revoked:s2"))

	mr.FastForward(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

type recordingWriter struct {
	messages []kafka.Message
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return nil
}

func TestKafkaPublisher_PublishOrder(t *testing.T) {
	writer := &recordingWriter{}
	publisher := storage.NewKafkaPublisher(writer)

	event := domain.OrderEvent{Type: domain.OrderCreatedEvent, OrderID: "o1", UserID: "u1", CustomerName: "Ana", ItemCount: 3}
	require.NoError(t, publisher.PublishOrder(context.Background(), event))

	require.Len(t, writer.messages, 1)
	assert.Equal(t, "o1", string(writer.messages[0].Key))

	var decoded domain.OrderEvent
	require.NoError(t, json.Unmarshal(writer.messages[0].Value, &decoded))
	assert.Equal(t, "order.created", decoded.Type)
	assert.Equal(t, 3, decoded.ItemCount)
}
