package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"payment_service/internal/domain/entities"
	"payment_service/internal/domain/failure"
	"payment_service/internal/infrastructure/serialization"
	"payment_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// Fixed width so created_at orders correctly as text.
const sortableTime = "2006-01-02T15:04:05.000000000Z"

// PaymentSQLiteRepository keeps the redacted JSON document next to the
// columns it is queried by.
type PaymentSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IPaymentRepository = (*PaymentSQLiteRepository)(nil)

func NewPaymentSQLiteRepository(db *sql.DB) *PaymentSQLiteRepository {
	return &PaymentSQLiteRepository{db: db}
}

func (r *PaymentSQLiteRepository) Save(ctx context.Context, p entities.PaymentMethod) (entities.PaymentMethod, error) {
	doc := serialization.ToDocument(p)
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, failure.Conversion("encode payment", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO payments
		 (id, payment_type, status, customer_id, order_id, created_at, updated_at, document)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   status = excluded.status,
		   updated_at = excluded.updated_at,
		   document = excluded.document`,
		doc.ID,
		doc.PaymentType,
		doc.Status,
		doc.CustomerID,
		doc.OrderID,
		p.Envelope().CreatedAt.UTC().Format(sortableTime),
		p.Envelope().UpdatedAt.UTC().Format(sortableTime),
		string(raw),
	)
	if err != nil {
		return nil, err
	}
	return serialization.FromDocument(doc)
}

func (r *PaymentSQLiteRepository) FindByID(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	row := r.db.QueryRowContext(ctx, `SELECT document FROM payments WHERE id = ?`, id.String())
	return scanOne(row)
}

func (r *PaymentSQLiteRepository) FindEligibleForCancel(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	return r.findEligible(ctx, id)
}

func (r *PaymentSQLiteRepository) FindEligibleForRefund(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	return r.findEligible(ctx, id)
}

func (r *PaymentSQLiteRepository) findEligible(ctx context.Context, id uuid.UUID) (entities.PaymentMethod, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT document FROM payments WHERE id = ? AND status IN (?, ?)`,
		id.String(),
		string(entities.PaymentStatusProcessing),
		string(entities.PaymentStatusCompleted),
	)
	return scanOne(row)
}

func (r *PaymentSQLiteRepository) FindByOrderID(ctx context.Context, orderID string) ([]entities.PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT document FROM payments WHERE order_id = ? ORDER BY created_at, id`, orderID)
	if err != nil {
		return nil, err
	}
	return scanAll(rows)
}

func (r *PaymentSQLiteRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]entities.PaymentMethod, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT document FROM payments WHERE customer_id = ? ORDER BY created_at, id`, customerID.String())
	if err != nil {
		return nil, err
	}
	return scanAll(rows)
}

func (r *PaymentSQLiteRepository) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payments`).Scan(&n)
	return n, err
}

func (r *PaymentSQLiteRepository) FindPage(ctx context.Context, size, offset int) ([]entities.PaymentMethod, error) {
	if size <= 0 {
		return []entities.PaymentMethod{}, nil
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT document FROM payments ORDER BY created_at DESC, id LIMIT ? OFFSET ?`, size, offset)
	if err != nil {
		return nil, err
	}
	return scanAll(rows)
}

func scanOne(row *sql.Row) (entities.PaymentMethod, error) {
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return serialization.Unmarshal([]byte(raw))
}

func scanAll(rows *sql.Rows) ([]entities.PaymentMethod, error) {
	defer rows.Close()

	items := make([]entities.PaymentMethod, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		p, err := serialization.Unmarshal([]byte(raw))
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}
