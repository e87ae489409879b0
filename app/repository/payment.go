package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/realguide/backend/app/entity"
)

var ErrPaymentAlreadyExists = errors.New("payment already exists")

type PaymentRepository struct {
	db DBTX
}

func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (order_id, name, email, payment_id, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		payment.OrderID,
		payment.Name,
		payment.Email,
		payment.PaymentID,
		payment.CreatedAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrPaymentAlreadyExists
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	payment.ID = uint64(id)
	return nil
}

// FindByOrderID returns nil without error when no record matches.
func (r *PaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	query := `
		SELECT id, order_id, name, email, payment_id, created_at
		FROM payments
		WHERE order_id = ?
		LIMIT 1
	`

	payment := &entity.Payment{}
	err := r.db.QueryRowContext(ctx, query, orderID).Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.Name,
		&payment.Email,
		&payment.PaymentID,
		&payment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return payment, nil
}
