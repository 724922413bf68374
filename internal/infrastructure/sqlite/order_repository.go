package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/vitrine/internal/catalog"
)

const orderColumns = `id, user_id, status, created_at, updated_at`

// OrderRepository implements catalog.OrderRepository using SQLite. Lines
// are replaced wholesale on every save; orders are small.
type OrderRepository struct {
	db *sql.DB
}

func newOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

var _ catalog.OrderRepository = (*OrderRepository)(nil)

func scanOrder(scanner interface{ Scan(...any) error }) (*OrderModel, error) {
	var m OrderModel
	err := scanner.Scan(&m.ID, &m.UserID, &m.Status, &m.CreatedAt, &m.UpdatedAt)
	return &m, err
}

// Save upserts an order and rewrites its lines in one transaction.
func (r *OrderRepository) Save(o *catalog.Order) error {
	m := toOrderModel(o)
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin order transaction: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO orders (id, user_id, status, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			user_id = excluded.user_id, status = excluded.status, updated_at = excluded.updated_at`,
		m.ID, m.UserID, m.Status, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to save order: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM order_lines WHERE order_id = ?`, m.ID); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to clear order lines: %w", err)
	}
	for _, line := range o.Lines {
		_, err := tx.Exec(
			`INSERT INTO order_lines (order_id, product_id, product_name, quantity, unit_price)
			 VALUES (?, ?, ?, ?, ?)`,
			m.ID, line.ProductID, line.ProductName, line.Quantity, line.UnitPrice.String(),
		)
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to save order line: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

// lines loads an order's lines in insertion order.
func (r *OrderRepository) lines(orderID string) ([]catalog.OrderLine, error) {
	rows, err := r.db.Query(
		`SELECT order_id, product_id, product_name, quantity, unit_price
		 FROM order_lines WHERE order_id = ? ORDER BY id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load order lines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var lines []catalog.OrderLine
	for rows.Next() {
		var m OrderLineModel
		if err := rows.Scan(&m.OrderID, &m.ProductID, &m.ProductName, &m.Quantity, &m.UnitPrice); err != nil {
			return nil, fmt.Errorf("failed to scan order line: %w", err)
		}
		line, err := m.toDomain()
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order lines: %w", err)
	}
	return lines, nil
}

// FindByID retrieves an order with its lines.
func (r *OrderRepository) FindByID(id string) (*catalog.Order, error) {
	row := r.db.QueryRow(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id)
	m, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &catalog.OrderNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order by id: %w", err)
	}
	lines, err := r.lines(id)
	if err != nil {
		return nil, err
	}
	return m.toDomain(lines), nil
}

func (r *OrderRepository) list(query string, args ...any) ([]*catalog.Order, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var models []*OrderModel
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	orders := make([]*catalog.Order, 0, len(models))
	for _, m := range models {
		lines, err := r.lines(m.ID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, m.toDomain(lines))
	}
	return orders, nil
}

// ListByUser retrieves a user's orders, newest first.
func (r *OrderRepository) ListByUser(userID string) ([]*catalog.Order, error) {
	return r.list(`SELECT `+orderColumns+` FROM orders WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

// List retrieves all orders, newest first.
func (r *OrderRepository) List() ([]*catalog.Order, error) {
	return r.list(`SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC`)
}

// Delete removes an order; its lines cascade.
func (r *OrderRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &catalog.OrderNotFoundError{ID: id}
	}
	return nil
}
