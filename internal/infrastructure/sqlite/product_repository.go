package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/zjrosen/vitrine/internal/catalog"
)

// productColumns is the list of columns to select for product queries.
const productColumns = `id, name, slug, description, price, stock, category, featured, created_at, updated_at`

// ProductRepository implements catalog.ProductRepository using SQLite.
type ProductRepository struct {
	db *sql.DB
}

func newProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Ensure ProductRepository implements catalog.ProductRepository.
var _ catalog.ProductRepository = (*ProductRepository)(nil)

// scanProduct scans a row into a ProductModel.
func scanProduct(scanner interface{ Scan(...any) error }) (*ProductModel, error) {
	var m ProductModel
	err := scanner.Scan(
		&m.ID, &m.Name, &m.Slug, &m.Description, &m.Price,
		&m.Stock, &m.Category, &m.Featured, &m.CreatedAt, &m.UpdatedAt,
	)
	return &m, err
}

// Save upserts a product by id.
func (r *ProductRepository) Save(p *catalog.Product) error {
	m := toProductModel(p)
	_, err := r.db.Exec(
		`INSERT INTO products (id, name, slug, description, price, stock, category, featured, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			name = excluded.name, slug = excluded.slug, description = excluded.description,
			price = excluded.price, stock = excluded.stock, category = excluded.category,
			featured = excluded.featured, updated_at = excluded.updated_at`,
		m.ID, m.Name, m.Slug, m.Description, m.Price, m.Stock, m.Category, m.Featured, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by id.
func (r *ProductRepository) FindByID(id string) (*catalog.Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	m, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &catalog.ProductNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product by id: %w", err)
	}
	return m.toDomain()
}

// FindBySlug retrieves a product by slug.
func (r *ProductRepository) FindBySlug(slug string) (*catalog.Product, error) {
	row := r.db.QueryRow(`SELECT `+productColumns+` FROM products WHERE slug = ?`, slug)
	m, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &catalog.ProductNotFoundError{Slug: slug}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product by slug: %w", err)
	}
	return m.toDomain()
}

// filterClause builds the WHERE clause shared by List and Count.
func filterClause(filter catalog.ListFilter) (string, []any) {
	var clauses []string
	var args []any
	if filter.Category != "" {
		clauses = append(clauses, `category = ?`)
		args = append(args, string(filter.Category))
	}
	if filter.Featured {
		clauses = append(clauses, `featured = 1`)
	}
	if filter.Search != "" {
		clauses = append(clauses, `name LIKE ? COLLATE NOCASE`)
		args = append(args, "%"+filter.Search+"%")
	}
	if len(clauses) == 0 {
		return "", args
	}
	return ` WHERE ` + strings.Join(clauses, ` AND `), args
}

// List retrieves products matching the filter, ordered by name.
func (r *ProductRepository) List(filter catalog.ListFilter) ([]*catalog.Product, error) {
	where, args := filterClause(filter)
	query := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY name`
	if filter.Limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, filter.Limit, filter.Offset)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []*catalog.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product row: %w", err)
		}
		p, err := m.toDomain()
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating product rows: %w", err)
	}
	return products, nil
}

// Count reports how many products match the filter, ignoring paging.
func (r *ProductRepository) Count(filter catalog.ListFilter) (int, error) {
	where, args := filterClause(filter)
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM products`+where, args...).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return n, nil
}

// Delete removes a product; its images cascade.
func (r *ProductRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &catalog.ProductNotFoundError{ID: id}
	}
	return nil
}
