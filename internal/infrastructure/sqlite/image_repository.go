package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/zjrosen/vitrine/internal/catalog"
)

const imageColumns = `id, product_id, size, alt, art, position`

// ImageRepository implements catalog.ImageRepository using SQLite.
type ImageRepository struct {
	db *sql.DB
}

func newImageRepository(db *sql.DB) *ImageRepository {
	return &ImageRepository{db: db}
}

var _ catalog.ImageRepository = (*ImageRepository)(nil)

func scanImage(scanner interface{ Scan(...any) error }) (*ImageModel, error) {
	var m ImageModel
	err := scanner.Scan(&m.ID, &m.ProductID, &m.Size, &m.Alt, &m.Art, &m.Position)
	return &m, err
}

// Save upserts an image by id.
func (r *ImageRepository) Save(img *catalog.Image) error {
	m := toImageModel(img)
	_, err := r.db.Exec(
		`INSERT INTO images (id, product_id, size, alt, art, position)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			product_id = excluded.product_id, size = excluded.size, alt = excluded.alt,
			art = excluded.art, position = excluded.position`,
		m.ID, m.ProductID, m.Size, m.Alt, m.Art, m.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// FindByID retrieves an image by id.
func (r *ImageRepository) FindByID(id string) (*catalog.Image, error) {
	row := r.db.QueryRow(`SELECT `+imageColumns+` FROM images WHERE id = ?`, id)
	m, err := scanImage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &catalog.ImageNotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find image by id: %w", err)
	}
	img := m.toDomain()
	return &img, nil
}

// ImageSet retrieves a product's ordered images for one size class. The
// default index is position zero; products with no stored images yield an
// empty set.
func (r *ImageRepository) ImageSet(productID string, size catalog.SizeClass) (catalog.ImageSet, error) {
	rows, err := r.db.Query(
		`SELECT `+imageColumns+` FROM images WHERE product_id = ? AND size = ? ORDER BY position`,
		productID, string(size),
	)
	if err != nil {
		return catalog.ImageSet{}, fmt.Errorf("failed to load image set: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var set catalog.ImageSet
	for rows.Next() {
		m, err := scanImage(rows)
		if err != nil {
			return catalog.ImageSet{}, fmt.Errorf("failed to scan image row: %w", err)
		}
		set.Images = append(set.Images, m.toDomain())
	}
	if err := rows.Err(); err != nil {
		return catalog.ImageSet{}, fmt.Errorf("error iterating image rows: %w", err)
	}
	return set, nil
}

// Delete removes an image.
func (r *ImageRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM images WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return &catalog.ImageNotFoundError{ID: id}
	}
	return nil
}
