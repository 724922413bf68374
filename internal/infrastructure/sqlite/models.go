package sqlite

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/zjrosen/vitrine/internal/catalog"
)

// ProductModel represents the database row for the products table.
// Prices are stored as decimal strings and time values as Unix timestamps.
type ProductModel struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Price       string
	Stock       int
	Category    string
	Featured    bool
	CreatedAt   int64
	UpdatedAt   int64
}

// toProductModel converts a domain Product to a database ProductModel.
func toProductModel(p *catalog.Product) *ProductModel {
	return &ProductModel{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Price:       p.Price.String(),
		Stock:       p.Stock,
		Category:    string(p.Category),
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt.Unix(),
		UpdatedAt:   p.UpdatedAt.Unix(),
	}
}

// toDomain converts a database ProductModel to a domain Product.
func (m *ProductModel) toDomain() (*catalog.Product, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price %q for product %s: %w", m.Price, m.ID, err)
	}
	return &catalog.Product{
		ID:          m.ID,
		Name:        m.Name,
		Slug:        m.Slug,
		Description: m.Description,
		Price:       price,
		Stock:       m.Stock,
		Category:    catalog.Category(m.Category),
		Featured:    m.Featured,
		CreatedAt:   time.Unix(m.CreatedAt, 0),
		UpdatedAt:   time.Unix(m.UpdatedAt, 0),
	}, nil
}

// ImageModel represents the database row for the images table.
type ImageModel struct {
	ID        string
	ProductID string
	Size      string
	Alt       string
	Art       string
	Position  int
}

func toImageModel(img *catalog.Image) *ImageModel {
	return &ImageModel{
		ID:        img.ID,
		ProductID: img.ProductID,
		Size:      string(img.Size),
		Alt:       img.Alt,
		Art:       img.Art,
		Position:  img.Position,
	}
}

func (m *ImageModel) toDomain() catalog.Image {
	return catalog.Image{
		ID:        m.ID,
		ProductID: m.ProductID,
		Size:      catalog.SizeClass(m.Size),
		Alt:       m.Alt,
		Art:       m.Art,
		Position:  m.Position,
	}
}

// OrderModel represents the database row for the orders table. Lines are
// stored separately in order_lines.
type OrderModel struct {
	ID        string
	UserID    string
	Status    string
	CreatedAt int64
	UpdatedAt int64
}

func toOrderModel(o *catalog.Order) *OrderModel {
	return &OrderModel{
		ID:        o.ID,
		UserID:    o.UserID,
		Status:    string(o.Status),
		CreatedAt: o.CreatedAt.Unix(),
		UpdatedAt: o.UpdatedAt.Unix(),
	}
}

func (m *OrderModel) toDomain(lines []catalog.OrderLine) *catalog.Order {
	return &catalog.Order{
		ID:        m.ID,
		UserID:    m.UserID,
		Status:    catalog.OrderStatus(m.Status),
		Lines:     lines,
		CreatedAt: time.Unix(m.CreatedAt, 0),
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}
}

// OrderLineModel represents the database row for the order_lines table.
type OrderLineModel struct {
	OrderID     string
	ProductID   string
	ProductName string
	Quantity    int
	UnitPrice   string
}

func (m *OrderLineModel) toDomain() (catalog.OrderLine, error) {
	unit, err := decimal.NewFromString(m.UnitPrice)
	if err != nil {
		return catalog.OrderLine{}, fmt.Errorf("failed to parse unit price %q for order %s: %w", m.UnitPrice, m.OrderID, err)
	}
	return catalog.OrderLine{
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   unit,
	}, nil
}

// UserModel represents the database row for the users table.
type UserModel struct {
	ID        string
	Email     string
	Name      string
	Role      string
	CreatedAt int64
	UpdatedAt int64
}

func toUserModel(u *catalog.User) *UserModel {
	return &UserModel{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Unix(),
		UpdatedAt: u.UpdatedAt.Unix(),
	}
}

func (m *UserModel) toDomain() *catalog.User {
	return &catalog.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      catalog.Role(m.Role),
		CreatedAt: time.Unix(m.CreatedAt, 0),
		UpdatedAt: time.Unix(m.UpdatedAt, 0),
	}
}
