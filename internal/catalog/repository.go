package catalog

// ListFilter provides filtering options for listing products.
type ListFilter struct {
	// Category filters products by category. If empty, all categories are
	// included.
	Category Category

	// Featured restricts results to carousel-featured products.
	Featured bool

	// Search matches a substring of the product name, case-insensitive.
	Search string

	// Offset and Limit page through results. Limit 0 means no limit.
	Offset int
	Limit  int
}

// ProductRepository defines persistence for products.
// Implementations may use SQLite, in-memory storage, or other backends.
type ProductRepository interface {
	// Save persists a product, inserting or updating by id.
	Save(p *Product) error

	// FindByID retrieves a product by id.
	// Returns ProductNotFoundError if no matching product exists.
	FindByID(id string) (*Product, error)

	// FindBySlug retrieves a product by slug.
	// Returns ProductNotFoundError if no matching product exists.
	FindBySlug(slug string) (*Product, error)

	// List retrieves products matching the filter, ordered by name.
	List(filter ListFilter) ([]*Product, error)

	// Count reports how many products match the filter, ignoring paging.
	Count(filter ListFilter) (int, error)

	// Delete removes a product and its images.
	// Returns ProductNotFoundError if no matching product exists.
	Delete(id string) error
}

// ImageRepository defines persistence for product images.
type ImageRepository interface {
	// Save persists an image, inserting or updating by id.
	Save(img *Image) error

	// FindByID retrieves an image by id.
	// Returns ImageNotFoundError if no matching image exists.
	FindByID(id string) (*Image, error)

	// ImageSet retrieves a product's ordered images for one size class.
	// Products with no stored images yield an empty set, not an error.
	ImageSet(productID string, size SizeClass) (ImageSet, error)

	// Delete removes an image.
	// Returns ImageNotFoundError if no matching image exists.
	Delete(id string) error
}

// OrderRepository defines persistence for orders.
type OrderRepository interface {
	// Save persists an order and its lines, inserting or updating by id.
	Save(o *Order) error

	// FindByID retrieves an order with its lines.
	// Returns OrderNotFoundError if no matching order exists.
	FindByID(id string) (*Order, error)

	// ListByUser retrieves a user's orders, newest first.
	ListByUser(userID string) ([]*Order, error)

	// List retrieves all orders, newest first.
	List() ([]*Order, error)

	// Delete removes an order and its lines.
	// Returns OrderNotFoundError if no matching order exists.
	Delete(id string) error
}

// UserRepository defines persistence for users.
type UserRepository interface {
	// Save persists a user, inserting or updating by id.
	Save(u *User) error

	// FindByID retrieves a user by id.
	// Returns UserNotFoundError if no matching user exists.
	FindByID(id string) (*User, error)

	// FindByEmail retrieves a user by email.
	// Returns UserNotFoundError if no matching user exists.
	FindByEmail(email string) (*User, error)

	// List retrieves all users ordered by email.
	List() ([]*User, error)

	// Delete removes a user.
	// Returns UserNotFoundError if no matching user exists.
	Delete(id string) error
}
