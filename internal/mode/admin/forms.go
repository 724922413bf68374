package admin

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/log"
	"github.com/zjrosen/vitrine/internal/mode"
	"github.com/zjrosen/vitrine/internal/ui/form"
	"github.com/zjrosen/vitrine/internal/ui/toaster"
)

var categoryOptions = []string{
	string(catalog.CategoryApparel),
	string(catalog.CategoryHomewares),
	string(catalog.CategoryStationery),
	string(catalog.CategoryAccessories),
}

var statusOptions = []string{
	string(catalog.OrderStatusPending),
	string(catalog.OrderStatusPaid),
	string(catalog.OrderStatusShipped),
	string(catalog.OrderStatusCancelled),
}

var roleOptions = []string{
	string(catalog.RoleCustomer),
	string(catalog.RoleAdmin),
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func (m Model) openCreateForm() (mode.Controller, tea.Cmd) {
	switch m.tab {
	case TabProducts:
		return m.openForm(m.productForm(nil), editTarget{tab: TabProducts}), nil

	case TabUsers:
		return m.openForm(m.userForm(nil), editTarget{tab: TabUsers}), nil

	case TabImages:
		if len(m.products) == 0 {
			return m, toast("add a product before attaching images", toaster.StyleWarn)
		}
		return m.openForm(m.imageCreateForm(), editTarget{tab: TabImages}), nil

	case TabOrders:
		// Orders only come in through checkout.
		return m, toast("orders are placed from the storefront", toaster.StyleInfo)
	}
	return m, nil
}

func (m Model) openEditForm() (mode.Controller, tea.Cmd) {
	idx := m.selected[m.tab]
	switch m.tab {
	case TabProducts:
		if idx >= len(m.products) {
			return m, nil
		}
		p := m.products[idx]
		return m.openForm(m.productForm(p), editTarget{
			tab:              TabProducts,
			id:               p.ID,
			savedDescription: p.Description,
		}), nil

	case TabOrders:
		if idx >= len(m.orders) {
			return m, nil
		}
		o := m.orders[idx]
		return m.openForm(m.orderForm(o), editTarget{tab: TabOrders, id: o.ID}), nil

	case TabUsers:
		if idx >= len(m.users) {
			return m, nil
		}
		u := m.users[idx]
		return m.openForm(m.userForm(u), editTarget{tab: TabUsers, id: u.ID}), nil

	case TabImages:
		if idx >= len(m.images) {
			return m, nil
		}
		row := m.images[idx]
		return m.openForm(m.imageEditForm(row), editTarget{tab: TabImages, id: row.image.ID}), nil
	}
	return m, nil
}

func (m Model) openForm(f form.Model, target editTarget) Model {
	f = f.SetSize(m.width, m.height)
	m.editor = &f
	m.target = target
	return m
}

func (m Model) productForm(p *catalog.Product) form.Model {
	cfg := form.Config{
		Title: "New Product",
		Fields: []form.FieldConfig{
			{Key: "name", Label: "Name", Placeholder: "Wool Scarf"},
			{Key: "price", Label: "Price", Placeholder: "29.50"},
			{Key: "stock", Label: "Stock", Value: "0"},
			{Key: "category", Label: "Category", Type: form.FieldSelect, Options: categoryOptions},
			{Key: "featured", Label: "Featured", Type: form.FieldSelect, Options: []string{"no", "yes"}},
			{Key: "description", Label: "Description (markdown)", Type: form.FieldTextArea, Lines: 6},
		},
		Validate: validateProductValues,
	}
	if p != nil {
		cfg.Title = "Edit Product"
		cfg.Fields[0].Value = p.Name
		cfg.Fields[1].Value = p.Price.StringFixed(2)
		cfg.Fields[2].Value = fmt.Sprintf("%d", p.Stock)
		cfg.Fields[3].Value = string(p.Category)
		cfg.Fields[4].Value = yesNo(p.Featured)
		cfg.Fields[5].Value = p.Description
	}
	return form.New(cfg)
}

func validateProductValues(values map[string]string) error {
	if strings.TrimSpace(values["name"]) == "" {
		return errors.New("name is required")
	}
	price, err := parsePrice(values["price"])
	if err != nil {
		return err
	}
	if price.IsNegative() {
		return errors.New("price cannot be negative")
	}
	stock, err := parseStock(values["stock"])
	if err != nil {
		return err
	}
	if stock < 0 {
		return errors.New("stock cannot be negative")
	}
	return nil
}

func (m Model) userForm(u *catalog.User) form.Model {
	cfg := form.Config{
		Title: "New User",
		Fields: []form.FieldConfig{
			{Key: "email", Label: "Email", Placeholder: "someone@example.com"},
			{Key: "name", Label: "Name"},
			{Key: "role", Label: "Role", Type: form.FieldSelect, Options: roleOptions},
		},
		Validate: func(values map[string]string) error {
			if !strings.Contains(values["email"], "@") {
				return errors.New("email looks invalid")
			}
			if strings.TrimSpace(values["name"]) == "" {
				return errors.New("name is required")
			}
			return nil
		},
	}
	if u != nil {
		cfg.Title = "Edit User"
		cfg.Fields[0].Value = u.Email
		cfg.Fields[1].Value = u.Name
		cfg.Fields[2].Value = string(u.Role)
	}
	return form.New(cfg)
}

func (m Model) orderForm(o *catalog.Order) form.Model {
	return form.New(form.Config{
		Title: fmt.Sprintf("Order %s · $%s", shortID(o.ID), o.Total().StringFixed(2)),
		Fields: []form.FieldConfig{
			{Key: "status", Label: "Status", Type: form.FieldSelect,
				Options: statusOptions, Value: string(o.Status)},
		},
	})
}

func (m Model) imageCreateForm() form.Model {
	slugs := make([]string, len(m.products))
	for i, p := range m.products {
		slugs[i] = p.Slug
	}
	return form.New(form.Config{
		Title: "New Image",
		Fields: []form.FieldConfig{
			{Key: "product", Label: "Product", Type: form.FieldSelect, Options: slugs},
			{Key: "size", Label: "Size", Type: form.FieldSelect,
				Options: []string{string(catalog.SizeThumb), string(catalog.SizeFull)}},
			{Key: "alt", Label: "Alt text"},
			{Key: "art", Label: "ASCII art", Type: form.FieldTextArea, Lines: 6},
		},
		Validate: validateImageValues,
	})
}

func (m Model) imageEditForm(row imageRow) form.Model {
	return form.New(form.Config{
		Title: "Edit Image",
		Fields: []form.FieldConfig{
			{Key: "alt", Label: "Alt text", Value: row.image.Alt},
			{Key: "art", Label: "ASCII art", Type: form.FieldTextArea, Lines: 6, Value: row.image.Art},
		},
		Validate: validateImageValues,
	})
}

func validateImageValues(values map[string]string) error {
	if strings.TrimSpace(values["alt"]) == "" {
		return errors.New("alt text is required")
	}
	if strings.TrimSpace(values["art"]) == "" {
		return errors.New("art is required")
	}
	return nil
}

func (m Model) handleFormSubmit(msg form.SubmitMsg) (mode.Controller, tea.Cmd) {
	var err error
	switch m.target.tab {
	case TabProducts:
		err = m.saveProduct(msg.Values)
	case TabOrders:
		err = m.saveOrderStatus(msg.Values)
	case TabUsers:
		err = m.saveUser(msg.Values)
	case TabImages:
		err = m.saveImage(msg.Values)
	}
	if err != nil {
		editor := m.editor.SetError(err.Error())
		m.editor = &editor
		return m, nil
	}

	m.editor = nil
	log.Info(log.CatAdmin, "record saved", "tab", m.target.tab.String(), "id", m.target.id)
	return m, tea.Batch(
		m.loadRecords(),
		toast("saved", toaster.StyleSuccess),
	)
}

func (m Model) saveProduct(values map[string]string) error {
	price, err := parsePrice(values["price"])
	if err != nil {
		return err
	}
	stock, err := parseStock(values["stock"])
	if err != nil {
		return err
	}

	var p *catalog.Product
	if m.target.id == "" {
		p = catalog.NewProduct(values["name"], price, catalog.Category(values["category"]))
	} else {
		p, err = m.services.Products.FindByID(m.target.id)
		if err != nil {
			return err
		}
		// The slug stays stable across renames: it keys rotation entities
		// and zone ids.
		p.Name = values["name"]
		p.Price = price
		p.Category = catalog.Category(values["category"])
	}
	p.Stock = stock
	p.Featured = values["featured"] == "yes"
	p.Description = values["description"]

	if err := p.Validate(); err != nil {
		return err
	}
	return m.services.Products.Save(p)
}

func (m Model) saveOrderStatus(values map[string]string) error {
	o, err := m.services.Orders.FindByID(m.target.id)
	if err != nil {
		return err
	}
	to := catalog.OrderStatus(values["status"])
	if to == o.Status {
		return nil
	}
	if err := o.Transition(to); err != nil {
		return err
	}
	return m.services.Orders.Save(o)
}

func (m Model) saveUser(values map[string]string) error {
	var u *catalog.User
	if m.target.id == "" {
		u = catalog.NewUser(values["email"], values["name"])
	} else {
		var err error
		u, err = m.services.Users.FindByID(m.target.id)
		if err != nil {
			return err
		}
		u.Email = values["email"]
		u.Name = values["name"]
	}
	u.Role = catalog.Role(values["role"])

	if err := u.Validate(); err != nil {
		return err
	}
	return m.services.Users.Save(u)
}

func (m Model) saveImage(values map[string]string) error {
	if m.target.id != "" {
		img, err := m.services.Images.FindByID(m.target.id)
		if err != nil {
			return err
		}
		img.Alt = values["alt"]
		img.Art = values["art"]
		return m.services.Images.Save(img)
	}

	var product *catalog.Product
	for _, p := range m.products {
		if p.Slug == values["product"] {
			product = p
			break
		}
	}
	if product == nil {
		return fmt.Errorf("unknown product %q", values["product"])
	}

	size := catalog.SizeClass(values["size"])
	set, err := m.services.Images.ImageSet(product.ID, size)
	if err != nil {
		return err
	}
	position := len(set.Images)
	return m.services.Images.Save(&catalog.Image{
		ID:        fmt.Sprintf("%s-%s-%d", product.Slug, size, position),
		ProductID: product.ID,
		Size:      size,
		Alt:       values["alt"],
		Art:       values["art"],
		Position:  position,
	})
}
