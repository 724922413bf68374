package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Canvas Tote", want: "canvas-tote"},
		{name: "punctuation collapses", in: "Mr. Fox's Mug!", want: "mr-fox-s-mug"},
		{name: "leading and trailing junk", in: "  Enamel Pin  ", want: "enamel-pin"},
		{name: "digits survive", in: "Notebook A5", want: "notebook-a5"},
		{name: "empty", in: "", want: ""},
		{name: "only junk", in: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestNewProduct_DerivesSlugAndIdentity(t *testing.T) {
	p := NewProduct("Canvas Tote", decimal.NewFromInt(25), CategoryAccessories)

	require.NotEmpty(t, p.ID)
	require.Equal(t, "canvas-tote", p.Slug)
	require.False(t, p.CreatedAt.IsZero())
	require.NoError(t, p.Validate())
}

func TestProduct_Validate(t *testing.T) {
	valid := func() *Product {
		return NewProduct("Canvas Tote", decimal.NewFromInt(25), CategoryAccessories)
	}

	tests := []struct {
		name    string
		mutate  func(*Product)
		wantErr error
	}{
		{name: "valid", mutate: func(p *Product) {}, wantErr: nil},
		{name: "empty name", mutate: func(p *Product) { p.Name = "  " }, wantErr: ErrEmptyName},
		{name: "negative price", mutate: func(p *Product) { p.Price = decimal.NewFromInt(-1) }, wantErr: ErrNegativePrice},
		{name: "negative stock", mutate: func(p *Product) { p.Stock = -3 }, wantErr: ErrNegativeStock},
		{name: "unknown category", mutate: func(p *Product) { p.Category = "gadgets" }, wantErr: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestImageSet_RefsAndDefault(t *testing.T) {
	set := ImageSet{
		Images: []Image{
			{ID: "img-1", Alt: "front"},
			{ID: "img-2", Alt: "back"},
			{ID: "img-3", Alt: "detail"},
		},
		DefaultIndex: 1,
	}

	require.Equal(t, []string{"img-1", "img-2", "img-3"}, set.Refs())
	require.Equal(t, "img-2", set.Default().ID)
}

func TestImageSet_ZeroValueIsSafe(t *testing.T) {
	var set ImageSet
	require.Empty(t, set.Refs())
	require.Equal(t, Image{}, set.Default())
}

func TestUser_Validate(t *testing.T) {
	u := NewUser("ada@example.com", "Ada")
	require.NoError(t, u.Validate())
	require.Equal(t, RoleCustomer, u.Role)

	u.Email = "not-an-email"
	require.ErrorIs(t, u.Validate(), ErrInvalidEmail)

	u.Email = "ada@example.com"
	u.Name = ""
	require.ErrorIs(t, u.Validate(), ErrEmptyName)
}
