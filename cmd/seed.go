package cmd

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/zjrosen/vitrine/internal/catalog"
	"github.com/zjrosen/vitrine/internal/config"
	"github.com/zjrosen/vitrine/internal/infrastructure/sqlite"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create a sample catalog",
	Long:  `Populates the catalog database with sample products, images, and an admin account. Products that already exist (matched by slug) are left untouched.`,
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

type seedImage struct {
	alt string
	art string
}

type seedProduct struct {
	name        string
	price       string
	category    catalog.Category
	stock       int
	featured    bool
	description string
	thumbs      []seedImage
	fulls       []seedImage
}

var sampleCatalog = []seedProduct{
	{
		name: "Wool Scarf", price: "29.50", category: catalog.CategoryApparel,
		stock: 10, featured: true,
		description: "A **soft merino wool** scarf in heather grey.\n\n- 180cm x 30cm\n- Hand wash cold",
		thumbs: []seedImage{
			{"scarf draped", "▒▒▒▒▒▒▒▒\n ▒▒▒▒▒▒\n  ▒▒▒▒"},
			{"scarf folded", "░░░░░░░░\n░░░░░░░░\n░░░░░░░░"},
			{"scarf weave detail", "▓▒▓▒▓▒▓▒\n▒▓▒▓▒▓▒▓\n▓▒▓▒▓▒▓▒"},
		},
		fulls: []seedImage{
			{"scarf draped", "▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒▒\n  ▒▒▒▒▒▒▒▒▒▒▒▒\n    ▒▒▒▒▒▒▒▒\n      ▒▒▒▒"},
			{"scarf folded", "░░░░░░░░░░░░░░░░\n░░░░░░░░░░░░░░░░\n░░░░░░░░░░░░░░░░"},
		},
	},
	{
		name: "Ceramic Bowl", price: "42.00", category: catalog.CategoryHomewares,
		stock: 3, featured: true,
		description: "Hand-thrown stoneware bowl with a matte glaze. Each piece is unique.",
		thumbs: []seedImage{
			{"bowl from above", "  ____\n (____)\n  \\__/"},
			{"bowl profile", " |''''|\n |____|"},
		},
		fulls: []seedImage{
			{"bowl from above", "   ________\n  ((______))\n   \\______/"},
		},
	},
	{
		name: "Linen Notebook", price: "14.25", category: catalog.CategoryStationery,
		stock:       25,
		description: "A5 dot-grid notebook bound in natural linen. 192 pages.",
		thumbs: []seedImage{
			{"notebook closed", "[======]\n[======]\n[======]"},
			{"notebook open", "[ .  . ]\n[ .  . ]\n[______]"},
		},
	},
	{
		name: "Brass Keyring", price: "9.00", category: catalog.CategoryAccessories,
		stock:       0,
		description: "Solid brass keyring, stamped by hand.",
		thumbs: []seedImage{
			{"keyring", "  __\n (__)--o"},
		},
	},
	{
		name: "Canvas Tote", price: "18.75", category: catalog.CategoryApparel,
		stock:       7,
		description: "Heavyweight canvas tote with reinforced handles.",
		thumbs: []seedImage{
			{"tote flat", " /====\\\n |    |\n |____|"},
		},
	},
	{
		name: "Oak Coasters", price: "22.00", category: catalog.CategoryHomewares,
		stock:       12,
		description: "Set of four oak coasters, oiled finish.",
		thumbs: []seedImage{
			{"coaster stack", " ______\n(______)\n(______)"},
		},
	},
	{
		name: "Letterpress Cards", price: "12.00", category: catalog.CategoryStationery,
		stock:       18,
		description: "Pack of eight letterpress greeting cards with envelopes.",
		thumbs: []seedImage{
			{"card front", "+------+\n| ~~~~ |\n+------+"},
			{"card fan", "+--+--+\n|  |  |\n+--+--+"},
		},
	},
	{
		name: "Leather Cardholder", price: "34.00", category: catalog.CategoryAccessories,
		stock: 5, featured: true,
		description: "Vegetable-tanned leather cardholder that darkens with use.",
		thumbs: []seedImage{
			{"cardholder front", "########\n# ==== #\n########"},
		},
		fulls: []seedImage{
			{"cardholder front", "################\n#   ========   #\n################"},
		},
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}

	db, err := sqlite.NewDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening catalog database: %w", err)
	}
	defer func() { _ = db.Close() }()

	products := db.ProductRepository()
	images := db.ImageRepository()
	created := 0

	for _, sp := range sampleCatalog {
		slug := catalog.Slugify(sp.name)
		if _, err := products.FindBySlug(slug); err == nil {
			continue
		}

		p := catalog.NewProduct(sp.name, decimal.RequireFromString(sp.price), sp.category)
		p.Stock = sp.stock
		p.Featured = sp.featured
		p.Description = sp.description
		if err := products.Save(p); err != nil {
			return fmt.Errorf("seeding product %q: %w", sp.name, err)
		}

		if err := seedImages(images, p, catalog.SizeThumb, sp.thumbs); err != nil {
			return err
		}
		if err := seedImages(images, p, catalog.SizeFull, sp.fulls); err != nil {
			return err
		}
		created++
	}

	if err := seedAdmin(db); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d products into %s\n", created, dbPath)
	return nil
}

func seedImages(repo *sqlite.ImageRepository, p *catalog.Product, size catalog.SizeClass, imgs []seedImage) error {
	for i, img := range imgs {
		err := repo.Save(&catalog.Image{
			ID:        fmt.Sprintf("%s-%s-%d", p.Slug, size, i),
			ProductID: p.ID,
			Size:      size,
			Alt:       img.alt,
			Art:       img.art,
			Position:  i,
		})
		if err != nil {
			return fmt.Errorf("seeding image for %q: %w", p.Name, err)
		}
	}
	return nil
}

func seedAdmin(db *sqlite.DB) error {
	users := db.UserRepository()
	_, err := users.FindByEmail("admin@vitrine.local")
	if err == nil {
		return nil
	}
	var notFound *catalog.UserNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("looking up admin account: %w", err)
	}

	admin := catalog.NewUser("admin@vitrine.local", "Store Admin")
	admin.Role = catalog.RoleAdmin
	if err := users.Save(admin); err != nil {
		return fmt.Errorf("seeding admin account: %w", err)
	}
	return nil
}
