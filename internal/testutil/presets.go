package testutil

import "github.com/zjrosen/vitrine/internal/catalog"

// WithStandardCatalog adds the standard catalog dataset used across the
// mode tests: six products spanning all four categories, two of them
// featured, with multi-image sets on the first three.
func (b *Builder) WithStandardCatalog() *Builder {
	return b.
		WithProduct("Wool Scarf",
			Price("29.50"), InCategory(catalog.CategoryApparel), Featured(), Stock(10),
			Description("A **soft merino wool** scarf in heather grey.")).
		WithImages(
			Thumb("scarf draped", "▒▒▒▒\n▒▒▒▒"),
			Thumb("scarf folded", "░░░░\n░░░░"),
			Thumb("scarf detail", "▓▓▓▓\n▓▓▓▓"),
			Full("scarf draped", "▒▒▒▒▒▒▒▒\n▒▒▒▒▒▒▒▒"),
			Full("scarf folded", "░░░░░░░░\n░░░░░░░░")).
		WithProduct("Ceramic Bowl",
			Price("42.00"), InCategory(catalog.CategoryHomewares), Featured(), Stock(3),
			Description("Hand-thrown stoneware bowl with a matte glaze.")).
		WithImages(
			Thumb("bowl top", "(__)\n \\/"),
			Thumb("bowl side", "|__|\n|__|"),
			Full("bowl top", "((____))\n  \\__/")).
		WithProduct("Linen Notebook",
			Price("14.25"), InCategory(catalog.CategoryStationery), Stock(25),
			Description("A5 dot-grid notebook bound in natural linen.")).
		WithImages(
			Thumb("notebook closed", "[==]\n[==]"),
			Thumb("notebook open", "[  ]\n[  ]")).
		WithProduct("Brass Keyring",
			Price("9.00"), InCategory(catalog.CategoryAccessories), Stock(0)).
		WithImages(
			Thumb("keyring", "-o-")).
		WithProduct("Canvas Tote",
			Price("18.75"), InCategory(catalog.CategoryApparel), Stock(7)).
		WithImages(
			Thumb("tote flat", "/==\\\n|  |")).
		WithProduct("Oak Coasters",
			Price("22.00"), InCategory(catalog.CategoryHomewares), Stock(12))
}

// WithStandardUsers adds a user with one order over the standard catalog.
// Requires WithStandardCatalog first.
func (b *Builder) WithStandardUsers() *Builder {
	return b.
		WithUser("alice@example.com", "Alice Moreau").
		WithOrder("Wool Scarf", "Ceramic Bowl").
		WithUser("bob@example.com", "Bob Tanaka")
}
