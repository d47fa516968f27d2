package repository

import "github.com/homevista/homevista-backend/internal/domain"

// SellerDirectory is the static catalog of system-operated sellers used for
// fallback ownership assignment. Contents are fixed at construction; no
// locking is needed.
type SellerDirectory struct {
	sellers []domain.SellerIdentity
}

func NewSellerDirectory(sellers []domain.SellerIdentity) *SellerDirectory {
	return &SellerDirectory{sellers: sellers}
}

// DefaultSellers returns the directory seeded at startup.
func DefaultSellers() []domain.SellerIdentity {
	return []domain.SellerIdentity{
		{
			ID:    "seller-bot-1",
			Kind:  domain.SellerBot,
			Name:  "HomeVista Concierge",
			Email: "concierge@homevista.io",
			Phone: "+1-555-0101",
		},
		{
			ID:    "seller-sys-1",
			Kind:  domain.SellerSystem,
			Name:  "HomeVista Listings Desk",
			Email: "listings@homevista.io",
			Phone: "+1-555-0102",
		},
		{
			ID:    "seller-bot-2",
			Kind:  domain.SellerBot,
			Name:  "HomeVista Assistant",
			Email: "assistant@homevista.io",
			Phone: "+1-555-0103",
		},
	}
}

func (d *SellerDirectory) Lookup(id string) (domain.SellerIdentity, bool) {
	for _, s := range d.sellers {
		if s.ID == id {
			return s, true
		}
	}
	return domain.SellerIdentity{}, false
}

// FallbackFor selects the seller for a property at the given load/insertion
// position. The identity is returned by value, so callers attaching it to a
// mutable owner never share state with the directory.
func (d *SellerDirectory) FallbackFor(index int) domain.SellerIdentity {
	return d.sellers[index%len(d.sellers)]
}

func (d *SellerDirectory) Len() int {
	return len(d.sellers)
}
