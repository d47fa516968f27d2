package domain

type SellerKind string

const (
	SellerBot    SellerKind = "bot"
	SellerSystem SellerKind = "system"
)

// SellerIdentity is a system-operated seller used as ownership fallback.
// Identities are defined at process start and never change at runtime.
type SellerIdentity struct {
	ID    string     `json:"id"`
	Kind  SellerKind `json:"kind"`
	Name  string     `json:"name"`
	Email string     `json:"email"`
	Phone string     `json:"phone"`
}

func (s SellerIdentity) AsOwner() Owner {
	return Owner{
		ID:    s.ID,
		Kind:  string(s.Kind),
		Name:  s.Name,
		Email: s.Email,
		Phone: s.Phone,
	}
}

// Owner is the seller entity attributed to a property: a real user or a
// seller-directory identity. Every stored property has exactly one owner
// with a non-empty name and a set kind.
type Owner struct {
	ID    string `json:"id,omitempty"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

const (
	OwnerKindUser   = "user"
	OwnerKindSystem = "system"
	OwnerKindBot    = "bot"
)

// OwnerFromValue decodes an owner from whatever shape it arrives in: an
// Owner struct already normalized by the store, or a raw JSON object from a
// request body or the seed file.
func OwnerFromValue(v any) (Owner, bool) {
	switch o := v.(type) {
	case Owner:
		return o, true
	case *Owner:
		return *o, true
	case map[string]any:
		return Owner{
			ID:    stringField(o, "id"),
			Kind:  stringField(o, "kind"),
			Name:  stringField(o, "name"),
			Email: stringField(o, "email"),
			Phone: stringField(o, "phone"),
		}, true
	}
	return Owner{}, false
}

func stringField(m map[string]any, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
