package domain

// User is a map-backed record for the same reason Property is: registration
// accepts free-form fields and they must round-trip unchanged. Lookup keys
// on the raw stored email, case-sensitively.
type User map[string]any

func (u User) Email() string {
	return stringField(u, "email")
}

func (u User) Username() string {
	return stringField(u, "username")
}

func (u User) Password() string {
	return stringField(u, "password")
}
