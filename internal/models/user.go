package models

// Role determines which parts of the storefront a user may manage.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Address is a shipping address. It is owned by a user in their address book,
// or copied onto an order at checkout time.
type Address struct {
	ID        string `json:"id"`
	Label     string `json:"label"` // e.g. "Home", "Office"
	FullName  string `json:"fullName"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	IsDefault bool   `json:"isDefault"`
}

// User represents a storefront account.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email" validate:"required,email"`
	Name      string    `json:"name" validate:"required"`
	Phone     string    `json:"phone,omitempty"`
	Role      Role      `json:"role"`
	Addresses []Address `json:"addresses"`
	Wishlist  []string  `json:"wishlist"` // product IDs
}

// Clone returns a deep copy of the user.
func (u User) Clone() User {
	c := u
	c.Addresses = cloneSlice(u.Addresses)
	c.Wishlist = cloneSlice(u.Wishlist)
	return c
}
