package models

// AppState is the aggregate root: the complete application dataset at a point
// in time. It is the single unit of persistence; every mutation replaces the
// whole structure and commits it through the store.
type AppState struct {
	Users          []User        `json:"users"`
	CurrentUser    *User         `json:"currentUser"`
	Categories     []Category    `json:"categories"`
	Subcategories  []Subcategory `json:"subcategories"`
	Products       []Product     `json:"products"`
	Orders         []Order       `json:"orders"`
	Reviews        []Review      `json:"reviews"`
	Cart           []CartItem    `json:"cart"`
	ComparisonList []string      `json:"comparisonList"` // product IDs, capacity-bounded
}

// cloneSlice copies a slice, preserving nil-ness so that clones stay
// deep-equal to their source after a serialization round trip.
func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	return out
}

// Clone returns a deep copy of the state. The store hands out clones so that
// callers can never mutate the committed snapshot in place.
func (s *AppState) Clone() *AppState {
	c := &AppState{
		Users:          cloneSlice(s.Users),
		Categories:     cloneSlice(s.Categories),
		Subcategories:  cloneSlice(s.Subcategories),
		Products:       cloneSlice(s.Products),
		Orders:         cloneSlice(s.Orders),
		Reviews:        cloneSlice(s.Reviews),
		Cart:           cloneSlice(s.Cart),
		ComparisonList: cloneSlice(s.ComparisonList),
	}
	for i, u := range s.Users {
		c.Users[i] = u.Clone()
	}
	for i, sc := range s.Subcategories {
		sc.Attributes = cloneSlice(sc.Attributes)
		c.Subcategories[i] = sc
	}
	for i, p := range s.Products {
		c.Products[i] = p.Clone()
	}
	for i, o := range s.Orders {
		c.Orders[i] = o.Clone()
	}
	if s.CurrentUser != nil {
		cu := s.CurrentUser.Clone()
		c.CurrentUser = &cu
	}
	return c
}

// ProductByID returns a pointer to the product with the given ID within this
// state, or nil if no product matches.
func (s *AppState) ProductByID(id string) *Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// UserByEmail returns a pointer to the user with the given email within this
// state, or nil if no user matches.
func (s *AppState) UserByEmail(email string) *User {
	for i := range s.Users {
		if s.Users[i].Email == email {
			return &s.Users[i]
		}
	}
	return nil
}

// UserByID returns a pointer to the user with the given ID within this state,
// or nil if no user matches.
func (s *AppState) UserByID(id string) *User {
	for i := range s.Users {
		if s.Users[i].ID == id {
			return &s.Users[i]
		}
	}
	return nil
}

// OrderByID returns a pointer to the order with the given ID within this
// state, or nil if no order matches.
func (s *AppState) OrderByID(id string) *Order {
	for i := range s.Orders {
		if s.Orders[i].ID == id {
			return &s.Orders[i]
		}
	}
	return nil
}

// CartLineIndex returns the index of the cart line for productID, or -1.
func (s *AppState) CartLineIndex(productID string) int {
	for i := range s.Cart {
		if s.Cart[i].ProductID == productID {
			return i
		}
	}
	return -1
}
