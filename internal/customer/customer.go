// Package customer holds the customer registry.
package customer

import (
	"errors"
	"strings"
	"time"

	"github.com/RoyalZSoftware/management-cli/internal/ident"
	"github.com/RoyalZSoftware/management-cli/internal/store"
)

// Collection is the name of the customers collection in the data document.
const Collection = "customers"

// ErrNotFound is returned when no customer with the requested id exists.
var ErrNotFound = errors.New("customer not found")

// Customer represents a single customer of the business.
// Customers are immutable once stored; there is no update operation.
type Customer struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
}

// New creates an unpersisted customer. The id is assigned by Registry.Store.
func New(name, email, address string) *Customer {
	return &Customer{
		CreatedAt: time.Now(),
		Name:      name,
		Email:     email,
		Address:   address,
	}
}

// searchIndex is the haystack used for substring search.
func (c *Customer) searchIndex() string {
	return strings.ToLower(c.Name + " " + c.Email + " " + c.Address)
}

// Registry is the in-memory collection of customers, keyed by id and
// persisted as a whole on every mutation.
type Registry struct {
	store     *store.Store
	customers []*Customer
}

// NewRegistry creates an empty registry backed by the given store.
func NewRegistry(st *store.Store) *Registry {
	return &Registry{store: st}
}

// Load populates the registry from the data document.
// A document without a customers collection leaves the registry empty.
func (r *Registry) Load() error {
	var loaded []*Customer
	ok, err := r.store.Load(Collection, &loaded)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	r.customers = append(r.customers, loaded...)
	return nil
}

// Search returns customers whose name, email or address contains the query
// as a case-insensitive substring, in storage order. An empty query returns
// all customers.
func (r *Registry) Search(query string) []*Customer {
	if query == "" {
		return r.customers
	}

	needle := strings.ToLower(query)
	var matches []*Customer
	for _, c := range r.customers {
		if strings.Contains(c.searchIndex(), needle) {
			matches = append(matches, c)
		}
	}
	return matches
}

// Get returns the customer with the given id, or ErrNotFound.
func (r *Registry) Get(id string) (*Customer, error) {
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

// All returns every customer in storage order.
func (r *Registry) All() []*Customer {
	return r.customers
}

// Store assigns a fresh id, appends the customer to the registry and
// persists the whole collection. Returns the stored customer.
func (r *Registry) Store(c *Customer) (*Customer, error) {
	c.ID = ident.New()
	r.customers = append(r.customers, c)

	if err := r.store.Save(Collection, r.customers); err != nil {
		return nil, err
	}
	return c, nil
}
