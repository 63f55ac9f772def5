package examples

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/quocvuong92/excavator/internal/command"
)

// InventoryHelper is the helper name the server commands look up
const InventoryHelper = "inventory"

// Errors
var (
	ErrNoInventory   = errors.New("inventory helper is not configured")
	ErrServerExists  = errors.New("server already exists")
	ErrUnknownServer = errors.New("unknown server")
)

// Server is one entry of the inventory
type Server struct {
	ID     string
	Name   string
	Region string
	Size   string
}

// Inventory is an in-memory server registry shared by the server commands
type Inventory struct {
	servers map[string]*Server
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{servers: make(map[string]*Server)}
}

// Add records a new server and assigns it an ID
func (inv *Inventory) Add(name, region, size string) (*Server, error) {
	if _, ok := inv.servers[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrServerExists, name)
	}
	s := &Server{ID: uuid.NewString(), Name: name, Region: region, Size: size}
	inv.servers[name] = s
	return s, nil
}

// Remove deletes a server by name
func (inv *Inventory) Remove(name string) error {
	if _, ok := inv.servers[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownServer, name)
	}
	delete(inv.servers, name)
	return nil
}

// List returns servers sorted by name, optionally limited to one region
func (inv *Inventory) List(region string) []*Server {
	out := make([]*Server, 0, len(inv.servers))
	for _, s := range inv.servers {
		if region != "" && s.Region != region {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func inventory(ctx *command.Context) (*Inventory, error) {
	h, ok := ctx.Helper(InventoryHelper)
	if !ok {
		return nil, ErrNoInventory
	}
	inv, ok := h.(*Inventory)
	if !ok {
		return nil, fmt.Errorf("%w: helper has type %T", ErrNoInventory, h)
	}
	return inv, nil
}
