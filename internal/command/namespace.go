package command

import (
	"sort"
	"strings"

	"github.com/quocvuong92/excavator/internal/constants"
)

// Entry is one row of the command listing
type Entry struct {
	Name        string
	Description string
}

// Namespace is a node of the command tree. It holds child namespaces and
// commands in separate indexes, so a namespace and a command may share a
// local name.
type Namespace struct {
	name       string
	parent     *Namespace
	namespaces map[string]*Namespace
	commands   map[string]*Command
}

// NewNamespace creates a detached namespace
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:       name,
		namespaces: make(map[string]*Namespace),
		commands:   make(map[string]*Command),
	}
}

// Name returns the local name
func (n *Namespace) Name() string { return n.name }

// Parent returns the enclosing namespace, or nil for a root
func (n *Namespace) Parent() *Namespace { return n.parent }

// AddNamespace attaches child and indexes it by name, replacing any previous
// child namespace with that name. A namespace can only ever have one parent;
// attaching it under a different parent panics.
func (n *Namespace) AddNamespace(child *Namespace) *Namespace {
	if child.parent != nil && child.parent != n {
		panic("namespace " + child.name + " is already attached to " + child.parent.FullName(""))
	}
	child.parent = n
	n.namespaces[child.name] = child
	return n
}

// AddCommand indexes cmd by name, replacing any previous command with that
// name. A command without a namespace is adopted by n.
func (n *Namespace) AddCommand(cmd *Command) *Namespace {
	if cmd.namespace == nil {
		cmd.namespace = n
	}
	n.commands[cmd.name] = cmd
	return n
}

// Command looks up a command in this namespace only
func (n *Namespace) Command(name string) (*Command, bool) {
	cmd, ok := n.commands[name]
	return cmd, ok
}

// Namespace looks up a direct child namespace
func (n *Namespace) Namespace(name string) (*Namespace, bool) {
	ns, ok := n.namespaces[name]
	return ns, ok
}

// FullName joins the names from the root down to n with ":", appending
// suffix when it is not empty. Roots contribute nothing:
//
//	root -> a -> b
//	b.FullName("")      // "a:b"
//	b.FullName("zebra") // "a:b:zebra"
//	root.FullName("")   // ""
func (n *Namespace) FullName(suffix string) string {
	if n.parent == nil {
		return suffix
	}

	parts := make([]string, 0, 3)
	if prefix := n.parent.FullName(""); prefix != "" {
		parts = append(parts, prefix)
	}
	parts = append(parts, n.name)
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, constants.NamespaceSeparator)
}

// ListCommandsWithDescriptions returns every command reachable from n,
// sorted by full name and then description.
func (n *Namespace) ListCommandsWithDescriptions() []Entry {
	entries := n.collect(nil)
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Name != entries[j].Name {
			return entries[i].Name < entries[j].Name
		}
		return entries[i].Description < entries[j].Description
	})
	return entries
}

func (n *Namespace) collect(entries []Entry) []Entry {
	for _, cmd := range n.commands {
		entries = append(entries, Entry{Name: cmd.FullName(), Description: cmd.Description()})
	}
	for _, ns := range n.namespaces {
		entries = ns.collect(entries)
	}
	return entries
}
