package examples

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/quocvuong92/excavator/internal/command"
)

func newTestRunner(t *testing.T) (*command.Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	opts := append(Options(),
		command.WithOutput(&out),
		command.WithErrOutput(&bytes.Buffer{}),
		command.WithProgramName("excavator"),
	)
	r := command.NewRunner(opts...)
	Register(r)
	return r, &out
}

func TestRegister_Listing(t *testing.T) {
	r, _ := newTestRunner(t)

	var names []string
	for _, e := range r.Commands() {
		names = append(names, e.Name)
	}
	want := []string{
		"command_with_arg",
		"db:seed",
		"first:second:third",
		"greet",
		"servers:create",
		"servers:destroy",
		"servers:list",
		"test",
	}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Commands() = %v, want %v", names, want)
	}
}

func TestFixtures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		out  string
	}{
		{"execute a command", []string{"test"}, "test command"},
		{"2-level namespace command", []string{"first:second:third"}, "third"},
		{"default argument", []string{"command_with_arg"}, "west"},
		{"override default argument", []string{"command_with_arg", "-r", "east"}, "east"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, out := newTestRunner(t)
			if _, err := r.Run(tt.args...); err != nil {
				t.Fatalf("Run(%v) error = %v", tt.args, err)
			}
			if !strings.Contains(out.String(), tt.out) {
				t.Errorf("output = %q, want it to contain %q", out.String(), tt.out)
			}
		})
	}
}

func TestGreet(t *testing.T) {
	r, out := newTestRunner(t)

	got, err := r.Run("greet", "--name", "world")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if got != "hello, world" || out.String() != "hello, world\n" {
		t.Errorf("Run() = %v, output %q", got, out.String())
	}

	_, err = r.Run("greet")
	var missing *command.MissingParametersError
	if !errors.As(err, &missing) || !reflect.DeepEqual(missing.Names, []string{"name"}) {
		t.Errorf("Run(greet) error = %v, want missing [name]", err)
	}
}

func TestServers_CreateListDestroy(t *testing.T) {
	r, out := newTestRunner(t)

	created, err := r.Run("servers:create", "-n", "web-1", "--region", "east", "-z", "large")
	if err != nil {
		t.Fatalf("create error = %v", err)
	}
	s := created.(*Server)
	if s.Name != "web-1" || s.Region != "east" || s.Size != "large" || s.ID == "" {
		t.Errorf("created = %+v", s)
	}

	if _, err := r.Run("servers:create", "--name", "web-2"); err != nil {
		t.Fatalf("create error = %v", err)
	}
	if _, err := r.Run("servers:create", "--name", "web-2"); !errors.Is(err, ErrServerExists) {
		t.Errorf("duplicate create error = %v, want ErrServerExists", err)
	}

	out.Reset()
	listed, err := r.Run("servers:list", "--region", "west")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	servers := listed.([]*Server)
	if len(servers) != 1 || servers[0].Name != "web-2" {
		t.Errorf("list west = %v", servers)
	}
	if !strings.HasPrefix(out.String(), "Name ") || !strings.Contains(out.String(), "web-2") {
		t.Errorf("list output = %q", out.String())
	}

	listed, _ = r.Run("servers:list")
	if got := len(listed.([]*Server)); got != 2 {
		t.Errorf("list all returned %d servers, want 2", got)
	}

	if _, err := r.Run("servers:destroy", "--name", "web-1"); err != nil {
		t.Fatalf("destroy error = %v", err)
	}
	if _, err := r.Run("servers:destroy", "--name", "web-1"); !errors.Is(err, ErrUnknownServer) {
		t.Errorf("second destroy error = %v, want ErrUnknownServer", err)
	}
}

func TestDBSeed_ExecutesNestedCommands(t *testing.T) {
	r, _ := newTestRunner(t)

	got, err := r.Run("db:seed", "-c", "2", "--prefix", "api")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(got, []string{"api-1", "api-2"}) {
		t.Errorf("seed = %v", got)
	}

	listed, err := r.Run("servers:list")
	if err != nil {
		t.Fatalf("list error = %v", err)
	}
	if n := len(listed.([]*Server)); n != 2 {
		t.Errorf("inventory holds %d servers, want 2", n)
	}
}

func TestDBSeed_InvalidCount(t *testing.T) {
	r, _ := newTestRunner(t)

	if _, err := r.Run("db:seed", "--count", "many"); err == nil {
		t.Error("non-numeric count should fail")
	}
}

func TestServers_NoInventory(t *testing.T) {
	r := command.NewRunner(command.WithOutput(&bytes.Buffer{}))
	Register(r)

	if _, err := r.Run("servers:list"); !errors.Is(err, ErrNoInventory) {
		t.Errorf("Run() error = %v, want ErrNoInventory", err)
	}
}
