package cmd

import (
	"strings"
	"testing"

	"github.com/elk-language/go-prompt"

	"github.com/quocvuong92/excavator/internal/settings"
)

func suggestionTexts(s []prompt.Suggest) []string {
	out := make([]string, len(s))
	for i, sg := range s {
		out[i] = sg.Text
	}
	return out
}

func contains(list []string, want string) bool {
	for _, v := range list {
		if v == want {
			return true
		}
	}
	return false
}

func TestShellSession_Execute(t *testing.T) {
	app, out, _ := newTestApp(t)
	session := NewShellSession(app)

	if session.Execute("greet --name shell") {
		t.Error("a command line should not end the session")
	}
	if !strings.Contains(out.String(), "hello, shell") {
		t.Errorf("output = %q", out.String())
	}
}

func TestShellSession_ExecuteErrorsContinue(t *testing.T) {
	app, _, errOut := newTestApp(t)
	session := NewShellSession(app)

	if session.Execute("greet") {
		t.Error("errors should not end the session")
	}
	if !strings.Contains(errOut.String(), "Missing parameters: name.") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestShellSession_ExecuteSharesState(t *testing.T) {
	app, out, _ := newTestApp(t)
	session := NewShellSession(app)

	session.Execute("servers:create -n web-1")
	out.Reset()
	session.Execute("servers:list")

	if !strings.Contains(out.String(), "web-1") {
		t.Errorf("servers:list output = %q, want the server created earlier", out.String())
	}
}

func TestShellSession_Exit(t *testing.T) {
	app, _, _ := newTestApp(t)
	session := NewShellSession(app)

	for _, line := range []string{"", "   "} {
		if session.Execute(line) {
			t.Errorf("Execute(%q) should not exit", line)
		}
	}
	for _, line := range []string{"exit", "quit"} {
		if !session.Execute(line) {
			t.Errorf("Execute(%q) should exit", line)
		}
	}
}

func TestShellSession_SuggestCommands(t *testing.T) {
	app, _, _ := newTestApp(t)
	session := NewShellSession(app)

	all := suggestionTexts(session.Suggestions(""))
	for _, want := range []string{"help", "exit", "greet", "servers:create", "first:second:third"} {
		if !contains(all, want) {
			t.Errorf("Suggestions(\"\") missing %q: %v", want, all)
		}
	}

	got := suggestionTexts(session.Suggestions("serv"))
	if len(got) != 3 || !contains(got, "servers:list") {
		t.Errorf("Suggestions(serv) = %v", got)
	}
}

func TestShellSession_SuggestFlags(t *testing.T) {
	app, _, _ := newTestApp(t)
	session := NewShellSession(app)

	got := suggestionTexts(session.Suggestions("servers:create "))
	for _, want := range []string{"--help", "--name", "--region", "--size"} {
		if !contains(got, want) {
			t.Errorf("Suggestions missing %q: %v", want, got)
		}
	}

	got = suggestionTexts(session.Suggestions("servers:create --re"))
	if len(got) != 1 || got[0] != "--region" {
		t.Errorf("Suggestions(--re) = %v, want [--region]", got)
	}

	if got := session.Suggestions("unknown "); len(got) != 0 {
		t.Errorf("unknown command should have no flag suggestions, got %v", got)
	}
}

func TestShellSession_SuggestionsHideDenied(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.policy = settings.NewPolicy(settings.Permissions{Deny: settings.ParseRules("servers:*")})
	session := NewShellSession(app)

	got := suggestionTexts(session.Suggestions(""))
	if contains(got, "servers:create") {
		t.Errorf("denied commands should not be suggested: %v", got)
	}
	if !contains(got, "greet") {
		t.Errorf("permitted commands should be suggested: %v", got)
	}
}
