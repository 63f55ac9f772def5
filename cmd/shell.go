package cmd

import (
	"fmt"
	"strings"

	"github.com/elk-language/go-prompt"
	istrings "github.com/elk-language/go-prompt/strings"
	"github.com/spf13/cobra"

	"github.com/quocvuong92/excavator/internal/display"
	"github.com/quocvuong92/excavator/internal/logging"
	"github.com/quocvuong92/excavator/internal/parser"
)

const shellIntro = `# %s shell

Type a command path followed by its options, e.g. ` + "`greet --name world`" + `.

- ` + "`help`" + ` lists commands
- ` + "`<command> --help`" + ` shows a command's usage
- ` + "`exit`" + `, Ctrl+C or Ctrl+D quits`

// NewShellCmd creates the shell command
func (app *App) NewShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive command shell",
		Long: `Start an interactive shell that dispatches each line as a command.

Command paths and their options auto-complete as you type.

Examples:
  ` + app.cfg.ProgramName + ` shell`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.runShell()
			return nil
		},
	}
}

// ShellSession holds the state of one interactive shell
type ShellSession struct {
	app      *App
	exitFlag bool
}

// NewShellSession creates a session dispatching through app's runner
func NewShellSession(app *App) *ShellSession {
	return &ShellSession{app: app}
}

// runShell starts the REPL and blocks until the user quits
func (app *App) runShell() {
	session := NewShellSession(app)
	session.printIntro()

	p := prompt.New(
		session.executor,
		prompt.WithCompleter(session.completer),
		prompt.WithPrefix(app.cfg.Prompt),
		prompt.WithTitle(app.cfg.ProgramName),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithSuggestionBGColor(prompt.DarkBlue),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSelectedSuggestionBGColor(prompt.Cyan),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithDescriptionBGColor(prompt.DarkBlue),
		prompt.WithDescriptionTextColor(prompt.LightGray),
		prompt.WithSelectedDescriptionBGColor(prompt.Cyan),
		prompt.WithSelectedDescriptionTextColor(prompt.Black),
		prompt.WithMaxSuggestion(15),
		prompt.WithCompletionOnDown(),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return session.exitFlag
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlC,
			Fn: func(p *prompt.Prompt) bool {
				fmt.Fprintln(app.out, "\nGoodbye!")
				session.exitFlag = true
				return false
			},
		}),
		prompt.WithKeyBind(prompt.KeyBind{
			Key: prompt.ControlD,
			Fn: func(p *prompt.Prompt) bool {
				if p.Buffer().Text() == "" {
					fmt.Fprintln(app.out, "Goodbye!")
					session.exitFlag = true
				}
				return false
			},
		}),
	)

	p.Run()
}

func (s *ShellSession) printIntro() {
	intro := fmt.Sprintf(shellIntro, s.app.cfg.ProgramName)
	if s.app.cfg.Render {
		if rendered, err := display.RenderMarkdown(intro); err == nil {
			intro = rendered
		} else {
			s.app.logger.Debug("markdown rendering failed", logging.Fields{"error": err.Error()})
		}
	}
	display.ShowContent(s.app.out, intro)
	fmt.Fprintln(s.app.out)
}

// executor is the prompt callback for each input line
func (s *ShellSession) executor(input string) {
	if s.exitFlag {
		return
	}
	s.exitFlag = s.Execute(input)
}

// Execute runs one line and reports whether the shell should exit. Errors
// are printed and never end the session.
func (s *ShellSession) Execute(input string) bool {
	args := strings.Fields(input)
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "exit", "quit":
		fmt.Fprintln(s.app.out, "Goodbye!")
		return true
	}

	if err := s.app.dispatch(args); err != nil {
		s.app.reportError(err, args)
	}
	return false
}

// completer offers command paths for the first word and the command's long
// flags afterwards
func (s *ShellSession) completer(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	endIndex := d.CurrentRuneIndex()
	w := d.GetWordBeforeCursor()
	startIndex := endIndex - istrings.RuneCountInString(w)

	return s.Suggestions(d.TextBeforeCursor()), startIndex, endIndex
}

// Suggestions returns completions for the text typed so far
func (s *ShellSession) Suggestions(text string) []prompt.Suggest {
	fields := strings.Fields(text)
	completingFirst := len(fields) == 0 || (len(fields) == 1 && !strings.HasSuffix(text, " "))

	word := ""
	if len(fields) > 0 && !strings.HasSuffix(text, " ") {
		word = fields[len(fields)-1]
	}

	if completingFirst {
		suggestions := []prompt.Suggest{
			{Text: "help", Description: "List commands"},
			{Text: "exit", Description: "Quit the shell"},
		}
		for _, e := range s.app.runner.Commands() {
			if !s.app.policy.Permits(e.Name) {
				continue
			}
			suggestions = append(suggestions, prompt.Suggest{Text: e.Name, Description: e.Description})
		}
		return prompt.FilterHasPrefix(suggestions, word, true)
	}

	cmd, ok := s.app.runner.FindCommand(fields[0])
	if !ok {
		return []prompt.Suggest{}
	}

	suggestions := []prompt.Suggest{{Text: "--" + parser.HelpLong, Description: "Show usage"}}
	for _, p := range cmd.Parameters() {
		desc := p.Description()
		if def, ok := p.Default(); ok {
			desc = strings.TrimSpace(fmt.Sprintf("%s (default: %v)", desc, def))
		}
		suggestions = append(suggestions, prompt.Suggest{Text: "--" + parser.FlagName(p.Name()), Description: desc})
	}
	return prompt.FilterHasPrefix(suggestions, word, true)
}
