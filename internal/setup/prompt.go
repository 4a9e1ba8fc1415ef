package setup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var yesRe = regexp.MustCompile(`^[Yy]`)

// Prompter asks one question per call, reading exactly one line of input
// each time. Prompt text goes to Err so it stays visible when stdout is
// redirected; informational banners go to Out. The input source is
// injectable so tests can script a fixed sequence of answers.
type Prompter struct {
	scanner *bufio.Scanner
	Out     io.Writer
	Err     io.Writer
}

func NewPrompter(in io.Reader, out, errw io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), Out: out, Err: errw}
}

func StdPrompter() *Prompter {
	return NewPrompter(os.Stdin, os.Stdout, os.Stderr)
}

func (p *Prompter) readLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// Required re-prompts until a non-empty value is entered. There is no
// attempt limit; a non-interactive caller that runs out of input gets an
// error instead of a silent default.
func (p *Prompter) Required(label, text string) (string, error) {
	for {
		fmt.Fprintf(p.Err, "%s ", promptStyle.Render(text))
		line, err := p.readLine()
		if err != nil {
			return "", fmt.Errorf("read %s: %w", label, err)
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, nil
		}
		fmt.Fprintln(p.Err, errorStyle.Render(label+" must not be empty"))
	}
}

// Optional returns def on an empty line, otherwise the line exactly as
// entered.
func (p *Prompter) Optional(text, def string) (string, error) {
	fmt.Fprintf(p.Err, "%s ", promptStyle.Render(fmt.Sprintf("%s [%s]", text, def)))
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	if line == "" {
		return def, nil
	}
	return line, nil
}

// YesNo substitutes def on an empty line and classifies the result: true
// iff it starts with y/Y, false for everything else including garbage.
func (p *Prompter) YesNo(text, def string) (bool, error) {
	fmt.Fprintf(p.Err, "%s ", promptStyle.Render(fmt.Sprintf("%s [%s]", text, def)))
	line, err := p.readLine()
	if err != nil {
		return false, fmt.Errorf("read input: %w", err)
	}
	if line == "" {
		line = def
	}
	return yesRe.MatchString(line), nil
}

// BackendChoice re-prompts until the operator enters 1 or 2; an empty
// line picks Conduit.
func (p *Prompter) BackendChoice() (Backend, error) {
	fmt.Fprintln(p.Err, promptStyle.Render("Which homeserver backend?"))
	fmt.Fprintln(p.Err, "  1) conduit (lightweight, recommended)")
	fmt.Fprintln(p.Err, "  2) synapse (reference implementation)")
	for {
		fmt.Fprintf(p.Err, "%s ", promptStyle.Render("Choice [1]:"))
		line, err := p.readLine()
		if err != nil {
			return BackendConduit, fmt.Errorf("read backend choice: %w", err)
		}
		switch strings.TrimSpace(line) {
		case "", "1":
			return BackendConduit, nil
		case "2":
			return BackendSynapse, nil
		}
		fmt.Fprintln(p.Err, errorStyle.Render("enter 1 or 2"))
	}
}
