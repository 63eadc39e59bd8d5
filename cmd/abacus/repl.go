package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/abacist/abacus/pkg/abacus"
)

func printBanner() {
	fmt.Println("abacus keypad (q or Ctrl+D to exit)")
	fmt.Println()
	fmt.Println("  0-9 .        digits         + - * /   operators")
	fmt.Println("  ( )          grouping       = Enter   calculate")
	fmt.Println("  Backspace    delete         c         clear")
	fmt.Println("  n            toggle sign    %         percent")
	fmt.Println("  l/L          label current/previous   u/U  unit")
	fmt.Println("  s            save value     i         insert variable")
	fmt.Println("  h            history        r         recall from history")
	fmt.Println("  v            variables")
	fmt.Println()
}

func runREPL(s *abacus.Session) {
	// Check if stdin is a terminal
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		runLineREPL(s)
		return
	}

	printBanner()
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set raw mode: %v\n", err)
		runLineREPL(s)
		return
	}
	defer term.Restore(fd, oldState)

	redraw(s, "")
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			fmt.Print("\r\n")
			return
		}
		b := buf[0]
		notice := ""

		switch {
		case b == 0x03 || b == 0x04 || b == 'q': // Ctrl+C, Ctrl+D
			fmt.Print("\r\n")
			return
		case b >= '0' && b <= '9' || b == '.':
			s.InputDigit(rune(b))
		case b == '+' || b == '-' || b == '*' || b == '/':
			s.SetOperation(abacus.OpFromRune(rune(b)))
		case b == '(':
			s.InputParen(abacus.ParenOpen)
		case b == ')':
			s.InputParen(abacus.ParenClose)
		case b == '=' || b == 0x0d || b == 0x0a: // Enter
			s.Calculate()
		case b == 0x7f || b == 0x08: // Backspace
			s.Delete()
		case b == 'c' || b == 'C':
			s.Clear()
		case b == 'n':
			s.ToggleSign()
		case b == '%':
			s.Percent()
		case b == 'h':
			printHistoryRaw(s)
		case b == 'v':
			printVariablesRaw(s)
		case b == 'l':
			notice = promptLabel(s, fd, abacus.TargetCurrent)
		case b == 'L':
			notice = promptLabel(s, fd, abacus.TargetLastCommitted)
		case b == 'u':
			notice = promptUnit(s, fd, abacus.TargetCurrent)
		case b == 'U':
			notice = promptUnit(s, fd, abacus.TargetLastCommitted)
		case b == 's':
			notice = promptSave(s, fd)
		case b == 'i':
			notice = promptVariable(s, fd)
		case b == 'r':
			notice = promptRecall(s, fd)
		}

		redraw(s, notice)
	}
}

// redraw repaints the single status line in raw mode.
func redraw(s *abacus.Session, notice string) {
	fmt.Print("\r\x1b[K")
	line := renderLine(s) + "  " + resultStyle.Render("= "+s.Display())
	if unit := s.Unit(); unit != "" {
		line += " " + unit
	}
	if notice != "" {
		line += "  " + noticeStyle.Render(notice)
	}
	fmt.Print("> " + line)
}

func printHistoryRaw(s *abacus.Session) {
	fmt.Print("\r\n")
	hist := s.History()
	if len(hist) == 0 {
		fmt.Print("history is empty\r\n")
		return
	}
	for i, e := range hist {
		fmt.Printf("%3d  %s = %s\r\n", i, e.Expression(), e.Result)
	}
}

func printVariablesRaw(s *abacus.Session) {
	fmt.Print("\r\n")
	vars := s.Variables()
	if len(vars) == 0 {
		fmt.Print("no saved variables\r\n")
		return
	}
	for _, v := range vars {
		fmt.Printf("  %s\r\n", renderVariable(v))
	}
}

func promptLabel(s *abacus.Session, fd int, target abacus.Target) string {
	input, ok := promptLine(fd, "label [name] or [name color]")
	if !ok {
		return ""
	}
	name, colorName, _ := strings.Cut(strings.TrimSpace(input), " ")
	color, valid := abacus.ParseColor(colorName)
	if !valid {
		return "unknown color: " + colorName
	}
	if err := s.SetLabel(target, name, color); err != nil {
		return err.Error()
	}
	return ""
}

func promptUnit(s *abacus.Session, fd int, target abacus.Target) string {
	input, ok := promptLine(fd, "unit")
	if !ok {
		return ""
	}
	if err := s.SetUnit(target, strings.TrimSpace(input)); err != nil {
		return err.Error()
	}
	return ""
}

func promptSave(s *abacus.Session, fd int) string {
	input, ok := promptLine(fd, "save as [name] or [name color]")
	if !ok {
		return ""
	}
	name, colorName, _ := strings.Cut(strings.TrimSpace(input), " ")
	color, valid := abacus.ParseColor(colorName)
	if !valid {
		return "unknown color: " + colorName
	}
	if _, err := s.SaveCurrent(name, color); err != nil {
		return err.Error()
	}
	return "saved " + name
}

func promptVariable(s *abacus.Session, fd int) string {
	input, ok := promptLine(fd, "variable name")
	if !ok {
		return ""
	}
	name := strings.TrimSpace(input)
	v, found := s.VariableByLabel(name)
	if !found {
		return "unknown variable: " + name
	}
	s.InputVariable(v)
	return ""
}

func promptRecall(s *abacus.Session, fd int) string {
	printHistoryRaw(s)
	input, ok := promptLine(fd, "recall index")
	if !ok {
		return ""
	}
	index, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return "not an index: " + strings.TrimSpace(input)
	}
	if err := s.LoadFromHistory(index); err != nil {
		return err.Error()
	}
	return ""
}

// promptLine reads one line in raw mode with minimal editing. The
// second result is false when the prompt was cancelled.
func promptLine(fd int, prompt string) (string, bool) {
	fmt.Print("\r\n" + prompt + ": ")
	var line []byte
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil || n == 0 {
			return "", false
		}
		switch b := buf[0]; {
		case b == 0x03 || b == 0x04 || b == 0x1b: // cancel
			return "", false
		case b == 0x0d || b == 0x0a:
			fmt.Print("\r\n")
			return string(line), true
		case b == 0x7f || b == 0x08:
			if len(line) > 0 {
				line = line[:len(line)-1]
				fmt.Print("\b \b")
			}
		case b >= 0x20 && b < 0x7f:
			line = append(line, b)
			fmt.Print(string(rune(b)))
		}
	}
}

// runLineREPL handles non-TTY input (piped input): one expression or
// /command per line.
func runLineREPL(s *abacus.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(">>> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "/") {
			if !lineCommand(s, line) {
				return
			}
			continue
		}
		if err := replay(s, line); err != nil {
			fmt.Printf("Error: %v\n", err)
			s.Clear()
			continue
		}
		if !strings.Contains(line, "=") {
			s.Calculate()
		}
		fmt.Println(s.Display())
		if s.InError() {
			s.Clear()
		}
	}
}

// lineCommand executes a /command; it returns false on /exit.
func lineCommand(s *abacus.Session, line string) bool {
	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return true
	}
	args := fields[1:]
	switch fields[0] {
	case "exit", "quit":
		return false
	case "help":
		fmt.Println("commands: /vars /history /save <name> [color] /del <name> /load <index> /clear /exit")
	case "clear":
		s.Clear()
	case "vars":
		for _, v := range s.Variables() {
			fmt.Println("  " + renderVariable(v))
		}
	case "history":
		for i, e := range s.History() {
			fmt.Printf("%3d  %s = %s\n", i, e.Expression(), e.Result)
		}
	case "save":
		if len(args) == 0 {
			fmt.Println("usage: /save <name> [color]")
			break
		}
		colorName := ""
		if len(args) > 1 {
			colorName = args[1]
		}
		color, valid := abacus.ParseColor(colorName)
		if !valid {
			fmt.Println("unknown color:", colorName)
			break
		}
		if _, err := s.SaveCurrent(args[0], color); err != nil {
			fmt.Println("Error:", err)
		}
	case "del":
		if len(args) == 0 {
			fmt.Println("usage: /del <name>")
			break
		}
		if err := s.DeleteVariable(args[0]); err != nil {
			fmt.Println("Error:", err)
		}
	case "load":
		if len(args) == 0 {
			fmt.Println("usage: /load <index>")
			break
		}
		index, err := strconv.Atoi(args[0])
		if err != nil {
			fmt.Println("not an index:", args[0])
			break
		}
		if err := s.LoadFromHistory(index); err != nil {
			fmt.Println("Error:", err)
			break
		}
		fmt.Println(renderLine(s))
	default:
		fmt.Println("Unknown command")
	}
	return true
}
