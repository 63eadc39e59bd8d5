package main

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/abacist/abacus/pkg/abacus"
)

// replay feeds a typed expression string through the session as the
// equivalent key events. Identifiers refer to saved variables; '='
// triggers evaluation.
func replay(s *abacus.Session, input string) error {
	var ident strings.Builder
	flush := func() error {
		if ident.Len() == 0 {
			return nil
		}
		name := ident.String()
		ident.Reset()
		v, ok := s.VariableByLabel(name)
		if !ok {
			return fmt.Errorf("unknown variable: %s", name)
		}
		s.InputVariable(v)
		return nil
	}
	for _, r := range input {
		if unicode.IsLetter(r) || r == '_' || (ident.Len() > 0 && unicode.IsDigit(r)) {
			ident.WriteRune(r)
			continue
		}
		if err := flush(); err != nil {
			return err
		}
		switch {
		case r >= '0' && r <= '9' || r == '.':
			s.InputDigit(r)
		case r == '(':
			s.InputParen(abacus.ParenOpen)
		case r == ')':
			s.InputParen(abacus.ParenClose)
		case r == '=':
			s.Calculate()
		case unicode.IsSpace(r):
		default:
			op := abacus.OpFromRune(r)
			if op == abacus.OpNone {
				return fmt.Errorf("unexpected character: %q", r)
			}
			s.SetOperation(op)
		}
	}
	return flush()
}
