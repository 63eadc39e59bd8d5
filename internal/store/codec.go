package store

import (
	"encoding/json"

	"github.com/abacist/abacus/internal/token"
)

// storedToken is the serialized form of a token. Colors are stored by
// palette name so rows stay readable if the palette order ever changes.
type storedToken struct {
	ID    string `json:"id,omitempty"`
	Kind  int    `json:"kind"`
	Value string `json:"value,omitempty"`
	Op    int    `json:"op,omitempty"`
	Paren int    `json:"paren,omitempty"`
	Label string `json:"label,omitempty"`
	Unit  string `json:"unit,omitempty"`
	Color string `json:"color,omitempty"`
}

// encodeTokens serializes a token sequence for a TEXT column.
func encodeTokens(tokens []token.Token) (string, error) {
	rows := make([]storedToken, len(tokens))
	for i, t := range tokens {
		rows[i] = storedToken{
			ID:    t.ID,
			Kind:  int(t.Kind),
			Value: t.Value,
			Op:    int(t.Op),
			Paren: int(t.Paren),
			Label: t.Label,
			Unit:  t.Unit,
			Color: t.Color.String(),
		}
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTokens restores a token sequence, recomputing derived labels.
func decodeTokens(data string) ([]token.Token, error) {
	var rows []storedToken
	if err := json.Unmarshal([]byte(data), &rows); err != nil {
		return nil, err
	}
	out := make([]token.Token, len(rows))
	for i, r := range rows {
		color, _ := token.ParseColor(r.Color)
		t := token.Token{
			ID:    r.ID,
			Kind:  token.Kind(r.Kind),
			Value: r.Value,
			Op:    token.Op(r.Op),
			Paren: token.Paren(r.Paren),
			Label: r.Label,
			Unit:  r.Unit,
			Color: color,
		}
		t.Refresh()
		out[i] = t
	}
	return out, nil
}
