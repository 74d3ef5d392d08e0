package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/mesh-intelligence/moracle/internal/logging"
	"github.com/mesh-intelligence/moracle/pkg/types"
)

// Data formats reported in Result.Format.
const (
	FormatAtomicV5 = "mtgjson-v5-atomic"
	FormatAllV4    = "mtgjson-v4-allcards"
)

// Result is the outcome of parsing one bulk file.
type Result struct {
	Cards   []types.Card // sorted by name
	Skipped int          // records rejected as malformed
	Format  string
}

var errNoFaces = errors.New("card has no faces")

// rawCard holds the card fields both formats share.
type rawCard struct {
	Name      string     `json:"name"`
	ManaCost  string     `json:"manaCost"`
	Type      string     `json:"type"`
	Text      string     `json:"text"`
	Power     flexString `json:"power"`
	Toughness flexString `json:"toughness"`
	Loyalty   flexString `json:"loyalty"`
}

// flexString accepts a JSON string or number; some dumps encode loyalty
// and stats as numbers.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

// Parse decodes a v5 AtomicCards or v4 AllCards document. Records that are
// not card objects or that break the stats invariant are skipped and
// counted. Returns ErrUnknownFormat when the document is neither layout.
func Parse(r io.Reader) (Result, error) {
	var top map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&top); err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}

	if data, ok := top["data"]; ok {
		if _, hasMeta := top["meta"]; hasMeta {
			var byName map[string][]json.RawMessage
			if err := json.Unmarshal(data, &byName); err != nil {
				return Result{}, fmt.Errorf("%w: v5 data: %v", ErrUnknownFormat, err)
			}
			return parseAtomic(byName), nil
		}
	}
	return parseAllCards(top)
}

// parseAtomic stores each card under its combined name using the first
// face. Multi-face cards are also stored once per face under the face's own
// name, unless another card already owns that name.
func parseAtomic(byName map[string][]json.RawMessage) Result {
	res := Result{Format: FormatAtomicV5}
	for name, faces := range byName {
		if len(faces) == 0 {
			res.skip(name, errNoFaces)
			continue
		}
		res.add(name, faces[0])
		for _, face := range faces {
			faceName := atomicFaceName(face)
			if faceName == "" || faceName == name {
				continue
			}
			if _, taken := byName[faceName]; taken {
				continue
			}
			res.add(faceName, face)
		}
	}
	res.sort()
	return res
}

// atomicFaceName returns the faceName of a v5 face, or "" when the face is
// undecodable or unnamed.
func atomicFaceName(raw json.RawMessage) string {
	var face struct {
		FaceName string `json:"faceName"`
	}
	if err := json.Unmarshal(raw, &face); err != nil {
		return ""
	}
	return strings.TrimSpace(face.FaceName)
}

func parseAllCards(top map[string]json.RawMessage) (Result, error) {
	res := Result{Format: FormatAllV4}
	for name, raw := range top {
		if trimmed := bytes.TrimSpace(raw); len(trimmed) == 0 || trimmed[0] != '{' {
			return Result{}, fmt.Errorf("%w: value for %q is not a card object", ErrUnknownFormat, name)
		}
		res.add(name, raw)
	}
	res.sort()
	return res, nil
}

// add decodes one record. The map key is the authoritative card name; the
// record's own name field is used only when the key is blank.
func (r *Result) add(key string, raw json.RawMessage) {
	var rc rawCard
	if err := json.Unmarshal(raw, &rc); err != nil {
		r.skip(key, err)
		return
	}
	name := key
	if name == "" {
		name = rc.Name
	}
	card, err := types.NewCard(name, rc.ManaCost, rc.Type, rc.Text,
		string(rc.Power), string(rc.Toughness), string(rc.Loyalty))
	if err != nil {
		r.skip(key, err)
		return
	}
	r.Cards = append(r.Cards, card)
}

func (r *Result) skip(name string, err error) {
	r.Skipped++
	logger := logging.GetLogger("ingest")
	logger.Warn().Str("card", name).Err(err).Msg("skipping malformed record")
}

func (r *Result) sort() {
	slices.SortFunc(r.Cards, func(a, b types.Card) int {
		return strings.Compare(a.Name, b.Name)
	})
}
