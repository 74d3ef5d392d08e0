package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

func TestRenderFullForm(t *testing.T) {
	tests := []struct {
		name  string
		card  types.Card
		width int
		want  string
	}{
		{
			name:  "creature wrapped to 30 columns",
			card:  testCards["Merfolk Trickster"],
			width: 30,
			want: `Merfolk Trickster       {U}{U}
    Creature — Merfolk Wizard
Flash
When Merfolk Trickster enters
the battlefield, tap target
creature an opponent controls.
It loses all abilities until
end of turn.
                           2/2`,
		},
		{
			name:  "planeswalker loyalty right-aligned",
			card:  testCards["Teferi, Time Raveler"],
			width: 40,
			want: `Teferi, Time Raveler           {1}{W}{U}
    Legendary Planeswalker — Teferi
Each opponent can cast spells only any
time they could cast a sorcery.
+1: Until your next turn, you may cast
sorcery spells as though they had flash.
−3: Return up to one target artifact,
creature, or enchantment to its owner's
hand. Draw a card.
                                       4`,
		},
		{
			name:  "instant has no stats line",
			card:  testCards["Counterspell"],
			width: 20,
			want: `Counterspell  {U}{U}
    Instant
Counter target
spell.`,
		},
		{
			name:  "hybrid cost printed in full",
			card:  testCards["Steel of the Godhead"],
			width: 0,
			want: `Steel of the Godhead {2}{W/U}
Enchantment — Aura
Enchant creature
As long as enchanted creature is white, it gets +1/+1 and has lifelink.
As long as enchanted creature is blue, it gets +1/+1 and can't be blocked.`,
		},
		{
			name:  "land without cost or width",
			card:  testCards["Polluted Delta"],
			width: 0,
			want: `Polluted Delta
Land
{T}, Pay 1 life, Sacrifice Polluted Delta: Search your library for an Island or Swamp card, put it onto the battlefield, then shuffle your library.`,
		},
		{
			name:  "unwrapped creature keeps natural stats",
			card:  types.Card{Name: "Grizzly Bears", ManaCost: []string{"1", "G"}, TypeLine: "Creature — Bear", Power: "2", Toughness: "2"},
			width: 0,
			want: `Grizzly Bears {1}{G}
Creature — Bear
2/2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderFullForm(tt.card, tt.width)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("RenderFullForm() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderFullFormOverflowsNarrowWidth(t *testing.T) {
	card := types.Card{
		Name:      "Atogatog",
		ManaCost:  []string{"W", "U", "B", "R", "G"},
		TypeLine:  "Legendary Creature — Atog",
		Text:      "Sacrifice an artifact creature: Atogatog gets +X/+X until end of turn, where X is the sacrificed creature's power.",
		Power:     "5",
		Toughness: "5",
	}

	got, err := RenderFullForm(card, 15)
	require.NoError(t, err)
	lines := strings.Split(got, "\n")

	assert.Equal(t, "Atogatog {W}{U}{B}{R}{G}", lines[0], "header overflows with a single space")
	assert.Equal(t, "    Legendary Creature — Atog", lines[1], "type line is never wrapped")
	assert.Greater(t, displayWidth(lines[1]), 15)
	assert.Equal(t, "            5/5", lines[len(lines)-1])
	for _, line := range lines[2 : len(lines)-1] {
		if displayWidth(line) > 15 {
			assert.NotContains(t, line, " ")
		}
	}
}

func TestRenderFullFormHeaderExactlyWidth(t *testing.T) {
	// Name and cost fill width exactly; the separating space pushes one past.
	card := types.Card{Name: "Ab Cd Efgh", ManaCost: []string{"1", "U", "U"}, TypeLine: "Instant"}
	got, err := RenderFullForm(card, 19)
	require.NoError(t, err)
	header := strings.Split(got, "\n")[0]
	assert.Equal(t, "Ab Cd Efgh {1}{U}{U}", header)
	assert.Equal(t, 20, displayWidth(header))

	got, err = RenderFullForm(card, 20)
	require.NoError(t, err)
	assert.Equal(t, "Ab Cd Efgh {1}{U}{U}", strings.Split(got, "\n")[0], "one spare column holds the gap")
}

func TestRenderFullFormTrailingLineBreak(t *testing.T) {
	card := types.Card{Name: "Opt", ManaCost: []string{"U"}, TypeLine: "Instant", Text: "Scry 1.\nDraw a card.\n"}
	got, err := RenderFullForm(card, 0)
	require.NoError(t, err)
	assert.Equal(t, "Opt {U}\nInstant\nScry 1.\nDraw a card.", got)
}

func TestRenderFullFormStatsOverflow(t *testing.T) {
	card := types.Card{Name: "Big", TypeLine: "Creature", Power: "100", Toughness: "100"}
	got, err := RenderFullForm(card, 5)
	require.NoError(t, err)
	lines := strings.Split(got, "\n")
	assert.Equal(t, "100/100", lines[len(lines)-1])
}

func TestRenderFullFormMalformed(t *testing.T) {
	_, err := RenderFullForm(malformedCard, 40)
	assert.ErrorIs(t, err, types.ErrMalformedRecord)
}
