package render

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

func TestRenderOneLine(t *testing.T) {
	tests := map[string]string{
		"Polluted Delta":           "Polluted Delta: L {T}, Pay 1 life, Sacrifice Polluted Delta: Search your library for an Island or Swamp card, put it ont",
		"Merfolk Trickster":        "Merfolk Trickster: [UU] C 2/2 Flash\tWhen Merfolk Trickster enters the battlefield, tap target creature an opponent contr",
		"Oath of Teferi":           "Oath of Teferi: [3WU] E When Oath of Teferi enters the battlefield, exile another target permanent you control. Return i",
		"Counterspell":             "Counterspell: [UU] I Counter target spell.",
		"Wrath of God":             "Wrath of God: [2WW] S Destroy all creatures. They can't be regenerated.",
		"Helm of the Host":         "Helm of the Host: [4] A At the beginning of combat on your turn, create a token that's a copy of equipped creature, exce",
		"Steel of the Godhead":     "Steel of the Godhead: [2{W/U}] E Enchant creature\tAs long as enchanted creature is white, it gets +1/+1 and has lifelink",
		"Ephara, God of the Polis": "Ephara, God of the Polis: [2WU] EC 6/5 Indestructible\tAs long as your devotion to white and blue is less than seven, Eph",
		"Teferi, Time Raveler":     "Teferi, Time Raveler: [1WU] P L:4 Each opponent can cast spells only any time they could cast a sorcery.\t+1: Until your ",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := RenderOneLine(testCards[name], 120)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRenderOneLineDefaultWidth(t *testing.T) {
	card := testCards["Oath of Teferi"]
	withDefault, err := RenderOneLine(card, 0)
	require.NoError(t, err)
	explicit, err := RenderOneLine(card, DefaultOneLineWidth)
	require.NoError(t, err)
	assert.Equal(t, explicit, withDefault)
	assert.Equal(t, DefaultOneLineWidth, utf8.RuneCountInString(withDefault))
}

func TestRenderOneLineOmitsAbsentFields(t *testing.T) {
	tests := []struct {
		name string
		card types.Card
		want string
	}{
		{
			name: "vanilla creature has no rules field",
			card: types.Card{Name: "Grizzly Bears", ManaCost: []string{"1", "G"}, TypeLine: "Creature — Bear", Power: "2", Toughness: "2"},
			want: "Grizzly Bears: [1G] C 2/2",
		},
		{
			name: "unrecognized type line contributes nothing",
			card: types.Card{Name: "Backup Plan", TypeLine: "Conspiracy", Text: "Draw an additional hand."},
			want: "Backup Plan: Draw an additional hand.",
		},
		{
			name: "basic land with no text",
			card: types.Card{Name: "Island", TypeLine: "Basic Land — Island"},
			want: "Island: L",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderOneLine(tt.card, 120)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRenderOneLineNeverExceedsWidth(t *testing.T) {
	for name, card := range testCards {
		for width := 1; width <= 130; width++ {
			got, err := RenderOneLine(card, width)
			require.NoError(t, err, name)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), width, "%s at width %d", name, width)
		}
	}
}

func TestRenderOneLineCutsMidWord(t *testing.T) {
	got, err := RenderOneLine(testCards["Counterspell"], 16)
	require.NoError(t, err)
	assert.Equal(t, "Counterspell: [U", got)
}

func TestRenderOneLineCountsCharactersNotBytes(t *testing.T) {
	card := types.Card{Name: "Æther Vial", ManaCost: []string{"1"}, TypeLine: "Artifact", Text: "At the beginning of your upkeep, you may put a charge counter on Æther Vial."}
	got, err := RenderOneLine(card, 12)
	require.NoError(t, err)
	assert.Equal(t, "Æther Vial: ", got)
	assert.True(t, utf8.ValidString(got))
}

func TestRenderOneLineMalformed(t *testing.T) {
	_, err := RenderOneLine(malformedCard, 120)
	assert.ErrorIs(t, err, types.ErrMalformedRecord)
}
