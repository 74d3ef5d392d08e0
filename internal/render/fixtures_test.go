package render

import "github.com/mesh-intelligence/moracle/pkg/types"

// testCards are real Oracle texts used across the render tests.
var testCards = map[string]types.Card{
	"Polluted Delta": {
		Name:     "Polluted Delta",
		TypeLine: "Land",
		Text:     "{T}, Pay 1 life, Sacrifice Polluted Delta: Search your library for an Island or Swamp card, put it onto the battlefield, then shuffle your library.",
	},
	"Merfolk Trickster": {
		Name:      "Merfolk Trickster",
		ManaCost:  []string{"U", "U"},
		TypeLine:  "Creature — Merfolk Wizard",
		Text:      "Flash\nWhen Merfolk Trickster enters the battlefield, tap target creature an opponent controls. It loses all abilities until end of turn.",
		Power:     "2",
		Toughness: "2",
	},
	"Oath of Teferi": {
		Name:     "Oath of Teferi",
		ManaCost: []string{"3", "W", "U"},
		TypeLine: "Legendary Enchantment",
		Text:     "When Oath of Teferi enters the battlefield, exile another target permanent you control. Return it to the battlefield under its owner's control at the beginning of the next end step.\nYou may activate the loyalty abilities of planeswalkers you control twice each turn rather than only once.",
	},
	"Counterspell": {
		Name:     "Counterspell",
		ManaCost: []string{"U", "U"},
		TypeLine: "Instant",
		Text:     "Counter target spell.",
	},
	"Wrath of God": {
		Name:     "Wrath of God",
		ManaCost: []string{"2", "W", "W"},
		TypeLine: "Sorcery",
		Text:     "Destroy all creatures. They can't be regenerated.",
	},
	"Helm of the Host": {
		Name:     "Helm of the Host",
		ManaCost: []string{"4"},
		TypeLine: "Legendary Artifact — Equipment",
		Text:     "At the beginning of combat on your turn, create a token that's a copy of equipped creature, except the token isn't legendary if equipped creature is legendary. That token gains haste.\nEquip {5}",
	},
	"Steel of the Godhead": {
		Name:     "Steel of the Godhead",
		ManaCost: []string{"2", "W/U"},
		TypeLine: "Enchantment — Aura",
		Text:     "Enchant creature\nAs long as enchanted creature is white, it gets +1/+1 and has lifelink.\nAs long as enchanted creature is blue, it gets +1/+1 and can't be blocked.",
	},
	"Ephara, God of the Polis": {
		Name:      "Ephara, God of the Polis",
		ManaCost:  []string{"2", "W", "U"},
		TypeLine:  "Legendary Enchantment Creature — God",
		Text:      "Indestructible\nAs long as your devotion to white and blue is less than seven, Ephara isn't a creature.\nAt the beginning of each upkeep, if you had another creature enter the battlefield under your control last turn, draw a card.",
		Power:     "6",
		Toughness: "5",
	},
	"Teferi, Time Raveler": {
		Name:     "Teferi, Time Raveler",
		ManaCost: []string{"1", "W", "U"},
		TypeLine: "Legendary Planeswalker — Teferi",
		Text:     "Each opponent can cast spells only any time they could cast a sorcery.\n+1: Until your next turn, you may cast sorcery spells as though they had flash.\n−3: Return up to one target artifact, creature, or enchantment to its owner's hand. Draw a card.",
		Loyalty:  "4",
	},
}

// malformedCard carries both loyalty and power/toughness.
var malformedCard = types.Card{
	Name:      "Gideon Oddity",
	ManaCost:  []string{"2", "W"},
	TypeLine:  "Legendary Planeswalker Creature — Gideon",
	Text:      "Prevent all damage.",
	Power:     "4",
	Toughness: "4",
	Loyalty:   "3",
}
