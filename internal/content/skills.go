package content

// Legacy skill catalog. Skills predate the deck system: MP cost plus a
// fixed cooldown instead of card cycling. Both systems stay available.

var skillOrder = []string{
	"power_surge",
	"firewall",
	"patch_up",
	"short_squeeze",
}

var skillCatalog = map[string]Skill{
	"power_surge": {
		ID: "power_surge", Name: "Power Surge", Icon: "⚡",
		MPCost: 5, Damage: 13, Cooldown: 3,
	},
	"firewall": {
		ID: "firewall", Name: "Firewall", Icon: "🧱",
		MPCost: 4, Block: 13, Cooldown: 3,
	},
	"patch_up": {
		ID: "patch_up", Name: "Patch Up", Icon: "🩹",
		MPCost: 4, Heal: 13, Cooldown: 4,
	},
	"short_squeeze": {
		ID: "short_squeeze", Name: "Short Squeeze", Icon: "🩳",
		MPCost: 6, Damage: 8, Cooldown: 4,
		Effects: []EffectTag{EffectWeaken},
	},
}
