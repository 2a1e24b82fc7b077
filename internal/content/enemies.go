package content

// Enemy catalog. Base numbers are Fibonacci values so the whole curve
// retunes from the sequence; tier drives level scaling in the engine.

var enemyOrder = []string{
	"fud_bot",
	"paper_hands",
	"troll_shiller",
	"gas_goblin",
	"rug_puller",
	"whale_hunter",
	"liquidation_engine",
	"bear_whale",
	"market_maker",
	"rug_lord",
}

var enemyCatalog = map[string]EnemyTemplate{
	"fud_bot": {
		ID: "fud_bot", Name: "FUD Bot", Icon: "🤖",
		Tier: TierEmber, BaseHP: 21, BaseAtk: 3, BaseDef: 1, BaseSpd: 5,
		CritChance: 5,
		Rewards:    Rewards{XP: 13, Tokens: 5},
		Drops:      []string{"shred_of_hopium"},
	},
	"paper_hands": {
		ID: "paper_hands", Name: "Paper Hands", Icon: "🧻",
		Tier: TierEmber, BaseHP: 34, BaseAtk: 5, BaseDef: 2, BaseSpd: 8,
		CritChance: 5,
		Rewards:    Rewards{XP: 21, Tokens: 8},
		Drops:      []string{"shred_of_hopium", "dust_wallet"},
	},
	"troll_shiller": {
		ID: "troll_shiller", Name: "Troll Shiller", Icon: "🧌",
		Tier: TierSpark, BaseHP: 55, BaseAtk: 8, BaseDef: 3, BaseSpd: 8,
		CritChance: 8,
		Rewards:    Rewards{XP: 34, Tokens: 13},
		Drops:      []string{"dust_wallet"},
	},
	"gas_goblin": {
		ID: "gas_goblin", Name: "Gas Goblin", Icon: "⛽",
		Tier: TierSpark, BaseHP: 55, BaseAtk: 13, BaseDef: 2, BaseSpd: 13,
		CritChance: 10,
		Rewards:    Rewards{XP: 34, Tokens: 21},
		Drops:      []string{"gas_crystal"},
	},
	"rug_puller": {
		ID: "rug_puller", Name: "Rug Puller", Icon: "🪤",
		Tier: TierFlame, BaseHP: 89, BaseAtk: 13, BaseDef: 5, BaseSpd: 13,
		CritChance: 12,
		Rewards:    Rewards{XP: 55, Tokens: 34},
		Drops:      []string{"gas_crystal", "cold_key"},
	},
	"whale_hunter": {
		ID: "whale_hunter", Name: "Whale Hunter", Icon: "🔱",
		Tier: TierFlame, BaseHP: 89, BaseAtk: 21, BaseDef: 8, BaseSpd: 8,
		CritChance: 15,
		Rewards:    Rewards{XP: 55, Tokens: 34},
		Drops:      []string{"cold_key"},
	},
	"liquidation_engine": {
		ID: "liquidation_engine", Name: "Liquidation Engine", Icon: "⚙️",
		Tier: TierBlaze, BaseHP: 144, BaseAtk: 21, BaseDef: 13, BaseSpd: 13,
		CritChance: 15,
		Rewards:    Rewards{XP: 89, Tokens: 55},
		Drops:      []string{"cold_key", "engine_core"},
	},
	"bear_whale": {
		ID: "bear_whale", Name: "Bear Whale", Icon: "🐋",
		Tier: TierBlaze, BaseHP: 233, BaseAtk: 21, BaseDef: 13, BaseSpd: 5,
		CritChance: 18, IsBoss: true,
		Rewards: Rewards{XP: 144, Tokens: 89},
		Drops:   []string{"whale_tooth", "whale_tooth", "engine_core"},
		Behavior: `
register(function(view) {
	// Open every fourth turn with a heavy slam, otherwise trust the
	// built-in thresholds.
	if (view.turn % 4 === 0 && view.enemyHpPct > 0.3) {
		return "heavy";
	}
	return "";
});`,
	},
	"market_maker": {
		ID: "market_maker", Name: "Market Maker", Icon: "🏦",
		Tier: TierInferno, BaseHP: 377, BaseAtk: 34, BaseDef: 21, BaseSpd: 13,
		CritChance: 20,
		Rewards:    Rewards{XP: 233, Tokens: 144},
		Drops:      []string{"engine_core", "maker_sigil"},
	},
	"rug_lord": {
		ID: "rug_lord", Name: "The Rug Lord", Icon: "👑",
		Tier: TierInferno, BaseHP: 610, BaseAtk: 34, BaseDef: 21, BaseSpd: 21,
		CritChance: 25, IsBoss: true,
		Rewards: Rewards{XP: 377, Tokens: 233},
		Drops:   []string{"maker_sigil", "rug_crown"},
		Behavior: `
register(function(view) {
	// Alternates pressure once the player is wounded; lets the default
	// desperate/finisher gating handle the endgame.
	if (view.playerHpPct < 0.5 && view.enemyHpPct > 0.3) {
		return view.turn % 2 === 0 ? "aggressive" : "special";
	}
	return "";
});`,
	},
}
