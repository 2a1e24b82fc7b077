package content

// Action card catalog plus the level-gated deck pools. Damage, block,
// heal, and cost numbers come from the Fibonacci sequence.

var cardOrder = []string{
	"quick_strike",
	"hodl_shield",
	"buy_the_dip",
	"shill_post",
	"gas_fee_burn",
	"dev_exploit",
	"reposition",
	"meme_energy",
	"fud_storm",
	"leverage_up",
	"cold_storage",
	"flash_crash",
	"fomo_frenzy",
	"counter_trade",
	"margin_call",
	"liquidity_drain",
	"mirror_market",
	"whale_swap",
	"pump_signal",
	"diamond_hands",
	"moon_shot",
	"genesis_block",
	"infinite_pump",
}

var cardCatalog = map[string]ActionCard{
	"quick_strike": {
		ID: "quick_strike", Name: "Quick Strike", Icon: "⚡",
		Type: CardAttack, Rarity: RarityCommon, MPCost: 0, Damage: 8,
	},
	"hodl_shield": {
		ID: "hodl_shield", Name: "HODL Shield", Icon: "🛡️",
		Type: CardDefense, Rarity: RarityCommon, MPCost: 2, Block: 8,
	},
	"buy_the_dip": {
		ID: "buy_the_dip", Name: "Buy the Dip", Icon: "📉",
		Type: CardSupport, Rarity: RarityCommon, MPCost: 3, Heal: 13,
	},
	"shill_post": {
		ID: "shill_post", Name: "Shill Post", Icon: "📢",
		Type: CardAttack, Rarity: RarityCommon, MPCost: 2, Damage: 5,
		Effects: []EffectTag{EffectWeaken},
	},
	"gas_fee_burn": {
		ID: "gas_fee_burn", Name: "Gas Fee Burn", Icon: "🔥",
		Type: CardAttack, Rarity: RarityUncommon, MPCost: 3, Damage: 5,
		Effects: []EffectTag{EffectBurn},
	},
	"dev_exploit": {
		ID: "dev_exploit", Name: "Dev Exploit", Icon: "🧑‍💻",
		Type: CardAttack, Rarity: RarityUncommon, MPCost: 3, Damage: 5,
		StatBonus: "dev",
	},
	"reposition": {
		ID: "reposition", Name: "Reposition", Icon: "🔀",
		Type: CardSupport, Rarity: RarityCommon, MPCost: 1,
		Effects: []EffectTag{EffectMove},
	},
	"meme_energy": {
		ID: "meme_energy", Name: "Meme Energy", Icon: "🐸",
		Type: CardSupport, Rarity: RarityCommon, MPCost: 0, MPRestore: 5,
	},
	"fud_storm": {
		ID: "fud_storm", Name: "FUD Storm", Icon: "🌩️",
		Type: CardAttack, Rarity: RarityUncommon, MPCost: 4, Damage: 8,
		Effects: []EffectTag{EffectExpose},
	},
	"leverage_up": {
		ID: "leverage_up", Name: "Leverage Up", Icon: "📈",
		Type: CardSupport, Rarity: RarityUncommon, MPCost: 3,
		Effects: []EffectTag{EffectAttackBuff},
	},
	"cold_storage": {
		ID: "cold_storage", Name: "Cold Storage", Icon: "🧊",
		Type: CardDefense, Rarity: RarityUncommon, MPCost: 3, Block: 5,
		Effects: []EffectTag{EffectDefenseBuff},
	},

	// Unlocked at level 5.
	"flash_crash": {
		ID: "flash_crash", Name: "Flash Crash", Icon: "💥",
		Type: CardAttack, Rarity: RarityRare, MPCost: 5, Damage: 13,
		Effects: []EffectTag{EffectPierce},
	},
	"fomo_frenzy": {
		ID: "fomo_frenzy", Name: "FOMO Frenzy", Icon: "😱",
		Type: CardAttack, Rarity: RarityRare, MPCost: 4, Damage: 8,
		Effects: []EffectTag{EffectFomo},
	},
	"counter_trade": {
		ID: "counter_trade", Name: "Counter Trade", Icon: "↩️",
		Type: CardDefense, Rarity: RarityRare, MPCost: 3,
		Effects: []EffectTag{EffectCounter},
	},
	"margin_call": {
		ID: "margin_call", Name: "Margin Call", Icon: "📞",
		Type: CardSpecial, Rarity: RarityRare, MPCost: 5, Damage: 5,
		Effects: []EffectTag{EffectStun},
	},

	// Unlocked at level 15.
	"liquidity_drain": {
		ID: "liquidity_drain", Name: "Liquidity Drain", Icon: "🧛",
		Type: CardAttack, Rarity: RarityEpic, MPCost: 5, Damage: 13,
		Effects: []EffectTag{EffectLifesteal},
	},
	"mirror_market": {
		ID: "mirror_market", Name: "Mirror Market", Icon: "🪞",
		Type: CardDefense, Rarity: RarityEpic, MPCost: 4,
		Effects: []EffectTag{EffectReflect},
	},
	"whale_swap": {
		ID: "whale_swap", Name: "Whale Swap", Icon: "🔄",
		Type: CardSpecial, Rarity: RarityEpic, MPCost: 4,
		Effects: []EffectTag{EffectSwap},
	},
	"pump_signal": {
		ID: "pump_signal", Name: "Pump Signal", Icon: "🚀",
		Type: CardSupport, Rarity: RarityEpic, MPCost: 4,
		Effects: []EffectTag{EffectSpeedBuff},
	},

	// Unlocked at level 25.
	"diamond_hands": {
		ID: "diamond_hands", Name: "Diamond Hands", Icon: "💎",
		Type: CardDefense, Rarity: RarityEpic, MPCost: 5, Block: 13,
		StatBonus: "str",
		Effects:   []EffectTag{EffectImmunity},
	},
	"moon_shot": {
		ID: "moon_shot", Name: "Moon Shot", Icon: "🌕",
		Type: CardAttack, Rarity: RarityEpic, MPCost: 6, TokenCost: 5, Damage: 21,
	},

	// Unlocked at level 40.
	"genesis_block": {
		ID: "genesis_block", Name: "Genesis Block", Icon: "🧱",
		Type: CardSpecial, Rarity: RarityLegendary, MPCost: 8, TokenCost: 13, Damage: 34,
		Effects: []EffectTag{EffectPierce, EffectLifesteal},
	},
	"infinite_pump": {
		ID: "infinite_pump", Name: "Infinite Pump", Icon: "♾️",
		Type: CardSupport, Rarity: RarityLegendary, MPCost: 6, Heal: 21, MPRestore: 8,
		Effects: []EffectTag{EffectAttackBuff, EffectDefenseBuff},
	},
}

// BaseDeck is the card pool every player starts with. Duplicates are
// deliberate: commons appear more than once so early hands stay playable.
var BaseDeck = []string{
	"quick_strike", "quick_strike", "quick_strike",
	"hodl_shield", "hodl_shield",
	"buy_the_dip",
	"shill_post", "shill_post",
	"gas_fee_burn",
	"dev_exploit",
	"reposition",
	"meme_energy", "meme_energy",
	"fud_storm",
	"leverage_up",
	"cold_storage",
}

// DeckUnlock is a level-gated addition to the player's card pool.
type DeckUnlock struct {
	Level int
	Cards []string
}

// DeckUnlocks lists bonus pools in ascending level order. Thresholds are
// inclusive: a level 5 player has the level 5 pool.
var DeckUnlocks = []DeckUnlock{
	{Level: 5, Cards: []string{"flash_crash", "fomo_frenzy", "counter_trade", "margin_call"}},
	{Level: 15, Cards: []string{"liquidity_drain", "mirror_market", "whale_swap", "pump_signal"}},
	{Level: 25, Cards: []string{"diamond_hands", "moon_shot"}},
	{Level: 40, Cards: []string{"genesis_block", "infinite_pump"}},
}
