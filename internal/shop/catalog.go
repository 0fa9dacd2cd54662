package shop

// Upgrade is a permanent, levelled purchase.
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Costs       []int // cost of each level; len is the max level
}

// MaxLevel returns the highest purchasable level.
func (u Upgrade) MaxLevel() int { return len(u.Costs) }

// Upgrade ids.
const (
	SpeedShoes     = "speed_shoes"
	StreetSmarts   = "street_smarts"
	Lookout        = "lookout"
	BetterProduct  = "better_product"
	CrackTolerance = "crack_tolerance"
	GetawayCar     = "getaway_car"
)

var upgrades = []Upgrade{
	{ID: SpeedShoes, Name: "Speed Shoes", Description: "Move faster through the streets", Costs: []int{100, 250, 500}},
	{ID: StreetSmarts, Name: "Street Smarts", Description: "Cops take longer to notice you", Costs: []int{200, 400}},
	{ID: Lookout, Name: "Lookout", Description: "Spot undercover cops", Costs: []int{300}},
	{ID: BetterProduct, Name: "Better Product", Description: "Customers pay more per sale", Costs: []int{250, 500}},
	{ID: CrackTolerance, Name: "Crack Tolerance", Description: "Highs last longer", Costs: []int{200, 450}},
	{ID: GetawayCar, Name: "Getaway Car", Description: "Escape one bust per day", Costs: []int{400}},
}

// AdTier is one advertising level. Tiers are bought in order.
type AdTier struct {
	Name          string
	Cost          int
	CustomerBonus int
}

var adTiers = []AdTier{
	{Name: "Word of Mouth", Cost: 100, CustomerBonus: 2},
	{Name: "Burner Phones", Cost: 300, CustomerBonus: 5},
}

// Skin is a cosmetic player color.
type Skin struct {
	ID    string
	Name  string
	Color uint32 // 0xRRGGBB
	Cost  int
	Glow  bool
}

// DefaultSkin is owned from the start.
const DefaultSkin = "default"

var skins = []Skin{
	{ID: DefaultSkin, Name: "Classic Yellow", Color: 0xffd700},
	{ID: "og_purple", Name: "OG Purple", Color: 0x9b59b6, Cost: 200},
	{ID: "neon_green", Name: "Neon Green", Color: 0x00ff41, Cost: 300, Glow: true},
	{ID: "ice_blue", Name: "Ice Blue", Color: 0x00bfff, Cost: 350},
	{ID: "blood_red", Name: "Blood Red", Color: 0xff2222, Cost: 400},
	{ID: "ghost_white", Name: "Ghost White", Color: 0xeeeeff, Cost: 500},
	{ID: "gold_plated", Name: "Gold Plated", Color: 0xffaa00, Cost: 600, Glow: true},
}

// Upgrades returns the upgrade catalog.
func Upgrades() []Upgrade { return append([]Upgrade(nil), upgrades...) }

// AdTiers returns the advertising tiers in purchase order.
func AdTiers() []AdTier { return append([]AdTier(nil), adTiers...) }

// Skins returns the skin catalog.
func Skins() []Skin { return append([]Skin(nil), skins...) }

// UpgradeByID looks up an upgrade.
func UpgradeByID(id string) (Upgrade, bool) {
	for _, u := range upgrades {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}

// SkinByID looks up a skin.
func SkinByID(id string) (Skin, bool) {
	for _, s := range skins {
		if s.ID == id {
			return s, true
		}
	}
	return Skin{}, false
}
