package standoff

// Gun is one weapon the player can carry into a standoff.
type Gun struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Cost         int     `json:"cost" yaml:"cost"`
	DrawWindowMs float64 `json:"draw_window_ms" yaml:"draw_window_ms"` // time allowed to fire after the draw call
	Accuracy     float64 `json:"accuracy" yaml:"accuracy"`             // chance a shot in time wins
	Description  string  `json:"description" yaml:"description"`
}

// DefaultGun is the weapon every run starts with.
const DefaultGun = "fists"

var guns = []Gun{
	{ID: "fists", Name: "Bare Fists", Cost: 0, DrawWindowMs: 400, Accuracy: 0.25, Description: "Better than nothing"},
	{ID: "knife", Name: "Switchblade", Cost: 75, DrawWindowMs: 450, Accuracy: 0.30, Description: "Quick but risky"},
	{ID: "pistol", Name: "9mm Pistol", Cost: 150, DrawWindowMs: 600, Accuracy: 0.50, Description: "Standard street piece"},
	{ID: "revolver", Name: ".44 Magnum", Cost: 275, DrawWindowMs: 550, Accuracy: 0.60, Description: "Heavy and slow"},
	{ID: "shotgun", Name: "Sawed-Off", Cost: 400, DrawWindowMs: 800, Accuracy: 0.70, Description: "Spread makes it easier"},
	{ID: "mac10", Name: "MAC-10", Cost: 550, DrawWindowMs: 900, Accuracy: 0.75, Description: "Compact"},
	{ID: "uzi", Name: "Uzi", Cost: 700, DrawWindowMs: 1000, Accuracy: 0.85, Description: "Spray and pray"},
	{ID: "ak47", Name: "AK-47", Cost: 1000, DrawWindowMs: 1100, Accuracy: 0.90, Description: "Street legend"},
	{ID: "rpg", Name: "RPG", Cost: 1500, DrawWindowMs: 1300, Accuracy: 0.95, Description: "Overkill"},
	{ID: "minigun", Name: "Minigun", Cost: 2500, DrawWindowMs: 1500, Accuracy: 0.99, Description: "Nobody argues with it"},
}

// Guns returns the catalog in price order.
func Guns() []Gun {
	out := make([]Gun, len(guns))
	copy(out, guns)
	return out
}

// GunByID looks up a gun. Unknown ids report false.
func GunByID(id string) (Gun, bool) {
	for _, g := range guns {
		if g.ID == id {
			return g, true
		}
	}
	return Gun{}, false
}

// GunOrDefault returns the gun for id, falling back to bare fists.
func GunOrDefault(id string) Gun {
	if g, ok := GunByID(id); ok {
		return g
	}
	return guns[0]
}
