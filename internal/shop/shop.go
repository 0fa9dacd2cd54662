// Package shop applies between-day purchases to a run's state. It holds no
// state of its own; every rule reads and writes sim.State.
package shop

import (
	"errors"
	"fmt"
	"slices"

	"github.com/leofattal/smoking-crack/internal/sim"
	"github.com/leofattal/smoking-crack/internal/standoff"
)

var (
	ErrInsufficientFunds = errors.New("shop: insufficient funds")
	ErrMaxLevel          = errors.New("shop: already at max level")
	ErrUnknownItem       = errors.New("shop: unknown item")
	ErrNotOwned          = errors.New("shop: item not owned")
	ErrTierLocked        = errors.New("shop: previous tier not bought")
)

// Kind groups shop items.
type Kind int

const (
	KindUpgrade Kind = iota
	KindAdvertising
	KindGun
	KindSkin
)

func (k Kind) String() string {
	switch k {
	case KindUpgrade:
		return "upgrade"
	case KindAdvertising:
		return "advertising"
	case KindGun:
		return "gun"
	case KindSkin:
		return "skin"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// ParseKind maps a kind name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindUpgrade; k <= KindSkin; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: kind %q", ErrUnknownItem, s)
}

// Offer is one line of the shop as seen from a given state.
type Offer struct {
	Kind     Kind   `json:"kind"`
	ID       string `json:"id"`
	Name     string `json:"name"`
	Detail   string `json:"detail"`
	Cost     int    `json:"cost"`      // next price; 0 when maxed or free
	Level    int    `json:"level"`     // current level for upgrades and advertising
	MaxLevel int    `json:"max_level"` // 1 for one-off items
	Owned    bool   `json:"owned"`     // maxed upgrades, bought tiers, owned guns and skins
	Equipped bool   `json:"equipped"`
}

// Affordable reports whether st can buy the offer now.
func (o Offer) Affordable(st *sim.State) bool {
	return !o.Owned && st.Cash >= o.Cost
}

// Level returns the current level of upgrade id in st.
func Level(st *sim.State, id string) (int, error) {
	u := &st.Upgrades
	switch id {
	case SpeedShoes:
		return u.SpeedShoes, nil
	case StreetSmarts:
		return u.StreetSmarts, nil
	case Lookout:
		return boolLevel(u.Lookout), nil
	case BetterProduct:
		return u.BetterProduct, nil
	case CrackTolerance:
		return u.CrackTolerance, nil
	case GetawayCar:
		return boolLevel(u.GetawayCar), nil
	default:
		return 0, fmt.Errorf("%w: upgrade %q", ErrUnknownItem, id)
	}
}

func boolLevel(b bool) int {
	if b {
		return 1
	}
	return 0
}

func setLevel(st *sim.State, id string, lvl int) {
	u := &st.Upgrades
	switch id {
	case SpeedShoes:
		u.SpeedShoes = lvl
	case StreetSmarts:
		u.StreetSmarts = lvl
	case Lookout:
		u.Lookout = lvl > 0
	case BetterProduct:
		u.BetterProduct = lvl
	case CrackTolerance:
		u.CrackTolerance = lvl
	case GetawayCar:
		u.GetawayCar = lvl > 0
	}
}

func spend(st *sim.State, cost int) error {
	if st.Cash < cost {
		return fmt.Errorf("%w: need $%d, have $%d", ErrInsufficientFunds, cost, st.Cash)
	}
	st.Cash -= cost
	return nil
}

// BuyUpgrade raises upgrade id by one level.
func BuyUpgrade(st *sim.State, id string) error {
	up, ok := UpgradeByID(id)
	if !ok {
		return fmt.Errorf("%w: upgrade %q", ErrUnknownItem, id)
	}
	lvl, _ := Level(st, id)
	if lvl >= up.MaxLevel() {
		return fmt.Errorf("%w: %s", ErrMaxLevel, up.Name)
	}
	if err := spend(st, up.Costs[lvl]); err != nil {
		return err
	}
	setLevel(st, id, lvl+1)
	return nil
}

// BuyAdvertising buys tier (1-based). Tiers must be bought in order.
func BuyAdvertising(st *sim.State, tier int) error {
	if tier < 1 || tier > len(adTiers) {
		return fmt.Errorf("%w: advertising tier %d", ErrUnknownItem, tier)
	}
	if tier <= st.AdvertisingTier {
		return fmt.Errorf("%w: tier %d", ErrMaxLevel, tier)
	}
	if tier != st.AdvertisingTier+1 {
		return fmt.Errorf("%w: tier %d needs tier %d", ErrTierLocked, tier, tier-1)
	}
	if err := spend(st, adTiers[tier-1].Cost); err != nil {
		return err
	}
	st.AdvertisingTier = tier
	return nil
}

// BuyGun buys gun id and equips it.
func BuyGun(st *sim.State, id string) error {
	g, ok := standoff.GunByID(id)
	if !ok {
		return fmt.Errorf("%w: gun %q", ErrUnknownItem, id)
	}
	if slices.Contains(st.OwnedGuns, id) {
		return fmt.Errorf("%w: %s", ErrMaxLevel, g.Name)
	}
	if err := spend(st, g.Cost); err != nil {
		return err
	}
	st.OwnedGuns = append(st.OwnedGuns, id)
	st.Gun = id
	return nil
}

// EquipGun switches to an owned gun.
func EquipGun(st *sim.State, id string) error {
	if _, ok := standoff.GunByID(id); !ok {
		return fmt.Errorf("%w: gun %q", ErrUnknownItem, id)
	}
	if !slices.Contains(st.OwnedGuns, id) {
		return fmt.Errorf("%w: gun %q", ErrNotOwned, id)
	}
	st.Gun = id
	return nil
}

// BuySkin buys skin id and equips it.
func BuySkin(st *sim.State, id string) error {
	s, ok := SkinByID(id)
	if !ok {
		return fmt.Errorf("%w: skin %q", ErrUnknownItem, id)
	}
	if slices.Contains(st.OwnedSkins, id) {
		return fmt.Errorf("%w: %s", ErrMaxLevel, s.Name)
	}
	if err := spend(st, s.Cost); err != nil {
		return err
	}
	st.OwnedSkins = append(st.OwnedSkins, id)
	st.Skin = id
	return nil
}

// EquipSkin switches to an owned skin.
func EquipSkin(st *sim.State, id string) error {
	if _, ok := SkinByID(id); !ok {
		return fmt.Errorf("%w: skin %q", ErrUnknownItem, id)
	}
	if !slices.Contains(st.OwnedSkins, id) {
		return fmt.Errorf("%w: skin %q", ErrNotOwned, id)
	}
	st.Skin = id
	return nil
}

// Buy dispatches a purchase by kind. Advertising ignores id and buys the
// next tier.
func Buy(st *sim.State, kind Kind, id string) error {
	switch kind {
	case KindUpgrade:
		return BuyUpgrade(st, id)
	case KindAdvertising:
		return BuyAdvertising(st, st.AdvertisingTier+1)
	case KindGun:
		if slices.Contains(st.OwnedGuns, id) {
			return EquipGun(st, id)
		}
		return BuyGun(st, id)
	case KindSkin:
		if slices.Contains(st.OwnedSkins, id) {
			return EquipSkin(st, id)
		}
		return BuySkin(st, id)
	default:
		return fmt.Errorf("%w: kind %d", ErrUnknownItem, kind)
	}
}

// Offers lists every shop line for st in display order: upgrades, the
// next advertising tier, guns, skins.
func Offers(st *sim.State) []Offer {
	var out []Offer
	for _, u := range upgrades {
		lvl, _ := Level(st, u.ID)
		o := Offer{Kind: KindUpgrade, ID: u.ID, Name: u.Name, Detail: u.Description,
			Level: lvl, MaxLevel: u.MaxLevel(), Owned: lvl >= u.MaxLevel()}
		if !o.Owned {
			o.Cost = u.Costs[lvl]
		}
		out = append(out, o)
	}
	ad := Offer{Kind: KindAdvertising, ID: "advertising", Name: "Advertising",
		Level: st.AdvertisingTier, MaxLevel: len(adTiers), Owned: st.AdvertisingTier >= len(adTiers)}
	if !ad.Owned {
		next := adTiers[st.AdvertisingTier]
		ad.Name = next.Name
		ad.Cost = next.Cost
		ad.Detail = fmt.Sprintf("+%d customers per day", next.CustomerBonus)
	}
	out = append(out, ad)
	for _, g := range standoff.Guns() {
		owned := slices.Contains(st.OwnedGuns, g.ID)
		o := Offer{Kind: KindGun, ID: g.ID, Name: g.Name, MaxLevel: 1, Owned: owned,
			Equipped: st.Gun == g.ID,
			Detail:   fmt.Sprintf("%s, %d%% accuracy", g.Description, int(g.Accuracy*100+0.5))}
		if !owned {
			o.Cost = g.Cost
		}
		out = append(out, o)
	}
	for _, s := range skins {
		owned := slices.Contains(st.OwnedSkins, s.ID)
		o := Offer{Kind: KindSkin, ID: s.ID, Name: s.Name, MaxLevel: 1, Owned: owned,
			Equipped: st.Skin == s.ID}
		if !owned {
			o.Cost = s.Cost
		}
		out = append(out, o)
	}
	return out
}
