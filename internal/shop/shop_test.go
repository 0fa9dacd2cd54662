package shop

import (
	"errors"
	"testing"

	"github.com/leofattal/smoking-crack/internal/sim"
)

func newState(cash int) *sim.State {
	st := sim.NewState(sim.DefaultBalance())
	st.Cash = cash
	return &st
}

func TestBuyUpgrade_LevelsAndCosts(t *testing.T) {
	st := newState(850)
	for i, want := range []int{750, 500, 0} {
		if err := BuyUpgrade(st, SpeedShoes); err != nil {
			t.Fatalf("level %d: %v", i+1, err)
		}
		if st.Cash != want || st.Upgrades.SpeedShoes != i+1 {
			t.Fatalf("level %d: cash=%d level=%d", i+1, st.Cash, st.Upgrades.SpeedShoes)
		}
	}
	st.Cash = 10000
	if err := BuyUpgrade(st, SpeedShoes); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("expected ErrMaxLevel, got %v", err)
	}
	if st.Cash != 10000 {
		t.Fatal("a refused purchase must not charge")
	}
}

func TestBuyUpgrade_Errors(t *testing.T) {
	st := newState(50)
	if err := BuyUpgrade(st, "jetpack"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if err := BuyUpgrade(st, Lookout); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if st.Upgrades.Lookout || st.Cash != 50 {
		t.Fatal("failed purchase changed state")
	}
}

func TestBuyUpgrade_BooleanUpgrades(t *testing.T) {
	st := newState(700)
	if err := BuyUpgrade(st, Lookout); err != nil {
		t.Fatal(err)
	}
	if err := BuyUpgrade(st, GetawayCar); err != nil {
		t.Fatal(err)
	}
	if !st.Upgrades.Lookout || !st.Upgrades.GetawayCar || st.Cash != 0 {
		t.Fatalf("unexpected state: %+v cash=%d", st.Upgrades, st.Cash)
	}
	if err := BuyUpgrade(st, GetawayCar); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("second car: %v", err)
	}
}

func TestBuyAdvertising_InOrder(t *testing.T) {
	st := newState(1000)
	if err := BuyAdvertising(st, 2); !errors.Is(err, ErrTierLocked) {
		t.Fatalf("expected ErrTierLocked, got %v", err)
	}
	if err := BuyAdvertising(st, 1); err != nil {
		t.Fatal(err)
	}
	if err := BuyAdvertising(st, 1); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("rebuying tier 1: %v", err)
	}
	if err := BuyAdvertising(st, 2); err != nil {
		t.Fatal(err)
	}
	if st.AdvertisingTier != 2 || st.Cash != 600 {
		t.Fatalf("tier=%d cash=%d", st.AdvertisingTier, st.Cash)
	}
	if err := BuyAdvertising(st, 3); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("tier 3: %v", err)
	}
}

func TestAdTiers_MatchBalance(t *testing.T) {
	b := sim.DefaultBalance()
	tiers := AdTiers()
	if len(tiers) != len(b.AdvertisingBonuses) {
		t.Fatalf("%d tiers vs %d balance bonuses", len(tiers), len(b.AdvertisingBonuses))
	}
	total := b.BaseCustomers
	for i, tier := range tiers {
		if tier.CustomerBonus != b.AdvertisingBonuses[i] {
			t.Errorf("tier %d bonus %d, balance says %d", i+1, tier.CustomerBonus, b.AdvertisingBonuses[i])
		}
		total += tier.CustomerBonus
		if got := b.CustomerCount(i + 1); got != total {
			t.Errorf("tier %d: customer count %d, want %d", i+1, got, total)
		}
	}
}

func TestGunsAndSkins_BuyThenEquip(t *testing.T) {
	st := newState(500)
	if err := EquipGun(st, "pistol"); !errors.Is(err, ErrNotOwned) {
		t.Fatalf("equip unowned: %v", err)
	}
	if err := BuyGun(st, "pistol"); err != nil {
		t.Fatal(err)
	}
	if st.Gun != "pistol" || st.Cash != 350 {
		t.Fatalf("gun=%s cash=%d", st.Gun, st.Cash)
	}
	if err := BuyGun(st, "pistol"); !errors.Is(err, ErrMaxLevel) {
		t.Fatalf("rebuy: %v", err)
	}
	if err := EquipGun(st, "fists"); err != nil || st.Gun != "fists" {
		t.Fatalf("equip fists: %v", err)
	}
	if err := BuyGun(st, "minigun"); !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("minigun: %v", err)
	}

	if err := Buy(st, KindSkin, "og_purple"); err != nil {
		t.Fatal(err)
	}
	if st.Skin != "og_purple" || st.Cash != 150 {
		t.Fatalf("skin=%s cash=%d", st.Skin, st.Cash)
	}
	if err := Buy(st, KindSkin, DefaultSkin); err != nil || st.Skin != DefaultSkin {
		t.Fatalf("Buy on an owned skin should equip it: %v", err)
	}
	if err := EquipSkin(st, "rainbow_unicorn"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("unknown skin: %v", err)
	}
}

func TestOffers_ReflectState(t *testing.T) {
	st := newState(300)
	st.Upgrades.StreetSmarts = 2
	st.AdvertisingTier = 1

	var smarts, ad, fists *Offer
	offers := Offers(st)
	for i := range offers {
		o := &offers[i]
		switch {
		case o.Kind == KindUpgrade && o.ID == StreetSmarts:
			smarts = o
		case o.Kind == KindAdvertising:
			ad = o
		case o.Kind == KindGun && o.ID == "fists":
			fists = o
		}
	}
	if smarts == nil || !smarts.Owned || smarts.Cost != 0 || smarts.Level != 2 {
		t.Fatalf("street smarts offer: %+v", smarts)
	}
	if ad == nil || ad.Name != "Burner Phones" || ad.Cost != 300 || !ad.Affordable(st) {
		t.Fatalf("advertising offer: %+v", ad)
	}
	if fists == nil || !fists.Owned || !fists.Equipped {
		t.Fatalf("fists offer: %+v", fists)
	}
	if err := Buy(st, KindAdvertising, ""); err != nil {
		t.Fatal(err)
	}
	for _, o := range Offers(st) {
		if o.Kind == KindAdvertising && (!o.Owned || o.Affordable(st)) {
			t.Fatalf("maxed advertising should be owned: %+v", o)
		}
	}
}

func TestPurchases_FeedTheSimulation(t *testing.T) {
	st := newState(1000)
	for _, id := range []string{StreetSmarts, BetterProduct, CrackTolerance} {
		if err := BuyUpgrade(st, id); err != nil {
			t.Fatal(err)
		}
	}
	b := sim.DefaultBalance()
	if got := b.DetectionFor(st.Upgrades.StreetSmarts); got != 3.5 {
		t.Fatalf("detection radius %.2f", got)
	}
	if got := b.SaleMultiplier(st.Upgrades.BetterProduct); got != 1.25 {
		t.Fatalf("sale multiplier %.2f", got)
	}
	if got := b.HighDuration(st.Upgrades.CrackTolerance); got != 7500 {
		t.Fatalf("high duration %.0f", got)
	}
}

func TestParseKind(t *testing.T) {
	for k := KindUpgrade; k <= KindSkin; k++ {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("%s: got %s, %v", k, got, err)
		}
	}
	if _, err := ParseKind("car"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
}
