package sim

import "math"

// Balance holds every tuning constant of the simulation. Durations are in
// milliseconds, speeds in tiles per second.
type Balance struct {
	MaxTickMs      float64 `yaml:"max_tick_ms"`
	CollectPhaseMs float64 `yaml:"collect_phase_ms"`
	SellPhaseMs    float64 `yaml:"sell_phase_ms"`
	StartingLives  int     `yaml:"starting_lives"`

	// --- Movement ---
	PlayerSpeed        float64 `yaml:"player_speed"`
	AdversarySpeed     float64 `yaml:"adversary_speed"`
	CollectSpeedMul    float64 `yaml:"collect_speed_mul"`
	SpeedBoostMul      float64 `yaml:"speed_boost_mul"`
	SpeedShoesPerLevel float64 `yaml:"speed_shoes_per_level"`

	// --- High state ---
	HighSpeedMul       float64 `yaml:"high_speed_mul"`
	HighDurationMs     float64 `yaml:"high_duration_ms"`
	HighPerToleranceMs float64 `yaml:"high_per_tolerance_ms"`

	// --- Detection ---
	DetectionRadius         float64 `yaml:"detection_radius"`
	DetectionPerStreetSmart float64 `yaml:"detection_per_street_smart"`
	MinDetectionRadius      float64 `yaml:"min_detection_radius"`
	HeatDetectionBonus      float64 `yaml:"heat_detection_bonus"`
	AIIntervalMs            float64 `yaml:"ai_interval_ms"`

	// --- Heat ---
	HeatMax           float64 `yaml:"heat_max"`
	HeatPerSale       float64 `yaml:"heat_per_sale"`
	PassiveHeatPerSec float64 `yaml:"passive_heat_per_sec"`

	// --- Economy ---
	UnitPrice          int     `yaml:"unit_price"`
	SaleMulPerLevel    float64 `yaml:"sale_mul_per_level"`
	MaxSaleUnits       int     `yaml:"max_sale_units"`
	CapturePenalty     float64 `yaml:"capture_penalty"`
	BaseCustomers      int     `yaml:"base_customers"`
	AdvertisingBonuses []int   `yaml:"advertising_bonuses"`
	CustomerMinDist    int     `yaml:"customer_min_dist"`

	// --- Items ---
	ItemDensity float64     `yaml:"item_density"`
	ItemWeights ItemWeights `yaml:"item_weights"`

	// --- Adversaries ---
	MaxAdversaries        int     `yaml:"max_adversaries"`
	DaysPerExtraAdversary int     `yaml:"days_per_extra_adversary"`
	AdversarySpeedPerDay  float64 `yaml:"adversary_speed_per_day"`
	DormancyBaseMs        float64 `yaml:"dormancy_base_ms"`
	DormancyStaggerMs     float64 `yaml:"dormancy_stagger_ms"`
	KnockoutRedeployMs    float64 `yaml:"knockout_redeploy_ms"`
	RevealRadius          int     `yaml:"reveal_radius"`

	// ContactArrests routes unprotected contact straight to capture
	// instead of a confrontation.
	ContactArrests bool `yaml:"contact_arrests"`

	// --- Power-ups ---
	PowerUpsMin      int              `yaml:"power_ups_min"`
	PowerUpsMax      int              `yaml:"power_ups_max"`
	PowerUpMinDist   int              `yaml:"power_up_min_dist"`
	PowerUpDurations PowerUpDurations `yaml:"power_up_durations"`
	MagnetRadius     int              `yaml:"magnet_radius"`
	MagnetPull       float64          `yaml:"magnet_pull"`
}

// ItemWeights are the relative odds of each collectible category.
type ItemWeights struct {
	Crack   int `yaml:"crack"`
	Weed    int `yaml:"weed"`
	Coke    int `yaml:"coke"`
	Pills   int `yaml:"pills"`
	Lean    int `yaml:"lean"`
	Shrooms int `yaml:"shrooms"`
}

// PowerUpDurations are the modifier lifetimes granted by each pickup.
type PowerUpDurations struct {
	SpeedBoostMs float64 `yaml:"speed_boost_ms"`
	CopBlindMs   float64 `yaml:"cop_blind_ms"`
	DoubleCashMs float64 `yaml:"double_cash_ms"`
	MagnetMs     float64 `yaml:"magnet_ms"`
}

// DefaultBalance returns the stock tuning.
func DefaultBalance() Balance {
	return Balance{
		MaxTickMs:      100,
		CollectPhaseMs: 15000,
		SellPhaseMs:    60000,
		StartingLives:  3,

		PlayerSpeed:        4.0625,  // 130 px/s on a 32 px tile
		AdversarySpeed:     2.96875, // 95 px/s
		CollectSpeedMul:    1.4,
		SpeedBoostMul:      1.5,
		SpeedShoesPerLevel: 0.15,

		HighSpeedMul:       2.8,
		HighDurationMs:     5000,
		HighPerToleranceMs: 2500,

		DetectionRadius:         5,
		DetectionPerStreetSmart: 1.5,
		MinDetectionRadius:      2,
		HeatDetectionBonus:      4,
		AIIntervalMs:            300,

		HeatMax:           100,
		HeatPerSale:       4,
		PassiveHeatPerSec: 0.5,

		UnitPrice:          20,
		SaleMulPerLevel:    0.25,
		MaxSaleUnits:       5,
		CapturePenalty:     0.25,
		BaseCustomers:      6,
		AdvertisingBonuses: []int{2, 5},
		CustomerMinDist:    4,

		ItemDensity: 0.5,
		ItemWeights: ItemWeights{Crack: 30, Weed: 25, Coke: 15, Pills: 15, Lean: 10, Shrooms: 5},

		MaxAdversaries:        3,
		DaysPerExtraAdversary: 3,
		AdversarySpeedPerDay:  0.03,
		DormancyBaseMs:        1500,
		DormancyStaggerMs:     3000,
		KnockoutRedeployMs:    4000,
		RevealRadius:          3,

		PowerUpsMin:    4,
		PowerUpsMax:    6,
		PowerUpMinDist: 3,
		PowerUpDurations: PowerUpDurations{
			SpeedBoostMs: 6000,
			CopBlindMs:   8000,
			DoubleCashMs: 10000,
			MagnetMs:     7000,
		},
		MagnetRadius: 2,
		MagnetPull:   3.75,
	}
}

// PlayerBaseSpeed returns the post-upgrade, pre-modifier player speed.
func (b Balance) PlayerBaseSpeed(speedShoes int) float64 {
	return b.PlayerSpeed * (1 + b.SpeedShoesPerLevel*float64(speedShoes))
}

// DetectionFor returns the base detection radius after street smarts.
func (b Balance) DetectionFor(streetSmarts int) float64 {
	return math.Max(b.MinDetectionRadius, b.DetectionRadius-b.DetectionPerStreetSmart*float64(streetSmarts))
}

// SaleMultiplier returns the earnings multiplier for a product level.
func (b Balance) SaleMultiplier(betterProduct int) float64 {
	return 1 + b.SaleMulPerLevel*float64(betterProduct)
}

// HighDuration returns how long one consumable lasts.
func (b Balance) HighDuration(tolerance int) float64 {
	return b.HighDurationMs + b.HighPerToleranceMs*float64(tolerance)
}

// CustomerCount returns customers spawned for an advertising tier. Each
// tier bought adds its own bonus on top of the ones below it.
func (b Balance) CustomerCount(tier int) int {
	n := b.BaseCustomers
	for i := 0; i < tier && i < len(b.AdvertisingBonuses); i++ {
		n += b.AdvertisingBonuses[i]
	}
	return n
}

// AdversaryCount returns how many adversaries work a given day.
func (b Balance) AdversaryCount(day int) int {
	per := b.DaysPerExtraAdversary
	if per <= 0 {
		per = 1
	}
	n := 1 + (day-1)/per
	if n > b.MaxAdversaries {
		n = b.MaxAdversaries
	}
	return n
}

// AdversarySpeedScale returns the day-based speed multiplier.
func (b Balance) AdversarySpeedScale(day int) float64 {
	return 1 + b.AdversarySpeedPerDay*float64(day-1)
}

// EffectiveDetection adds the heat bonus to a base radius.
func (b Balance) EffectiveDetection(base, heat float64) float64 {
	if b.HeatMax <= 0 {
		return base
	}
	return base + heat/b.HeatMax*b.HeatDetectionBonus
}
