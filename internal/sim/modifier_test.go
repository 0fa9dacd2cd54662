package sim

import "testing"

func TestLedger_RefreshReplacesRemaining(t *testing.T) {
	var l Ledger
	if l.Activate(ModSpeedBoost, 6000) {
		t.Fatal("first activation is not a refresh")
	}
	l.Decay(1000)
	if !l.Activate(ModSpeedBoost, 3000) {
		t.Fatal("second activation should refresh")
	}
	if l.Len() != 1 {
		t.Fatalf("expected one instance, got %d", l.Len())
	}
	left, ok := l.Remaining(ModSpeedBoost)
	if !ok || left != 3000 {
		t.Fatalf("remaining should be replaced with 3000, got %.0f", left)
	}
}

func TestLedger_DecayExpiresInOrder(t *testing.T) {
	var l Ledger
	l.Activate(ModMagnet, 500)
	l.Activate(ModCopBlind, 2000)
	l.Activate(ModDoubleCash, 400)

	expired := l.Decay(500)
	if len(expired) != 2 || expired[0] != ModMagnet || expired[1] != ModDoubleCash {
		t.Fatalf("unexpected expiry order: %v", expired)
	}
	if l.Active(ModMagnet) || !l.Active(ModCopBlind) {
		t.Fatal("magnet should be gone and cop blind still running")
	}
	if left, _ := l.Remaining(ModCopBlind); left != 1500 {
		t.Fatalf("cop blind should have 1500 left, got %.0f", left)
	}
	l.Clear()
	if l.Len() != 0 {
		t.Fatal("clear should drop everything")
	}
}

func TestLedger_SnapshotIsACopy(t *testing.T) {
	var l Ledger
	l.Activate(ModSpeedBoost, 100)
	snap := l.Snapshot()
	snap[0].RemainingMs = 99999
	if left, _ := l.Remaining(ModSpeedBoost); left != 100 {
		t.Fatal("snapshot must not alias the ledger")
	}
}

func TestPowerUpDurations_PerKind(t *testing.T) {
	d := DefaultBalance().PowerUpDurations
	for k := ModifierKind(0); k < modifierKindCount; k++ {
		if d.Duration(k) <= 0 {
			t.Errorf("%s: no duration configured", k)
		}
	}
}
