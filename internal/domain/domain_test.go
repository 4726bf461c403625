package domain

import "testing"

func TestGrid_OutOfBoundsReadsAsWall(t *testing.T) {
	g := NewGrid(8)
	if g.At(-1, 0) != OutOfBounds || g.At(0, 8) != OutOfBounds {
		t.Error("Out-of-bounds reads must return the sentinel")
	}
	if !g.Blocked(-1, 0) || !g.Blocked(8, 8) {
		t.Error("Out-of-bounds cells must read as blocked")
	}
	if g.Blocked(3, 3) {
		t.Error("Fresh grid interior must be passable")
	}
}

func TestGrid_SetIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid(8)
	g.Set(-1, 0, 5)
	g.Set(8, 3, 5)
	for _, c := range g.Cells() {
		if c != 0 {
			t.Fatal("Out-of-bounds writes must be dropped")
		}
	}
}

func TestThemeForFloor_CyclesAndClamps(t *testing.T) {
	if ThemeForFloor(1) != ThemeDungeon {
		t.Error("Floor 1 must use the first theme")
	}
	if ThemeForFloor(6) != ThemeDungeon {
		t.Error("Themes must cycle every 5 floors")
	}
	if ThemeForFloor(-3) != ThemeDungeon {
		t.Error("Nonsense floor numbers must clamp to floor 1")
	}
	if ThemeForFloor(5) != ThemeHellscape {
		t.Error("Floor 5 must use the last theme of the cycle")
	}
}

func TestThemeMaterials_DisjointPerTheme(t *testing.T) {
	seen := map[int]bool{}
	for th := FloorTheme(0); th < ThemeCount; th++ {
		for _, m := range append(th.Palette(), th.BorderMaterial()) {
			if m <= 0 {
				t.Fatalf("Material code must be positive, got %d", m)
			}
			if seen[m] {
				t.Fatalf("Material %d reused across themes", m)
			}
			seen[m] = true
		}
	}
}

func TestBossForFloor_Rotation(t *testing.T) {
	cases := []struct {
		floor int
		want  EnemyClass
	}{
		{5, ClassButcher},
		{10, ClassSummoner},
		{15, ClassTyrant},
		{20, ClassButcher},
	}
	for _, c := range cases {
		if got := BossForFloor(c.floor); got != c.want {
			t.Errorf("BossForFloor(%d) = %s, want %s", c.floor, got.String(), c.want.String())
		}
	}
}

func TestHealthFraction(t *testing.T) {
	e := Enemy{Health: 200, MaxHealth: 400}
	if f := e.HealthFraction(); f != 0.5 {
		t.Errorf("Expected 0.5, got %f", f)
	}
	e.MaxHealth = 0
	if f := e.HealthFraction(); f != 0 {
		t.Errorf("Zero max health must read as 0, got %f", f)
	}
}

func TestStateClone_IsolatesSlices(t *testing.T) {
	state := GameState{
		Grid:    NewGrid(8),
		Enemies: []Enemy{{ID: 1, Health: 30}},
		Pickups: []Pickup{{ID: 1, Kind: PickupHealth}},
	}
	clone := state.Clone()
	clone.Enemies[0].Health = 1
	clone.Pickups[0].Kind = PickupAmmo

	if state.Enemies[0].Health != 30 {
		t.Error("Clone must copy the enemy slice")
	}
	if state.Pickups[0].Kind != PickupHealth {
		t.Error("Clone must copy the pickup slice")
	}
}
