package location

import (
	"math"
	"testing"
)

func TestWildDungeonSeed(t *testing.T) {
	tests := []struct {
		name         string
		provinceSeed uint32
		x, y         int
		expected     uint32
	}{
		{"origin", 1000, 0, 0, 1000},
		{"row offset", 1000, 3, 2, 1000 + 2*64 + 3},
		{"offset truncated to 16 bits", 0, 0, 1024, 0},
		{"offset truncated keeps low bits", 0, 5, 1025, 64 + 5},
		{"sum wraps at 32 bits", math.MaxUint32, 1, 0, 0},
		{"negative offset masked", 10, -1, 0, 10 + 0xFFFF},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := WildDungeonSeed(tc.provinceSeed, tc.x, tc.y); got != tc.expected {
				t.Errorf("WildDungeonSeed(%d, %d, %d) = %d, expected %d",
					tc.provinceSeed, tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCityBlocksPerSide(t *testing.T) {
	tests := []struct {
		typ      CityType
		expected int
	}{
		{CityState, 6},
		{Town, 5},
		{Village, 4},
	}

	for _, tc := range tests {
		city := NewCity(CityParams{Point: Point{Name: "Test"}, Type: tc.typ})
		if got := city.City().BlocksPerSide; got != tc.expected {
			t.Errorf("%s BlocksPerSide = %d, expected %d", tc.typ, got, tc.expected)
		}
	}
}

func TestTempleOverrides(t *testing.T) {
	tests := []struct {
		name     string
		local    int
		province int
		expected TempleOverride
		ok       bool
	}{
		{"global city 2", 2, 0, TempleOverride{1, 7, 23}, true},
		{"global city 224", 0, 7, TempleOverride{2, 8, 32}, true},
		{"ordinary city", 3, 1, TempleOverride{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			def := NewCity(CityParams{
				Point:       Point{Name: "Testville"},
				LocalCityID: tc.local,
				ProvinceID:  tc.province,
				Type:        Town,
			})
			got, ok := def.City().TempleOverride()
			if ok != tc.ok || got != tc.expected {
				t.Errorf("TempleOverride() = %+v, %v; expected %+v, %v", got, ok, tc.expected, tc.ok)
			}
		})
	}
}

func TestCityDefinition(t *testing.T) {
	def := NewCity(CityParams{
		Point:           Point{Name: "Imperial City", X: 150, Y: 90, Latitude: 0.25},
		LocalCityID:     0,
		ProvinceID:      8,
		Type:            CityState,
		TypeDisplayName: "City-State",
		Seeds:           Seeds{City: 1, Wild: 2, Province: 100, Ruler: 4, DistantSky: 5},
		Climate:         ClimateTemperate,
		Coastal:         true,
	})

	if def.Kind() != KindCity || def.Name() != "Imperial City" {
		t.Errorf("Kind/Name = %v/%q", def.Kind(), def.Name())
	}
	if def.ScreenX() != 150 || def.ScreenY() != 90 || def.Latitude() != 0.25 {
		t.Errorf("position = (%d, %d) lat %v", def.ScreenX(), def.ScreenY(), def.Latitude())
	}
	if !def.VisibleByDefault() {
		t.Error("named cities are visible by default")
	}

	city := def.City()
	if !city.Coastal || city.Premade || city.TypeDisplayName != "City-State" {
		t.Errorf("city = %+v", city)
	}
	if got := city.WildDungeonSeed(1, 1); got != 100+65 {
		t.Errorf("WildDungeonSeed(1, 1) = %d", got)
	}
}

func TestVisibleByDefault(t *testing.T) {
	unnamed := NewCity(CityParams{Type: Village})
	if unnamed.VisibleByDefault() {
		t.Error("unnamed cities are hidden")
	}

	dungeon := NewDungeon(Point{Name: "Crypt"})
	if dungeon.VisibleByDefault() {
		t.Error("dungeons are hidden until discovered")
	}
}

func TestMainQuestDungeonNames(t *testing.T) {
	p := Point{Name: "Fang Lair", X: 10, Y: 20}

	start := NewMainQuestDungeon(MainQuestStart, p, "Imperial Dungeons")
	if start.Name() != "Imperial Dungeons" {
		t.Errorf("start dungeon name = %q", start.Name())
	}
	if start.MainQuestDungeon().Type != MainQuestStart {
		t.Error("wrong main quest type")
	}

	for _, typ := range []MainQuestType{MainQuestMap, MainQuestStaff} {
		def := NewMainQuestDungeon(typ, p, "Imperial Dungeons")
		if def.Name() != "Fang Lair" {
			t.Errorf("%s dungeon name = %q", typ, def.Name())
		}
		if def.VisibleByDefault() {
			t.Errorf("%s dungeon should be hidden", typ)
		}
	}
}

func TestAccessorsPanicOnWrongKind(t *testing.T) {
	dungeon := NewDungeon(Point{Name: "Crypt"})
	_ = dungeon.Dungeon()

	tests := []struct {
		name string
		call func()
	}{
		{"City on dungeon", func() { dungeon.City() }},
		{"MainQuestDungeon on dungeon", func() { dungeon.MainQuestDungeon() }},
		{"Dungeon on city", func() {
			city := NewCity(CityParams{Type: Town})
			city.Dungeon()
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.call()
		})
	}
}

func TestGlobalCityID(t *testing.T) {
	if got := GlobalCityID(0, 7); got != 224 {
		t.Errorf("GlobalCityID(0, 7) = %d, expected 224", got)
	}
	if got := GlobalCityID(2, 0); got != 2 {
		t.Errorf("GlobalCityID(2, 0) = %d, expected 2", got)
	}
}

func TestParseCityType(t *testing.T) {
	for _, ct := range []CityType{CityState, Town, Village} {
		got, err := ParseCityType(ct.String())
		if err != nil || got != ct {
			t.Errorf("ParseCityType(%q) = %v, %v", ct.String(), got, err)
		}
	}

	if _, err := ParseCityType("hamlet"); err == nil {
		t.Error("ParseCityType should reject unknown names")
	}
}
