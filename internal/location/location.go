// Package location describes the places of the world map: cities, plain
// dungeons and main quest dungeons, with the seeds that generate them.
package location

import "fmt"

// Kind is the variant of a Definition.
type Kind int

const (
	KindCity Kind = iota
	KindDungeon
	KindMainQuestDungeon
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindCity:
		return "city"
	case KindDungeon:
		return "dungeon"
	case KindMainQuestDungeon:
		return "main_quest_dungeon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Point is a location entry read from the world data: its map name,
// its screen position and its latitude.
type Point struct {
	Name     string
	X, Y     int
	Latitude float64
}

// Definition is one place on the world map. Exactly one of the variant
// payloads is set, selected by Kind.
type Definition struct {
	name     string
	x, y     int
	latitude float64
	visible  bool
	kind     Kind

	city      City
	dungeon   Dungeon
	mainQuest MainQuestDungeon
}

func newDefinition(kind Kind, name string, p Point) Definition {
	return Definition{
		name:     name,
		x:        p.X,
		y:        p.Y,
		latitude: p.Latitude,
		// Only named cities start out revealed on the map.
		visible: kind == KindCity && name != "",
		kind:    kind,
	}
}

// Name returns the display name.
func (d *Definition) Name() string { return d.name }

// ScreenX returns the map x coordinate.
func (d *Definition) ScreenX() int { return d.x }

// ScreenY returns the map y coordinate.
func (d *Definition) ScreenY() int { return d.y }

// Latitude returns the latitude of the location.
func (d *Definition) Latitude() float64 { return d.latitude }

// VisibleByDefault reports whether the location is revealed without being discovered.
func (d *Definition) VisibleByDefault() bool { return d.visible }

// Kind returns the variant.
func (d *Definition) Kind() Kind { return d.kind }

// City returns the city payload. It panics if the location is not a city.
func (d *Definition) City() *City {
	d.mustBe(KindCity)
	return &d.city
}

// Dungeon returns the dungeon payload. It panics if the location is not a dungeon.
func (d *Definition) Dungeon() *Dungeon {
	d.mustBe(KindDungeon)
	return &d.dungeon
}

// MainQuestDungeon returns the main quest payload.
// It panics if the location is not a main quest dungeon.
func (d *Definition) MainQuestDungeon() *MainQuestDungeon {
	d.mustBe(KindMainQuestDungeon)
	return &d.mainQuest
}

func (d *Definition) mustBe(k Kind) {
	if d.kind != k {
		panic(fmt.Sprintf("location: %s accessor called on %s %q", k, d.kind, d.name))
	}
}

// Dungeon is a plain dungeon. It carries no data beyond the Definition.
type Dungeon struct{}

// NewDungeon builds a dungeon location.
func NewDungeon(p Point) Definition {
	return newDefinition(KindDungeon, p.Name, p)
}

// MainQuestType identifies a main quest dungeon.
type MainQuestType int

const (
	MainQuestStart MainQuestType = iota
	MainQuestMap
	MainQuestStaff
)

// String returns the main quest dungeon type name.
func (t MainQuestType) String() string {
	switch t {
	case MainQuestStart:
		return "start"
	case MainQuestMap:
		return "map"
	case MainQuestStaff:
		return "staff"
	default:
		return fmt.Sprintf("MainQuestType(%d)", int(t))
	}
}

// MainQuestDungeon is a dungeon of the main quest line.
type MainQuestDungeon struct {
	Type MainQuestType
}

// NewMainQuestDungeon builds a main quest dungeon. The start dungeon is
// shown under startName instead of its map name.
func NewMainQuestDungeon(t MainQuestType, p Point, startName string) Definition {
	var name string
	switch t {
	case MainQuestStart:
		name = startName
	case MainQuestMap, MainQuestStaff:
		name = p.Name
	default:
		panic(fmt.Sprintf("location: unhandled main quest type %d", int(t)))
	}

	d := newDefinition(KindMainQuestDungeon, name, p)
	d.mainQuest = MainQuestDungeon{Type: t}
	return d
}
