package location

import "fmt"

// CityType is the size class of a city.
type CityType int

const (
	CityState CityType = iota
	Town
	Village
)

// String returns the city type name.
func (t CityType) String() string {
	switch t {
	case CityState:
		return "city-state"
	case Town:
		return "town"
	case Village:
		return "village"
	default:
		return fmt.Sprintf("CityType(%d)", int(t))
	}
}

// ParseCityType parses a city type name as printed by String.
func ParseCityType(name string) (CityType, error) {
	for _, t := range []CityType{CityState, Town, Village} {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("location: unknown city type %q", name)
}

// BlocksPerSide returns the width of the city in city blocks.
func (t CityType) BlocksPerSide() int {
	switch t {
	case CityState:
		return 6
	case Town:
		return 5
	case Village:
		return 4
	default:
		panic(fmt.Sprintf("location: unhandled city type %d", int(t)))
	}
}

// Climate is the climate zone of a city.
type Climate int

const (
	ClimateTemperate Climate = iota
	ClimateDesert
	ClimateMountain
)

// String returns the climate name.
func (c Climate) String() string {
	switch c {
	case ClimateTemperate:
		return "temperate"
	case ClimateDesert:
		return "desert"
	case ClimateMountain:
		return "mountain"
	default:
		return fmt.Sprintf("Climate(%d)", int(c))
	}
}

// CitiesPerProvince is the number of local city slots in a province.
const CitiesPerProvince = 32

// GlobalCityID converts a province-local city ID to a world-wide one.
func GlobalCityID(localCityID, provinceID int) int {
	return provinceID*CitiesPerProvince + localCityID
}

// TempleOverride replaces the temple of a city that hosts a main quest step.
type TempleOverride struct {
	ModelIndex     int
	SuffixIndex    int
	MenuNamesIndex int
}

var templeOverrides = map[int]TempleOverride{
	2:   {ModelIndex: 1, SuffixIndex: 7, MenuNamesIndex: 23},
	224: {ModelIndex: 2, SuffixIndex: 8, MenuNamesIndex: 32},
}

// TempleOverrideFor returns the main quest temple override of a global city, if any.
func TempleOverrideFor(globalCityID int) (TempleOverride, bool) {
	o, ok := templeOverrides[globalCityID]
	return o, ok
}

// Seeds are the generator seeds of a city.
type Seeds struct {
	City       uint32
	Wild       uint32
	Province   uint32
	Ruler      uint32
	DistantSky uint32
}

// CityParams collects what is needed to build a city location.
type CityParams struct {
	Point
	LocalCityID     int
	ProvinceID      int
	Type            CityType
	TypeDisplayName string
	Seeds           Seeds
	Climate         Climate
	Coastal         bool
	Premade         bool
}

// City is the city payload of a Definition.
type City struct {
	Type            CityType
	TypeDisplayName string
	Seeds           Seeds
	Climate         Climate
	BlocksPerSide   int
	Coastal         bool
	Premade         bool

	templeOverride    TempleOverride
	hasTempleOverride bool
}

// NewCity builds a city location.
func NewCity(p CityParams) Definition {
	d := newDefinition(KindCity, p.Name, p.Point)
	d.city = City{
		Type:            p.Type,
		TypeDisplayName: p.TypeDisplayName,
		Seeds:           p.Seeds,
		Climate:         p.Climate,
		BlocksPerSide:   p.Type.BlocksPerSide(),
		Coastal:         p.Coastal,
		Premade:         p.Premade,
	}
	d.city.templeOverride, d.city.hasTempleOverride = TempleOverrideFor(GlobalCityID(p.LocalCityID, p.ProvinceID))
	return d
}

// TempleOverride returns the main quest temple override, if the city has one.
func (c *City) TempleOverride() (TempleOverride, bool) {
	return c.templeOverride, c.hasTempleOverride
}

// WildDungeonSeed returns the seed of the wilderness dungeon in block (x, y)
// around the city.
func (c *City) WildDungeonSeed(wildBlockX, wildBlockY int) uint32 {
	return WildDungeonSeed(c.Seeds.Province, wildBlockX, wildBlockY)
}

// WildDungeonSeed derives a wilderness dungeon seed from a province seed.
// The block offset is truncated to 16 bits and the sum wraps at 32.
func WildDungeonSeed(provinceSeed uint32, wildBlockX, wildBlockY int) uint32 {
	offset := uint32(((wildBlockY << 6) + wildBlockX) & 0xFFFF)
	return provinceSeed + offset
}
