package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arena-weather/internal/location"
)

var (
	flagProvinceSeed uint32
	flagWildX        int
	flagWildY        int
	flagLocalCity    int
	flagProvince     int
	flagCityType     string
)

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "World map location helpers",
	Long:  `Inspect how world map locations derive their generator seeds and layout.`,
}

var wildSeedCmd = &cobra.Command{
	Use:   "wild-seed",
	Short: "Derive a wilderness dungeon seed",
	Long: `Print the seed of the wilderness dungeon in block (x, y) around a city.

Examples:
  arena-weather location wild-seed --province-seed 12345 --x 3 --y 9`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		seed := location.WildDungeonSeed(flagProvinceSeed, flagWildX, flagWildY)
		fmt.Printf("Wild dungeon seed: %d (0x%08x)\n", seed, seed)
	},
}

var cityCmd = &cobra.Command{
	Use:   "city",
	Short: "Show the layout of a city slot",
	Long: `Print the global ID, block count and main quest temple override of a
city slot.

Examples:
  arena-weather location city --province 7 --local 0 --type city-state`,
	Args: cobra.NoArgs,
	Run:  runCity,
}

func init() {
	wildSeedCmd.Flags().Uint32Var(&flagProvinceSeed, "province-seed", 0, "Province seed")
	wildSeedCmd.Flags().IntVar(&flagWildX, "x", 0, "Wilderness block X")
	wildSeedCmd.Flags().IntVar(&flagWildY, "y", 0, "Wilderness block Y")

	cityCmd.Flags().IntVar(&flagProvince, "province", 0, "Province ID")
	cityCmd.Flags().IntVar(&flagLocalCity, "local", 0, "Local city ID within the province")
	cityCmd.Flags().StringVar(&flagCityType, "type", "city-state", "City type: city-state, town, village")

	locationCmd.AddCommand(wildSeedCmd)
	locationCmd.AddCommand(cityCmd)
}

func runCity(_ *cobra.Command, _ []string) {
	if flagLocalCity < 0 || flagLocalCity >= location.CitiesPerProvince {
		exitf("local city ID must be in [0, %d)", location.CitiesPerProvince)
	}

	cityType, err := location.ParseCityType(flagCityType)
	if err != nil {
		exitf("%v", err)
	}

	globalID := location.GlobalCityID(flagLocalCity, flagProvince)
	fmt.Printf("Global city ID:  %d\n", globalID)
	fmt.Printf("Type:            %s\n", cityType)
	fmt.Printf("Blocks per side: %d\n", cityType.BlocksPerSide())

	if o, ok := location.TempleOverrideFor(globalID); ok {
		fmt.Printf("Temple override: model %d, suffix %d, menu names %d\n",
			o.ModelIndex, o.SuffixIndex, o.MenuNamesIndex)
	}
}
