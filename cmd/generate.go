package cmd

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/8dcc/godsong-go/gen"
	"github.com/8dcc/godsong-go/util"
)

var complexities = map[string]gen.Complexity{
	"simple":  gen.Simple,
	"normal":  gen.Normal,
	"complex": gen.Complex,
}

var (
	genBeats      int
	genComplexity string
	genRests      bool
	genSeed       int64
)

func init() {
	generateCmd.Flags().IntVar(&genBeats, "beats", 8, "song length in beats (8, or 6 for a 6/8 song)")
	generateCmd.Flags().StringVar(&genComplexity, "complexity", "simple", "rhythm complexity")
	generateCmd.Flags().BoolVar(&genRests, "rests", false, "allow rests")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed (0 = current time)")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a random song",
	Long:  `Generates a random GodSong melody, the way TempleOS' GodSongStr does.`,
	Run: func(cmd *cobra.Command, args []string) {
		generate()
	},
}

func generate() {
	complexity, ok := complexities[genComplexity]
	if !ok {
		names := util.GetKeys(complexities)
		sort.Strings(names)
		panic(fmt.Sprintf("Unknown complexity %q, want one of: %v",
			genComplexity, strings.Join(names, ", ")))
	}
	if genBeats != 8 && genBeats != 6 {
		panic("Only 8 or 6 beat songs are supported")
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := gen.New(rand.New(rand.NewSource(seed)))
	g.UseRests(genRests)
	fmt.Println(g.Song(genBeats, complexity))
}
