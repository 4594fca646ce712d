package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/8dcc/godsong-go/lilypond"
	"github.com/8dcc/godsong-go/pmx"
	"github.com/8dcc/godsong-go/render"
	"github.com/8dcc/godsong-go/song"
	"github.com/8dcc/godsong-go/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(lilypondCmd)
	rootCmd.AddCommand(pmxCmd)
}

var lilypondCmd = &cobra.Command{
	Use:   "lilypond [file]",
	Short: "Converts a song to LilyPond",
	Long:  `Converts a GodSong melody (from a file or stdin) to LilyPond source.`,
	Run: func(cmd *cobra.Command, args []string) {
		convert(lilypond.New(), args)
	},
}

var pmxCmd = &cobra.Command{
	Use:   "pmx [file]",
	Short: "Converts a song to PMX",
	Long:  `Converts a GodSong melody (from a file or stdin) to PMX input.`,
	Run: func(cmd *cobra.Command, args []string) {
		convert(pmx.New(), args)
	},
}

// readSong reads the raw song from the file named in args, or stdin when no
// argument was given.
func readSong(args []string) string {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			panic("Could not read song file: " + err.Error())
		}
		return string(data)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		panic("Could not read song from stdin: " + err.Error())
	}
	return string(data)
}

func convert(r render.Renderer, args []string) {
	dec := song.NewDecoder(util.Flatten(readSong(args)))
	issues, err := render.Song(dec, r, os.Stdout)
	if err != nil {
		panic("Could not write output: " + err.Error())
	}
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", issue)
	}
}
