package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "godsong",
	Short: "TempleOS GodSong tools",
	Long:  `Decode TempleOS GodSong melodies and convert them to LilyPond, PMX or MIDI.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
