package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/8dcc/godsong-go/config"
	"github.com/8dcc/godsong-go/midi"
	"github.com/8dcc/godsong-go/song"
	"github.com/8dcc/godsong-go/util"
)

var (
	midiOut    string
	midiConfig string
)

func init() {
	midiCmd.Flags().StringVarP(&midiOut, "out", "o", "", "output .mid path (default: random name)")
	midiCmd.Flags().StringVarP(&midiConfig, "config", "c", "", "YAML config with tempo/staccato/velocity")
	rootCmd.AddCommand(midiCmd)
}

var midiCmd = &cobra.Command{
	Use:   "midi [file]",
	Short: "Converts a song to a MIDI file",
	Long:  `Converts a GodSong melody (from a file or stdin) to a Standard MIDI File.`,
	Run: func(cmd *cobra.Command, args []string) {
		writeMidi(args)
	},
}

func writeMidi(args []string) {
	cfg, err := config.Load(midiConfig)
	if err != nil {
		panic("Could not load config: " + err.Error())
	}
	opts := midi.Options{
		TempoQPS: cfg.TempoQPS,
		Staccato: cfg.Staccato,
		Velocity: cfg.Velocity,
	}

	dec := song.NewDecoder(util.Flatten(readSong(args)))
	s, issues := midi.FromSong(dec, opts)
	for _, issue := range issues {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", issue)
	}

	filename := midiOut
	if filename == "" {
		filename = uuid.New().String() + ".mid"
	}
	f, err := os.Create(filename)
	if err != nil {
		panic("Could not create midi file: " + err.Error())
	}
	defer f.Close()
	if _, err := s.WriteTo(f); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Wrote %v\n", filename)
}
