package constants

import "os"

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// TempleOS music defaults
const (
	DefaultOctave      = 4
	DefaultMeterTop    = 4
	DefaultMeterBottom = 4
	DefaultTempoQPS    = 2.5
)
