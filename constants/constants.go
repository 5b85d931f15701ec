package constants

import "os"

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() string {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path
	}

	panic("MEDIA_PATH environment variable is not set!")
}

func GetPort() string {
	port := os.Getenv("PORT")
	if port != "" {
		return port
	}
	return "8080"
}

// Sustain pedal is CC 64
const SustainCC = 64

// Pedal values at or above this count as "pedal down"
const SustainThreshold = 62

// Seconds of pedal data kept past the last note of a slice so it can ring out
const SustainRingOut = 0.2

// Fixed tempo and resolution used when exporting pieces back to MIDI
const ExportTempo = 120.0
const ExportResolution = 480
