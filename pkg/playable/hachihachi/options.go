package hachihachi

import "github.com/ceruleanoak/hanafuda-sub000/pkg/yaku"

// Options are options for creating a new hachi-hachi round
type Options struct {
	// Seed for the shuffle. 0 uses a time-based seed; redeals of a seeded
	// game offset the seed per attempt so they stay deterministic.
	Seed int64

	// MaxRedeals bounds how many deal attempts are made before the deal is
	// declared invalid. Default: 10
	MaxRedeals int

	// DeckThreshold is the remaining-deck size at or below which the default
	// opponent policy stops risking. Default: 4
	DeckThreshold int

	// CaptureDetector finds combinations in capture piles. Default: yaku.Dekiyaku()
	CaptureDetector yaku.Detector

	// HandDetector finds combinations in original dealt hands. Default: yaku.Teyaku()
	HandDetector yaku.Detector

	// Policies holds the decision policy per seat. A nil entry is a
	// human-controlled seat that the engine waits on.
	Policies [3]Policy
}

// DefaultOptions returns the default options for a hachi-hachi round
func DefaultOptions() Options {
	return Options{
		MaxRedeals:      10,
		DeckThreshold:   4,
		CaptureDetector: yaku.Dekiyaku(),
		HandDetector:    yaku.Teyaku(),
	}
}
