package detector

// TrainingSample is one labeled seed phrase.
type TrainingSample struct {
	Text      string
	Violation bool
}

// SeedCorpus returns the fixed labeled corpus the classifier is trained on.
// It is hand-authored and immutable at runtime; retraining always starts
// from this set.
func SeedCorpus() []TrainingSample {
	violation := []string{
		"download this movie for free",
		"pirated version available here",
		"get latest movies without paying",
		"cracked software download",
		"leaked film before release",
		"torrent magnet link",
		"free premium content",
		"bypass subscription",
		"stolen content alert",
		"unauthorized distribution",
		"bootleg copy available",
		"ripped from dvd",
		"cam quality recording",
		"share copyrighted material",
		"illegal streaming site",
		"warez download link",
		"keygen for activation",
		"crack for premium software",
		"serial key generator",
		"hacked version download",
		"watch movies without subscription",
		"free netflix account",
		"bypass paywall",
		"stolen movie link",
	}

	clean := []string{
		"official movie trailer",
		"buy tickets online",
		"subscribe to streaming service",
		"legal movie review",
		"cinema showtimes",
		"movie recommendation",
		"official soundtrack",
		"director interview",
		"behind the scenes footage",
		"movie discussion",
		"film analysis",
		"cast information",
		"movie news update",
		"official poster release",
		"theater booking",
		"rental service",
		"purchase digital copy",
		"official merchandise",
		"movie quotes",
		"trivia and facts",
		"legitimate streaming platform",
		"official website",
		"cinema experience",
		"movie awards ceremony",
	}

	samples := make([]TrainingSample, 0, len(violation)+len(clean))
	for _, text := range violation {
		samples = append(samples, TrainingSample{Text: text, Violation: true})
	}
	for _, text := range clean {
		samples = append(samples, TrainingSample{Text: text, Violation: false})
	}
	return samples
}
