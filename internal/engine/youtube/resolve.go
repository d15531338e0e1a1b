package youtube

// Language selection policy: three ranked tiers, each scanning the caller's
// preference list in order and the provider's track list in provider order.
//
//	1. manually created track with an exact language-code match
//	2. auto-generated track with an exact language-code match
//	3. any translatable track, translated into the preferred language
//
// The first hit wins; ties within a tier resolve to the first track in
// provider order.

// SelectTrack picks the best track for the given language preferences.
// langs must be non-empty; the caller supplies its default.
func SelectTrack(videoID string, tracks []Track, langs []string) (Track, error) {
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang && !t.IsGenerated {
				return t, nil
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, nil
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.IsTranslatable && t.LanguageCode != lang {
				translated := t
				translated.translateTo = lang
				// The fetched cues will be in the target language; the source
				// descriptor's tag and display name no longer apply.
				translated.LanguageCode = lang
				translated.LanguageName = lang
				return translated, nil
			}
		}
	}

	available := make([]string, 0, len(tracks))
	for _, t := range tracks {
		available = append(available, t.LanguageCode)
	}
	return Track{}, &NoMatchingLanguageError{
		VideoID:   videoID,
		Requested: langs,
		Available: available,
	}
}
