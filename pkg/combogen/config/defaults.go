package config

// DefaultStopwords is the built-in analysis stopword list used when no
// stoplist file is configured. This is the general-purpose set for
// tokenization and classification; the generation engine carries its own
// fixed low-value list.
func DefaultStopwords() []string {
	return []string{
		"a", "an", "the",
		"and", "or", "but", "nor", "so", "yet",
		"is", "are", "was", "were", "be", "been", "being", "am",
		"do", "does", "did",
		"have", "has", "had",
		"will", "would", "shall", "should", "can", "could", "may", "might", "must",
		"of", "to", "in", "on", "for", "with", "at", "by", "from",
		"up", "out", "into", "over", "under", "about",
		"it", "its", "this", "that", "these", "those",
		"you", "your", "we", "our", "i", "my", "me",
		"as", "not", "no", "if", "then", "than",
	}
}

// DefaultKeywordSets is the built-in classifier vocabulary used when no
// keyword-sets file is configured.
func DefaultKeywordSets() KeywordSets {
	return KeywordSets{
		Category: []string{
			"language", "languages", "spanish", "french", "german", "italian",
			"japanese", "chinese", "english", "vocabulary", "grammar",
			"fitness", "workout", "meditation", "sleep", "budget", "finance",
			"photo", "music", "game", "games", "puzzle", "recipes", "cooking",
		},
		Benefit: []string{
			"fast", "easy", "free", "simple", "quick", "fun", "effective",
			"fluent", "smart", "best", "pro", "offline", "unlimited",
		},
		Verbs: []string{
			"learn", "speak", "practice", "master", "study", "train",
			"track", "build", "improve", "start", "get", "try", "play",
		},
		TimeHints: []string{
			"daily", "today", "now", "weekly", "minutes", "days", "fast",
			"instant", "quickly",
		},
	}
}
