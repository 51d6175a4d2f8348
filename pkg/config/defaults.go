package config

// Path defaults.
const (
	DefaultMetadataDir = "metadata"
	DefaultNgramDir    = "ngram1"
	DefaultOutputDir   = "out"
)

// Pipeline defaults.
const (
	DefaultLemmatizer    = "wordnet"
	DefaultRemoveMixed = true
	DefaultMinCount    = 0
)

// DefaultStopwordSources lists the built-in stopword sources used when none
// are configured.
func DefaultStopwordSources() []string { return []string{"nltk"} }

// Chart defaults.
const (
	DefaultTopN    = 50
	DefaultJournal = "AJS"
	DefaultTheme   = "light"
	DefaultWidth   = 900
	DefaultHeight  = 0
)

// Logging defaults.
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Telemetry defaults.
const (
	DefaultOTLPInsecure = false
	DefaultSampleRatio  = 0.0
)
