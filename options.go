package linebreak

const (
	// DefaultMinSentenceLength is the shortest fragment a sentence split may leave on either side.
	DefaultMinSentenceLength = 20
	// DefaultColonMinLength is the length a piece must exceed before it is split at a colon or semicolon.
	DefaultColonMinLength = 80
	// DefaultMinPartLength is the shortest part a clause split may produce.
	DefaultMinPartLength = 20
	// DefaultDashMinLength is the length a piece must exceed before it is split at an em-dash.
	DefaultDashMinLength = 80
	// DefaultVeryLongLength is the length above which the parenthesis and comma fallback engages.
	DefaultVeryLongLength = 100
)

var defaultAbbreviations = []string{
	"Dr", "Prof", "Mr", "Mrs", "Ms", "Jr", "Sr", "St",
	"vs", "Vs", "cf", "e.g", "i.e",
	"et al",
	"Fig", "Figs", "Eq",
}

// DefaultAbbreviations returns a copy of the words that never end a sentence.
func DefaultAbbreviations() []string {
	out := make([]string, len(defaultAbbreviations))
	copy(out, defaultAbbreviations)
	return out
}

// Options holds the thresholds and word lists used by a Breaker.
// Lengths are counted in runes.
type Options struct {
	MinSentenceLength int
	ColonMinLength    int
	MinPartLength     int
	DashMinLength     int
	VeryLongLength    int
	// Abbreviations are matched case-sensitively against the words before a
	// period. Entries may span several words, e.g. "et al".
	Abbreviations []string
}

// DefaultOptions returns the default thresholds.
func DefaultOptions() Options {
	return Options{
		MinSentenceLength: DefaultMinSentenceLength,
		ColonMinLength:    DefaultColonMinLength,
		MinPartLength:     DefaultMinPartLength,
		DashMinLength:     DefaultDashMinLength,
		VeryLongLength:    DefaultVeryLongLength,
		Abbreviations:     DefaultAbbreviations(),
	}
}

// Option configures a Breaker.
type Option func(*Options)

// WithMinSentenceLength sets the minimum sentence fragment length.
func WithMinSentenceLength(n int) Option {
	return func(o *Options) {
		o.MinSentenceLength = n
	}
}

// WithColonMinLength sets the length a piece must exceed to be split at a colon.
func WithColonMinLength(n int) Option {
	return func(o *Options) {
		o.ColonMinLength = n
	}
}

// WithMinPartLength sets the minimum part length for clause, parenthesis and comma splits.
func WithMinPartLength(n int) Option {
	return func(o *Options) {
		o.MinPartLength = n
	}
}

// WithDashMinLength sets the length a piece must exceed to be split at an em-dash.
func WithDashMinLength(n int) Option {
	return func(o *Options) {
		o.DashMinLength = n
	}
}

// WithVeryLongLength sets the threshold for the parenthesis and comma fallback.
func WithVeryLongLength(n int) Option {
	return func(o *Options) {
		o.VeryLongLength = n
	}
}

// WithAbbreviations replaces the abbreviation list.
func WithAbbreviations(words []string) Option {
	return func(o *Options) {
		o.Abbreviations = append([]string(nil), words...)
	}
}
