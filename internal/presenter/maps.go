package presenter

// ColorCategory is the display color selected from a weather description.
type ColorCategory int

const (
	// ColorDefault renders text without styling.
	ColorDefault ColorCategory = iota
	ColorBrightYellow
	ColorBrightBlue
	ColorDimmed
	ColorBrightCyan
)

func (c ColorCategory) String() string {
	switch c {
	case ColorBrightYellow:
		return "bright-yellow"
	case ColorBrightBlue:
		return "bright-blue"
	case ColorDimmed:
		return "dimmed"
	case ColorBrightCyan:
		return "bright-cyan"
	default:
		return "default"
	}
}

// DescriptionColors maps OpenWeatherMap descriptions to their color category. Keys are matched
// exactly, including case.
var DescriptionColors = map[string]ColorCategory{
	"clear sky": ColorBrightYellow,

	"few clouds":       ColorBrightBlue,
	"scattered clouds": ColorBrightBlue,
	"broken clouds":    ColorBrightBlue,

	"overcast clouds": ColorDimmed,
	"mist":            ColorDimmed,
	"haze":            ColorDimmed,
	"smoke":           ColorDimmed,
	"sand":            ColorDimmed,
	"dust":            ColorDimmed,
	"fog":             ColorDimmed,
	"squalls":         ColorDimmed,

	"shower rain":   ColorBrightCyan,
	"rain":          ColorBrightCyan,
	"thunderstorms": ColorBrightCyan,
	"snow":          ColorBrightCyan,
}

// ColorCategoryFor returns the category for description, or ColorDefault when it is not listed.
func ColorCategoryFor(description string) ColorCategory {
	if category, ok := DescriptionColors[description]; ok {
		return category
	}
	return ColorDefault
}

const (
	EmojiFreezing = "❄️"
	EmojiCold     = "☁️"
	EmojiMild     = "🌥️"
	EmojiWarm     = "☀️🌞"
)

// TempEmoji picks the glyph for temp. Each band includes its lower bound.
func TempEmoji(temp float64) string {
	switch {
	case temp < 0.0:
		return EmojiFreezing
	case temp < 10.0:
		return EmojiCold
	case temp < 20.0:
		return EmojiMild
	default:
		return EmojiWarm
	}
}
