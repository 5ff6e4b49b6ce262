// Package presenter turns a weather response into the colored terminal summary.
package presenter

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fakhrymubarak/weather-station/internal/model"
	"github.com/muesli/termenv"
)

const (
	BannerText   = "Welcome to Weather Station!"
	FarewellText = "Thank you for using this software!"

	summaryFormat = "Weather in %s:\n%s\n> Temperature: %s %.1f°C\n> Humidity: %.1f%%\n> Pressure: %.1f hPa\n> Wind Speed: %.1f m/s"
)

type Presenter struct {
	styles map[ColorCategory]lipgloss.Style
	banner lipgloss.Style
	prompt lipgloss.Style
}

// New creates a presenter that detects the color profile of w. noColor forces plain text.
func New(w io.Writer, noColor bool) *Presenter {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return newWithRenderer(r)
}

// NewWithProfile creates a presenter with a fixed color profile.
func NewWithProfile(w io.Writer, profile termenv.Profile) *Presenter {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return newWithRenderer(r)
}

func newWithRenderer(r *lipgloss.Renderer) *Presenter {
	return &Presenter{
		styles: map[ColorCategory]lipgloss.Style{
			ColorBrightYellow: r.NewStyle().Foreground(lipgloss.Color("11")),
			ColorBrightBlue:   r.NewStyle().Foreground(lipgloss.Color("12")),
			ColorDimmed:       r.NewStyle().Faint(true),
			ColorBrightCyan:   r.NewStyle().Foreground(lipgloss.Color("14")),
		},
		banner: r.NewStyle().Foreground(lipgloss.Color("11")),
		prompt: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Format renders the plain multi-line summary for resp.
func Format(resp *model.WeatherResponse) string {
	return fmt.Sprintf(summaryFormat,
		resp.Name,
		resp.Description(),
		TempEmoji(resp.Main.Temp),
		resp.Main.Temp,
		resp.Main.Humidity,
		resp.Main.Pressure,
		resp.Wind.Speed,
	)
}

// Render returns the summary styled with the color category of its description.
func (p *Presenter) Render(resp *model.WeatherResponse) string {
	return p.styleFor(ColorCategoryFor(resp.Description()), Format(resp))
}

func (p *Presenter) Print(w io.Writer, resp *model.WeatherResponse) error {
	_, err := fmt.Fprintln(w, p.Render(resp))
	return err
}

func (p *Presenter) Banner() string {
	return p.banner.Render(BannerText)
}

func (p *Presenter) Prompt(text string) string {
	return p.prompt.Render(text)
}

func (p *Presenter) Farewell() string {
	return FarewellText
}

// styleFor styles each line on its own; rendering the block at once would pad every line to the
// widest one.
func (p *Presenter) styleFor(category ColorCategory, text string) string {
	style, ok := p.styles[category]
	if !ok {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
