package gui

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// ghostBlend is how far the ghost piece fades toward the background.
const ghostBlend = 0.7

var ErrUnknownTheme = errors.New("theme: no theme found")

// Theme maps the block colors of the catalog and the chrome around the board
// to terminal colors.
type Theme struct {
	Name       string      `json:"name"`
	Background tcell.Color `json:"background"`
	Border     tcell.Color `json:"border"`
	Text       tcell.Color `json:"text"`
	Label      tcell.Color `json:"label"`
	Score      tcell.Color `json:"score"`
	Message    tcell.Color `json:"message"`
	Cyan       tcell.Color `json:"cyan"`
	Blue       tcell.Color `json:"blue"`
	Orange     tcell.Color `json:"orange"`
	Yellow     tcell.Color `json:"yellow"`
	Green      tcell.Color `json:"green"`
	Purple     tcell.Color `json:"purple"`
	Red        tcell.Color `json:"red"`
}

// ThemeHex is the config file form of a Theme. Empty fields fall back to
// ThemeBasic.
type ThemeHex struct {
	Name       string `json:"name"`
	Background string `json:"background,omitempty"`
	Border     string `json:"border,omitempty"`
	Text       string `json:"text,omitempty"`
	Label      string `json:"label,omitempty"`
	Score      string `json:"score,omitempty"`
	Message    string `json:"message,omitempty"`
	Cyan       string `json:"cyan,omitempty"`
	Blue       string `json:"blue,omitempty"`
	Orange     string `json:"orange,omitempty"`
	Yellow     string `json:"yellow,omitempty"`
	Green      string `json:"green,omitempty"`
	Purple     string `json:"purple,omitempty"`
	Red        string `json:"red,omitempty"`
}

// fmtHex keeps ColorDefault distinguishable from black once exported.
func fmtHex(c tcell.Color) string {
	v := c.Hex()
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		Name:       t.Name,
		Background: fmtHex(t.Background),
		Border:     fmtHex(t.Border),
		Text:       fmtHex(t.Text),
		Label:      fmtHex(t.Label),
		Score:      fmtHex(t.Score),
		Message:    fmtHex(t.Message),
		Cyan:       fmtHex(t.Cyan),
		Blue:       fmtHex(t.Blue),
		Orange:     fmtHex(t.Orange),
		Yellow:     fmtHex(t.Yellow),
		Green:      fmtHex(t.Green),
		Purple:     fmtHex(t.Purple),
		Red:        fmtHex(t.Red),
	}
}

func getColor(hex string, fallback tcell.Color) tcell.Color {
	switch hex {
	case "":
		return fallback
	case "#0":
		return tcell.ColorDefault
	}
	return tcell.GetColor(hex)
}

func (t ThemeHex) Theme() Theme {
	b := ThemeBasic
	return Theme{
		Name:       t.Name,
		Background: getColor(t.Background, b.Background),
		Border:     getColor(t.Border, b.Border),
		Text:       getColor(t.Text, b.Text),
		Label:      getColor(t.Label, b.Label),
		Score:      getColor(t.Score, b.Score),
		Message:    getColor(t.Message, b.Message),
		Cyan:       getColor(t.Cyan, b.Cyan),
		Blue:       getColor(t.Blue, b.Blue),
		Orange:     getColor(t.Orange, b.Orange),
		Yellow:     getColor(t.Yellow, b.Yellow),
		Green:      getColor(t.Green, b.Green),
		Purple:     getColor(t.Purple, b.Purple),
		Red:        getColor(t.Red, b.Red),
	}
}

// ImportThemes returns the theme named want from themes.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, want)
}

// BuiltinThemes lists the themes shipped with the binary.
func BuiltinThemes() []ThemeHex {
	return []ThemeHex{ThemeBasic.Hex(), ThemeDark.Hex()}
}

// Block returns the terminal color of a settled or falling block.
func (t Theme) Block(c mino.Color) tcell.Color {
	switch c {
	case mino.Cyan:
		return t.Cyan
	case mino.Blue:
		return t.Blue
	case mino.Orange:
		return t.Orange
	case mino.Yellow:
		return t.Yellow
	case mino.Green:
		return t.Green
	case mino.Purple:
		return t.Purple
	case mino.Red:
		return t.Red
	case mino.None:
		return t.Background
	}

	// Unknown names are resolved by tcell, e.g. "#ff00ff".
	return tcell.GetColor(string(c))
}

// Ghost returns the landing preview color for a piece of color c.
func (t Theme) Ghost(c mino.Color) tcell.Color {
	return blend(t.Block(c), t.Background, ghostBlend)
}

func toColorful(c tcell.Color) colorful.Color {
	if c == tcell.ColorDefault {
		c = tcell.ColorBlack
	}

	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func blend(from, to tcell.Color, t float64) tcell.Color {
	r, g, b := toColorful(from).BlendLab(toColorful(to), t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// RGBA converts a terminal color for frontends that draw pixels.
func RGBA(c tcell.Color) color.RGBA {
	r, g, b := toColorful(c).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	Name:       "basic",
	Background: tcell.Color234,
	Border:     tcell.Color247,
	Text:       tcell.Color252,
	Label:      tcell.Color247,
	Score:      tcell.Color226,
	Message:    tcell.Color160,
	Cyan:       tcell.ColorDarkCyan,
	Blue:       tcell.ColorBlue,
	Orange:     tcell.ColorOrange,
	Yellow:     tcell.ColorYellow,
	Green:      tcell.ColorGreen,
	Purple:     tcell.ColorPurple,
	Red:        tcell.ColorRed,
}

var ThemeDark = Theme{
	Name:       "dark",
	Background: tcell.ColorBlack,
	Border:     tcell.Color240,
	Text:       tcell.Color250,
	Label:      tcell.Color240,
	Score:      tcell.Color45,
	Message:    tcell.Color167,
	Cyan:       tcell.Color37,
	Blue:       tcell.Color25,
	Orange:     tcell.Color166,
	Yellow:     tcell.Color178,
	Green:      tcell.Color34,
	Purple:     tcell.Color91,
	Red:        tcell.Color124,
}
