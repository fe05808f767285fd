package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/rojanmagar2001/primeprobe/internal/domain"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Separator closes every report block.
var Separator = strings.Repeat("-", 50)

type theme struct {
	label   lipgloss.Style
	prime   lipgloss.Style
	muted   lipgloss.Style
	failure lipgloss.Style
}

func newTheme(r *lipgloss.Renderer) theme {
	return theme{
		label:   r.NewStyle().Bold(true),
		prime:   r.NewStyle().Foreground(lipgloss.Color("2")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("8")),
		failure: r.NewStyle().Foreground(lipgloss.Color("1")),
	}
}

// Text prints the human-readable report blocks.
type Text struct {
	w     io.Writer
	theme theme
}

// NewText returns a text reporter. color is one of auto, always, never;
// auto colours only when w is a terminal.
func NewText(w io.Writer, color string) *Text {
	r := lipgloss.NewRenderer(w)
	switch color {
	case ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return &Text{w: w, theme: newTheme(r)}
}

// Report styles only the fixed labels. Item and message text are
// written untouched since lipgloss rewrites tabs and pads multi-line text.
func (t *Text) Report(o domain.Outcome) error {
	th := t.theme
	var b strings.Builder

	switch o.Kind {
	case domain.OutcomeSuccess:
		verdict := th.muted
		if o.IsPrime {
			verdict = th.prime
		}
		fmt.Fprintf(&b, "%s %s\n", th.label.Render("Number:"), o.Item)
		fmt.Fprintf(&b, "%s %s\n", th.label.Render("Is Prime:"), verdict.Render(fmt.Sprintf("%t", o.IsPrime)))
		fmt.Fprintf(&b, "%s %.2fms\n", th.label.Render("Response Time:"), o.ElapsedMillis())
	case domain.OutcomeAPIError:
		fmt.Fprintf(&b, "%s %s: %s\n", th.failure.Render("Error for"), o.Item, o.Message)
	case domain.OutcomeDecodeError:
		fmt.Fprintf(&b, "%s %s\n", th.failure.Render("Invalid response format for"), o.Item)
	default:
		fmt.Fprintf(&b, "%s %s: %s\n", th.failure.Render("Error checking number"), o.Item, o.Message)
	}
	fmt.Fprintf(&b, "%s\n", th.muted.Render(Separator))

	_, err := io.WriteString(t.w, b.String())
	return err
}

func (t *Text) Summary(s domain.Summary) error {
	_, err := fmt.Fprintf(t.w, "\nChecked %d numbers. Prime: %d  Not prime: %d  Errors: %d\n",
		s.Checked, s.Prime, s.NotPrime, s.Errors)
	return err
}

// JSONLine is one NDJSON record.
type JSONLine struct {
	Number         string  `json:"number"`
	Outcome        string  `json:"outcome"`
	IsPrime        *bool   `json:"isPrime,omitempty"`
	ResponseTimeMs float64 `json:"responseTimeMs"`
	Status         int     `json:"status,omitempty"`
	Error          string  `json:"error,omitempty"`
}

// JSON prints one JSON object per outcome.
type JSON struct {
	enc *json.Encoder
}

func NewJSON(w io.Writer) *JSON {
	return &JSON{enc: json.NewEncoder(w)}
}

func (j *JSON) Report(o domain.Outcome) error {
	line := JSONLine{
		Number:         o.Item.String(),
		Outcome:        string(o.Kind),
		ResponseTimeMs: roundMillis(o.ElapsedMillis()),
		Status:         o.StatusCode,
		Error:          o.Message,
	}
	if o.Kind == domain.OutcomeSuccess {
		v := o.IsPrime
		line.IsPrime = &v
	}
	return j.enc.Encode(line)
}

func (j *JSON) Summary(s domain.Summary) error {
	return j.enc.Encode(struct {
		Summary domain.Summary `json:"summary"`
	}{s})
}

func roundMillis(ms float64) float64 {
	return float64(int64(ms*100+0.5)) / 100
}
