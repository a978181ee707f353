package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"device-compare/internal/model"
)

// Output formats accepted by --format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const cardWidth = 46

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Width(cardWidth)

	deviceNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")).
			MarginBottom(1)

	specLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Width(10)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	proStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	conStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))

	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				MarginTop(1)

	summaryStyle = lipgloss.NewStyle().
			Width(2*cardWidth + 6).
			Padding(0, 1)

	userPromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	modelReplyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// RenderComparison lays out both devices as side-by-side cards followed by the summary.
func RenderComparison(result *model.ComparisonResult) string {
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		renderCard(result.Device1),
		"  ",
		renderCard(result.Device2),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		cards,
		summaryTitleStyle.Render("Summary"),
		summaryStyle.Render(result.Summary),
	)
}

func renderCard(device model.DeviceData) string {
	var b strings.Builder
	b.WriteString(deviceNameStyle.Render(device.Name))
	b.WriteString("\n")

	specs := []struct{ label, value string }{
		{"Display", device.Specs.Display},
		{"Camera", device.Specs.Camera},
		{"Processor", device.Specs.Processor},
		{"Battery", device.Specs.Battery},
		{"RAM", device.Specs.RAM},
		{"Storage", device.Specs.Storage},
		{"Price", device.Specs.Price},
	}
	for _, spec := range specs {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			specLabelStyle.Render(spec.label),
			lipgloss.NewStyle().Width(cardWidth-12).Render(spec.value),
		))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Pros"))
	for _, pro := range device.Pros {
		b.WriteString("\n" + proStyle.Render("+ "+pro))
	}
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Cons"))
	for _, con := range device.Cons {
		b.WriteString("\n" + conStyle.Render("- "+con))
	}

	return cardStyle.Render(b.String())
}

// writeComparison prints result in the requested format.
func writeComparison(w io.Writer, format string, result *model.ComparisonResult) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, RenderComparison(result))
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (use text, json or yaml)", format)
	}
}
