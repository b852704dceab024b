package pathworld

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// BoxMarkers lays one box per point. The end boxes are half length and
// pulled inward by a quarter length so they butt against their neighbours.
// With a single point the first-box rule applies.
func BoxMarkers(points []Point, length float64) []Marker {
	markers := make([]Marker, 0, len(points))
	last := len(points) - 1

	for i, p := range points {
		m := Marker{Index: i, X: p.X, Y: p.Y, Heading: p.Heading, Length: length}

		if i == 0 {
			m.X, m.Y = OffsetPosition(p.X, p.Y, p.Heading, 0.25*length)
			m.Length = 0.5 * length
		} else if i == last {
			m.X, m.Y = OffsetPosition(p.X, p.Y, p.Heading, -0.25*length)
			m.Length = 0.5 * length
		}

		markers = append(markers, m)
	}
	return markers
}

// CylinderMarkers lays one cylinder per point, unchanged.
func CylinderMarkers(points []Point) []Marker {
	markers := make([]Marker, 0, len(points))
	for i, p := range points {
		markers = append(markers, Marker{Index: i, X: p.X, Y: p.Y})
	}
	return markers
}

func joinFloats(vals ...float64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = formatFloat(v)
	}
	return strings.Join(parts, " ")
}

func fillSlot(el *etree.Element, path, text string) error {
	slot := el.FindElement(path)
	if slot == nil {
		return fmt.Errorf("template has no %s", path)
	}
	slot.SetText(text)
	return nil
}

func renderModel(model *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(model)
	doc.Indent(2)

	s, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\n"), nil
}

func boxModel(m Marker, size BoxSize) (string, error) {
	model := boxModelBlueprint.Root().Copy()
	model.CreateAttr("name", fmt.Sprintf("unit_box_%d", m.Index))

	if err := fillSlot(model, "./pose", joinFloats(m.X, m.Y, 0, 0, 0, m.Heading)); err != nil {
		return "", err
	}
	if err := fillSlot(model, "./link/visual/geometry/box/size", joinFloats(m.Length, size.Width, size.Height)); err != nil {
		return "", err
	}
	return renderModel(model)
}

func cylinderModel(m Marker) (string, error) {
	model := cylinderModelBlueprint.Root().Copy()
	model.CreateAttr("name", fmt.Sprintf("unit_cylinder_%d", m.Index))

	if err := fillSlot(model, "./pose", joinFloats(m.X, m.Y, 0, 0, 0, 0)); err != nil {
		return "", err
	}
	return renderModel(model)
}

// GenerateBoxModels renders one box model per point, newline separated.
func GenerateBoxModels(points []Point, size BoxSize) (string, error) {
	var sb strings.Builder
	for i, m := range BoxMarkers(points, size.Length) {
		s, err := boxModel(m, size)
		if err != nil {
			return "", fmt.Errorf("box %d: %w", m.Index, err)
		}
		if i != 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

// GenerateCylinderModels renders one cylinder model per point, newline separated.
func GenerateCylinderModels(points []Point) (string, error) {
	var sb strings.Builder
	for i, m := range CylinderMarkers(points) {
		s, err := cylinderModel(m)
		if err != nil {
			return "", fmt.Errorf("cylinder %d: %w", m.Index, err)
		}
		if i != 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
