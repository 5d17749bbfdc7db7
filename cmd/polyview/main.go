// Command polyview renders WKT polygon files in the terminal and runs
// engine operations on them interactively.
//
//	polyview layer.wkt [more.wkt ...]
//
// Keys: arrows pan, +/- zoom, o grow, O shrink, h hull, s smooth,
// p cycle parts, r reset, q quit.
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/FracktalWorks/CuraEngine/geometry"
)

// offsetStep is how far one o/O keypress grows or shrinks the region.
const offsetStep = int64(500) // 0.5mm

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E6E6E6")).
			Background(lipgloss.Color("#243141")).
			Padding(0, 1)
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type model struct {
	original geometry.Polygons
	current  geometry.Polygons
	parts    []geometry.PolygonsPart

	width   int
	height  int
	zoom    float64
	offsetX int
	offsetY int

	// activePart selects one part to draw; -1 draws everything.
	activePart int

	status string
}

func newModel(polys geometry.Polygons) model {
	m := model{
		original:   polys,
		zoom:       1.0,
		activePart: -1,
		status:     "loaded",
	}
	m.setCurrent(polys.Clone())
	return m
}

func (m *model) setCurrent(p geometry.Polygons) {
	m.current = p
	m.parts = p.SplitIntoParts(false)
	if m.activePart >= len(m.parts) {
		m.activePart = -1
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up":
			m.offsetY++
		case "down":
			m.offsetY--
		case "left":
			m.offsetX++
		case "right":
			m.offsetX--
		case "+", "=":
			m.zoom *= 1.25
		case "-":
			m.zoom /= 1.25
		case "o":
			m.setCurrent(m.current.Offset(offsetStep, geometry.JoinMiter, 0))
			m.status = fmt.Sprintf("offset +%.1fmm", float64(offsetStep)/geometry.MicronsPerMillimeter)
		case "O":
			m.setCurrent(m.current.Offset(-offsetStep, geometry.JoinMiter, 0))
			m.status = fmt.Sprintf("offset -%.1fmm", float64(offsetStep)/geometry.MicronsPerMillimeter)
		case "h":
			m.setCurrent(m.current.ApproxConvexHull(0))
			m.status = "convex hull"
		case "s":
			m.setCurrent(m.current.Smooth(200))
			m.status = "smoothed"
		case "p":
			if len(m.parts) > 0 {
				m.activePart++
				if m.activePart >= len(m.parts) {
					m.activePart = -1
				}
			}
			if m.activePart < 0 {
				m.status = "all parts"
			} else {
				m.status = fmt.Sprintf("part %d/%d", m.activePart+1, len(m.parts))
			}
		case "r":
			m.setCurrent(m.original.Clone())
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.activePart = -1
			m.status = "reset"
		}
	}
	return m, nil
}

func (m model) View() string {
	if m.width == 0 || m.height < 3 {
		return "loading..."
	}
	mapH := m.height - 2
	canvas := m.renderMap(m.width, mapH)

	area := m.current.Area() / (geometry.MicronsPerMillimeter * geometry.MicronsPerMillimeter)
	left := fmt.Sprintf("contours %d  parts %d  area %.2f mm2  zoom %.2fx",
		len(m.current), len(m.parts), area, m.zoom)
	bar := statusStyle.Render(left) + " " + accentStyle.Render(m.status)
	help := dimStyle.Render("arrows pan  +/- zoom  o/O offset  h hull  s smooth  p parts  r reset  q quit")

	return canvas + "\n" + bar + "\n" + help
}

// visible returns the contours currently drawn.
func (m model) visible() geometry.Polygons {
	if m.activePart < 0 || m.activePart >= len(m.parts) {
		return m.current
	}
	return geometry.Polygons(m.parts[m.activePart])
}

func (m model) renderMap(w, h int) string {
	polys := m.visible()
	br := newBrailleBuf(w, h)

	lo := m.original.Min()
	hi := m.original.Max()
	if cur := polys; !cur.Empty() {
		cLo, cHi := cur.Min(), cur.Max()
		if cLo.X < lo.X {
			lo.X = cLo.X
		}
		if cLo.Y < lo.Y {
			lo.Y = cLo.Y
		}
		if cHi.X > hi.X {
			hi.X = cHi.X
		}
		if cHi.Y > hi.Y {
			hi.Y = cHi.Y
		}
	}
	spanX := float64(hi.X - lo.X)
	spanY := float64(hi.Y - lo.Y)
	if spanX <= 0 || spanY <= 0 {
		return strings.Repeat("\n", h-1)
	}

	wMic := w * 2
	hMic := h * 4
	project := func(pt geometry.Point) (int, int) {
		nx := float64(pt.X-lo.X) / spanX
		ny := float64(pt.Y-lo.Y) / spanY
		zx := 0.5 + (nx-0.5)*m.zoom
		zy := 0.5 + (ny-0.5)*m.zoom
		// Y grows upward in model space, downward on screen.
		sx := int(zx*float64(wMic-1)) + m.offsetX*2
		sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
		return sx, sy
	}

	for _, poly := range polys {
		for _, seg := range poly.Segments() {
			x0, y0 := project(seg.Start)
			x1, y1 := project(seg.End)
			br.drawLine(x0, y0, x1, y1)
		}
	}
	return strings.Join(br.lines(), "\n")
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: polyview file.wkt [more.wkt ...]")
		os.Exit(2)
	}

	var polys geometry.Polygons
	for _, path := range os.Args[1:] {
		data, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("read %s: %v", path, err)
		}
		loaded, err := geometry.FromWKT(string(data))
		if err != nil {
			log.Fatalf("parse %s: %v", path, err)
		}
		polys.Add(loaded)
	}

	if _, err := tea.NewProgram(newModel(polys), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
