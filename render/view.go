package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shootbox/config"
	"github.com/lixenwraith/shootbox/parameter"
)

var colorByName = map[string]tcell.Color{
	"cyan":   tcell.ColorDarkCyan,
	"red":    tcell.ColorRed,
	"yellow": tcell.ColorYellow,
	"green":  tcell.ColorGreen,
	"white":  tcell.ColorWhite,
}

func styleFor(name string) tcell.Style {
	c, ok := colorByName[name]
	if !ok {
		c = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(c)
}

// View draws a top-down debug projection of the arena: X maps to
// columns, Z to rows, height is flattened out
type View struct {
	screen   tcell.Screen
	catalog  *config.Catalog
	settings *config.Settings
}

func NewView(screen tcell.Screen, catalog *config.Catalog, settings *config.Settings) *View {
	return &View{screen: screen, catalog: catalog, settings: settings}
}

// project maps a world position to a screen cell inside the arena box
func (v *View) project(x, z float64) (int, int, bool) {
	width, height := v.screen.Size()
	boxW := width - 2
	boxH := height - 3 // One row reserved for the HUD line
	if boxW < 4 || boxH < 4 {
		return 0, 0, false
	}

	extent := parameter.WorldHalfExtent
	col := 1 + int((x+extent)/(2*extent)*float64(boxW))
	row := 1 + int((z+extent)/(2*extent)*float64(boxH))
	if col < 1 || col > boxW || row < 1 || row > boxH {
		return 0, 0, false
	}
	return col, row, true
}

// Draw renders one frame snapshot
func (v *View) Draw(snap *Snapshot, fps float64) {
	v.screen.Clear()
	v.drawBorder()

	for _, p := range snap.Points {
		if col, row, ok := v.project(p.Position.X, p.Position.Z); ok {
			v.screen.SetContent(col, row, '▲', nil, styleFor(v.catalog.Stats(p.Kind).Color))
		}
	}
	for _, d := range snap.Drops {
		if col, row, ok := v.project(d.Position.X, d.Position.Z); ok {
			v.screen.SetContent(col, row, '†', nil, styleFor(v.catalog.Stats(d.Kind).Color))
		}
	}
	for _, b := range snap.Bullets {
		if col, row, ok := v.project(b.Position.X, b.Position.Z); ok {
			v.screen.SetContent(col, row, '·', nil, styleFor(v.catalog.Stats(b.Kind).Color))
		}
	}
	for _, g := range snap.Grenades {
		if col, row, ok := v.project(g.Position.X, g.Position.Z); ok {
			v.screen.SetContent(col, row, 'o', nil, tcell.StyleDefault.Foreground(tcell.ColorOrange))
		}
	}

	v.drawProp(snap)
	v.drawAgent(snap)
	v.drawHUD(snap, fps)

	v.screen.Show()
}

func (v *View) drawBorder() {
	width, height := v.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, 0, '─', nil, style)
		v.screen.SetContent(x, height-3, '─', nil, style)
	}
	for y := 0; y < height-2; y++ {
		v.screen.SetContent(0, y, '│', nil, style)
		v.screen.SetContent(width-1, y, '│', nil, style)
	}
}

func (v *View) drawProp(snap *Snapshot) {
	col, row, ok := v.project(snap.Prop.Position.X, snap.Prop.Position.Z)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	if snap.Prop.Hit {
		style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	}
	v.screen.SetContent(col, row, '█', nil, style)
}

func (v *View) drawAgent(snap *Snapshot) {
	col, row, ok := v.project(snap.Agent.Position.X, snap.Agent.Position.Z)
	if !ok {
		return
	}
	v.screen.SetContent(col, row, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true))

	// Facing marker one cell along the yaw direction
	dx := math.Sin(snap.Agent.Yaw)
	dz := -math.Cos(snap.Agent.Yaw)
	var marker rune
	mc, mr := col, row
	if math.Abs(dx) > math.Abs(dz) {
		if dx > 0 {
			marker, mc = '>', col+1
		} else {
			marker, mc = '<', col-1
		}
	} else {
		if dz > 0 {
			marker, mr = 'v', row+1
		} else {
			marker, mr = '^', row-1
		}
	}
	v.screen.SetContent(mc, mr, marker, nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))
}

func (v *View) drawHUD(snap *Snapshot, fps float64) {
	_, height := v.screen.Size()
	row := height - 2

	weaponLabel := "empty"
	if w := snap.Agent.ActiveWeapon(); w != nil {
		stats := v.catalog.Stats(w.Kind)
		weaponLabel = fmt.Sprintf("%s %d/%d", stats.Name, w.Ammo, stats.MaxAmmo)
	}

	line := fmt.Sprintf(" HP:%3.0f  [%d] %s  nades:%d",
		snap.Prop.Health, snap.Agent.ActiveSlot+1, weaponLabel, snap.Agent.GrenadeCount)
	if v.settings.ShowFPS {
		line += fmt.Sprintf("  %0.1f fps", fps)
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range line {
		v.screen.SetContent(i, row, r, nil, style)
	}
}
