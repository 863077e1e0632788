package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/joho/godotenv"
	"github.com/spacehole-rogue/trekmap/internal/game"
	"github.com/spacehole-rogue/trekmap/internal/logger"
	"github.com/spacehole-rogue/trekmap/internal/render"
	"github.com/spacehole-rogue/trekmap/internal/tuning"
	"github.com/spacehole-rogue/trekmap/internal/world"
)

const (
	screenWidth  = 1280
	screenHeight = 720
	title        = "TrekMap"

	cellWidth  = 16
	cellHeight = 16
	gridCols   = screenWidth / cellWidth   // 80
	gridRows   = screenHeight / cellHeight // 45
)

const (
	chartX   = 2
	chartY   = 3
	panelX   = 30 // status and scan panel
	commsRow = 30
	commsMax = 12
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in session.
type Game struct {
	renderer *render.GridRenderer
	buffer   *render.CellBuffer
	session  *game.Session

	// galaxy chart cursor, in major coordinates
	cursorX, cursorY int
}

func NewGame(s *game.Session) *Game {
	atlas := render.NewFontAtlas()
	g := &Game{
		renderer: render.NewGridRenderer(atlas, cellWidth, cellHeight),
		buffer:   render.NewCellBuffer(gridCols, gridRows),
		session:  s,
	}
	g.cursorX, g.cursorY = s.Galaxy.MajorX, s.Galaxy.MajorY
	g.drawScreen()
	return g
}

func (g *Game) drawScreen() {
	buf := g.buffer
	buf.Clear()
	gal := g.session.Galaxy

	buf.WriteString(2, 0, title, render.ColorWhite, render.ColorBlack)
	buf.WriteString(12, 0, fmt.Sprintf("[ turn %d ]", g.session.Turn), render.ColorLightCyan, render.ColorBlack)

	// Current region
	buf.WriteString(chartX, chartY-1, fmt.Sprintf("Sector %d [%d,%d]", gal.Sector, gal.MajorX, gal.MajorY),
		render.ColorLightCyan, render.ColorBlack)
	render.RenderChart(buf, gal.Chart(), chartX, chartY)

	// Status
	q := gal.CurrentQuadrant()
	buf.WriteString(panelX, 2, "--- Status ---", render.ColorLightCyan, render.ColorBlack)
	pos := g.session.PlayerPos()
	buf.WriteString(panelX, 3, fmt.Sprintf("Position  %d,%d", pos.X, pos.Y), render.ColorLightGray, render.ColorBlack)
	hostileClr := render.ColorLightGray
	if q.Hostiles > 0 {
		hostileClr = render.ColorLightRed
	}
	buf.WriteString(panelX, 4, fmt.Sprintf("Hostiles  %d", q.Hostiles), hostileClr, render.ColorBlack)
	buf.WriteString(panelX, 5, fmt.Sprintf("Starbases %d", q.Starbases), render.ColorLightGray, render.ColorBlack)
	buf.WriteString(panelX, 6, fmt.Sprintf("Stars     %d", q.Stars), render.ColorLightGray, render.ColorBlack)
	totals := gal.Totals()
	buf.WriteString(panelX, 7, fmt.Sprintf("Galaxy    %d hostiles, %d bases", totals.Hostiles, totals.Starbases),
		render.ColorDarkGray, render.ColorBlack)
	if !gal.Placed() {
		buf.WriteString(panelX, 8, "ADRIFT - ship not on chart", render.ColorLightRed, render.ColorBlack)
	}
	for i, id := range g.session.HostileIDs() {
		if i >= 6 {
			break
		}
		buf.WriteString(panelX+30, 3+i, id, render.ColorLightRed, render.ColorBlack)
	}

	// Long-range scan
	buf.WriteString(panelX, 10, "--- Long Range Scan ---", render.ColorLightCyan, render.ColorBlack)
	render.RenderScan(buf, gal.LongRangeScan(), panelX, 11)

	// Galaxy cursor
	target := game.SectorAt(g.cursorX, g.cursorY)
	scan := gal.Scan(target)
	buf.WriteString(panelX, 15, "--- Navigation ---", render.ColorLightCyan, render.ColorBlack)
	buf.WriteString(panelX, 16, fmt.Sprintf("Target sector %d [%d,%d] scan %s", target, g.cursorX, g.cursorY, scan.Code()),
		render.ColorYellow, render.ColorBlack)

	// Comms log
	buf.WriteString(2, commsRow, "--- Comms ---", render.ColorLightCyan, render.ColorBlack)
	for i, msg := range g.session.Log.Recent(commsMax) {
		buf.WriteString(2, commsRow+1+i, msg.Text, msgColor(msg.Priority), render.ColorBlack)
	}

	buf.WriteString(2, gridRows-1, "Arrows: Target  N: Navigate  J: Random jump  ESC: Quit",
		render.ColorDarkGray, render.ColorBlack)
}

func msgColor(p game.MsgPriority) render.Color {
	switch p {
	case game.MsgCritical:
		return render.ColorLightRed
	case game.MsgWarning:
		return render.ColorYellow
	case game.MsgNav:
		return render.ColorLightGreen
	default:
		return render.ColorCyan
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.cursorY = max(g.cursorY-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.cursorY = min(g.cursorY+1, game.GridSize-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.cursorX = max(g.cursorX-1, 0)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.cursorX = min(g.cursorX+1, game.GridSize-1)
	}

	gal := g.session.Galaxy
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		dest := world.NewDestination(game.SectorAt(g.cursorX, g.cursorY), gal.X, gal.Y)
		g.session.Warp(dest)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) {
		g.session.Jump()
		g.cursorX, g.cursorY = gal.MajorX, gal.MajorY
	}

	g.drawScreen()

	mx, my := ebiten.CursorPosition()
	g.updateHoverInfo(mx/cellWidth, my/cellHeight)
	return nil
}

// updateHoverInfo describes the chart cell under the mouse.
func (g *Game) updateHoverInfo(cellX, cellY int) {
	const infoY = 1
	col := (cellX - chartX - 2) / 2
	row := cellY - chartY - 1
	if (cellX-chartX-2)%2 != 0 || col < 0 || col >= world.RegionSize || row < 0 || row >= world.RegionSize {
		return
	}
	chart := g.session.Galaxy.Chart()
	desc := fmt.Sprintf("%s  [%d,%d]", chart.Describe(col, row), col, row)
	g.buffer.WriteString(2, infoY, desc, render.ColorYellow, render.ColorBlack)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.buffer)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	_ = godotenv.Load()
	lg := logger.Setup()

	t, err := tuning.Load(os.Getenv("TREKMAP_TUNING"))
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}
	s, err := game.NewSession(t, lg)
	if err != nil {
		log.Fatalf("start game: %v", err)
	}
	lg.Info("game started", "session", s.ID, "seed", s.Seed)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame(s)); err != nil {
		log.Fatal(err)
	}
}
