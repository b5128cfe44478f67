package tsunami

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/tsunami-run/internal/core"
	"github.com/vovakirdan/tsunami-run/internal/runner"
)

// Visual characters for rendering
const (
	PlatformChar = '▓'
	TrapChar     = '░'
	BarrierChar  = '█'
	ShardChar    = '◆'
	RingChar     = 'O'
	WaveCrest    = '≈'
	WaveBody     = '~'
	PlayerGround = '▲'
	PlayerAir    = '△'
)

// Projection scale: x runs across the screen, -z runs up it.
const (
	colsPerUnit = 1.5
	unitsPerRow = 2.0
	hudRows     = 1
	footerRows  = 1
)

// view maps world coordinates onto screen cells around the player.
type view struct {
	camX, camZ float32
	centerCol  int
	playerRow  int
	top, bot   int // Usable rows, inclusive
}

func newView(dst *core.Screen, player runner.Transform) view {
	h := dst.Height()
	bot := h - footerRows - 1
	return view{
		camX:      player.Pos.X(),
		camZ:      player.Pos.Z(),
		centerCol: dst.Width() / 2,
		playerRow: bot - 3,
		top:       hudRows,
		bot:       bot,
	}
}

func (v view) col(x float32) int {
	return v.centerCol + int(math32.Floor((x-v.camX)*colsPerUnit))
}

func (v view) row(z float32) int {
	return v.playerRow + int(math32.Floor((z-v.camZ)/unitsPerRow))
}

// rect projects an xz footprint onto a screen rectangle, at least one cell.
func (v view) rect(pos, half mgl32.Vec3) core.Rect {
	x0, x1 := v.col(pos[0]-half[0]), v.col(pos[0]+half[0])
	y0, y1 := v.row(pos[2]-half[2]), v.row(pos[2]+half[2])
	return core.NewRect(x0, y0, core.Max(1, x1-x0), core.Max(1, y1-y0))
}

func (v view) visible(row int) bool {
	return row >= v.top && row <= v.bot
}

// Render draws the current session state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	v := newView(dst, snap.Player)
	area := core.NewRect(0, v.top, dst.Width(), v.bot-v.top+1)

	// Solid geometry first, decorations on top
	for _, o := range snap.Objects {
		var fill rune
		var color core.Color
		switch o.Kind {
		case runner.KindSolid:
			fill, color = PlatformChar, core.ColorPlatform
		case runner.KindTrap:
			fill, color = TrapChar, core.ColorTrap
		case runner.KindBarrier:
			fill, color = BarrierChar, core.ColorBarrier
		default:
			continue
		}
		r := v.rect(o.Pos, o.Half)
		if !r.Intersects(area) {
			continue
		}
		dst.DrawRect(r.Clip(area), fill, color)
	}

	for _, o := range snap.Objects {
		row := v.row(o.Pos.Z())
		if !v.visible(row) {
			continue
		}
		switch o.Kind {
		case runner.KindCollectible:
			dst.SetColored(v.col(o.Pos.X()), row, ShardChar, core.ColorShard)
		case runner.KindPowerUp:
			dst.SetColored(v.col(o.Pos.X()), row, RingChar, core.ColorRing)
		}
	}

	for _, l := range snap.Labels {
		row := v.row(l.Pos.Z())
		if !v.visible(row) {
			continue
		}
		dst.DrawTextColored(v.col(l.Pos.X())-len(l.Text)/2, row, l.Text, core.ColorLabel)
	}

	g.drawWave(dst, v, snap)

	glyph := PlayerAir
	if snap.Grounded {
		glyph = PlayerGround
	}
	dst.SetColored(v.centerCol, v.playerRow, glyph, core.ColorPlayer)

	g.drawHUD(dst, snap)
	g.drawFooter(dst, snap)

	switch snap.State.Phase {
	case runner.PhaseNotStarted:
		g.drawCenteredMessage(dst, strings.ToUpper(g.title), "Enter to start  |  WASD move  Space jump")
	case runner.PhasePaused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case runner.PhaseGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("%s  |  Score: %d  |  Press R to restart", snap.State.Reason, int(snap.State.Score)))
	}
}

// drawWave fills everything behind the wave's front with water.
func (g *Game) drawWave(dst *core.Screen, v view, snap runner.Snapshot) {
	front := v.row(snap.Pursuer.Pos.Z())
	if front > v.bot {
		return
	}
	if v.visible(front) {
		dst.DrawHLine(0, front, dst.Width(), WaveCrest, core.ColorPursuer)
	}
	shift := int(snap.Scroll * 4)
	for row := core.Max(front+1, v.top); row <= v.bot; row++ {
		for x := 0; x < dst.Width(); x++ {
			ch := WaveBody
			if (x+shift+row)%4 == 0 {
				ch = ' '
			}
			dst.SetColored(x, row, ch, core.ColorPursuer)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap runner.Snapshot) {
	st := snap.State
	gap := g.session.Pursuer().Gap(snap.Player.Pos.Z())

	left := fmt.Sprintf(" Score: %d  Dist: %dm  Wave: %.0fm ", int(st.Score), int(st.Distance), gap)
	waveColor := core.ColorHUD
	if gap < 10 {
		waveColor = core.ColorWarning
	}
	dst.DrawTextColored(1, 0, left, waveColor)

	bar := attentionBar(st.Attention, g.cfg.Attention.Max, 10)
	right := fmt.Sprintf(" ATTN %s %3.0f ", bar, st.Attention)
	attColor := core.ColorHUD
	if st.Attention < g.cfg.Attention.Max/4 {
		attColor = core.ColorWarning
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, attColor)
}

func (g *Game) drawFooter(dst *core.Screen, snap runner.Snapshot) {
	text := fmt.Sprintf(" alt %.1f  wave speed %.1f  seed %d ", snap.Player.Pos.Y(), snap.PursuerSpeed, snap.Seed)
	dst.DrawTextColored(1, dst.Height()-1, text, core.ColorHUD)
}

// attentionBar renders value/maxValue as a fixed-width bar.
func attentionBar(value, maxValue float32, width int) string {
	filled := 0
	if maxValue > 0 {
		filled = int(math32.Round(value / maxValue * float32(width)))
	}
	filled = core.Clamp(filled, 0, width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)

	dst.DrawTextColored(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorHUD)
	dst.DrawTextColored(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle, core.ColorDefault)
}
