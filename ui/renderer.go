package ui

import (
	"fmt"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
)

var (
	colorBackground = rl.NewColor(0x0a, 0x0a, 0x12, 255)
	colorGrid       = rl.NewColor(0x11, 0x11, 0x19, 255)
	colorSnake      = rl.NewColor(0x00, 0xff, 0x7f, 255)
	colorSnakeHead  = rl.NewColor(0x00, 0xcc, 0x66, 255)
	colorFood       = rl.NewColor(0xff, 0x40, 0x81, 255)
	colorFoodGlow   = rl.NewColor(0xff, 0x40, 0x81, 64)
	colorPanel      = rl.NewColor(0x16, 0x16, 0x22, 255)
	colorOverlay    = rl.NewColor(0, 0, 0, 170)
)

type Renderer struct {
	cellSize        int32
	screenWidth     int32
	screenHeight    int32
	graphHeight     int32
	graphWidth      int32
	gameWidth       int32
	gameHeight      int32
	statsPanel      int32
	totalGridWidth  int32
	totalGridHeight int32
	offsetX         int32
	offsetY         int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())

	// Stats panel takes a fixed share of the width, the board gets the rest
	r.statsPanel = r.screenWidth / 4
	r.gameWidth = r.screenWidth - r.statsPanel
	r.gameHeight = r.screenHeight

	r.graphWidth = r.statsPanel - 20
	r.graphHeight = r.screenHeight / 5
}

// Draw renders one frame from a snapshot. It never touches the engine.
func (r *Renderer) Draw(s game.Snapshot) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(colorBackground)

	fontSize := min(r.screenHeight/30, r.statsPanel/12)
	lineHeight := fontSize + fontSize/2

	availableWidth := r.gameWidth - (borderPadding * 2)
	availableHeight := r.gameHeight - (borderPadding * 2)

	cellW := availableWidth / int32(s.Grid.Width)
	cellH := availableHeight / int32(s.Grid.Height)
	r.cellSize = max(min(cellW, cellH), 1)

	r.totalGridWidth = r.cellSize * int32(s.Grid.Width)
	r.totalGridHeight = r.cellSize * int32(s.Grid.Height)

	// Center the board in the game area
	r.offsetX = (r.gameWidth - r.totalGridWidth) / 2
	r.offsetY = (r.screenHeight - r.totalGridHeight) / 2

	r.drawBoard(s)
	r.drawFood(s.Food)
	r.drawSnake(s.Snake)
	r.drawOverlay(s, fontSize)
	r.drawStatsPanel(s, fontSize, lineHeight)

	rl.EndDrawing()
}

func (r *Renderer) cellOrigin(p types.Point) (int32, int32) {
	return r.offsetX + int32(p.X)*r.cellSize, r.offsetY + int32(p.Y)*r.cellSize
}

func (r *Renderer) drawBoard(s game.Snapshot) {
	rl.DrawRectangle(r.offsetX-1, r.offsetY-1, r.totalGridWidth+2, r.totalGridHeight+2, colorGrid)
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, colorBackground)

	for x := int32(0); x <= int32(s.Grid.Width); x++ {
		px := r.offsetX + x*r.cellSize
		rl.DrawLine(px, r.offsetY, px, r.offsetY+r.totalGridHeight, colorGrid)
	}
	for y := int32(0); y <= int32(s.Grid.Height); y++ {
		py := r.offsetY + y*r.cellSize
		rl.DrawLine(r.offsetX, py, r.offsetX+r.totalGridWidth, py, colorGrid)
	}
}

func (r *Renderer) drawFood(food types.Point) {
	x, y := r.cellOrigin(food)
	half := float32(r.cellSize) / 2
	rl.DrawCircle(x+int32(half), y+int32(half), float32(r.cellSize), colorFoodGlow)
	rl.DrawRectangleRounded(
		rl.Rectangle{X: float32(x + 2), Y: float32(y + 2), Width: float32(r.cellSize - 4), Height: float32(r.cellSize - 4)},
		0.4, 4, colorFood)
}

func (r *Renderer) drawSnake(body []types.Point) {
	// Draw tail first so the head ends up on top
	for i := len(body) - 1; i >= 0; i-- {
		x, y := r.cellOrigin(body[i])
		color := colorSnake
		if i == 0 {
			color = colorSnakeHead
		}
		rl.DrawRectangleRounded(
			rl.Rectangle{X: float32(x + 1), Y: float32(y + 1), Width: float32(r.cellSize - 2), Height: float32(r.cellSize - 2)},
			0.4, 4, color)
	}
}

func (r *Renderer) drawOverlay(s game.Snapshot, fontSize int32) {
	title, message := s.Overlay()
	if title == "" {
		return
	}
	rl.DrawRectangle(r.offsetX, r.offsetY, r.totalGridWidth, r.totalGridHeight, colorOverlay)

	titleSize := fontSize * 2
	titleWidth := rl.MeasureText(title, titleSize)
	messageWidth := rl.MeasureText(message, fontSize)
	centerY := r.offsetY + r.totalGridHeight/2

	rl.DrawText(title, r.offsetX+(r.totalGridWidth-titleWidth)/2, centerY-titleSize, titleSize, colorSnake)
	rl.DrawText(message, r.offsetX+(r.totalGridWidth-messageWidth)/2, centerY+fontSize/2, fontSize, rl.White)
}

func (r *Renderer) drawStatsPanel(s game.Snapshot, fontSize, lineHeight int32) {
	statsX := r.gameWidth + 5
	statsY := int32(borderPadding)

	rl.DrawRectangle(statsX-5, 0, r.statsPanel+5, r.screenHeight, colorPanel)

	lines := []struct {
		text  string
		color rl.Color
	}{
		{fmt.Sprintf("Score: %d", s.Score), rl.White},
		{fmt.Sprintf("High: %d", s.HighScore), colorFood},
		{fmt.Sprintf("Speed: %d", s.SpeedLevel), colorSnake},
		{fmt.Sprintf("Tick: %dms", s.TickInterval.Milliseconds()), rl.Gray},
		{"", rl.White},
		{"Session:", rl.White},
		{fmt.Sprintf("Games: %d", s.Session.GamesPlayed), rl.LightGray},
		{fmt.Sprintf("Avg: %.1f", s.Session.AverageScore), rl.LightGray},
		{fmt.Sprintf("Median: %.1f", s.Session.MedianScore), rl.LightGray},
		{fmt.Sprintf("Best: %d", s.Session.MaxScore), rl.LightGray},
	}
	for _, l := range lines {
		if l.text != "" {
			rl.DrawText(l.text, statsX, statsY, fontSize, l.color)
		}
		statsY += lineHeight
	}

	r.drawPerformanceGraph(s, statsX, fontSize)
}

func (r *Renderer) drawPerformanceGraph(s game.Snapshot, graphX, fontSize int32) {
	graphHeight := r.graphHeight
	graphY := r.screenHeight - graphHeight - fontSize*2

	rl.DrawRectangleLines(graphX, graphY, r.graphWidth, graphHeight, rl.White)
	rl.DrawText("Scores", graphX, graphY-fontSize-5, fontSize, rl.White)

	scores := s.Session.Scores
	if len(scores) < 2 {
		return
	}

	maxScore := max(s.Session.MaxScore, 1)
	point := func(i, score int) (int32, int32) {
		x := graphX + int32(float32(r.graphWidth)*float32(i)/float32(manager.MaxHistory))
		y := graphY + graphHeight - int32(float32(graphHeight)*float32(score)/float32(maxScore))
		return x, y
	}
	for j := 1; j < len(scores); j++ {
		x1, y1 := point(j-1, scores[j-1])
		x2, y2 := point(j, scores[j])
		rl.DrawLine(x1, y1, x2, y2, colorSnake)
	}

	// Dashed average line
	avgY := graphY + graphHeight - int32(float32(graphHeight)*float32(s.Session.AverageScore)/float32(maxScore))
	for x := graphX; x < graphX+r.graphWidth; x += 5 {
		rl.DrawLine(x, avgY, x+2, avgY, colorFood)
	}
}
