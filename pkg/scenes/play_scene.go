package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/pong/pkg/config"
	"github.com/decker502/pong/pkg/game"
	"github.com/decker502/pong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 场景配色，复刻原版
var (
	// 背景：英国赛车绿
	backgroundColor = color.RGBA{R: 0, G: 66, B: 37, A: 255}

	// 球：勃艮第红
	ballColor = color.RGBA{R: 144, G: 0, B: 32, A: 255}

	// 球拍：黑色
	paddleColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// PlayScene represents the gameplay screen: one endless rally against
// the right edge. It forwards player input to the simulation, steps it
// once per tick and renders the resulting snapshot.
type PlayScene struct {
	session  *game.Session
	settings *game.SettingsManager

	// 触摸半区上一帧的按住状态，只在变化时转发给模拟
	touchUpHeld   bool
	touchDownHeld bool
}

// NewPlayScene creates the gameplay scene.
//
// settings may be nil; the FPS overlay is then simply never drawn.
func NewPlayScene(session *game.Session, settings *game.SettingsManager) *PlayScene {
	return &PlayScene{
		session:  session,
		settings: settings,
	}
}

// Update forwards input edges to the simulation and advances it one frame.
// deltaTime is ignored: the simulation is frame-stepped, one step per tick.
func (s *PlayScene) Update(deltaTime float64) {
	s.handleKeyboard()
	s.handleTouch()
	s.session.Update()
}

// handleKeyboard 把按键边沿转发为方向按住状态
//
// 每个方向绑定两个键（交叉布局，见 pkg/utils），任何绑定键的释放
// 都会清除该方向，即使同方向的另一个键仍被按住。原版就是这样。
func (s *PlayScene) handleKeyboard() {
	if utils.AnyKeyJustPressed(utils.UpKeys()) {
		s.session.SetInput(game.DirectionUp, true)
	}
	if utils.AnyKeyJustReleased(utils.UpKeys()) {
		s.session.SetInput(game.DirectionUp, false)
	}

	if utils.AnyKeyJustPressed(utils.DownKeys()) {
		s.session.SetInput(game.DirectionDown, true)
	}
	if utils.AnyKeyJustReleased(utils.DownKeys()) {
		s.session.SetInput(game.DirectionDown, false)
	}
}

// handleTouch 把触摸半区状态的变化转发给模拟
//
// 上半区等同按住向上，下半区等同按住向下，多点触摸可同时生效。
// 仅在移动端轮询触摸，桌面端靠键盘。
func (s *PlayScene) handleTouch() {
	if !utils.IsMobile() {
		return
	}

	up, down := utils.TouchHeldDirections(float64(s.session.Config().ArenaHeight))

	if up != s.touchUpHeld {
		s.session.SetInput(game.DirectionUp, up)
		s.touchUpHeld = up
	}
	if down != s.touchDownHeld {
		s.session.SetInput(game.DirectionDown, down)
		s.touchDownHeld = down
	}
}

// Draw renders the current simulation snapshot.
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	snap := s.session.Snapshot()
	s.drawBall(screen, snap)
	s.drawPaddle(screen, snap)
	s.drawHUD(screen, snap)
}

// drawBall 绘制球
func (s *PlayScene) drawBall(screen *ebiten.Image, snap game.Snapshot) {
	arenaHeight := float64(s.session.Config().ArenaHeight)
	cx, cy := utils.ArenaToScreen(snap.BallCenter, arenaHeight)

	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(snap.BallRadius), ballColor, true)
}

// drawPaddle 绘制球拍
//
// 快照给出的是拍心，DrawFilledRect 需要左上角，转换后各减半宽半高。
func (s *PlayScene) drawPaddle(screen *ebiten.Image, snap game.Snapshot) {
	arenaHeight := float64(s.session.Config().ArenaHeight)
	cx, cy := utils.ArenaToScreen(snap.PaddleCenter, arenaHeight)

	x := float32(cx - snap.PaddleWidth/2)
	y := float32(cy - snap.PaddleHeight/2)
	vector.DrawFilledRect(screen, x, y, float32(snap.PaddleWidth), float32(snap.PaddleHeight), paddleColor, true)
}

// drawHUD 绘制得分与可选的帧率文本
func (s *PlayScene) drawHUD(screen *ebiten.Image, snap game.Snapshot) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), config.ScoreTextX, config.ScoreTextY)

	if s.settings != nil && s.settings.GetSettings().ShowFPS {
		fpsText := fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, fpsText, config.FPSTextX, config.FPSTextY)
	}
}
