package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/engine"
)

type SessionInspector struct {
	session *engine.Session
}

func NewSessionInspector(session *engine.Session) *SessionInspector {
	return &SessionInspector{session: session}
}

func (si *SessionInspector) Render() {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	b := si.session.Board()
	timer := si.session.Timer()

	imgui.Text("ID: " + si.session.ID)
	imgui.Text(fmt.Sprintf("Seed: %d", si.session.Seed()))
	imgui.Text("Status: " + b.Status().String())
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d", b.Score(), b.Lines()))
	imgui.Text(fmt.Sprintf("Fall interval: %s (fast=%t)", timer.Interval(), timer.Fast()))
	imgui.Text(activeText(b))

	imgui.Separator()

	if imgui.TreeNodeStr("Spawns") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SpawnTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Kind")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for kind, count := range si.session.SpawnCounts() {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(board.Kind(kind).String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", count))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Grid") {
		imgui.Text(b.Grid().String())
		imgui.TreePop()
	}

	imgui.End()
}

func activeText(b *board.Board) string {
	piece, ok := b.Active()
	if !ok {
		return "Active: none"
	}
	return fmt.Sprintf("Active: %s at (%d, %d)", piece.Kind, piece.X, piece.Y)
}
