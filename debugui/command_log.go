package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
)

// CommandLog shows the latest commands applied to a session, with a
// filter on the command name.
type CommandLog struct {
	session    *engine.Session
	size       int
	filterText string
}

func NewCommandLog(session *engine.Session, size int) *CommandLog {
	return &CommandLog{session: session, size: size}
}

func (cl *CommandLog) Render() {
	if !imgui.BeginV("Command Log", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.InputTextWithHint("##filter", "Filter...", &cl.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		cl.filterText = ""
	}

	rec := cl.session.Recording()
	imgui.Text(fmt.Sprintf("Recorded: %d", len(rec.Commands)))
	imgui.Separator()

	for _, line := range filterCommands(cl.session.RecentCommands(cl.size), cl.filterText) {
		imgui.BulletText(line)
	}

	imgui.End()
}

func filterCommands(cmds []engine.Command, filter string) []string {
	filter = strings.ToLower(strings.TrimSpace(filter))

	var out []string
	for _, cmd := range cmds {
		name := cmd.String()
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		out = append(out, name)
	}
	return out
}
