package events

import "github.com/atomicstack/paneldock/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

type CommandTracer struct{}

type WindowTracer struct{}

var (
	UI      = UITracer{}
	Filter  = FilterTracer{}
	Action  = ActionTracer{}
	Command = CommandTracer{}
	Window  = WindowTracer{}
)

func (UITracer) Key(key, mode, focus string) {
	logging.Trace("ui.key", map[string]interface{}{"key": key, "mode": mode, "focus": focus})
}

func (UITracer) Focus(panel string) {
	logging.Trace("ui.focus", map[string]interface{}{"panel": panel})
}

func (UITracer) PaletteOpen(levelID string, items int) {
	logging.Trace("palette.open", map[string]interface{}{"level": levelID, "items": items})
}

func (UITracer) PaletteEnter(levelID, itemID, label, filter string) {
	logging.Trace("palette.enter", map[string]interface{}{
		"level":  levelID,
		"item":   itemID,
		"label":  label,
		"filter": filter,
	})
}

func (UITracer) PaletteCursor(levelID string, cursor int) {
	logging.Trace("palette.cursor", map[string]interface{}{"level": levelID, "cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string, requests int) {
	logging.Trace("action.success", map[string]interface{}{"info": info, "requests": requests})
}

func (FilterTracer) Cleared(levelID string) {
	logging.Trace("filter.clear", map[string]interface{}{"level": levelID})
}

func (FilterTracer) WordBackspace(levelID, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Append(levelID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"level": levelID, "filter": filter})
}

func (FilterTracer) Backspace(levelID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"level": levelID, "filter": filter})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) NoOp(id, label string) {
	logging.Trace("command.noop", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"id": id, "label": label, "msg": msgType})
}

func (WindowTracer) Move(panel, geometry string) {
	logging.Trace("window.move", map[string]interface{}{"panel": panel, "geometry": geometry})
}

func (WindowTracer) Resize(panel, geometry string) {
	logging.Trace("window.resize", map[string]interface{}{"panel": panel, "geometry": geometry})
}
