package vim

// Motion identifies one cursor-repositioning operation.
type Motion uint8

const (
	// MotionNone is the zero value and not a valid motion.
	MotionNone Motion = iota

	// Character motions
	MotionLeft
	MotionDown
	MotionUp
	MotionRight

	// Word motions
	MotionWordForward
	MotionWordBackward
	MotionWordEnd

	// Line motions
	MotionLineStart
	MotionLineEnd

	// Document motions
	MotionDocumentStart
	MotionDocumentEnd

	motionCount
)

// motionDef describes a motion for display and dispatch.
type motionDef struct {
	// name is the motion identifier (e.g., "wordForward").
	name string

	// keys is the canonical key sequence that triggers the motion.
	keys string

	// action is the action name used in logs (e.g., "cursor.wordForward").
	action string

	// linewise marks motions that move between lines.
	linewise bool
}

var motionDefs = [motionCount]motionDef{
	MotionNone:          {name: "none"},
	MotionLeft:          {name: "left", keys: "h", action: "cursor.left"},
	MotionDown:          {name: "down", keys: "j", action: "cursor.down", linewise: true},
	MotionUp:            {name: "up", keys: "k", action: "cursor.up", linewise: true},
	MotionRight:         {name: "right", keys: "l", action: "cursor.right"},
	MotionWordForward:   {name: "wordForward", keys: "w", action: "cursor.wordForward"},
	MotionWordBackward:  {name: "wordBackward", keys: "b", action: "cursor.wordBackward"},
	MotionWordEnd:       {name: "wordEnd", keys: "e", action: "cursor.wordEnd"},
	MotionLineStart:     {name: "lineStart", keys: "0", action: "cursor.lineStart"},
	MotionLineEnd:       {name: "lineEnd", keys: "$", action: "cursor.lineEnd"},
	MotionDocumentStart: {name: "documentStart", keys: "gg", action: "cursor.documentStart", linewise: true},
	MotionDocumentEnd:   {name: "documentEnd", keys: "G", action: "cursor.documentEnd", linewise: true},
}

// Valid returns true if m is one of the defined motions.
func (m Motion) Valid() bool {
	return m > MotionNone && m < motionCount
}

// String returns the motion name.
func (m Motion) String() string {
	if m >= motionCount {
		return "unknown"
	}
	return motionDefs[m].name
}

// Keys returns the canonical keystroke label, e.g. "w" or "gg".
func (m Motion) Keys() string {
	if m >= motionCount {
		return ""
	}
	return motionDefs[m].keys
}

// Action returns the dispatch action name, e.g. "cursor.left".
func (m Motion) Action() string {
	if m >= motionCount {
		return ""
	}
	return motionDefs[m].action
}

// Linewise returns true if the motion moves between lines.
func (m Motion) Linewise() bool {
	if m >= motionCount {
		return false
	}
	return motionDefs[m].linewise
}

// Motions returns every valid motion in declaration order.
func Motions() []Motion {
	out := make([]Motion, 0, motionCount-1)
	for m := MotionLeft; m < motionCount; m++ {
		out = append(out, m)
	}
	return out
}
