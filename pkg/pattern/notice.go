package pattern

// Notice is a non-fatal message shown alongside the panel.
type Notice struct {
	Level   string // "warning" or "info"
	Message string
}

func (n *Notice) Type() PatternType { return PatternTypeNotice }
