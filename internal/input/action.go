package input

// ActionSource indicates the origin of an action.
type ActionSource uint8

const (
	// SourceKeyboard indicates the action originated from keyboard input.
	SourceKeyboard ActionSource = iota
	// SourcePlugin indicates the action originated from a plugin.
	SourcePlugin
	// SourceCLI indicates the action originated from a command line invocation.
	SourceCLI
)

// String returns a string representation of the action source.
func (s ActionSource) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourcePlugin:
		return "plugin"
	case SourceCLI:
		return "cli"
	default:
		return "unknown"
	}
}

// ActionArgs holds arguments for an action.
type ActionArgs struct {
	// Text for insert operations.
	Text string

	// Extra holds additional key-value pairs.
	Extra map[string]any
}

// GetString retrieves a string value from Extra.
func (a ActionArgs) GetString(key string) string {
	if s, ok := a.Extra[key].(string); ok {
		return s
	}
	return ""
}

// Action represents a command to be executed by the dispatcher.
type Action struct {
	// Name is the command identifier (e.g., "editor.splitString").
	Name string

	// Args contains command-specific arguments.
	Args ActionArgs

	// Source indicates where this action originated.
	Source ActionSource
}

// Named returns a keyboard action with no arguments.
func Named(name string) Action {
	return Action{Name: name}
}
