package input

// SimpleInputProcessor processes the input it is configured for and provides
// help for that configuration.
type SimpleInputProcessor interface {
	// CapturesInput returns whether this processor ought to take precedence
	// over others, e.g. because it holds a partial key sequence or gobbles all
	// input (like a text field).
	CapturesInput() bool

	// ProcessInput processes the given key and returns whether it applied.
	ProcessInput(key Key) bool

	// GetHelp returns the help for this processor's mappings.
	GetHelp() Help
}

// ModalInputProcessor is a SimpleInputProcessor that can be temporarily
// overlaid with further processors, e.g. while a field is being edited.
type ModalInputProcessor interface {
	SimpleInputProcessor

	// ApplyModalOverlay puts the given processor on top and returns its index.
	ApplyModalOverlay(SimpleInputProcessor) (index uint)

	// PopModalOverlay removes the topmost overlay.
	PopModalOverlay() error

	// PopModalOverlays removes all overlays down to and including the one at
	// the given index.
	PopModalOverlays(index uint)
}
