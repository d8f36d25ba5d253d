package ui

// PositionInfo describes a position in the user interface.
//
// Retrievers should initially check for the type of pane they are receiving
// information on and can then retrieve the relevant additional information from
// whatever they got.
type PositionInfo interface {
	PaneType() PaneType
}

// NoPanePositionInfo is (no) information about no position.
type NoPanePositionInfo struct{}

// PaneType returns NoPane.
func (NoPanePositionInfo) PaneType() PaneType { return NoPane }

// PropertyPanePositionInfo provides information on a position in the canvas
// of an editor: the index of the field shown there, if any.
type PropertyPanePositionInfo struct {
	FieldIndex int
	OnField    bool
}

// PaneType returns PropertyPaneType.
func (PropertyPanePositionInfo) PaneType() PaneType { return PropertyPaneType }

// PreviewPanePositionInfo provides information on a position in the preview.
type PreviewPanePositionInfo struct{}

// PaneType returns PreviewPaneType.
func (PreviewPanePositionInfo) PaneType() PaneType { return PreviewPaneType }

// StatusPanePositionInfo provides information on a position in a status pane.
type StatusPanePositionInfo struct{}

// PaneType returns StatusPaneType.
func (StatusPanePositionInfo) PaneType() PaneType { return StatusPaneType }
