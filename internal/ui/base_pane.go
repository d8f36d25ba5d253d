package ui

import (
	"github.com/ja-he/propedit/internal/input"
)

// BasePane is the base data necessary for a UI pane and provides a base
// implementation using them.
//
// Construct it with NewBasePane, which assigns the ID.
type BasePane struct {
	ID             PaneID
	Parent         PaneQuerier
	InputProcessor input.ModalInputProcessor
	Visible        func() bool
}

// NewBasePane returns a base pane with a freshly generated ID.
// A nil visibility condition means always visible.
func NewBasePane(visible func() bool) BasePane {
	return BasePane{
		ID:      GeneratePaneID(),
		Visible: visible,
	}
}

// Identify returns the panes ID.
func (p *BasePane) Identify() PaneID {
	if p.ID == NonePaneID {
		panic("pane has not been assigned an ID")
	}
	return p.ID
}

// SetParent sets the pane's parent.
func (p *BasePane) SetParent(parent PaneQuerier) { p.Parent = parent }

// IsVisible indicates whether the pane is visible.
func (p *BasePane) IsVisible() bool { return p.Visible == nil || p.Visible() }

// SetInputProcessor replaces the pane's input processor, e.g. when the
// content it processes input for was rebuilt.
func (p *BasePane) SetInputProcessor(processor input.ModalInputProcessor) {
	p.InputProcessor = processor
}
