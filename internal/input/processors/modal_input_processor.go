// Package processors provides the input processors used by the editor's
// panes and fields.
package processors

import (
	"fmt"

	"github.com/ja-he/propedit/internal/input"
)

// ModalInputProcessor delegates all input to the topmost of its overlays, or
// to its base processor if there are none.
// Implements input.ModalInputProcessor.
type ModalInputProcessor struct {
	base     input.SimpleInputProcessor
	overlays []input.SimpleInputProcessor
}

// NewModalInputProcessor returns a new ModalInputProcessor on the given base
// processor.
func NewModalInputProcessor(base input.SimpleInputProcessor) *ModalInputProcessor {
	return &ModalInputProcessor{base: base}
}

// CapturesInput returns whether the applicable processor captures input.
func (p *ModalInputProcessor) CapturesInput() bool {
	return p.applicable().CapturesInput()
}

// ProcessInput has the applicable processor process the key.
func (p *ModalInputProcessor) ProcessInput(key input.Key) bool {
	return p.applicable().ProcessInput(key)
}

// GetHelp returns the help of the applicable processor.
func (p *ModalInputProcessor) GetHelp() input.Help {
	return p.applicable().GetHelp()
}

// ApplyModalOverlay puts the given processor on top and returns its index.
func (p *ModalInputProcessor) ApplyModalOverlay(overlay input.SimpleInputProcessor) uint {
	p.overlays = append(p.overlays, overlay)
	return uint(len(p.overlays) - 1)
}

// PopModalOverlay removes the topmost overlay.
func (p *ModalInputProcessor) PopModalOverlay() error {
	if len(p.overlays) == 0 {
		return fmt.Errorf("attempt to pop from empty overlay stack")
	}
	p.overlays = p.overlays[:len(p.overlays)-1]
	return nil
}

// PopModalOverlays removes all overlays down to and including the one at the
// given index. Indices beyond the stack are a no-op.
func (p *ModalInputProcessor) PopModalOverlays(index uint) {
	if int(index) < len(p.overlays) {
		p.overlays = p.overlays[:index]
	}
}

// Depth returns the number of overlays.
func (p *ModalInputProcessor) Depth() int { return len(p.overlays) }

func (p *ModalInputProcessor) applicable() input.SimpleInputProcessor {
	if len(p.overlays) > 0 {
		return p.overlays[len(p.overlays)-1]
	}
	return p.base
}
