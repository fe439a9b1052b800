package editor

// ConfirmConfig describes one yes/no prompt.
type ConfirmConfig struct {
	Title        string
	Message      string
	ConfirmLabel string
	CancelLabel  string
	OnConfirm    func()
	OnCancel     func()
}

// ConfirmGate guards a destructive action behind a prompt. A closed gate has
// no config and renders nothing.
type ConfirmGate struct {
	open bool
	cfg  ConfirmConfig
}

func (g *ConfirmGate) Open(cfg ConfirmConfig) {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = "Cancel"
	}
	g.cfg = cfg
	g.open = true
}

func (g *ConfirmGate) IsOpen() bool { return g != nil && g.open }

// Config returns the active prompt; ok is false when the gate is closed.
func (g *ConfirmGate) Config() (ConfirmConfig, bool) {
	if !g.IsOpen() {
		return ConfirmConfig{}, false
	}
	return g.cfg, true
}

// Confirm runs the confirm callback and closes the gate. It is a no-op when closed.
func (g *ConfirmGate) Confirm() {
	if !g.IsOpen() {
		return
	}
	cb := g.cfg.OnConfirm
	g.close()
	if cb != nil {
		cb()
	}
}

// Cancel closes the gate without running the confirm callback.
func (g *ConfirmGate) Cancel() {
	if !g.IsOpen() {
		return
	}
	cb := g.cfg.OnCancel
	g.close()
	if cb != nil {
		cb()
	}
}

func (g *ConfirmGate) close() {
	g.open = false
	g.cfg = ConfirmConfig{}
}
