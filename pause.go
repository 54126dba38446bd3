package uzu

// PauseFlags pauses independent subsystems through bit flags, so some parts
// of a game can stop updating while others keep running.
//
//	const backgroundLayer = 1 << 0
//	pause.Pause(backgroundLayer)
//	// in the background layer's update:
//	if pause.IsPaused(backgroundLayer) {
//		return
//	}
type PauseFlags uint32

// Pause sets flag.
func (p *PauseFlags) Pause(flag uint32) { *p |= PauseFlags(flag) }

// Unpause clears flag.
func (p *PauseFlags) Unpause(flag uint32) { *p &^= PauseFlags(flag) }

// UnpauseAll clears every flag.
func (p *PauseFlags) UnpauseAll() { *p = 0 }

// IsPaused reports whether any bit of flag is set.
func (p PauseFlags) IsPaused(flag uint32) bool { return uint32(p)&flag != 0 }
