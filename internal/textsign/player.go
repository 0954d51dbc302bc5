package textsign

// Player steps through a sign sequence for timed display.
type Player struct {
	seq     Sequence
	index   int
	playing bool
}

// NewPlayer creates a player over a translated sequence.
func NewPlayer(seq Sequence) *Player {
	return &Player{seq: seq}
}

// Start rewinds to the first sign and begins playback.
func (p *Player) Start() {
	p.index = 0
	p.playing = len(p.seq.Signs) > 0
}

// Stop halts playback.
func (p *Player) Stop() { p.playing = false }

// Current returns the sign to display now, or nil when stopped or done.
func (p *Player) Current() *Output {
	if !p.playing || p.index >= len(p.seq.Signs) {
		return nil
	}
	return &p.seq.Signs[p.index]
}

// Advance moves to the next sign and reports whether one remains.
func (p *Player) Advance() bool {
	if p.index >= len(p.seq.Signs)-1 {
		p.index = len(p.seq.Signs)
		p.playing = false
		return false
	}
	p.index++
	return true
}

// Progress returns the 1-based position and total count.
func (p *Player) Progress() (current, total int) {
	pos := p.index + 1
	if pos > len(p.seq.Signs) {
		pos = len(p.seq.Signs)
	}
	return pos, len(p.seq.Signs)
}

// Playing reports whether playback is active.
func (p *Player) Playing() bool { return p.playing }

// Done reports whether the sequence is exhausted.
func (p *Player) Done() bool { return p.index >= len(p.seq.Signs) }
