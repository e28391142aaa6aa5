package ebitools

import (
	"log"
	"time"
)

// debugStats accumulates frame timings between debug log lines. Only
// populated when Context.Debug is true.
type debugStats struct {
	ticks      int
	updateTime time.Duration
	drawTime   time.Duration
}

// debugLogInterval is the number of ticks between timing lines.
const debugLogInterval = 120

// debugLog prints average update and draw timings every debugLogInterval
// ticks.
func (g *Game) debugLog() {
	s := &g.stats
	s.ticks++
	if s.ticks < debugLogInterval {
		return
	}
	n := time.Duration(s.ticks)
	log.Printf("[ebitools] update: %v | draw: %v | screen: %q",
		s.updateTime/n, s.drawTime/n, g.ctx.Screens.CurrentName())
	*s = debugStats{}
}

// debugMaxParticles is the live particle count above which a debug engine
// warns. Spawning faster than particles expire grows the list without
// bound.
const debugMaxParticles = 20000

func debugCheckParticleCount(e *ParticleEngine) {
	if e.warned || len(e.particles) <= debugMaxParticles {
		return
	}
	e.warned = true
	log.Printf("[ParticleEngine] warning: %d live particles exceeds %d (spawning %d per tick, lifespan %d)",
		len(e.particles), debugMaxParticles, e.config.MaximumParticles, e.config.LifeSpan)
}
