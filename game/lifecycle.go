package game

import "github.com/pthm-cable/fdtd2d/config"

// Reset rebuilds the grid and probe from the loaded config and re-seeds
// the configured scenario's materials and sources, so a reset returns to
// the exact initial scenario. The grid is rebuilt rather than passed
// through Grid.Reset because Grid.Reset keeps registered sources, and
// re-seeding on top of them would register every source a second time.
func (g *Game) Reset() {
	cfg := config.Cfg()
	g.buildGrid(cfg)
	g.seedScenario(cfg)
	g.tick = 0
	if g.probe != nil {
		g.probe.Clear()
	}
}

// Shutdown flushes and closes telemetry output and releases GPU
// resources. Safe to call on a headless game (Unload no-ops).
func (g *Game) Shutdown() {
	if g.outputManager != nil {
		if err := g.outputManager.Close(); err != nil {
			Logf("closing telemetry output: %v", err)
		}
	}
	g.Unload()
}
