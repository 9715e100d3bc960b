package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/lixenwraith/shootbox/audio"
	"github.com/lixenwraith/shootbox/config"
	"github.com/lixenwraith/shootbox/engine"
	"github.com/lixenwraith/shootbox/event"
	"github.com/lixenwraith/shootbox/input"
	"github.com/lixenwraith/shootbox/parameter"
	"github.com/lixenwraith/shootbox/render"
	"github.com/lixenwraith/shootbox/system"
)

const weaponCatalogFile = "weapons.yaml"

type Game struct {
	screen      tcell.Screen
	world       *engine.World
	clock       engine.TimeProvider
	controls    *input.ControlState
	adapter     *input.TerminalAdapter
	view        *render.View
	sound       *audio.SoundManager
	settingsMgr *config.SettingsManager
	snap        render.Snapshot
}

func NewGame() (*Game, error) {
	settingsMgr := loadSettings()
	catalog := loadCatalog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	world := engine.NewWorld(engine.NewResources(catalog, settingsMgr.Settings()))
	system.RegisterAll(world, sound)

	g := &Game{
		screen:      screen,
		world:       world,
		clock:       engine.NewMonotonicTimeProvider(),
		controls:    input.NewControlState(),
		view:        render.NewView(screen, catalog, settingsMgr.Settings()),
		sound:       sound,
		settingsMgr: settingsMgr,
	}
	g.adapter = input.NewTerminalAdapter(g.controls, func(t event.EventType, payload any) {
		world.PushEvent(t, payload)
	})
	return g, nil
}

func loadSettings() *config.SettingsManager {
	store, err := gdata.Open(gdata.Config{AppName: "shootbox"})
	if err != nil {
		log.Printf("Settings store unavailable, using defaults: %v", err)
		store = nil
	}
	mgr, err := config.NewSettingsManager(store)
	if err != nil {
		log.Printf("Failed to load saved settings: %v", err)
	}
	return mgr
}

func loadCatalog() *config.Catalog {
	data, err := os.ReadFile(weaponCatalogFile)
	if err != nil {
		return config.DefaultCatalog()
	}
	catalog, err := config.LoadCatalog(data)
	if err != nil {
		log.Printf("Invalid weapon catalog, using defaults: %v", err)
		return config.DefaultCatalog()
	}
	return catalog
}

func (g *Game) run() {
	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- g.screen.PollEvent()
		}
	}()

	last := g.clock.Now()
	for {
		select {
		case ev := <-eventChan:
			if !g.adapter.HandleEvent(ev, g.clock.Now()) {
				return
			}

		case <-ticker.C:
			now := g.clock.Now()
			delta := now.Sub(last)
			last = now

			g.controls.Drain(now, g.world.Resources.Input)
			g.world.Resources.Time.Update(now, delta, g.world.FrameNumber()+1)
			g.world.Update()

			render.Build(g.world, &g.snap)
			fps := 0.0
			if delta > 0 {
				fps = float64(time.Second) / float64(delta)
			}
			g.view.Draw(&g.snap, fps)
		}
	}
}

func (g *Game) cleanup() {
	if err := g.settingsMgr.Save(); err != nil {
		log.Printf("Failed to save settings: %v", err)
	}
	g.sound.Cleanup()
	g.screen.Fini()
}

func main() {
	game, err := NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer game.cleanup()

	game.run()
}
