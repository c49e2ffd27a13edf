package main

import (
	"flag"
	"fmt"
	"strings"

	"mall-engine/internal/commands"
	"mall-engine/internal/debug"
	"mall-engine/internal/engine"
	"mall-engine/internal/engineconfig"
	"mall-engine/internal/graphics"
	"mall-engine/internal/logger"
	"mall-engine/internal/mapgen"
	"mall-engine/internal/primitives"
	"mall-engine/internal/scene"
	"mall-engine/internal/semantic"
	"mall-engine/internal/terminal"
)

func main() {
	log := logger.New()
	cfg, err := engineconfig.Load()
	if err != nil {
		log.Logf("config: %v, using defaults", err)
	}

	eng := engine.New(cfg, log)
	eng.LoadMall(mapgen.Generate(mapgen.DefaultOptions()))

	cache := primitives.NewCache()
	scn := scene.New(eng, cache, cfg)

	dbg := debug.New()
	dbg.SetShowFPS(cfg.ShowFPS)
	dbg.SetShowCounts(cfg.ShowCounts)
	dbg.Counts = func() (int, int) {
		return eng.Registry().Count(), eng.Meshes().Count()
	}

	reg := commands.NewRegistry()
	registerCommands(reg, log, eng, scn, dbg)
	term := terminal.New(log, reg)

	update := func(dt float32) {
		term.Update()
		scn.Update(dt, !term.IsOpen())
	}
	draw := func() {
		scn.Draw()
		term.Draw()
		dbg.Draw()
	}
	graphics.Run(update, draw)

	eng.Dispose()
	cache.Dispose()
}

// registerCommands wires the console verbs to the engine. Every FlagSet
// uses ContinueOnError so a bad flag lands in the console log instead of
// exiting the process.
func registerCommands(reg *commands.Registry, log *logger.Logger, eng *engine.Engine, scn *scene.Scene, dbg *debug.Debug) {
	helpFS := flag.NewFlagSet("help", flag.ContinueOnError)
	reg.Register("help", "list commands", helpFS, func() error {
		for _, name := range reg.Names() {
			log.Logf("  %-10s %s", name, reg.Help(name))
		}
		return nil
	})

	undoFS := flag.NewFlagSet("undo", flag.ContinueOnError)
	reg.Register("undo", "step back one checkpoint", undoFS, func() error {
		if eng.Undo() == nil {
			return fmt.Errorf("nothing to undo")
		}
		log.Log("undone")
		return nil
	})

	redoFS := flag.NewFlagSet("redo", flag.ContinueOnError)
	reg.Register("redo", "step forward one checkpoint", redoFS, func() error {
		if eng.Redo() == nil {
			return fmt.Errorf("nothing to redo")
		}
		log.Log("redone")
		return nil
	})

	floorFS := flag.NewFlagSet("floor", flag.ContinueOnError)
	floorID := floorFS.String("id", "", "floor business id (e.g. floor-2)")
	reg.Register("floor", "switch the current floor", floorFS, func() error {
		obj := eng.GetByBusinessID(*floorID, semantic.TypeFloor)
		if obj == nil {
			return fmt.Errorf("no floor %q", *floorID)
		}
		eng.SetCurrentFloor(obj.ID)
		return nil
	})

	selectFS := flag.NewFlagSet("select", flag.ContinueOnError)
	selectID := selectFS.String("id", "", "store business id")
	reg.Register("select", "select a store by business id", selectFS, func() error {
		if *selectID == "" {
			eng.DeselectStore()
			return nil
		}
		obj := eng.GetByBusinessID(*selectID, semantic.TypeStore)
		if obj == nil {
			return fmt.Errorf("no store %q", *selectID)
		}
		eng.SelectStore(obj.ID)
		return nil
	})

	highlightFS := flag.NewFlagSet("highlight", flag.ContinueOnError)
	highlightID := highlightFS.String("id", "", "store business id")
	reg.Register("highlight", "highlight a store by business id", highlightFS, func() error {
		if *highlightID == "" {
			eng.ClearHighlight()
			return nil
		}
		obj := eng.GetByBusinessID(*highlightID, semantic.TypeStore)
		if obj == nil {
			return fmt.Errorf("no store %q", *highlightID)
		}
		eng.HighlightStore(obj.ID)
		return nil
	})

	removeFS := flag.NewFlagSet("remove", flag.ContinueOnError)
	removeID := removeFS.String("id", "", "store business id")
	reg.Register("remove", "remove a store and checkpoint", removeFS, func() error {
		obj := eng.GetByBusinessID(*removeID, semantic.TypeStore)
		if obj == nil {
			return fmt.Errorf("no store %q", *removeID)
		}
		eng.RemoveStore(obj.ID)
		removeFromProject(eng, *removeID)
		eng.PushHistory()
		return nil
	})

	modeFS := flag.NewFlagSet("mode", flag.ContinueOnError)
	modeName := modeFS.String("set", "", "build or roam")
	reg.Register("mode", "switch camera mode", modeFS, func() error {
		switch strings.ToLower(*modeName) {
		case "roam":
			eng.EnterRoam()
		case "build":
			eng.EnterBuild()
		default:
			return fmt.Errorf("mode must be build or roam")
		}
		return nil
	})

	gridFS := flag.NewFlagSet("grid", flag.ContinueOnError)
	gridOn := gridFS.Bool("visible", true, "show the editor grid")
	reg.Register("grid", "toggle the editor grid", gridFS, func() error {
		scn.SetGridVisible(*gridOn)
		return nil
	})

	fpsFS := flag.NewFlagSet("fps", flag.ContinueOnError)
	fpsOn := fpsFS.Bool("show", true, "show the FPS counter")
	reg.Register("fps", "toggle the FPS overlay", fpsFS, func() error {
		dbg.SetShowFPS(*fpsOn)
		return nil
	})

	countsFS := flag.NewFlagSet("counts", flag.ContinueOnError)
	countsOn := countsFS.Bool("show", true, "show scene statistics")
	reg.Register("counts", "toggle the scene statistics overlay", countsFS, func() error {
		dbg.SetShowCounts(*countsOn)
		return nil
	})

	regenFS := flag.NewFlagSet("regen", flag.ContinueOnError)
	regenSeed := regenFS.Int64("seed", 0, "generation seed (0 = random)")
	reg.Register("regen", "load a fresh procedural mall", regenFS, func() error {
		opts := mapgen.DefaultOptions()
		opts.Seed = *regenSeed
		eng.LoadMall(mapgen.Generate(opts))
		return nil
	})
}

// removeFromProject mirrors a scene-side store removal into the project
// document so the next checkpoint matches what is on screen.
func removeFromProject(eng *engine.Engine, storeID string) {
	project := eng.Project()
	if project == nil {
		return
	}
	for fi := range project.Floors {
		for ai := range project.Floors[fi].Areas {
			area := &project.Floors[fi].Areas[ai]
			for si := range area.Stores {
				if area.Stores[si].StoreID == storeID {
					area.Stores = append(area.Stores[:si], area.Stores[si+1:]...)
					return
				}
			}
		}
	}
}
