// Package main provides the CLI entrypoint for gridstrike.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gridstrike/audio"
	"github.com/lixenwraith/gridstrike/component"
	"github.com/lixenwraith/gridstrike/config"
	"github.com/lixenwraith/gridstrike/engine"
	"github.com/lixenwraith/gridstrike/event"
	"github.com/lixenwraith/gridstrike/parameter"
	"github.com/lixenwraith/gridstrike/profile"
	"github.com/lixenwraith/gridstrike/render"
	"github.com/lixenwraith/gridstrike/system"
)

var (
	configPath string
	seedFlag   uint64
	muteFlag   bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gridstrike",
		Short:         "Terminal reaction game",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPlayCmd,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "level table override file")
	rootCmd.Flags().Uint64Var(&seedFlag, "seed", 0, "RNG seed (0 picks from the clock)")
	rootCmd.Flags().BoolVar(&muteFlag, "mute", false, "disable audio cues")

	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runPlayCmd(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := config.Apply(cfg); err != nil {
		return err
	}

	store, err := profile.Open(defaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open profile db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close profile db: %v\n", cerr)
		}
	}()

	seed := seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	world := engine.NewWorld(engine.NewRand(seed))
	system.RegisterAll(world)

	// Home-row skins, purely cosmetic
	glyphs := []string{"a", "s", "d", "f", "j", "k", "l"}
	world.Appearance = func() string {
		return glyphs[world.Rand.IntN(len(glyphs))]
	}

	sounds := audio.NewSoundManager()
	if !muteFlag {
		// Audio is best-effort; a headless terminal plays silent
		if err := sounds.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		}
	}
	defer sounds.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	screen.EnableMouse()
	defer screen.Fini()

	return runGame(world, store, sounds, screen)
}

// runGame drives the fixed-cadence loop: one Advance per frame with the
// real elapsed time, input resolved synchronously between frames
func runGame(world *engine.World, store *profile.Store, sounds *audio.SoundManager, screen tcell.Screen) error {
	renderer := render.NewBoardRenderer(screen)

	inputs := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(inputs, quit)

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	recorded := false
	last := time.Now()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			events := world.Advance(now.Sub(last))
			last = now
			playCues(sounds, events)

			snap := world.Snapshot()
			renderer.RenderFrame(snap)

			if snap.Ended && !recorded {
				recorded = true
				sounds.PlayMatchEnd()
				if err := recordMatch(store, events, snap); err != nil {
					fmt.Fprintf(os.Stderr, "failed to record match: %v\n", err)
				}
			}

		case ev := <-inputs:
			switch tev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case tev.Key() == tcell.KeyEscape || tev.Rune() == 'q':
					close(quit)
					return nil
				case tev.Rune() == 'p':
					if world.IsPaused() {
						last = time.Now()
						world.Resume()
					} else {
						world.Pause()
					}
				case tev.Rune() == 'r':
					recorded = false
					playCues(sounds, world.Reset())
				}

			case *tcell.EventMouse:
				if tev.Buttons()&tcell.Button1 == 0 {
					continue
				}
				x, y := tev.Position()
				playCues(sounds, resolveClick(world, renderer, x, y))

			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}
}

// resolveClick hit-tests a pointer press against the board and feeds the
// result into the world
func resolveClick(world *engine.World, renderer *render.BoardRenderer, x, y int) []event.Event {
	cell := renderer.CellAt(x, y)
	if cell < 0 {
		// Outside the board entirely: not an input at all
		return nil
	}
	if t, ok := world.Targets.ByCell(cell); ok && t.Hittable() {
		return world.ResolveStrike(t.ID)
	}
	return world.ResolveMiss()
}

// playCues maps engine events to audio cues
func playCues(sounds *audio.SoundManager, events []event.Event) {
	for _, ev := range events {
		switch ev.Type {
		case event.EventTargetHit:
			payload, ok := ev.Payload.(*event.TargetHitPayload)
			if !ok {
				continue
			}
			switch payload.Category {
			case component.CategoryBonus:
				sounds.PlayBonus()
			case component.CategoryHazard:
				sounds.PlayHazard()
			case component.CategoryChill:
				sounds.PlayChill()
			default:
				sounds.PlayHit()
			}
		case event.EventTargetMiss:
			sounds.PlayMiss()
		case event.EventLevelCommitted:
			sounds.PlayPromotion()
		case event.EventDemoted:
			sounds.PlayDemotion()
		}
	}
}

// recordMatch folds the finished match into the profile store. The final
// totals ride on the match-ended event; the snapshot backstops them
func recordMatch(store *profile.Store, events []event.Event, snap engine.Snapshot) error {
	score := snap.Score
	bestCombo := snap.BestCombo
	hits, misses := 0, 0
	for _, ev := range events {
		if ev.Type != event.EventMatchEnded {
			continue
		}
		if payload, ok := ev.Payload.(*event.MatchEndedPayload); ok {
			score = payload.Score
			bestCombo = payload.BestCombo
			hits = payload.Hits
			misses = payload.Misses
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return store.RecordMatch(ctx, score, bestCombo, hits, misses)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show profile statistics",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
}

func runStatsCmd(_ *cobra.Command, _ []string) error {
	store, err := profile.Open(defaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open profile db: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "failed to close profile db: %v\n", cerr)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	p := store.Load(ctx)

	accuracy := 0.0
	if total := p.TotalHits + p.TotalMisses; total > 0 {
		accuracy = float64(p.TotalHits) / float64(total) * 100
	}

	fmt.Printf("Matches played: %d\n", p.MatchesPlayed)
	fmt.Printf("Best score:     %d\n", p.BestScore)
	fmt.Printf("Best combo:     %d\n", p.BestCombo)
	fmt.Printf("Hits / misses:  %d / %d (%.1f%% accuracy)\n", p.TotalHits, p.TotalMisses, accuracy)
	fmt.Printf("Coins:          %d\n", p.Coins)
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridstrike", "config.toml")
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "gridstrike", "profile.db")
}
