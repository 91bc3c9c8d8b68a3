package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/alicebob/miniredis/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/innkeeper/internal/config"
	"github.com/KirkDiggler/innkeeper/internal/engine/headless"
	"github.com/KirkDiggler/innkeeper/internal/entities"
	"github.com/KirkDiggler/innkeeper/internal/pkg/idgen"
	"github.com/KirkDiggler/innkeeper/internal/redis"
	"github.com/KirkDiggler/innkeeper/internal/repositories/catalog"
	"github.com/KirkDiggler/innkeeper/internal/repositories/wallet"
	"github.com/KirkDiggler/innkeeper/internal/simulation"
)

// embeddedRedis runs the wallet against an in-process redis server
const embeddedRedis = "embedded"

var (
	configPath    string
	redisAddr     string
	duration      float64
	realtime      bool
	statusEvery   float64
	sequentialIDs bool
	starterRoom   bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the inn simulation",
	Long: `Run the inn on the headless engine for a fixed span of simulated time.
With --realtime the ticks are paced against the wall clock.`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&configPath, "config", "", "tuning file (YAML); empty uses the defaults")
	simulateCmd.Flags().StringVar(&redisAddr, "redis", "", `redis address for the wallet, "embedded" for an in-process server, empty for memory`)
	simulateCmd.Flags().Float64Var(&duration, "duration", 120, "simulated seconds to run")
	simulateCmd.Flags().BoolVar(&realtime, "realtime", false, "pace ticks against the wall clock")
	simulateCmd.Flags().Float64Var(&statusEvery, "status-every", 30, "simulated seconds between status lines, 0 to disable")
	simulateCmd.Flags().BoolVar(&sequentialIDs, "sequential-ids", false, "number guests guest_1, guest_2, ... instead of UUIDs")
	simulateCmd.Flags().BoolVar(&starterRoom, "starter-room", true, "build one bedroom before guests arrive")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping simulation...")
		cancel()
	}()

	tuning, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load tuning: %w", err)
	}

	defs, err := loadCatalog(tuning.Catalog)
	if err != nil {
		return err
	}
	repo, err := catalog.NewInMemory(&catalog.Config{Definitions: defs})
	if err != nil {
		return fmt.Errorf("failed to create catalog: %w", err)
	}

	world, err := headless.NewWorld(&headless.Config{
		Shapes:     headless.ShapesFromCatalog(defs, headless.DefaultGeometry()),
		AgentSpeed: tuning.Guests.Speed,
		Roller:     dice.DefaultRoller,
	})
	if err != nil {
		return fmt.Errorf("failed to create world: %w", err)
	}

	walletRepo, closeWallet, err := openWallet(tuning.Wallet.StartingBalance)
	if err != nil {
		return err
	}
	defer closeWallet()

	var ids idgen.Generator = idgen.NewUUID("guest")
	if sequentialIDs {
		ids = idgen.NewSequential("guest")
	}

	pointer := headless.NewPointer()
	sim, err := simulation.New(&simulation.Config{
		Tuning:       tuning,
		Catalog:      repo,
		Wallet:       walletRepo,
		Instantiator: world,
		Physics:      world,
		Navigator:    world,
		Pointer:      pointer,
		Roller:       dice.DefaultRoller,
		IDs:          ids,
	})
	if err != nil {
		return fmt.Errorf("failed to create simulation: %w", err)
	}
	defer sim.Shutdown(context.Background())

	if starterRoom {
		if err := buildStarterRoom(ctx, sim, pointer); err != nil {
			return fmt.Errorf("failed to build starter room: %w", err)
		}
	}

	slog.Info("Simulation starting",
		"duration", duration,
		"tick", tuning.TickSeconds,
		"realtime", realtime,
	)

	runErr := drive(ctx, sim, tuning.TickSeconds)

	status, err := sim.Status(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read status: %w", err)
	}
	printStatus(cmd, status)

	if runErr != nil && ctx.Err() == nil {
		return runErr
	}
	return nil
}

// drive ticks until duration is reached, logging a status line every statusEvery seconds
func drive(ctx context.Context, sim *simulation.Simulation, dt float64) error {
	var ticker *time.Ticker
	if realtime {
		ticker = time.NewTicker(time.Duration(dt * float64(time.Second)))
		defer ticker.Stop()
	}

	elapsed, sinceStatus := 0.0, 0.0
	for elapsed+dt/2 < duration {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := sim.Tick(ctx, dt); err != nil {
			return err
		}
		elapsed += dt
		sinceStatus += dt

		if statusEvery > 0 && sinceStatus >= statusEvery {
			sinceStatus = 0
			logStatus(ctx, sim)
		}
	}
	return nil
}

func logStatus(ctx context.Context, sim *simulation.Simulation) {
	st, err := sim.Status(ctx)
	if err != nil {
		slog.Warn("Failed to read status", "error", err)
		return
	}
	slog.Info("Inn status",
		"time", st.Time,
		"phase", st.Phase,
		"guests", st.ActiveGuests,
		"rooms", st.Rooms,
		"available", st.AvailableRooms,
		"queue", st.QueueLength,
		"balance", st.Balance,
	)
}

func printStatus(cmd *cobra.Command, st *simulation.Status) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "elapsed:    %.1fs (%d ticks)\n", st.Elapsed, st.Ticks)
	if st.Time != "" {
		fmt.Fprintf(out, "clock:      day %d %s (%s)\n", st.Day, st.Time, st.Phase)
	}
	fmt.Fprintf(out, "land level: %d\n", st.AreaLevel)
	fmt.Fprintf(out, "placed:     %d\n", st.Placed)
	fmt.Fprintf(out, "rooms:      %d (%d free)\n", st.Rooms, st.AvailableRooms)
	fmt.Fprintf(out, "queue:      %d\n", st.QueueLength)
	fmt.Fprintf(out, "guests:     %d\n", st.ActiveGuests)
	fmt.Fprintf(out, "balance:    %d\n", st.Balance)
	if len(st.Disabled) > 0 {
		fmt.Fprintf(out, "disabled:   %v\n", st.Disabled)
	}
	if st.Halted {
		fmt.Fprintln(out, "halted:     invariant failure, see log")
	}
}

func loadCatalog(path string) ([]*entities.ObjectDefinition, error) {
	if path == "" {
		defs, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		return defs, nil
	}

	defs, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return defs, nil
}

// openWallet picks the wallet store from --redis
func openWallet(initial int64) (wallet.Repository, func(), error) {
	if redisAddr == "" {
		repo, err := wallet.NewInMemory(&wallet.InMemoryConfig{InitialBalance: initial})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create wallet: %w", err)
		}
		return repo, func() {}, nil
	}

	addr := redisAddr
	var embedded *miniredis.Miniredis
	if addr == embeddedRedis {
		mr, err := miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start embedded redis: %w", err)
		}
		embedded = mr
		addr = mr.Addr()
		slog.Info("Embedded redis started", "addr", addr)
	}

	client, err := redis.NewClient(addr, &redis.Options{MaxRetries: 3})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	closeAll := func() {
		_ = client.Close()
		if embedded != nil {
			embedded.Close()
		}
	}

	repo, err := wallet.NewRedisRepository(&wallet.RedisConfig{Client: client, InitialBalance: initial})
	if err != nil {
		closeAll()
		return nil, nil, fmt.Errorf("failed to create redis wallet: %w", err)
	}
	return repo, closeAll, nil
}
