// Package app wires configuration, secrets, the mirror connection, the
// pipeline and the map generator together for the command-line tools.
package app

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"econmap/internal/config"
	"econmap/internal/dbclient"
	"econmap/internal/domain"
	"econmap/internal/econ"
	"econmap/internal/etl"
	_ "econmap/internal/etl/sources" // register all sources via init()
	"econmap/internal/logging"
	"econmap/internal/mapgen"
	"econmap/internal/secret"
	"econmap/internal/service"
	"econmap/internal/storage"
)

// shutdownTimeout bounds how long Serve waits for an in-flight run.
const shutdownTimeout = 30 * time.Second

// App is the composition root shared by econmap and mapgen.
type App struct {
	cfg     *config.Config
	secrets secret.SecretStore
	emitter service.EventEmitter

	// Opens the mirror connection; replaced in tests.
	connect func(conn *domain.MirrorConnection, password string) (dbclient.Connector, error)

	mu      sync.Mutex
	mirror  dbclient.Connector
	history *storage.DB
}

// New creates an App for cfg. Secrets are read from the environment and,
// when cfg.Mirror.Keychain is set, the macOS Keychain.
func New(cfg *config.Config) *App {
	stores := secret.Chain{secret.NewEnvStore()}
	if cfg.Mirror.Keychain {
		stores = append(stores, secret.NewKeychainStore())
	}
	return &App{
		cfg:     cfg,
		secrets: stores,
		emitter: service.LogEmitter{},
		connect: dbclient.NewConnector,
	}
}

// Config returns the configuration the App was built with.
func (a *App) Config() *config.Config { return a.cfg }

// Secrets returns the secret store used for the mirror password.
func (a *App) Secrets() secret.SecretStore { return a.secrets }

// Startup opens the run history and the mirror connection when configured.
func (a *App) Startup(ctx context.Context) error {
	if err := a.openHistory(ctx); err != nil {
		return err
	}

	conn := a.cfg.MirrorConnection()
	if conn == nil {
		return nil
	}

	password, err := secret.Lookup(a.secrets, conn.PasswordKey)
	if err != nil {
		a.Shutdown()
		return fmt.Errorf("mirror password: %w", err)
	}
	c, err := a.connect(conn, password)
	if err != nil {
		a.Shutdown()
		return fmt.Errorf("open mirror: %w", err)
	}
	if err := c.TestConnection(ctx); err != nil {
		c.Close()
		a.Shutdown()
		return fmt.Errorf("mirror %s unreachable: %w", conn.Driver, err)
	}

	a.mu.Lock()
	a.mirror = c
	a.mu.Unlock()

	logging.FromContext(ctx).Info("mirror connected", "driver", conn.Driver, "table", conn.Table)
	return nil
}

// Shutdown closes the mirror connection and the run history.
func (a *App) Shutdown() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mirror != nil {
		a.mirror.Close()
		a.mirror = nil
	}
	if a.history != nil {
		a.history.Close()
		a.history = nil
	}
}

func (a *App) openHistory(ctx context.Context) error {
	if a.cfg.History.Path == "" {
		return nil
	}
	db, err := storage.New(a.cfg.History.Path)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}

	a.mu.Lock()
	a.history = db
	a.emitter = service.HistoryEmitter{Store: storage.NewRunStore(db), Next: a.emitter}
	a.mu.Unlock()

	logging.FromContext(ctx).Debug("run history opened", "path", a.cfg.History.Path)
	return nil
}

// History returns the run history store, or nil when it is disabled or
// Startup has not run.
func (a *App) History() *storage.RunStore {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.history == nil {
		return nil
	}
	return storage.NewRunStore(a.history)
}

func (a *App) mirrorConn() dbclient.Connector {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mirror
}

// Engine returns the publish targets: the output CSV, then the mirror table.
func (a *App) Engine() *etl.Engine {
	e := &etl.Engine{Targets: []etl.Target{
		{Name: "csv", Dest: &etl.CSVWriter{}, Target: a.cfg.Output.Path},
	}}
	if m := a.mirrorConn(); m != nil {
		e.Targets = append(e.Targets, etl.Target{
			Name:   "mirror",
			Dest:   &etl.MirrorWriter{Conn: m},
			Target: a.cfg.Mirror.Table,
		})
	}
	return e
}

func (a *App) inputSource(path string) econ.Source {
	src := econ.CSVSource(path)
	if a.cfg.Input.Delimiter != "" {
		src.Config["delimiter"] = a.cfg.Input.Delimiter
	}
	return src
}

// Pipeline builds the configured pipeline.
func (a *App) Pipeline() *econ.Pipeline {
	var matcher econ.Matcher
	if !a.cfg.Resolve.Fuzzy {
		matcher = econ.ExactMatcher{}
	}
	return &econ.Pipeline{
		GDP:              a.inputSource(a.cfg.Input.GDP),
		Inflation:        a.inputSource(a.cfg.Input.Inflation),
		Years:            econ.YearRange{Min: a.cfg.Years.Min, Max: a.cfg.Years.Max},
		Resolver:         econ.NewResolver(econ.ISOOverrides(), matcher),
		Engine:           a.Engine(),
		UnresolvedSample: a.cfg.Resolve.UnresolvedSample,
	}
}

// PipelineService wraps the pipeline with run IDs, events and triggers.
func (a *App) PipelineService() *service.PipelineService {
	svc := service.NewPipelineService(a.Pipeline(), a.emitter)
	svc.SetDebounce(a.cfg.Trigger.Debounce)
	return svc
}

// Serve runs the pipeline once, then keeps re-running it on input changes
// and/or the cron schedule until ctx is cancelled. The in-flight run is
// allowed to finish before Serve returns.
func (a *App) Serve(ctx context.Context, svc *service.PipelineService) error {
	log := logging.FromContext(ctx)

	if _, err := svc.RunOnce(ctx); err != nil {
		log.Error("initial run failed", "error", err)
	}

	if a.cfg.Trigger.Watch {
		if err := svc.Watch(ctx, a.cfg.Input.GDP, a.cfg.Input.Inflation); err != nil {
			return err
		}
	}
	if a.cfg.Trigger.Schedule != "" {
		if err := svc.Schedule(ctx, a.cfg.Trigger.Schedule); err != nil {
			svc.Stop()
			return err
		}
	}

	<-ctx.Done()
	log.Info("shutting down")
	svc.Stop()

	wait, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	svc.WaitRunning(wait)
	return nil
}

// MapGenerator builds the map generator reading the CSV output, or the
// mirror table when cfg.Map.FromMirror is set.
func (a *App) MapGenerator() (*mapgen.Generator, error) {
	input := econ.CSVSource(a.cfg.MapInput())
	if a.cfg.Map.FromMirror {
		m := a.mirrorConn()
		if m == nil {
			return nil, fmt.Errorf("map input: mirror is not connected")
		}
		input = econ.Source{Type: "db_table", Config: etl.SourceConfig{"table": a.cfg.Mirror.Table, "reader": m}}
	} else if _, err := os.Stat(a.cfg.MapInput()); err != nil {
		return nil, fmt.Errorf("map input: %w", err)
	}

	return &mapgen.Generator{
		Engine: &etl.Engine{},
		Input:  input,
		Output: a.cfg.Map.Output,
		Page:   mapgen.PageOptions{PlotlyURL: a.cfg.Map.PlotlyURL},
	}, nil
}
