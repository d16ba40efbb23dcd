package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/spycats/internal/client/client"
	"github.com/dmitrijs2005/spycats/internal/client/config"
	"github.com/dmitrijs2005/spycats/internal/client/forms"
	"github.com/dmitrijs2005/spycats/internal/client/repositories/history"
	"github.com/dmitrijs2005/spycats/internal/client/roster"
	"github.com/dmitrijs2005/spycats/internal/logging"
)

const defaultHistoryRows = 20

type App struct {
	api     client.Client
	journal history.Repository
	monitor *client.Monitor
	db      *sql.DB
	logger  logging.Logger

	roster  *roster.Roster
	details *forms.DetailsView

	reader *bufio.Reader
	out    io.Writer
	prompt bool
}

// NewApp builds the client stack from cfg. An empty HistoryDSN disables the
// call journal.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	monitor := client.NewMonitor(cfg.MonitorWindow)
	opts := []client.Option{client.WithLogger(logger), client.WithMonitor(monitor)}

	var (
		db      *sql.DB
		journal history.Repository
	)
	if cfg.HistoryDSN != "" {
		var err error
		db, err = client.InitDatabase(ctx, cfg.HistoryDSN)
		if err != nil {
			return nil, fmt.Errorf("open call journal %s: %w", cfg.HistoryDSN, err)
		}
		repo := history.NewSQLiteRepository(db, cfg.HistoryLimit)
		journal = repo
		opts = append(opts, client.WithRecorder(repo))
	}

	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, opts...)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	a := newApp(api, journal, monitor, logger, in, out)
	a.db = db
	logger.Debug(ctx, "client ready", "api_url", cfg.APIBaseURL, "journal", cfg.HistoryDSN)
	return a, nil
}

func newApp(api client.Client, journal history.Repository, monitor *client.Monitor, logger logging.Logger, in io.Reader, out io.Writer) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		api:     api,
		journal: journal,
		monitor: monitor,
		logger:  logger,
		roster:  roster.New(api, logger),
		details: forms.NewDetailsView(api, logger),
		reader:  bufio.NewReader(in),
		out:     out,
		prompt:  interactive(in),
	}
}

// Close releases the call journal.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) printError(msg string) {
	a.println("Error:", msg)
}
