package main

import (
	"context"
	"io/fs"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/myrjola/morningapp/internal/content"
	"github.com/myrjola/morningapp/internal/envstruct"
	"github.com/myrjola/morningapp/internal/errors"
	"github.com/myrjola/morningapp/internal/logging"
	"github.com/myrjola/morningapp/internal/pprofserver"
	"github.com/myrjola/morningapp/internal/rewards"
	"github.com/myrjola/morningapp/internal/sheets"
	"github.com/myrjola/morningapp/internal/speech"
	"github.com/myrjola/morningapp/internal/sqlite"
	"github.com/myrjola/morningapp/internal/vision"
	"github.com/myrjola/morningapp/internal/workout"
)

// imageUploader stores a workout photo and returns a shareable link.
type imageUploader interface {
	UploadImage(ctx context.Context, name, mimeType string, data []byte) (string, error)
}

type application struct {
	logger         *slog.Logger
	sessionManager *scs.SessionManager
	templateFS     fs.FS
	workoutService *workout.Service
	cycler         *content.Cycler
	vault          content.Vault
	// generator, analyzer and uploader are nil when their backing service
	// is not configured. Handlers degrade to manual flows.
	generator *content.Generator
	analyzer  *vision.Analyzer
	uploader  imageUploader
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"MORNINGAPP_ADDR" envDefault:"localhost:8080"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"MORNINGAPP_SQLITE_URL" envDefault:"./morningapp.sqlite3"`
	// SheetsCredentialsPath points to a Google service account JSON. When empty the
	// workout history lives in SQLite instead of a spreadsheet.
	SheetsCredentialsPath string `env:"MORNINGAPP_SHEETS_CREDENTIALS_PATH" envDefault:""`
	// SpreadsheetID is the spreadsheet holding the workout history.
	SpreadsheetID string `env:"MORNINGAPP_SPREADSHEET_ID" envDefault:""`
	// DriveFolderID receives uploaded workout photos. Optional.
	DriveFolderID string `env:"MORNINGAPP_DRIVE_FOLDER_ID" envDefault:""`
	// OpenAIAPIKey enables content generation and workout image analysis.
	OpenAIAPIKey string `env:"OPENAI_API_KEY" envDefault:""`
	// SpeechEnabled turns on spoken motivational content during exercises.
	SpeechEnabled bool `env:"MORNINGAPP_SPEECH_ENABLED" envDefault:"false"`
	// SpeechCommand is the text-to-speech binary used when speech is enabled.
	SpeechCommand string `env:"MORNINGAPP_SPEECH_COMMAND" envDefault:"espeak"`
	// PProfAddr is the optional address to listen on for the pprof server.
	PProfAddr string `env:"MORNINGAPP_PPROF_ADDR" envDefault:""`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"MORNINGAPP_TEMPLATE_PATH" envDefault:""`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	if cfg.PProfAddr != "" {
		pprofserver.Launch(ctx, cfg.PProfAddr, logger)
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = resolveAndVerifyTemplatePath(cfg.TemplatePath); err != nil {
		return errors.Wrap(err, "resolve template path")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db)
	localStore := sqlite.NewStore(db)

	// The spreadsheet is the live history store; SQLite covers development
	// and tests.
	var (
		store    workout.HistoryStore = localStore
		vault    content.Vault        = localStore
		uploader imageUploader
	)
	if cfg.SheetsCredentialsPath != "" && cfg.SpreadsheetID != "" {
		var credentials []byte
		if credentials, err = os.ReadFile(cfg.SheetsCredentialsPath); err != nil {
			return errors.Wrap(err, "read sheets credentials")
		}
		var sheetStore *sheets.Store
		if sheetStore, err = sheets.NewStore(ctx, credentials, cfg.SpreadsheetID, cfg.DriveFolderID, logger); err != nil {
			return errors.Wrap(err, "connect to spreadsheet")
		}
		store = sheetStore
		vault = sheetStore
		uploader = sheetStore
		logger.LogAttrs(ctx, slog.LevelInfo, "using spreadsheet history store",
			slog.String("spreadsheet_id", cfg.SpreadsheetID))
	}

	var speaker content.Speaker = speech.NullSpeaker{}
	if cfg.SpeechEnabled {
		speaker = speech.NewCommandSpeaker(cfg.SpeechCommand)
	}
	cycler := content.NewCycler(vault, speaker, logger)

	var (
		generator *content.Generator
		analyzer  *vision.Analyzer
	)
	if cfg.OpenAIAPIKey != "" {
		generator = content.NewGenerator(cfg.OpenAIAPIKey, logger)
		analyzer = vision.NewAnalyzer(cfg.OpenAIAPIKey, logger)
	}

	selector := rewards.NewSelector(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		templateFS:     os.DirFS(htmlTemplatePath),
		workoutService: workout.NewService(store, selector, cycler, logger),
		cycler:         cycler,
		vault:          vault,
		generator:      generator,
		analyzer:       analyzer,
		uploader:       uploader,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	sessionManager.Lifetime = 12 * time.Hour                                               //nolint:mnd // half a day
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = true
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteStrictMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
