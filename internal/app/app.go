package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"

	"movie-booking/internal/domain"
	"movie-booking/internal/mailer"
	"movie-booking/internal/repository"
	appvalidator "movie-booking/internal/validator"
	"movie-booking/internal/vcs"
)

var (
	version = vcs.Version()
)

type application struct {
	config    config
	logger    *slog.Logger
	db        *pgxpool.Pool
	redis     redis.UniversalClient
	validator *validator.Validate
	mailer    mailer.Mailer

	userRepo    domain.IdentityRepository
	adminRepo   domain.IdentityRepository
	ownerRepo   domain.IdentityRepository
	movieRepo   domain.MovieRepository
	theaterRepo domain.TheaterRepository
	showRepo    domain.ShowRepository
	foodRepo    domain.FoodRepository
	bookingRepo domain.BookingRepository
}

type config struct {
	port int
	env  string
	db   struct {
		dsn            string
		maxOpenConns   int
		maxIdleTime    time.Duration
		automigrate    bool
		migrationsPath string
	}
	redis struct {
		url          string
		maxOpenConns int
		maxIdleConns int
		maxIdleTime  time.Duration
	}
	smtp struct {
		host     string
		port     int
		username string
		password string
		sender   string
	}
	jwt struct {
		secret string
		ttl    time.Duration
	}
	otelCollectorUrl string
}

func Run() error {
	var cfg config

	flag.IntVar(&cfg.port, "port", 3000, "server port")
	flag.StringVar(&cfg.env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.db.dsn, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.db.maxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.db.maxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.db.automigrate, "db-automigrate", false, "Run database migrations on startup")
	flag.StringVar(&cfg.db.migrationsPath, "db-migrations-path", "./migrations", "Path to database migration files")

	flag.StringVar(&cfg.redis.url, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.redis.maxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.redis.maxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.redis.maxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.smtp.host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.smtp.port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.smtp.username, "smtp-username", "", "SMTP username")
	flag.StringVar(&cfg.smtp.password, "smtp-password", "", "SMTP password")
	flag.StringVar(&cfg.smtp.sender, "smtp-sender", "CineBook <no-reply@cinebook.example.com>", "SMTP sender")

	flag.StringVar(&cfg.jwt.secret, "jwt-secret", "", "JWT signing secret")
	flag.DurationVar(&cfg.jwt.ttl, "jwt-ttl", 24*time.Hour, "JWT token lifetime")

	flag.StringVar(&cfg.otelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.jwt.secret == "" {
		return errors.New("jwt-secret must be provided")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	validator := appvalidator.NewValidator()

	if cfg.db.automigrate {
		err := runMigrations(cfg, logger)
		if err != nil {
			return err
		}
	}

	db, err := newDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := newRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	app := &application{
		config:      cfg,
		logger:      logger,
		db:          db,
		redis:       redisClient,
		validator:   validator,
		mailer:      mailer.NewSMTPMailer(cfg.smtp.host, cfg.smtp.port, cfg.smtp.username, cfg.smtp.password, cfg.smtp.sender),
		userRepo:    repository.NewPostgresIdentityRepository(db, domain.RoleUser),
		adminRepo:   repository.NewPostgresIdentityRepository(db, domain.RoleAdmin),
		ownerRepo:   repository.NewPostgresIdentityRepository(db, domain.RoleOwner),
		movieRepo:   repository.NewPostgresMovieRepository(db),
		theaterRepo: repository.NewPostgresTheaterRepository(db),
		showRepo:    repository.NewPostgresShowRepository(db),
		foodRepo:    repository.NewPostgresFoodRepository(db),
		bookingRepo: repository.NewPostgresBookingRepository(db),
	}

	shutdownTelemetry, err := app.initTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	return app.run()
}

func runMigrations(cfg config, logger *slog.Logger) error {
	m, err := migrate.New("file://"+cfg.db.migrationsPath, cfg.db.dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	logger.Info("database migrations applied")

	return nil
}

func newDatabasePool(cfg config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.db.dsn)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.db.maxIdleTime
	config.MaxConns = int32(cfg.db.maxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func newRedisClient(cfg config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.redis.url,
		MaxIdleConns:    cfg.redis.maxIdleConns,
		MaxActiveConns:  cfg.redis.maxOpenConns,
		ConnMaxIdleTime: cfg.redis.maxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func (app *application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.port),
		Handler:      app.routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
		}

		shutdownError <- nil
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *application) routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(otelchi.Middleware("movie-booking", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.authenticate)

	r.Get("/health", app.Healthcheck)

	r.Get("/movies", app.GetMovies)
	r.Get("/movies/{id}", app.GetMovie)
	r.Get("/theaters", app.GetTheaters)
	r.Get("/theaters/{id}", app.GetTheater)
	r.Get("/theaters/{id}/shows", app.GetShowsByTheater)
	r.Get("/shows", app.GetShows)
	r.Get("/shows/{id}", app.GetShow)
	r.Get("/shows/movie/{movieId}", app.GetShowsByMovie)
	r.Get("/food", app.GetFoodItems)

	r.Post("/users/register", app.RegisterUser)
	r.Post("/users/login", app.LoginUser)
	r.Post("/users/admin/register", app.RegisterAdmin)
	r.Post("/users/admin/login", app.LoginAdmin)
	r.Post("/users/owner/register", app.RegisterOwner)
	r.Post("/users/owner/login", app.LoginOwner)

	r.Group(func(r chi.Router) {
		r.Use(app.requireAuthentication)

		r.Get("/users/me", app.GetCurrentIdentity)
		r.Post("/bookings", app.CreateBooking)
		r.Get("/bookings", app.GetUserBookings)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.requireRole(domain.RoleAdmin))

		r.Post("/movies", app.CreateMovie)
		r.Put("/movies/{id}", app.UpdateMovie)
		r.Delete("/movies/{id}", app.DeleteMovie)

		r.Post("/food", app.CreateFoodItem)
		r.Put("/food/{id}", app.UpdateFoodItem)
		r.Delete("/food/{id}", app.DeleteFoodItem)

		r.Post("/shows", app.CreateShow)
		r.Delete("/shows/{id}", app.DeleteShow)

		r.Patch("/theaters/{id}/status", app.UpdateTheaterStatus)

		r.Get("/bookings/logs", app.GetBookingLogs)
		r.Get("/bookings/logs/user/{userId}", app.GetUserBookingLogs)
	})

	r.Group(func(r chi.Router) {
		r.Use(app.requireRole(domain.RoleOwner))

		r.Post("/theaters", app.CreateTheater)
		r.Get("/theaters/owned", app.GetOwnedTheaters)
	})

	return r
}
