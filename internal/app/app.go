// This package is used to initialize the application. It has dependencies on most
// other packages. Other packages can depend on it as a quick way to get access to
// all the dependencies.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petuhovskiy/chancekit/approx"
	"github.com/petuhovskiy/chancekit/internal/bgjobs"
	"github.com/petuhovskiy/chancekit/internal/conf"
	"github.com/petuhovskiy/chancekit/internal/log"
	"github.com/petuhovskiy/chancekit/internal/models"
	"github.com/petuhovskiy/chancekit/internal/repos"
)

type App struct {
	Config    *conf.App
	DB        *gorm.DB
	Repo      *Repos
	Saver     repos.RunSaver
	Seeds     repos.Counter
	Register  *bgjobs.Register
	RunLocker *bgjobs.RunLocker
	Comparer  approx.Comparer[float64]

	baseSeed uint64
}

func NewAppFromEnv() (*App, error) {
	cfg, err := conf.ParseEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to parse config from env: %w", err)
	}
	return NewApp(cfg)
}

// NewApp wires the dependencies. Without POSTGRES_DSN runs are only logged.
func NewApp(cfg *conf.App) (*App, error) {
	ctx := context.Background()

	comparer, err := approx.NewComparer[float64](cfg.Digits)
	if err != nil {
		return nil, fmt.Errorf("invalid DIGITS: %w", err)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("WORKERS = %d, must be positive", cfg.Workers)
	}

	baseSeed := cfg.Seed
	if baseSeed == 0 {
		baseSeed = uint64(time.Now().UnixNano())
	}
	log.Info(ctx, "using base seed", zap.Uint64("seed", baseSeed), zap.String("node", cfg.Node))

	a := &App{
		Config:    cfg,
		Register:  bgjobs.NewRegister(),
		RunLocker: bgjobs.NewRunLocker(),
		Comparer:  comparer,
		baseSeed:  baseSeed,
	}

	saverArgs := repos.RunSaverArgs{Node: cfg.Node}
	if cfg.PostgresDSN == "" {
		log.Warn(ctx, "POSTGRES_DSN is not set, runs will not be persisted")
		a.Saver = repos.NewNopRunSaver(saverArgs)
		a.Seeds = &repos.MemSequence{}
		return a, nil
	}

	db, err := connectDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	repo, err := createRepos(db, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create repos: %w", err)
	}

	a.DB = db
	a.Repo = repo
	a.Saver = repos.NewDBRunSaver(db, saverArgs)
	a.Seeds = repo.SeqNodeSeed
	return a, nil
}

// NextSeed returns a fresh run seed, derived from the base seed, the node
// and the seed sequence.
func (a *App) NextSeed() (uint64, error) {
	n, err := a.Seeds.Next()
	if err != nil {
		return 0, fmt.Errorf("failed to allocate seed: %w", err)
	}
	return xxhash.Sum64String(fmt.Sprintf("%s/%d/%d", a.Config.Node, a.baseSeed, n)), nil
}

func connectDB(cfg *conf.App) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

type Repos struct {
	Schedule    *repos.ScheduleRepo
	SeqNodeSeed *repos.Sequence
}

func createRepos(db *gorm.DB, cfg *conf.App) (*Repos, error) {
	err := db.AutoMigrate(
		&models.Run{},
		&models.Outcome{},
		&models.Schedule{},
		&models.Sequence{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	if cfg.DebugDB {
		db = db.Debug()
	}

	nodeSeq, err := repos.NewSequenceRepo(db).Get(fmt.Sprintf("node-%s-seed", cfg.Node))
	if err != nil {
		return nil, fmt.Errorf("failed to get node seed sequence: %w", err)
	}

	return &Repos{
		Schedule:    repos.NewScheduleRepo(db),
		SeqNodeSeed: nodeSeq,
	}, nil
}
