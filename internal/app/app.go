package app

import (
	"context"
	"fmt"

	"github.com/jbeshir/recipe-recommender/internal/command"
	"github.com/jbeshir/recipe-recommender/internal/datasources"
	"github.com/jbeshir/recipe-recommender/internal/datasources/catalogfile"
	"github.com/jbeshir/recipe-recommender/internal/datasources/filelog"
	"github.com/jbeshir/recipe-recommender/internal/datasources/sqlstore"
	"github.com/jbeshir/recipe-recommender/internal/transport/web/router"
	"github.com/jbeshir/recipe-recommender/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// ActivityStore is the combined storage surface the engine needs: the
// behavioural activity log plus the explicit feedback log.
type ActivityStore interface {
	datasources.ActivityRepository
	datasources.FeedbackRepository
}

func Setup(ctx context.Context) ([]Component, error) {
	store, err := setupActivityStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up activity store: %w", err)
	}

	catalog, err := setupCatalogRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up catalog repository: %w", err)
	}

	recordActivityCmd := command.NewRecordActivity(store, store)
	submitFeedbackCmd := command.NewSubmitFeedback(store)
	recommendRecipesCmd := command.NewRecommendRecipes(
		store,
		store,
		catalog,
		command.DefaultRecommenderConfig(),
	)
	similarRecipesCmd := command.NewSimilarRecipes(catalog, command.DefaultRecommenderConfig().Features)
	trendingRecipesCmd := command.NewTrendingRecipes(store, command.DefaultRecommenderConfig().Trending)
	analyzePreferencesCmd := command.NewAnalyzePreferences(
		store,
		catalog,
		command.DefaultAnalyzePreferencesConfig(),
	)

	httpRouter, err := router.MakeRouter(
		catalog,
		recordActivityCmd,
		submitFeedbackCmd,
		recommendRecipesCmd,
		similarRecipesCmd,
		trendingRecipesCmd,
		analyzePreferencesCmd,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupActivityStore(ctx context.Context) (ActivityStore, error) {
	switch driver := MustGetEnvAsString(ctx, "ACTIVITY_STORE_DRIVER"); driver {
	case "file":
		store, err := filelog.Open(MustGetEnvAsString(ctx, "ACTIVITY_LOG_PATH"))
		if err != nil {
			return nil, fmt.Errorf("opening activity log: %w", err)
		}
		return store, nil
	case "mysql":
		return setupSQLStore(ctx, sqlstore.DriverMySQL, MustGetEnvAsString(ctx, "MYSQL_URI"))
	case "sqlite":
		return setupSQLStore(ctx, sqlstore.DriverSQLite, MustGetEnvAsString(ctx, "SQLITE_PATH"))
	default:
		return nil, fmt.Errorf("unknown activity store driver [%s]", driver)
	}
}

func setupSQLStore(ctx context.Context, driver sqlstore.Driver, dsn string) (*sqlstore.Repository, error) {
	db, err := sqlstore.Connect(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s: %w", driver, err)
	}

	repo := sqlstore.New(db, driver)
	if err := repo.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrating event tables: %w", err)
	}
	return repo, nil
}

func setupCatalogRepository(ctx context.Context) (datasources.CatalogRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "CATALOG_DRIVER"); driver {
	case "file":
		catalog, err := catalogfile.Load(MustGetEnvAsString(ctx, "CATALOG_PATH"))
		if err != nil {
			return nil, fmt.Errorf("loading recipe catalog: %w", err)
		}
		return catalog, nil
	case "mysql":
		db, err := sqlstore.Connect(ctx, sqlstore.DriverMySQL, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to mysql: %w", err)
		}
		return sqlstore.New(db, sqlstore.DriverMySQL), nil
	case "sqlite":
		db, err := sqlstore.Connect(ctx, sqlstore.DriverSQLite, MustGetEnvAsString(ctx, "SQLITE_PATH"))
		if err != nil {
			return nil, fmt.Errorf("connecting to sqlite: %w", err)
		}
		return sqlstore.New(db, sqlstore.DriverSQLite), nil
	default:
		return nil, fmt.Errorf("unknown catalog driver [%s]", driver)
	}
}
