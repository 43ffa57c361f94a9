package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/BloggingApp/comment-service/internal/config"
	"github.com/BloggingApp/comment-service/internal/dto"
	"github.com/BloggingApp/comment-service/internal/fixture"
	"github.com/BloggingApp/comment-service/internal/repository"
	"github.com/BloggingApp/comment-service/internal/repository/redisrepo"
	"github.com/BloggingApp/comment-service/internal/repository/storage"
	"github.com/BloggingApp/comment-service/internal/service"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type options struct {
	configPath   string
	fixturesPath string
	postID       int64
	bootstrap    bool
	debug        bool
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load fixture comments and their mentions into the store",
		Long: `seed replaces the comments of every post found in the fixture file with the
fixture comments, and records the @mentions each author is allowed to make.
Running it again with the same fixtures leaves the same rows behind.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "path to app.yaml (default ./app.yaml)")
	cmd.Flags().StringVar(&opts.fixturesPath, "fixtures", "", "fixture YAML file (default seed.fixtures, else the built-in set)")
	cmd.Flags().Int64Var(&opts.postID, "post", 0, "seed only this post id")
	cmd.Flags().BoolVar(&opts.bootstrap, "bootstrap", false, "insert the fixture users, posts and friendships first")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "verbose logging")

	return cmd
}

func run(ctx context.Context, opts options) error {
	logger, err := newLogger(opts.debug)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Sugar().Errorf("failed to load environment variables: %s", err.Error())
		return err
	}

	if err := config.Load(opts.configPath); err != nil {
		logger.Sugar().Errorf("failed to initialize yaml config: %s", err.Error())
		return err
	}

	set, err := loadFixtures(opts.fixturesPath)
	if err != nil {
		logger.Sugar().Errorf("failed to load fixtures: %s", err.Error())
		return err
	}

	storageConfig := config.Storage()
	store, err := storage.Open(ctx, storageConfig)
	if err != nil {
		logger.Sugar().Errorf("failed to open %s store: %s", storageConfig.Driver, err.Error())
		return err
	}
	defer store.Close()

	rdb, err := redisrepo.Connect(ctx, config.Redis())
	if err != nil {
		logger.Sugar().Errorf("failed to ping redis: %s", err.Error())
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	services := service.New(logger, repository.New(store, rdb))

	if opts.bootstrap {
		report, err := services.Bootstrap(ctx, set)
		if err != nil {
			return err
		}
		logger.Info("bootstrap finished",
			zap.Int("users", report.Users),
			zap.Int("posts", report.Posts),
			zap.Int("friendships", report.Friendships),
			zap.Int("skipped", report.SkippedEntries),
		)
	}

	var reports []*dto.SeedReport
	if opts.postID != 0 {
		report, err := services.SeedPost(ctx, opts.postID, set.Comments)
		if err != nil {
			return err
		}
		reports = append(reports, report)
	} else {
		reports, err = services.SeedAll(ctx, set.Comments)
		if err != nil {
			return err
		}
	}

	var total dto.SeedReport
	for _, r := range reports {
		total.Add(*r)
	}
	logger.Info("seed finished",
		zap.Int("posts", len(reports)),
		zap.Int64("comments_removed", total.CommentsRemoved),
		zap.Int("comments_inserted", total.CommentsInserted),
		zap.Int("comments_skipped", total.SkippedFixtures),
		zap.Int64("mentions_removed", total.MentionsRemoved),
		zap.Int("mentions_inserted", total.MentionsInserted),
		zap.Int("mentions_skipped", total.SkippedMentions),
		zap.Int("mentions_filtered", total.FilteredMentions),
	)

	return nil
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func loadFixtures(path string) (*dto.FixtureSet, error) {
	if path == "" {
		path = viper.GetString("seed.fixtures")
	}
	if path == "" {
		return fixture.Default()
	}

	return fixture.Load(path)
}
