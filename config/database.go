package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Modeva-Ecommerce/modeva-storefront/logger"
)

var (
	CmsDB   *pgxpool.Pool
	CmsGorm *gorm.DB
)

// InitDB opens the catalog database through both pgx and GORM.
func InitDB(cfg *Configuration) error {
	if err := initPgx(cfg); err != nil {
		return err
	}
	return initGORM(cfg)
}

func initPgx(cfg *Configuration) error {
	log := logger.Get()
	if cfg.CmsDBURL == "" {
		log.Warn("⚠️ CMS_DB_URL not set, using local default")
	}

	ctx, cancel := WithTimeout()
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.CmsDSN())
	if err != nil {
		return fmt.Errorf("unable to connect to CMS database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return fmt.Errorf("CMS database ping failed: %w", err)
	}

	CmsDB = pool
	log.Info("✅ CMS database connected (pgx)")
	return nil
}

func initGORM(cfg *Configuration) error {
	gormLogger := gormlogger.Default.LogMode(gormlogger.Info)
	if cfg.IsProduction() {
		gormLogger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	db, err := gorm.Open(postgres.Open(cfg.CmsDSN()), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return fmt.Errorf("failed to connect to CMS database with GORM: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}

	CmsGorm = db
	logger.Get().Info("✅ CMS database connected (GORM)")
	return nil
}

func CloseDB() {
	log := logger.Get()
	if CmsDB != nil {
		CmsDB.Close()
		log.Info("✅ CMS database connection closed (pgx)")
	}
	if CmsGorm != nil {
		if sqlDB, _ := CmsGorm.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Info("✅ CMS database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (Neon cold starts can be slow)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
