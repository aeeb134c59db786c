package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"goblog/internal/config"
	"goblog/internal/logger"
	"goblog/internal/model"
	mysqlClient "goblog/internal/platform/mysql"
	rabbitmqClient "goblog/internal/platform/rabbitmq"
	redisClient "goblog/internal/platform/redis"
	"goblog/internal/repository"
	"goblog/internal/worker"
)

type App struct {
	Config      *config.Config
	Log         *logger.Logger
	DB          *gorm.DB
	Redis       *redis.Client
	MQConn      *amqp.Connection
	AuditWorker *worker.AuditPersistWorker

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	log := logger.New(cfg.Log.Level)

	db, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.Post{}, &model.AuditEntry{}); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	auditRepo := repository.NewAuditRepository(db)
	auditWorker := worker.NewAuditPersistWorker(mqConn, auditRepo, cfg.RabbitMQ.AuditQueue, log)
	if err := auditWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start audit worker failed: %w", err)
	}

	return &App{
		Config:      cfg,
		Log:         log,
		DB:          db,
		Redis:       redisCli,
		MQConn:      mqConn,
		AuditWorker: auditWorker,
		StartedAt:   time.Now(),
	}, nil
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.AuditWorker != nil {
		a.AuditWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
