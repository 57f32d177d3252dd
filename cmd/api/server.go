package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tripal/tripal-blast/internal/config"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"github.com/tripal/tripal-blast/pkg/middleware/redis"
	"github.com/tripal/tripal-blast/pkg/middleware/trace"
	"github.com/tripal/tripal-blast/pkg/repo/migrate"
	"github.com/tripal/tripal-blast/pkg/utils"
	"github.com/tripal/tripal-blast/pkg/web"
)

func NewWeb() *cobra.Command {
	return &cobra.Command{
		Use:          "apiserver",
		Long:         "Start the HTTP API server",
		SilenceUsage: true,
		PreRunE:      initWeb,
		RunE:         newRouter,
		PostRunE:     cleanWebResource,
	}
}

func NewMigrate() *cobra.Command {
	return &cobra.Command{
		Use:          "migrate",
		Long:         "Run database migrations and install the admin account",
		SilenceUsage: true,
		PreRunE:      InitDatabase,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return migrate.Table(cmd.Context(), db.DB())
		},
		PostRunE: func(cmd *cobra.Command, _ []string) error {
			db.CloseDB(cmd.Context())
			return nil
		},
	}
}

func dbConfig(trace bool) *db.Config {
	conf := config.Global()
	return &db.Config{
		Driver: string(conf.Database.Driver),
		Host:   conf.Database.Host, Port: conf.Database.Port,
		User: conf.Database.User, PW: conf.Database.Password,
		DBName: conf.Database.Name, LogConf: db.LogConf{Level: conf.Log.LogLevel},
		Trace: trace,
	}
}

// InitDatabase opens the configured database as the global datastore.
func InitDatabase(cmd *cobra.Command, _ []string) error {
	db.InitDB(cmd.Context(), dbConfig(false))
	return nil
}

func initWeb(cmd *cobra.Command, _ []string) error {
	conf := config.Global()
	trace.InitTrace(cmd.Context(), &trace.InitConfig{
		ServiceName:    fmt.Sprintf("%s-%s", conf.Server.Platform, conf.Server.Service),
		Version:        conf.Trace.Version,
		TraceEndpoint:  conf.Trace.TraceEndpoint,
		MetricEndpoint: conf.Trace.MetricEndpoint,
	})
	db.InitDB(cmd.Context(), dbConfig(conf.Trace.TraceEndpoint != ""))
	if conf.Redis.Enabled {
		redis.InitRedis(cmd.Context(), &redis.Redis{
			Host: conf.Redis.Host, Port: conf.Redis.Port,
			Password: conf.Redis.Password, DB: conf.Redis.DB,
		})
	}
	return nil
}

func newRouter(cmd *cobra.Command, _ []string) error {
	router := gin.New()
	router.Use(gin.Recovery())
	web.NewRouter(cmd.Context(), router)
	port := config.Global().Server.Port

	httpServer := http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           router,
		ReadHeaderTimeout: 30 * time.Second,
		IdleTimeout:       30 * time.Second,
		TLSNextProto:      make(map[string]func(*http.Server, *tls.Conn, http.Handler)),
	}

	logger.Infof(cmd.Context(), "API server starting on http://0.0.0.0:%d", port)

	utils.SafelyGo(func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Errorf(cmd.Context(), "start server err: %v", err)
		}
	}, func(err error) {
		logger.Errorf(cmd.Context(), "run http server err: %+v", err)
		os.Exit(1)
	})

	<-cmd.Context().Done()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Errorf(ctx, "shut down server err: %+v", err)
	}
	return nil
}

func cleanWebResource(cmd *cobra.Command, _ []string) error {
	redis.CloseRedis(cmd.Context())
	db.CloseDB(cmd.Context())
	trace.CloseTrace()
	return nil
}
