package web

import (
	"context"
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/tripal/tripal-blast/internal/config"
	"github.com/tripal/tripal-blast/pkg/core/notify"
	"github.com/tripal/tripal-blast/pkg/core/notify/events"
	"github.com/tripal/tripal-blast/pkg/middleware/auth"
	"github.com/tripal/tripal-blast/pkg/middleware/db"
	"github.com/tripal/tripal-blast/pkg/middleware/logger"
	"github.com/tripal/tripal-blast/pkg/middleware/redis"
	userStore "github.com/tripal/tripal-blast/pkg/repo/user"
	blastdbView "github.com/tripal/tripal-blast/pkg/web/views/blastdb"
	"github.com/tripal/tripal-blast/pkg/web/views/health"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func NewRouter(ctx context.Context, g *gin.Engine) {
	installMiddleware(g)

	var msgCenter notify.MsgCenter
	if rc := redis.GetClient(); rc != nil {
		msgCenter = events.NewEvents(rc)
	}
	installURL(ctx, g, db.DB(), msgCenter)
}

func installMiddleware(g *gin.Engine) {
	g.ContextWithFallback = true
	server := config.Global().Server
	g.Use(cors.Default())
	g.Use(otelgin.Middleware(fmt.Sprintf("%s-%s", server.Platform, server.Service)))
	g.Use(logger.LogWithWriter())
}

func installURL(_ context.Context, g *gin.Engine, ds *db.Datastore, msgCenter notify.MsgCenter) {
	api := g.Group("/api")
	api.GET("/health", health.Health)
	api.GET("/health/live", health.Live)
	api.GET("/health/ready", health.Ready)

	bHandle := blastdbView.NewBlastDBHandle(ds, msgCenter)
	requireLogin := auth.AuthWeb(userStore.New(ds))

	v1 := api.Group("/v1")
	{
		blastdbRouter := v1.Group("/blastdb")
		blastdbRouter.GET("", bHandle.List)
		blastdbRouter.GET("/:nid", bHandle.Get)
		blastdbRouter.POST("", requireLogin, bHandle.Create)
		blastdbRouter.DELETE("/:nid", requireLogin, bHandle.Delete)
	}
}
