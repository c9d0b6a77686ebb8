package server

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/czcorpus/cnc-gokit/logging"
	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"github.com/revelaction/wordbook/cnf"
)

const (
	serverReadTimeout  = 30 * time.Second
	serverWriteTimeout = 30 * time.Second
	shutdownTimeout    = 10 * time.Second
)

// NewHandler builds the gin engine with the API routes, wrapped by the CORS
// handler when origins are configured.
func NewHandler(conf *cnf.Conf, actions *Actions, version string) http.Handler {
	if !conf.IsDebugMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logging.GinMiddleware())
	engine.Use(uniresp.AlwaysJSONContentType())
	engine.NoMethod(uniresp.NoMethodHandler)
	engine.NoRoute(uniresp.NotFoundHandler)

	engine.GET("/", func(ctx *gin.Context) {
		uniresp.WriteJSONResponse(ctx.Writer, map[string]string{"name": "wordbook", "version": version})
	})
	engine.GET("/lemma/:word", actions.Lemma)
	engine.POST("/annotate", actions.Annotate)
	engine.GET("/words", actions.Words)

	if len(conf.CorsAllowedOrigins) == 0 {
		return engine
	}

	c := cors.New(cors.Options{
		AllowedOrigins: conf.CorsAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(engine)
}

// Run serves handler until SIGINT or SIGTERM, then shuts down gracefully.
func Run(conf *cnf.Conf, handler http.Handler) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Handler:      handler,
		Addr:         fmt.Sprintf("%s:%d", conf.ListenAddress, conf.ListenPort),
		WriteTimeout: serverWriteTimeout,
		ReadTimeout:  serverReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("starting to listen at %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Warn().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Shutdown timed out")
		return err
	}

	log.Info().Msg("Graceful shutdown completed")
	return nil
}
