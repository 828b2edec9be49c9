package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"ticketdesk/internal/infrastructure/config"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface

	redis       *redis.Client
	rateLimiter *middleware.RateLimiter

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initRepositories()
	c.initUseCases()
	if err := c.initHandlers(); err != nil {
		_ = c.Close()
		return nil, err
	}

	return c, nil
}
