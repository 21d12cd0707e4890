package wire

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"Implicate/internal/api"
	"Implicate/internal/api/config"
	"Implicate/internal/api/handler"
	"Implicate/internal/pkg/storage"
	"Implicate/internal/repository"
	"Implicate/internal/service"
)

// ApplicationContainer bundles the top-level components the entrypoint runs.
type ApplicationContainer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

func BuildApplication(db *gorm.DB, blob storage.BlobStore, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	postRepo := repository.NewPostRepo(db)
	replyRepo := repository.NewReplyRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, userRepo, blob, cfg.Upload)
	replyService := service.NewReplyService(replyRepo, postRepo, userRepo)

	handlers := &api.HandlersGroup{
		AuthHandler:  handler.NewAuthHandler(authService),
		UserHandler:  handler.NewUserHandler(userService),
		PostHandler:  handler.NewPostHandler(postService),
		ReplyHandler: handler.NewReplyHandler(replyService),
		AdminHandler: handler.NewAdminHandler(postService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
		DB:     db,
	}, nil
}
