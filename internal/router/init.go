package router

import (
	"github.com/devlinkhq/devlink-backend/internal/application"
	"github.com/devlinkhq/devlink-backend/internal/container"
	"github.com/devlinkhq/devlink-backend/internal/infrastructure/mongodb"
	handlers "github.com/devlinkhq/devlink-backend/internal/interface/http"
	"github.com/devlinkhq/devlink-backend/internal/router/modules"
)

// InitModules builds every feature module from the container singletons
// and registers it. Called once during startup.
func InitModules(r *Registry) {
	db := container.GetMongo()
	logger := container.GetLogger()

	users := mongodb.NewUserRepository(db)
	posts := mongodb.NewPostRepository(db)
	profiles := mongodb.NewProfileRepository(db)

	authSvc := application.NewAuthService(users, container.GetJWT(), logger)
	postSvc := application.NewPostService(posts, users, logger)
	profileSvc := application.NewProfileService(profiles, posts, users, container.GetGithub(), logger)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(postSvc, logger)))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(profileSvc, logger)))
}
