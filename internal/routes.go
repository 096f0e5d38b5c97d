package internal

import (
	"net/http"
	"skilld/internal/controllers"
	"skilld/internal/navigation"
	"skilld/internal/providers"
	"skilld/internal/structures"
)

func InitRoutes(apiController *controllers.ApiController, skillsController *controllers.SkillsController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/players/{player}", http.HandlerFunc(skillsController.Profile))
	routers.Get("/players/{player}/skills", http.HandlerFunc(skillsController.Skills))
	routers.Get("/api/players", http.HandlerFunc(apiController.GetPlayers))
	routers.Get("/api/players/{player}/skills", http.HandlerFunc(apiController.GetSkills))
	return routers
}

// NewLink builds page links under the configured base path.
func NewLink(conf *structures.Config) *navigation.Link {
	return navigation.NewLink(conf.WebServer.BasePath)
}
