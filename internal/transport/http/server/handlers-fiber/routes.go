package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterRoutes binds all resource groups to the app.
func RegisterRoutes(app *fiber.App, h *Handler) {
	players := app.Group("/players")
	players.Post("/", h.CreatePlayer)
	players.Get("/", h.ListPlayers)
	players.Get("/:id", h.GetPlayer)
	players.Put("/:id", h.UpdatePlayer)
	players.Delete("/:id", h.DeletePlayer)

	coaches := app.Group("/coaches")
	coaches.Post("/", h.CreateCoach)
	coaches.Get("/", h.ListCoaches)
	coaches.Get("/:id", h.GetCoach)
	coaches.Put("/:id", h.UpdateCoach)
	coaches.Delete("/:id", h.DeleteCoach)

	playsFor := app.Group("/plays-for")
	playsFor.Post("/", h.CreatePlaysFor)
	playsFor.Get("/", h.ListPlaysFor)
	playsFor.Get("/:playerID/:teamID/:seasonID", h.GetPlaysFor)
	playsFor.Put("/:playerID/:teamID/:seasonID", h.UpdatePlaysFor)
	playsFor.Delete("/:playerID/:teamID/:seasonID", h.DeletePlaysFor)

	trains := app.Group("/trains")
	trains.Post("/", h.CreateTrains)
	trains.Get("/", h.ListTrains)
	trains.Get("/:coachID/:teamID/:seasonID", h.GetTrains)
	trains.Put("/:coachID/:teamID/:seasonID", h.UpdateTrains)
	trains.Delete("/:coachID/:teamID/:seasonID", h.DeleteTrains)
}
