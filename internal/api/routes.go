package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	ddays := api.Group("/ddays", handler.AuthRequired)
	ddays.Get("", handler.ListDDays)
	ddays.Post("", handler.CreateDDay)
	ddays.Put("/:id", handler.UpdateDDay)
	ddays.Delete("/:id", handler.DeleteDDay)

	checkins := api.Group("/checkins", handler.AuthRequired)
	checkins.Get("/today", handler.GetTodayCheckin)
	checkins.Get("/partner", handler.GetPartnerCheckin)
	checkins.Post("", handler.UpsertCheckin)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.GetCycles)
	cycles.Post("/days", handler.UpsertCycleDay)
	cycles.Delete("/days/:date", handler.DeleteCycleDay)
	cycles.Get("/settings", handler.GetCycleSettings)
	cycles.Put("/settings", handler.UpdateCycleSettings)

	pins := api.Group("/pins", handler.AuthRequired)
	pins.Get("", handler.ListPins)
	pins.Post("", handler.CreatePin)
	pins.Put("/:id", handler.UpdatePin)
	pins.Delete("/:id", handler.DeletePin)

	ideas := api.Group("/ideas", handler.AuthRequired)
	ideas.Get("", handler.ListIdeas)
	ideas.Post("", handler.CreateIdea)
	ideas.Post("/spin", handler.SpinIdeas)
	ideas.Delete("/:id", handler.DeleteIdea)

	partner := api.Group("/partner", handler.AuthRequired)
	partner.Get("", handler.GetPartner)
	partner.Post("/invite", handler.IssuePartnerInvite)
	partner.Post("/connect", handler.ConnectPartner)
	partner.Delete("", handler.DisconnectPartner)

	preferences := api.Group("/preferences", handler.AuthRequired)
	preferences.Get("", handler.GetPreferences)
	preferences.Put("", handler.UpdatePreferences)
}
