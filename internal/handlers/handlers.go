package handlers

import (
	"github.com/gofiber/fiber/v3"

	"leadsearch/internal/config"
)

// MergeBranding adds the site branding values to template data.
func MergeBranding(data fiber.Map, cfg *config.Config) fiber.Map {
	data["SiteTitle"] = cfg.SiteTitle
	data["SiteFooter"] = cfg.SiteFooter
	return data
}
