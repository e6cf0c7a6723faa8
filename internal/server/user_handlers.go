// Package server contains HTTP handlers for the application's API endpoints.
package server

import (
	"ripple/internal/models"
	"ripple/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	user, err := s.userService.GetUserByID(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)

	var req struct {
		FullName string `json:"full_name"`
		Bio      string `json:"bio"`
		Avatar   string `json:"avatar"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.userService.UpdateProfile(ctx, userID, service.UpdateProfileInput{
		FullName: req.FullName,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(user)
}

// SearchUsers handles GET /api/users/search?q=...
func (s *Server) SearchUsers(c *fiber.Ctx) error {
	ctx := c.Context()
	q := c.Query("q")

	users, err := s.userService.SearchUsers(ctx, q)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(users)
}

// GetProfile handles GET /api/users/:username
func (s *Server) GetProfile(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	username := c.Params("username")

	profile, err := s.userService.GetProfile(ctx, username, userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(profile)
}

// ToggleFollow handles POST /api/users/:id/follow
func (s *Server) ToggleFollow(c *fiber.Ctx) error {
	ctx := c.Context()
	userID := c.Locals("userID").(uint)
	targetID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	following, err := s.followService.ToggleFollow(ctx, userID, targetID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"following": following,
	})
}
