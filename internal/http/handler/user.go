package handler

import (
	"github.com/gofiber/fiber/v2"

	"gedapi/internal/model"
	"gedapi/internal/service"
)

// ListUsers returns the roster in store order.
func ListUsers(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		users, err := svc.List(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": users, "total": len(users)})
	}
}

type addUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AddUser creates a roster entry. Role defaults to MEMBER when unset or
// unknown.
func AddUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req addUserRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		user, err := svc.Add(c.UserContext(), req.Name, req.Email, model.UserRole(req.Role))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

// RemoveUser deletes a user by ID. The current user is never deletable.
func RemoveUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Remove(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// CurrentUser returns the acting user.
func CurrentUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := svc.Current(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}

type setCurrentUserRequest struct {
	ID string `json:"id"`
}

// SetCurrentUser switches the acting user.
func SetCurrentUser(svc service.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req setCurrentUserRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		if err := svc.SetCurrent(c.UserContext(), req.ID); err != nil {
			return writeServiceError(c, err)
		}
		user, err := svc.Current(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(user)
	}
}
