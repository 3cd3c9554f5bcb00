package handler

import (
	"github.com/gofiber/fiber/v2"

	"gedapi/internal/search"
	"gedapi/internal/service"
)

// SearchDocuments applies the conjunctive faceted filter over the catalogue.
func SearchDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f := search.Facets{
			Query:    c.Query("q"),
			Category: c.Query("category"),
			Author:   c.Query("author"),
			Type:     c.Query("type"),
			Year:     c.Query("year"),
		}

		docs, err := svc.Search(c.UserContext(), f)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": docs, "total": len(docs)})
	}
}

// SearchFacets returns the selectable values of each facet dimension.
func SearchFacets(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.SearchFacets(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

type smartSearchRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Author   string `json:"author"`
	Type     string `json:"type"`
	Year     string `json:"year"`
}

// SmartSearch filters the catalogue, then asks the assistant to answer the
// query over the matches.
func SmartSearch(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req smartSearchRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}

		res, err := svc.SmartSearch(c.UserContext(), search.Facets{
			Query:    req.Query,
			Category: req.Category,
			Author:   req.Author,
			Type:     req.Type,
			Year:     req.Year,
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
