package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"gedapi/internal/service"
)

// ListDocuments lists the catalogue, optionally scoped to one category and
// narrowed by subcategory tab and free-text query.
func ListDocuments(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		subcategory := c.Query("subcategory")
		query := c.Query("q")

		docs, err := svc.List(c.UserContext(), category, subcategory, query)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"items": docs, "total": len(docs)})
	}
}

// ListSubcategories returns the tab values for one category.
func ListSubcategories(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")
		if category == "" {
			return writeError(c, fiber.StatusBadRequest, "CATEGORY_REQUIRED", "category is required")
		}
		subs, err := svc.Subcategories(c.UserContext(), category)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"subcategories": subs})
	}
}

// UploadDocument catalogues a new document from a multipart form.
// Form fields: file (required), title, category, subcategory, description,
// keywords (comma-separated).
func UploadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		req := service.UploadRequest{
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
			Title:       c.FormValue("title"),
			Category:    c.FormValue("category"),
			Subcategory: c.FormValue("subcategory"),
			Description: c.FormValue("description"),
			Keywords:    splitKeywords(c.FormValue("keywords")),
		}

		doc, err := svc.Upload(c.UserContext(), f, req)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// GetDocument returns one document; ?view=true also records a VIEW entry.
func GetDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		recordView := c.Query("view") == "true"

		doc, err := svc.Get(c.UserContext(), id, recordView)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(doc)
	}
}

// DownloadDocument resolves a download URL and records a DOWNLOAD entry.
func DownloadDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		url, err := svc.Download(c.UserContext(), c.Params("id"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(fiber.Map{"url": url})
	}
}

// DeleteDocument removes a document. ADMIN only.
func DeleteDocument(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			return writeServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

type suggestRequest struct {
	Filename    string `json:"filename"`
	Subcategory string `json:"subcategory"`
}

// SuggestMetadata proposes a description and keywords for an upload form.
func SuggestMetadata(svc service.DocumentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req suggestRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		return c.JSON(svc.Suggest(c.UserContext(), req.Filename, req.Subcategory))
	}
}

func splitKeywords(s string) []string {
	var out []string
	for _, kw := range strings.Split(s, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}
