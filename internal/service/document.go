package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"gedapi/internal/assistant"
	"gedapi/internal/model"
	"gedapi/internal/repository"
	"gedapi/internal/search"
	"gedapi/internal/storage"
)

var (
	ErrIDRequired    = errors.New("id is required")
	ErrNotFound      = errors.New("document not found")
	ErrReaderNil     = errors.New("reader is nil")
	ErrTitleRequired = errors.New("title is required")
	ErrQueryRequired = errors.New("query is required")
	ErrForbidden     = errors.New("operation requires the ADMIN role")
)

const presignExpiry = 15 * time.Minute

// UploadRequest carries the metadata of a document being uploaded. The file
// body travels separately as a reader.
type UploadRequest struct {
	Filename    string
	ContentType string
	Size        int64
	Title       string
	Category    string
	Subcategory string
	Description string
	Keywords    []string
}

// SearchFacetsResult lists the selectable values of each facet dimension.
type SearchFacetsResult struct {
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
	Years      []string `json:"years"`
}

// SmartSearchResult pairs the assistant's answer with the documents it was
// constrained to.
type SmartSearchResult struct {
	Answer    string           `json:"answer"`
	Documents []model.Document `json:"documents"`
}

// DocumentService defines the use cases for browsing, searching, and
// managing documents. Every action that touches a document records a history
// entry attributed to the current user.
type DocumentService interface {
	// List returns the documents of one category, optionally narrowed by
	// subcategory ("All" or empty means no restriction) and free-text query.
	// An empty category lists the whole catalogue, narrowed by query only.
	List(ctx context.Context, category, subcategory, query string) ([]model.Document, error)

	// Subcategories returns the tab values for one category: "All" plus the
	// distinct subcategories present, in first-seen order.
	Subcategories(ctx context.Context, category string) ([]string, error)

	// Search applies the conjunctive faceted filter over the catalogue.
	Search(ctx context.Context, f search.Facets) ([]model.Document, error)

	// SearchFacets derives the selectable facet values from the catalogue
	// and the taxonomy.
	SearchFacets(ctx context.Context) (*SearchFacetsResult, error)

	// Upload catalogues a new document and records an UPLOAD entry. ADMIN
	// only. When object storage is configured the file body is streamed
	// there and the document's URL records the object key.
	Upload(ctx context.Context, r io.Reader, req UploadRequest) (*model.Document, error)

	// Get returns a single document; with recordView it also records a VIEW
	// entry.
	Get(ctx context.Context, id string, recordView bool) (*model.Document, error)

	// Download resolves a download URL (presigned when storage is
	// configured) and records a DOWNLOAD entry.
	Download(ctx context.Context, id string) (string, error)

	// Delete removes a document and its stored content. ADMIN only. The
	// history log is left untouched.
	Delete(ctx context.Context, id string) error

	// Suggest proposes a description and keywords for an upload form.
	// Best-effort: always returns a usable suggestion.
	Suggest(ctx context.Context, filename, subcategory string) assistant.Suggestion

	// SmartSearch filters the catalogue by the facets, then asks the
	// assistant to answer the query over the matches.
	SmartSearch(ctx context.Context, f search.Facets) (*SmartSearchResult, error)
}

type documentService struct {
	docs      repository.DocumentRepository
	users     repository.UserRepository
	history   repository.HistoryRepository
	cats      repository.CategoryRepository
	store     storage.Storage // nil when content storage is not configured
	assistant assistant.Assistant
	now       func() time.Time
}

// NewDocumentService constructs a DocumentService. store may be nil to run
// metadata-only.
func NewDocumentService(
	docs repository.DocumentRepository,
	users repository.UserRepository,
	history repository.HistoryRepository,
	cats repository.CategoryRepository,
	store storage.Storage,
	asst assistant.Assistant,
) DocumentService {
	return &documentService{
		docs:      docs,
		users:     users,
		history:   history,
		cats:      cats,
		store:     store,
		assistant: asst,
		now:       time.Now,
	}
}

func (s *documentService) List(ctx context.Context, category, subcategory, query string) ([]model.Document, error) {
	all, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return search.ByFacets(all, search.Facets{Query: query}), nil
	}
	return search.ByCategory(all, category, subcategory, query), nil
}

func (s *documentService) Subcategories(ctx context.Context, category string) ([]string, error) {
	all, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.Subcategories(all, category), nil
}

func (s *documentService) Search(ctx context.Context, f search.Facets) ([]model.Document, error) {
	all, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	return search.ByFacets(all, f), nil
}

func (s *documentService) SearchFacets(ctx context.Context) (*SearchFacetsResult, error) {
	all, err := s.docs.List(ctx)
	if err != nil {
		return nil, err
	}
	nodes, err := s.cats.List(ctx)
	if err != nil {
		return nil, err
	}
	categories := make([]string, 0, len(nodes))
	for _, n := range nodes {
		categories = append(categories, n.Name)
	}
	return &SearchFacetsResult{
		Categories: categories,
		Authors:    search.Authors(all),
		Years:      search.Years(all),
	}, nil
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, req UploadRequest) (*model.Document, error) {
	actor, err := s.requireAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrReaderNil
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	doc := &model.Document{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Type:        inferFileType(req.ContentType),
		Category:    req.Category,
		Subcategory: req.Subcategory,
		Author:      actor.Name,
		UploadDate:  s.now().UTC().Format("2006-01-02"),
		Size:        formatSize(req.Size),
		Keywords:    req.Keywords,
		Description: req.Description,
		Version:     1.0,
	}
	// Book entries get a generated cover.
	if req.Category == "Livres" {
		doc.Cover = "https://picsum.photos/seed/" + strings.ReplaceAll(req.Title, " ", "") + "/300/400"
	}

	if s.store != nil {
		ext := filepath.Ext(req.Filename)
		key := filepath.ToSlash(filepath.Join("documents", doc.ID+ext))
		objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
			Size:        req.Size,
			ContentType: req.ContentType,
			Metadata: map[string]string{
				"original-filename": req.Filename,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("upload to storage: %w", err)
		}
		doc.URL = objInfo.Key
	}

	stored, err := s.docs.Create(ctx, doc)
	if err != nil {
		if s.store != nil && doc.URL != "" {
			// Rollback: delete the object from storage
			if delErr := s.store.Delete(ctx, doc.URL); delErr != nil {
				return nil, fmt.Errorf("store save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("store save failed: %w", err)
	}

	if err := s.record(ctx, actor, stored, model.ActionUpload); err != nil {
		return nil, err
	}
	return stored, nil
}

func (s *documentService) Get(ctx context.Context, id string, recordView bool) (*model.Document, error) {
	doc, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if recordView {
		actor, err := s.users.Current(ctx)
		if err != nil {
			return nil, err
		}
		if err := s.record(ctx, actor, doc, model.ActionView); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func (s *documentService) Download(ctx context.Context, id string) (string, error) {
	doc, err := s.find(ctx, id)
	if err != nil {
		return "", err
	}

	url := doc.URL
	if s.store != nil && doc.URL != "" {
		url, err = s.store.PresignGet(ctx, doc.URL, presignExpiry)
		if err != nil {
			return "", fmt.Errorf("presign download: %w", err)
		}
	}

	actor, err := s.users.Current(ctx)
	if err != nil {
		return "", err
	}
	if err := s.record(ctx, actor, doc, model.ActionDownload); err != nil {
		return "", err
	}
	return url, nil
}

func (s *documentService) Delete(ctx context.Context, id string) error {
	if _, err := s.requireAdmin(ctx); err != nil {
		return err
	}
	doc, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	// Delete content first; if this fails, keep the record to avoid losing
	// the storage reference.
	if s.store != nil && doc.URL != "" {
		if err := s.store.Delete(ctx, doc.URL); err != nil {
			return fmt.Errorf("delete storage: %w", err)
		}
	}
	return s.docs.Delete(ctx, id)
}

func (s *documentService) Suggest(ctx context.Context, filename, subcategory string) assistant.Suggestion {
	return s.assistant.Suggest(ctx, filename, subcategory)
}

func (s *documentService) SmartSearch(ctx context.Context, f search.Facets) (*SmartSearchResult, error) {
	if strings.TrimSpace(f.Query) == "" {
		return nil, ErrQueryRequired
	}
	matches, err := s.Search(ctx, f)
	if err != nil {
		return nil, err
	}
	answer := s.assistant.Answer(ctx, f.Query, matches)
	return &SmartSearchResult{Answer: answer, Documents: matches}, nil
}

func (s *documentService) find(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.docs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) requireAdmin(ctx context.Context) (*model.User, error) {
	actor, err := s.users.Current(ctx)
	if err != nil {
		return nil, err
	}
	if actor.Role != model.RoleAdmin {
		return nil, ErrForbidden
	}
	return actor, nil
}

// record appends a history entry snapshotting the actor and document names.
func (s *documentService) record(ctx context.Context, actor *model.User, doc *model.Document, action model.HistoryAction) error {
	_, err := s.history.Append(ctx, model.HistoryEntry{
		UserID:        actor.ID,
		UserName:      actor.Name,
		DocumentID:    doc.ID,
		DocumentTitle: doc.Title,
		Action:        action,
	})
	return err
}

// inferFileType maps an upload's MIME type onto the catalogue's closed set.
func inferFileType(contentType string) model.FileType {
	switch {
	case strings.Contains(contentType, "pdf"):
		return model.FileTypePDF
	case strings.HasPrefix(contentType, "image"):
		return model.FileTypeImage
	default:
		return model.FileTypeDOCX
	}
}

func formatSize(size int64) string {
	return fmt.Sprintf("%.2f MB", float64(size)/1024/1024)
}
