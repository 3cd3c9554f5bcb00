package seed

import "gedapi/internal/model"

// Package seed holds the fixed initial contents of every store. The dataset
// is loaded once at process start; a restart discards all mutations and
// reverts to it. Constructors return fresh slices so callers never alias the
// literals.

// Users returns the seeded roster. The first entry is the default acting user.
func Users() []model.User {
	return []model.User{
		{ID: "u1", Name: "Alice Admin", Email: "alice@ged.com", Password: "admin", Role: model.RoleAdmin, Avatar: "https://picsum.photos/seed/alice/200"},
		{ID: "u2", Name: "Bob Member", Email: "bob@ged.com", Password: "user", Role: model.RoleMember, Avatar: "https://picsum.photos/seed/bob/200"},
		{ID: "u3", Name: "Charlie Guest", Email: "charlie@ged.com", Password: "guest", Role: model.RoleGuest, Avatar: "https://picsum.photos/seed/charlie/200"},
	}
}

// Categories returns the static two-level taxonomy.
func Categories() []model.CategoryNode {
	return []model.CategoryNode{
		{ID: "livres", Name: "Livres", Subcategories: []string{"Science", "Histoire", "Technologie"}},
		{ID: "dossiers", Name: "Dossiers", Subcategories: []string{"Projets", "Administratif"}},
	}
}

// Documents returns the seeded catalogue in its canonical order.
func Documents() []model.Document {
	return []model.Document{
		{
			ID:          "d1",
			Title:       "Physique Quantique pour tous",
			Type:        model.FileTypePDF,
			Category:    "Livres",
			Subcategory: "Science",
			Author:      "Albert E.",
			UploadDate:  "2023-10-15",
			Size:        "12 MB",
			Keywords:    []string{"physique", "science", "quantum"},
			Description: "Introduction aux concepts de base.",
			Version:     1.0,
			Cover:       "https://picsum.photos/seed/physics/300/400",
		},
		{
			ID:          "d2",
			Title:       "Histoire de France Vol. 1",
			Type:        model.FileTypePDF,
			Category:    "Livres",
			Subcategory: "Histoire",
			Author:      "Jules Michelet",
			UploadDate:  "2023-09-01",
			Size:        "25 MB",
			Keywords:    []string{"france", "histoire", "révolution"},
			Description: "Une plongée dans le passé de la France.",
			Version:     1.0,
			Cover:       "https://picsum.photos/seed/history/300/400",
		},
		{
			ID:          "d3",
			Title:       "Cahier des charges - Projet Alpha",
			Type:        model.FileTypeDOCX,
			Category:    "Dossiers",
			Subcategory: "Projets",
			Author:      "Alice Admin",
			UploadDate:  "2023-11-20",
			Size:        "2 MB",
			Keywords:    []string{"projet", "specs", "alpha"},
			Description: "Spécifications techniques du projet Alpha.",
			Version:     1.2,
		},
		{
			ID:          "d4",
			Title:       "React Design Patterns",
			Type:        model.FileTypePDF,
			Category:    "Livres",
			Subcategory: "Technologie",
			Author:      "Facebook Team",
			UploadDate:  "2024-01-10",
			Size:        "5 MB",
			Keywords:    []string{"code", "react", "frontend"},
			Description: "Meilleures pratiques pour le développement React.",
			Version:     2.0,
			Cover:       "https://picsum.photos/seed/react/300/400",
		},
		{
			ID:          "d5",
			Title:       "Facture Février 2024",
			Type:        model.FileTypePDF,
			Category:    "Dossiers",
			Subcategory: "Administratif",
			Author:      "Service Compta",
			UploadDate:  "2024-02-28",
			Size:        "0.5 MB",
			Keywords:    []string{"facture", "finance"},
			Description: "Facture mensuelle électricité.",
			Version:     1.0,
		},
		{
			ID:          "d6",
			Title:       "La Révolution Industrielle",
			Type:        model.FileTypePDF,
			Category:    "Livres",
			Subcategory: "Histoire",
			Author:      "Historien X",
			UploadDate:  "2022-05-12",
			Size:        "15 MB",
			Keywords:    []string{"industrie", "histoire", "19eme"},
			Description: "Analyse de la révolution industrielle.",
			Version:     1.0,
			Cover:       "https://picsum.photos/seed/factory/300/400",
		},
		{
			ID:          "d7",
			Title:       "Compte Rendu Réunion Mars",
			Type:        model.FileTypeDOCX,
			Category:    "Dossiers",
			Subcategory: "Administratif",
			Author:      "Secrétariat",
			UploadDate:  "2024-03-01",
			Size:        "1 MB",
			Keywords:    []string{"réunion", "cr", "mars"},
			Description: "CR de la réunion mensuelle.",
			Version:     1.1,
		},
	}
}

// History returns the seeded activity log, most recent last in source order;
// the history store serves entries newest-first.
func History() []model.HistoryEntry {
	return []model.HistoryEntry{
		{ID: "h1", UserID: "u1", UserName: "Alice Admin", DocumentID: "d1", DocumentTitle: "Physique Quantique", Action: model.ActionUpload, Timestamp: "2023-10-15 10:00"},
		{ID: "h2", UserID: "u2", UserName: "Bob Member", DocumentID: "d3", DocumentTitle: "Cahier des charges", Action: model.ActionDownload, Timestamp: "2023-11-21 14:30"},
		{ID: "h3", UserID: "u1", UserName: "Alice Admin", DocumentID: "d5", DocumentTitle: "Facture Février 2024", Action: model.ActionUpload, Timestamp: "2024-02-28 09:15"},
	}
}
