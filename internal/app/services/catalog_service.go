package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/learnsetu/lms-backend/internal/app/models"
	"github.com/learnsetu/lms-backend/internal/app/models/dto"
	"github.com/learnsetu/lms-backend/internal/app/repositories"
)

// CatalogService defines the catalog browsing operations
type CatalogService interface {
	GetCourseTree(ctx context.Context) ([]dto.ModuleNode, error)
	GetCourseModuleSessions(ctx context.Context) ([]dto.CourseModulesNode, error)
}

// catalogServiceImpl implements the CatalogService interface
type catalogServiceImpl struct {
	catalogRepo *repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo *repositories.CatalogRepository) CatalogService {
	return &catalogServiceImpl{catalogRepo: catalogRepo}
}

// GetCourseTree returns the nested module→session→sub-session→content tree.
// The flat rows come from bulk fan-out queries and are grouped in-process.
func (s *catalogServiceImpl) GetCourseTree(ctx context.Context) ([]dto.ModuleNode, error) {
	modules, err := s.catalogRepo.GetModules(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving modules: %w", err)
	}

	sessions, err := s.catalogRepo.GetSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sessions: %w", err)
	}

	parts, err := s.catalogRepo.GetContentParts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving content parts: %w", err)
	}

	items, err := s.catalogRepo.GetContentItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving content items: %w", err)
	}

	return assembleTree(modules, sessions, parts, items), nil
}

// assembleTree is the grouping pass over flat catalog rows. Grouping key
// precedence: module → top-level session (nil parent) → sub-session (parent
// equals a session code) → content part → content item ordered by index.
// Every collection renders as an empty list, never null.
func assembleTree(modules []models.Module, sessions []models.Session, parts []models.ContentPart, items []models.ContentItem) []dto.ModuleNode {
	itemsByPart := map[string][]dto.ContentItemNode{}
	for _, it := range items {
		node := dto.ContentItemNode{
			Index: it.ContentIndex,
			Type:  it.Type,
			Title: it.Title,
		}
		if it.Type == models.ContentTypeVideo {
			if it.VideoLink != nil {
				node.VideoLink = *it.VideoLink
			}
		} else {
			node.Questions = json.RawMessage(it.QuestionsJSON)
		}
		itemsByPart[it.PartCode] = append(itemsByPart[it.PartCode], node)
	}
	for code := range itemsByPart {
		nodes := itemsByPart[code]
		sort.SliceStable(nodes, func(i, j int) bool { return nodes[i].Index < nodes[j].Index })
	}

	partsBySession := map[string][]dto.ContentPartNode{}
	for _, p := range parts {
		contents := itemsByPart[p.PartCode]
		if contents == nil {
			contents = []dto.ContentItemNode{}
		}
		partsBySession[p.SessionCode] = append(partsBySession[p.SessionCode], dto.ContentPartNode{
			ID:       p.PartCode,
			Title:    p.Title,
			Contents: contents,
		})
	}

	partsFor := func(sessionCode string) []dto.ContentPartNode {
		if nodes := partsBySession[sessionCode]; nodes != nil {
			return nodes
		}
		return []dto.ContentPartNode{}
	}

	// Sub-sessions nest exactly one level below their parent session
	subsByParent := map[string][]dto.SubSessionNode{}
	for _, sess := range sessions {
		if sess.ParentSessionCode == nil {
			continue
		}
		subsByParent[*sess.ParentSessionCode] = append(subsByParent[*sess.ParentSessionCode], dto.SubSessionNode{
			ID:           sess.SessionCode,
			Title:        sess.Title,
			ContentParts: partsFor(sess.SessionCode),
		})
	}

	topByModule := map[int64][]dto.SessionNode{}
	for _, sess := range sessions {
		if sess.ParentSessionCode != nil {
			continue
		}
		subs := subsByParent[sess.SessionCode]
		if subs == nil {
			subs = []dto.SubSessionNode{}
		}
		topByModule[sess.ModuleID] = append(topByModule[sess.ModuleID], dto.SessionNode{
			ID:           sess.SessionCode,
			Title:        sess.Title,
			ContentParts: partsFor(sess.SessionCode),
			SubSessions:  subs,
		})
	}

	tree := []dto.ModuleNode{}
	for _, m := range modules {
		moduleSessions := topByModule[m.ID]
		if moduleSessions == nil {
			moduleSessions = []dto.SessionNode{}
		}
		tree = append(tree, dto.ModuleNode{
			ID:       m.ModuleCode,
			Title:    m.Title,
			Sessions: moduleSessions,
		})
	}

	return tree
}

// GetCourseModuleSessions returns the course→module→session listing built
// from a single flat join.
func (s *catalogServiceImpl) GetCourseModuleSessions(ctx context.Context) ([]dto.CourseModulesNode, error) {
	rows, err := s.catalogRepo.GetCourseModuleSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course modules: %w", err)
	}

	return groupCourseModules(rows), nil
}

// groupCourseModules groups the ordered flat join rows, preserving the query
// order of courses, modules and sessions.
func groupCourseModules(rows []repositories.CourseModuleSessionRow) []dto.CourseModulesNode {
	courses := []dto.CourseModulesNode{}
	courseIndex := map[int64]int{}
	moduleIndex := map[int64]int{}

	for _, row := range rows {
		ci, ok := courseIndex[row.CourseID]
		if !ok {
			ci = len(courses)
			courseIndex[row.CourseID] = ci
			courses = append(courses, dto.CourseModulesNode{
				ID:      row.CourseID,
				Title:   row.CourseTitle,
				Modules: []dto.ModuleSessionNode{},
			})
		}

		mi, ok := moduleIndex[row.ModuleID]
		if !ok {
			mi = len(courses[ci].Modules)
			moduleIndex[row.ModuleID] = mi
			courses[ci].Modules = append(courses[ci].Modules, dto.ModuleSessionNode{
				ID:       row.ModuleCode,
				Title:    row.ModuleTitle,
				Sessions: []dto.SessionSummary{},
			})
		}

		// Left join: modules without sessions still produce one row
		if row.SessionID != nil && row.SessionCode != nil {
			title := ""
			if row.SessionTitle != nil {
				title = *row.SessionTitle
			}
			courses[ci].Modules[mi].Sessions = append(courses[ci].Modules[mi].Sessions, dto.SessionSummary{
				ID:    *row.SessionCode,
				Title: title,
			})
		}
	}

	return courses
}
