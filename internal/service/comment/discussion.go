package comment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/termweave/glossary-backend/internal/domain"
)

// EntryDiscussion returns the current discussion of an entry: top-level
// comments on the unpublished draft chain, from the latest draft back
// to (and excluding) the published one. Resolved threads are hidden
// behind ResolvedCount unless includeResolved is set, in which case
// they are returned alongside the open ones and the count still
// reports how many of them there are. Replies follow their parent
// regardless of which draft was current when they were posted.
func (s *Service) EntryDiscussion(ctx context.Context, entryID uuid.UUID, includeResolved bool) (*Discussion, error) {
	if _, err := s.entries.GetByID(ctx, entryID); err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}

	chain, err := s.currentChain(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if len(chain) == 0 {
		return &Discussion{}, nil
	}

	topLevel, err := s.comments.ListTopLevelByDraftIDs(ctx, chain)
	if err != nil {
		return nil, fmt.Errorf("list top-level comments: %w", err)
	}

	var visible []domain.Comment
	resolved := 0
	for _, c := range topLevel {
		if c.IsResolved {
			resolved++
			if !includeResolved {
				continue
			}
		}
		visible = append(visible, c)
	}

	threads, err := s.buildThreads(ctx, visible)
	if err != nil {
		return nil, err
	}

	return &Discussion{Threads: threads, ResolvedCount: resolved}, nil
}

// DraftDiscussion returns the historical discussion of one draft:
// everything posted on exactly that draft, resolved threads included.
func (s *Service) DraftDiscussion(ctx context.Context, draftID uuid.UUID) (*Discussion, error) {
	if _, err := s.drafts.GetByID(ctx, draftID); err != nil {
		return nil, fmt.Errorf("get draft: %w", err)
	}

	topLevel, err := s.comments.ListTopLevelByDraftIDs(ctx, []uuid.UUID{draftID})
	if err != nil {
		return nil, fmt.Errorf("list top-level comments: %w", err)
	}

	resolved := 0
	for _, c := range topLevel {
		if c.IsResolved {
			resolved++
		}
	}

	threads, err := s.buildThreads(ctx, topLevel)
	if err != nil {
		return nil, err
	}

	return &Discussion{Threads: threads, ResolvedCount: resolved}, nil
}

// currentChain returns the draft IDs of the entry's unpublished tail:
// latest draft back through replaces_draft_id until a published draft or
// the chain start.
func (s *Service) currentChain(ctx context.Context, entryID uuid.UUID) ([]uuid.UUID, error) {
	latest, err := s.drafts.GetLatestByEntry(ctx, entryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest draft: %w", err)
	}
	if latest.IsPublished {
		return nil, nil
	}

	history, err := s.drafts.GetHistory(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get draft history: %w", err)
	}
	byID := make(map[uuid.UUID]*domain.Draft, len(history))
	for i := range history {
		byID[history[i].ID] = &history[i]
	}

	var chain []uuid.UUID
	for cur := byID[latest.ID]; cur != nil && !cur.IsPublished; {
		chain = append(chain, cur.ID)
		if cur.ReplacesDraftID == nil {
			break
		}
		cur = byID[*cur.ReplacesDraftID]
	}
	return chain, nil
}

// buildThreads loads replies for the given top-level comments and
// renders every body to sanitized HTML.
func (s *Service) buildThreads(ctx context.Context, topLevel []domain.Comment) ([]Thread, error) {
	if len(topLevel) == 0 {
		return nil, nil
	}

	parentIDs := make([]uuid.UUID, len(topLevel))
	for i, c := range topLevel {
		parentIDs[i] = c.ID
	}

	replies, err := s.comments.ListRepliesByParentIDs(ctx, parentIDs)
	if err != nil {
		return nil, fmt.Errorf("list replies: %w", err)
	}

	repliesByParent := make(map[uuid.UUID][]View)
	for _, r := range replies {
		view, err := s.view(r)
		if err != nil {
			return nil, err
		}
		repliesByParent[*r.ParentID] = append(repliesByParent[*r.ParentID], view)
	}

	threads := make([]Thread, 0, len(topLevel))
	for _, c := range topLevel {
		view, err := s.view(c)
		if err != nil {
			return nil, err
		}
		threads = append(threads, Thread{
			View:    view,
			Replies: repliesByParent[c.ID],
		})
	}
	return threads, nil
}

func (s *Service) view(c domain.Comment) (View, error) {
	html, err := s.content.RenderMarkdown(c.Text)
	if err != nil {
		return View{}, fmt.Errorf("render comment %s: %w", c.ID, err)
	}
	return View{Comment: c, HTML: html}, nil
}
