package document

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
	"github.com/BruksfildServices01/shelter-adoption/internal/notify"
)

type ReviewDocument struct {
	repo     domain.Repository
	notifier notify.Notifier
	audit    audit.Sink
	now      func() time.Time
}

func NewReviewDocument(repo domain.Repository, notifier notify.Notifier, audit audit.Sink) *ReviewDocument {
	return &ReviewDocument{repo: repo, notifier: notifier, audit: audit, now: time.Now}
}

func (uc *ReviewDocument) Execute(
	ctx context.Context,
	actor auth.Actor,
	documentID uint,
	decision string,
	reason string,
) (*models.Document, error) {

	if err := auth.RequireAdmin(actor); err != nil {
		return nil, err
	}

	doc, err := uc.repo.GetDocument(ctx, documentID)
	if err != nil {
		return nil, httperr.FromStore(err, "document_not_found")
	}

	if err := domain.Review(doc, domain.Status(decision), reason, actor.ProfileID, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateDocument(ctx, doc); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	if domain.Status(doc.Status) == domain.StatusRejected {
		if owner, err := uc.repo.GetProfile(ctx, doc.ProfileID); err != nil {
			log.Printf("document_rejected notify profile=%d error=%v", doc.ProfileID, err)
		} else {
			uc.notifier.Notify(notify.KindDocumentRejected, owner.Email, notify.Data{
				"Name":   owner.FirstName,
				"Type":   doc.Type,
				"Reason": doc.RejectionReason,
			})
		}
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "document_reviewed",
		Entity:   "document",
		EntityID: &doc.ID,
		Metadata: map[string]any{"estado": doc.Status},
	})

	return doc, nil
}
