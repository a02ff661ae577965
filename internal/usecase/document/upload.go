package document

import (
	"context"

	"github.com/BruksfildServices01/shelter-adoption/internal/audit"
	"github.com/BruksfildServices01/shelter-adoption/internal/auth"
	domain "github.com/BruksfildServices01/shelter-adoption/internal/domain/document"
	"github.com/BruksfildServices01/shelter-adoption/internal/httperr"
	"github.com/BruksfildServices01/shelter-adoption/internal/infra/storage"
	"github.com/BruksfildServices01/shelter-adoption/internal/models"
)

type UploadDocument struct {
	repo   domain.Repository
	bucket storage.Bucket
	audit  audit.Sink
}

func NewUploadDocument(repo domain.Repository, bucket storage.Bucket, audit audit.Sink) *UploadDocument {
	return &UploadDocument{repo: repo, bucket: bucket, audit: audit}
}

// Execute sube el archivo y hace upsert (perfil, tipo) con estado pendiente.
// Si la base falla después del upload el archivo queda huérfano.
func (uc *UploadDocument) Execute(
	ctx context.Context,
	actor auth.Actor,
	profileID uint,
	docType string,
	file storage.File,
) (*models.Document, error) {

	if err := auth.RequireOwnerOrAdmin(actor, profileID); err != nil {
		return nil, err
	}

	t := domain.Type(docType)
	if !t.Valid() {
		return nil, httperr.Validation("invalid_document_type")
	}

	ext, contentType, err := file.Check(storage.DocumentExtensions)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetProfile(ctx, profileID); err != nil {
		return nil, httperr.FromStore(err, "profile_not_found")
	}

	key := storage.DocumentKey(profileID, string(t), ext)
	url, err := uc.bucket.Upload(ctx, key, file.Data, contentType)
	if err != nil {
		return nil, httperr.Upstream("storage_failure", err)
	}

	doc := &models.Document{ProfileID: profileID, Type: string(t)}
	domain.ResetForUpload(doc, key, url)

	if err := uc.repo.UpsertDocument(ctx, doc); err != nil {
		return nil, httperr.FromStore(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actor.ProfileID,
		Action:   "document_uploaded",
		Entity:   "document",
		EntityID: &doc.ID,
		Metadata: map[string]any{"tipo": doc.Type},
	})

	return doc, nil
}
