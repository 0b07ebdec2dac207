package service

import (
	"archive/zip"
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lept-reviewer/backend/internal/extract"
	"github.com/lept-reviewer/backend/internal/model"
)

type documentFixture struct {
	svc     DocumentService
	docs    *fakeDocRepo
	usage   *fakeUsageRepo
	storage *fakeStorage
}

func newDocumentFixture(t *testing.T) *documentFixture {
	t.Helper()
	docs := newFakeDocRepo()
	usage := newFakeUsageRepo()
	storage := newFakeStorage()
	svc := NewDocumentService(docs, usage, storage, newTestCache(t), 200, testLogger())
	return &documentFixture{svc: svc, docs: docs, usage: usage, storage: storage}
}

// docxBytes builds a minimal DOCX archive containing the given paragraph.
func docxBytes(t *testing.T, text string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = f.Write([]byte(`<?xml version="1.0"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p><w:r><w:t>` + text + `</w:t></w:r></w:p></w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestUploadUserDocumentExtractsText(t *testing.T) {
	f := newDocumentFixture(t)

	doc, err := f.svc.UploadUserDocument(context.Background(), "A@B.com", DocumentUpload{
		FileName:    "reviewer.docx",
		Data:        docxBytes(t, "Constructivism in the classroom."),
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	})
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", doc.Email)
	assert.Equal(t, ".docx", doc.FileType)
	assert.Equal(t, "Constructivism in the classroom.", doc.ExtractedText)
	assert.Contains(t, f.storage.objects, doc.StorageKey)
}

func TestUploadUserDocumentPlaceholderStillSucceeds(t *testing.T) {
	f := newDocumentFixture(t)

	doc, err := f.svc.UploadUserDocument(context.Background(), "a@b.com", DocumentUpload{
		FileName: "scan.pdf",
		Data:     []byte("not really a pdf"),
	})
	require.NoError(t, err)
	assert.True(t, extract.IsPlaceholder(doc.ExtractedText))
}

func TestUploadUserDocumentRejectsBadExtension(t *testing.T) {
	f := newDocumentFixture(t)

	_, err := f.svc.UploadUserDocument(context.Background(), "a@b.com", DocumentUpload{
		FileName: "notes.txt",
		Data:     []byte("plain text"),
	})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Message, "Invalid file type")
}

func TestDeleteUserDocumentRemovesObject(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := f.svc.UploadUserDocument(ctx, "a@b.com", DocumentUpload{
		FileName: "reviewer.docx",
		Data:     docxBytes(t, "Some content."),
	})
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteUserDocument(ctx, "a@b.com", doc.ID))
	assert.NotContains(t, f.storage.objects, doc.StorageKey)

	docs, err := f.svc.ListUserDocuments(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Empty(t, docs)

	assert.ErrorIs(t, f.svc.DeleteUserDocument(ctx, "a@b.com", doc.ID), ErrDocumentNotFound)
}

func TestDeleteUserDocumentWrongOwner(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := f.svc.UploadUserDocument(ctx, "a@b.com", DocumentUpload{
		FileName: "reviewer.docx",
		Data:     docxBytes(t, "Some content."),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, f.svc.DeleteUserDocument(ctx, "other@b.com", doc.ID), ErrDocumentNotFound)
}

func TestAdminDocumentAccessGating(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := f.svc.UploadAdminDocument(ctx, "admin", DocumentUpload{
		FileName: "lept-reviewer.docx",
		Data:     docxBytes(t, "Official reviewer content."),
		Category: "Professional Education",
	}, true)
	require.NoError(t, err)

	freeUser := &model.User{Email: "free@b.com", PlanType: model.PlanFree}
	_, err = f.svc.AdminDocumentURL(ctx, freeUser, doc.ID)
	assert.ErrorIs(t, err, ErrPlanRequired)

	proUser := &model.User{Email: "pro@b.com", PlanType: model.PlanPro}
	url, err := f.svc.AdminDocumentURL(ctx, proUser, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/"+doc.StorageKey, url)

	expiry := time.Now().AddDate(0, 0, 5)
	premiumUser := &model.User{Email: "prem@b.com", PlanType: model.PlanPremium, PremiumExpiry: &expiry}
	text, err := f.svc.AdminDocumentText(ctx, premiumUser, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "Official reviewer content.", text)
}

func TestAdminDocumentNotDownloadableIsHidden(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := f.svc.UploadAdminDocument(ctx, "admin", DocumentUpload{
		FileName: "draft.docx",
		Data:     docxBytes(t, "Draft content."),
	}, false)
	require.NoError(t, err)

	proUser := &model.User{Email: "pro@b.com", PlanType: model.PlanPro}
	_, err = f.svc.AdminDocumentURL(ctx, proUser, doc.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	require.NoError(t, f.svc.SetAdminDocumentDownloadable(ctx, "admin", doc.ID, true))
	_, err = f.svc.AdminDocumentURL(ctx, proUser, doc.ID)
	assert.NoError(t, err)
}

func TestAdminDocumentLifecycleAudited(t *testing.T) {
	f := newDocumentFixture(t)
	ctx := context.Background()

	doc, err := f.svc.UploadAdminDocument(ctx, "admin", DocumentUpload{
		FileName: "reviewer.docx",
		Data:     docxBytes(t, "Content."),
	}, true)
	require.NoError(t, err)
	assert.Equal(t, "General", doc.Category)

	require.NoError(t, f.svc.SetAdminDocumentDownloadable(ctx, "admin", doc.ID, false))
	require.NoError(t, f.svc.DeleteAdminDocument(ctx, "admin", doc.ID))

	types := []string{}
	for _, a := range f.usage.actions {
		types = append(types, a.ActionType)
	}
	assert.Equal(t, []string{model.ActionUploadAdminDoc, model.ActionToggleAdminDoc, model.ActionDeleteAdminDoc}, types)
	assert.Equal(t, "reviewer.docx downloadable=false", f.usage.actions[1].Details)
}
