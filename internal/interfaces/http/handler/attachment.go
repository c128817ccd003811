package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/kdirani/farms/internal/application/attachment"
	"github.com/kdirani/farms/internal/domain/document"
	"github.com/kdirani/farms/internal/domain/shared"
)

// fileField is the multipart field carrying the uploaded file
const fileField = "file"

// AttachmentHandler handles the files attached to one record kind
type AttachmentHandler struct {
	BaseHandler
	files *attachment.Service
	kind  document.Kind
}

// NewAttachmentHandler creates an AttachmentHandler for records of the given kind
func NewAttachmentHandler(files *attachment.Service, kind document.Kind) *AttachmentHandler {
	return &AttachmentHandler{files: files, kind: kind}
}

// Upload godoc
// @ID           uploadAttachment
// @Summary      Attach a file to a record
// @Description  Stores the file body in the blob store and records its metadata. The blob is removed again if the metadata cannot be saved.
// @Tags         attachments
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path     string true "Record ID" format(uuid)
// @Param        file formData file   true "File"
// @Success      200 {object} APIResponse[attachment.Response]
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/attachments [post]
// @Router       /manufacturing/{id}/attachments [post]
// @Router       /medicine-consumption/{id}/attachments [post]
// @Router       /daily-reports/{id}/attachments [post]
func (h *AttachmentHandler) Upload(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	file, header, err := c.Request.FormFile(fileField)
	if err != nil {
		h.Fail(c, shared.Invalid("file is required"))
		return
	}
	defer file.Close()

	upload := attachment.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	run(c, "UploadAttachment", func(ctx context.Context) (*attachment.Response, error) {
		return h.files.Upload(ctx, h.kind, id, upload)
	})
}

// List godoc
// @ID           listAttachments
// @Summary      List the files of a record
// @Tags         attachments
// @Produce      json
// @Param        id path string true "Record ID" format(uuid)
// @Success      200 {object} APIResponse[[]attachment.Response]
// @Security     BearerAuth
// @Router       /invoices/{id}/attachments [get]
// @Router       /manufacturing/{id}/attachments [get]
// @Router       /medicine-consumption/{id}/attachments [get]
// @Router       /daily-reports/{id}/attachments [get]
func (h *AttachmentHandler) List(c *gin.Context) {
	id, ok := h.PathID(c, "id")
	if !ok {
		return
	}
	run(c, "ListAttachments", func(ctx context.Context) ([]attachment.Response, error) {
		return h.files.List(ctx, h.kind, id)
	})
}

// Delete godoc
// @ID           deleteAttachment
// @Summary      Remove a file from a record
// @Tags         attachments
// @Produce      json
// @Param        id           path string true "Record ID" format(uuid)
// @Param        attachmentId path string true "Attachment ID" format(uuid)
// @Success      200 {object} APIResponse[IDData]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /invoices/{id}/attachments/{attachmentId} [delete]
// @Router       /manufacturing/{id}/attachments/{attachmentId} [delete]
// @Router       /medicine-consumption/{id}/attachments/{attachmentId} [delete]
// @Router       /daily-reports/{id}/attachments/{attachmentId} [delete]
func (h *AttachmentHandler) Delete(c *gin.Context) {
	attachmentID, ok := h.PathID(c, "attachmentId")
	if !ok {
		return
	}
	run(c, "DeleteAttachment", func(ctx context.Context) (uuid.UUID, error) {
		return h.files.Delete(ctx, h.kind, attachmentID)
	})
}

// RegisterRoutes mounts the attachment routes on a record group
func (h *AttachmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/:id/attachments", h.Upload)
	rg.GET("/:id/attachments", h.List)
	rg.DELETE("/:id/attachments/:attachmentId", h.Delete)
}
