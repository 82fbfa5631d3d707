// Package http provides http transport for record retrieval
package http

import (
	stdhttp "net/http"

	"lunara/internal/modkit/httpkit"
	"lunara/internal/platform/net/http/bind"
	"lunara/internal/services/api/records/domain"
	svc "lunara/internal/services/api/records/service"
)

// uploadField is the multipart field carrying the history file
const uploadField = "bbtFile_data"

// Register mounts records endpoints on the given router
func Register(r httpkit.Router, s svc.Service, form bind.FormOptions) {
	h := &handlers{svc: s}
	httpkit.PostForm(r, "/retrieve", h.retrieve, form)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /records/retrieve Records recordsRetrieve
// @Summary Retrieve recorded cycle history for a user from an upload
// @Tags Records
// @Accept mpfd
// @Produce json
// @Param name formData string true "User name"
// @Param bbtFile_data formData file true "History table (CSV or workbook)"
// @Success 200 {object} domain.RetrieveResult "ok"
// @Router /records/retrieve [post]
func (h *handlers) retrieve(r *stdhttp.Request, in domain.RetrieveInput) (any, error) {
	var up *domain.Upload
	if fh, ok := bind.FormFile(r, uploadField); ok {
		up = &domain.Upload{Filename: fh.Filename}
		up.Data, up.Err = bind.ReadFile(fh)
	}
	return h.svc.Retrieve(r.Context(), in, up), nil
}
