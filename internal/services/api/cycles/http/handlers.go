// Package http provides http transport for cycle predictions
package http

import (
	stdhttp "net/http"

	"lunara/internal/modkit/httpkit"
	"lunara/internal/platform/net/http/bind"
	"lunara/internal/services/api/cycles/domain"
	svc "lunara/internal/services/api/cycles/service"
)

// uploadField is the multipart field carrying the optional temperature file
const uploadField = "bbtFile"

// Register mounts cycles endpoints on the given router
func Register(r httpkit.Router, s svc.Service, form bind.FormOptions) {
	h := &handlers{svc: s}
	httpkit.PostForm(r, "/predict", h.predict, form)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /cycles/predict Cycles cyclesPredict
// @Summary Predict the upcoming fertile window from cycle history
// @Tags Cycles
// @Accept mpfd
// @Produce json
// @Param name formData string true "User name"
// @Param lmpDate3 formData string true "Most recent period start (YYYY-MM-DD)"
// @Param bbtFile formData file false "Temperature history (CSV or workbook)"
// @Success 200 {object} domain.Prediction "ok"
// @Router /cycles/predict [post]
func (h *handlers) predict(r *stdhttp.Request, in domain.PredictInput) (any, error) {
	var up *domain.Upload
	if fh, ok := bind.FormFile(r, uploadField); ok {
		up = &domain.Upload{Filename: fh.Filename}
		up.Data, up.Err = bind.ReadFile(fh)
	}
	return h.svc.Predict(r.Context(), in, up)
}
