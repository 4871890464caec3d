package v1

import (
	"net/http"
	"strconv"

	"ansadash/api/internal/apierror"
	"ansadash/api/internal/logger"
	"ansadash/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Success envelope. Failures are plain text with the class-mapped status so
// internal detail never reaches the browser.
type responseData struct {
	Data any `json:"data"`
}

func respondData(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, responseData{Data: payload})
}

func (h *Handler) respondErr(c *gin.Context, aerr *apierror.Error) {
	errID := logger.GenErrorId()

	switch {
	case aerr.Class == apierror.CLASS_AUTH:
		userID := aerr.Labels[apierror.LABEL_USER_ID]
		if userID == "" {
			userID = logger.NA
		}
		h.log.TemplAuthErr(aerr.Message, errID, userID, c.Request.RequestURI, c.ClientIP())
	case aerr.Class == apierror.CLASS_INTERNAL && aerr.Labels[apierror.LABEL_ANSA_STATUS_CODE] != "":
		status, _ := strconv.Atoi(aerr.Labels[apierror.LABEL_ANSA_STATUS_CODE])
		path, _ := utils.SafeCast[string](aerr.Annotations["path"])
		h.log.TemplAnsaErr(aerr.Message, errID, path, status, aerr.Cause)
	default:
		attrs := []any{"error_id", errID, "class", string(aerr.Class), "uri", c.Request.RequestURI}
		for label, value := range aerr.Labels {
			attrs = append(attrs, string(label), value)
		}
		for key, value := range aerr.Annotations {
			attrs = append(attrs, key, value)
		}
		if aerr.Cause != nil {
			attrs = append(attrs, "cause", aerr.Cause.Error())
		}
		h.log.Error(aerr.Message, attrs...)
	}

	if aerr.Class == apierror.CLASS_INTERNAL {
		h.metrics.RecordUpstreamError(string(aerr.Class))
	}

	c.String(aerr.Status(), aerr.Body())
	c.Abort()
}
