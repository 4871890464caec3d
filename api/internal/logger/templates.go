package logger

// template helpers for the recurring log shapes

func (l Logger) TemplAuthErr(message, errorId, userId, uri, ip string) string {
	l.Error(message, "error_id", errorId, "user_id", userId, "uri", uri, "ip", ip)
	return errorId
}

func (l Logger) TemplAnsaErr(message, errorId, path string, status int, err error) string {
	errText := NA
	if err != nil {
		errText = err.Error()
	}
	l.Error(message, "error_id", errorId, "path", path, "ansa_status", status, "error", errText)
	return errorId
}

// use only for fatal errors
func (l Logger) TemplHTTPError(message string, addr string, err error) {
	l.Error(message, "error", err.Error(), "addr", addr)
}
