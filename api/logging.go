package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"lexema.com/postag/logger"
)

var defaultLogger = logger.NewLogger("API")

type endpointLoggerFields struct {
	Method string `json:"method"`
	Url    string `json:"url"`
}

const RequestInfoFieldsKey = "request_info"

func makeRequestLogger(request *http.Request) zerolog.Logger {
	fields := endpointLoggerFields{
		Method: request.Method,
		Url:    request.URL.String(),
	}
	return defaultLogger.
		With().Interface(RequestInfoFieldsKey, fields).Logger()
}
