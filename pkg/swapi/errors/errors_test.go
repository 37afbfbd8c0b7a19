package errors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestThatWrappedErrorsKeepTheirTarget(t *testing.T) {
	is := is.New(t)

	err := fmt.Errorf("failed to resolve planet (%w)", NewNotFoundError("no such planet"))

	is.True(errors.Is(err, ErrNotFound))
	is.True(!errors.Is(err, ErrTransport))
	is.Equal(err.Error(), "failed to resolve planet (no such planet)")
}

func TestProblemResponseCodes(t *testing.T) {
	is := is.New(t)

	is.Equal(NewProblemFromError(NewNotFoundError(""), "").ResponseCode(), http.StatusNotFound)
	is.Equal(NewProblemFromError(NewBadRequestError(""), "").ResponseCode(), http.StatusBadRequest)
	is.Equal(NewProblemFromError(NewTransportError(""), "").ResponseCode(), http.StatusBadGateway)
	is.Equal(NewProblemFromError(NewMalformedResponseError(""), "").ResponseCode(), http.StatusInternalServerError)
	is.Equal(NewProblemFromError(NewInvalidRequestError(""), "").ResponseCode(), http.StatusInternalServerError)
	is.Equal(NewProblemFromError(errors.New("boom"), "").ResponseCode(), http.StatusInternalServerError)
}

func TestReportErrorWritesProblemJSON(t *testing.T) {
	is := is.New(t)
	w := httptest.NewRecorder()

	ReportError(w, NewNotFoundError("no film matches the filter"), "abc123")

	is.Equal(w.Code, http.StatusNotFound)
	is.Equal(w.Header().Get("Content-Type"), ProblemReportContentType)

	body := w.Body.String()
	is.True(strings.Contains(body, `"detail": "no film matches the filter"`))
	is.True(strings.Contains(body, `"traceID": "abc123"`))
}
