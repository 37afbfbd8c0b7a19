package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidRequest = fmt.Errorf("invalid request")
var ErrTransport = fmt.Errorf("transport error")
var ErrMalformedResponse = fmt.Errorf("malformed response")
var ErrNotFound = fmt.Errorf("not found")
var ErrBadRequest = fmt.Errorf("bad request")

type myError struct {
	msg    string
	target error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }

func NewInvalidRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrInvalidRequest,
	}
}

func NewTransportError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrTransport,
	}
}

func NewMalformedResponseError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrMalformedResponse,
	}
}

func NewNotFoundError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrNotFound,
	}
}

func NewBadRequestError(msg string) error {
	return &myError{
		msg:    msg,
		target: ErrBadRequest,
	}
}

//ProblemDetails stores details about a certain problem according to RFC7807
//See https://tools.ietf.org/html/rfc7807
type ProblemDetails struct {
	typ     string
	title   string
	detail  string
	code    int
	traceID string
}

const (
	//ProblemReportContentType as required by https://tools.ietf.org/html/rfc7807
	ProblemReportContentType string = "application/problem+json"
)

const problemTypeBase string = "https://github.com/diwise/swapi-aggregator/errors/"

//NewProblemFromError classifies err and returns the problem that should be reported to the client
func NewProblemFromError(err error, traceID string) *ProblemDetails {
	p := &ProblemDetails{detail: err.Error(), traceID: traceID}

	switch {
	case errors.Is(err, ErrNotFound):
		p.typ, p.title, p.code = problemTypeBase+"NotFound", "Not Found", http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		p.typ, p.title, p.code = problemTypeBase+"BadRequest", "Bad Request", http.StatusBadRequest
	case errors.Is(err, ErrTransport):
		p.typ, p.title, p.code = problemTypeBase+"UpstreamUnavailable", "Upstream Unavailable", http.StatusBadGateway
	case errors.Is(err, ErrMalformedResponse):
		p.typ, p.title, p.code = problemTypeBase+"MalformedResponse", "Malformed Upstream Response", http.StatusInternalServerError
	default:
		p.typ, p.title, p.code = problemTypeBase+"InternalError", "Internal Error", http.StatusInternalServerError
	}

	return p
}

//ReportError classifies err and sends the resulting problem to the supplied http.ResponseWriter
func ReportError(w http.ResponseWriter, err error, traceID string) {
	NewProblemFromError(err, traceID).WriteResponse(w)
}

func (p *ProblemDetails) ContentType() string {
	return ProblemReportContentType
}

func (p *ProblemDetails) Type() string   { return p.typ }
func (p *ProblemDetails) Title() string  { return p.title }
func (p *ProblemDetails) Detail() string { return p.detail }

//ResponseCode returns the HTTP response code to be used when returning a specific problem
func (p *ProblemDetails) ResponseCode() int {
	if p.code != 0 {
		return p.code
	}

	return http.StatusInternalServerError
}

//MarshalJSON is called when a ProblemDetails instance should be serialized to JSON
func (p *ProblemDetails) MarshalJSON() ([]byte, error) {
	var traceID *string

	if p.traceID != "" {
		traceID = &p.traceID
	}

	return json.Marshal(struct {
		Type    string  `json:"type"`
		Title   string  `json:"title"`
		Detail  string  `json:"detail"`
		TraceID *string `json:"traceID,omitempty"`
	}{
		Type:    p.typ,
		Title:   p.title,
		Detail:  p.detail,
		TraceID: traceID,
	})
}

//WriteResponse writes the contents of this instance to a http.ResponseWriter
func (p *ProblemDetails) WriteResponse(w http.ResponseWriter) {
	w.Header().Add("Content-Type", p.ContentType())
	w.Header().Add("Content-Language", "en")
	w.WriteHeader(p.ResponseCode())

	pdbytes, err := json.MarshalIndent(p, "", "  ")
	if err == nil {
		w.Write(pdbytes)
	}
}
