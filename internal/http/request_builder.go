package http

import (
	"encoding/json"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/packlane/box-picker/internal/domain/dto"
	"github.com/packlane/box-picker/internal/i18n"
	"github.com/packlane/box-picker/internal/middleware"
)

// envelopePool pools response envelopes of one type. put zeroes the value so
// pooled data never leaks into another request's response.
type envelopePool[T any] struct {
	pool sync.Pool
}

func (p *envelopePool[T]) get() *T {
	v, _ := p.pool.Get().(*T)
	if v == nil {
		v = new(T)
	}
	return v
}

func (p *envelopePool[T]) put(v *T) {
	var zero T
	*v = zero
	p.pool.Put(v)
}

var (
	successResponsePool envelopePool[dto.SuccessResponse]
	errorResponsePool   envelopePool[dto.ErrorResponse]
)

// RequestBuilder unmarshals request bodies from a gin context.
type RequestBuilder struct {
	c *gin.Context
}

// NewRequestBuilder creates a request builder bound to the given context.
func NewRequestBuilder(c *gin.Context) *RequestBuilder {
	return &RequestBuilder{c: c}
}

// Bind unmarshals the JSON request body into v.
func (b *RequestBuilder) Bind(v interface{}) error {
	return b.c.ShouldBindJSON(v)
}

// UnmarshalFromReader decodes a JSON document from reader into a new T.
func UnmarshalFromReader[T any](reader io.Reader) (*T, error) {
	v := new(T)
	if err := json.NewDecoder(reader).Decode(v); err != nil {
		return nil, err
	}
	return v, nil
}

// UnmarshalFromBytes decodes JSON bytes into a new T.
func UnmarshalFromBytes[T any](data []byte) (*T, error) {
	v := new(T)
	if err := json.Unmarshal(data, v); err != nil {
		return nil, err
	}
	return v, nil
}

// ResponseBuilder writes the service's response envelopes. Envelope DTOs are
// pooled; gin serializes synchronously, so returning them after c.JSON is safe.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a response builder bound to the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends data wrapped in the success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp := successResponsePool.get()
	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.JSON(statusCode, resp)
	successResponsePool.put(resp)
}

// SuccessOK sends a 200 OK response with the given data.
func (b *ResponseBuilder) SuccessOK(data interface{}) {
	b.Success(http.StatusOK, data)
}

// SuccessCreated sends a 201 Created response with the given data.
func (b *ResponseBuilder) SuccessCreated(data interface{}) {
	b.Success(http.StatusCreated, data)
}

// SuccessAccepted sends a 202 Accepted response with the given data.
func (b *ResponseBuilder) SuccessAccepted(data interface{}) {
	b.Success(http.StatusAccepted, data)
}

// sendError aborts the request with the error envelope. A non-nil err is
// attached to the context so the error handler middleware can log it.
func (b *ResponseBuilder) sendError(statusCode int, code, message string, details map[string]string, err error) {
	resp := errorResponsePool.get()
	resp.Error = code
	resp.Message = message
	resp.Details = details
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	if err != nil {
		_ = b.c.Error(err)
	}

	b.c.AbortWithStatusJSON(statusCode, resp)
	errorResponsePool.put(resp)
}

// Error sends an error response whose message is the translation of
// messageKey for the request's locale.
func (b *ResponseBuilder) Error(statusCode int, messageKey string, err error) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(b.c))
	b.sendError(statusCode, dto.ErrCodeFromStatus(statusCode), message, nil, err)
}

// ErrorWithMessage sends an error response with a literal message.
func (b *ResponseBuilder) ErrorWithMessage(statusCode int, message string, err error) {
	b.sendError(statusCode, dto.ErrCodeFromStatus(statusCode), message, nil, err)
}

// ErrorWithDetails sends an error response with an explicit error code and
// structured details.
func (b *ResponseBuilder) ErrorWithDetails(statusCode int, code, message string, details map[string]string, err error) {
	b.sendError(statusCode, code, message, details, err)
}

// MarshalJSON marshals the provided value to JSON bytes.
func MarshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalToWriter encodes the provided value as JSON onto w.
func MarshalToWriter(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}

// BuildRequest unmarshals the request body into a new T.
func BuildRequest[T any](c *gin.Context) (*T, error) {
	v := new(T)
	if err := NewRequestBuilder(c).Bind(v); err != nil {
		return nil, err
	}
	return v, nil
}

// Validator is implemented by request types that validate themselves.
type Validator interface {
	Validate() error
}

// BuildRequestAndValidate unmarshals the request body and, when T implements
// Validator, runs its validation.
func BuildRequestAndValidate[T any](c *gin.Context) (*T, error) {
	req, err := BuildRequest[T](c)
	if err != nil {
		return nil, err
	}
	if v, ok := any(req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return req, nil
}
