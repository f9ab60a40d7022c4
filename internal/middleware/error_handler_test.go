package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"wallet-service/internal/errors"
	"wallet-service/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
)

type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	handler  echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.handler = NewHTTPErrorHandler(s.registry)
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) handle(err error) (*httptest.ResponseRecorder, errors.ErrorResponse) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil), rec)
	c.Set(TraceIDContextKey, "trace-err")

	s.handler(err, c)

	var response errors.ErrorResponse
	if rec.Body.Len() > 0 {
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	}
	return rec, response
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	rec, response := s.handle(echo.NewHTTPError(http.StatusNotFound, "route not found"))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal(string(errors.SystemNotFound), response.Error.Code)
	s.Equal("route not found", response.Error.Message)
	s.Equal("trace-err", response.Error.TraceID)
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type query struct {
		Type string `json:"type" validate:"required,transaction_type"`
	}
	err := validation.GetValidator().GetValidate().Struct(query{Type: "transfer"})
	s.Require().Error(err)

	rec, response := s.handle(fmt.Errorf("bind: %w", err))

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal(string(errors.ValidationGeneral), response.Error.Code)
	s.Equal([]string{"type: must be one of income, expense, refunded"}, response.Error.Details)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesDetails() {
	rec, response := s.handle(fmt.Errorf("pq: password authentication failed"))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(errors.SystemInternalError), response.Error.Code)
	s.NotContains(rec.Body.String(), "password")
}

func (s *ErrorHandlerTestSuite) TestNoTraceID() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	s.handler(echo.ErrUnauthorized, c)

	var response errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("unknown", response.Error.TraceID)
	s.Equal(string(errors.AuthMissingToken), response.Error.Code)
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(fmt.Errorf("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestHeadRequestHasNoBody() {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodHead, "/", nil), rec)

	s.handler(echo.ErrNotFound, c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Zero(rec.Body.Len())
}

func (s *ErrorHandlerTestSuite) TestErrorsAreCounted() {
	s.handle(echo.ErrTooManyRequests)
	s.handle(echo.ErrTooManyRequests)

	s.Equal(1, testutil.CollectAndCount(s.registry, "api_errors_total"))

	families, err := s.registry.Gather()
	s.Require().NoError(err)
	s.Require().Len(families, 1)
	metric := families[0].GetMetric()[0]
	s.Equal(float64(2), metric.GetCounter().GetValue())

	labels := map[string]string{}
	for _, pair := range metric.GetLabel() {
		labels[pair.GetName()] = pair.GetValue()
	}
	s.Equal(string(errors.SystemRateLimitExceeded), labels["code"])
	s.Equal("429", labels["status"])
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	cases := map[int]errors.ErrorCode{
		http.StatusBadRequest:          errors.ValidationGeneral,
		http.StatusMethodNotAllowed:    errors.ValidationGeneral,
		http.StatusUnauthorized:        errors.AuthMissingToken,
		http.StatusForbidden:           errors.AuthInvalidToken,
		http.StatusNotFound:            errors.SystemNotFound,
		http.StatusTooManyRequests:     errors.SystemRateLimitExceeded,
		http.StatusServiceUnavailable:  errors.SystemServiceUnavailable,
		http.StatusInternalServerError: errors.SystemInternalError,
		http.StatusTeapot:              errors.SystemInternalError,
	}
	for status, code := range cases {
		s.Equal(code, mapHTTPStatusToErrorCode(status), "status %d", status)
	}
}
