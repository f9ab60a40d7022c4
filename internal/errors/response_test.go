package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_Defaults() {
	response := NewErrorResponse(WalletSessionNotFound, s.traceID)

	s.Equal("WALLET_001", response.Error.Code)
	s.Equal("Wallet session not found or expired", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	response := NewErrorResponse(WalletInvalidAction, s.traceID,
		WithMessage("unknown action type"),
		WithDetails("type: frobnicate"),
	)

	s.Equal("unknown action type", response.Error.Message)
	s.Equal([]string{"type: frobnicate"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedDetails() {
	response := NewValidationError(map[string]string{
		"pageSize": "must be positive",
		"dateFrom": "invalid date",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"dateFrom: invalid date", "pageSize: must be positive"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	cause := errors.New("pq: relation \"transactions\" does not exist")

	response, err := WrapSystemError(cause, s.traceID)

	s.Equal(cause, err)
	s.Equal(string(SystemInternalError), response.Error.Code)
	s.NotContains(response.Error.Message, "transactions")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationInvalidDate, http.StatusBadRequest},
		{WalletInvalidAction, http.StatusBadRequest},
		{TransactionInvalidFilter, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthExpiredToken, http.StatusUnauthorized},
		{WalletSessionForbidden, http.StatusForbidden},
		{WalletSessionNotFound, http.StatusNotFound},
		{TransactionNotFound, http.StatusNotFound},
		{WalletTooManySessions, http.StatusTooManyRequests},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemDatabaseError, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	client := NewErrorResponse(WalletSessionNotFound, s.traceID)
	s.True(client.IsClientError())
	s.False(client.IsServerError())

	server := NewErrorResponse(SystemInternalError, s.traceID)
	s.False(server.IsClientError())
	s.True(server.IsServerError())
}

func (s *ResponseTestSuite) TestJSONShape() {
	data, err := json.Marshal(NewErrorResponse(WalletSessionForbidden, s.traceID))
	s.Require().NoError(err)

	var decoded map[string]map[string]any
	s.Require().NoError(json.Unmarshal(data, &decoded))
	s.Equal("WALLET_003", decoded["error"]["code"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
	s.NotContains(decoded["error"], "details", "empty details are omitted")
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(WalletSessionNotFound, "abc")
	s.Equal("[WALLET_001] Wallet session not found or expired (trace: abc)", response.String())
}
