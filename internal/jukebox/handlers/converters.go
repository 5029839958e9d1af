package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	e "github.com/gartstein/jukebox/internal/jukebox/errors"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// maxInputBytes bounds a mutation body.
const maxInputBytes = 1 << 20

type resultEnvelope struct {
	Result resultData `json:"result"`
}

type resultData struct {
	Data interface{} `json:"data"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Message    string `json:"message"`
	Code       string `json:"code"`
	HTTPStatus int    `json:"httpStatus"`
}

// readInput extracts the raw JSON input of a call. It returns nil when the
// caller sent none.
func readInput(r *http.Request, kind procedureKind) (json.RawMessage, error) {
	if kind == query {
		input := r.URL.Query().Get("input")
		if input == "" {
			return nil, nil
		}
		return json.RawMessage(input), nil
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxInputBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", e.ErrInvalidInput, err)
	}
	if len(body) > maxInputBytes {
		return nil, fmt.Errorf("%w: request body too large", e.ErrInvalidInput)
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	return json.RawMessage(body), nil
}

// decodeInput unmarshals raw into v. A missing or null input is an error
// only when required is set; v is left at its zero value otherwise.
func decodeInput(raw json.RawMessage, v interface{}, required bool) error {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		if required {
			return fmt.Errorf("%w: input is required", e.ErrInvalidInput)
		}
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: malformed input: %v", e.ErrInvalidInput, err)
	}
	return nil
}

// nonNil keeps empty lists serialising as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// mapServiceError maps domain or repository errors to gRPC statuses.
func (h *RPCHandler) mapServiceError(err error) *status.Status {
	switch {
	case errors.Is(err, e.ErrInvalidInput):
		return status.New(codes.InvalidArgument, err.Error())
	case errors.Is(err, e.ErrNotFound):
		return status.New(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrConflict):
		return status.New(codes.AlreadyExists, err.Error())
	default:
		h.logger.Error("Internal server error", zap.Error(err))
		return status.New(codes.Internal, "internal server error")
	}
}

// errorCode names a gRPC code the way RPC clients expect it.
func errorCode(c codes.Code) string {
	switch c {
	case codes.InvalidArgument:
		return "BAD_REQUEST"
	case codes.NotFound:
		return "NOT_FOUND"
	case codes.AlreadyExists:
		return "CONFLICT"
	case codes.Unimplemented:
		return "METHOD_NOT_SUPPORTED"
	default:
		return "INTERNAL_SERVER_ERROR"
	}
}

func httpStatus(c codes.Code) int {
	if c == codes.Unimplemented {
		return http.StatusMethodNotAllowed
	}
	return runtime.HTTPStatusFromCode(c)
}

func (h *RPCHandler) writeResult(w http.ResponseWriter, data interface{}) {
	h.writeJSON(w, http.StatusOK, resultEnvelope{Result: resultData{Data: data}})
}

func (h *RPCHandler) writeError(w http.ResponseWriter, st *status.Status) {
	code := httpStatus(st.Code())
	h.writeJSON(w, code, errorEnvelope{Error: errorBody{
		Message:    st.Message(),
		Code:       errorCode(st.Code()),
		HTTPStatus: code,
	}})
}

func (h *RPCHandler) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("Failed to encode response", zap.Error(err))
		http.Error(w, `{"error":{"message":"internal server error","code":"INTERNAL_SERVER_ERROR","httpStatus":500}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
