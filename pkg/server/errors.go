// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	stderrors "errors"
	"net/http"
	"time"

	gwerrors "github.com/NVIDIA/recipe-gateway/pkg/errors"
	"github.com/NVIDIA/recipe-gateway/pkg/serializer"

	"github.com/google/uuid"
)

// ErrorResponse is the JSON body of every error the gateway returns.
// The error and details keys are part of the public contract.
type ErrorResponse struct {
	Error     string         `json:"error"`
	Code      string         `json:"code"`
	Details   string         `json:"details,omitempty"`
	Context   map[string]any `json:"context,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// HTTPStatusFromCode maps an error code to the HTTP status it is served with.
func HTTPStatusFromCode(code gwerrors.ErrorCode) int {
	switch code {
	case gwerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case gwerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case gwerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case gwerrors.ErrCodeUpstream, gwerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code gwerrors.ErrorCode) bool {
	switch code {
	case gwerrors.ErrCodeUpstream, gwerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

func mergeContext(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func requestID(r *http.Request) string {
	if id := RequestIDFromContext(r.Context()); id != "" {
		return id
	}
	return uuid.New().String()
}

// NewErrorResponse builds an error body for the given code and message.
func NewErrorResponse(r *http.Request, code gwerrors.ErrorCode, message string) ErrorResponse {
	return ErrorResponse{
		Error:     message,
		Code:      string(code),
		RequestID: requestID(r),
		Timestamp: time.Now().UTC(),
		Retryable: retryableFromCode(code),
	}
}

// ErrorResponseFromErr builds an error body from err. Structured errors
// keep their code and context and expose their cause as details; any other
// error is reported as INTERNAL. A non-empty message replaces the error's own.
func ErrorResponseFromErr(r *http.Request, err error, message string, context map[string]any) ErrorResponse {
	var se *gwerrors.StructuredError
	if !stderrors.As(err, &se) {
		resp := NewErrorResponse(r, gwerrors.ErrCodeInternal, message)
		if err != nil {
			resp.Details = err.Error()
		}
		resp.Context = mergeContext(nil, context)
		return resp
	}

	if message == "" {
		message = se.Message
	}
	resp := NewErrorResponse(r, se.Code, message)
	if se.Cause != nil {
		resp.Details = se.Cause.Error()
	}
	resp.Context = mergeContext(se.Context, context)
	return resp
}

// WriteError writes an error response with an explicit status.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code gwerrors.ErrorCode, message string, retryable bool, context map[string]any) {

	resp := NewErrorResponse(r, code, message)
	resp.Retryable = retryable
	resp.Context = context

	serializer.RespondJSON(w, statusCode, resp)
}

// WriteErrorFromErr writes err as an error response, deriving the status
// from its code.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	message string, context map[string]any) {

	resp := ErrorResponseFromErr(r, err, message, context)
	serializer.RespondJSON(w, HTTPStatusFromCode(gwerrors.ErrorCode(resp.Code)), resp)
}
