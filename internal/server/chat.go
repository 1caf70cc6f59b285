package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/crystaldolphin/toolbridge/internal/schema"
)

// Error codes returned to clients.
const (
	CodeBadRequest         = "bad_request"
	CodeInvalidTranscript  = "invalid_transcript"
	CodeRoundLimitExceeded = "round_limit_exceeded"
	CodeGatewayError       = "gateway_error"
	CodeCancelled          = "cancelled"
)

// statusClientClosedRequest is logged when the caller went away mid-run.
const statusClientClosedRequest = 499

const gatewayFailureMessage = "Failed to get response from the model."

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, chatReply{Error: "invalid JSON body: " + err.Error(), Code: CodeBadRequest})
		return
	}

	status, reply := s.converse(r.Context(), req)
	writeJSON(w, status, reply)
}

// converse runs one request and maps the outcome to an HTTP status and reply
// body. It is shared by the HTTP and WebSocket surfaces.
func (s *Server) converse(ctx context.Context, req chatRequest) (int, chatReply) {
	if req.Messages == nil {
		return http.StatusBadRequest, chatReply{Error: "Messages are required", Code: CodeBadRequest}
	}
	transcript, err := toTranscript(req.Messages)
	if err != nil {
		return http.StatusBadRequest, chatReply{Error: err.Error(), Code: CodeInvalidTranscript}
	}

	res, err := s.runner.Run(ctx, transcript)
	if err == nil {
		slog.Info("Chat answered", "rounds", res.Rounds, "tools", len(res.ToolsUsed))
		return http.StatusOK, chatReply{Message: res.Answer}
	}
	return classify(ctx, err)
}

func classify(ctx context.Context, err error) (int, chatReply) {
	switch {
	case errors.Is(err, schema.ErrValidation):
		return http.StatusBadRequest, chatReply{Error: err.Error(), Code: CodeInvalidTranscript}
	case errors.Is(err, schema.ErrRoundLimit):
		return http.StatusUnprocessableEntity, chatReply{Error: err.Error(), Code: CodeRoundLimitExceeded}
	case ctx.Err() != nil:
		slog.Info("Chat cancelled by client", "err", err)
		return statusClientClosedRequest, chatReply{Error: "request cancelled", Code: CodeCancelled}
	default:
		slog.Error("Chat failed", "err", err)
		return http.StatusBadGateway, chatReply{Error: gatewayFailureMessage, Code: CodeGatewayError}
	}
}
