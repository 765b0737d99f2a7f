package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"domain-mcp/internal/handler/mcptools"
)

// JSON-RPC error codes
const (
	codeParseError     = -32700
	codeInvalidRequest = -32600
	codeMethodNotFound = -32601
	codeInvalidParams  = -32602
	codeInternalError  = -32603
	codeUnauthorized   = -32001
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type toolCallParams struct {
	Name      string                 `json:"name"`
	Arguments map[string]interface{} `json:"arguments"`
}

func writeRPC(w http.ResponseWriter, status int, resp rpcResponse) {
	if resp.ID == nil {
		resp.ID = json.RawMessage("null")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeRPCError(w http.ResponseWriter, status int, id json.RawMessage, code int, message string) {
	writeRPC(w, status, rpcResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error:   &rpcError{Code: code, Message: message},
	})
}

// handleRPC serves MCP over JSON-RPC
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeRPCError(w, http.StatusMethodNotAllowed, nil, codeInvalidRequest, "Method not allowed")
		return
	}

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRPCError(w, http.StatusBadRequest, nil, codeParseError, "Parse error: "+err.Error())
		return
	}
	if req.JSONRPC != "2.0" || req.Method == "" {
		writeRPCError(w, http.StatusBadRequest, req.ID, codeInvalidRequest, "Invalid request")
		return
	}

	// notifications carry no id and expect no body
	if strings.HasPrefix(req.Method, "notifications/") {
		w.WriteHeader(http.StatusAccepted)
		return
	}

	var result interface{}
	switch req.Method {
	case "initialize":
		result = map[string]interface{}{
			"protocolVersion": mcptools.ProtocolVersion,
			"capabilities": map[string]interface{}{
				"tools": map[string]interface{}{"listChanged": false},
			},
			"serverInfo": map[string]interface{}{
				"name":    mcptools.ServerName,
				"version": mcptools.ServerVersion,
			},
			"instructions": mcptools.Instructions,
		}
	case "ping":
		result = map[string]interface{}{}
	case "tools/list":
		result = s.tools.ToolsList()
	case "tools/call":
		var params toolCallParams
		if len(req.Params) == 0 || json.Unmarshal(req.Params, &params) != nil || params.Name == "" {
			writeRPCError(w, http.StatusOK, req.ID, codeInvalidParams, "params.name is required")
			return
		}

		log.Printf("[HTTPAPI] tools/call %s", params.Name)
		call, err := s.tools.Call(r.Context(), params.Name, params.Arguments)
		if errors.Is(err, mcptools.ErrUnknownTool) {
			writeRPCError(w, http.StatusOK, req.ID, codeInvalidParams, err.Error())
			return
		}
		if err != nil {
			writeRPCError(w, http.StatusOK, req.ID, codeInternalError, err.Error())
			return
		}
		result = map[string]interface{}{
			"content": []map[string]interface{}{{"type": "text", "text": call.Text}},
			"isError": call.IsError,
		}
	default:
		writeRPCError(w, http.StatusOK, req.ID, codeMethodNotFound, "Method not found: "+req.Method)
		return
	}

	writeRPC(w, http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: result})
}
