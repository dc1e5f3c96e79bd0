package searchserver

import "fmt"

// JSON-RPC error codes surfaced by the tool layer. Method-level routing
// errors (-32601) are produced by the MCP SDK before handlers run.
const (
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603
)

// RPCError is a tool-layer error carrying a JSON-RPC style code.
type RPCError struct {
	Code    int
	Message string
}

func (e *RPCError) Error() string { return e.Message }

func invalidParams(format string, args ...any) *RPCError {
	return &RPCError{Code: CodeInvalidParams, Message: fmt.Sprintf(format, args...)}
}

func internalError(format string, args ...any) *RPCError {
	return &RPCError{Code: CodeInternal, Message: fmt.Sprintf(format, args...)}
}
