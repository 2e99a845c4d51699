package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
)

type errorKind int

const (
	errKindValidation errorKind = iota
	errKindNotFound
	errKindUnauthorized
	errKindNotReady
	errKindStore
	errKindNotifier
)

type flowError struct {
	kind    errorKind
	message string
	cause   error
}

func (e *flowError) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

func (e *flowError) Unwrap() error { return e.cause }

func validationError(format string, args ...any) error {
	return &flowError{kind: errKindValidation, message: fmt.Sprintf(format, args...)}
}

func notFoundError(message string) error {
	return &flowError{kind: errKindNotFound, message: message}
}

func unauthorizedError(message string) error {
	return &flowError{kind: errKindUnauthorized, message: message}
}

func notReadyError(message string) error {
	return &flowError{kind: errKindNotReady, message: message}
}

func storeError(err error) error {
	return &flowError{kind: errKindStore, message: "store operation failed", cause: err}
}

func notifierError(err error) error {
	return &flowError{kind: errKindNotifier, message: "notification send failed", cause: err}
}

// writeFlowError maps a flow error onto the HTTP surface. Downstream
// failures keep their detail in the log and return a generic message.
func writeFlowError(w http.ResponseWriter, err error) {
	var fe *flowError
	if !errors.As(err, &fe) {
		log.Printf("unclassified error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	switch fe.kind {
	case errKindValidation:
		writeError(w, http.StatusBadRequest, fe.message)
	case errKindNotFound:
		writeError(w, http.StatusNotFound, fe.message)
	case errKindUnauthorized:
		writeError(w, http.StatusForbidden, fe.message)
	case errKindNotReady:
		writeError(w, http.StatusConflict, fe.message)
	default:
		log.Printf("%s: %v", fe.message, fe.cause)
		writeError(w, http.StatusInternalServerError, fe.message)
	}
}
