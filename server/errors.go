package server

import (
	"errors"
	"strconv"
)

var errInvalidRequestLine = errors.New("invalid request line")

// Category groups an HTTPError by the status class it is answered with
type Category int

const (
	CategoryClient Category = iota
	CategoryServer
	CategoryRedirect
)

// HTTPError is every non-file outcome of a request. Redirects are carried
// here too, with Location set.
type HTTPError struct {
	Category Category
	Code     int
	Message  string
	Location string
}

func (e *HTTPError) Error() string {
	return strconv.Itoa(e.Code) + " " + e.Message
}

func NotFound() *HTTPError {
	return &HTTPError{Category: CategoryClient, Code: 404, Message: "Not Found"}
}

func MethodNotAllowed() *HTTPError {
	return &HTTPError{Category: CategoryClient, Code: 405, Message: "Method Not Allowed"}
}

func Redirect(location string) *HTTPError {
	return &HTTPError{Category: CategoryRedirect, Code: 301, Message: "Moved Permanently", Location: location}
}

func ServerError(message string) *HTTPError {
	return &HTTPError{Category: CategoryServer, Code: 500, Message: message}
}
