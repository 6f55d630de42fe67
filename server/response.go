package server

import (
	"bytes"
	"strconv"
)

// notFoundPage is the fixed body of every 404 response
var notFoundPage = []byte(`<!DOCTYPE html>
<html>
    <body>
    <h2>404. The resource is not found &#128575;</h2>
    </body>
</html>
`)

// header is one response header line
type header struct {
	key, value string
}

// CreateResponseBytes frames a status line, headers and body as bytes.
// With no headers and no body only the status line is written.
func CreateResponseBytes(statusCode int, statusMessage string, headers []header, body []byte) ([]byte, string) {
	buf := responseBufferPool.Get().(*bytes.Buffer)
	buf.Reset()

	defer func() {
		if buf.Cap() <= maxPoolBufferSize {
			responseBufferPool.Put(buf)
		}
	}()

	status := strconv.Itoa(statusCode)
	buf.WriteString("HTTP/1.1 ")
	buf.WriteString(status)
	buf.WriteString(" ")
	buf.WriteString(statusMessage)
	buf.WriteString("\r\n")
	if len(headers) > 0 || len(body) > 0 {
		for _, h := range headers {
			buf.WriteString(h.key)
			buf.WriteString(": ")
			buf.WriteString(h.value)
			buf.WriteString("\r\n")
		}
		buf.WriteString("\r\n")
		buf.Write(body)
	}

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, status
}

// FileResponse builds the 200 response for a file's contents
func FileResponse(filePath string, content []byte) ([]byte, string) {
	return CreateResponseBytes(200, "OK", []header{
		{"Content-Type", getContentType(filePath)},
		{"Content-Length", strconv.Itoa(len(content))},
	}, content)
}

// ErrorResponse builds the response for a redirect or error outcome
func ErrorResponse(e *HTTPError) ([]byte, string) {
	switch {
	case e.Category == CategoryRedirect:
		return CreateResponseBytes(e.Code, e.Message, []header{{"Location", e.Location}}, nil)
	case e.Code == 404:
		return serve404Bytes()
	default:
		return CreateResponseBytes(e.Code, e.Message, nil, nil)
	}
}

// serve404Bytes returns the 404 response with the fixed HTML page
func serve404Bytes() ([]byte, string) {
	return CreateResponseBytes(404, "Not Found", []header{
		{"Content-Length", strconv.Itoa(len(notFoundPage))},
	}, notFoundPage)
}
