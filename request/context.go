package request

import (
	"context"
	"net/http"
)

// Context carries a single operation call through the middleware chain.
type Context struct {
	request        *http.Request
	responseWriter http.ResponseWriter

	endpoint string
}

func NewContext(request *http.Request, response http.ResponseWriter, endpoint string) *Context {
	return &Context{
		request:        request,
		responseWriter: response,
		endpoint:       endpoint,
	}
}

func (c *Context) Request() *http.Request {
	return c.request
}

func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.responseWriter
}

func (c *Context) SetResponseWriter(writer http.ResponseWriter) {
	c.responseWriter = writer
}

// Endpoint returns the operation name, e.g. "post_tweet".
func (c *Context) Endpoint() string {
	return c.endpoint
}

func (c *Context) Context() context.Context {
	return c.request.Context()
}

func (c *Context) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}
