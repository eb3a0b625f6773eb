package app

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
)

// respond is the response finalizer: a synchronous decision tree over the
// final context state, run once per request after the pipeline settles
// successfully. Returned errors are transport or serialization failures and
// are routed to the application's error path by the dispatcher.
func respond(c *Context) error {
	if !c.respond {
		return nil
	}

	res := c.Response()
	if !res.Writable() {
		return nil
	}

	w := c.w
	code := res.Status()
	body := res.Body()

	if statusEmpty(code) {
		res.SetBody(nil)
		w.WriteHeader(code)
		return nil
	}

	if c.r.Method == http.MethodHead {
		if !res.HeaderSent() && w.Header().Get("Content-Length") == "" {
			if n, ok := res.Length(); ok {
				w.Header().Set("Content-Length", strconv.FormatInt(n, 10))
			}
		}
		w.WriteHeader(code)
		return nil
	}

	if body == nil {
		if res.explicitNull {
			w.Header().Del("Content-Type")
			w.Header().Del("Transfer-Encoding")
			w.WriteHeader(code)
			return nil
		}

		// Synthesize a textual fallback for pipelines that set no body.
		var msg string
		if c.r.ProtoMajor >= 2 {
			msg = strconv.Itoa(code)
		} else if msg = http.StatusText(code); msg == "" {
			msg = strconv.Itoa(code)
		}
		if !res.HeaderSent() {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Content-Length", strconv.Itoa(len(msg)))
		}
		w.WriteHeader(code)
		_, err := io.WriteString(w, msg)
		return err
	}

	switch b := body.(type) {
	case []byte:
		w.WriteHeader(code)
		_, err := w.Write(b)
		return err
	case string:
		w.WriteHeader(code)
		_, err := io.WriteString(w, b)
		return err
	case io.Reader:
		w.WriteHeader(code)
		_, err := io.Copy(w, b)
		if closer, ok := b.(io.Closer); ok {
			closer.Close()
		}
		return err
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return err
		}
		if !res.HeaderSent() {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		}
		w.WriteHeader(code)
		_, err = w.Write(data)
		return err
	}
}
