package eastmoney

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// jwget performs an HTTP GET and unmarshals the JSON response body into
// the provided data structure.
func jwget(client *http.Client, addr string, data any) error {
	body, err := wget(client, addr)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}

// wget performs an HTTP GET and returns the raw response body.
func wget(client *http.Client, addr string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(addr)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jnum extracts a numeric field from a loosely-typed JSON document. The
// push2 API answers floats normally but the literal "-" for suspended or
// missing values, so extraction is by jsonpath with a type check rather
// than a rigid struct.
func jnum(jobj any, path string) (decimal.Decimal, bool) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, false
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(val), true
}
