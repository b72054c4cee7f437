package grana

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// Yield-index rates come from the Banco Central do Brasil SGS open API.
// Series codes for the monthly accumulated rates:
//
//	4391 CDI, 4390 SELIC, 196 poupança
var sgsSeries = map[string]int{
	"CDI":      4391,
	"SELIC":    4390,
	"POUPANCA": 196,
}

// diskCache implements a simple disk cache for HTTP responses.
// The cache key includes the day, so entries expire daily.
type diskCache struct {
	base http.RoundTripper
}

func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := fmt.Sprintf("%s %s %s", Today().String(), req.Method, req.URL.String())
	key = fmt.Sprintf("%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v/%v %v", resp.Request.Method, resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

// get retrieves a cached response from disk.
func (c *diskCache) get(key string, req *http.Request) (resp *http.Response, err error) {
	file := filepath.Join(os.TempDir(), key)
	content, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewBuffer(content)), req)
}

// put stores a response to the disk cache.
func (c *diskCache) put(key string, resp *http.Response) (err error) {
	file := filepath.Join(os.TempDir(), key)

	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}

	f, err := os.Create(file)
	if err != nil {
		return err
	}
	_, err = f.Write(content)
	f.Close()
	return err
}

// daily returns an http client with a cache that expires every day.
func daily() *http.Client {
	client := new(http.Client)
	client.Transport = &diskCache{http.DefaultTransport}
	return client
}

// jwget performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}

// sgsLatest returns the latest published value of an SGS series, in percent.
func sgsLatest(series int) (decimal.Decimal, error) {
	addr := fmt.Sprintf("https://api.bcb.gov.br/dados/serie/bcdata.sgs.%d/dados/ultimos/1?formato=json", series)

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("error fetching SGS series %d: %w", series, err)
	}

	path := "$[-1:].valor"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error parsing SGS series %d: %q %w", series, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	sval, ok := jval.(string)
	if !ok {
		return decimal.Zero, fmt.Errorf("SGS series %d: value is not a string: %v", series, jval)
	}
	// the API localizes decimals in some formats
	sval = strings.ReplaceAll(sval, ",", ".")
	val, err := strconv.ParseFloat(sval, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("SGS series %d: invalid value %q: %w", series, sval, err)
	}
	return decimal.NewFromFloat(val), nil
}

// IndexRate returns the latest monthly rate of a yield index (CDI,
// SELIC, POUPANCA), in percent.
func IndexRate(index string) (decimal.Decimal, error) {
	series, ok := sgsSeries[strings.ToUpper(index)]
	if !ok {
		return decimal.Zero, fmt.Errorf("unknown yield index %q", index)
	}
	return sgsLatest(series)
}
