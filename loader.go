package jsonschema

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/jlaffaye/ftp"
)

// Reference transports a $ref may name. Anything else is a filesystem path
// unless it begins with "#" or is empty (local fragment).
var validSchemes = []string{"http", "https", "ftp"}

// isValidURL reports whether a reference is an absolute URL with one of the
// recognized schemes.
func isValidURL(reference string) bool {
	parsed, err := url.Parse(reference)
	if err != nil {
		return false
	}
	for _, scheme := range validSchemes {
		if parsed.Scheme == scheme {
			return true
		}
	}
	return false
}

// decodeJSON unmarshals a JSON document into an any tree, keeping numbers as
// json.Number so the integer/number variant split survives decoding.
func decodeJSON(data []byte) (interface{}, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()
	var document interface{}
	if err := decoder.Decode(&document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
	}
	return document, nil
}

// decodeYAML unmarshals a YAML document into an any tree.
func decodeYAML(data []byte) (interface{}, error) {
	var document interface{}
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLUnmarshal, err)
	}
	return document, nil
}

// setupMediaTypes configures default media type handlers.
func (c *Compiler) setupMediaTypes() {
	c.MediaTypes["application/json"] = decodeJSON
	c.MediaTypes["application/yaml"] = decodeYAML
}

// setupLoaders configures default loaders for fetching schemas via
// HTTP/HTTPS and FTP.
func (c *Compiler) setupLoaders() {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}

	defaultHTTPLoader := func(rawURL string) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(context.Background(), "GET", rawURL, nil)
		if err != nil {
			return nil, err
		}

		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNetworkFetch, err)
		}

		if resp.StatusCode != http.StatusOK {
			if err := resp.Body.Close(); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %d", ErrInvalidStatusCode, resp.StatusCode)
		}

		return resp.Body, nil
	}

	c.RegisterLoader("http", defaultHTTPLoader)
	c.RegisterLoader("https", defaultHTTPLoader)
	c.RegisterLoader("ftp", defaultFTPLoader)
}

// defaultFTPLoader retrieves a schema document over anonymous FTP. The
// standard library has no FTP client, so the de-facto ecosystem one is used.
func defaultFTPLoader(rawURL string) (io.ReadCloser, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	host := parsed.Host
	if parsed.Port() == "" {
		host = host + ":21"
	}

	conn, err := ftp.Dial(host, ftp.DialWithTimeout(10*time.Second))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetworkFetch, err)
	}

	user, password := "anonymous", "anonymous"
	if parsed.User != nil {
		user = parsed.User.Username()
		if pw, ok := parsed.User.Password(); ok {
			password = pw
		}
	}
	if err := conn.Login(user, password); err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("%w: %w", ErrNetworkFetch, err)
	}

	response, err := conn.Retr(parsed.Path)
	if err != nil {
		_ = conn.Quit()
		return nil, fmt.Errorf("%w: %w", ErrDataRead, err)
	}

	return &ftpResponse{Response: response, conn: conn}, nil
}

// ftpResponse closes the control connection along with the data stream.
type ftpResponse struct {
	*ftp.Response
	conn *ftp.ServerConn
}

func (r *ftpResponse) Close() error {
	err := r.Response.Close()
	if quitErr := r.conn.Quit(); err == nil {
		err = quitErr
	}
	return err
}

// mediaTypeFor picks the unmarshal handler for a document location by file
// extension. JSON is the default; YAML extensions route through the YAML
// handler.
func (c *Compiler) mediaTypeFor(location string) (func([]byte) (interface{}, error), error) {
	name := location
	if parsed, err := url.Parse(location); err == nil && parsed.Path != "" {
		name = parsed.Path
	}

	mediaType := "application/json"
	switch strings.ToLower(path.Ext(name)) {
	case ".yaml", ".yml":
		mediaType = "application/yaml"
	}

	handler, ok := c.MediaTypes[mediaType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoMediaTypeHandler, mediaType)
	}
	return handler, nil
}

// fetchURL loads and decodes the document behind a URL origin (no fragment),
// caching it so repeated references fetch once. Concurrent compiles against
// one Compiler are serialized per fetch by the cache mutex.
func (c *Compiler) fetchURL(origin string) (interface{}, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if document, ok := c.documents[origin]; ok {
		return document, nil
	}

	scheme := getURLScheme(origin)
	loader, ok := c.Loaders[scheme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNoLoaderRegistered, scheme)
	}

	body, err := loader(origin)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataRead, err)
	}

	handler, err := c.mediaTypeFor(origin)
	if err != nil {
		return nil, err
	}
	document, err := handler(data)
	if err != nil {
		return nil, err
	}

	c.documents[origin] = document
	return document, nil
}

// getURLScheme extracts the scheme component of a URL string.
func getURLScheme(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return ""
	}
	return parsed.Scheme
}
