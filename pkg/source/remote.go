package source

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"

	"github.com/darkclainer/ordbok/pkg/parser"
	"github.com/gammazero/workerpool"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnexpectedStatus = errors.New("unexpected response code")

type Config struct {
	// ExtraHeader specifies what header will be added to each request
	ExtraHeader map[string]string
	// MaxWorkers specifies how many worker parse fetched sheets
	// Zero value mean that it will be equal to number of logical CPU
	MaxWorkers int
}

// Remote fetches sheets over HTTP. It never retries and sets no timeout of
// its own; cancellation is left to the caller's context.
type Remote struct {
	client *http.Client
	config *Config
	pool   *workerpool.WorkerPool
	p      Parser
}

func NewRemote(client *http.Client, p Parser, config *Config) *Remote {
	if client == nil {
		client = &http.Client{}
	}
	if p == nil {
		p = &SheetParser{}
	}
	if config == nil {
		config = &Config{}
	}
	if config.MaxWorkers < 1 { // nolint:gomnd // if number not specified
		config.MaxWorkers = runtime.NumCPU()
	}
	return &Remote{
		client: client,
		config: config,
		pool:   workerpool.New(config.MaxWorkers),
		p:      p,
	}
}

// Fetch downloads the sheet behind sourceURL and parses it. Share links are
// rewritten to their CSV export first. HTML responses are read as published
// sheet tables.
func (q *Remote) Fetch(ctx context.Context, sourceURL string) ([]parser.Entry, error) {
	response, err := q.get(ctx, NormalizeSheetURL(sourceURL), http.StatusOK)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer response.Body.Close()

	parse := q.p.ParseCSV
	if isHTML(response.Header.Get("Content-Type")) {
		parse = q.p.ParseHTML
	}
	body := transform.NewReader(response.Body, unicode.BOMOverride(transform.Nop))

	var entries []parser.Entry
	// Use pool here, because big sheets are cpu bound to parse
	q.pool.SubmitWait(func() {
		entries, err = parse(body)
	})
	if err != nil {
		return nil, fmt.Errorf("can not parse sheet: %w", err)
	}
	return entries, nil
}

func isHTML(contentType string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(contentType)), "text/html")
}

func (q *Remote) get(ctx context.Context, urlGet string, expectedStatus int) (*http.Response, error) {
	request, err := q.newRequest(ctx, urlGet)
	if err != nil {
		return nil, fmt.Errorf("can not assemble request: %w", err)
	}
	response, err := q.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	if response.StatusCode != expectedStatus {
		response.Body.Close()
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, response.StatusCode)
	}
	return response, nil
}

func (q *Remote) newRequest(ctx context.Context, urlRequest string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlRequest, nil)
	if err != nil {
		return nil, fmt.Errorf("can not form request: %w", err)
	}
	for key, value := range q.config.ExtraHeader {
		req.Header.Add(key, value)
	}
	return req, nil
}

func (q *Remote) Close(ctx context.Context) error {
	q.client.CloseIdleConnections()
	q.pool.StopWait()
	return nil
}
