package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
)

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(mock.TestingT) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// FakeFetcher serves canned payloads by url and records every call.
// Urls without a payload behave like a failed request.
type FakeFetcher struct {
	mu     sync.Mutex
	JSON   map[string]any
	Text   map[string]string
	Panics map[string]bool
	Calls  []string
}

// NewFakeFetcher creates an empty fetcher.
func NewFakeFetcher() *FakeFetcher {
	return &FakeFetcher{
		JSON:   map[string]any{},
		Text:   map[string]string{},
		Panics: map[string]bool{},
	}
}

// SetJSONString decodes the payload the same way the real client does.
func (f *FakeFetcher) SetJSONString(url string, payload string) {
	var data any
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		panic(fmt.Sprintf("invalid test payload for %s: %v", url, err))
	}
	f.JSON[url] = data
}

func (f *FakeFetcher) FetchJSON(ctx context.Context, url string) (any, bool) {
	f.record(url)
	if f.Panics[url] {
		panic("unexpected payload for " + url)
	}
	data, ok := f.JSON[url]
	return data, ok
}

func (f *FakeFetcher) FetchText(ctx context.Context, url string) (string, bool) {
	f.record(url)
	text, ok := f.Text[url]
	return text, ok
}

// CallCount returns how many times the url was requested.
func (f *FakeFetcher) CallCount(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := 0
	for _, call := range f.Calls {
		if call == url {
			count++
		}
	}
	return count
}

func (f *FakeFetcher) record(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, url)
}
