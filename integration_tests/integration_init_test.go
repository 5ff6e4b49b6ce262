package integrationtest

import (
	"net/http"
	"net/http/httptest"
	"sync"
)

const testAPIKey = "test_api_key"

type MockResponse struct {
	Code int
	Body string
}

// owmStub records the q parameter of every request it serves.
type owmStub struct {
	mu      sync.Mutex
	queries []string
}

func (s *owmStub) Queries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.queries...)
}

func (s *owmStub) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queries = nil
}

var mockResponses = map[string]MockResponse{
	"London,GB": {
		Code: http.StatusOK,
		Body: `{"coord":{"lon":-0.13,"lat":51.51},"weather":[{"id":800,"main":"Clear","description":"clear sky","icon":"01d"}],"main":{"temp":15.0,"feels_like":14.2,"pressure":1012,"humidity":60},"wind":{"speed":3.2,"deg":250},"name":"London","cod":200}`,
	},
	"Reykjavik,IS": {
		Code: http.StatusOK,
		Body: `{"weather":[{"description":"tornado"}],"main":{"temp":-0.1,"pressure":990.5,"humidity":93.2},"wind":{"speed":17.44},"name":"Reykjavik"}`,
	},
	"Broken,XX": {
		Code: http.StatusOK,
		Body: `{"name":"Broken","main":{"temp":1}}`,
	},
}

func mockOWMApi(stub *owmStub) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		stub.mu.Lock()
		stub.queries = append(stub.queries, q)
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("appid") != testAPIKey {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
			return
		}
		resp, ok := mockResponses[q]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		w.WriteHeader(resp.Code)
		_, _ = w.Write([]byte(resp.Body))
	}))
}
