package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/neilotoole/slogt"
	"github.com/stretchr/testify/require"

	"msgboard/src/models"
)

func TestClient_ListAll_OK(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/text/all" {
			t.Errorf("Got path %q, want /text/all", r.URL.Path)
		}
		if r.Method != http.MethodGet {
			t.Errorf("Got method %q, want GET", r.Method)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id": "1", "_created_at": "2023-01-01T00:00:00Z", "_updated_at": "2023-01-01T00:00:00Z", "_user_id": "u1", "text": "hello"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, slogt.New(t))
	msgs, terr := c.ListAll(context.Background())

	req.Nil(terr)
	req.Len(msgs, 1)
	req.Equal("hello", msgs[0].Text)
	req.Equal("u1", msgs[0].UserID)
}

func TestClient_ListAll_BadStatus(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, slogt.New(t))
	msgs, terr := c.ListAll(context.Background())

	req.Nil(msgs)
	var statusErr *models.BadStatusError
	req.ErrorAs(terr, &statusErr)
	req.Equal(500, statusErr.Code)
}

func TestClient_ListAll_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "NotJSON", body: `not json`},
		{name: "NotAnArray", body: `{"messages": []}`},
		{name: "MissingField", body: `[{"id": "1"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second, slogt.New(t))
			msgs, terr := c.ListAll(context.Background())

			req.Nil(msgs)
			var bodyErr *models.BadBodyError
			req.ErrorAs(terr, &bodyErr)
			req.NotEmpty(bodyErr.Message)
		})
	}
}

func TestClient_ListAll_Timeout(t *testing.T) {
	req := require.New(t)

	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, 20*time.Millisecond, slogt.New(t))
	msgs, terr := c.ListAll(context.Background())

	req.Nil(msgs)
	var timeoutErr *models.TimeoutError
	req.ErrorAs(terr, &timeoutErr)
}

func TestClient_ListAll_NetworkError(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing is listening anymore

	c := NewClient(url, time.Second, slogt.New(t))
	msgs, terr := c.ListAll(context.Background())

	req.Nil(msgs)
	var netErr *models.NetworkError
	req.ErrorAs(terr, &netErr)
}

func TestClient_ListAll_BadURL(t *testing.T) {
	req := require.New(t)

	c := NewClient("://not-a-url", time.Second, slogt.New(t))
	msgs, terr := c.ListAll(context.Background())

	req.Nil(msgs)
	var urlErr *models.BadURLError
	req.ErrorAs(terr, &urlErr)
	req.Equal("://not-a-url/text/all", urlErr.URL)
}
