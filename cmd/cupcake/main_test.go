package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var fields map[string]interface{}
		if err := json.Unmarshal(body, &fields); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		fields["id"] = "123"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(fields)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func address() []string {
	return []string{"-name", "Niamh", "-street", "3 Shop St", "-city", "Cork", "-eircode", "T12 X2Y3"}
}

func TestRun_PlacesOrder(t *testing.T) {
	chdir(t, t.TempDir())
	srv := echoServer(t)

	args := append([]string{"-endpoint", srv.URL, "-flavor", "chocolate", "-quantity", "3", "-special", "-frosting", "-sprinkles"}, address()...)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, &out))

	assert.Contains(t, out.String(), "Your total is: €11.50")
	assert.Contains(t, out.String(), "Thank you!")
	assert.Contains(t, out.String(), "Your order for 3x chocolate cupcakes is on its way!")
}

func TestRun_ToppingsNeedSpecialRequest(t *testing.T) {
	chdir(t, t.TempDir())
	srv := echoServer(t)

	args := append([]string{"-endpoint", srv.URL, "-flavor", "0", "-frosting", "-sprinkles"}, address()...)
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), args, &out))

	assert.Contains(t, out.String(), "Your total is: €6.00")
	assert.Contains(t, out.String(), "Frosting:    no")
}

func TestRun_RefusesIncompleteAddress(t *testing.T) {
	chdir(t, t.TempDir())

	var out bytes.Buffer
	err := run(context.Background(), []string{"-endpoint", "http://127.0.0.1:1", "-name", " ", "-street", "s", "-city", "c", "-eircode", "e"}, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delivery details incomplete")
	assert.NotContains(t, out.String(), "Thank you!")
}

func TestRun_TransportFailure(t *testing.T) {
	chdir(t, t.TempDir())
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-endpoint", url}, address()...), &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Request Failed")
	assert.Contains(t, out.String(), "connection refused")
}

func TestRun_InvalidResponse(t *testing.T) {
	chdir(t, t.TempDir())
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":"Missing API key"}`))
	}))
	defer srv.Close()

	var out bytes.Buffer
	err := run(context.Background(), append([]string{"-endpoint", srv.URL}, address()...), &out)
	require.Error(t, err)
	assert.Contains(t, out.String(), "Invalid response from server")
	assert.NotContains(t, out.String(), "Thank you!")
}

func TestResolveFlavor(t *testing.T) {
	for in, want := range map[string]int{"0": 0, "3": 3, "Vanilla": 0, "strawberry": 1, "RAINBOW": 3} {
		got, err := resolveFlavor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, in := range []string{"4", "-1", "pistachio", ""} {
		_, err := resolveFlavor(in)
		assert.Error(t, err, in)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
