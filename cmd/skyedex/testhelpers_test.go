package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
)

const pikachuJSON = `{
  "name": "pikachu",
  "types": [{"slot": 1, "type": {"name": "electric"}}],
  "stats": [
    {"base_stat": 35, "stat": {"name": "hp"}},
    {"base_stat": 55, "stat": {"name": "attack"}},
    {"base_stat": 40, "stat": {"name": "defense"}},
    {"base_stat": 50, "stat": {"name": "special-attack"}},
    {"base_stat": 50, "stat": {"name": "special-defense"}},
    {"base_stat": 90, "stat": {"name": "speed"}}
  ],
  "abilities": [
    {"slot": 3, "is_hidden": true, "ability": {"name": "lightning-rod"}},
    {"slot": 1, "is_hidden": false, "ability": {"name": "static"}}
  ]
}`

const waterJSON = `{
  "name": "water",
  "damage_relations": {
    "no_damage_from": [],
    "half_damage_from": [{"name": "steel"}, {"name": "fire"}, {"name": "water"}, {"name": "ice"}],
    "double_damage_from": [{"name": "grass"}, {"name": "electric"}],
    "no_damage_to": [],
    "half_damage_to": [{"name": "water"}, {"name": "grass"}, {"name": "dragon"}],
    "double_damage_to": [{"name": "ground"}, {"name": "rock"}, {"name": "fire"}]
  }
}`

const rockJSON = `{
  "name": "rock",
  "damage_relations": {
    "no_damage_from": [],
    "half_damage_from": [{"name": "normal"}, {"name": "flying"}, {"name": "poison"}, {"name": "fire"}],
    "double_damage_from": [{"name": "fighting"}, {"name": "ground"}, {"name": "steel"}, {"name": "water"}, {"name": "grass"}],
    "no_damage_to": [],
    "half_damage_to": [{"name": "fighting"}, {"name": "ground"}, {"name": "steel"}],
    "double_damage_to": [{"name": "flying"}, {"name": "bug"}, {"name": "fire"}, {"name": "ice"}]
  }
}`

const groundJSON = `{
  "name": "ground",
  "damage_relations": {
    "no_damage_from": [{"name": "electric"}],
    "half_damage_from": [{"name": "poison"}, {"name": "rock"}],
    "double_damage_from": [{"name": "water"}, {"name": "grass"}, {"name": "ice"}],
    "no_damage_to": [{"name": "flying"}],
    "half_damage_to": [{"name": "bug"}, {"name": "grass"}],
    "double_damage_to": [{"name": "poison"}, {"name": "rock"}, {"name": "steel"}, {"name": "fire"}, {"name": "electric"}]
  }
}`

const electricJSON = `{
  "name": "electric",
  "damage_relations": {
    "no_damage_from": [],
    "half_damage_from": [{"name": "flying"}, {"name": "steel"}, {"name": "electric"}],
    "double_damage_from": [{"name": "ground"}],
    "no_damage_to": [{"name": "ground"}],
    "half_damage_to": [{"name": "grass"}, {"name": "electric"}, {"name": "dragon"}],
    "double_damage_to": [{"name": "flying"}, {"name": "water"}]
  }
}`

const adamantJSON = `{
  "name": "adamant",
  "decreased_stat": {"name": "special-attack"},
  "increased_stat": {"name": "attack"}
}`

const hardyJSON = `{"name": "hardy", "decreased_stat": null, "increased_stat": null}`

// fakeAPI is a PokeAPI stand-in that counts requests.
type fakeAPI struct {
	server   *httptest.Server
	requests atomic.Int64
}

// newFakeAPI starts a server serving the fixture records.
// /pokemon/missingno answers 500.
func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()

	api := &fakeAPI{}
	mux := http.NewServeMux()
	serve := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, body)
		}
	}
	mux.HandleFunc("/pokemon/pikachu", serve(pikachuJSON))
	mux.HandleFunc("/pokemon/missingno", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	mux.HandleFunc("/type/water", serve(waterJSON))
	mux.HandleFunc("/type/rock", serve(rockJSON))
	mux.HandleFunc("/type/ground", serve(groundJSON))
	mux.HandleFunc("/type/electric", serve(electricJSON))
	mux.HandleFunc("/nature/adamant", serve(adamantJSON))
	mux.HandleFunc("/nature/hardy", serve(hardyJSON))

	api.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		api.requests.Add(1)
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(api.server.Close)
	return api
}

// writeConfig writes a configuration file into a temporary directory.
func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

// runCLI executes the root command with args followed by flags pointing
// at api, an empty configuration file and no cache.
func runCLI(t *testing.T, api *fakeAPI, args ...string) (string, string, error) {
	t.Helper()

	args = append(args,
		"--api-url="+api.server.URL,
		"--config="+writeConfig(t, ""),
		"--no-cache",
	)
	return execute(args...)
}

// execute runs the root command with exactly args.
func execute(args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
