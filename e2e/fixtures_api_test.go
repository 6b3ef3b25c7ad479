//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
)

// api serves the fixture countries for every test in the package
var api *httptest.Server

type fixtureCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	Flags struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
	Population uint64              `json:"population"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Capital    []string            `json:"capital"`
	Code       string              `json:"cca3"`
	Languages  map[string]string   `json:"languages"`
	Currencies map[string]currency `json:"currencies"`
	Borders    []string            `json:"borders"`
	Timezones  []string            `json:"timezones"`
}

type currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

func country(common, official, code, region, subregion, capital string, pop uint64) fixtureCountry {
	var c fixtureCountry
	c.Name.Common = common
	c.Name.Official = official
	c.Code = code
	c.Region = region
	c.Subregion = subregion
	c.Capital = []string{capital}
	c.Population = pop
	c.Flags.SVG = "https://flagcdn.com/" + strings.ToLower(code) + ".svg"
	return c
}

func fixtureCountries() []fixtureCountry {
	japan := country("Japan", "Japan", "JPN", "Asia", "Eastern Asia", "Tokyo", 125836021)
	japan.Languages = map[string]string{"jpn": "Japanese"}
	japan.Currencies = map[string]currency{"JPY": {Name: "Japanese yen", Symbol: "¥"}}
	japan.Timezones = []string{"UTC+09:00"}

	france := country("France", "French Republic", "FRA", "Europe", "Western Europe", "Paris", 67391582)
	france.Languages = map[string]string{"fra": "French"}
	france.Currencies = map[string]currency{"EUR": {Name: "Euro", Symbol: "€"}}
	france.Borders = []string{"BEL", "DEU"}
	france.Timezones = []string{"UTC+01:00"}

	belgium := country("Belgium", "Kingdom of Belgium", "BEL", "Europe", "Western Europe", "Brussels", 11555997)
	belgium.Borders = []string{"FRA"}

	kenya := country("Kenya", "Republic of Kenya", "KEN", "Africa", "Eastern Africa", "Nairobi", 53771300)

	return []fixtureCountry{japan, france, belgium, kenya}
}

func newFixtureServer() *httptest.Server {
	all := fixtureCountries()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v3.1/all", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, all)
	})
	mux.HandleFunc("GET /v3.1/name/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := strings.ToLower(r.PathValue("name"))
		exact := r.URL.Query().Get("fullText") == "true"
		var out []fixtureCountry
		for _, c := range all {
			common := strings.ToLower(c.Name.Common)
			if (exact && common == name) || (!exact && strings.Contains(common, name)) {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, out)
	})
	mux.HandleFunc("GET /v3.1/region/{region}", func(w http.ResponseWriter, r *http.Request) {
		var out []fixtureCountry
		for _, c := range all {
			if strings.EqualFold(c.Region, r.PathValue("region")) {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
			return
		}
		writeJSON(w, out)
	})
	mux.HandleFunc("GET /v3.1/alpha/{code}", func(w http.ResponseWriter, r *http.Request) {
		for _, c := range all {
			if strings.EqualFold(c.Code, r.PathValue("code")) {
				writeJSON(w, []fixtureCountry{c})
				return
			}
		}
		http.Error(w, `{"status":404,"message":"Not Found"}`, http.StatusNotFound)
	})

	return httptest.NewServer(mux)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// apiURL is the base URL the app under test talks to
func apiURL() string {
	return api.URL + "/v3.1"
}
