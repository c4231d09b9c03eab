/*
 * client.go, part of atomphys.
 *
 *
 * Copyright 2024 The atomphys authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package nist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"time"
)

//Default addresses of the NIST Atomic Spectra Database.
const (
	StatesURL = "https://physics.nist.gov/cgi-bin/ASD/energy1.pl"
	LinesURL  = "https://physics.nist.gov/cgi-bin/ASD/lines1.pl"
)

//Record is one row of a reply, keyed by column name.
type Record map[string]string

//Client fetches levels and lines from the ASD. The zero value is not usable, use NewClient.
type Client struct {
	HTTP      *http.Client
	StatesURL string
	LinesURL  string
	Cache     Cache //may be nil
	Retries   int
	Backoff   time.Duration //wait before the first retry, doubled after each one.
	Logger    *slog.Logger
}

//NewClient returns a client for the public ASD, using the given cache, which can be nil.
func NewClient(cache Cache) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: 60 * time.Second},
		StatesURL: StatesURL,
		LinesURL:  LinesURL,
		Cache:     cache,
		Retries:   3,
		Backoff:   time.Second,
		Logger:    slog.Default(),
	}
}

func (C *Client) log() *slog.Logger {
	if C.Logger == nil {
		return slog.Default()
	}
	return C.Logger
}

//FetchStates returns the energy levels of a spectrum, like "Rb I" or "Ca II".
//If refresh is true, the cache is not read, but it is still written.
func (C *Client) FetchStates(ctx context.Context, spectrum string, refresh bool) ([]Record, error) {
	values := url.Values{
		"spectrum":          {spectrum},
		"units":             {"2"}, //Ry
		"format":            {"3"}, //tab separated
		"multiplet_ordered": {"1"},
		"term_out":          {"on"},
		"conf_out":          {"on"},
		"level_out":         {"on"},
		"unc_out":           {"0"},
		"j_out":             {"on"},
		"g_out":             {"on"},
		"lande_out":         {"off"},
	}
	recs, err := C.fetch(ctx, C.StatesURL, values, spectrum+" states", refresh, nil)
	return recs, errDecorate(err, "FetchStates")
}

//FetchTransitions returns the lines of a spectrum that have a known transition probability.
//If refresh is true, the cache is not read, but it is still written.
func (C *Client) FetchTransitions(ctx context.Context, spectrum string, refresh bool) ([]Record, error) {
	values := url.Values{
		"spectra":     {spectrum},
		"format":      {"3"},
		"en_unit":     {"2"}, //Ry
		"line_out":    {"2"}, //only lines with level classifications
		"show_av":     {"5"},
		"allowed_out": {"1"},
		"forbid_out":  {"1"},
		"enrg_out":    {"on"},
		"term_out":    {"on"},
		"J_out":       {"on"},
		"no_spaces":   {"on"},
	}
	withA := func(r Record) bool { return r["Aki(s^-1)"] != "" }
	recs, err := C.fetch(ctx, C.LinesURL, values, spectrum+" transitions", refresh, withA)
	return recs, errDecorate(err, "FetchTransitions")
}

//fetch returns the rows of a query, from the cache if possible. Rows for which keep
//returns false are dropped before caching.
func (C *Client) fetch(ctx context.Context, base string, values url.Values, key string, refresh bool, keep func(Record) bool) ([]Record, error) {
	log := C.log().With("key", key)
	if C.Cache != nil && !refresh {
		data, ok, err := C.Cache.Get(ctx, key)
		if err != nil {
			log.Warn("cache read failed", "error", err)
		}
		if ok {
			var recs []Record
			if err := json.Unmarshal(data, &recs); err == nil {
				log.Debug("cache hit", "rows", len(recs))
				return recs, nil
			}
			log.Warn("ignoring corrupt cache entry")
		}
	}
	body, plain, err := C.get(ctx, base+"?"+values.Encode(), log)
	if err != nil {
		return nil, err
	}
	recs := []Record{}
	//With no data, the ASD answers with an HTML page instead of text.
	if plain {
		recs, err = DecodeTSV(body)
		if err != nil {
			return nil, errDecorate(err, "fetch")
		}
	} else {
		log.Info("no data for query")
	}
	if keep != nil {
		kept := recs[:0]
		for _, r := range recs {
			if keep(r) {
				kept = append(kept, r)
			}
		}
		recs = kept
	}
	log.Info("fetched", "rows", len(recs))
	if C.Cache != nil {
		data, err := json.Marshal(recs)
		if err == nil {
			err = C.Cache.Put(ctx, key, data)
		}
		if err != nil {
			log.Warn("cache write failed", "error", err)
		}
	}
	return recs, nil
}

//get performs a GET, retrying on network errors and 5xx replies with exponential backoff.
//It returns the body and whether it is plain text.
func (C *Client) get(ctx context.Context, u string, log *slog.Logger) (io.Reader, bool, error) {
	hc := C.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	wait := C.Backoff
	var lastErr error
	for attempt := 0; attempt <= C.Retries; attempt++ {
		if attempt > 0 {
			log.Warn("retrying", "attempt", attempt, "wait", wait, "error", lastErr)
			select {
			case <-ctx.Done():
				return nil, false, ctx.Err()
			case <-time.After(wait):
			}
			wait *= 2
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, false, fmt.Errorf("nist: create request: %w", err)
		}
		resp, err := hc.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, false, ctx.Err()
			}
			lastErr = err
			continue
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		switch {
		case resp.StatusCode >= 500:
			lastErr = newError(ErrStatus, "get", "%s", resp.Status)
			continue
		case resp.StatusCode != http.StatusOK:
			return nil, false, newError(ErrStatus, "get", "%s", resp.Status)
		}
		ct, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
		return bytes.NewReader(body), ct == "text/plain", nil
	}
	return nil, false, fmt.Errorf("nist: giving up after %d attempts: %w", C.Retries+1, lastErr)
}
