package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/npillmayer/glossa/eval"
	"github.com/npillmayer/glossa/scanner"
	"github.com/npillmayer/glossa/syntax"
	"github.com/rs/cors"
)

// ---- JSON response types ------------------------------------------------

type parseResponse struct {
	Text        string `json:"text"`
	Format      string `json:"format"`
	Translation string `json:"translation"`
	Tree        string `json:"tree"`
	Fingerprint string `json:"fingerprint"`
}

type clauseResult struct {
	Clause string `json:"clause"`
	Parsed bool   `json:"parsed"`
	Value  string `json:"value,omitempty"`
	Valued bool   `json:"valued"`
}

type evalResponse struct {
	Results []clauseResult `json:"results"`
}

type lookupResponse struct {
	Morpheme string `json:"morpheme"`
	Gloss    string `json:"gloss"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		tracer().Errorf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleParse(parser *syntax.Parser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		tree, err := parser.Parse(body.Text)
		if errors.Is(err, syntax.ErrNoParse) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		fp, err := syntax.Fingerprint(tree)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, parseResponse{
			Text:        body.Text,
			Format:      syntax.Format(tree),
			Translation: syntax.Translate(tree, parser.Dictionary()),
			Tree:        tree.String(),
			Fingerprint: fp,
		})
	}
}

func handleEval(parser *syntax.Parser, engine *eval.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text          string `json:"text"`
			Interrogative bool   `json:"interrogative"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}
		clauses, err := scanner.Clauses(body.Text)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		out := make([]clauseResult, 0, len(clauses))
		for _, clause := range clauses {
			res := clauseResult{Clause: clause.Text()}
			if tree, err := parser.Parse(res.Clause); err == nil {
				res.Parsed = true
				var v eval.Value
				if body.Interrogative {
					v, res.Valued = engine.Ask(tree)
				} else {
					v, res.Valued = engine.Eval(tree)
				}
				if res.Valued {
					res.Value = v.String()
				}
			}
			out = append(out, res)
		}
		writeJSON(w, http.StatusOK, evalResponse{Results: out})
	}
}

func handleLookup(parser *syntax.Parser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		m := r.URL.Query().Get("morpheme")
		if m == "" {
			writeError(w, http.StatusBadRequest, "missing 'morpheme' query parameter")
			return
		}
		dict := parser.Dictionary()
		status := http.StatusOK
		if !dict.Has(m) {
			status = http.StatusNotFound
		}
		writeJSON(w, status, lookupResponse{Morpheme: m, Gloss: dict.Lookup(m)})
	}
}

// ---- server -------------------------------------------------------------

func newHandler(parser *syntax.Parser, engine *eval.Engine) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/parse", handleParse(parser))
	mux.HandleFunc("/api/eval", handleEval(parser, engine))
	mux.HandleFunc("/api/lookup", handleLookup(parser))
	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func execServe(conf *Config, parser *syntax.Parser, engine *eval.Engine) int {
	tracer().Infof("listening on %s", conf.Addr)
	if err := http.ListenAndServe(conf.Addr, newHandler(parser, engine)); err != nil {
		tracer().Errorf("server error: %v", err)
		return 1
	}
	return 0
}
