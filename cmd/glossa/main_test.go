package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/npillmayer/glossa/eval"
	"github.com/npillmayer/glossa/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const testConfig = `
trace = "Debug"
max-tokens = 12
prompt = "> "

[globals]
Pai = 3
Name = "Hoge"
Flag = true
`

func TestConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	conf := defaultConfig()
	if err := parseConfig([]byte(testConfig), conf); err != nil {
		t.Fatal(err)
	}
	if conf.Trace != "Debug" || conf.MaxTokens != 12 || conf.Prompt != "> " {
		t.Errorf("unexpected config %+v", conf)
	}
	if conf.Addr != ":8080" {
		t.Errorf("expected default address to survive, is %q", conf.Addr)
	}
	if err := conf.override(map[string]interface{}{"max-tokens": "20", "addr": ":9000"}); err != nil {
		t.Fatal(err)
	}
	if conf.MaxTokens != 20 || conf.Addr != ":9000" {
		t.Errorf("expected arguments to override config, have %+v", conf)
	}
	if err := conf.override(map[string]interface{}{"max-tokens": "many"}); err == nil {
		t.Errorf("expected error for non-numeric max-tokens")
	}
	engine := eval.NewEngine(nil)
	conf.define(engine)
	if v, ok := engine.Lookup("Pai"); !ok || !v.Equal(eval.Number(3)) {
		t.Errorf("expected global Pai = 3, have %v", v)
	}
	if v, ok := engine.Lookup("Flag"); !ok || !v.Equal(eval.Bool(true)) {
		t.Errorf("expected global Flag = yes, have %v", v)
	}
}

func TestConfigMaxTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	conf := defaultConfig()
	if err := parseConfig([]byte("max-tokens = 2"), conf); err != nil {
		t.Fatal(err)
	}
	if _, err := conf.newParser().Parse("mio prosactu lango"); err == nil {
		t.Errorf("expected configured limit of 2 words to reject 3 words")
	}
	conf.override(map[string]interface{}{"max-tokens": "3"})
	if _, err := conf.newParser().Parse("mio prosactu lango"); err != nil {
		t.Errorf("expected limit of 3 words from arguments to accept 3 words")
	}
	if _, err := defaultConfig().newParser().Parse("mio prosactu lango"); err != nil {
		t.Errorf("expected default limit to accept 3 words")
	}
}

func TestConfigErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	for _, input := range []string{
		"max-tokens = -1",
		"[globals]\nBad = [1, 2]",
		"trace = ",
	} {
		if err := parseConfig([]byte(input), defaultConfig()); err == nil {
			t.Errorf("expected error for config %q", input)
		}
	}
	if _, err := loadConfig("does-not-exist.toml"); err == nil {
		t.Errorf("expected error for missing config file")
	}
}

func TestRunScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	var out bytes.Buffer
	parser := syntax.NewParser()
	engine := eval.NewEngine(&out)
	script := `# assign and print
Fugoo estu 1o a*dnamu 2o kaknamu 3o;
mio qqqu yuo;
lu*ksciru ge*tu Fugoo`
	failed, err := runScript(script, parser, engine, false, &out)
	if err != nil {
		t.Fatal(err)
	}
	if failed != 1 {
		t.Errorf("expected 1 failed clause, have %d", failed)
	}
	output := out.String()
	for _, s := range []string{"= 7", "Fugoが", "mio qqqu yuo: no parse", "7\n"} {
		if !strings.Contains(output, s) {
			t.Errorf("expected output to contain %q, is\n%s", s, output)
		}
	}
}

func TestREPLCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	intp := &Intp{parser: syntax.NewParser(), engine: eval.NewEngine(nil)}
	if _, err := intp.Execute(":tree"); err == nil {
		t.Errorf("expected :tree to fail before anything has been parsed")
	}
	if _, err := intp.Execute("Fugoo estu 2o"); err != nil {
		t.Fatal(err)
	}
	if intp.last == nil {
		t.Errorf("expected last tree to be remembered")
	}
	if v, ok := intp.engine.Lookup("Fugo"); !ok || !v.Equal(eval.Number(2)) {
		t.Errorf("expected Fugo = 2, have %v", v)
	}
	for _, cmd := range []string{":tree", ":dump", ":vars", ":dict lu", ":ask Fugoo estu 2o", ":reset"} {
		if quit, err := intp.Execute(cmd); quit || err != nil {
			t.Errorf("command %s failed: %v", cmd, err)
		}
	}
	if _, ok := intp.engine.Lookup("Fugo"); ok {
		t.Errorf("expected :reset to clear Fugo")
	}
	if _, err := intp.Execute(":ask Fugoo estu 1o; Hogeo estu 2o"); err != nil {
		t.Fatal(err)
	}
	if v, ok := intp.engine.Lookup("Fugo"); ok {
		t.Errorf("expected questions not to assign, have Fugo = %v", v)
	}
	if _, ok := intp.engine.Lookup("Hoge"); ok {
		t.Errorf("expected questions not to assign Hoge")
	}
	if _, err := intp.Execute("Fugoo estu 1o; Hogeo estu 2o"); err != nil {
		t.Fatal(err)
	}
	if v, ok := intp.engine.Lookup("Hoge"); !ok || !v.Equal(eval.Number(2)) {
		t.Errorf("expected script to assign Hoge = 2, have %v", v)
	}
	if _, err := intp.Execute("mio qqqu yuo"); err == nil {
		t.Errorf("expected parse error")
	}
	if _, err := intp.Execute(":frobnicate"); err == nil {
		t.Errorf("expected error for unknown command")
	}
	if quit, _ := intp.Execute(":quit"); !quit {
		t.Errorf("expected :quit to quit")
	}
}

func post(t *testing.T, h http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	buff, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buff))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServeParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	h := newHandler(syntax.NewParser(), eval.NewEngine(nil))
	rec := post(t, h, "/api/parse", map[string]string{"text": "mio  prosactu lango"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, have %d", rec.Code)
	}
	var resp parseResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Format != "mio prosactu lango" || resp.Translation != "私が言葉を処理する" {
		t.Errorf("unexpected response %+v", resp)
	}
	if resp.Fingerprint == "" {
		t.Errorf("expected a fingerprint")
	}
	if rec := post(t, h, "/api/parse", map[string]string{"text": "xyz"}); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected status 422 for unparsable text, have %d", rec.Code)
	}
	if rec := post(t, h, "/api/parse", map[string]string{}); rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for missing text, have %d", rec.Code)
	}
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/parse", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405 for GET, have %d", rec.Code)
	}
}

func TestServeEval(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	h := newHandler(syntax.NewParser(), eval.NewEngine(nil))
	rec := post(t, h, "/api/eval", map[string]string{"text": "Fugoo estu 1o a*dnamu 2o; ge*tu Fugoo; xyz"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, have %d", rec.Code)
	}
	var resp evalResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, have %v", resp.Results)
	}
	if r := resp.Results[1]; !r.Parsed || !r.Valued || r.Value != "3" {
		t.Errorf("expected Fugo to be 3, have %+v", r)
	}
	if r := resp.Results[2]; r.Parsed || r.Valued {
		t.Errorf("expected xyz not to parse, have %+v", r)
	}
	rec = post(t, h, "/api/eval", map[string]interface{}{"text": "Fugoo estu 3o", "interrogative": true})
	json.NewDecoder(rec.Body).Decode(&resp)
	if r := resp.Results[0]; r.Value != "ne" {
		t.Errorf("expected question to answer ne, have %+v", r)
	}
}

func TestServeLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glossa.cli")
	defer teardown()
	//
	h := newHandler(syntax.NewParser(), eval.NewEngine(nil))
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/lookup?morpheme=mi", nil)
	req.Header.Set("Origin", "http://example.com")
	h.ServeHTTP(rec, req)
	var resp lookupResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusOK || resp.Gloss != "私" {
		t.Errorf("expected gloss 私, have %d %+v", rec.Code, resp)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS header, have %q", origin)
	}
	for query, status := range map[string]int{
		"morpheme=qq": http.StatusNotFound,
		"":            http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/lookup?"+query, nil))
		if rec.Code != status {
			t.Errorf("expected status %d for %q, have %d", status, query, rec.Code)
		}
	}
}
