package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/Zuo-Peng/chat-analyzer/internal/analyze"
	"github.com/Zuo-Peng/chat-analyzer/internal/config"
	"github.com/Zuo-Peng/chat-analyzer/internal/parse"
	"github.com/Zuo-Peng/chat-analyzer/internal/scan"
)

// session is one loaded transcript plus the settings that apply to it.
type session struct {
	cfg    *config.Config
	path   string
	corpus *parse.Corpus
	opts   analyze.Options
}

// loadSession resolves arg against the exports root, parses it and
// builds the analysis options.
func loadSession(arg string) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Path != "" {
		slog.Debug("config loaded", "path", cfg.Path)
	}

	path, err := scan.Resolve(arg, cfg.ExportsRoot)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	c, err := parse.ParseFile(path, cfg.ParseOptions()...)
	if err != nil {
		return nil, err
	}
	st := c.Stats()
	slog.Info("transcript parsed",
		"path", path,
		"messages", c.Len(),
		"lines", st.Lines,
		"continuations", st.Continuations,
		"preamble", len(c.Preamble()),
		"malformed", st.Malformed,
		"date_order", c.DateOrder().String(),
		"elapsed", time.Since(start),
	)
	if st.Malformed > 0 {
		slog.Warn("lines looked like headers but had invalid dates; kept as continuations",
			"path", path, "count", st.Malformed)
	}

	opts, err := cfg.AnalyzeOptions()
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, path: path, corpus: c, opts: opts}, nil
}

// scope validates a --user flag against the transcript's participants.
func (s *session) scope(user string) (analyze.Scope, error) {
	sc := analyze.ResolveScope(user, s.corpus)
	if sc.IsOverall() || slices.Contains(s.corpus.Participants(), user) {
		return sc, nil
	}
	return sc, fmt.Errorf("no participant named %q in %s", user, s.path)
}

func writeJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
