// Package server provides the script upload demo server: authors post DOCX
// lecture scripts and get back the planned page structure, with the latest
// plan kept on disk for download.
package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tsawler/pagina/docx"
	"github.com/tsawler/pagina/engine"
	"github.com/tsawler/pagina/model"
)

// Output file names inside Config.OutputDir.
const (
	resultFile = "latest_result.json"
	reportFile = "latest_report.txt"
)

// FileResult is the pagination outcome for one uploaded script.
type FileResult struct {
	// Filename is the uploaded file's name
	Filename string `json:"filename"`

	// Result is the page plan; nil when the file failed
	Result *model.Result `json:"result,omitempty"`

	// Directives are author page directives found in the script
	Directives []docx.Directive `json:"directives,omitempty"`

	// Error describes why the file was rejected, if it was
	Error string `json:"error,omitempty"`
}

// UploadResponse is the reply to one upload request.
type UploadResponse struct {
	Files []FileResult `json:"files"`
}

// Server handles script uploads.
type Server struct {
	cfg    Config
	engine *engine.Engine
	log    *slog.Logger

	mu sync.Mutex // guards the output files
}

// New builds a Server. A nil logger falls back to slog.Default.
func New(cfg Config, eng *engine.Engine, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{cfg: cfg, engine: eng, log: log}
}

// Routes returns the server's HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /result", s.handleDownload(resultFile, "application/json"))
	mux.HandleFunc("GET /report", s.handleDownload(reportFile, "text/plain; charset=utf-8"))
	mux.HandleFunc("GET /healthz", s.handleHealth)
	return mux
}

// indexPage is the minimal upload form authors use without tooling.
const indexPage = `<!DOCTYPE html>
<html lang="zh">
<head><meta charset="utf-8"><title>pagina 讲稿分页</title></head>
<body>
<h1>讲稿分页</h1>
<form action="/upload" method="post" enctype="multipart/form-data">
  <input type="file" name="files" accept=".docx" multiple>
  <button type="submit">上传并分页</button>
</form>
<p><a href="/result">最新结果 (JSON)</a> | <a href="/report">最新报告</a></p>
</body>
</html>
`

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, indexPage)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":         "ok",
		"engine_version": engine.Version,
	})
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	limit := s.cfg.MaxFileSize*int64(s.cfg.MaxFiles) + 1<<20
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		s.log.Warn("rejecting upload", "error", err)
		http.Error(w, "malformed multipart request", http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		http.Error(w, "no files in upload", http.StatusBadRequest)
		return
	}
	if len(files) > s.cfg.MaxFiles {
		http.Error(w, fmt.Sprintf("too many files: %d, limit %d", len(files), s.cfg.MaxFiles), http.StatusBadRequest)
		return
	}

	resp := UploadResponse{Files: make([]FileResult, 0, len(files))}
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			resp.Files = append(resp.Files, FileResult{
				Filename: fh.Filename,
				Error:    fmt.Sprintf("opening upload: %v", err),
			})
			continue
		}
		resp.Files = append(resp.Files, s.paginateUpload(r, fh.Filename, f))
		f.Close()
	}

	if err := s.persist(resp); err != nil {
		s.log.Error("persisting results", "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleDownload(name, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mu.Lock()
		data, err := os.ReadFile(filepath.Join(s.cfg.OutputDir, name))
		s.mu.Unlock()
		if err != nil {
			http.Error(w, "no result available yet", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", contentType)
		w.Write(data)
	}
}

// persist writes the latest result and a readable report to the output
// directory, replacing the previous ones.
func (s *Server) persist(resp UploadResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	if err := os.WriteFile(filepath.Join(s.cfg.OutputDir, resultFile), data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	report := buildReport(resp)
	if err := os.WriteFile(filepath.Join(s.cfg.OutputDir, reportFile), []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// paginateUpload parses one uploaded DOCX and runs the engine over it.
func (s *Server) paginateUpload(r *http.Request, filename string, file io.Reader) FileResult {
	fr := FileResult{Filename: filename}

	if !strings.EqualFold(filepath.Ext(filename), ".docx") {
		fr.Error = "only .docx files are accepted"
		return fr
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxFileSize+1))
	if err != nil {
		fr.Error = fmt.Sprintf("reading upload: %v", err)
		return fr
	}
	if int64(len(data)) > s.cfg.MaxFileSize {
		fr.Error = fmt.Sprintf("file exceeds the %d byte limit", s.cfg.MaxFileSize)
		return fr
	}

	reader, err := docx.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		fr.Error = fmt.Sprintf("parsing docx: %v", err)
		return fr
	}

	script, directives := docx.StripDirectives(reader.Script())
	fr.Directives = directives

	result, err := s.engine.PaginateLines(r.Context(), script)
	if err != nil {
		fr.Error = fmt.Sprintf("paginating: %v", err)
		return fr
	}
	fr.Result = result

	s.log.Info("paginated script",
		"file", filename,
		"pages", result.Stats.TotalPages,
		"avg_chars", result.Stats.AvgChars)
	return fr
}
