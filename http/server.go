// Package http provides the upload surface for the extractor: a
// single-page upload form, a multipart extraction endpoint that
// returns the mailing report as a text download, and a health probe.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/fwojciec/donorlist"
	"github.com/fwojciec/donorlist/pdf"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// MaxUploadSize caps uploads at 50 MB.
const MaxUploadSize = 50 << 20

// ShutdownTimeout is the time allowed for graceful shutdown.
const ShutdownTimeout = 5 * time.Second

// pdfMagic is the mandatory header of every PDF document.
var pdfMagic = []byte("%PDF-")

// Server serves the donor email extraction upload interface.
type Server struct {
	server *http.Server

	// Addr is the bind address. Set before calling Open().
	Addr string

	Service donorlist.ExtractionService
	Logger  *slog.Logger
}

// NewServer returns a Server wired to the given extraction service.
func NewServer(service donorlist.ExtractionService, logger *slog.Logger) *Server {
	return &Server{
		Service: service,
		Logger:  logger,
	}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/health", s.handleHealth)
	r.Post("/extract", s.handleExtract)

	return r
}

// Open starts the server and blocks until it stops.
func (s *Server) Open() error {
	s.server = &http.Server{
		Addr:              s.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Close gracefully stops the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = io.WriteString(w, indexHTML)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleExtract accepts one PDF as multipart form data and responds
// with the mailing report as a text attachment.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	uploadID := uuid.NewString()

	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	if err := r.ParseMultipartForm(MaxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "O ficheiro excede o limite de 50 MB ou o pedido é inválido.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Nenhum ficheiro enviado.")
		return
	}
	defer file.Close()

	var magic [5]byte
	if n, _ := file.ReadAt(magic[:], 0); n < len(magic) || !bytes.Equal(magic[:], pdfMagic) {
		writeError(w, http.StatusBadRequest, "Apenas ficheiros PDF são permitidos.")
		return
	}

	if hash, err := pdf.ContentHash(file, header.Size); err == nil {
		s.Logger.Info("upload received",
			"upload_id", uploadID,
			"file", header.Filename,
			"size", header.Size,
			"hash", hash,
		)
	}

	extraction, err := s.Service.Extract(r.Context(), file, header.Size)
	if err != nil {
		s.Logger.Error("extraction failed",
			"upload_id", uploadID,
			"code", donorlist.ErrorCode(err),
			"error", donorlist.ErrorMessage(err),
		)
		writeError(w, ErrorStatusCode(donorlist.ErrorCode(err)),
			"Não foi possível extrair dados do ficheiro. Verifique se a estrutura do documento está correta.")
		return
	}

	filename := fmt.Sprintf("emails_mailing_%s.txt", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = io.WriteString(w, extraction.Report)
}

// codes maps application error codes to HTTP status codes.
var codes = map[string]int{
	donorlist.EINVALID:    http.StatusBadRequest,
	donorlist.EEMPTY:      http.StatusUnprocessableEntity,
	donorlist.EEXTRACTION: http.StatusUnprocessableEntity,
	donorlist.EINTERNAL:   http.StatusInternalServerError,
}

// ErrorStatusCode returns the HTTP status code for an application
// error code.
func ErrorStatusCode(code string) int {
	if v, ok := codes[code]; ok {
		return v
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
