package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pycc/internal/diag"
	"pycc/internal/driver"
	"pycc/internal/emit"
)

// Server — JSON-оболочка над конвертером: по одному маршруту на
// целевой диалект плюс справка о поддерживаемом подмножестве.
type Server struct {
	cfg Config
	log *log.Logger
}

func New(cfg Config, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: cfg.withDefaults(), log: logger}
}

// ConvertRequest — тело POST-запросов конвертации.
type ConvertRequest struct {
	PythonCode string `json:"python_code"`
}

// ConvertResponse — успешный ответ конвертации.
type ConvertResponse struct {
	ConvertedCode string   `json:"converted_code"`
	Warnings      []string `json:"warnings"`
}

// ErrorResponse — тело любого неуспешного ответа.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Handler собирает маршрутизатор с CORS-обёрткой.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /convert-to-c", s.convertTo(emit.CProfile{}))
	mux.HandleFunc("POST /convert-to-cpp", s.convertTo(emit.CppProfile{}))
	mux.HandleFunc("GET /supported-features", s.supportedFeatures)
	return s.cors(mux)
}

// ListenAndServe запускает сервер на адресе из конфигурации.
func (s *Server) ListenAndServe() error {
	s.log.Printf("listening on %s", s.cfg.Addr)
	return http.ListenAndServe(s.cfg.Addr, s.Handler())
}

func (s *Server) convertTo(prof emit.Profile) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxRequestSize)

		var req ConvertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PythonCode == "" {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "No Python code provided"})
			return
		}

		res, err := driver.ConvertSource("request.py", []byte(req.PythonCode), prof,
			driver.Options{MaxDiagnostics: s.cfg.MaxDiagnostics})
		switch {
		case errors.Is(err, driver.ErrInvalidSource):
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: firstError(res.Bag)})
			return
		case err != nil:
			s.log.Printf("convert-to-%s: %v", prof.Name(), err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}

		warnings := make([]string, 0, res.Bag.Len())
		for _, d := range res.Bag.Items() {
			warnings = append(warnings, d.Message)
		}
		writeJSON(w, http.StatusOK, ConvertResponse{
			ConvertedCode: res.Code,
			Warnings:      warnings,
		})
	}
}

func (s *Server) supportedFeatures(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"features": {
			"Basic data types (int, float, str, bool)",
			"Control structures (if/else, for, while)",
			"Function definitions",
			"Basic I/O operations",
			"Variable declarations and assignments",
			"Arithmetic operations",
			"Comparison operations",
			"Logical operations",
		},
	})
}

// cors добавляет заголовки для источников из белого списка и
// отвечает на preflight-запросы.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && s.originAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) originAllowed(origin string) bool {
	for _, allowed := range s.cfg.AllowedOrigins {
		if origin == allowed {
			return true
		}
	}
	return false
}

func firstError(bag *diag.Bag) string {
	for _, d := range bag.Items() {
		if d.Severity == diag.SevError {
			return d.Code.ID() + ": " + d.Message
		}
	}
	return "invalid source"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}
