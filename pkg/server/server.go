package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/willbeason/newton-fractal/pkg/newton"
	"github.com/willbeason/newton-fractal/pkg/output"
	"github.com/willbeason/newton-fractal/pkg/raster"
)

// Config configures a Server.
type Config struct {
	// MaxPixels caps width*height of a single render.
	MaxPixels int

	// Workers per render, zero for one per CPU.
	Workers int

	// Static is a directory served at /. Empty disables it.
	Static string
}

// DefaultMaxPixels allows up to 4096x4096.
const DefaultMaxPixels = 4096 * 4096

// Server renders fractals for a browser front-end.
//
//	GET /render.png  one PNG, parameters in the query string
//	GET /variants    the built-in variants as JSON
//	GET /ws          WebSocket: JSON Request in, binary RGBA buffer out
type Server struct {
	cfg Config
	mux *http.ServeMux
}

func New(cfg Config) *Server {
	if cfg.MaxPixels <= 0 {
		cfg.MaxPixels = DefaultMaxPixels
	}

	s := &Server{cfg: cfg, mux: http.NewServeMux()}
	s.mux.HandleFunc("/render.png", s.renderPNG)
	s.mux.HandleFunc("/variants", s.variants)
	s.mux.HandleFunc("/ws", s.serveWebsocket)
	if cfg.Static != "" {
		s.mux.Handle("/", staticHandler(cfg.Static))
	}

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) renderPNG(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, v, err := req.resolve(s.cfg.MaxPixels, s.cfg.Workers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	start := time.Now()
	img, err := raster.Image(r.Context(), p, v)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Printf("rendered %s %dx%d a=%g in %s", v.Name, p.Width, p.Height, p.A, time.Since(start))

	w.Header().Set("Content-Type", "image/png")
	if err := output.WritePNG(w, img, 1); err != nil {
		log.Printf("writing png: %v", err)
	}
}

type variantInfo struct {
	Name          string  `json:"name"`
	Roots         int     `json:"roots"`
	MaxIterations int     `json:"maxIterations"`
	Scale         float64 `json:"scale"`
	Coloring      string  `json:"coloring"`
}

func (s *Server) variants(w http.ResponseWriter, _ *http.Request) {
	var infos []variantInfo
	for _, v := range newton.Variants() {
		infos = append(infos, variantInfo{
			Name:          v.Name,
			Roots:         len(v.Roots),
			MaxIterations: v.MaxIterations,
			Scale:         v.Scale,
			Coloring:      v.Coloring.Name(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(infos); err != nil {
		log.Printf("writing variants: %v", err)
	}
}

type errorMessage struct {
	Error string `json:"error"`
}

// serveWebsocket answers every JSON Request with one binary message holding the RGBA buffer,
// or a JSON errorMessage if the request is invalid.
func (s *Server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	ctx := r.Context()
	for {
		_, msg, err := c.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != websocket.StatusNormalClosure && !errors.Is(err, context.Canceled) {
				log.Printf("websocket read: %v", err)
			}
			return
		}

		// Bad JSON is answered like any other invalid request and keeps the connection open.
		var buf []byte
		var req Request
		if err = json.Unmarshal(msg, &req); err != nil {
			err = fmt.Errorf("decoding request: %w", err)
		} else {
			buf, err = s.renderBuffer(ctx, req)
		}
		if err != nil {
			if err := wsjson.Write(ctx, c, errorMessage{Error: err.Error()}); err != nil {
				log.Printf("websocket write: %v", err)
				return
			}
			continue
		}

		if err := c.Write(ctx, websocket.MessageBinary, buf); err != nil {
			log.Printf("websocket write: %v", err)
			return
		}
	}
}

func (s *Server) renderBuffer(ctx context.Context, req Request) ([]byte, error) {
	p, v, err := req.resolve(s.cfg.MaxPixels, s.cfg.Workers)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	buf := make([]byte, p.BufferSize())
	if err := raster.RenderContext(ctx, buf, p, v); err != nil {
		return nil, err
	}
	log.Printf("rendered %s %dx%d a=%g in %s", v.Name, p.Width, p.Height, p.A, time.Since(start))

	return buf, nil
}

// staticHandler serves dir, labelling WebAssembly modules so browsers can stream-compile them.
func staticHandler(dir string) http.Handler {
	files := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, ".wasm") {
			w.Header().Set("Content-Type", "application/wasm")
		}
		files.ServeHTTP(w, r)
	})
}
