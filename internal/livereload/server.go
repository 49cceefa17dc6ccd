package livereload

import (
	"context"
	"log"
	"net/http"
	"sync"

	"github.com/coder/websocket"
)

// Path is where the Server accepts reload websocket connections.
const Path = "/.livereload"

// Server serves a generated site over HTTP and pushes reload
// notifications to connected browsers over a websocket.
type Server struct {
	// Logger for connection events. Required.
	Logger *log.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// Handler serves the site at dir, with the reload websocket
// registered at [Path].
func (s *Server) Handler(dir string) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(Path, http.HandlerFunc(s.serveWS))
	mux.Handle("/", http.FileServer(http.Dir(dir)))
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.Logger.Printf("Websocket accept: %v", err)
		return
	}

	s.register(conn)
	defer s.unregister(conn)

	// Block until the browser goes away.
	ctx := conn.CloseRead(r.Context())
	<-ctx.Done()
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) register(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conns == nil {
		s.conns = make(map[*websocket.Conn]struct{})
	}
	s.conns[conn] = struct{}{}
}

func (s *Server) unregister(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, conn)
}

// Reload tells all connected browsers to reload.
func (s *Server) Reload(ctx context.Context) {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.conns))
	for conn := range s.conns {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.Write(ctx, websocket.MessageText, []byte("reload")); err != nil {
			s.Logger.Printf("Websocket write: %v", err)
		}
	}
}
