package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pianoforge/midipiece/constants"
	"github.com/pianoforge/midipiece/midi"
	"github.com/pianoforge/midipiece/model"
	"github.com/pianoforge/midipiece/piece"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var pieceStore = struct {
	sync.RWMutex
	m map[string]piece.Piece
}{m: make(map[string]piece.Piece)}

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the note-table HTTP API",
	Long:  `Serves the note-table HTTP API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func storePiece(p piece.Piece) string {
	id := uuid.New().String()
	pieceStore.Lock()
	pieceStore.m[id] = p
	pieceStore.Unlock()
	return id
}

func loadPiece(id string) (piece.Piece, bool) {
	pieceStore.RLock()
	p, ok := pieceStore.m[id]
	pieceStore.RUnlock()
	return p, ok
}

func summarize(id string, p piece.Piece) model.PieceSummary {
	return model.PieceSummary{
		Id:       id,
		Size:     p.Size(),
		Duration: p.Duration(),
		Source:   p.Source,
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// HandlePieceCreate parses a raw MIDI request body into a stored piece.
func HandlePieceCreate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body: "+err.Error())
		return
	}

	s, err := midi.Parse(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := midi.FromSMF(s, model.Source{Kind: "upload"}, true)
	id := storePiece(p)
	logger.Info("piece created",
		zap.String("id", id),
		zap.Int("notes", p.Size()))
	writeJSON(w, http.StatusCreated, summarize(id, p))
}

func HandlePieceGet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, ok := loadPiece(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no piece with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, summarize(id, p))
}

func HandlePieceNotes(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, ok := loadPiece(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no piece with id "+id)
		return
	}
	writeJSON(w, http.StatusOK, model.NotesResponse{
		Piece: summarize(id, p),
		Notes: p.Notes,
	})
}

// HandlePieceTrim slices a stored piece and stores the result as a new one.
func HandlePieceTrim(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	p, ok := loadPiece(id)
	if !ok {
		writeError(w, http.StatusNotFound, "no piece with id "+id)
		return
	}

	var input model.TrimRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request body: "+err.Error())
		return
	}

	mode, err := piece.ParseSliceMode(input.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	shift := true
	if input.ShiftTime != nil {
		shift = *input.ShiftTime
	}

	out, err := p.Trim(input.Start, input.Finish, mode, shift)
	if err != nil {
		switch {
		case errors.Is(err, piece.ErrInvalidArgument), errors.Is(err, piece.ErrUnknownMode):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, piece.ErrOutOfRange), errors.Is(err, piece.ErrEmptySelection):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	outId := storePiece(out)
	logger.Info("piece trimmed",
		zap.String("from", id),
		zap.String("id", outId),
		zap.Int("notes", out.Size()))
	writeJSON(w, http.StatusCreated, model.NotesResponse{
		Piece: summarize(outId, out),
		Notes: out.Notes,
	})
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/pieces", HandlePieceCreate).Methods("POST")
	router.HandleFunc("/pieces/{id}", HandlePieceGet).Methods("GET")
	router.HandleFunc("/pieces/{id}/notes", HandlePieceNotes).Methods("GET")
	router.HandleFunc("/pieces/{id}/trim", HandlePieceTrim).Methods("POST")
	return cors.Default().Handler(router)
}

func serve() {
	logger, _ = zap.NewProduction()
	defer logger.Sync()

	addr := ":" + constants.GetPort()
	logger.Info("listening", zap.String("addr", addr))
	log.Fatal(http.ListenAndServe(addr, newRouter()))
}
